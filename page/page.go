package page

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"

	"github.com/lbarnkow/no-browser/form"
	"github.com/lbarnkow/no-browser/internal/markup"
)

// UnknownQueryParamError reports a query parameter absent from the page url.
type UnknownQueryParamError struct {
	Param string
	Query string
}

func (e *UnknownQueryParamError) Error() string {
	return fmt.Sprintf("query param %q is not defined in query string %q", e.Param, e.Query)
}

// CSSSelectorParseError reports a malformed css selector, bundling the
// parser's own diagnostic.
type CSSSelectorParseError struct {
	Selector string
	Reason   string
}

func (e *CSSSelectorParseError) Error() string {
	return fmt.Sprintf("failed to parse css selector %q: %s", e.Selector, e.Reason)
}

// CSSSelectorResultEmptyError reports a valid selector that matched nothing.
// Only SelectFirst raises it; Select returns an empty selection instead.
type CSSSelectorResultEmptyError struct {
	Selector string
}

func (e *CSSSelectorResultEmptyError) Error() string {
	return fmt.Sprintf("css selector %q matched no elements", e.Selector)
}

// FormIndexOutOfBoundsError reports a form index at or past the number of
// forms on the page.
type FormIndexOutOfBoundsError struct {
	Index    int
	NumForms int
}

func (e *FormIndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("page contains %d forms; index %d is out of bounds", e.NumForms, e.Index)
}

// FormIDNotFoundError reports an id that matched no form on the page.
type FormIDNotFoundError struct {
	ID string
}

func (e *FormIDNotFoundError) Error() string {
	return fmt.Sprintf("page contains no form with id %q", e.ID)
}

// Page is a loaded and parsed web response: the request method, response
// status, headers and final url, the raw body, and the forms extracted from
// the document in document order.
type Page struct {
	method string
	status int
	header http.Header
	url    *url.URL
	text   string
	doc    *goquery.Document
	forms  []*form.Form
}

// Build parses a response body into a Page and eagerly extracts its forms,
// each bound to pageURL. Construction cannot fail; unparseable markup simply
// yields a page without forms.
func Build(method string, pageURL *url.URL, status int, header http.Header, text string) *Page {
	doc := markup.LoadDocument(text)

	p := &Page{
		method: method,
		status: status,
		header: header,
		url:    pageURL,
		text:   text,
		doc:    doc,
	}

	doc.Find("form").Each(func(_ int, s *goquery.Selection) {
		p.forms = append(p.forms, form.Parse(s, pageURL))
	})

	return p
}

// Method returns the http method used to fetch this page.
func (p *Page) Method() string {
	return p.method
}

// Status returns the http status code returned with this page.
func (p *Page) Status() int {
	return p.status
}

// Header returns the response headers returned with this page.
func (p *Page) Header() http.Header {
	return p.header
}

// URL returns the url of this page. Server-side redirects may make it
// differ from the initially requested url.
func (p *Page) URL() *url.URL {
	return p.url
}

// Text returns the unparsed body of this page.
func (p *Page) Text() string {
	return p.text
}

// SanitizedText returns the page body with scripts and other unsafe markup
// stripped.
func (p *Page) SanitizedText() string {
	return markup.Sanitize(p.text)
}

// NumForms returns the number of forms on this page.
func (p *Page) NumForms() int {
	return len(p.forms)
}

// Form returns the form at index idx in document order.
func (p *Page) Form(idx int) (*form.Form, error) {
	if idx < 0 || idx >= len(p.forms) {
		return nil, &FormIndexOutOfBoundsError{Index: idx, NumForms: len(p.forms)}
	}
	return p.forms[idx], nil
}

// FormByID returns the first form whose id attribute equals id.
func (p *Page) FormByID(id string) (*form.Form, error) {
	for _, f := range p.forms {
		if fid, ok := f.ID(); ok && fid == id {
			return f, nil
		}
	}
	return nil, &FormIDNotFoundError{ID: id}
}

func (p *Page) compile(selector string) (cascadia.Selector, error) {
	s, err := cascadia.Compile(selector)
	if err != nil {
		return nil, &CSSSelectorParseError{Selector: selector, Reason: err.Error()}
	}
	return s, nil
}

// Select returns all elements matching the given css selector group. A
// selector that matches nothing yields an empty selection, not an error.
func (p *Page) Select(selector string) (*goquery.Selection, error) {
	s, err := p.compile(selector)
	if err != nil {
		return nil, err
	}
	return p.doc.FindMatcher(s), nil
}

// SelectFirst returns the first element matching the given css selector
// group.
func (p *Page) SelectFirst(selector string) (*goquery.Selection, error) {
	s, err := p.compile(selector)
	if err != nil {
		return nil, err
	}

	match := p.doc.FindMatcher(s).First()
	if match.Length() == 0 {
		return nil, &CSSSelectorResultEmptyError{Selector: selector}
	}
	return match, nil
}

// Query returns the first value of the named query parameter of the page
// url. Repeated parameters yield only their first value.
func (p *Page) Query(name string) (string, error) {
	if values, ok := p.url.Query()[name]; ok && len(values) > 0 {
		return values[0], nil
	}

	return "", &UnknownQueryParamError{Param: name, Query: p.url.RawQuery}
}
