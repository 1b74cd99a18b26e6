package form

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/lbarnkow/no-browser/input"
)

// InputNotInFormError reports a lookup for a control the form does not
// contain, echoing the requested name and kind.
type InputNotInFormError struct {
	Name string
	Kind input.Kind
}

func (e *InputNotInFormError) Error() string {
	return fmt.Sprintf("form does not contain an input named %q of kind %q", e.Name, e.Kind)
}

// Form is a parsed html form: its method, raw action, optional id and the
// ordered controls extracted from it, bound to the url of the page it was
// parsed from.
//
// The *input.Input pointers returned by Input and Inputs are stable handles;
// mutating a control through one is visible to every holder. Access is
// single-writer by convention, the form does no locking of its own.
type Form struct {
	pageURL *url.URL
	method  string
	action  string
	id      string
	hasID   bool
	inputs  []*input.Input
}

// Parse builds a Form from a <form> element selection.
//
// Parsing never fails: the method falls back to GET (any value other than
// GET or POST is coerced to GET), a missing action becomes the empty string,
// and controls that fail to parse are dropped silently. A form with zero
// surviving controls is valid.
//
// Controls are collected in two passes over the form's inner markup parsed
// in isolation: all <input> descendants in document order, then all <button>
// descendants. Buttons therefore always sort after inputs regardless of
// source order.
func Parse(sel *goquery.Selection, pageURL *url.URL) *Form {
	method := strings.ToUpper(sel.AttrOr("method", http.MethodGet))
	if method != http.MethodGet && method != http.MethodPost {
		method = http.MethodGet
	}

	f := &Form{
		pageURL: pageURL,
		method:  method,
		action:  sel.AttrOr("action", ""),
	}
	f.id, f.hasID = sel.Attr("id")
	f.inputs = parseInputs(sel)

	return f
}

func parseInputs(sel *goquery.Selection) []*input.Input {
	inner, err := sel.Html()
	if err != nil {
		return nil
	}

	frag, err := goquery.NewDocumentFromReader(strings.NewReader(inner))
	if err != nil {
		return nil
	}

	var inputs []*input.Input

	frag.Find("input").Each(func(_ int, s *goquery.Selection) {
		if in, err := input.Parse(s); err == nil {
			// parse failures are dropped, not propagated
			inputs = append(inputs, in)
		}
	})

	frag.Find("button").Each(func(_ int, s *goquery.Selection) {
		if in, err := input.Parse(s); err == nil {
			inputs = append(inputs, in)
		}
	})

	return inputs
}

// PageURL returns the url of the page this form was parsed from.
func (f *Form) PageURL() *url.URL {
	return f.pageURL
}

// Method returns the http method of this form, either GET or POST.
func (f *Form) Method() string {
	return f.method
}

// Action returns the raw action attribute, possibly empty or relative.
func (f *Form) Action() string {
	return f.action
}

// ID returns the id attribute of this form and whether one is present.
func (f *Form) ID() (string, bool) {
	return f.id, f.hasID
}

// Inputs returns the ordered controls of this form.
func (f *Form) Inputs() []*input.Input {
	return f.inputs
}

// Input returns the first control matching the given kind and name.
func (f *Form) Input(kind input.Kind, name string) (*input.Input, error) {
	for _, in := range f.inputs {
		if in.Kind() != kind || in.Name() != name {
			continue
		}
		return in, nil
	}

	return nil, &InputNotInFormError{Name: name, Kind: kind}
}
