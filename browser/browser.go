package browser

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/lbarnkow/no-browser/form"
	"github.com/lbarnkow/no-browser/internal/markup"
	"github.com/lbarnkow/no-browser/page"
)

// ConstructClientError reports that the underlying http client could not be
// built.
type ConstructClientError struct {
	Err error
}

func (e *ConstructClientError) Error() string {
	return fmt.Sprintf("failed to construct the http client: %v", e.Err)
}

func (e *ConstructClientError) Unwrap() error {
	return e.Err
}

// SendRequestError reports a failure while sending a request, including
// hitting the redirect limit.
type SendRequestError struct {
	Err error
}

func (e *SendRequestError) Error() string {
	return fmt.Sprintf("failed to send the request: %v", e.Err)
}

func (e *SendRequestError) Unwrap() error {
	return e.Err
}

// ResponseBodyDecodeError reports a response body that could not be read or
// decoded to utf-8.
type ResponseBodyDecodeError struct {
	Err error
}

func (e *ResponseBodyDecodeError) Error() string {
	return fmt.Sprintf("failed to decode response body: %v", e.Err)
}

func (e *ResponseBodyDecodeError) Unwrap() error {
	return e.Err
}

// Browser is a light-weight headless browser wrapped around a resty client.
// It navigates to pages and submits forms; the client handles redirects,
// cookies and TLS trust.
//
// Use NewBuilder to construct one. A Browser is safe to reuse across calls;
// each call blocks until the response is fetched and parsed. There is no
// internal retry: every transport or decode failure is terminal for that
// call.
type Browser struct {
	client  *resty.Client
	limiter *rate.Limiter
	log     *zap.Logger
}

// NavigateTo issues a GET request for the given url, optionally appending
// ordered query parameters, and parses the response into a Page.
func (b *Browser) NavigateTo(ctx context.Context, rawURL string, query []form.Field) (*page.Page, error) {
	target := appendQuery(rawURL, query)

	b.log.Debug("navigate", zap.String("url", target))

	resp, err := b.send(ctx, http.MethodGet, target, "")
	if err != nil {
		return nil, err
	}

	return b.buildPage(http.MethodGet, resp)
}

// SubmitForm resolves the submission request for the given form — optionally
// naming the submit control that triggers it — and issues it: GET payloads
// travel as query parameters, POST payloads as a form-encoded body. The
// response is parsed into a new Page.
func (b *Browser) SubmitForm(ctx context.Context, f *form.Form, submitButtonName string) (*page.Page, error) {
	sub, err := f.Submit(submitButtonName)
	if err != nil {
		return nil, err
	}

	b.log.Debug("submit form",
		zap.String("url", sub.URL),
		zap.String("method", sub.Method),
		zap.Int("payload_fields", len(sub.Payload)))

	var resp *resty.Response
	if sub.Method == http.MethodGet {
		resp, err = b.send(ctx, http.MethodGet, appendQuery(sub.URL, sub.Payload), "")
	} else {
		resp, err = b.send(ctx, http.MethodPost, sub.URL, form.EncodeFields(sub.Payload))
	}
	if err != nil {
		return nil, err
	}

	return b.buildPage(sub.Method, resp)
}

func (b *Browser) send(ctx context.Context, method, url, body string) (*resty.Response, error) {
	if b.limiter != nil {
		if err := b.limiter.Wait(ctx); err != nil {
			return nil, &SendRequestError{Err: err}
		}
	}

	req := b.client.R().SetContext(ctx)

	var (
		resp *resty.Response
		err  error
	)
	switch method {
	case http.MethodPost:
		resp, err = req.
			SetHeader("Content-Type", "application/x-www-form-urlencoded").
			SetBody(body).
			Post(url)
	default:
		resp, err = req.Get(url)
	}
	if err != nil {
		return nil, &SendRequestError{Err: err}
	}

	return resp, nil
}

func (b *Browser) buildPage(method string, resp *resty.Response) (*page.Page, error) {
	raw := resp.RawBody()
	if raw == nil {
		return nil, &ResponseBodyDecodeError{Err: fmt.Errorf("response has no body")}
	}
	defer raw.Close()

	data, err := io.ReadAll(raw)
	if err != nil {
		return nil, &ResponseBodyDecodeError{Err: err}
	}

	text, err := markup.DecodeBody(data, resp.Header().Get("Content-Type"))
	if err != nil {
		return nil, &ResponseBodyDecodeError{Err: err}
	}

	finalURL := resp.RawResponse.Request.URL

	b.log.Debug("page loaded",
		zap.String("url", finalURL.String()),
		zap.Int("status", resp.StatusCode()),
		zap.Int("bytes", len(data)))

	return page.Build(method, finalURL, resp.StatusCode(), resp.Header(), text), nil
}

// appendQuery attaches ordered query pairs to a url, keeping any query
// string already present.
func appendQuery(rawURL string, query []form.Field) string {
	if len(query) == 0 {
		return rawURL
	}

	sep := "?"
	if strings.Contains(rawURL, "?") {
		sep = "&"
	}

	return rawURL + sep + form.EncodeFields(query)
}
