package form

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/lbarnkow/no-browser/input"
)

// Field is one name/value pair of a submission payload. Payloads are ordered
// slices rather than maps so that repeated names survive encoding.
type Field struct {
	Name  string
	Value string
}

// Submission carries everything needed to turn a form into a request: the
// absolute target url, the http method and the ordered payload.
type Submission struct {
	URL     string
	Method  string
	Payload []Field
}

// MissingSubmitValueError reports a named submit control that carries no
// value and therefore cannot contribute a payload entry.
type MissingSubmitValueError struct {
	Name string
}

func (e *MissingSubmitValueError) Error() string {
	return fmt.Sprintf("submit control %q has no value", e.Name)
}

// Ports implied by a scheme when the page url does not name one explicitly.
var defaultPorts = map[string]string{
	"http":  "80",
	"https": "443",
	"ws":    "80",
	"wss":   "443",
	"ftp":   "21",
}

// Submit resolves the submission request for this form.
//
// If submitButtonName is non-empty, the control of kind submit with that
// name contributes the first payload entry; a missing control yields
// InputNotInFormError. All remaining controls follow in parse order, except
// that button, reset and submit kinds never contribute on their own,
// controls without a value are skipped, and checkboxes only contribute while
// they carry a checked attribute — its value is irrelevant.
func (f *Form) Submit(submitButtonName string) (*Submission, error) {
	sub := &Submission{
		URL:    f.TargetURL(),
		Method: f.method,
	}

	if submitButtonName != "" {
		in, err := f.Input(input.KindSubmit, submitButtonName)
		if err != nil {
			return nil, err
		}
		value, ok := in.Value()
		if !ok {
			return nil, &MissingSubmitValueError{Name: submitButtonName}
		}
		sub.Payload = append(sub.Payload, Field{Name: in.Name(), Value: value})
	}

	for _, in := range f.inputs {
		switch in.Kind() {
		case input.KindButton, input.KindReset, input.KindSubmit:
			// only the explicitly named submit control contributes
			continue
		}

		value, ok := in.Value()
		if !ok {
			continue
		}

		if in.Kind() == input.KindCheckbox {
			if _, checked := in.Attr("checked"); !checked {
				continue
			}
		}

		sub.Payload = append(sub.Payload, Field{Name: in.Name(), Value: value})
	}

	return sub, nil
}

// TargetURL resolves the form's action against the page url it was parsed
// from.
//
// Absolute http(s) actions pass through unchanged. Otherwise the resolved
// url starts from the page origin — scheme, credentials, host and an
// explicit port, defaulted from the scheme when the page url omits it. An
// action starting with "/" resolves against that bare origin; any other
// action is appended to the page path, which is kept verbatim when it ends
// in "/" and otherwise has its last segment dropped first.
func (f *Form) TargetURL() string {
	if strings.HasPrefix(f.action, "http://") || strings.HasPrefix(f.action, "https://") {
		return f.action
	}

	var b strings.Builder
	b.WriteString(f.pageURL.Scheme)
	b.WriteString("://")

	if user := f.pageURL.User; user != nil && user.Username() != "" {
		b.WriteString(user.Username())
		if password, ok := user.Password(); ok {
			b.WriteByte(':')
			b.WriteString(password)
		}
		b.WriteByte('@')
	}

	b.WriteString(f.pageURL.Hostname())
	if port := explicitPort(f.pageURL); port != "" {
		b.WriteByte(':')
		b.WriteString(port)
	}

	if !strings.HasPrefix(f.action, "/") {
		path := f.pageURL.Path
		if path == "" {
			path = "/"
		}
		if strings.HasSuffix(path, "/") {
			b.WriteString(path)
		} else {
			// discard the last page / file segment
			b.WriteString(path[:strings.LastIndexByte(path, '/')+1])
		}
	}

	b.WriteString(f.action)

	return b.String()
}

func explicitPort(u *url.URL) string {
	if port := u.Port(); port != "" {
		return port
	}
	return defaultPorts[u.Scheme]
}

// EncodeFields encodes an ordered payload as
// application/x-www-form-urlencoded, preserving entry order and repeated
// names. url.Values is unsuitable here: it is an unordered map.
func EncodeFields(fields []Field) string {
	var b strings.Builder
	for i, field := range fields {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(field.Name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(field.Value))
	}
	return b.String()
}
