package input

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Kind identifies the control kind of a parsed form input.
//
// The set is closed: file uploads, image buttons and radio groups are not
// supported and never map to a Kind.
type Kind string

// Supported control kinds.
const (
	KindButton        Kind = "button"
	KindCheckbox      Kind = "checkbox"
	KindColor         Kind = "color"
	KindDate          Kind = "date"
	KindDatetimeLocal Kind = "datetime-local"
	KindEmail         Kind = "email"
	KindHidden        Kind = "hidden"
	KindMonth         Kind = "month"
	KindNumber        Kind = "number"
	KindPassword      Kind = "password"
	KindRange         Kind = "range"
	KindReset         Kind = "reset"
	KindSearch        Kind = "search"
	KindSubmit        Kind = "submit"
	KindTel           Kind = "tel"
	KindText          Kind = "text"
	KindTime          Kind = "time"
	KindURL           Kind = "url"
	KindWeek          Kind = "week"
)

// kindByType maps an element's lower-cased type attribute to its Kind.
var kindByType = map[string]Kind{
	"button":         KindButton,
	"checkbox":       KindCheckbox,
	"color":          KindColor,
	"date":           KindDate,
	"datetime-local": KindDatetimeLocal,
	"email":          KindEmail,
	"hidden":         KindHidden,
	"month":          KindMonth,
	"number":         KindNumber,
	"password":       KindPassword,
	"range":          KindRange,
	"reset":          KindReset,
	"search":         KindSearch,
	"submit":         KindSubmit,
	"tel":            KindTel,
	"text":           KindText,
	"time":           KindTime,
	"url":            KindURL,
	"week":           KindWeek,
}

// UnnamedInputError reports an input or button element without a name
// attribute. Such controls cannot take part in a submission payload.
type UnnamedInputError struct{}

func (e *UnnamedInputError) Error() string {
	return "unnamed inputs are not supported"
}

// UnsupportedElementTagError reports an element that is neither <input> nor
// <button>.
type UnsupportedElementTagError struct {
	Tag string
}

func (e *UnsupportedElementTagError) Error() string {
	return fmt.Sprintf("html tag %q cannot be parsed as a form input", e.Tag)
}

// UnsupportedInputTypeError reports a type attribute outside the supported
// kind table.
type UnsupportedInputTypeError struct {
	Type string
}

func (e *UnsupportedInputTypeError) Error() string {
	return fmt.Sprintf("input with attribute type=%q cannot be parsed as a form input", e.Type)
}

// MissingAttributeError reports a mandatory attribute absent from the source
// element.
type MissingAttributeError struct {
	Attribute string
	Tag       string
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("missing attribute %q on html tag %q", e.Attribute, e.Tag)
}

// Input is a parsed html form control: one <input> or <button> element.
//
// An Input always carries a name; construction fails instead of producing a
// nameless control. The cached value and the generic attribute map are
// mutated independently: SetValue never touches the attribute map, and
// checkbox-checked state goes through SetAttr("checked", ...).
type Input struct {
	kind  Kind
	name  string
	value string
	has   bool
	attrs map[string]string
}

// Kind returns the control kind of this input.
func (in *Input) Kind() Kind {
	return in.kind
}

// Name returns the name attribute of this input.
func (in *Input) Name() string {
	return in.name
}

// Value returns the current value and whether one is set.
func (in *Input) Value() (string, bool) {
	return in.value, in.has
}

// SetValue replaces the current value and returns the previous one, if any.
func (in *Input) SetValue(value string) (prev string, ok bool) {
	prev, ok = in.value, in.has
	in.value, in.has = value, true
	return prev, ok
}

// ClearValue removes the current value and returns the previous one, if any.
func (in *Input) ClearValue() (prev string, ok bool) {
	prev, ok = in.value, in.has
	in.value, in.has = "", false
	return prev, ok
}

// Attr returns the raw attribute for key and whether it is present.
func (in *Input) Attr(key string) (string, bool) {
	v, ok := in.attrs[key]
	return v, ok
}

// SetAttr stores an attribute and returns the previous one, if any.
func (in *Input) SetAttr(key, value string) (prev string, ok bool) {
	prev, ok = in.attrs[key]
	in.attrs[key] = value
	return prev, ok
}

// RemoveAttr deletes an attribute and returns the previous one, if any.
func (in *Input) RemoveAttr(key string) (prev string, ok bool) {
	prev, ok = in.attrs[key]
	delete(in.attrs, key)
	return prev, ok
}

// Parse builds an Input from the first element of the given selection.
//
// Only <input> and <button> elements are accepted. An <input> must carry a
// supported type attribute; a <button> without a type defaults to submit and
// accepts only submit, reset or button. The name attribute is mandatory for
// both.
func Parse(sel *goquery.Selection) (*Input, error) {
	tag := strings.ToLower(goquery.NodeName(sel))

	switch tag {
	case "input":
		return parseInput(sel)
	case "button":
		return parseButton(sel)
	default:
		return nil, &UnsupportedElementTagError{Tag: tag}
	}
}

func parseInput(sel *goquery.Selection) (*Input, error) {
	t, ok := sel.Attr("type")
	if !ok {
		return nil, &MissingAttributeError{Attribute: "type", Tag: "input"}
	}

	kind, ok := kindByType[strings.ToLower(t)]
	if !ok {
		return nil, &UnsupportedInputTypeError{Type: t}
	}

	return parseElement(sel, kind)
}

func parseButton(sel *goquery.Selection) (*Input, error) {
	t := strings.ToLower(sel.AttrOr("type", "submit"))

	var kind Kind
	switch t {
	case "submit":
		kind = KindSubmit
	case "reset":
		kind = KindReset
	case "button":
		kind = KindButton
	default:
		return nil, &UnsupportedInputTypeError{Type: t}
	}

	return parseElement(sel, kind)
}

func parseElement(sel *goquery.Selection, kind Kind) (*Input, error) {
	name, ok := sel.Attr("name")
	if !ok {
		return nil, &UnnamedInputError{}
	}

	in := &Input{
		kind:  kind,
		name:  name,
		attrs: make(map[string]string),
	}

	if value, ok := sel.Attr("value"); ok {
		in.value, in.has = value, true
	}

	if len(sel.Nodes) > 0 {
		for _, a := range sel.Nodes[0].Attr {
			in.attrs[a.Key] = a.Val
		}
	}

	return in, nil
}
