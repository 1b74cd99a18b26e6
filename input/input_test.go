package input

import (
	"fmt"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func selectOne(t *testing.T, html, selector string) *goquery.Selection {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)

	sel := doc.Find(selector).First()
	require.Equal(t, 1, sel.Length())
	return sel
}

func TestParseValidInputs(t *testing.T) {
	kinds := map[string]Kind{
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

	for attrType, want := range kinds {
		t.Run(attrType, func(t *testing.T) {
			html := fmt.Sprintf(
				`<input class="the_class" name="the_%s" type="%s" value="the_value" k1="v1" k2="v2">`,
				attrType, attrType)

			in, err := Parse(selectOne(t, html, "input"))
			require.NoError(t, err)

			assert.Equal(t, want, in.Kind())
			assert.Equal(t, "the_"+attrType, in.Name())

			value, ok := in.Value()
			require.True(t, ok)
			assert.Equal(t, "the_value", value)

			v1, ok := in.Attr("k1")
			require.True(t, ok)
			assert.Equal(t, "v1", v1)
			v2, ok := in.Attr("k2")
			require.True(t, ok)
			assert.Equal(t, "v2", v2)
			_, ok = in.Attr("k3")
			assert.False(t, ok)

			// value attribute is mirrored into the raw attribute map
			raw, ok := in.Attr("value")
			require.True(t, ok)
			assert.Equal(t, "the_value", raw)
		})
	}
}

func TestParseUnsupportedInputTypes(t *testing.T) {
	for _, attrType := range []string{"file", "image", "radio", "bogus"} {
		t.Run(attrType, func(t *testing.T) {
			html := fmt.Sprintf(`<input name="n" type="%s">`, attrType)

			_, err := Parse(selectOne(t, html, "input"))
			var typeErr *UnsupportedInputTypeError
			require.ErrorAs(t, err, &typeErr)
			assert.Equal(t, attrType, typeErr.Type)
		})
	}
}

func TestParseInputWithoutType(t *testing.T) {
	_, err := Parse(selectOne(t, `<input name="n" value="v">`, "input"))

	var missing *MissingAttributeError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "type", missing.Attribute)
	assert.Equal(t, "input", missing.Tag)
}

func TestParseInputWithoutName(t *testing.T) {
	_, err := Parse(selectOne(t, `<input type="text" value="v">`, "input"))

	var unnamed *UnnamedInputError
	require.ErrorAs(t, err, &unnamed)
}

func TestParseButtonDefaultsToSubmit(t *testing.T) {
	in, err := Parse(selectOne(t, `<button name="ok" value="ok">OK</button>`, "button"))
	require.NoError(t, err)

	assert.Equal(t, KindSubmit, in.Kind())
	assert.Equal(t, "ok", in.Name())
}

func TestParseButtonTypes(t *testing.T) {
	cases := map[string]Kind{
		"submit": KindSubmit,
		"reset":  KindReset,
		"button": KindButton,
	}

	for attrType, want := range cases {
		t.Run(attrType, func(t *testing.T) {
			html := fmt.Sprintf(`<button name="b" type="%s">B</button>`, attrType)

			in, err := Parse(selectOne(t, html, "button"))
			require.NoError(t, err)
			assert.Equal(t, want, in.Kind())
		})
	}
}

func TestParseButtonRejectsOtherTypes(t *testing.T) {
	_, err := Parse(selectOne(t, `<button name="b" type="checkbox">B</button>`, "button"))

	var typeErr *UnsupportedInputTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "checkbox", typeErr.Type)
}

func TestParseRejectsOtherTags(t *testing.T) {
	_, err := Parse(selectOne(t, `<select name="s"></select>`, "select"))

	var tagErr *UnsupportedElementTagError
	require.ErrorAs(t, err, &tagErr)
	assert.Equal(t, "select", tagErr.Tag)
}

func TestSetAndClearValue(t *testing.T) {
	in, err := Parse(selectOne(t, `<input name="n" type="text" value="old">`, "input"))
	require.NoError(t, err)

	prev, ok := in.SetValue("new")
	require.True(t, ok)
	assert.Equal(t, "old", prev)

	value, ok := in.Value()
	require.True(t, ok)
	assert.Equal(t, "new", value)

	prev, ok = in.ClearValue()
	require.True(t, ok)
	assert.Equal(t, "new", prev)

	_, ok = in.Value()
	assert.False(t, ok)

	_, ok = in.SetValue("again")
	assert.False(t, ok)
}

func TestValueAndAttrMutateIndependently(t *testing.T) {
	in, err := Parse(selectOne(t, `<input name="n" type="checkbox" value="v">`, "input"))
	require.NoError(t, err)

	in.SetValue("changed")
	raw, ok := in.Attr("value")
	require.True(t, ok)
	assert.Equal(t, "v", raw)

	_, had := in.SetAttr("checked", "")
	assert.False(t, had)
	_, ok = in.Attr("checked")
	assert.True(t, ok)

	prev, had := in.RemoveAttr("checked")
	require.True(t, had)
	assert.Equal(t, "", prev)
	_, ok = in.Attr("checked")
	assert.False(t, ok)

	// value cache untouched by attribute churn
	value, ok := in.Value()
	require.True(t, ok)
	assert.Equal(t, "changed", value)
}
