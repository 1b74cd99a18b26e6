// Package markup wraps the html parsing collaborators: charset-aware
// document loading via goquery, response-body decoding to utf-8, and
// sanitization for safe text extraction.
package markup

import (
	"bytes"
	"io"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
	"github.com/saintfish/chardet"
	"golang.org/x/net/html/charset"
)

var (
	sanitizerOnce sync.Once
	sanitizer     *bluemonday.Policy
)

// DetectCharset returns the best-effort charset of raw markup bytes,
// falling back to utf-8.
func DetectCharset(data []byte) string {
	detector := chardet.NewTextDetector()
	result, err := detector.DetectBest(data)
	if err != nil || result == nil {
		return "utf-8"
	}
	return strings.ToLower(result.Charset)
}

// LoadDocument parses markup into a queryable document.
//
// Loading cannot fail: charset conversion problems fall back to parsing the
// input verbatim, and parser-level noise surfaces as a sparse tree rather
// than an error. Malformed markup yields whatever the parser recovers.
func LoadDocument(text string) *goquery.Document {
	data := []byte(text)

	reader, err := charset.NewReader(bytes.NewReader(data), DetectCharset(data))
	if err == nil {
		if doc, err := goquery.NewDocumentFromReader(reader); err == nil {
			return doc
		}
	}

	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(text)); err == nil {
		return doc
	}

	doc, _ := goquery.NewDocumentFromReader(strings.NewReader(""))
	return doc
}

// DecodeBody converts a raw response body to utf-8, honoring the charset of
// the Content-Type header and sniffing the content when the header is
// silent.
func DecodeBody(data []byte, contentType string) (string, error) {
	reader, err := charset.NewReader(bytes.NewReader(data), contentType)
	if err != nil {
		return "", err
	}

	decoded, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}

	return string(decoded), nil
}

// Sanitize strips scripts and other unsafe markup, keeping user-generated
// content intact.
func Sanitize(html string) string {
	sanitizerOnce.Do(func() {
		sanitizer = bluemonday.UGCPolicy()
	})
	return sanitizer.Sanitize(html)
}
