// Package form models parsed html forms and resolves their submissions.
//
// A Form owns the ordered controls extracted from one <form> element and
// knows the url of the page that hosted it. Submit computes the absolute
// target url, the http method and the ordered name/value payload for a
// submission request; the browser package turns that into an actual request.
//
// Extraction is lenient — malformed controls are dropped, never fatal —
// while lookups and submission resolution surface precise typed errors.
package form
