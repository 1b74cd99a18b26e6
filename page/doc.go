// Package page models one loaded and parsed web response.
//
// A Page gives access to the response metadata (method, status, headers,
// final url), the raw body, individual query parameters of the page url,
// elements located via css selectors, and the html forms extracted from the
// document — by index or by id. Forms are extracted eagerly at construction
// and construction itself cannot fail.
package page
