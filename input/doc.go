// Package input models individual html form controls.
//
// An Input is the typed representation of one <input> or <button> element:
// its control kind, mandatory name, optional value, and the verbatim
// attribute map of the source element. Parsing is strict — unsupported tags,
// unsupported type attributes and nameless controls fail construction —
// while the form layer above drops such failures silently.
package input
