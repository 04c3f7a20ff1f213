// Package dyn parses JSON (RFC 8259/ECMA-404) and CSV (RFC 4180) into a
// single unified, tagged Value tree.
//
// Parsing is always whole-input: ParseJSON and ParseCSVHeaded/
// ParseCSVHeadless take a complete byte slice (or, via the File variants,
// a path read entirely into memory) and return a Value or an *Error.
// There is no incremental/streaming mode and no recovery past the first
// error encountered.
package dyn
