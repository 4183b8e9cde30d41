// Package document implements the in-memory form of a JSON configuration
// file: an untyped tagged value covering JSON's full value space, with
// order-preserving objects and raw-text numbers so a file survives a
// load/edit/save cycle without spurious churn.
//
// Values are parsed with [Parse] and written back with
// [Value.MarshalIndent], which reproduces the persisted layout the managed
// tools expect: 2-space indentation, trailing newline, non-ASCII written
// verbatim.
package document
