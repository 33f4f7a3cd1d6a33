// Package svg builds SVG documents as an append-only element tree.
//
// Elements are assembled bottom-up: children are constructed, attached
// to a parent with [Element.Append], and never edited after attachment.
// Attribute order is preserved, so serialized output is deterministic
// and stable under test.
package svg
