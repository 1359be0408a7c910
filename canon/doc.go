// Package canon puts node trees into the canonical form the differ
// compares.
//
// Canonical form is what makes key order and markup whitespace
// invisible to comparison: object fields and element attributes are
// sorted by name, whitespace-only text is dropped, and in full mode
// sequence children are sorted by content. Two documents are
// structurally equal exactly when their canonical trees are equal.
package canon
