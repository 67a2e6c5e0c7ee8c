// Package bom extracts a bill-of-materials lookup from a generic tabular
// annotation.
//
// Column roles are recognized by scanning the header row for keywords,
// case-insensitively and with diacritics folded away, so both English and
// French drawing templates match ("ITEM NO." and "REPÈRE" both identify the
// item-number column). Extraction is best effort: a table without an
// item-number column, or one that misbehaves while being read, yields an
// empty lookup rather than an error.
package bom
