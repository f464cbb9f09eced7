// Package puz serializes a validated crossword into the legacy fixed-layout
// binary format.
//
// The file is a 52-byte header, one solution byte and one shape byte per
// cell, a run of NUL-terminated text fields (title, author, copyright, the
// merged clue list, notes), and optional rebus extension sections. Four
// 16-bit rolling checksums tie the pieces together; regression tests pin the
// output byte-for-byte against known-good files.
package puz
