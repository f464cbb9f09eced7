// Package ipuz maps a crossword to and from the open JSON puzzle format.
//
// Only the crossword subset of the format is supported: version
// "http://ipuz.org/v1" with kind "http://ipuz.org/crossword#1". Decoding
// revalidates everything — grid shape, clue numbering against the wall
// topology, clue lists — and reports all problems together in one pass.
package ipuz
