// Package motion implements the cursor-movement plugin family:
// directional stepping (h/j/k/l), word and WORD boundary motions
// (w/b/e/ge and W/B/E/gE), line anchors (0/^/$/gg/G/%), and
// incremental search (/, ?, n, N).
//
// Word motions distinguish two tokenizers. The word tokenizer splits
// text into three run classes (alphanumeric plus underscore,
// punctuation, whitespace); the WORD tokenizer splits on whitespace
// only. Line breaks count as whitespace, so motions cross line
// boundaries and skip empty lines.
package motion
