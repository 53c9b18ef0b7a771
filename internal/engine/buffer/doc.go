// Package buffer provides line-oriented text storage for the engine.
//
// A Buffer is an ordered sequence of line strings. No line contains an
// embedded newline. An empty buffer has zero lines; constructing from
// text that ends with a newline discards the single trailing empty
// segment, so "a\nb\n" yields the two lines "a" and "b".
package buffer
