// Package buffer implements the line-indexed text container edited by vex.
//
// Offsets and columns are 0-based and counted in runes. A line includes its
// terminator; the text after the final terminator is the last line, so a
// buffer always has at least one line.
package buffer
