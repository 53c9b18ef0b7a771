// Package cursor provides the cursor position type.
//
// A Position is a (line, column, desired column) triple. The desired
// column records the last horizontally intentional column and is
// preserved across vertical moves onto shorter lines, so a later
// vertical move onto a long enough line restores the intended column.
package cursor
