// Package key models normalized keystroke tokens.
//
// A token is either a literal single character ("a", "$") or bracketed
// notation for special keys and modified keys ("<Esc>", "<C-a>",
// "<C-A-x>"). Bracketed tokens list modifiers in the fixed order
// Ctrl, Alt, Shift, Meta followed by the base key.
package key
