// Package mode defines the editing mode tags that gate command execution.
package mode

// Standard mode names.
const (
	Normal  = "normal"
	Insert  = "insert"
	Visual  = "visual"
	Command = "command"
	Replace = "replace"
	Select  = "select"
	Search  = "search"
)

// All returns every known mode name.
func All() []string {
	return []string{Normal, Insert, Visual, Command, Replace, Select, Search}
}

// Valid returns true if name is a known mode.
func Valid(name string) bool {
	switch name {
	case Normal, Insert, Visual, Command, Replace, Select, Search:
		return true
	}
	return false
}
