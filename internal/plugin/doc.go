// Package plugin defines the command plugin contract and the registry
// that owns plugin instances and the pattern index.
//
// Every command is a Plugin claiming one or more literal keystroke
// patterns. The registry enforces pattern uniqueness: a pattern string
// maps to at most one plugin at any time, and registration is atomic —
// either every pattern of a plugin is indexed, or none are.
package plugin
