package motion

import "github.com/dshills/vimkit/internal/plugin"

// All returns the complete motion plugin family. The search plugins
// share eng for pattern capture; step sets the directional distance.
func All(eng *SearchEngine, step int) []plugin.Plugin {
	return []plugin.Plugin{
		NewLeft(step),
		NewDown(step),
		NewUp(step),
		NewRight(step),
		NewWordForward(),
		NewWordBackward(),
		NewWordEnd(),
		NewWordEndBackward(),
		NewBigWordForward(),
		NewBigWordBackward(),
		NewBigWordEnd(),
		NewBigWordEndBackward(),
		NewLineStart(),
		NewFirstNonBlank(),
		NewLineEnd(),
		NewBufferTop(),
		NewBufferBottom(),
		NewMatchBracket(),
		NewSearchForward(eng),
		NewSearchBackward(eng),
		NewSearchNext(eng),
		NewSearchPrev(eng),
	}
}
