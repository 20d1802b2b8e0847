package action

import (
	"unicode"
	"unicode/utf8"

	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

const (
	processCode = iota + 1
	forkCode
	exitCode
)

var (
	processToken = parsly.NewToken(processCode, "Process", &wordMatcher{})
	forkToken    = parsly.NewToken(forkCode, "+", matcher.NewByte('+'))
	exitToken    = parsly.NewToken(exitCode, "-", matcher.NewByte('-'))
)

// wordMatcher matches one or more word runes (letters, digits, marks or
// underscore), returning the matched length in bytes.
type wordMatcher struct{}

func (m *wordMatcher) Match(cursor *parsly.Cursor) int {
	matched := 0
	for i := cursor.Pos; i < cursor.InputSize; {
		r, size := utf8.DecodeRune(cursor.Input[i:cursor.InputSize])
		if r == utf8.RuneError || !isWord(r) {
			break
		}
		matched += size
		i += size
	}
	return matched
}

func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}
