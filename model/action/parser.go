package action

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/viant/forktree/model/tree"
	"github.com/viant/parsly"
)

// ErrMalformedAction is returned for text that is neither `X+Y` nor `X-`.
var ErrMalformedAction = errors.New("malformed action")

// Parse parses a single action. It only checks syntax; whether the named
// processes exist is decided when the action is applied.
func Parse(text string) (*Action, error) {
	cursor := parsly.NewCursor("", []byte(text), 0)
	matched := cursor.MatchOne(processToken)
	if matched.Code != processCode {
		return nil, malformed(text)
	}
	first := tree.ID(matched.Text(cursor))

	var ret *Action
	matched = cursor.MatchAny(forkToken, exitToken)
	switch matched.Code {
	case forkCode:
		matched = cursor.MatchOne(processToken)
		if matched.Code != processCode {
			return nil, malformed(text)
		}
		ret = NewFork(first, tree.ID(matched.Text(cursor)))
	case exitCode:
		ret = NewExit(first)
	default:
		return nil, malformed(text)
	}
	if cursor.HasMore() {
		return nil, malformed(text)
	}
	return ret, nil
}

// ParseAll parses every action, failing on the first malformed one.
func ParseAll(texts []string) ([]*Action, error) {
	ret := make([]*Action, 0, len(texts))
	for i, text := range texts {
		a, err := Parse(text)
		if err != nil {
			return nil, errors.Wrapf(err, "action #%d", i+1)
		}
		ret = append(ret, a)
	}
	return ret, nil
}

// Split splits a comma separated action list. Blank entries are kept so that
// they are reported as malformed.
func Split(list string) []string {
	if strings.TrimSpace(list) == "" {
		return nil
	}
	parts := strings.Split(list, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func malformed(text string) error {
	return errors.Wrapf(ErrMalformedAction, "%q: must be X+Y or X- where X and Y are processes", text)
}
