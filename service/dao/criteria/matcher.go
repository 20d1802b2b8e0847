// Package criteria matches records against dao.Parameter filters.
package criteria

import (
	"github.com/viant/forktree/service/dao"
)

// Match reports whether fields satisfy every parameter. A parameter naming a
// field that is not in fields is ignored.
func Match(fields map[string]string, parameters []*dao.Parameter) bool {
	for _, parameter := range parameters {
		if parameter == nil {
			continue
		}
		actual, ok := fields[parameter.Name]
		if !ok {
			continue
		}
		if !accepts(parameter.Value, actual) {
			return false
		}
	}
	return true
}

func accepts(expected interface{}, actual string) bool {
	switch candidate := expected.(type) {
	case string:
		return candidate == actual
	case []string:
		for _, s := range candidate {
			if s == actual {
				return true
			}
		}
		return false
	}
	return true
}
