// Package run binds the generic dao contract to simulation run records.
package run

import (
	"github.com/viant/forktree/service/dao"
	"github.com/viant/forktree/service/simulator"
)

// Filterable record fields.
const (
	FieldPolicy = "Policy"
	FieldStyle  = "Style"
)

// Service stores simulation results keyed by run id.
type Service = dao.Service[string, simulator.Result]

// Key returns the record key of r.
func Key(r *simulator.Result) string {
	return r.ID
}

// Fields returns the values List parameters are matched against.
func Fields(r *simulator.Result) map[string]string {
	ret := map[string]string{FieldPolicy: r.Policy}
	if r.Config != nil {
		ret[FieldStyle] = r.Config.PrintStyle
	}
	return ret
}
