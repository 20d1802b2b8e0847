// Package progress keeps the counters of a single simulation run (actions
// applied, forks, exits, rejections, live processes). The tracker travels in
// the run context so that any component holding the context can update it.
package progress
