// Package idgen generates opaque identifiers for simulation runs and queued
// messages. Tests may replace NewFunc for stable ids.
package idgen
