//go:build race

package slicesimd

func init() { raceEnabled = true }
