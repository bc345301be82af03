// Package model defines shared data structures.
package model

// Config defines drill settings.
type Config struct {
	Problems  int
	MinFactor int
	MaxFactor int
	Seed      int64
}
