package types

import "time"

// Maze is a generated maze with its metadata. The ID is a UUID v7
// assigned on generation; Seed is the value that reproduces the grid.
type Maze struct {
	ID        string    `json:"id"`
	Seed      int64     `json:"seed"`
	Length    int       `json:"length"`
	Width     int       `json:"width"`
	Grid      *Grid     `json:"grid"`
	CreatedAt time.Time `json:"createdAt"`
}
