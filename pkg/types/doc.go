// Package types defines the Grid data model, cell markers, coordinates
// and directions, and the standard error values for the maze generator.
package types
