// README: Common value types shared across modules.
package types

// ID identifies sessions, cases and customers.
type ID string

// Point is a geographic coordinate in decimal degrees.
// Lat is in [-90,90], Lng in [-180,180]; the registry loader enforces the range.
type Point struct {
	Lat float64
	Lng float64
}
