package device

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Coordinate locates a coarse region within a device's grid of coarse regions
type Coordinate struct {
	X int
	Y int
}

// Label formats the coordinate as the pblock name used in placement constraints,
// e.g. COARSE_X1Y0
func (c Coordinate) Label() string {
	return fmt.Sprintf("COARSE_X%dY%d", c.X, c.Y)
}

func (c Coordinate) String() string {
	return c.Label()
}

// ParseLabel is the inverse of Coordinate.Label. Only the exact form Label produces is accepted.
func ParseLabel(label string) (Coordinate, error) {
	var coord Coordinate
	_, err := fmt.Sscanf(label, "COARSE_X%dY%d", &coord.X, &coord.Y)
	if err != nil || coord.X < 0 || coord.Y < 0 || coord.Label() != label {
		return Coordinate{}, errors.Newf("malformed region label %q", label)
	}

	return coord, nil
}

// RegionCapacity pairs a coarse region with a count of capacity units (NOC channels)
type RegionCapacity struct {
	Coordinate Coordinate
	Capacity   int
}
