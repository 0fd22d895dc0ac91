package device

// PortMap is a fixed, non-allocatable mapping from a port index of one category to the
// coarse region that the platform wires it to. Ports are valid in [0, Count).
type PortMap struct {
	Count  int
	Region func(port int) Coordinate
}

// Family describes every part number that shares a prefix. Families are immutable once
// they have been added to a Table.
type Family struct {
	// Prefix is matched against the start of a part number, e.g. "xcu280-"
	Prefix string
	// PartNum is the full reference part number for the family, if there is one
	PartNum string
	// SLRCount is the number of super logic regions in the package
	SLRCount int

	// CtrlRegion is the region holding the control instance, nil if the family does not define one
	CtrlRegion *Coordinate

	// PortMaps holds the fixed port-to-region mappings, keyed by category
	PortMaps map[Category]PortMap

	// NOCRegions is the allocatable NOC capacity per coarse region, in registration order.
	// Allocation walks this order.
	NOCRegions []RegionCapacity
	// UnitCosts is the number of NOC capacity units a single port of each category consumes.
	// Categories missing from this map cannot be allocated on the family.
	UnitCosts map[Category]int
}

// HasNOC returns true if ports on this family are placed by allocating NOC capacity rather than
// through fixed port maps
func (f *Family) HasNOC() bool {
	return len(f.NOCRegions) > 0
}

// TotalCapacity is the sum of the initial capacity of every NOC region
func (f *Family) TotalCapacity() int {
	var total int
	for _, region := range f.NOCRegions {
		total += region.Capacity
	}
	return total
}

func fixedColumn(x int) func(port int) Coordinate {
	return func(port int) Coordinate {
		return Coordinate{X: x, Y: port}
	}
}

var xcu280 = &Family{
	Prefix:     "xcu280-",
	SLRCount:   3,
	CtrlRegion: &Coordinate{X: 1, Y: 0},
	PortMaps: map[Category]PortMap{
		CategoryHBM: {Count: 32, Region: func(port int) Coordinate {
			return Coordinate{X: port / 16, Y: 0}
		}},
		CategoryDDR: {Count: 2, Region: fixedColumn(1)},
		CategoryPLRAM: {Count: 6, Region: func(port int) Coordinate {
			return Coordinate{X: 1, Y: port / 2}
		}},
	},
}

var xcu250 = &Family{
	Prefix:     "xcu250-",
	SLRCount:   4,
	CtrlRegion: &Coordinate{X: 1, Y: 0},
	PortMaps: map[Category]PortMap{
		CategoryDDR:   {Count: 4, Region: fixedColumn(1)},
		CategoryPLRAM: {Count: 4, Region: fixedColumn(1)},
	},
}

// 4 SLRs, each split vertically into two coarse regions:
//
//	COARSE_X0Y0 = CR_X0Y0:CR_X4Y4   | COARSE_X1Y0 = CR_X5Y0:CR_X9Y4
//	COARSE_X0Y1 = CR_X0Y5:CR_X4Y7   | COARSE_X1Y1 = CR_X5Y5:CR_X9Y7
//	COARSE_X0Y2 = CR_X0Y8:CR_X4Y10  | COARSE_X1Y2 = CR_X5Y8:CR_X9Y10
//	COARSE_X0Y3 = CR_X0Y11:CR_X4Y13 | COARSE_X1Y3 = CR_X5Y11:CR_X9Y13
var xcvp1802 = &Family{
	Prefix:   "xcvp1802-",
	PartNum:  "xcvp1802-lsvc4072-2MP-e-S",
	SLRCount: 4,
	NOCRegions: []RegionCapacity{
		{Coordinate: Coordinate{X: 0, Y: 0}, Capacity: 28},
		{Coordinate: Coordinate{X: 0, Y: 1}, Capacity: 24},
		{Coordinate: Coordinate{X: 0, Y: 2}, Capacity: 24},
		{Coordinate: Coordinate{X: 0, Y: 3}, Capacity: 24},
		{Coordinate: Coordinate{X: 1, Y: 0}, Capacity: 28},
		{Coordinate: Coordinate{X: 1, Y: 1}, Capacity: 24},
		{Coordinate: Coordinate{X: 1, Y: 2}, Capacity: 24},
		{Coordinate: Coordinate{X: 1, Y: 3}, Capacity: 24},
	},
	UnitCosts: map[Category]int{
		CategoryDDR:   2,
		CategoryLPDDR: 2,
	},
}

// BuiltinFamilies returns the device families this module knows about, in prefix-match order
func BuiltinFamilies() []*Family {
	return []*Family{xcu280, xcu250, xcvp1802}
}
