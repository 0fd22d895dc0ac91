package device

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/hlsfab/floorplan/regionutils"
)

// Table dispatches part numbers to device families by prefix. It holds the static capacity
// data for every supported device and is safe for concurrent use, since nothing in it changes
// after construction.
type Table struct {
	families []*Family
}

// NewTable builds a Table from a list of families. Families are matched in the order provided.
func NewTable(families ...*Family) (*Table, error) {
	seenPrefixes := make(map[string]struct{}, len(families))

	for _, family := range families {
		if family == nil {
			return nil, errors.New("attempted to add a nil device family")
		}
		if family.Prefix == "" {
			return nil, errors.New("device families must have a non-empty part number prefix")
		}
		if _, seen := seenPrefixes[family.Prefix]; seen {
			return nil, errors.Newf("device family prefix %q was registered twice", family.Prefix)
		}
		seenPrefixes[family.Prefix] = struct{}{}

		err := validateFamily(family)
		if err != nil {
			return nil, errors.Wrapf(err, "device family %q", family.Prefix)
		}
	}

	return &Table{families: families}, nil
}

func validateFamily(family *Family) error {
	seenRegions := make(map[Coordinate]struct{}, len(family.NOCRegions))
	for _, region := range family.NOCRegions {
		if region.Capacity < 0 {
			return errors.Newf("region %s has negative capacity %d", region.Coordinate, region.Capacity)
		}
		if _, seen := seenRegions[region.Coordinate]; seen {
			return errors.Newf("region %s was listed twice", region.Coordinate)
		}
		seenRegions[region.Coordinate] = struct{}{}
	}

	for category, cost := range family.UnitCosts {
		if cost <= 0 {
			return errors.Newf("category %s has non-positive unit cost %d", category, cost)
		}
	}

	for category, portMap := range family.PortMaps {
		if portMap.Count < 0 || portMap.Region == nil {
			return errors.Newf("category %s has an invalid port map", category)
		}
	}

	return nil
}

var builtinTable *Table

func init() {
	var err error
	builtinTable, err = NewTable(BuiltinFamilies()...)
	if err != nil {
		panic(err)
	}
}

// Builtin returns the table of every device family this module supports
func Builtin() *Table {
	return builtinTable
}

// SupportedPrefixes returns the part number prefixes in match order
func (t *Table) SupportedPrefixes() []string {
	prefixes := make([]string, 0, len(t.families))
	for _, family := range t.families {
		prefixes = append(prefixes, family.Prefix)
	}
	return prefixes
}

// IsPartNumSupported returns true if the part number matches any known family prefix
func (t *Table) IsPartNumSupported(partNum string) bool {
	return t.find(partNum) != nil
}

func (t *Table) find(partNum string) *Family {
	for _, family := range t.families {
		if strings.HasPrefix(partNum, family.Prefix) {
			return family
		}
	}
	return nil
}

// Lookup returns the family for a part number, or an UnsupportedDeviceError
func (t *Table) Lookup(partNum string) (*Family, error) {
	family := t.find(partNum)
	if family == nil {
		return nil, errors.WithStack(&regionutils.UnsupportedDeviceError{PartNum: partNum})
	}
	return family, nil
}

func (t *Table) SLRCount(partNum string) (int, error) {
	family, err := t.Lookup(partNum)
	if err != nil {
		return 0, err
	}
	return family.SLRCount, nil
}

// CtrlInstanceRegion returns the region the kernel's control instance is placed in
func (t *Table) CtrlInstanceRegion(partNum string) (Coordinate, error) {
	family, err := t.Lookup(partNum)
	if err != nil {
		return Coordinate{}, err
	}
	if family.CtrlRegion == nil {
		return Coordinate{}, errors.WithStack(&regionutils.UnsupportedDeviceError{
			PartNum: partNum,
			Reason:  "no control instance region is defined",
		})
	}
	return *family.CtrlRegion, nil
}

// RegionsFor returns the initial NOC capacity of every coarse region of a part number, in the
// order allocation visits them. The slice is a copy and may be modified by the caller. Families
// that place ports through fixed port maps return an empty slice.
func (t *Table) RegionsFor(partNum string) ([]RegionCapacity, error) {
	family, err := t.Lookup(partNum)
	if err != nil {
		return nil, err
	}

	regions := make([]RegionCapacity, len(family.NOCRegions))
	copy(regions, family.NOCRegions)
	return regions, nil
}

// UnitCosts returns the capacity units consumed by a single port of each category the part
// number can allocate. The map is a copy.
func (t *Table) UnitCosts(partNum string) (map[Category]int, error) {
	family, err := t.Lookup(partNum)
	if err != nil {
		return nil, err
	}

	costs := make(map[Category]int, len(family.UnitCosts))
	for category, cost := range family.UnitCosts {
		costs[category] = cost
	}
	return costs, nil
}

// TotalCapacity returns the sum of the initial capacity of every NOC region of a part number
func (t *Table) TotalCapacity(partNum string) (int, error) {
	family, err := t.Lookup(partNum)
	if err != nil {
		return 0, err
	}
	return family.TotalCapacity(), nil
}

// PortRegion returns the label of the region a port is wired to on devices with fixed port
// maps. It is a pure function of its arguments. Every failure is an UnsupportedPortError;
// when the part number itself is unknown, the error also unwraps to an UnsupportedDeviceError.
func (t *Table) PortRegion(partNum string, category Category, port int) (string, error) {
	family, err := t.Lookup(partNum)
	if err != nil {
		return "", errors.WithStack(regionutils.NewUnsupportedPortError(partNum, category.String(), port, err))
	}

	portMap, ok := family.PortMaps[category]
	if !ok || port < 0 || port >= portMap.Count {
		return "", errors.WithStack(regionutils.NewUnsupportedPortError(partNum, category.String(), port, nil))
	}

	return portMap.Region(port).Label(), nil
}

// IsPartNumSupported reports whether the builtin table knows the part number
func IsPartNumSupported(partNum string) bool {
	return builtinTable.IsPartNumSupported(partNum)
}

// SupportedPrefixes lists the builtin part number prefixes
func SupportedPrefixes() []string {
	return builtinTable.SupportedPrefixes()
}

func Lookup(partNum string) (*Family, error) {
	return builtinTable.Lookup(partNum)
}

func SLRCount(partNum string) (int, error) {
	return builtinTable.SLRCount(partNum)
}

func CtrlInstanceRegion(partNum string) (Coordinate, error) {
	return builtinTable.CtrlInstanceRegion(partNum)
}

func RegionsFor(partNum string) ([]RegionCapacity, error) {
	return builtinTable.RegionsFor(partNum)
}

func UnitCosts(partNum string) (map[Category]int, error) {
	return builtinTable.UnitCosts(partNum)
}

func TotalCapacity(partNum string) (int, error) {
	return builtinTable.TotalCapacity(partNum)
}

func PortRegion(partNum string, category Category, port int) (string, error) {
	return builtinTable.PortRegion(partNum, category, port)
}
