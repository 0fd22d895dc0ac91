package device

import (
	"github.com/cockroachdb/errors"
	"github.com/hlsfab/floorplan/regionutils"
)

// Category is the kind of off-chip memory interface a port connects to. The set is closed.
type Category uint32

const (
	// CategoryDDR is a DDR4 memory channel
	CategoryDDR Category = iota
	// CategoryLPDDR is an LPDDR4 memory channel
	CategoryLPDDR
	// CategoryHBM is a high-bandwidth memory pseudo-channel
	CategoryHBM
	// CategoryPLRAM is an on-chip memory bank exposed by the platform
	CategoryPLRAM
)

var categoryMapping = map[Category]string{
	CategoryDDR:   "DDR",
	CategoryLPDDR: "LPDDR",
	CategoryHBM:   "HBM",
	CategoryPLRAM: "PLRAM",
}

func (c Category) String() string {
	return categoryMapping[c]
}

// Categories lists every category in declaration order
func Categories() []Category {
	return []Category{CategoryDDR, CategoryLPDDR, CategoryHBM, CategoryPLRAM}
}

// ParseCategory maps a category name such as "HBM" back to its Category
func ParseCategory(name string) (Category, error) {
	for _, category := range Categories() {
		if category.String() == name {
			return category, nil
		}
	}

	return 0, errors.WithStack(&regionutils.UnsupportedCategoryError{Category: name})
}
