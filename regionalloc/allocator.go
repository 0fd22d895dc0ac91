package regionalloc

import (
	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/hlsfab/floorplan/device"
	"github.com/hlsfab/floorplan/regionalloc/internal/utils"
	"github.com/hlsfab/floorplan/regionutils"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"golang.org/x/exp/slog"
)

type regionState struct {
	coord     device.Coordinate
	capacity  int
	remaining int
}

type regionList []regionState

func (l regionList) totalRemaining() int {
	var total int
	for _, region := range l {
		total += region.remaining
	}
	return total
}

func (l regionList) Validate() error {
	for _, region := range l {
		if region.remaining < 0 {
			return errors.Errorf("region %s has negative remaining capacity %d", region.coord, region.remaining)
		}
		if region.remaining > region.capacity {
			return errors.Errorf("region %s has %d units remaining but only %d units of capacity", region.coord, region.remaining, region.capacity)
		}
	}

	return nil
}

// Allocator hands out NOC capacity from the coarse regions of one device to memory ports. It
// is intended to live for a single placement pass. Each call to Allocate picks the first region,
// in registration order, with enough remaining capacity for one port of the requested category.
//
// Capacity only ever decreases: there is no way to return capacity to an Allocator. Create a new
// Allocator to start a fresh pass.
type Allocator struct {
	logger      *slog.Logger
	id          string
	partNum     string
	createFlags CreateFlags
	callbacks   allocationCallbacks

	mutex            utils.OptionalRWMutex
	regions          regionList
	regionIndex      *swiss.Map[device.Coordinate, int]
	unitCosts        map[device.Category]int
	allocationCounts map[device.Category]int
}

// ID is a unique identifier for this allocator, useful for correlating logs from one placement pass
func (a *Allocator) ID() string {
	return a.id
}

// PartNum is the part number the allocator was created for
func (a *Allocator) PartNum() string {
	return a.partNum
}

// UnitCost returns the capacity units a single port of the category consumes, and false if the
// category cannot be allocated on this device
func (a *Allocator) UnitCost(category device.Category) (int, bool) {
	cost, ok := a.unitCosts[category]
	return cost, ok
}

// Allocate reserves capacity for a single port of the requested category and returns the
// region it was placed in.
//
// If the device has no region mapping for the category, an UnsupportedCategoryError is returned.
// If no region has enough remaining capacity, a CapacityExhaustedError is returned. Failed calls
// do not modify the allocator.
func (a *Allocator) Allocate(category device.Category) (device.Coordinate, error) {
	a.logger.Debug("Allocator::Allocate", slog.String("Category", category.String()))

	a.mutex.Lock()
	region, cost, err := a.allocateAfterLock(category)
	a.mutex.Unlock()

	if err != nil {
		return device.Coordinate{}, err
	}

	a.logger.Debug("    Allocated region",
		slog.String("Region", region.Label()),
		slog.String("Category", category.String()),
		slog.Int("Cost", cost),
	)
	a.callbacks.Allocate(category, region, cost)

	return region, nil
}

func (a *Allocator) allocateAfterLock(category device.Category) (device.Coordinate, int, error) {
	cost, ok := a.unitCosts[category]
	if !ok {
		return device.Coordinate{}, 0, errors.WithStack(&regionutils.UnsupportedCategoryError{
			Category: category.String(),
			PartNum:  a.partNum,
		})
	}

	for i := range a.regions {
		region := &a.regions[i]
		if region.remaining < cost {
			continue
		}

		region.remaining -= cost
		a.allocationCounts[category]++
		regionutils.DebugValidate(a.regions)

		return region.coord, cost, nil
	}

	return device.Coordinate{}, 0, errors.WithStack(&regionutils.CapacityExhaustedError{
		Category:  category.String(),
		PartNum:   a.partNum,
		Cost:      cost,
		Remaining: a.regions.totalRemaining(),
	})
}

// Remaining returns the capacity left in a region, and false if the region does not belong to
// this allocator
func (a *Allocator) Remaining(region device.Coordinate) (int, bool) {
	a.mutex.RLock()
	defer a.mutex.RUnlock()

	index, ok := a.regionIndex.Get(region)
	if !ok {
		return 0, false
	}
	return a.regions[index].remaining, true
}

// TotalRemaining returns the capacity left across every region
func (a *Allocator) TotalRemaining() int {
	a.mutex.RLock()
	defer a.mutex.RUnlock()

	return a.regions.totalRemaining()
}

// Regions returns the current remaining capacity of every region, in allocation order
func (a *Allocator) Regions() []device.RegionCapacity {
	a.mutex.RLock()
	defer a.mutex.RUnlock()

	regions := make([]device.RegionCapacity, 0, len(a.regions))
	for _, region := range a.regions {
		regions = append(regions, device.RegionCapacity{
			Coordinate: region.coord,
			Capacity:   region.remaining,
		})
	}
	return regions
}

// AllocationCount returns the number of successful allocations made for a category
func (a *Allocator) AllocationCount(category device.Category) int {
	a.mutex.RLock()
	defer a.mutex.RUnlock()

	return a.allocationCounts[category]
}

// Validate performs internal consistency checks on the allocator. It should not be possible for
// this method to return an error.
func (a *Allocator) Validate() error {
	a.mutex.RLock()
	defer a.mutex.RUnlock()

	if a.regionIndex.Count() != len(a.regions) {
		return errors.Errorf("the region index holds %d regions but the allocator holds %d", a.regionIndex.Count(), len(a.regions))
	}

	for i, region := range a.regions {
		index, ok := a.regionIndex.Get(region.coord)
		if !ok || index != i {
			return errors.Errorf("region %s is not indexed at position %d", region.coord, i)
		}
	}

	var allocatedUnits int
	for category, count := range a.allocationCounts {
		allocatedUnits += count * a.unitCosts[category]
	}

	var consumedUnits int
	for _, region := range a.regions {
		consumedUnits += region.capacity - region.remaining
	}

	if allocatedUnits != consumedUnits {
		return errors.Errorf("allocations account for %d units but regions have lost %d units", allocatedUnits, consumedUnits)
	}

	return a.regions.Validate()
}

// AddStatistics sums this allocator's statistics into the provided regionutils.Statistics object
func (a *Allocator) AddStatistics(stats *regionutils.Statistics) {
	a.mutex.RLock()
	defer a.mutex.RUnlock()

	for _, region := range a.regions {
		stats.RegionCount++
		stats.CapacityUnits += region.capacity
		stats.AllocatedUnits += region.capacity - region.remaining
	}

	for _, count := range a.allocationCounts {
		stats.AllocationCount += count
	}
}

// AddDetailedStatistics sums this allocator's statistics into the provided
// regionutils.DetailedStatistics object
func (a *Allocator) AddDetailedStatistics(stats *regionutils.DetailedStatistics) {
	a.mutex.RLock()
	defer a.mutex.RUnlock()

	for _, region := range a.regions {
		stats.AddRegion(region.capacity, region.remaining)
	}

	for _, category := range device.Categories() {
		cost := a.unitCosts[category]
		for i := 0; i < a.allocationCounts[category]; i++ {
			stats.AddAllocation(cost)
		}
	}
}

// BuildStatsString returns a json string describing the allocator's current state. If detailed
// is true, the remaining capacity of every region is included.
func (a *Allocator) BuildStatsString(detailed bool) string {
	var stats regionutils.Statistics
	a.AddStatistics(&stats)

	a.mutex.RLock()
	defer a.mutex.RUnlock()

	writer := jwriter.NewWriter()
	objState := writer.Object()

	objState.Name("ID").String(a.id)
	objState.Name("PartNum").String(a.partNum)
	objState.Name("Flags").String(a.createFlags.String())

	totalObj := objState.Name("Total").Object()
	totalObj.Name("RegionCount").Int(stats.RegionCount)
	totalObj.Name("AllocationCount").Int(stats.AllocationCount)
	totalObj.Name("CapacityUnits").Int(stats.CapacityUnits)
	totalObj.Name("AllocatedUnits").Int(stats.AllocatedUnits)
	totalObj.Name("RemainingUnits").Int(stats.RemainingUnits())
	totalObj.End()

	categoryObj := objState.Name("Categories").Object()
	for _, category := range device.Categories() {
		cost, ok := a.unitCosts[category]
		if !ok {
			continue
		}

		obj := categoryObj.Name(category.String()).Object()
		obj.Name("UnitCost").Int(cost)
		obj.Name("Allocations").Int(a.allocationCounts[category])
		obj.End()
	}
	categoryObj.End()

	if detailed {
		regionObj := objState.Name("Regions").Object()
		for _, region := range a.regions {
			obj := regionObj.Name(region.coord.Label()).Object()
			obj.Name("Capacity").Int(region.capacity)
			obj.Name("Remaining").Int(region.remaining)
			obj.End()
		}
		regionObj.End()
	}

	objState.End()

	return string(writer.Bytes())
}
