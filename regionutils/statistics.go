package regionutils

import "math"

// Statistics counts regions and the capacity units that have been handed out of them
type Statistics struct {
	RegionCount     int
	AllocationCount int
	CapacityUnits   int
	AllocatedUnits  int
}

func (s *Statistics) Clear() {
	s.RegionCount = 0
	s.AllocationCount = 0
	s.CapacityUnits = 0
	s.AllocatedUnits = 0
}

func (s *Statistics) AddStatistics(other *Statistics) {
	s.RegionCount += other.RegionCount
	s.AllocationCount += other.AllocationCount
	s.CapacityUnits += other.CapacityUnits
	s.AllocatedUnits += other.AllocatedUnits
}

// RemainingUnits is the number of capacity units that have not been allocated
func (s *Statistics) RemainingUnits() int {
	return s.CapacityUnits - s.AllocatedUnits
}

type DetailedStatistics struct {
	Statistics
	ExhaustedRegionCount int
	AllocationCostMin    int
	AllocationCostMax    int
	RemainingUnitsMin    int
	RemainingUnitsMax    int
}

func (s *DetailedStatistics) Clear() {
	s.Statistics.Clear()
	s.ExhaustedRegionCount = 0
	s.AllocationCostMin = math.MaxInt
	s.AllocationCostMax = 0
	s.RemainingUnitsMin = math.MaxInt
	s.RemainingUnitsMax = 0
}

// AddRegion records a region with the provided initial and remaining capacity
func (s *DetailedStatistics) AddRegion(capacity, remaining int) {
	s.RegionCount++
	s.CapacityUnits += capacity

	if remaining == 0 {
		s.ExhaustedRegionCount++
	}

	if remaining < s.RemainingUnitsMin {
		s.RemainingUnitsMin = remaining
	}

	if remaining > s.RemainingUnitsMax {
		s.RemainingUnitsMax = remaining
	}
}

func (s *DetailedStatistics) AddAllocation(cost int) {
	s.AllocationCount++
	s.AllocatedUnits += cost

	if cost < s.AllocationCostMin {
		s.AllocationCostMin = cost
	}

	if cost > s.AllocationCostMax {
		s.AllocationCostMax = cost
	}
}

func (s *DetailedStatistics) AddDetailedStatistics(other *DetailedStatistics) {
	s.Statistics.AddStatistics(&other.Statistics)
	s.ExhaustedRegionCount += other.ExhaustedRegionCount

	if other.RemainingUnitsMin < s.RemainingUnitsMin {
		s.RemainingUnitsMin = other.RemainingUnitsMin
	}

	if other.RemainingUnitsMax > s.RemainingUnitsMax {
		s.RemainingUnitsMax = other.RemainingUnitsMax
	}

	if other.AllocationCostMin < s.AllocationCostMin {
		s.AllocationCostMin = other.AllocationCostMin
	}

	if other.AllocationCostMax > s.AllocationCostMax {
		s.AllocationCostMax = other.AllocationCostMax
	}
}
