package regionalloc

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/hlsfab/floorplan/device"
	"github.com/rs/xid"
	"golang.org/x/exp/slog"
)

// CreateFlags indicate specific allocator behaviors to activate or deactivate
type CreateFlags int32

var allocatorCreateFlagsMapping = map[CreateFlags]string{}

func (f CreateFlags) Register(str string) {
	allocatorCreateFlagsMapping[f] = str
}

func (f CreateFlags) String() string {
	var names []string
	for bit := CreateFlags(1); bit != 0 && bit <= f; bit <<= 1 {
		if f&bit == 0 {
			continue
		}
		name, ok := allocatorCreateFlagsMapping[bit]
		if !ok {
			name = "UnknownFlag"
		}
		names = append(names, name)
	}
	return strings.Join(names, "|")
}

const (
	// AllocatorCreateExternallySynchronized ensures that this allocator will not be synchronized
	// internally. The consumer must guarantee it is used from only one goroutine at a time, which
	// is the normal case for a single placement pass.
	AllocatorCreateExternallySynchronized CreateFlags = 1 << iota
)

func init() {
	AllocatorCreateExternallySynchronized.Register("AllocatorCreateExternallySynchronized")
}

// CreateOptions contains optional settings when creating an allocator
type CreateOptions struct {
	// Flags indicates specific allocator behaviors to activate or deactivate
	Flags CreateFlags

	// Callbacks is an optional set of callbacks that will be executed after each successful
	// allocation
	Callbacks *CallbackOptions
}

// CapacitySource supplies the initial per-region capacity and the per-category unit costs for
// a part number. device.Table is the production implementation.
type CapacitySource interface {
	RegionsFor(partNum string) ([]device.RegionCapacity, error)
	UnitCosts(partNum string) (map[device.Category]int, error)
}

var _ CapacitySource = &device.Table{}

// New creates a new Allocator for a part number from the builtin device table
//
// options - Optional parameters: it is valid to leave all the fields blank
func New(logger *slog.Logger, partNum string, options CreateOptions) (*Allocator, error) {
	return NewWithSource(logger, device.Builtin(), partNum, options)
}

// NewWithSource creates a new Allocator for a part number. The allocator takes a private copy of
// the capacity state, so allocators never share capacity with each other.
//
// source - Provides initial region capacity and unit costs for the part number
//
// options - Optional parameters: it is valid to leave all the fields blank
func NewWithSource(logger *slog.Logger, source CapacitySource, partNum string, options CreateOptions) (*Allocator, error) {
	regions, err := source.RegionsFor(partNum)
	if err != nil {
		return nil, err
	}

	unitCosts, err := source.UnitCosts(partNum)
	if err != nil {
		return nil, err
	}

	useMutex := options.Flags&AllocatorCreateExternallySynchronized == 0

	allocator := &Allocator{
		logger:      logger,
		id:          xid.New().String(),
		partNum:     partNum,
		createFlags: options.Flags,

		regions:          make(regionList, 0, len(regions)),
		regionIndex:      swiss.NewMap[device.Coordinate, int](uint32(len(regions))),
		unitCosts:        make(map[device.Category]int, len(unitCosts)),
		allocationCounts: make(map[device.Category]int, len(unitCosts)),
	}
	allocator.mutex.UseMutex = useMutex
	allocator.callbacks = allocationCallbacks{
		Callbacks: options.Callbacks,
		Allocator: allocator,
	}

	for _, region := range regions {
		if region.Capacity < 0 {
			return nil, errors.Newf("region %s has negative initial capacity %d", region.Coordinate, region.Capacity)
		}
		if allocator.regionIndex.Has(region.Coordinate) {
			return nil, errors.Newf("region %s was provided more than once", region.Coordinate)
		}

		allocator.regionIndex.Put(region.Coordinate, len(allocator.regions))
		allocator.regions = append(allocator.regions, regionState{
			coord:     region.Coordinate,
			capacity:  region.Capacity,
			remaining: region.Capacity,
		})
	}

	for category, cost := range unitCosts {
		if cost <= 0 {
			return nil, errors.Newf("category %s has non-positive unit cost %d", category, cost)
		}
		allocator.unitCosts[category] = cost
	}

	logger.Debug("Allocator::New",
		slog.String("ID", allocator.id),
		slog.String("PartNum", partNum),
		slog.Int("RegionCount", len(allocator.regions)),
		slog.String("Flags", options.Flags.String()),
	)

	return allocator, nil
}
