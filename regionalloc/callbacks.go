package regionalloc

import "github.com/hlsfab/floorplan/device"

type AllocateRegionCallback func(
	allocator *Allocator,
	category device.Category,
	region device.Coordinate,
	cost int,
	userData interface{},
)

type CallbackOptions struct {
	Allocate AllocateRegionCallback
	UserData interface{}
}

type allocationCallbacks struct {
	Callbacks *CallbackOptions
	Allocator *Allocator
}

func (c *allocationCallbacks) Allocate(
	category device.Category,
	region device.Coordinate,
	cost int,
) {
	if c.Callbacks != nil && c.Callbacks.Allocate != nil {
		c.Callbacks.Allocate(c.Allocator, category, region, cost, c.Callbacks.UserData)
	}
}
