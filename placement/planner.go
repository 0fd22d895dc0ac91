package placement

import (
	"github.com/cockroachdb/errors"
	"github.com/hlsfab/floorplan/area"
	"github.com/hlsfab/floorplan/device"
	"github.com/hlsfab/floorplan/regionalloc"
	"github.com/hlsfab/floorplan/regionutils"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/rs/xid"
	"golang.org/x/exp/slog"
)

// Assignment places one port in a coarse region
type Assignment struct {
	Port   Port
	Region device.Coordinate
}

// Plan is the result of one placement pass
type Plan struct {
	ID       string
	PartNum  string
	SLRCount int
	// CtrlRegion is nil when the device does not define a control instance region
	CtrlRegion  *device.Coordinate
	Assignments []Assignment
	Area        area.Entry

	// Statistics is only populated for devices whose ports are placed by NOC allocation
	Statistics *regionutils.DetailedStatistics
}

// Planner runs placement passes against a device table. A Planner holds no pass state, so one
// Planner may run any number of passes, but every pass gets its own region allocator.
type Planner struct {
	logger *slog.Logger
	table  *device.Table
}

func NewPlanner(logger *slog.Logger, table *device.Table) *Planner {
	return &Planner{
		logger: logger,
		table:  table,
	}
}

// Plan assigns a region to every port, in order. Devices with NOC regions place ports with a
// fresh regionalloc.Allocator; other devices use their fixed port maps. The first port that
// cannot be placed fails the whole pass.
func (p *Planner) Plan(partNum string, ports []Port) (*Plan, error) {
	family, err := p.table.Lookup(partNum)
	if err != nil {
		return nil, err
	}

	plan := &Plan{
		PartNum:     partNum,
		SLRCount:    family.SLRCount,
		Assignments: make([]Assignment, 0, len(ports)),
	}
	if family.CtrlRegion != nil {
		ctrlRegion := *family.CtrlRegion
		plan.CtrlRegion = &ctrlRegion
	}

	var place func(port Port) (device.Coordinate, error)
	var allocator *regionalloc.Allocator
	if family.HasNOC() {
		allocator, err = regionalloc.NewWithSource(p.logger, p.table, partNum, regionalloc.CreateOptions{
			Flags: regionalloc.AllocatorCreateExternallySynchronized,
		})
		if err != nil {
			return nil, err
		}

		plan.ID = allocator.ID()
		place = func(port Port) (device.Coordinate, error) {
			return allocator.Allocate(port.Category)
		}
	} else {
		plan.ID = xid.New().String()
		place = func(port Port) (device.Coordinate, error) {
			label, err := p.table.PortRegion(partNum, port.Category, port.Index)
			if err != nil {
				return device.Coordinate{}, err
			}
			return device.ParseLabel(label)
		}
	}

	p.logger.Debug("Planner::Plan",
		slog.String("ID", plan.ID),
		slog.String("PartNum", partNum),
		slog.Int("PortCount", len(ports)),
		slog.Bool("NOC", family.HasNOC()),
	)

	for _, port := range ports {
		region, err := place(port)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to place port %q", port.Name)
		}

		cost, err := portArea(port)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to estimate area of port %q", port.Name)
		}

		plan.Assignments = append(plan.Assignments, Assignment{Port: port, Region: region})
		plan.Area = plan.Area.Add(cost)
	}

	if allocator != nil {
		var stats regionutils.DetailedStatistics
		stats.Clear()
		allocator.AddDetailedStatistics(&stats)
		plan.Statistics = &stats
	}

	return plan, nil
}

func portArea(port Port) (area.Entry, error) {
	cost := area.ZeroCost()

	if port.Width > 0 {
		adapter, err := area.StreamingAdapterCost(port.Width)
		if err != nil {
			return area.Entry{}, err
		}
		cost = cost.Add(adapter)
	}

	if port.Category == device.CategoryHBM {
		cost = cost.Add(area.MemoryChannelCost())
	}

	return cost, nil
}

// RegionsByInstance maps each port name to the label of its region
func (p *Plan) RegionsByInstance() map[string]string {
	regions := make(map[string]string, len(p.Assignments))
	for _, assignment := range p.Assignments {
		regions[assignment.Port.Name] = assignment.Region.Label()
	}
	return regions
}

// WriteJSON writes the plan as a single json object
func (p *Plan) WriteJSON(writer *jwriter.Writer) {
	objState := writer.Object()
	defer objState.End()

	objState.Name("ID").String(p.ID)
	objState.Name("PartNum").String(p.PartNum)
	objState.Name("SLRCount").Int(p.SLRCount)
	if p.CtrlRegion != nil {
		objState.Name("CtrlRegion").String(p.CtrlRegion.Label())
	} else {
		objState.Name("CtrlRegion").Null()
	}

	arrayState := objState.Name("Assignments").Array()
	for _, assignment := range p.Assignments {
		obj := arrayState.Object()
		obj.Name("Name").String(assignment.Port.Name)
		obj.Name("Category").String(assignment.Port.Category.String())
		obj.Name("Index").Int(assignment.Port.Index)
		obj.Name("Width").Int(assignment.Port.Width)
		obj.Name("Region").String(assignment.Region.Label())
		obj.End()
	}
	arrayState.End()

	areaObj := objState.Name("Area").Object()
	p.Area.WriteJSON(&areaObj)
	areaObj.End()

	if p.Statistics != nil {
		statsObj := objState.Name("Statistics").Object()
		statsObj.Name("RegionCount").Int(p.Statistics.RegionCount)
		statsObj.Name("AllocationCount").Int(p.Statistics.AllocationCount)
		statsObj.Name("CapacityUnits").Int(p.Statistics.CapacityUnits)
		statsObj.Name("AllocatedUnits").Int(p.Statistics.AllocatedUnits)
		statsObj.Name("ExhaustedRegionCount").Int(p.Statistics.ExhaustedRegionCount)
		statsObj.End()
	}
}
