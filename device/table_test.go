package device_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/hlsfab/floorplan/device"
	"github.com/hlsfab/floorplan/regionutils"
	"github.com/stretchr/testify/require"
)

const (
	u280PartNum   = "xcu280-l2fsvh2892-2L-e"
	u250PartNum   = "xcu250-figd2104-2L-e"
	vp1802PartNum = "xcvp1802-lsvc4072-2MP-e-S"
)

func TestIsPartNumSupported(t *testing.T) {
	require.True(t, device.IsPartNumSupported(u280PartNum))
	require.True(t, device.IsPartNumSupported(u250PartNum))
	require.True(t, device.IsPartNumSupported(vp1802PartNum))
	require.False(t, device.IsPartNumSupported("xcu200-fsgd2104-2-e"))
	require.False(t, device.IsPartNumSupported("xcu280"))
	require.False(t, device.IsPartNumSupported(""))

	require.Equal(t, []string{"xcu280-", "xcu250-", "xcvp1802-"}, device.SupportedPrefixes())
}

func TestLookupUnknownPartNum(t *testing.T) {
	_, err := device.Lookup("xc7a35ticsg324-1L")
	require.Error(t, err)

	var deviceErr *regionutils.UnsupportedDeviceError
	require.True(t, errors.As(err, &deviceErr))
	require.Equal(t, "xc7a35ticsg324-1L", deviceErr.PartNum)
}

func TestSLRCount(t *testing.T) {
	count, err := device.SLRCount(u280PartNum)
	require.NoError(t, err)
	require.Equal(t, 3, count)

	count, err = device.SLRCount(u250PartNum)
	require.NoError(t, err)
	require.Equal(t, 4, count)

	count, err = device.SLRCount(vp1802PartNum)
	require.NoError(t, err)
	require.Equal(t, 4, count)

	_, err = device.SLRCount("xcku115-flvb2104-2-e")
	require.Error(t, err)
}

func TestCtrlInstanceRegion(t *testing.T) {
	region, err := device.CtrlInstanceRegion(u280PartNum)
	require.NoError(t, err)
	require.Equal(t, "COARSE_X1Y0", region.Label())

	region, err = device.CtrlInstanceRegion(u250PartNum)
	require.NoError(t, err)
	require.Equal(t, "COARSE_X1Y0", region.Label())

	_, err = device.CtrlInstanceRegion(vp1802PartNum)
	var deviceErr *regionutils.UnsupportedDeviceError
	require.True(t, errors.As(err, &deviceErr))
	require.Equal(t, vp1802PartNum, deviceErr.PartNum)
}

func TestRegionsForReferenceDevice(t *testing.T) {
	regions, err := device.RegionsFor(vp1802PartNum)
	require.NoError(t, err)
	require.Equal(t, []device.RegionCapacity{
		{Coordinate: device.Coordinate{X: 0, Y: 0}, Capacity: 28},
		{Coordinate: device.Coordinate{X: 0, Y: 1}, Capacity: 24},
		{Coordinate: device.Coordinate{X: 0, Y: 2}, Capacity: 24},
		{Coordinate: device.Coordinate{X: 0, Y: 3}, Capacity: 24},
		{Coordinate: device.Coordinate{X: 1, Y: 0}, Capacity: 28},
		{Coordinate: device.Coordinate{X: 1, Y: 1}, Capacity: 24},
		{Coordinate: device.Coordinate{X: 1, Y: 2}, Capacity: 24},
		{Coordinate: device.Coordinate{X: 1, Y: 3}, Capacity: 24},
	}, regions)

	// Callers get their own copy
	regions[0].Capacity = 0
	fresh, err := device.RegionsFor(vp1802PartNum)
	require.NoError(t, err)
	require.Equal(t, 28, fresh[0].Capacity)
}

func TestTotalCapacityMatchesRegionSum(t *testing.T) {
	for _, partNum := range []string{u280PartNum, u250PartNum, vp1802PartNum} {
		regions, err := device.RegionsFor(partNum)
		require.NoError(t, err)

		var sum int
		for _, region := range regions {
			sum += region.Capacity
		}

		total, err := device.TotalCapacity(partNum)
		require.NoError(t, err)
		require.Equal(t, sum, total, partNum)
	}

	total, err := device.TotalCapacity(vp1802PartNum)
	require.NoError(t, err)
	require.Equal(t, 200, total)

	regions, err := device.RegionsFor(u280PartNum)
	require.NoError(t, err)
	require.Empty(t, regions)
}

func TestUnitCosts(t *testing.T) {
	costs, err := device.UnitCosts(vp1802PartNum)
	require.NoError(t, err)
	require.Equal(t, map[device.Category]int{
		device.CategoryDDR:   2,
		device.CategoryLPDDR: 2,
	}, costs)

	costs, err = device.UnitCosts(u250PartNum)
	require.NoError(t, err)
	require.Empty(t, costs)
}

func TestPortRegionU280(t *testing.T) {
	region, err := device.PortRegion(u280PartNum, device.CategoryHBM, 17)
	require.NoError(t, err)
	require.Equal(t, "COARSE_X1Y0", region)

	region, err = device.PortRegion(u280PartNum, device.CategoryHBM, 0)
	require.NoError(t, err)
	require.Equal(t, "COARSE_X0Y0", region)

	region, err = device.PortRegion(u280PartNum, device.CategoryHBM, 15)
	require.NoError(t, err)
	require.Equal(t, "COARSE_X0Y0", region)

	region, err = device.PortRegion(u280PartNum, device.CategoryDDR, 1)
	require.NoError(t, err)
	require.Equal(t, "COARSE_X1Y1", region)

	region, err = device.PortRegion(u280PartNum, device.CategoryPLRAM, 5)
	require.NoError(t, err)
	require.Equal(t, "COARSE_X1Y2", region)

	_, err = device.PortRegion(u280PartNum, device.CategoryHBM, 32)
	var portErr *regionutils.UnsupportedPortError
	require.True(t, errors.As(err, &portErr))
	require.Equal(t, u280PartNum, portErr.PartNum)
	require.Equal(t, "HBM", portErr.Category)
	require.Equal(t, 32, portErr.Port)

	_, err = device.PortRegion(u280PartNum, device.CategoryHBM, -1)
	require.True(t, errors.As(err, &portErr))

	_, err = device.PortRegion(u280PartNum, device.CategoryLPDDR, 0)
	require.True(t, errors.As(err, &portErr))
}

func TestPortRegionU250(t *testing.T) {
	for port := 0; port < 4; port++ {
		region, err := device.PortRegion(u250PartNum, device.CategoryDDR, port)
		require.NoError(t, err)
		require.Equal(t, device.Coordinate{X: 1, Y: port}.Label(), region)

		region, err = device.PortRegion(u250PartNum, device.CategoryPLRAM, port)
		require.NoError(t, err)
		require.Equal(t, device.Coordinate{X: 1, Y: port}.Label(), region)
	}

	_, err := device.PortRegion(u250PartNum, device.CategoryDDR, 4)
	var portErr *regionutils.UnsupportedPortError
	require.True(t, errors.As(err, &portErr))

	_, err = device.PortRegion(u250PartNum, device.CategoryHBM, 0)
	require.True(t, errors.As(err, &portErr))
}

func TestPortRegionUnknownDevice(t *testing.T) {
	_, err := device.PortRegion("xcu55c-fsvh2892-2L-e", device.CategoryHBM, 0)

	var portErr *regionutils.UnsupportedPortError
	require.True(t, errors.As(err, &portErr))

	var deviceErr *regionutils.UnsupportedDeviceError
	require.True(t, errors.As(err, &deviceErr))
	require.Equal(t, "xcu55c-fsvh2892-2L-e", deviceErr.PartNum)

	// Allocatable devices have no fixed port maps
	_, err = device.PortRegion(vp1802PartNum, device.CategoryDDR, 0)
	require.True(t, errors.As(err, &portErr))
	require.False(t, errors.As(err, &deviceErr))
}

func TestNewTableRejectsBadFamilies(t *testing.T) {
	_, err := device.NewTable(&device.Family{Prefix: "a-"}, &device.Family{Prefix: "a-"})
	require.Error(t, err)

	_, err = device.NewTable(&device.Family{})
	require.Error(t, err)

	_, err = device.NewTable(&device.Family{
		Prefix:     "b-",
		NOCRegions: []device.RegionCapacity{{Capacity: -1}},
	})
	require.Error(t, err)

	_, err = device.NewTable(&device.Family{
		Prefix: "c-",
		NOCRegions: []device.RegionCapacity{
			{Coordinate: device.Coordinate{X: 0, Y: 0}, Capacity: 4},
			{Coordinate: device.Coordinate{X: 0, Y: 0}, Capacity: 4},
		},
	})
	require.Error(t, err)

	_, err = device.NewTable(&device.Family{
		Prefix:    "d-",
		UnitCosts: map[device.Category]int{device.CategoryDDR: 0},
	})
	require.Error(t, err)

	table, err := device.NewTable(&device.Family{Prefix: "e-", SLRCount: 1})
	require.NoError(t, err)
	require.True(t, table.IsPartNumSupported("e-1"))
	require.False(t, table.IsPartNumSupported(vp1802PartNum))
}
