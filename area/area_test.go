package area_test

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/hlsfab/floorplan/area"
	"github.com/hlsfab/floorplan/regionutils"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/stretchr/testify/require"
)

func TestStreamingAdapterCostRoundsWidth(t *testing.T) {
	entry, err := area.StreamingAdapterCost(200)
	require.NoError(t, err)
	require.Equal(t, area.Entry{FF: 371, LUT: 1225, BRAM: 0, URAM: 0, DSP: 0}, entry)

	entry, err = area.StreamingAdapterCost(32)
	require.NoError(t, err)
	require.Equal(t, area.Entry{FF: 377, LUT: 786}, entry)

	entry, err = area.StreamingAdapterCost(1024)
	require.NoError(t, err)
	require.Equal(t, area.Entry{FF: 367, LUT: 2755}, entry)
}

func TestStreamingAdapterCostIdempotentUnderRounding(t *testing.T) {
	for width := 1; width <= 1024; width++ {
		entry, err := area.StreamingAdapterCost(width)
		rounded, roundedErr := area.StreamingAdapterCost(regionutils.NextPowerOfTwo(width))

		require.Equal(t, err == nil, roundedErr == nil, "width %d", width)
		require.Equal(t, rounded, entry, "width %d", width)
	}
}

func TestStreamingAdapterCostUnsupportedWidth(t *testing.T) {
	for _, width := range []int{0, 1, 2, 15, 16, 1025, 4096, -8, math.MaxInt} {
		_, err := area.StreamingAdapterCost(width)

		var widthErr *regionutils.UnsupportedWidthError
		require.True(t, errors.As(err, &widthErr), "width %d", width)
		require.Equal(t, width, widthErr.Width)
	}

	_, err := area.StreamingAdapterCost(0)
	var widthErr *regionutils.UnsupportedWidthError
	require.True(t, errors.As(err, &widthErr))
	require.Equal(t, 1, widthErr.RoundedWidth)

	_, err = area.StreamingAdapterCost(math.MaxInt)
	require.True(t, errors.As(err, &widthErr))
	require.Equal(t, regionutils.MaxPowerOfTwo, widthErr.RoundedWidth)

	entry, err := area.StreamingAdapterCost(31)
	require.NoError(t, err)
	require.Equal(t, 786, entry.LUT)

	_, err = area.StreamingAdapterCost(1025)
	require.True(t, errors.As(err, &widthErr))
	require.Equal(t, 2048, widthErr.RoundedWidth)
}

func TestFixedCosts(t *testing.T) {
	require.Equal(t, area.Entry{LUT: 5000, FF: 6500}, area.MemoryChannelCost())
	require.True(t, area.ZeroCost().IsZero())
	require.False(t, area.MemoryChannelCost().IsZero())
}

func TestTablesAreValid(t *testing.T) {
	require.NoError(t, area.Validate())
	require.Equal(t, []int{32, 64, 128, 256, 512, 1024}, area.StreamingAdapterWidths())
}

func TestSum(t *testing.T) {
	adapter, err := area.StreamingAdapterCost(512)
	require.NoError(t, err)

	total := area.Sum(adapter, adapter, area.MemoryChannelCost(), area.ZeroCost())
	require.Equal(t, area.Entry{LUT: 1735*2 + 5000, FF: 369*2 + 6500}, total)
	require.Equal(t, area.ZeroCost(), area.Sum())

	require.Error(t, area.Entry{DSP: -1}.Validate())
	require.NoError(t, total.Validate())
}

func TestEntryWriteJSON(t *testing.T) {
	writer := jwriter.NewWriter()
	obj := writer.Object()
	area.Entry{LUT: 1225, FF: 371}.WriteJSON(&obj)
	obj.End()

	require.NoError(t, writer.Error())
	require.JSONEq(t, `{"LUT":1225,"FF":371,"BRAM":0,"URAM":0,"DSP":0}`, string(writer.Bytes()))
}
