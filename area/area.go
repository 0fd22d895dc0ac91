package area

import (
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/hlsfab/floorplan/regionutils"
)

// asyncMMAPArea is the cost of one streaming memory adapter, keyed by its data channel
// width in bits. Widths are always powers of two.
var asyncMMAPArea = map[int]Entry{
	32:   {FF: 377, LUT: 786},
	64:   {FF: 375, LUT: 848},
	128:  {FF: 373, LUT: 971},
	256:  {FF: 371, LUT: 1225},
	512:  {FF: 369, LUT: 1735},
	1024: {FF: 367, LUT: 2755},
}

// memoryChannelArea assumes a 512-bit interface regardless of the channel's real width
var memoryChannelArea = Entry{
	LUT: 5000,
	FF:  6500,
}

// StreamingAdapterCost returns the area of a streaming memory adapter for a data channel of the
// given bit width. The width is rounded up to the next power of two (0 rounds to 1) and the
// result must be one of the tabulated widths; there is no interpolation.
func StreamingAdapterCost(bitWidth int) (Entry, error) {
	if bitWidth < 0 {
		return Entry{}, errors.WithStack(&regionutils.UnsupportedWidthError{Width: bitWidth, RoundedWidth: bitWidth})
	}

	rounded := regionutils.NextPowerOfTwo(bitWidth)
	regionutils.DebugCheckPow2(rounded, "rounded width")

	entry, ok := asyncMMAPArea[rounded]
	if !ok {
		return Entry{}, errors.WithStack(&regionutils.UnsupportedWidthError{Width: bitWidth, RoundedWidth: rounded})
	}

	return entry, nil
}

// MemoryChannelCost returns the area of one off-chip memory controller channel.
//
// The value is an approximation for a 512-bit interface and does not vary with the actual channel
// width. This is a known limitation of the model.
func MemoryChannelCost() Entry {
	return memoryChannelArea
}

// ZeroCost is the cost of resources that have no modeled area
func ZeroCost() Entry {
	return Entry{}
}

// StreamingAdapterWidths returns the tabulated widths in ascending order
func StreamingAdapterWidths() []int {
	widths := make([]int, 0, len(asyncMMAPArea))
	for width := range asyncMMAPArea {
		widths = append(widths, width)
	}
	sort.Ints(widths)
	return widths
}

// Validate checks the static tables: every width key must be a power of two and no entry may
// hold a negative count
func Validate() error {
	for _, width := range StreamingAdapterWidths() {
		err := regionutils.CheckPow2(width, "streaming adapter width")
		if err != nil {
			return err
		}

		err = asyncMMAPArea[width].Validate()
		if err != nil {
			return errors.Wrapf(err, "streaming adapter width %d", width)
		}
	}

	return memoryChannelArea.Validate()
}
