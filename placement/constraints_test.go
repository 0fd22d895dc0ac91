package placement_test

import (
	"strings"
	"testing"

	"github.com/hlsfab/floorplan/device"
	"github.com/hlsfab/floorplan/placement"
	"github.com/stretchr/testify/require"
)

func TestWriteConstraints(t *testing.T) {
	assignments := []placement.Assignment{
		{Port: placement.Port{Name: "mmap_a"}, Region: device.Coordinate{X: 1, Y: 0}},
		{Port: placement.Port{Name: "fifo[0].unit"}, Region: device.Coordinate{X: 0, Y: 2}},
		{Port: placement.Port{Name: "mmap_b"}, Region: device.Coordinate{X: 1, Y: 0}},
	}

	var out strings.Builder
	err := placement.WriteConstraints(&out, assignments, "# pre", "# post\n")
	require.NoError(t, err)

	require.Equal(t, `# partitioning constraints generated by floorplan
# modify only if you know what you are doing
puts "applying partitioning constraints generated by floorplan"
# pre
add_cells_to_pblock [get_pblocks COARSE_X1Y0] [get_cells -regex {
  pfm_top_i/dynamic_region/.*/inst/mmap_a
  pfm_top_i/dynamic_region/.*/inst/mmap_b
}]
add_cells_to_pblock [get_pblocks COARSE_X0Y2] [get_cells -regex {
  pfm_top_i/dynamic_region/.*/inst/fifo\\[0]\\.unit
}]
# post
`, out.String())
}

func TestWriteConstraintsEmpty(t *testing.T) {
	var out strings.Builder
	require.NoError(t, placement.WriteConstraints(&out, nil, "", ""))
	require.Equal(t, 4, strings.Count(out.String(), "\n"))
}
