package placement

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
)

var cellEscaper = strings.NewReplacer(`[`, `\\[`, `.`, `\\.`)

// WriteConstraints writes a Tcl script that adds each assigned port's cells to the pblock of its
// region. Regions appear in the order they are first assigned; pre and post are copied verbatim
// before and after the pblock commands.
func WriteConstraints(w io.Writer, assignments []Assignment, pre, post string) error {
	var pblocks []string
	cellsByPblock := make(map[string][]string)
	for _, assignment := range assignments {
		pblock := assignment.Region.Label()
		if _, ok := cellsByPblock[pblock]; !ok {
			pblocks = append(pblocks, pblock)
		}
		cellsByPblock[pblock] = append(cellsByPblock[pblock], assignment.Port.Name)
	}

	out := bufio.NewWriter(w)
	out.WriteString("# partitioning constraints generated by floorplan\n")
	out.WriteString("# modify only if you know what you are doing\n")
	out.WriteString("puts \"applying partitioning constraints generated by floorplan\"\n")
	out.WriteString(pre)
	out.WriteString("\n")

	for _, pblock := range pblocks {
		fmt.Fprintf(out, "add_cells_to_pblock [get_pblocks %s] [get_cells -regex {\n", pblock)
		for _, cell := range cellsByPblock[pblock] {
			fmt.Fprintf(out, "  pfm_top_i/dynamic_region/.*/inst/%s\n", cellEscaper.Replace(cell))
		}
		out.WriteString("}]\n")
	}
	out.WriteString(post)

	return errors.Wrap(out.Flush(), "failed to write placement constraints")
}
