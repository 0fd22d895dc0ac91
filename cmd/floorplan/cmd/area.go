package cmd

import (
	"fmt"

	"github.com/hlsfab/floorplan/area"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/spf13/cobra"
)

var areaCmd = &cobra.Command{
	Use:   "area",
	Short: "Print the estimated area of a streaming memory adapter or a memory channel.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		width, _ := cmd.Flags().GetInt("width")
		channel, _ := cmd.Flags().GetBool("channel")

		entry := area.ZeroCost()
		if channel {
			entry = entry.Add(area.MemoryChannelCost())
		}
		if cmd.Flags().Changed("width") {
			adapter, err := area.StreamingAdapterCost(width)
			if err != nil {
				return err
			}
			entry = entry.Add(adapter)
		}

		writer := jwriter.NewWriter()
		obj := writer.Object()
		entry.WriteJSON(&obj)
		obj.End()

		fmt.Fprintln(cmd.OutOrStdout(), string(writer.Bytes()))
		return writer.Error()
	},
}

func init() {
	areaCmd.Flags().Int("width", 0, "data channel width in bits of a streaming memory adapter")
	areaCmd.Flags().Bool("channel", false, "include the cost of one off-chip memory channel")
}
