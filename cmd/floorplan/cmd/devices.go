package cmd

import (
	"fmt"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/hlsfab/floorplan/device"
	"github.com/spf13/cobra"
)

var errMissingPartNum = errors.New("no part number given: pass --part or set " + partNumEnv)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List supported device families.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, family := range device.BuiltinFamilies() {
			mode := "fixed port maps"
			if family.HasNOC() {
				mode = fmt.Sprintf("NOC allocation, %d units", family.TotalCapacity())
			}
			if family.PartNum != "" {
				mode += ", reference part " + family.PartNum
			}
			fmt.Fprintf(out, "%-12s SLRs: %d  %s\n", family.Prefix, family.SLRCount, mode)
		}
		return nil
	},
}

var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "Print the NOC capacity of every coarse region of the part.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		family, err := requirePartNum()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !family.HasNOC() {
			fmt.Fprintf(out, "%s places ports through fixed port maps\n", partNum)
			return nil
		}

		regions, err := device.RegionsFor(partNum)
		if err != nil {
			return err
		}
		for _, region := range regions {
			fmt.Fprintf(out, "%s %d\n", region.Coordinate.Label(), region.Capacity)
		}
		fmt.Fprintf(out, "total %d\n", family.TotalCapacity())
		return nil
	},
}

var portRegionCmd = &cobra.Command{
	Use:   "port-region CATEGORY PORT",
	Short: "Print the region a fixed platform port is wired to.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if partNum == "" {
			return errMissingPartNum
		}

		category, err := device.ParseCategory(args[0])
		if err != nil {
			return err
		}

		port, err := strconv.Atoi(args[1])
		if err != nil {
			return errors.Wrapf(err, "invalid port index %q", args[1])
		}

		region, err := device.PortRegion(partNum, category, port)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), region)
		return nil
	},
}
