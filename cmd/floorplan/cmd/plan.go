package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/hlsfab/floorplan/device"
	"github.com/hlsfab/floorplan/placement"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
	"golang.org/x/exp/slog"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Assign a region to every memory port listed in a json file.",
	Long: "`plan --ports ports.json` reads a json array of " +
		`{"name", "category", "index", "width"} objects, assigns each port ` +
		`a coarse region and prints the placement plan as json.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		portsPath, _ := cmd.Flags().GetString("ports")
		outputPath, _ := cmd.Flags().GetString("output")
		constraintsPath, _ := cmd.Flags().GetString("constraints")

		if partNum == "" {
			return errMissingPartNum
		}

		data, err := os.ReadFile(portsPath)
		if err != nil {
			return errors.Wrapf(err, "failed to read port list")
		}

		ports, err := placement.ReadPorts(data)
		if err != nil {
			return err
		}

		plan, err := placement.NewPlanner(logger, device.Builtin()).Plan(partNum, ports)
		if err != nil {
			return err
		}

		out, err := openOutput(cmd.OutOrStdout(), outputPath)
		if err != nil {
			return err
		}

		writer := jwriter.NewWriter()
		plan.WriteJSON(&writer)
		if err := writer.Error(); err != nil {
			return err
		}
		fmt.Fprintln(out, string(writer.Bytes()))

		if constraintsPath != "" {
			constraintsOut, err := openOutput(nil, constraintsPath)
			if err != nil {
				return err
			}

			err = placement.WriteConstraints(constraintsOut, plan.Assignments, "", "")
			if err != nil {
				return err
			}
		}

		logger.Info("placement plan complete",
			slog.String("ID", plan.ID),
			slog.Int("PortCount", len(plan.Assignments)),
		)
		return nil
	},
}

// openOutput returns stdout for an empty path, or creates the file and closes it at exit
func openOutput(stdout io.Writer, path string) (io.Writer, error) {
	if path == "" {
		return stdout, nil
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create %s", path)
	}

	atexit.Register(func() {
		err := file.Close()
		if err != nil {
			logger.Error("error closing output file", slog.String("Path", path), slog.Any("error", err))
		}
	})

	return file, nil
}

func init() {
	planCmd.Flags().String("ports", "", "json file listing the kernel's memory ports")
	planCmd.Flags().StringP("output", "o", "", "write the plan to this file instead of stdout")
	planCmd.Flags().String("constraints", "", "also write pblock constraints to this Tcl file")
	_ = planCmd.MarkFlagRequired("ports")
}
