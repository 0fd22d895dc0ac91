// Package cmd provides the command-line interface for floorplan.
package cmd

import (
	"os"

	"github.com/hlsfab/floorplan/device"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
	"golang.org/x/exp/slog"
)

// partNumEnv names the environment variable that provides the default --part value
const partNumEnv = "FLOORPLAN_PART_NUM"

var (
	partNum string
	verbose bool
	logger  *slog.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "floorplan",
	Short: "Region allocation and area estimation for HLS kernels on FPGA devices.",
	Long: `floorplan assigns the memory ports of an HLS kernel to coarse regions of ` +
		`an FPGA device, estimates the area of the generated memory adapters and ` +
		`writes pblock placement constraints.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.HandlerOptions{Level: level}.NewTextHandler(os.Stderr))
	},
}

func init() {
	// A missing .env file is fine
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVarP(&partNum, "part", "p", os.Getenv(partNumEnv),
		"FPGA part number, defaults to $"+partNumEnv)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(devicesCmd)
	rootCmd.AddCommand(regionsCmd)
	rootCmd.AddCommand(portRegionCmd)
	rootCmd.AddCommand(areaCmd)
	rootCmd.AddCommand(planCmd)
}

func requirePartNum() (*device.Family, error) {
	if partNum == "" {
		return nil, errMissingPartNum
	}
	return device.Lookup(partNum)
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		atexit.Exit(1)
	}
	atexit.Exit(0)
}
