// Package cli 实现rastereval的cobra命令
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/wgdzlh/rasterlap"
	"github.com/wgdzlh/rasterlap/gdalio"
	"github.com/wgdzlh/rasterlap/log"

	"github.com/spf13/cobra"
)

var Version = "dev"

type globalFlags struct {
	logLevel   string
	logJSON    bool
	gdalConfig []string
	jsonOutput bool
}

var gf globalFlags

func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rastereval",
		Short: "Score positive-pixel overlap between a student raster and reference rasters",
		Long: `rastereval aligns a student raster onto the grid of a correct raster
(nearest-neighbour reprojection, clipped to the reference extent) and reports
the intersection-over-union of their positive pixels as a percentage.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return log.Init(gf.logLevel, gf.logJSON)
		},
	}
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&gf.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	pf.BoolVar(&gf.logJSON, "log-json", false, "Write logs as JSON")
	pf.StringArrayVar(&gf.gdalConfig, "gdal-config", nil, "GDAL config option KEY=VALUE applied when opening rasters (repeatable)")
	pf.BoolVar(&gf.jsonOutput, "json", false, "Output in JSON format")

	rootCmd.AddCommand(NewScoreCommand())
	rootCmd.AddCommand(NewBestCommand())
	rootCmd.AddCommand(NewBatchCommand())
	return rootCmd
}

func Execute(rootCmd *cobra.Command) {
	err := rootCmd.Execute()
	_ = log.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newToolbox() *gdalio.Toolbox {
	return gdalio.NewToolbox(gdalio.WithConfig(gf.gdalConfig...))
}

func newEvaluator(tb *gdalio.Toolbox) *rasterlap.Evaluator {
	return rasterlap.NewEvaluator(tb, tb, tb)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
