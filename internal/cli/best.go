package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

type bestResult struct {
	Student string   `json:"student"`
	Correct []string `json:"correct"`
	Percent float64  `json:"percent"`
	Index   int      `json:"index"`
}

func NewBestCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "best STUDENT CORRECT...",
		Short: "Best overlap percentage and index among several correct rasters",
		Long: `Scores the student raster against every correct raster and prints the
highest percentage with the 0-based index of the matching raster. Ties keep
the earliest raster; index -1 means no candidate overlapped at all.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBest(cmd.OutOrStdout(), newEvaluator(newToolbox()), args[0], args[1:])
		},
	}
}

func runBest(w io.Writer, ev bestMatcher, student string, correct []string) (err error) {
	m, err := ev.EvaluateBestMatch(student, correct)
	if err != nil {
		return
	}
	if gf.jsonOutput {
		return writeJSON(w, bestResult{Student: student, Correct: correct, Percent: m.Percent, Index: m.Index})
	}
	_, err = fmt.Fprintf(w, "%.4f %d\n", m.Percent, m.Index)
	return
}
