package cli

import (
	"fmt"
	"io"

	"github.com/wgdzlh/rasterlap"

	"github.com/spf13/cobra"
)

type rasterWriter interface {
	Write(path string, r rasterlap.Raster) error
}

// 读取、重采样、裁剪与写出能力，gdalio.Toolbox即为其实现
type scoreToolbox interface {
	rasterlap.RasterSource
	rasterlap.Resampler
	rasterlap.Clipper
	rasterWriter
}

type scoreFlags struct {
	alignedOut string
}

type scoreResult struct {
	Student string  `json:"student"`
	Correct string  `json:"correct"`
	Percent float64 `json:"percent"`
}

func NewScoreCommand() *cobra.Command {
	flags := &scoreFlags{}
	cmd := &cobra.Command{
		Use:   "score STUDENT CORRECT",
		Short: "Overlap percentage of a student raster against one correct raster",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScore(cmd.OutOrStdout(), newToolbox(), flags, args[0], args[1])
		},
	}
	cmd.Flags().StringVar(&flags.alignedOut, "aligned-out", "", "Write the aligned student raster to this GeoTIFF")
	return cmd
}

func runScore(w io.Writer, tb scoreToolbox, flags *scoreFlags, student, correct string) (err error) {
	ev := rasterlap.NewEvaluator(tb, tb, tb)
	var percent float64
	if flags.alignedOut == "" {
		if percent, err = ev.Evaluate(student, correct); err != nil {
			return
		}
	} else if percent, err = scoreAndWriteAligned(ev, tb, flags.alignedOut, student, correct); err != nil {
		return
	}
	if gf.jsonOutput {
		return writeJSON(w, scoreResult{Student: student, Correct: correct, Percent: percent})
	}
	_, err = fmt.Fprintf(w, "%.4f\n", percent)
	return
}

// 对齐结果写入out后再计分
func scoreAndWriteAligned(ev *rasterlap.Evaluator, tb scoreToolbox, out, student, correct string) (percent float64, err error) {
	sr, err := tb.Read(student)
	if err != nil {
		return
	}
	cr, err := tb.Read(correct)
	if err != nil {
		return
	}
	aligned, err := ev.Align(sr, cr)
	if err != nil {
		return
	}
	if err = tb.Write(out, aligned); err != nil {
		return
	}
	percent, err = ev.ScoreAligned(aligned, cr)
	return
}
