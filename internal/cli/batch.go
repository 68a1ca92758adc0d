package cli

import (
	"fmt"
	"io"

	"github.com/wgdzlh/rasterlap"
	"github.com/wgdzlh/rasterlap/log"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type bestMatcher interface {
	EvaluateBestMatch(studentPath string, correctPaths []string) (rasterlap.Match, error)
}

type batchFlags struct {
	encoding string
}

type TaskResult struct {
	Id      string  `yaml:"id" json:"id"`
	Student string  `yaml:"student" json:"student"`
	Percent float64 `yaml:"percent" json:"percent"`
	Index   int     `yaml:"index" json:"index"`
	Matched string  `yaml:"matched,omitempty" json:"matched,omitempty"`
	Error   string  `yaml:"error,omitempty" json:"error,omitempty"`
}

type Report struct {
	RunId   string       `yaml:"run_id" json:"run_id"`
	Total   int          `yaml:"total" json:"total"`
	Failed  int          `yaml:"failed" json:"failed"`
	Results []TaskResult `yaml:"results" json:"results"`
}

func NewBatchCommand() *cobra.Command {
	flags := &batchFlags{}
	cmd := &cobra.Command{
		Use:   "batch MANIFEST",
		Short: "Grade every task of a YAML manifest",
		Long: `Reads a YAML manifest of tasks (student raster plus candidate correct
rasters), grades each with best-match scoring and writes a YAML report.
A failing task records its error and the batch continues; the command exits
non-zero when any task failed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := LoadManifest(args[0], flags.encoding)
			if err != nil {
				return fmt.Errorf("load manifest %q: %w", args[0], err)
			}
			return runBatch(cmd.OutOrStdout(), newEvaluator(newToolbox()), m)
		},
	}
	cmd.Flags().StringVar(&flags.encoding, "encoding", "", "Manifest encoding: UTF-8 or GBK (overrides the manifest's encoding key)")
	return cmd
}

func gradeTasks(ev bestMatcher, m *Manifest) (rep Report) {
	rep = Report{
		RunId:   m.RunId,
		Total:   len(m.Tasks),
		Results: make([]TaskResult, 0, len(m.Tasks)),
	}
	for _, t := range m.Tasks {
		res := TaskResult{Id: t.Id, Student: t.Student, Index: rasterlap.NO_MATCH}
		best, err := ev.EvaluateBestMatch(t.Student, t.Correct)
		if err != nil {
			log.Error("Batch:task failed", zap.String("run", m.RunId), zap.String("task", t.Id), zap.Error(err))
			res.Error = err.Error()
			rep.Failed++
		} else {
			res.Percent, res.Index = best.Percent, best.Index
			if best.Index != rasterlap.NO_MATCH {
				res.Matched = t.Correct[best.Index]
			}
		}
		rep.Results = append(rep.Results, res)
	}
	return
}

func runBatch(w io.Writer, ev bestMatcher, m *Manifest) (err error) {
	rep := gradeTasks(ev, m)
	if gf.jsonOutput {
		err = writeJSON(w, rep)
	} else {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(rep); err == nil {
			err = enc.Close()
		}
	}
	if err != nil {
		return
	}
	if rep.Failed > 0 {
		err = fmt.Errorf("%d of %d tasks failed", rep.Failed, rep.Total)
	}
	return
}
