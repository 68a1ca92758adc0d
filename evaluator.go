package rasterlap

import (
	"fmt"

	"github.com/wgdzlh/rasterlap/log"

	"go.uber.org/zap"
)

// 栅格重叠评估，每次调用均重新读取栅格，不保存状态
type Evaluator struct {
	source  RasterSource
	aligner *Aligner
	logTag  string
}

func NewEvaluator(source RasterSource, resampler Resampler, clipper Clipper) *Evaluator {
	return &Evaluator{
		source:  source,
		aligner: NewAligner(resampler, clipper),
		logTag:  "Evaluator:",
	}
}

func (e *Evaluator) read(role, path string) (r Raster, err error) {
	if r, err = e.source.Read(path); err != nil {
		log.Error(e.logTag+"read raster failed", zap.String("role", role), zap.String("path", path), zap.Error(err))
		err = fmt.Errorf("%s raster: %w", role, err)
	}
	return
}

// 将student对齐到correct网格
func (e *Evaluator) Align(student, correct Raster) (Raster, error) {
	return e.aligner.ReprojectAndClip(student, correct.Transform, correct.CRS, correct.Shape())
}

// 已对齐栅格与参考栅格的重叠百分比
func (e *Evaluator) ScoreAligned(aligned, correct Raster) (percent float64, err error) {
	c, err := Counts(aligned.Grid, correct.Grid)
	if err != nil {
		log.Error(e.logTag+"aligned shape differs from ref", zap.Int("width", aligned.Width), zap.Int("height", aligned.Height),
			zap.Int("refWidth", correct.Width), zap.Int("refHeight", correct.Height))
		err = reprojErr(STAGE_SCORE, err)
		return
	}
	if c.PositiveB == 0 {
		log.Warn(e.logTag+"correct raster has no positive pixel", zap.Int("width", correct.Width), zap.Int("height", correct.Height))
	}
	percent = c.Ratio() * PERCENT
	log.Debug(e.logTag+"overlap counted", zap.Int("overlap", c.Overlap), zap.Int("union", c.Union()), zap.Float64("percent", percent))
	return
}

// 将student对齐到correct网格后计算重叠百分比
func (e *Evaluator) EvaluateRasters(student, correct Raster) (percent float64, err error) {
	aligned, err := e.Align(student, correct)
	if err != nil {
		return
	}
	return e.ScoreAligned(aligned, correct)
}

// 单参考评估，返回重叠百分比[0,100]
func (e *Evaluator) Evaluate(studentPath, correctPath string) (percent float64, err error) {
	student, err := e.read("student", studentPath)
	if err != nil {
		return
	}
	correct, err := e.read("correct", correctPath)
	if err != nil {
		return
	}
	if percent, err = e.EvaluateRasters(student, correct); err != nil {
		err = fmt.Errorf("align %q to %q: %w", studentPath, correctPath, err)
		return
	}
	log.Info(e.logTag+"evaluated", zap.String("student", studentPath), zap.String("correct", correctPath), zap.Float64("percent", percent))
	return
}

// 多参考评估，返回最高重叠百分比及其下标；并列时保留靠前者，全为0或列表为空时下标为NO_MATCH
func (e *Evaluator) EvaluateBestMatch(studentPath string, correctPaths []string) (best Match, err error) {
	best.Index = NO_MATCH
	student, err := e.read("student", studentPath)
	if err != nil {
		return
	}
	var (
		correct Raster
		percent float64
	)
	for i, path := range correctPaths {
		if correct, err = e.read("correct", path); err != nil {
			best = Match{Index: NO_MATCH}
			return
		}
		if percent, err = e.EvaluateRasters(student, correct); err != nil {
			err = fmt.Errorf("align %q to candidate %d %q: %w", studentPath, i, path, err)
			best = Match{Index: NO_MATCH}
			return
		}
		log.Debug(e.logTag+"candidate scored", zap.Int("idx", i), zap.String("correct", path), zap.Float64("percent", percent))
		if percent > best.Percent {
			best = Match{Percent: percent, Index: i}
		}
	}
	log.Info(e.logTag+"best match", zap.String("student", studentPath), zap.Int("candidates", len(correctPaths)),
		zap.Int("idx", best.Index), zap.Float64("percent", best.Percent))
	return
}
