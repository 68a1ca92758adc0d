package rasterlap

import (
	"errors"
	"testing"

	"github.com/wgdzlh/rasterlap/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestEvaluateHalfOverlap(t *testing.T) {
	src := memSource{
		"student.tif": rasterOf(t, testTransform, []float64{1, 1}, []float64{0, 0}),
		"correct.tif": rasterOf(t, testTransform, []float64{1, 0}, []float64{0, 0}),
	}
	percent, err := pureEvaluator(src).Evaluate("student.tif", "correct.tif")
	require.NoError(t, err)
	assert.Equal(t, 50.0, percent)
}

func TestEvaluateAllZero(t *testing.T) {
	src := memSource{
		"student.tif": rasterOf(t, testTransform, []float64{0, 0}, []float64{0, 0}),
		"correct.tif": rasterOf(t, testTransform, []float64{0, 0}, []float64{0, 0}),
	}
	percent, err := pureEvaluator(src).Evaluate("student.tif", "correct.tif")
	require.NoError(t, err)
	assert.Equal(t, 0.0, percent)
}

func TestEvaluateDifferentShapes(t *testing.T) {
	// 学生栅格大于参考栅格，对齐后尺寸取参考栅格
	src := memSource{
		"student.tif": rasterOf(t, testTransform,
			[]float64{1, 1, 1, 1},
			[]float64{1, 0, 0, 1},
			[]float64{1, 1, 1, 1},
		),
		"correct.tif": rasterOf(t, testTransform, []float64{1, 1}, []float64{1, 1}),
	}
	percent, err := pureEvaluator(src).Evaluate("student.tif", "correct.tif")
	require.NoError(t, err)
	assert.Equal(t, 75.0, percent)
}

func TestEvaluateReadError(t *testing.T) {
	src := memSource{"student.tif": rasterOf(t, testTransform, []float64{1})}
	_, err := pureEvaluator(src).Evaluate("student.tif", "missing.tif")
	require.ErrorIs(t, err, ErrRasterNotFound)
	var re *RasterReadError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "missing.tif", re.Path)
	assert.Contains(t, err.Error(), "correct raster")
}

func TestEvaluateReprojectionError(t *testing.T) {
	correct := rasterOf(t, testTransform, []float64{1})
	correct.CRS = ""
	src := memSource{
		"student.tif": rasterOf(t, testTransform, []float64{1}),
		"correct.tif": correct,
	}
	_, err := pureEvaluator(src).Evaluate("student.tif", "correct.tif")
	require.ErrorIs(t, err, ErrMissingCRS)
	var re *ReprojectionError
	require.True(t, errors.As(err, &re))
	assert.Contains(t, err.Error(), `"student.tif"`)
}

func TestEvaluateBestMatch(t *testing.T) {
	src := memSource{
		"student.tif": strip(20, span(0, 11)...),
		"a.tif":       strip(20, append(span(0, 5), span(12, 19)...)...),
		"b.tif":       strip(20, span(0, 8)...),
		"c.tif":       strip(20, span(3, 11)...),
	}
	m, err := pureEvaluator(src).EvaluateBestMatch("student.tif", []string{"a.tif", "b.tif", "c.tif"})
	require.NoError(t, err)
	assert.Equal(t, 1, m.Index)
	assert.InDelta(t, 75.0, m.Percent, 1e-9)

	// a单独评估为30%
	percent, err := pureEvaluator(src).Evaluate("student.tif", "a.tif")
	require.NoError(t, err)
	assert.InDelta(t, 30.0, percent, 1e-9)
}

func TestEvaluateBestMatchNoCandidate(t *testing.T) {
	src := memSource{"student.tif": strip(4, 0, 1)}
	m, err := pureEvaluator(src).EvaluateBestMatch("student.tif", nil)
	require.NoError(t, err)
	assert.Equal(t, Match{Percent: 0, Index: NO_MATCH}, m)
}

func TestEvaluateBestMatchAllZero(t *testing.T) {
	src := memSource{
		"student.tif": strip(4, 0, 1),
		"a.tif":       strip(4, 2, 3),
		"b.tif":       strip(4),
	}
	m, err := pureEvaluator(src).EvaluateBestMatch("student.tif", []string{"a.tif", "b.tif"})
	require.NoError(t, err)
	assert.Equal(t, Match{Percent: 0, Index: NO_MATCH}, m)
}

func TestEvaluateBestMatchFailsWhole(t *testing.T) {
	src := memSource{
		"student.tif": strip(4, 0, 1),
		"a.tif":       strip(4, 0, 1),
	}
	m, err := pureEvaluator(src).EvaluateBestMatch("student.tif", []string{"a.tif", "gone.tif"})
	require.ErrorIs(t, err, ErrRasterNotFound)
	assert.Equal(t, NO_MATCH, m.Index)

	_, err = pureEvaluator(src).EvaluateBestMatch("nobody.tif", []string{"a.tif"})
	require.ErrorIs(t, err, ErrRasterNotFound)
	assert.Contains(t, err.Error(), "student raster")
}

func TestEvaluateBestMatchLogs(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log.SetLogger(zap.New(core))
	defer log.SetLogger(zap.NewNop())

	src := memSource{
		"student.tif": strip(4, 0, 1),
		"a.tif":       strip(4, 0),
	}
	_, err := pureEvaluator(src).EvaluateBestMatch("student.tif", []string{"a.tif"})
	require.NoError(t, err)
	entries := logs.FilterMessage("Evaluator:best match").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, int64(0), fields["idx"])
	assert.Equal(t, 50.0, fields["percent"])
}

func TestEvaluateWarnsOnEmptyCorrect(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	log.SetLogger(zap.New(core))
	defer log.SetLogger(zap.NewNop())

	src := memSource{
		"student.tif": strip(4, 0, 1),
		"a.tif":       strip(4),
		"b.tif":       strip(4, 1),
	}
	m, err := pureEvaluator(src).EvaluateBestMatch("student.tif", []string{"a.tif", "b.tif"})
	require.NoError(t, err)
	assert.Equal(t, 1, m.Index)
	assert.Equal(t, 1, logs.FilterMessage("Evaluator:correct raster has no positive pixel").Len())
}

func TestAlignThenScoreAligned(t *testing.T) {
	ev := pureEvaluator(memSource{})
	student := rasterOf(t, testTransform, []float64{1, 1, 5}, []float64{0, 0, 5})
	correct := rasterOf(t, testTransform, []float64{1, 0}, []float64{0, 0})
	aligned, err := ev.Align(student, correct)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 0, 0}, aligned.Data)
	percent, err := ev.ScoreAligned(aligned, correct)
	require.NoError(t, err)
	assert.Equal(t, 50.0, percent)

	_, err = ev.ScoreAligned(student, correct)
	require.ErrorIs(t, err, ErrShapeMismatch)
	var re *ReprojectionError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, STAGE_SCORE, re.Stage)
}
