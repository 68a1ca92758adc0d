package rasterlap

import (
	"github.com/wgdzlh/rasterlap/log"

	"go.uber.org/zap"
)

// 将栅格对齐到参考网格：最近邻重采样后按参考范围裁剪
type Aligner struct {
	resampler Resampler
	clipper   Clipper
	logTag    string
}

func NewAligner(resampler Resampler, clipper Clipper) *Aligner {
	return &Aligner{
		resampler: resampler,
		clipper:   clipper,
		logTag:    "Aligner:",
	}
}

func (a *Aligner) validate(src Raster, refTransform GeoTransform, refCRS string, refShape Shape) (err error) {
	if src.CRS == "" || refCRS == "" {
		return ErrMissingCRS
	}
	if !refShape.Valid() || !src.Shape().Valid() || len(src.Data) != src.Width*src.Height {
		return ErrInvalidShape
	}
	if _, err = src.Transform.Invert(); err != nil {
		return
	}
	_, err = refTransform.Invert()
	return
}

// 重投影并裁剪src，输出与参考栅格同网格同范围
func (a *Aligner) ReprojectAndClip(src Raster, refTransform GeoTransform, refCRS string, refShape Shape) (out Raster, err error) {
	if err = a.validate(src, refTransform, refCRS, refShape); err != nil {
		log.Error(a.logTag+"invalid georeferencing", zap.Error(err))
		err = reprojErr(STAGE_VALIDATE, err)
		return
	}
	log.Debug(a.logTag+"resample to ref grid", zap.Int("srcWidth", src.Width), zap.Int("srcHeight", src.Height),
		zap.Int("refWidth", refShape.Width), zap.Int("refHeight", refShape.Height), zap.String("dt", src.DataType))
	dst, err := a.resampler.Resample(src, refTransform, refCRS, refShape)
	if err != nil {
		log.Error(a.logTag+"resample failed", zap.Error(err))
		err = reprojErr(STAGE_RESAMPLE, err)
		return
	}
	bounds := RasterBounds(refTransform, refShape)
	if out, err = a.clipper.Clip(dst, bounds, NODATA); err != nil {
		log.Error(a.logTag+"clip failed", zap.Any("bounds", bounds), zap.Error(err))
		err = reprojErr(STAGE_CLIP, err)
	}
	return
}
