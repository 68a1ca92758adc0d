package rasterlap

import (
	"errors"
	"fmt"
)

var (
	ErrRasterNotFound      = errors.New("raster file not found")
	ErrInvalidRaster       = errors.New("invalid or unsupported raster")
	ErrEmptyRaster         = errors.New("raster has no band")
	ErrMissingTransform    = errors.New("raster has no geotransform")
	ErrMissingCRS          = errors.New("raster has no crs")
	ErrRasterReadFailed    = errors.New("raster band read failed")
	ErrUnknownCRS          = errors.New("unknown crs")
	ErrCRSMismatch         = errors.New("crs mismatch")
	ErrDegenerateTransform = errors.New("degenerate geotransform")
	ErrInvalidShape        = errors.New("invalid raster shape")
	ErrNoOverlap           = errors.New("clip bounds do not overlap raster")
	ErrResampleFailed      = errors.New("resample failed")
	ErrClipFailed          = errors.New("clip failed")
	ErrShapeMismatch       = errors.New("grid shape mismatch")
)

const (
	STAGE_VALIDATE = "validate"
	STAGE_RESAMPLE = "resample"
	STAGE_CLIP     = "clip"
	STAGE_SCORE    = "score"
)

// 栅格读取失败
type RasterReadError struct {
	Path string
	Err  error
}

func (e *RasterReadError) Error() string {
	return fmt.Sprintf("read raster %q: %v", e.Path, e.Err)
}

func (e *RasterReadError) Unwrap() error {
	return e.Err
}

// 重投影/裁剪失败，Stage标明出错阶段
type ReprojectionError struct {
	Stage string
	Err   error
}

func (e *ReprojectionError) Error() string {
	return fmt.Sprintf("reproject (%s): %v", e.Stage, e.Err)
}

func (e *ReprojectionError) Unwrap() error {
	return e.Err
}

func reprojErr(stage string, err error) error {
	return &ReprojectionError{Stage: stage, Err: err}
}
