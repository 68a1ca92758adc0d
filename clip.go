package rasterlap

// 纯数组矩形裁剪：像元中心落在bounds外的置为nodata
type BoundsClipper struct{}

func (BoundsClipper) Clip(r Raster, bounds Bounds, nodata float64) (out Raster, err error) {
	w, err := PixelWindow(r.Transform, r.Shape(), bounds)
	if err != nil {
		return
	}
	out = Crop(r, w, func(col, row int) bool {
		return bounds.Contains(r.Transform.Apply(float64(col)+0.5, float64(row)+0.5))
	}, nodata)
	return
}
