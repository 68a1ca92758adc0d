package rasterlap

import "math"

// 纯数组最近邻重采样，仅支持源与目标坐标系一致
type NearestResampler struct{}

func (NearestResampler) Resample(src Raster, dstTransform GeoTransform, dstCRS string, dstShape Shape) (dst Raster, err error) {
	if !SameCRS(src.CRS, dstCRS) {
		err = ErrCRSMismatch
		return
	}
	inv, err := src.Transform.Invert()
	if err != nil {
		return
	}
	dst = Raster{
		Grid:      NewGrid(dstShape.Width, dstShape.Height),
		Transform: dstTransform,
		CRS:       dstCRS,
		DataType:  src.DataType,
	}
	for row := 0; row < dstShape.Height; row++ {
		for col := 0; col < dstShape.Width; col++ {
			x, y := dstTransform.Apply(float64(col)+0.5, float64(row)+0.5)
			c, r := inv.Apply(x, y)
			sc, sr := int(math.Floor(c)), int(math.Floor(r))
			if sc < 0 || sr < 0 || sc >= src.Width || sr >= src.Height {
				continue
			}
			dst.Data[row*dstShape.Width+col] = src.At(sc, sr)
		}
	}
	return
}
