package rasterlap

import (
	"fmt"
	"math"
	"strings"
)

const snapEps = 1e-6

// GDAL仿射变换系数：(x0, 像元宽, 行旋转, y0, 列旋转, 像元高)
type GeoTransform [6]float64

// 像元(col,row)转地理坐标
func (t GeoTransform) Apply(col, row float64) (x, y float64) {
	x = t[0] + col*t[1] + row*t[2]
	y = t[3] + col*t[4] + row*t[5]
	return
}

// 求逆变换（地理坐标转像元），行列式为0时返回ErrDegenerateTransform
func (t GeoTransform) Invert() (inv GeoTransform, err error) {
	det := t[1]*t[5] - t[2]*t[4]
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		err = ErrDegenerateTransform
		return
	}
	r := 1 / det
	inv[0] = (t[2]*t[3] - t[0]*t[5]) * r
	inv[1] = t[5] * r
	inv[2] = -t[2] * r
	inv[3] = (-t[1]*t[3] + t[0]*t[4]) * r
	inv[4] = -t[4] * r
	inv[5] = t[1] * r
	return
}

// 原点平移到像元(col,row)后的变换
func (t GeoTransform) Shift(col, row int) GeoTransform {
	t[0], t[3] = t.Apply(float64(col), float64(row))
	return t
}

// 栅格范围：左上角为像元(0,0)，右下角为像元(width,height)
func RasterBounds(t GeoTransform, shape Shape) (b Bounds) {
	left, bottom := t.Apply(0, float64(shape.Height))
	right, top := t.Apply(float64(shape.Width), 0)
	b.MinX, b.MaxX = math.Min(left, right), math.Max(left, right)
	b.MinY, b.MaxY = math.Min(bottom, top), math.Max(bottom, top)
	return
}

// bounds在栅格上覆盖的最小像元窗口（已截断到栅格内）
func PixelWindow(t GeoTransform, shape Shape, b Bounds) (w Window, err error) {
	inv, err := t.Invert()
	if err != nil {
		return
	}
	var (
		minC, minR = math.Inf(1), math.Inf(1)
		maxC, maxR = math.Inf(-1), math.Inf(-1)
	)
	for _, p := range [4][2]float64{{b.MinX, b.MinY}, {b.MinX, b.MaxY}, {b.MaxX, b.MinY}, {b.MaxX, b.MaxY}} {
		c, r := inv.Apply(p[0], p[1])
		minC, maxC = math.Min(minC, c), math.Max(maxC, c)
		minR, maxR = math.Min(minR, r), math.Max(maxR, r)
	}
	col0 := max(int(math.Floor(snap(minC))), 0)
	row0 := max(int(math.Floor(snap(minR))), 0)
	col1 := min(int(math.Ceil(snap(maxC))), shape.Width)
	row1 := min(int(math.Ceil(snap(maxR))), shape.Height)
	if col1 <= col0 || row1 <= row0 {
		err = ErrNoOverlap
		return
	}
	w = Window{Col: col0, Row: row0, Width: col1 - col0, Height: row1 - row0}
	return
}

// 将窗口内像元复制到新栅格，inside为false的像元置为nodata
func Crop(r Raster, w Window, inside func(col, row int) bool, nodata float64) (out Raster) {
	out = Raster{
		Grid:      NewGrid(w.Width, w.Height),
		Transform: r.Transform.Shift(w.Col, w.Row),
		CRS:       r.CRS,
		DataType:  r.DataType,
	}
	for row := 0; row < w.Height; row++ {
		for col := 0; col < w.Width; col++ {
			sc, sr := col+w.Col, row+w.Row
			v := nodata
			if inside(sc, sr) {
				v = r.At(sc, sr)
			}
			out.Data[row*w.Width+col] = v
		}
	}
	return
}

// 两坐标系WKT是否一致（仅作文本比较）
func SameCRS(a, b string) bool {
	return strings.TrimSpace(a) == strings.TrimSpace(b)
}

func snap(v float64) float64 {
	if r := math.Round(v); math.Abs(v-r) < snapEps {
		return r
	}
	return v
}

func PointsToWkt(lon1, lon2, lat1, lat2 float64) string {
	return fmt.Sprintf("POLYGON((%.10[1]f %.10[3]f, %.10[1]f %.10[4]f, %.10[2]f %.10[4]f, %.10[2]f %.10[3]f, %.10[1]f %.10[3]f))", lon1, lon2, lat1, lat2)
}
