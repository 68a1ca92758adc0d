package rasterlap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const testCRS = `PROJCS["WGS 84 / UTM zone 50N",AUTHORITY["EPSG","32650"]]`

var testTransform = GeoTransform{500000, 10, 0, 4000000, 0, -10}

type memSource map[string]Raster

func (m memSource) Read(path string) (Raster, error) {
	r, ok := m[path]
	if !ok {
		return Raster{}, &RasterReadError{Path: path, Err: ErrRasterNotFound}
	}
	return r, nil
}

// rows按行给出像元值
func gridOf(t *testing.T, rows ...[]float64) Grid {
	t.Helper()
	require.NotEmpty(t, rows)
	g := NewGrid(len(rows[0]), len(rows))
	for r, row := range rows {
		require.Len(t, row, g.Width)
		copy(g.Data[r*g.Width:], row)
	}
	return g
}

func rasterOf(t *testing.T, gt GeoTransform, rows ...[]float64) Raster {
	return Raster{Grid: gridOf(t, rows...), Transform: gt, CRS: testCRS, DataType: "Byte"}
}

// 1×n栅格，positive中的下标为1
func strip(n int, positive ...int) Raster {
	r := Raster{Grid: NewGrid(n, 1), Transform: testTransform, CRS: testCRS, DataType: "Byte"}
	for _, i := range positive {
		r.Data[i] = 1
	}
	return r
}

func span(from, to int) (idx []int) {
	for i := from; i <= to; i++ {
		idx = append(idx, i)
	}
	return
}

func pureEvaluator(src memSource) *Evaluator {
	return NewEvaluator(src, NearestResampler{}, BoundsClipper{})
}
