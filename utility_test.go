package rasterlap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeoTransformInvert(t *testing.T) {
	gt := GeoTransform{100, 0.5, 0.1, 40, 0.2, -0.5}
	inv, err := gt.Invert()
	require.NoError(t, err)
	x, y := gt.Apply(3, 7)
	c, r := inv.Apply(x, y)
	assert.InDelta(t, 3, c, 1e-9)
	assert.InDelta(t, 7, r, 1e-9)

	_, err = GeoTransform{0, 1, 1, 0, 1, 1}.Invert()
	assert.ErrorIs(t, err, ErrDegenerateTransform)
	_, err = GeoTransform{}.Invert()
	assert.ErrorIs(t, err, ErrDegenerateTransform)
}

func TestRasterBounds(t *testing.T) {
	b := RasterBounds(testTransform, Shape{Width: 4, Height: 3})
	assert.Equal(t, Bounds{MinX: 500000, MinY: 3999970, MaxX: 500040, MaxY: 4000000}, b)

	// 南向上栅格
	b = RasterBounds(GeoTransform{0, 1, 0, 0, 0, 1}, Shape{Width: 2, Height: 2})
	assert.Equal(t, Bounds{MinX: 0, MinY: 0, MaxX: 2, MaxY: 2}, b)
}

func TestPixelWindow(t *testing.T) {
	shape := Shape{Width: 4, Height: 3}
	w, err := PixelWindow(testTransform, shape, RasterBounds(testTransform, shape))
	require.NoError(t, err)
	assert.Equal(t, Window{Col: 0, Row: 0, Width: 4, Height: 3}, w)

	w, err = PixelWindow(testTransform, shape, Bounds{MinX: 500015, MinY: 3999950, MaxX: 500025, MaxY: 3999985})
	require.NoError(t, err)
	assert.Equal(t, Window{Col: 1, Row: 1, Width: 2, Height: 2}, w)

	_, err = PixelWindow(testTransform, shape, Bounds{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10})
	assert.ErrorIs(t, err, ErrNoOverlap)
}

func TestShift(t *testing.T) {
	got := testTransform.Shift(2, 1)
	assert.Equal(t, GeoTransform{500020, 10, 0, 3999990, 0, -10}, got)
}

func TestPointsToWkt(t *testing.T) {
	wkt := Bounds{MinX: 1, MinY: 2, MaxX: 3, MaxY: 4}.Wkt()
	assert.Equal(t, "POLYGON((1.0000000000 2.0000000000, 1.0000000000 4.0000000000, 3.0000000000 4.0000000000, 3.0000000000 2.0000000000, 1.0000000000 2.0000000000))", wkt)
}

func TestRasterBoundsWktParsesBack(t *testing.T) {
	wkt := RasterBounds(testTransform, Shape{Width: 2, Height: 2}).Wkt()
	assert.NotContains(t, wkt, "%!")
	assert.Equal(t, "POLYGON((500000.0000000000 3999980.0000000000, 500000.0000000000 4000000.0000000000, 500020.0000000000 4000000.0000000000, 500020.0000000000 3999980.0000000000, 500000.0000000000 3999980.0000000000))", wkt)
}
