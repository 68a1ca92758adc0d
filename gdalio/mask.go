package gdalio

import (
	"fmt"

	"github.com/wgdzlh/rasterlap"
	"github.com/wgdzlh/rasterlap/log"

	gdal "github.com/airbusgeo/godal"
	"go.uber.org/zap"
)

// 以bounds矩形栅格化掩膜：像元中心在矩形外的置为nodata，并裁剪到矩形覆盖窗口
func (g *Toolbox) Clip(r rasterlap.Raster, bounds rasterlap.Bounds, nodata float64) (out rasterlap.Raster, err error) {
	w, err := rasterlap.PixelWindow(r.Transform, r.Shape(), bounds)
	if err != nil {
		return
	}
	ref, err := g.getRef(r.CRS)
	if err != nil {
		return
	}
	geo, err := gdal.NewGeometryFromWKT(bounds.Wkt(), ref)
	if err != nil {
		log.Error(g.logTag+"parse clip wkt failed", zap.Error(err))
		err = fmt.Errorf("%w: %v", rasterlap.ErrClipFailed, err)
		return
	}
	defer geo.Close()
	mds, err := g.memDataset(rasterlap.Raster{Grid: rasterlap.Grid{Width: r.Width, Height: r.Height}, Transform: r.Transform, CRS: r.CRS}, gdal.Byte)
	if err != nil {
		return
	}
	defer mds.Close()
	if err = mds.RasterizeGeometry(geo, gdal.Values(1)); err != nil {
		log.Error(g.logTag+"rasterize clip bounds failed", zap.Error(err))
		err = fmt.Errorf("%w: %v", rasterlap.ErrClipFailed, err)
		return
	}
	mask := make([]byte, r.Width*r.Height)
	if err = mds.Bands()[0].Read(0, 0, mask, r.Width, r.Height); err != nil {
		err = fmt.Errorf("%w: %v", rasterlap.ErrClipFailed, err)
		return
	}
	out = rasterlap.Crop(r, w, func(col, row int) bool {
		return mask[row*r.Width+col] != 0
	}, nodata)
	return
}
