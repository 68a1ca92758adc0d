package gdalio

import (
	"fmt"

	"github.com/wgdzlh/rasterlap"
	"github.com/wgdzlh/rasterlap/log"

	gdal "github.com/airbusgeo/godal"
	"go.uber.org/zap"
)

// 最近邻重投影src到目标网格，目标数据集与src数据类型一致，初值为NODATA
func (g *Toolbox) Resample(src rasterlap.Raster, dstTransform rasterlap.GeoTransform, dstCRS string, dstShape rasterlap.Shape) (dst rasterlap.Raster, err error) {
	dt := dataType(src.DataType)
	sds, err := g.memDataset(src, dt)
	if err != nil {
		return
	}
	defer sds.Close()
	dst = rasterlap.Raster{
		Grid:      rasterlap.NewGrid(dstShape.Width, dstShape.Height),
		Transform: dstTransform,
		CRS:       dstCRS,
		DataType:  src.DataType,
	}
	dds, err := g.memDataset(rasterlap.Raster{Grid: rasterlap.Grid{Width: dstShape.Width, Height: dstShape.Height}, Transform: dstTransform, CRS: dstCRS}, dt)
	if err != nil {
		return
	}
	defer dds.Close()
	band := dds.Bands()[0]
	if err = band.Fill(rasterlap.NODATA, 0); err != nil {
		return
	}
	if err = dds.WarpInto([]*gdal.Dataset{sds}, []string{"-r", rasterlap.RESAMPLE_ALG}); err != nil {
		log.Error(g.logTag+"failed to warp raster", zap.Error(err))
		err = fmt.Errorf("%w: %v", rasterlap.ErrResampleFailed, err)
		return
	}
	if err = band.Read(0, 0, dst.Data, dstShape.Width, dstShape.Height); err != nil {
		err = fmt.Errorf("%w: %v", rasterlap.ErrResampleFailed, err)
	}
	return
}
