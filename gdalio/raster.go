package gdalio

import (
	"os"
	"strings"

	"github.com/wgdzlh/rasterlap"
	"github.com/wgdzlh/rasterlap/log"

	gdal "github.com/airbusgeo/godal"
	"go.uber.org/zap"
)

const vsiPrefix = "/vsi"

func (g *Toolbox) openOptions() []gdal.OpenOption {
	opts := []gdal.OpenOption{gdal.RasterOnly()}
	if len(g.config) > 0 {
		opts = append(opts, gdal.ConfigOption(g.config...))
	}
	return opts
}

// 读取栅格首波段及其仿射变换、坐标系
func (g *Toolbox) Read(path string) (r rasterlap.Raster, err error) {
	defer func() {
		if err != nil {
			err = &rasterlap.RasterReadError{Path: path, Err: err}
		}
	}()
	if !strings.HasPrefix(path, vsiPrefix) {
		if _, e := os.Stat(path); e != nil {
			log.Error(g.logTag+"tif not found", zap.String("tif", path), zap.Error(e))
			err = rasterlap.ErrRasterNotFound
			return
		}
	}
	ds, e := gdal.Open(path, g.openOptions()...)
	if e != nil {
		log.Error(g.logTag+"open tif failed", zap.String("tif", path), zap.Error(e))
		err = rasterlap.ErrInvalidRaster
		return
	}
	defer ds.Close()
	bands := ds.Bands()
	if len(bands) == 0 {
		err = rasterlap.ErrEmptyRaster
		return
	}
	gt, e := ds.GeoTransform()
	if e != nil {
		log.Error(g.logTag+"tif without geotransform", zap.String("tif", path), zap.Error(e))
		err = rasterlap.ErrMissingTransform
		return
	}
	wkt := ds.Projection()
	if wkt == "" {
		err = rasterlap.ErrMissingCRS
		return
	}
	bandStruct := bands[0].Structure()
	dt := bandStruct.DataType
	x := bandStruct.SizeX
	y := bandStruct.SizeY
	log.Info(g.logTag+"read tif band", zap.String("tif", path), zap.Int("bands", len(bands)),
		zap.String("dt", dt.String()), zap.Int("width", x), zap.Int("height", y))
	r = rasterlap.Raster{
		Grid:      rasterlap.NewGrid(x, y),
		Transform: rasterlap.GeoTransform(gt),
		CRS:       wkt,
		DataType:  dt.String(),
	}
	if e = bands[0].Read(0, 0, r.Data, x, y); e != nil {
		log.Error(g.logTag+"read tif band failed", zap.String("tif", path), zap.Error(e))
		err = rasterlap.ErrRasterReadFailed
	}
	return
}

// 将栅格写为单波段GeoTIFF（LZW压缩），数据类型取r.DataType
func (g *Toolbox) Write(path string, r rasterlap.Raster) (err error) {
	mds, err := g.memDataset(r, dataType(r.DataType))
	if err != nil {
		return
	}
	defer mds.Close()
	ods, err := mds.Translate(path, []string{"-co", "COMPRESS=LZW"}, gdal.GTiff)
	if err != nil {
		log.Error(g.logTag+"failed to translate tif", zap.String("out", path), zap.Error(err))
		return
	}
	if err = ods.Close(); err != nil {
		return
	}
	log.Info(g.logTag+"tif written", zap.String("out", path), zap.Int("width", r.Width), zap.Int("height", r.Height))
	return
}
