// Package gdalio 基于GDAL(godal)实现栅格读取、重采样与裁剪
package gdalio

import (
	"fmt"
	"sync"

	"github.com/wgdzlh/rasterlap"
	"github.com/wgdzlh/rasterlap/log"

	gdal "github.com/airbusgeo/godal"
	"go.uber.org/zap"
)

type Toolbox struct {
	refMap map[string]*gdal.SpatialRef
	rLock  sync.Mutex
	config []string
	logTag string
}

type Option func(*Toolbox)

// GDAL配置项，形如"GDAL_NUM_THREADS=ALL_CPUS"，打开栅格时生效
func WithConfig(kv ...string) Option {
	return func(g *Toolbox) {
		g.config = append(g.config, kv...)
	}
}

var (
	_ rasterlap.RasterSource = (*Toolbox)(nil)
	_ rasterlap.Resampler    = (*Toolbox)(nil)
	_ rasterlap.Clipper      = (*Toolbox)(nil)
)

var (
	registerOnce sync.Once
	dataTypes    = map[string]gdal.DataType{}
)

func init() {
	for _, dt := range []gdal.DataType{gdal.Byte, gdal.UInt16, gdal.Int16, gdal.UInt32, gdal.Int32, gdal.Float32, gdal.Float64} {
		dataTypes[dt.String()] = dt
	}
}

// 初始化GDAL工具箱，同时注册全部驱动
func NewToolbox(opts ...Option) *Toolbox {
	registerOnce.Do(gdal.RegisterAll)
	g := &Toolbox{
		refMap: map[string]*gdal.SpatialRef{},
		logTag: "GdalToolbox:",
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// 获取WKT对应的坐标系（可复用，故无需回收）
func (g *Toolbox) getRef(wkt string) (ref *gdal.SpatialRef, err error) {
	if wkt == "" {
		err = rasterlap.ErrMissingCRS
		return
	}
	g.rLock.Lock()
	defer g.rLock.Unlock()
	ref, ok := g.refMap[wkt]
	if ok {
		return
	}
	if ref, err = gdal.NewSpatialRefFromWKT(wkt); err != nil {
		log.Error(g.logTag+"parse crs wkt failed", zap.String("wkt", wkt), zap.Error(err))
		err = fmt.Errorf("%w: %v", rasterlap.ErrUnknownCRS, err)
		return
	}
	g.refMap[wkt] = ref
	return
}

func dataType(name string) gdal.DataType {
	if dt, ok := dataTypes[name]; ok {
		return dt
	}
	return gdal.Float64
}

// 由像元网格创建内存数据集
func (g *Toolbox) memDataset(r rasterlap.Raster, dt gdal.DataType) (ds *gdal.Dataset, err error) {
	ref, err := g.getRef(r.CRS)
	if err != nil {
		return
	}
	if ds, err = gdal.Create(gdal.Memory, "", 1, dt, r.Width, r.Height); err != nil {
		log.Error(g.logTag+"create mem dataset failed", zap.Error(err))
		return
	}
	defer func() {
		if err != nil {
			ds.Close()
			ds = nil
		}
	}()
	if err = ds.SetGeoTransform([6]float64(r.Transform)); err != nil {
		return
	}
	if err = ds.SetSpatialRef(ref); err != nil {
		return
	}
	if r.Data != nil {
		err = ds.Bands()[0].Write(0, 0, r.Data, r.Width, r.Height)
	}
	return
}
