package rasterlap

// 像元列数×行数
type Shape struct {
	Width  int
	Height int
}

func (s Shape) Valid() bool {
	return s.Width > 0 && s.Height > 0
}

// 单波段像元网格，按行优先存储
type Grid struct {
	Data   []float64
	Width  int
	Height int
}

func NewGrid(width, height int) Grid {
	return Grid{
		Data:   make([]float64, width*height),
		Width:  width,
		Height: height,
	}
}

func (g Grid) Shape() Shape {
	return Shape{Width: g.Width, Height: g.Height}
}

func (g Grid) At(col, row int) float64 {
	return g.Data[row*g.Width+col]
}

// 带地理参考的栅格
type Raster struct {
	Grid
	Transform GeoTransform
	CRS       string // 坐标系WKT
	DataType  string // 首波段GDAL数据类型，如Byte、Int16
}

// 地理坐标矩形范围
type Bounds struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

func (b Bounds) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

func (b Bounds) Wkt() string {
	return PointsToWkt(b.MinX, b.MaxX, b.MinY, b.MaxY)
}

// 像元窗口
type Window struct {
	Col    int
	Row    int
	Width  int
	Height int
}

// 多参考栅格评估结果，Index为NO_MATCH时表示无匹配
type Match struct {
	Percent float64 `json:"percent" yaml:"percent"`
	Index   int     `json:"index" yaml:"index"`
}

// 从路径读取首波段像元及其地理参考
type RasterSource interface {
	Read(path string) (Raster, error)
}

// 按最近邻将src重采样到目标网格
type Resampler interface {
	Resample(src Raster, dstTransform GeoTransform, dstCRS string, dstShape Shape) (Raster, error)
}

// 将bounds外像元置为nodata，并裁剪到bounds覆盖的最小窗口
type Clipper interface {
	Clip(r Raster, bounds Bounds, nodata float64) (Raster, error)
}
