package rasterlap

// 正值像元计数
type OverlapCounts struct {
	Overlap   int // a、b均为正
	PositiveA int
	PositiveB int
}

// 并集像元数
func (c OverlapCounts) Union() int {
	return c.PositiveA + c.PositiveB - c.Overlap
}

// 交并比，并集为空时为0
func (c OverlapCounts) Ratio() float64 {
	total := c.Union()
	if total == 0 {
		return 0
	}
	return float64(c.Overlap) / float64(total)
}

// 统计两个同尺寸网格的正值像元
func Counts(a, b Grid) (c OverlapCounts, err error) {
	if a.Width != b.Width || a.Height != b.Height || len(a.Data) != len(b.Data) {
		err = ErrShapeMismatch
		return
	}
	for i, va := range a.Data {
		pa, pb := va > 0, b.Data[i] > 0
		if pa {
			c.PositiveA++
		}
		if pb {
			c.PositiveB++
		}
		if pa && pb {
			c.Overlap++
		}
	}
	return
}

// 正值像元的交并比（Jaccard），取值[0,1]
func Score(a, b Grid) (ratio float64, err error) {
	c, err := Counts(a, b)
	if err != nil {
		return
	}
	ratio = c.Ratio()
	return
}
