package rasterlap

const (
	NODATA       = 0      // 裁剪区域外像元填充值
	PERCENT      = 100    // 重叠率转百分比
	NO_MATCH     = -1     // 多参考评估中无匹配
	RESAMPLE_ALG = "near" // 保持分类标签，不做插值
)
