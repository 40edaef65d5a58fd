package enum

// 一致性度量的类型，决定阈值判定的方向:
// GainMeasure 值越大越一致，达标条件 value >= threshold
// CostMeasure 值越小越一致，达标条件 value <= threshold
const (
	GainMeasure = "GAIN_MEASURE"
	CostMeasure = "COST_MEASURE"
)
