package measure

import (
	"github.com/yourbasic/bit"

	"drsa-shenglin/approximation"
)

// VCCalculator 变一致性下近似计算器：
// 并集成员里度量值达到阈值的对象进下近似。
// 用经典阈值(epsilon取0、隶属度取1)时退化成经典计算器
type VCCalculator struct {
	measure   ConsistencyMeasure
	threshold float64
}

func NewVCCalculator(m ConsistencyMeasure, threshold float64) *VCCalculator {
	return &VCCalculator{measure: m, threshold: threshold}
}

func (c *VCCalculator) Measure() ConsistencyMeasure { return c.measure }

func (c *VCCalculator) Threshold() float64 { return c.threshold }

func (c *VCCalculator) LowerApproximation(u *approximation.Union) *bit.Set {
	lower := bit.New()
	u.Positive().Visit(func(x int) bool {
		value := c.measure.CalculateOnObject(u, x)
		if ThresholdReached(value, c.threshold, c.measure.MeasureType()) {
			lower.Add(x)
		}
		return false
	})
	return lower
}
