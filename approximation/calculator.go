package approximation

import (
	"github.com/yourbasic/bit"
)

// RoughSetCalculator 可插拔的下近似计算器。
// 经典版要求锥内零负对象，变一致性版放宽到度量阈值(在measure包实现)
type RoughSetCalculator interface {
	LowerApproximation(u *Union) *bit.Set
}

// ClassicalCalculator 经典支配粗糙集：
// 下近似 = 一致性锥内没有任何负对象的并集成员
type ClassicalCalculator struct{}

func NewClassicalCalculator() ClassicalCalculator { return ClassicalCalculator{} }

func (c ClassicalCalculator) LowerApproximation(u *Union) *bit.Set {
	lower := bit.New()
	u.Positive().Visit(func(x int) bool {
		if u.NegativeCountInCone(x) == 0 {
			lower.Add(x)
		}
		return false
	})
	return lower
}
