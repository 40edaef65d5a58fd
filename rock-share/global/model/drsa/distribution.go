package drsa

import (
	"math"

	"golang.org/x/exp/slices"
)

// DecisionDistribution 决策到出现次数的映射，与插入顺序无关
type DecisionDistribution struct {
	counts    map[string]int
	decisions map[string]*Decision
	total     int
}

func NewDecisionDistribution() *DecisionDistribution {
	return &DecisionDistribution{
		counts:    make(map[string]int),
		decisions: make(map[string]*Decision),
	}
}

// IncreaseCount 该决策计数加一
func (dd *DecisionDistribution) IncreaseCount(decision *Decision) {
	if decision == nil {
		return
	}
	key := decision.Key()
	if _, ok := dd.counts[key]; !ok {
		dd.decisions[key] = decision
	}
	dd.counts[key]++
	dd.total++
}

func (dd *DecisionDistribution) Count(decision *Decision) int {
	if decision == nil {
		return 0
	}
	return dd.counts[decision.Key()]
}

func (dd *DecisionDistribution) Has(decision *Decision) bool {
	if decision == nil {
		return false
	}
	_, ok := dd.counts[decision.Key()]
	return ok
}

// Total 全部计数之和
func (dd *DecisionDistribution) Total() int { return dd.total }

func (dd *DecisionDistribution) NumberOfDecisions() int { return len(dd.counts) }

// Decisions 出现过的决策，按key排序保证每次遍历一致
func (dd *DecisionDistribution) Decisions() []*Decision {
	keys := make([]string, 0, len(dd.decisions))
	for k := range dd.decisions {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	out := make([]*Decision, len(keys))
	for i, k := range keys {
		out[i] = dd.decisions[k]
	}
	return out
}

// Mode 出现次数最多的决策，并列全部返回
func (dd *DecisionDistribution) Mode() []*Decision {
	maxCount := 0
	for _, c := range dd.counts {
		if c > maxCount {
			maxCount = c
		}
	}
	if maxCount == 0 {
		return nil
	}
	var out []*Decision
	for _, d := range dd.Decisions() {
		if dd.counts[d.Key()] == maxCount {
			out = append(out, d)
		}
	}
	return out
}

// Median 按调用方给定的决策全序取中位数。
// 偶数均分时取累计和顺序中靠左(较低)的决策，这是刻意的确定性选择
func (dd *DecisionDistribution) Median(order []*Decision) *Decision {
	if dd.total == 0 || len(order) == 0 {
		return nil
	}
	roundedHalfOfCumulativeSum := int(math.Round(float64(dd.total) / 2.0))
	cumulativeSum := 0
	for _, d := range order {
		cumulativeSum += dd.Count(d)
		if cumulativeSum >= roundedHalfOfCumulativeSum {
			return d
		}
	}
	return order[len(order)-1]
}
