package drsa

import (
	"testing"

	"drsa-shenglin/rock-share/global/enum"
)

func simpleDecision(v int64) *Decision {
	return NewSimpleDecision(0, NewIntegerField(v, enum.Gain))
}

func TestDistributionCounts(t *testing.T) {
	dd := NewDecisionDistribution()
	d1 := simpleDecision(1)
	d2 := simpleDecision(2)

	dd.IncreaseCount(d1)
	dd.IncreaseCount(d1)
	dd.IncreaseCount(d2)

	if dd.Total() != 3 {
		t.Fatalf("总数应为3,实际%d", dd.Total())
	}
	if dd.Count(d1) != 2 || dd.Count(d2) != 1 {
		t.Fatal("计数不对")
	}
	if dd.NumberOfDecisions() != 2 {
		t.Fatal("决策种数应为2")
	}
	if !dd.Has(d1) || dd.Has(simpleDecision(9)) {
		t.Fatal("Has判断不对")
	}
}

func TestDistributionMode(t *testing.T) {
	dd := NewDecisionDistribution()
	d1 := simpleDecision(1)
	d2 := simpleDecision(2)
	dd.IncreaseCount(d1)
	dd.IncreaseCount(d2)

	// 并列众数全部返回
	mode := dd.Mode()
	if len(mode) != 2 {
		t.Fatalf("并列众数应返回2个,实际%d", len(mode))
	}
}

func TestDistributionMedianLeftBias(t *testing.T) {
	dd := NewDecisionDistribution()
	d1 := simpleDecision(1)
	d2 := simpleDecision(2)
	for i := 0; i < 3; i++ {
		dd.IncreaseCount(d1)
	}
	dd.IncreaseCount(d2)

	// 累计和[3,4],半数取2,命中第一个决策
	m := dd.Median([]*Decision{d1, d2})
	if m == nil || m.Key() != d1.Key() {
		t.Fatalf("中位数应取靠左的决策,实际%v", m)
	}
}

func TestDistributionMedianEmpty(t *testing.T) {
	dd := NewDecisionDistribution()
	if dd.Median([]*Decision{simpleDecision(1)}) != nil {
		t.Fatal("空分布中位数应为nil")
	}
}
