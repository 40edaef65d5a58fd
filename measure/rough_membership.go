package measure

import (
	"drsa-shenglin/approximation"
	"drsa-shenglin/rock-share/global/enum"
	"drsa-shenglin/rule"
)

// RoughMembershipMeasure 粗糙隶属度，GAIN型。
// 对象视角：隶属度锥内属于并集的对象比例。
// 条件序列视角：覆盖集中正对象的比例。
// 锥或覆盖集为空时取0，空集合谈不上隶属
type RoughMembershipMeasure struct{}

func NewRoughMembershipMeasure() RoughMembershipMeasure { return RoughMembershipMeasure{} }

func (m RoughMembershipMeasure) MeasureType() string { return enum.GainMeasure }

func (m RoughMembershipMeasure) CalculateOnObject(u *approximation.Union, objectIndex int) float64 {
	dd := u.MembershipConeDistribution(objectIndex)
	total := dd.Total()
	if total == 0 {
		return 0
	}
	positiveCount := 0
	for _, d := range dd.Decisions() {
		if u.IsDecisionPositive(d) {
			positiveCount += dd.Count(d)
		}
	}
	return float64(positiveCount) / float64(total)
}

func (m RoughMembershipMeasure) Evaluate(rc *rule.RuleConditions) float64 {
	return membershipRatio(rc.CoveredPositiveCount(), rc.Covered().Size())
}

func (m RoughMembershipMeasure) EvaluateWithCondition(rc *rule.RuleConditions, c rule.Condition) float64 {
	covered := rc.CoveredWith(c)
	return membershipRatio(covered.And(rc.Positive()).Size(), covered.Size())
}

func (m RoughMembershipMeasure) EvaluateWithoutCondition(rc *rule.RuleConditions, conditionIndex int) float64 {
	covered := rc.CoveredWithout(conditionIndex)
	return membershipRatio(covered.And(rc.Positive()).Size(), covered.Size())
}

func membershipRatio(positiveCount, coveredCount int) float64 {
	if coveredCount == 0 {
		return 0
	}
	return float64(positiveCount) / float64(coveredCount)
}
