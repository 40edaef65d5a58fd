package measure

import (
	"drsa-shenglin/approximation"
	"drsa-shenglin/rock-share/global/enum"
	"drsa-shenglin/rule"
)

// EpsilonConsistencyMeasure 负对象占补集的比例，COST型。
// 对象视角：一致性锥里的负对象数 / 并集补集大小。
// 条件序列视角：覆盖的负对象数 / 目标补集大小。
// 分子或分母为0时一律取0
type EpsilonConsistencyMeasure struct{}

func NewEpsilonConsistencyMeasure() EpsilonConsistencyMeasure { return EpsilonConsistencyMeasure{} }

func (m EpsilonConsistencyMeasure) MeasureType() string { return enum.CostMeasure }

func (m EpsilonConsistencyMeasure) CalculateOnObject(u *approximation.Union, objectIndex int) float64 {
	return epsilonRatio(u.NegativeCountInCone(objectIndex), u.GetComplementarySetSize())
}

func (m EpsilonConsistencyMeasure) Evaluate(rc *rule.RuleConditions) float64 {
	return epsilonRatio(rc.CoveredNegativeCount(), rc.ComplementarySize())
}

func (m EpsilonConsistencyMeasure) EvaluateWithCondition(rc *rule.RuleConditions, c rule.Condition) float64 {
	negCount := rule.CountNegative(rc.CoveredWith(c), rc.Positive(), rc.Neutral())
	return epsilonRatio(negCount, rc.ComplementarySize())
}

func (m EpsilonConsistencyMeasure) EvaluateWithoutCondition(rc *rule.RuleConditions, conditionIndex int) float64 {
	negCount := rule.CountNegative(rc.CoveredWithout(conditionIndex), rc.Positive(), rc.Neutral())
	return epsilonRatio(negCount, rc.ComplementarySize())
}

func epsilonRatio(negCount, complementarySize int) float64 {
	if negCount == 0 || complementarySize == 0 {
		return 0
	}
	return float64(negCount) / float64(complementarySize)
}
