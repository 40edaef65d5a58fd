package measure

import (
	"drsa-shenglin/rock-share/global/enum"
	"drsa-shenglin/rule"
)

// ConditionAdditionEvaluator 生长阶段给候选条件打分
type ConditionAdditionEvaluator interface {
	MeasureType() string
	EvaluateWithCondition(rc *rule.RuleConditions, c rule.Condition) float64
}

// ConditionRemovalEvaluator 剪枝阶段评估去掉某个条件后的质量
type ConditionRemovalEvaluator interface {
	MeasureType() string
	EvaluateWithoutCondition(rc *rule.RuleConditions, conditionIndex int) float64
}

// RuleConditionsEvaluator 整体评估一个条件序列
type RuleConditionsEvaluator interface {
	MeasureType() string
	Evaluate(rc *rule.RuleConditions) float64
}

// PositiveCoverageEvaluator 覆盖的正对象个数，GAIN型。
// 归纳里当次级评估器用，同分候选之间选覆盖更广的
type PositiveCoverageEvaluator struct{}

func NewPositiveCoverageEvaluator() PositiveCoverageEvaluator { return PositiveCoverageEvaluator{} }

func (e PositiveCoverageEvaluator) MeasureType() string { return enum.GainMeasure }

func (e PositiveCoverageEvaluator) Evaluate(rc *rule.RuleConditions) float64 {
	return float64(rc.CoveredPositiveCount())
}

func (e PositiveCoverageEvaluator) EvaluateWithCondition(rc *rule.RuleConditions, c rule.Condition) float64 {
	return float64(rc.CoveredWith(c).And(rc.Positive()).Size())
}

func (e PositiveCoverageEvaluator) EvaluateWithoutCondition(rc *rule.RuleConditions, conditionIndex int) float64 {
	return float64(rc.CoveredWithout(conditionIndex).And(rc.Positive()).Size())
}
