package induction

import (
	"drsa-shenglin/measure"
	"drsa-shenglin/rule"
)

// StoppingConditionChecker 生长何时停、剪枝能不能剪的判定。
// Without变体在不改动rc的前提下评估去掉一个条件后的状态
type StoppingConditionChecker interface {
	IsStoppingConditionSatisfied(rc *rule.RuleConditions) bool
	IsStoppingConditionSatisfiedWithout(rc *rule.RuleConditions, conditionIndex int) bool
}

// EvaluationAndCoverageStoppingConditionChecker 度量达到阈值
// 且至少覆盖一个正对象
type EvaluationAndCoverageStoppingConditionChecker struct {
	evaluator measure.ConsistencyMeasure
	threshold float64
}

func NewEvaluationAndCoverageStoppingConditionChecker(evaluator measure.ConsistencyMeasure, threshold float64) *EvaluationAndCoverageStoppingConditionChecker {
	return &EvaluationAndCoverageStoppingConditionChecker{evaluator: evaluator, threshold: threshold}
}

func (c *EvaluationAndCoverageStoppingConditionChecker) Threshold() float64 { return c.threshold }

func (c *EvaluationAndCoverageStoppingConditionChecker) IsStoppingConditionSatisfied(rc *rule.RuleConditions) bool {
	if rc.CoveredPositiveCount() == 0 {
		return false
	}
	value := c.evaluator.Evaluate(rc)
	return measure.ThresholdReached(value, c.threshold, c.evaluator.MeasureType())
}

func (c *EvaluationAndCoverageStoppingConditionChecker) IsStoppingConditionSatisfiedWithout(rc *rule.RuleConditions, conditionIndex int) bool {
	if rc.CoveredWithout(conditionIndex).And(rc.Positive()).Size() == 0 {
		return false
	}
	value := c.evaluator.EvaluateWithoutCondition(rc, conditionIndex)
	return measure.ThresholdReached(value, c.threshold, c.evaluator.MeasureType())
}
