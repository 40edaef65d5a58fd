package measure

import (
	"drsa-shenglin/approximation"
	"drsa-shenglin/rock-share/global/enum"
	"drsa-shenglin/rule"
)

// ConsistencyMeasure 一致性度量。
// GAIN型值越大越一致，COST型值越小越一致，
// 同一套度量既服务并集近似又服务规则归纳
type ConsistencyMeasure interface {
	MeasureType() string
	// CalculateOnObject 对象相对并集的一致性
	CalculateOnObject(u *approximation.Union, objectIndex int) float64
	// Evaluate 条件序列当前状态的一致性
	Evaluate(rc *rule.RuleConditions) float64
	// EvaluateWithCondition 附加候选条件后的一致性，不改动rc
	EvaluateWithCondition(rc *rule.RuleConditions, c rule.Condition) float64
	// EvaluateWithoutCondition 去掉第i个条件后的一致性，不改动rc
	EvaluateWithoutCondition(rc *rule.RuleConditions, conditionIndex int) float64
}

// ThresholdReached 按度量方向判断是否达标：
// GAIN要求 value >= threshold，COST要求 value <= threshold
func ThresholdReached(value, threshold float64, measureType string) bool {
	if measureType == enum.GainMeasure {
		return value >= threshold
	}
	return value <= threshold
}

// FirstIsBetter a是否严格优于b
func FirstIsBetter(a, b float64, measureType string) bool {
	if measureType == enum.GainMeasure {
		return a > b
	}
	return a < b
}
