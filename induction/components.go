package induction

import (
	"github.com/yourbasic/bit"

	"drsa-shenglin/approximation"
	"drsa-shenglin/measure"
	"drsa-shenglin/rock-share/global/enum"
)

// RuleInducerComponents 归纳引擎的全部可插拔部件。
// 扩展算法就换部件，不改引擎
type RuleInducerComponents struct {
	ruleType                    enum.RuleType
	conditionAdditionEvaluators []measure.ConditionAdditionEvaluator
	stoppingChecker             StoppingConditionChecker
	conditionsPruner            RuleConditionsPruner
	ruleSetPruner               RuleConditionsSetPruner
}

func (c *RuleInducerComponents) RuleType() enum.RuleType { return c.ruleType }

func (c *RuleInducerComponents) ConditionAdditionEvaluators() []measure.ConditionAdditionEvaluator {
	return c.conditionAdditionEvaluators
}

func (c *RuleInducerComponents) StoppingChecker() StoppingConditionChecker { return c.stoppingChecker }

func (c *RuleInducerComponents) ConditionsPruner() RuleConditionsPruner { return c.conditionsPruner }

func (c *RuleInducerComponents) RuleSetPruner() RuleConditionsSetPruner { return c.ruleSetPruner }

// TargetObjects 归纳目标：确定规则取下近似，可能规则取上近似
func (c *RuleInducerComponents) TargetObjects(u *approximation.Union) *bit.Set {
	if c.ruleType == enum.PossibleRule {
		return u.UpperApproximation()
	}
	return u.LowerApproximation()
}

// ComponentsBuilder 按需替换部件，Build时缺省部件补齐
type ComponentsBuilder struct {
	components *RuleInducerComponents
	measure    measure.ConsistencyMeasure
	threshold  float64
}

func NewComponentsBuilder(ruleType enum.RuleType, m measure.ConsistencyMeasure, threshold float64) *ComponentsBuilder {
	return &ComponentsBuilder{
		components: &RuleInducerComponents{ruleType: ruleType},
		measure:    m,
		threshold:  threshold,
	}
}

func (b *ComponentsBuilder) ConditionAdditionEvaluators(evaluators ...measure.ConditionAdditionEvaluator) *ComponentsBuilder {
	b.components.conditionAdditionEvaluators = evaluators
	return b
}

func (b *ComponentsBuilder) StoppingChecker(checker StoppingConditionChecker) *ComponentsBuilder {
	b.components.stoppingChecker = checker
	return b
}

func (b *ComponentsBuilder) ConditionsPruner(pruner RuleConditionsPruner) *ComponentsBuilder {
	b.components.conditionsPruner = pruner
	return b
}

func (b *ComponentsBuilder) RuleSetPruner(pruner RuleConditionsSetPruner) *ComponentsBuilder {
	b.components.ruleSetPruner = pruner
	return b
}

func (b *ComponentsBuilder) Build() *RuleInducerComponents {
	c := b.components
	if c.conditionAdditionEvaluators == nil {
		c.conditionAdditionEvaluators = []measure.ConditionAdditionEvaluator{
			b.measure,
			measure.NewPositiveCoverageEvaluator(),
		}
	}
	if c.stoppingChecker == nil {
		c.stoppingChecker = NewEvaluationAndCoverageStoppingConditionChecker(b.measure, b.threshold)
	}
	if c.conditionsPruner == nil {
		c.conditionsPruner = NewAttributeOrderRuleConditionsPruner()
	}
	if c.ruleSetPruner == nil {
		c.ruleSetPruner = NewEvaluationsAndOrderRuleConditionsSetPruner(b.measure)
	}
	return c
}

// NewCertainRuleInducerComponents 确定规则的缺省部件：
// epsilon一致性(COST)加正覆盖做次级评估
func NewCertainRuleInducerComponents(consistencyThreshold float64) *RuleInducerComponents {
	return NewComponentsBuilder(enum.CertainRule, measure.NewEpsilonConsistencyMeasure(), consistencyThreshold).Build()
}

// NewPossibleRuleInducerComponents 可能规则的缺省部件：
// 粗糙隶属度(GAIN)阈值取到1，规则覆盖内不容负对象
func NewPossibleRuleInducerComponents() *RuleInducerComponents {
	return NewComponentsBuilder(enum.PossibleRule, measure.NewRoughMembershipMeasure(), 1.0).Build()
}
