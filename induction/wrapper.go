package induction

import (
	"sync"

	"drsa-shenglin/approximation"
	"drsa-shenglin/dominance"
	"drsa-shenglin/measure"
	"drsa-shenglin/rock-share/global/enum"
	"drsa-shenglin/rule"
	"drsa-shenglin/table"
	"drsa-shenglin/utils"
)

// RuleInducerWrapper 对外的一站式入口：
// 向上向下两个方向各跑一遍归纳再拼接。
// 两个方向互不共享可变状态，各建各的分布快照和部件，
// 所以放到两个goroutine里并行，任一方向失败整体失败
type RuleInducerWrapper struct {
	ruleType enum.RuleType
}

// NewCertainRuleInducerWrapper 经典确定规则，锥内零负对象
func NewCertainRuleInducerWrapper() *RuleInducerWrapper {
	return &RuleInducerWrapper{ruleType: enum.CertainRule}
}

// NewPossibleRuleInducerWrapper 可能规则，从上近似归纳，
// 近似一律用经典计算器
func NewPossibleRuleInducerWrapper() *RuleInducerWrapper {
	return &RuleInducerWrapper{ruleType: enum.PossibleRule}
}

func (w *RuleInducerWrapper) newComponents() *RuleInducerComponents {
	if w.ruleType == enum.PossibleRule {
		return NewPossibleRuleInducerComponents()
	}
	return NewCertainRuleInducerComponents(0)
}

func (w *RuleInducerWrapper) InduceRules(t *table.InformationTable) (*rule.RuleSet, error) {
	return induceBothDirections(t, w.newComponents, func() approximation.RoughSetCalculator {
		return approximation.NewClassicalCalculator()
	})
}

func (w *RuleInducerWrapper) InduceRulesWithCharacteristics(t *table.InformationTable) (*rule.RuleSetWithCharacteristics, error) {
	rs, err := w.InduceRules(t)
	if err != nil {
		return nil, err
	}
	return rule.NewRuleSetWithCharacteristics(rs, t), nil
}

// VariableConsistencyRuleInducerWrapper 变一致性确定规则入口，
// 下近似按epsilon阈值放宽
type VariableConsistencyRuleInducerWrapper struct {
	defaultThreshold float64
}

func NewVariableConsistencyRuleInducerWrapper(defaultThreshold float64) *VariableConsistencyRuleInducerWrapper {
	return &VariableConsistencyRuleInducerWrapper{defaultThreshold: defaultThreshold}
}

func (w *VariableConsistencyRuleInducerWrapper) DefaultThreshold() float64 { return w.defaultThreshold }

func (w *VariableConsistencyRuleInducerWrapper) InduceRules(t *table.InformationTable) (*rule.RuleSet, error) {
	return w.InduceRulesWithThreshold(t, w.defaultThreshold)
}

func (w *VariableConsistencyRuleInducerWrapper) InduceRulesWithThreshold(t *table.InformationTable, consistencyThreshold float64) (*rule.RuleSet, error) {
	newComponents := func() *RuleInducerComponents {
		return NewCertainRuleInducerComponents(consistencyThreshold)
	}
	newCalculator := func() approximation.RoughSetCalculator {
		return measure.NewVCCalculator(measure.NewEpsilonConsistencyMeasure(), consistencyThreshold)
	}
	return induceBothDirections(t, newComponents, newCalculator)
}

func (w *VariableConsistencyRuleInducerWrapper) InduceRulesWithCharacteristics(t *table.InformationTable) (*rule.RuleSetWithCharacteristics, error) {
	return w.InduceRulesWithCharacteristicsThreshold(t, w.defaultThreshold)
}

func (w *VariableConsistencyRuleInducerWrapper) InduceRulesWithCharacteristicsThreshold(t *table.InformationTable, consistencyThreshold float64) (*rule.RuleSetWithCharacteristics, error) {
	rs, err := w.InduceRulesWithThreshold(t, consistencyThreshold)
	if err != nil {
		return nil, err
	}
	return rule.NewRuleSetWithCharacteristics(rs, t), nil
}

// induceBothDirections 两个方向并行归纳后按向上在前拼接
func induceBothDirections(t *table.InformationTable, newComponents func() *RuleInducerComponents, newCalculator func() approximation.RoughSetCalculator) (*rule.RuleSet, error) {
	if t == nil {
		return nil, utils.ErrEmptyPointer
	}

	unionTypes := []string{enum.AtLeast, enum.AtMost}
	results := make([]*rule.RuleSet, len(unionTypes))
	errs := make([]error, len(unionTypes))

	var wg sync.WaitGroup
	for i, unionType := range unionTypes {
		wg.Add(1)
		go func(i int, unionType string) {
			defer wg.Done()
			results[i], errs[i] = induceOneDirection(t, unionType, newComponents(), newCalculator())
		}(i, unionType)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return rule.Join(results[0], results[1]), nil
}

func induceOneDirection(t *table.InformationTable, unionType string, components *RuleInducerComponents, calculator approximation.RoughSetCalculator) (*rule.RuleSet, error) {
	twd, err := dominance.NewTableWithDistributions(t)
	if err != nil {
		return nil, err
	}
	unions, err := approximation.NewUnions(twd, calculator)
	if err != nil {
		return nil, err
	}
	engine, err := NewVCDomLEM(components, unions)
	if err != nil {
		return nil, err
	}
	return engine.InduceRules(unionType)
}
