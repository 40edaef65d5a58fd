package induction

import (
	"sort"

	"github.com/yourbasic/bit"

	"drsa-shenglin/measure"
	"drsa-shenglin/rule"
)

// RuleConditionsPruner 规则内剪枝，尽量去掉多余条件
type RuleConditionsPruner interface {
	Prune(rc *rule.RuleConditions, checker StoppingConditionChecker)
}

// AttributeOrderRuleConditionsPruner 按属性下标顺序逐个试删，
// 删掉后停机条件仍满足就真删，删成功后从头再扫一轮
type AttributeOrderRuleConditionsPruner struct{}

func NewAttributeOrderRuleConditionsPruner() AttributeOrderRuleConditionsPruner {
	return AttributeOrderRuleConditionsPruner{}
}

func (p AttributeOrderRuleConditionsPruner) Prune(rc *rule.RuleConditions, checker StoppingConditionChecker) {
	for {
		if rc.Size() <= 1 {
			return
		}
		order := make([]int, rc.Size())
		for i := range order {
			order[i] = i
		}
		sort.Slice(order, func(a, b int) bool {
			return rc.Condition(order[a]).AttributeIndex < rc.Condition(order[b]).AttributeIndex
		})

		removed := false
		for _, i := range order {
			if checker.IsStoppingConditionSatisfiedWithout(rc, i) {
				// 下标在上面已校验过范围
				_ = rc.RemoveCondition(i)
				removed = true
				break
			}
		}
		if !removed {
			return
		}
	}
}

// RuleConditionsSetPruner 规则集剪枝，丢掉整条冗余的规则
type RuleConditionsSetPruner interface {
	// Prune 返回保留的规则子集，保证toCover里的对象仍被全部覆盖
	Prune(list []*rule.RuleConditions, toCover *bit.Set) []*rule.RuleConditions
}

// EvaluationsAndOrderRuleConditionsSetPruner 可删规则里先删度量最差的，
// 同分删靠后的。一条规则可删当且仅当它在toCover里覆盖的
// 每个对象都还有别的规则兜底
type EvaluationsAndOrderRuleConditionsSetPruner struct {
	evaluator measure.RuleConditionsEvaluator
}

func NewEvaluationsAndOrderRuleConditionsSetPruner(evaluator measure.RuleConditionsEvaluator) *EvaluationsAndOrderRuleConditionsSetPruner {
	return &EvaluationsAndOrderRuleConditionsSetPruner{evaluator: evaluator}
}

func (p *EvaluationsAndOrderRuleConditionsSetPruner) Prune(list []*rule.RuleConditions, toCover *bit.Set) []*rule.RuleConditions {
	kept := make([]*rule.RuleConditions, len(list))
	copy(kept, list)

	// coverCount 每个待覆盖对象被几条规则覆盖
	coverCount := map[int]int{}
	for _, rc := range kept {
		rc.Covered().And(toCover).Visit(func(x int) bool {
			coverCount[x]++
			return false
		})
	}

	for {
		worst := -1
		var worstValue float64
		for i, rc := range kept {
			removable := true
			rc.Covered().And(toCover).Visit(func(x int) bool {
				if coverCount[x] < 2 {
					removable = false
					return true
				}
				return false
			})
			if !removable {
				continue
			}
			value := p.evaluator.Evaluate(rc)
			// 同分偏向删后来的规则
			if worst == -1 || !measure.FirstIsBetter(value, worstValue, p.evaluator.MeasureType()) {
				worst = i
				worstValue = value
			}
		}
		if worst == -1 {
			return kept
		}
		kept[worst].Covered().And(toCover).Visit(func(x int) bool {
			coverCount[x]--
			return false
		})
		kept = append(kept[:worst], kept[worst+1:]...)
	}
}
