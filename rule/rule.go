package rule

import (
	"strings"

	"drsa-shenglin/rock-share/global/enum"
	"drsa-shenglin/rock-share/global/model/drsa"
	"drsa-shenglin/table"
)

// Rule 条件合取加决策部分的规则。
// 决策部分同样是属性-关系-阈值，阈值取自界限决策
type Rule struct {
	conditions   []Condition
	decisionPart Condition
	ruleType     enum.RuleType
	// semantics 规则来源并集的方向，enum.AtLeast / enum.AtMost
	semantics string
}

func NewRule(conditions []Condition, decisionPart Condition, ruleType enum.RuleType, semantics string) *Rule {
	cp := make([]Condition, len(conditions))
	copy(cp, conditions)
	return &Rule{
		conditions:   cp,
		decisionPart: decisionPart,
		ruleType:     ruleType,
		semantics:    semantics,
	}
}

func (r *Rule) Conditions() []Condition    { return r.conditions }
func (r *Rule) DecisionPart() Condition    { return r.decisionPart }
func (r *Rule) Type() enum.RuleType        { return r.ruleType }
func (r *Rule) Semantics() string          { return r.semantics }
func (r *Rule) NumberOfConditions() int    { return len(r.conditions) }

// Covers 对象满足全部基本条件。
// 决策部分对阈值自反成立(阈值不差于/不好于自身)，构造时即保证
func (r *Rule) Covers(objectIndex int, t *table.InformationTable) bool {
	for _, c := range r.conditions {
		if !c.SatisfiedBy(objectIndex, t) {
			return false
		}
	}
	return true
}

// DecisionMatched 对象的决策满足规则的决策部分
func (r *Rule) DecisionMatched(objectIndex int, t *table.InformationTable) bool {
	d := t.Decision(objectIndex)
	if d == nil {
		return false
	}
	field := d.Evaluation(r.decisionPart.AttributeIndex)
	if field == nil {
		return false
	}
	return r.decisionPart.SatisfiedByField(field)
}

// IsSupportedBy 覆盖对象且对象决策与决策部分一致
func (r *Rule) IsSupportedBy(objectIndex int, t *table.InformationTable) bool {
	return r.Covers(objectIndex, t) && r.DecisionMatched(objectIndex, t)
}

func (r *Rule) String() string {
	if len(r.conditions) == 0 {
		return "() => " + r.decisionPart.String()
	}
	parts := make([]string, len(r.conditions))
	for i, c := range r.conditions {
		parts[i] = c.String()
	}
	return strings.Join(parts, " & ") + " => " + r.decisionPart.String()
}

// NewDecisionPart 由界限决策在单个决策属性上的取值生成决策部分条件
func NewDecisionPart(attributeIndex int, attributeName string, semantics string, limiting *drsa.Decision) Condition {
	relation := enum.AtLeastRelation
	if semantics == enum.AtMost {
		relation = enum.AtMostRelation
	}
	return NewCondition(attributeIndex, attributeName, relation, limiting.Evaluation(attributeIndex))
}
