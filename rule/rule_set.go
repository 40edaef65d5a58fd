package rule

import (
	"strings"

	"drsa-shenglin/table"
)

// RuleSet 不可变的有序规则序列
type RuleSet struct {
	rules []*Rule
}

func NewRuleSet(rules []*Rule) *RuleSet {
	cp := make([]*Rule, len(rules))
	copy(cp, rules)
	return &RuleSet{rules: cp}
}

func (rs *RuleSet) Size() int { return len(rs.rules) }

func (rs *RuleSet) Rule(i int) *Rule { return rs.rules[i] }

func (rs *RuleSet) Rules() []*Rule {
	cp := make([]*Rule, len(rs.rules))
	copy(cp, rs.rules)
	return cp
}

// Join 按原顺序拼接两个规则集，a在前b在后
func Join(a, b *RuleSet) *RuleSet {
	rules := make([]*Rule, 0, a.Size()+b.Size())
	rules = append(rules, a.rules...)
	rules = append(rules, b.rules...)
	return NewRuleSet(rules)
}

// Serialize 每条规则一行
func (rs *RuleSet) Serialize() string {
	var sb strings.Builder
	for _, r := range rs.rules {
		sb.WriteString(r.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

// RuleSetWithCharacteristics 规则集加按需计算的特征，
// 特征算一次就缓存
type RuleSetWithCharacteristics struct {
	*RuleSet
	learningTable   *table.InformationTable
	characteristics []*RuleCharacteristics
}

func NewRuleSetWithCharacteristics(rs *RuleSet, learningTable *table.InformationTable) *RuleSetWithCharacteristics {
	return &RuleSetWithCharacteristics{
		RuleSet:         rs,
		learningTable:   learningTable,
		characteristics: make([]*RuleCharacteristics, rs.Size()),
	}
}

// RuleCharacteristics 第i条规则的特征，惰性计算
func (rs *RuleSetWithCharacteristics) RuleCharacteristics(i int) *RuleCharacteristics {
	if rs.characteristics[i] == nil {
		if rs.learningTable != nil {
			rs.characteristics[i] = ComputeCharacteristics(rs.Rule(i), rs.learningTable)
		} else {
			rs.characteristics[i] = NewRuleCharacteristics()
		}
	}
	return rs.characteristics[i]
}

// JoinWithCharacteristics 拼接并保留双方已算出的特征缓存
func JoinWithCharacteristics(a, b *RuleSetWithCharacteristics) *RuleSetWithCharacteristics {
	joined := &RuleSetWithCharacteristics{
		RuleSet:         Join(a.RuleSet, b.RuleSet),
		learningTable:   a.learningTable,
		characteristics: make([]*RuleCharacteristics, a.Size()+b.Size()),
	}
	copy(joined.characteristics, a.characteristics)
	copy(joined.characteristics[a.Size():], b.characteristics)
	return joined
}

// Serialize 规则文本后跟特征摘要：
// "<rule text> [support=…, strength=…, coverage-factor=…, confidence=…, epsilon=…]\n"
func (rs *RuleSetWithCharacteristics) Serialize() string {
	var sb strings.Builder
	for i, r := range rs.rules {
		sb.WriteString(r.String())
		sb.WriteString(" ")
		sb.WriteString(rs.RuleCharacteristics(i).String())
		sb.WriteString("\n")
	}
	return sb.String()
}
