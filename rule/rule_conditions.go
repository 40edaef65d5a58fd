package rule

import (
	mapset "github.com/deckarep/golang-set"
	"github.com/yourbasic/bit"

	"drsa-shenglin/table"
	"drsa-shenglin/utils"
)

// RuleConditions 归纳过程中生长的条件序列，
// 带着相对学习表缓存的覆盖对象集。
// 一个归纳任务独占一个实例，绝不跨任务共享
type RuleConditions struct {
	learningTable *table.InformationTable

	conditions     []Condition
	usedAttributes mapset.Set

	// covered 满足当前全部条件的对象；没有条件时覆盖全表
	covered *bit.Set
	// positive 归纳目标集合(近似)的对象
	positive *bit.Set
	// neutral 相对目标并集中立的对象，不算正也不算负
	neutral *bit.Set
	// complementarySize 目标并集补集大小，epsilon的分母
	complementarySize int
}

func NewRuleConditions(t *table.InformationTable, positive, neutral *bit.Set, complementarySize int) *RuleConditions {
	n := t.NumberOfObjects()
	covered := bit.New()
	if n > 0 {
		covered.AddRange(0, n)
	}
	if neutral == nil {
		neutral = bit.New()
	}
	return &RuleConditions{
		learningTable:     t,
		usedAttributes:    mapset.NewThreadUnsafeSet(),
		covered:           covered,
		positive:          positive,
		neutral:           neutral,
		complementarySize: complementarySize,
	}
}

func (rc *RuleConditions) LearningTable() *table.InformationTable { return rc.learningTable }

func (rc *RuleConditions) Conditions() []Condition { return rc.conditions }

func (rc *RuleConditions) Size() int { return len(rc.conditions) }

func (rc *RuleConditions) Condition(i int) Condition { return rc.conditions[i] }

func (rc *RuleConditions) IsAttributeUsed(attributeIndex int) bool {
	return rc.usedAttributes.Contains(attributeIndex)
}

// Covered 当前覆盖的对象集，调用方只读
func (rc *RuleConditions) Covered() *bit.Set { return rc.covered }

func (rc *RuleConditions) Positive() *bit.Set { return rc.positive }

func (rc *RuleConditions) Neutral() *bit.Set { return rc.neutral }

func (rc *RuleConditions) ComplementarySize() int { return rc.complementarySize }

// AddCondition 追加条件并增量收缩覆盖集，
// 一个属性最多一个条件
func (rc *RuleConditions) AddCondition(c Condition) error {
	if rc.usedAttributes.Contains(c.AttributeIndex) {
		return utils.ErrAttributeAlreadyUsed
	}
	rc.conditions = append(rc.conditions, c)
	rc.usedAttributes.Add(c.AttributeIndex)
	rc.covered = rc.covered.And(rc.SatisfyingSet(c))
	return nil
}

// RemoveCondition 去掉第i个条件，覆盖集从头重算
func (rc *RuleConditions) RemoveCondition(i int) error {
	if i < 0 || i >= len(rc.conditions) {
		return utils.ErrConditionOutOfRange
	}
	removed := rc.conditions[i]
	rc.conditions = append(rc.conditions[:i], rc.conditions[i+1:]...)

	stillUsed := false
	for _, c := range rc.conditions {
		if c.AttributeIndex == removed.AttributeIndex {
			stillUsed = true
			break
		}
	}
	if !stillUsed {
		rc.usedAttributes.Remove(removed.AttributeIndex)
	}
	rc.recomputeCovered()
	return nil
}

func (rc *RuleConditions) recomputeCovered() {
	n := rc.learningTable.NumberOfObjects()
	covered := bit.New()
	if n > 0 {
		covered.AddRange(0, n)
	}
	for _, c := range rc.conditions {
		covered = covered.And(rc.SatisfyingSet(c))
	}
	rc.covered = covered
}

// SatisfyingSet 学习表中满足单个条件的对象集
func (rc *RuleConditions) SatisfyingSet(c Condition) *bit.Set {
	out := bit.New()
	n := rc.learningTable.NumberOfObjects()
	for obj := 0; obj < n; obj++ {
		if c.SatisfiedBy(obj, rc.learningTable) {
			out.Add(obj)
		}
	}
	return out
}

// CoveredWith 附加一个候选条件后的覆盖集，不改动自身。
// 生长阶段评估候选用
func (rc *RuleConditions) CoveredWith(c Condition) *bit.Set {
	return rc.covered.And(rc.SatisfyingSet(c))
}

// CoveredWithout 去掉第i个条件后的覆盖集，不改动自身
func (rc *RuleConditions) CoveredWithout(i int) *bit.Set {
	n := rc.learningTable.NumberOfObjects()
	covered := bit.New()
	if n > 0 {
		covered.AddRange(0, n)
	}
	for j, c := range rc.conditions {
		if j == i {
			continue
		}
		covered = covered.And(rc.SatisfyingSet(c))
	}
	return covered
}

// CoveredNegativeCount 覆盖集中负对象个数(非正非中立)
func (rc *RuleConditions) CoveredNegativeCount() int {
	return CountNegative(rc.covered, rc.positive, rc.neutral)
}

func (rc *RuleConditions) CoveredPositiveCount() int {
	return rc.covered.And(rc.positive).Size()
}

// CountNegative covered里去掉正对象和中立对象后的个数
func CountNegative(covered, positive, neutral *bit.Set) int {
	return covered.AndNot(positive).AndNot(neutral).Size()
}

// SatisfiedBy 对象是否满足当前全部条件
func (rc *RuleConditions) SatisfiedBy(objectIndex int) bool {
	return rc.covered.Contains(objectIndex)
}
