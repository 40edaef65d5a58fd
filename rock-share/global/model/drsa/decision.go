package drsa

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Decision 单个对象的决策，一个或多个(属性下标->取值)的不可变聚合。
// 构造后只读，key用于map场景的结构相等
type Decision struct {
	attributeIndices []int
	evaluations      []Field
	key              string
}

// NewDecision 由属性下标到取值的映射构造，空映射返回nil
func NewDecision(evaluations map[int]Field) *Decision {
	if len(evaluations) == 0 {
		return nil
	}
	indices := make([]int, 0, len(evaluations))
	for idx := range evaluations {
		indices = append(indices, idx)
	}
	slices.Sort(indices)

	evals := make([]Field, len(indices))
	parts := make([]string, len(indices))
	for i, idx := range indices {
		evals[i] = evaluations[idx]
		parts[i] = fmt.Sprintf("%d:%v", idx, evaluations[idx])
	}
	return &Decision{
		attributeIndices: indices,
		evaluations:      evals,
		key:              strings.Join(parts, "|"),
	}
}

// NewSimpleDecision 常见的单决策属性场景
func NewSimpleDecision(attributeIndex int, evaluation Field) *Decision {
	return NewDecision(map[int]Field{attributeIndex: evaluation})
}

// Key 结构相等用的键，同键即同决策
func (d *Decision) Key() string { return d.key }

func (d *Decision) String() string { return d.key }

func (d *Decision) AttributeIndices() []int {
	out := make([]int, len(d.attributeIndices))
	copy(out, d.attributeIndices)
	return out
}

// Evaluation 取某个决策属性上的值，没有则返回nil
func (d *Decision) Evaluation(attributeIndex int) Field {
	for i, idx := range d.attributeIndices {
		if idx == attributeIndex {
			return d.evaluations[i]
		}
	}
	return nil
}

func (d *Decision) NumberOfEvaluations() int { return len(d.evaluations) }

// compareWith 逐属性比较后按下确界合并。属性集不一致直接不可比
func (d *Decision) compareWith(other *Decision, cmp func(a, b Field) Truth) Truth {
	if other == nil || len(d.attributeIndices) != len(other.attributeIndices) {
		return TruthUncomparable
	}
	results := make([]Truth, len(d.attributeIndices))
	for i, idx := range d.attributeIndices {
		if other.attributeIndices[i] != idx {
			return TruthUncomparable
		}
		results[i] = cmp(d.evaluations[i], other.evaluations[i])
	}
	return CombineTruth(results)
}

func (d *Decision) IsAtLeastAsGoodAs(other *Decision) Truth {
	return d.compareWith(other, func(a, b Field) Truth { return a.IsAtLeastAsGoodAs(b) })
}

func (d *Decision) IsAtMostAsGoodAs(other *Decision) Truth {
	return d.compareWith(other, func(a, b Field) Truth { return a.IsAtMostAsGoodAs(b) })
}

func (d *Decision) IsEqualTo(other *Decision) Truth {
	return d.compareWith(other, func(a, b Field) Truth { return a.IsEqualTo(b) })
}
