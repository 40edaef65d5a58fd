package table

import (
	"drsa-shenglin/rock-share/global/enum"
	"drsa-shenglin/rock-share/global/model/drsa"
	"drsa-shenglin/utils"
)

// InformationTable 对象×属性的不可变列式信息表。
// columns[attrIndex][objectIndex]，构造完成后只读
type InformationTable struct {
	attributes []*drsa.Attribute
	columns    [][]drsa.Field
	objectNum  int

	activeConditionIndices []int
	activeDecisionIndices  []int
	decisionIndices        []int

	// decisions 按对象聚合有效决策属性的取值，没有有效决策属性时为nil
	decisions []*drsa.Decision
}

func NewInformationTable(attributes []*drsa.Attribute, columns [][]drsa.Field) (*InformationTable, error) {
	if attributes == nil || columns == nil {
		return nil, utils.ErrEmptyPointer
	}
	if len(attributes) != len(columns) {
		return nil, utils.ErrParameter
	}
	objectNum := 0
	if len(columns) > 0 {
		objectNum = len(columns[0])
	}
	for _, col := range columns {
		if len(col) != objectNum {
			return nil, utils.ErrParameter
		}
	}

	t := &InformationTable{
		attributes: attributes,
		columns:    columns,
		objectNum:  objectNum,
	}
	for i, attr := range attributes {
		if attr == nil {
			return nil, utils.ErrEmptyPointer
		}
		if attr.IsActiveCondition() {
			t.activeConditionIndices = append(t.activeConditionIndices, i)
		}
		if attr.IsActiveDecision() {
			t.activeDecisionIndices = append(t.activeDecisionIndices, i)
		}
		if attr.Kind == enum.DecisionAttribute {
			t.decisionIndices = append(t.decisionIndices, i)
		}
	}
	if len(t.activeDecisionIndices) > 0 {
		t.decisions = make([]*drsa.Decision, objectNum)
		for obj := 0; obj < objectNum; obj++ {
			evals := make(map[int]drsa.Field, len(t.activeDecisionIndices))
			for _, attrIdx := range t.activeDecisionIndices {
				evals[attrIdx] = columns[attrIdx][obj]
			}
			t.decisions[obj] = drsa.NewDecision(evals)
		}
	}
	return t, nil
}

func (t *InformationTable) NumberOfObjects() int    { return t.objectNum }
func (t *InformationTable) NumberOfAttributes() int { return len(t.attributes) }

func (t *InformationTable) Attributes() []*drsa.Attribute { return t.attributes }

func (t *InformationTable) Attribute(attributeIndex int) *drsa.Attribute {
	return t.attributes[attributeIndex]
}

// ActiveConditionAttributeIndices 参与支配锥计算的属性下标
func (t *InformationTable) ActiveConditionAttributeIndices() []int {
	return t.activeConditionIndices
}

// ActiveDecisionAttributeIndices 有效决策属性下标
func (t *InformationTable) ActiveDecisionAttributeIndices() []int {
	return t.activeDecisionIndices
}

func (t *InformationTable) Field(objectIndex, attributeIndex int) drsa.Field {
	return t.columns[attributeIndex][objectIndex]
}

// Decision 对象的有效决策，表中没有有效决策属性时为nil
func (t *InformationTable) Decision(objectIndex int) *drsa.Decision {
	if t.decisions == nil {
		return nil
	}
	return t.decisions[objectIndex]
}

// Decisions onlyActive为true时只看有效决策属性，没有则返回nil，
// 调用方靠这个nil来快速失败
func (t *InformationTable) Decisions(onlyActive bool) []*drsa.Decision {
	if onlyActive {
		return t.decisions
	}
	if len(t.decisionIndices) == 0 {
		return nil
	}
	out := make([]*drsa.Decision, t.objectNum)
	for obj := 0; obj < t.objectNum; obj++ {
		evals := make(map[int]drsa.Field, len(t.decisionIndices))
		for _, attrIdx := range t.decisionIndices {
			evals[attrIdx] = t.columns[attrIdx][obj]
		}
		out[obj] = drsa.NewDecision(evals)
	}
	return out
}

// Select 按对象下标投影出子表。readOnly时直接复用列切片底层数据
func (t *InformationTable) Select(objectIndices []int, readOnly bool) (*InformationTable, error) {
	if objectIndices == nil {
		return nil, utils.ErrEmptyPointer
	}
	for _, idx := range objectIndices {
		if idx < 0 || idx >= t.objectNum {
			return nil, utils.ErrParameter
		}
	}
	columns := make([][]drsa.Field, len(t.columns))
	for c := range t.columns {
		col := make([]drsa.Field, len(objectIndices))
		for i, idx := range objectIndices {
			col[i] = t.columns[c][idx]
		}
		columns[c] = col
	}
	attributes := t.attributes
	if !readOnly {
		attributes = make([]*drsa.Attribute, len(t.attributes))
		for i, a := range t.attributes {
			cp := *a
			attributes[i] = &cp
		}
	}
	return NewInformationTable(attributes, columns)
}

// Discard 去掉给定对象下标后的子表
func (t *InformationTable) Discard(objectIndices []int, readOnly bool) (*InformationTable, error) {
	if objectIndices == nil {
		return nil, utils.ErrEmptyPointer
	}
	discarded := make(map[int]bool, len(objectIndices))
	for _, idx := range objectIndices {
		if idx < 0 || idx >= t.objectNum {
			return nil, utils.ErrParameter
		}
		discarded[idx] = true
	}
	kept := make([]int, 0, t.objectNum-len(discarded))
	for i := 0; i < t.objectNum; i++ {
		if !discarded[i] {
			kept = append(kept, i)
		}
	}
	return t.Select(kept, readOnly)
}

// UniqueDecisionsAscending 全部不同决策按从差到好排序。
// 出现互不可比的决策对时返回ErrUncomparableDecision
func (t *InformationTable) UniqueDecisionsAscending() ([]*drsa.Decision, error) {
	if t.decisions == nil {
		return nil, utils.ErrNoDecisionAttribute
	}
	uniq := make(map[string]*drsa.Decision)
	for _, d := range t.decisions {
		uniq[d.Key()] = d
	}
	out := make([]*drsa.Decision, 0, len(uniq))
	for _, d := range uniq {
		out = append(out, d)
	}
	// 插入排序，顺便探测不可比：
	// 相邻两个决策必须有一个方向成立，否则没有全序
	for i := 1; i < len(out); i++ {
		for j := i; j > 0; j-- {
			if out[j].IsAtLeastAsGoodAs(out[j-1]) == drsa.TruthTrue {
				break
			}
			if out[j-1].IsAtLeastAsGoodAs(out[j]) != drsa.TruthTrue {
				return nil, utils.ErrUncomparableDecision
			}
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out, nil
}
