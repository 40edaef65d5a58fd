package rule

import (
	"fmt"

	"drsa-shenglin/rock-share/global/enum"
	"drsa-shenglin/rock-share/global/model/drsa"
	"drsa-shenglin/table"
)

// Condition 基本条件：属性-关系-阈值三元组。
// 关系按偏好方向解释(不差于/不好于阈值)，展示时再换算成>=或<=。
// mv1.5缺失值空满足任何条件，mv2缺失值不满足，由字段比较自己分派
type Condition struct {
	AttributeIndex int
	AttributeName  string
	Relation       enum.RelationEnum
	Threshold      drsa.Field
}

func NewCondition(attributeIndex int, attributeName string, relation enum.RelationEnum, threshold drsa.Field) Condition {
	return Condition{
		AttributeIndex: attributeIndex,
		AttributeName:  attributeName,
		Relation:       relation,
		Threshold:      threshold,
	}
}

// SatisfiedBy 对象在该条件下是否通过
func (c Condition) SatisfiedBy(objectIndex int, t *table.InformationTable) bool {
	return c.SatisfiedByField(t.Field(objectIndex, c.AttributeIndex))
}

func (c Condition) SatisfiedByField(field drsa.Field) bool {
	return c.EvaluateField(field) == drsa.TruthTrue
}

// EvaluateField 条件关系的三值判定结果
func (c Condition) EvaluateField(field drsa.Field) drsa.Truth {
	if field == nil {
		return drsa.TruthUncomparable
	}
	switch c.Relation {
	case enum.AtLeastRelation:
		return field.IsAtLeastAsGoodAs(c.Threshold)
	case enum.AtMostRelation:
		return field.IsAtMostAsGoodAs(c.Threshold)
	default:
		return field.IsEqualTo(c.Threshold)
	}
}

// symbol 偏好方向换算成取值方向的符号：
// 成本型属性上"不差于阈值"其实是取值<=阈值
func (c Condition) symbol() string {
	pref := enum.None
	if c.Threshold != nil {
		pref = c.Threshold.Preference()
	}
	switch c.Relation {
	case enum.AtLeastRelation:
		if pref == enum.Cost {
			return "<="
		}
		return ">="
	case enum.AtMostRelation:
		if pref == enum.Cost {
			return ">="
		}
		return "<="
	default:
		return "="
	}
}

func (c Condition) String() string {
	return fmt.Sprintf("(%s %s %v)", c.AttributeName, c.symbol(), c.Threshold)
}

// SameAs 属性、关系、阈值全部一致
func (c Condition) SameAs(other Condition) bool {
	if c.AttributeIndex != other.AttributeIndex || c.Relation != other.Relation {
		return false
	}
	if c.Threshold == nil || other.Threshold == nil {
		return c.Threshold == other.Threshold
	}
	return c.Threshold.IsEqualTo(other.Threshold) == drsa.TruthTrue
}
