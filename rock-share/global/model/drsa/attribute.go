package drsa

import "drsa-shenglin/rock-share/global/enum"

// Attribute 信息表的属性元数据
type Attribute struct {
	Name       string
	Active     bool
	Kind       string // enum.ConditionAttribute / DecisionAttribute / DescriptionAttribute
	Preference string // enum.Gain / Cost / None
	ValueType  string // enum.IntType / RealType / EnumType / PairType
	MissingTyp string // enum.MV15 / MV2，该列缺失值采用的语义
}

// IsActiveCondition 是否参与支配锥计算
func (a *Attribute) IsActiveCondition() bool {
	return a.Active && a.Kind == enum.ConditionAttribute
}

// IsActiveDecision 是否是有效决策属性
func (a *Attribute) IsActiveDecision() bool {
	return a.Active && a.Kind == enum.DecisionAttribute
}

// MissingField 按该属性的缺失值语义生成一个缺失值
func (a *Attribute) MissingField() Field {
	if a.MissingTyp == enum.MV15 {
		return NewUnknownFieldMV15()
	}
	return NewUnknownFieldMV2()
}
