package enum

type RelationEnum string

// 基本条件和规则决策部分中的关系符号
const (
	AtLeastRelation RelationEnum = ">="
	AtMostRelation  RelationEnum = "<="
	EqualRelation   RelationEnum = "="
)
