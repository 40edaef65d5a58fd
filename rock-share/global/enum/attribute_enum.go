package enum

// 属性在信息表中的角色
const (
	// ConditionAttribute 条件属性，参与支配锥计算
	ConditionAttribute = "CONDITION"
	// DecisionAttribute 决策属性，决定对象所属决策类
	DecisionAttribute = "DECISION"
	// DescriptionAttribute 描述属性，不参与计算
	DescriptionAttribute = "DESCRIPTION"
)

// 属性取值类型
const (
	IntType  = "int64"
	RealType = "float64"
	EnumType = "enum"
	PairType = "pair"
)

// 缺失值语义
const (
	// MV15 缺失值与任何值可比且相等，空满足任何条件
	MV15 = "mv1.5"
	// MV2 缺失值只与同类缺失值可比
	MV2 = "mv2"
)
