package enum

// 准则的偏好方向，决定支配关系中比较的方向
const (
	// Gain 增益型，取值越大越好
	Gain = "GAIN"
	// Cost 成本型，取值越小越好
	Cost = "COST"
	// None 无偏好，只比较相等
	None = "NONE"
)
