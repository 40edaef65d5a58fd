package enum

// 决策类并集的方向
const (
	// AtLeast 向上并集，决策不差于界限决策
	AtLeast = "AT_LEAST"
	// AtMost 向下并集，决策不好于界限决策
	AtMost = "AT_MOST"
)
