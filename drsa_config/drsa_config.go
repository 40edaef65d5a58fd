package drsa_config

const GinPort = "19123"

// DefaultConsistencyThreshold 请求不带阈值时的epsilon上限，
// 0就是经典DRSA
const DefaultConsistencyThreshold = 0.0

// MaxConsistencyThreshold epsilon阈值的合法上界
const MaxConsistencyThreshold = 1.0

// 开关
const (
	// UseStorage 规则是否落库
	UseStorage = false
	// SaveDominanceGraph 是否顺手导出支配关系图
	SaveDominanceGraph = false
)

// ResultDir 规则csv的输出目录
const ResultDir = "result"

// GraphDir 支配关系图的输出目录
const GraphDir = "graph"

// 请求里的规则类型取值
const (
	CertainRuleType  = "certain"
	PossibleRuleType = "possible"
)

// DefaultKFoldNumber 交叉验证缺省折数
const DefaultKFoldNumber = 10

// ClassificationSampleLimit 超过这个对象数就不在响应里回分类明细
const ClassificationSampleLimit = 10000
