package enum

type RuleType int

const (
	// CertainRule 确定性规则，从下近似归纳
	CertainRule RuleType = iota
	// PossibleRule 可能性规则，从上近似归纳
	PossibleRule
)

func (t RuleType) String() string {
	switch t {
	case CertainRule:
		return "certain"
	case PossibleRule:
		return "possible"
	default:
		return "UNKNOWN"
	}
}
