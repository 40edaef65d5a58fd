package drsa

// Truth 三值比较结果。支配关系和决策比较都可能出现不可比，
// 用显式枚举强制调用方处理，不用可空的bool
type Truth int

const (
	TruthFalse Truth = iota
	TruthTrue
	TruthUncomparable
)

func (t Truth) String() string {
	switch t {
	case TruthTrue:
		return "TRUE"
	case TruthFalse:
		return "FALSE"
	default:
		return "UNCOMPARABLE"
	}
}

// CombineTruth 按下确界合并多个子比较结果：全部一致才给出确定的TRUE/FALSE，
// 出现不可比或相互矛盾都算不可比
func CombineTruth(results []Truth) Truth {
	if len(results) == 0 {
		return TruthUncomparable
	}
	first := results[0]
	for _, r := range results[1:] {
		if r == TruthUncomparable || r != first {
			return TruthUncomparable
		}
	}
	return first
}
