package rule

import (
	"fmt"
	"math"
	"strconv"

	"drsa-shenglin/rock-share/global/model/drsa"
	"drsa-shenglin/table"
)

// UnknownIntCharacteristic 未计算的整型特征值
const UnknownIntCharacteristic = -1

// RuleCharacteristics 单条规则在学习表上的特征统计。
// 未算出的值序列化成"?"
type RuleCharacteristics struct {
	Support        int
	Strength       float64
	CoverageFactor float64
	Confidence     float64
	Epsilon        float64
}

func NewRuleCharacteristics() *RuleCharacteristics {
	return &RuleCharacteristics{
		Support:        UnknownIntCharacteristic,
		Strength:       math.NaN(),
		CoverageFactor: math.NaN(),
		Confidence:     math.NaN(),
		Epsilon:        math.NaN(),
	}
}

func formatIntCharacteristic(v int) string {
	if v == UnknownIntCharacteristic {
		return "?"
	}
	return strconv.Itoa(v)
}

func formatFloatCharacteristic(v float64) string {
	if math.IsNaN(v) {
		return "?"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// String 字段顺序固定：support, strength, coverage-factor, confidence, epsilon
func (rc *RuleCharacteristics) String() string {
	return fmt.Sprintf("[support=%s, strength=%s, coverage-factor=%s, confidence=%s, epsilon=%s]",
		formatIntCharacteristic(rc.Support),
		formatFloatCharacteristic(rc.Strength),
		formatFloatCharacteristic(rc.CoverageFactor),
		formatFloatCharacteristic(rc.Confidence),
		formatFloatCharacteristic(rc.Epsilon))
}

// decisionStanding 对象相对决策部分的三值归类
func decisionStanding(r *Rule, objectIndex int, t *table.InformationTable) drsa.Truth {
	d := t.Decision(objectIndex)
	if d == nil {
		return drsa.TruthUncomparable
	}
	field := d.Evaluation(r.DecisionPart().AttributeIndex)
	if field == nil {
		return drsa.TruthUncomparable
	}
	return r.DecisionPart().EvaluateField(field)
}

// ComputeCharacteristics 在学习表上统计一条规则的全部特征：
// support   覆盖且决策一致的对象数
// strength  support/全表对象数
// coverage-factor support/决策一致的对象总数
// confidence support/覆盖对象数
// epsilon   覆盖的负对象数/负对象总数(并集补集大小)，分母为0或没覆盖负对象时取0
func ComputeCharacteristics(r *Rule, t *table.InformationTable) *RuleCharacteristics {
	rc := NewRuleCharacteristics()
	n := t.NumberOfObjects()

	coveredCount := 0
	support := 0
	positiveTotal := 0
	negativeTotal := 0
	coveredNegative := 0
	for obj := 0; obj < n; obj++ {
		standing := decisionStanding(r, obj, t)
		switch standing {
		case drsa.TruthTrue:
			positiveTotal++
		case drsa.TruthFalse:
			negativeTotal++
		}
		if r.Covers(obj, t) {
			coveredCount++
			switch standing {
			case drsa.TruthTrue:
				support++
			case drsa.TruthFalse:
				coveredNegative++
			}
		}
	}

	rc.Support = support
	if n > 0 {
		rc.Strength = float64(support) / float64(n)
	}
	if positiveTotal > 0 {
		rc.CoverageFactor = float64(support) / float64(positiveTotal)
	}
	if coveredCount > 0 {
		rc.Confidence = float64(support) / float64(coveredCount)
	}
	if negativeTotal == 0 || coveredNegative == 0 {
		rc.Epsilon = 0
	} else {
		rc.Epsilon = float64(coveredNegative) / float64(negativeTotal)
	}
	return rc
}
