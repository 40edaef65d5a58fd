package rule

import (
	"math"

	"github.com/Knetic/govaluate"

	"drsa-shenglin/rock-share/base/logger"
	"drsa-shenglin/utils"
)

// FilterByExpression 按特征表达式筛选规则，
// 比如 "support >= 10 && epsilon <= 0.1"。
// 可用变量：support, strength, coverage_factor, confidence, epsilon。
// 未算出的特征当NaN参与比较，比较结果自然为假
func FilterByExpression(rs *RuleSetWithCharacteristics, expression string) (*RuleSetWithCharacteristics, error) {
	expr, err := govaluate.NewEvaluableExpression(expression)
	if err != nil {
		logger.Errorf("规则筛选表达式解析失败:%s--%v", expression, err)
		return nil, utils.ErrFilterExpression
	}

	var kept []*Rule
	var keptChars []*RuleCharacteristics
	for i := 0; i < rs.Size(); i++ {
		rc := rs.RuleCharacteristics(i)
		params := map[string]interface{}{
			"support":         float64(rc.Support),
			"strength":        rc.Strength,
			"coverage_factor": rc.CoverageFactor,
			"confidence":      rc.Confidence,
			"epsilon":         rc.Epsilon,
		}
		if rc.Support == UnknownIntCharacteristic {
			params["support"] = math.NaN()
		}
		result, err := expr.Evaluate(params)
		if err != nil {
			logger.Errorf("规则筛选表达式求值失败:%s--%v", expression, err)
			return nil, utils.ErrFilterExpression
		}
		if pass, ok := result.(bool); ok && pass {
			kept = append(kept, rs.Rule(i))
			keptChars = append(keptChars, rc)
		}
	}

	out := NewRuleSetWithCharacteristics(NewRuleSet(kept), rs.learningTable)
	copy(out.characteristics, keptChars)
	return out, nil
}
