package classifier

import (
	"drsa-shenglin/rock-share/base/logger"
	"drsa-shenglin/rock-share/global/model/drsa"
	"drsa-shenglin/rule"
	"drsa-shenglin/table"
	"drsa-shenglin/utils"
)

// SimpleRuleClassifier 拿规则集给对象投票分类。
// 覆盖对象的每条规则用决策部分的阈值投一票，取众数，
// 平票取规则顺序靠前的。没规则覆盖时落到缺省决策，
// 缺省也没有就报分类失败
type SimpleRuleClassifier struct {
	ruleSet         *rule.RuleSet
	defaultDecision *drsa.Decision
}

func NewSimpleRuleClassifier(ruleSet *rule.RuleSet, defaultDecision *drsa.Decision) (*SimpleRuleClassifier, error) {
	if ruleSet == nil {
		return nil, utils.ErrEmptyPointer
	}
	return &SimpleRuleClassifier{ruleSet: ruleSet, defaultDecision: defaultDecision}, nil
}

// Classify 单个对象的分类结果
func (c *SimpleRuleClassifier) Classify(objectIndex int, t *table.InformationTable) (*drsa.Decision, error) {
	if t == nil {
		return nil, utils.ErrEmptyPointer
	}

	votes := map[string]int{}
	candidates := map[string]*drsa.Decision{}
	var order []string
	for i := 0; i < c.ruleSet.Size(); i++ {
		r := c.ruleSet.Rule(i)
		if !r.Covers(objectIndex, t) {
			continue
		}
		part := r.DecisionPart()
		d := drsa.NewSimpleDecision(part.AttributeIndex, part.Threshold)
		if d == nil {
			continue
		}
		if _, seen := votes[d.Key()]; !seen {
			candidates[d.Key()] = d
			order = append(order, d.Key())
		}
		votes[d.Key()]++
	}

	if len(order) == 0 {
		if c.defaultDecision != nil {
			return c.defaultDecision, nil
		}
		logger.Debugf("对象%d没有任何规则覆盖且无缺省决策", objectIndex)
		return nil, utils.ErrClassificationFailure
	}

	bestKey := order[0]
	for _, key := range order[1:] {
		if votes[key] > votes[bestKey] {
			bestKey = key
		}
	}
	return candidates[bestKey], nil
}

// ClassifyAll 整张表逐对象分类
func (c *SimpleRuleClassifier) ClassifyAll(t *table.InformationTable) ([]*drsa.Decision, error) {
	if t == nil {
		return nil, utils.ErrEmptyPointer
	}
	out := make([]*drsa.Decision, t.NumberOfObjects())
	for obj := range out {
		d, err := c.Classify(obj, t)
		if err != nil {
			return nil, err
		}
		out[obj] = d
	}
	return out, nil
}

// Accuracy 分类结果和真实决策的一致率，真实决策缺失的对象跳过
func (c *SimpleRuleClassifier) Accuracy(t *table.InformationTable) (float64, error) {
	predicted, err := c.ClassifyAll(t)
	if err != nil {
		return 0, err
	}
	matched, counted := 0, 0
	for obj, p := range predicted {
		actual := t.Decision(obj)
		if actual == nil {
			continue
		}
		counted++
		if p.IsEqualTo(actual) == drsa.TruthTrue {
			matched++
		}
	}
	if counted == 0 {
		return 0, nil
	}
	return float64(matched) / float64(counted), nil
}
