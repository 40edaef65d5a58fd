package induction

import (
	"github.com/yourbasic/bit"

	"drsa-shenglin/approximation"
	"drsa-shenglin/measure"
	"drsa-shenglin/rock-share/base/logger"
	"drsa-shenglin/rock-share/global/enum"
	"drsa-shenglin/rule"
	"drsa-shenglin/utils"
)

// VCDomLEM 序贯覆盖的规则归纳引擎。
// 一个方向的并集从最特殊的开始，逐条生长-剪枝-接收，
// 直到目标近似里的对象全部被覆盖
type VCDomLEM struct {
	components *RuleInducerComponents
	unions     *approximation.Unions
}

func NewVCDomLEM(components *RuleInducerComponents, unions *approximation.Unions) (*VCDomLEM, error) {
	if components == nil || unions == nil {
		return nil, utils.ErrEmptyPointer
	}
	return &VCDomLEM{components: components, unions: unions}, nil
}

// InduceRules 归纳一个方向的全部规则，
// AT_LEAST出>=规则，AT_MOST出<=规则
func (v *VCDomLEM) InduceRules(unionType string) (*rule.RuleSet, error) {
	if unionType != enum.AtLeast && unionType != enum.AtMost {
		return nil, utils.ErrUnknownUnionType
	}
	tbl := v.unions.Table().InformationTable
	decisionIndices := tbl.ActiveDecisionAttributeIndices()
	if len(decisionIndices) == 0 {
		return nil, utils.ErrNoDecisionAttribute
	}
	decisionIndex := decisionIndices[0]
	decisionName := tbl.Attribute(decisionIndex).Name

	var rules []*rule.Rule
	// runCovered 本方向已接收规则覆盖过的对象，
	// 后续更泛的并集不再为这些对象出规则
	runCovered := bit.New()
	for _, u := range v.unions.MostSpecificFirst(unionType) {
		kept := v.induceForUnion(u, unionType, runCovered)
		for _, rc := range kept {
			runCovered = runCovered.Or(rc.Covered())
			decisionPart := rule.NewDecisionPart(decisionIndex, decisionName, unionType, u.LimitingDecision())
			rules = append(rules, rule.NewRule(rc.Conditions(), decisionPart, v.components.RuleType(), unionType))
		}
	}
	logger.Debugf("方向%s归纳完成, 规则数:%d", unionType, len(rules))
	return rule.NewRuleSet(rules), nil
}

// induceForUnion 对单个并集做序贯覆盖，返回剪枝后保留的条件序列。
// 种子只从runCovered之外的目标对象里取
func (v *VCDomLEM) induceForUnion(u *approximation.Union, unionType string, runCovered *bit.Set) []*rule.RuleConditions {
	target := v.components.TargetObjects(u)
	if target == nil || target.Size() == 0 {
		return nil
	}
	toCover := target.AndNot(runCovered)
	if toCover.Size() == 0 {
		return nil
	}
	tbl := u.Table().InformationTable
	// 目标近似外的并集成员不算负对象，归入中立
	neutral := u.Neutral().Or(u.Positive().AndNot(target))

	var induced []*rule.RuleConditions
	uncovered := bit.New().Or(toCover)
	for uncovered.Size() > 0 {
		seed := uncovered.Next(-1)
		rc := rule.NewRuleConditions(tbl, target, neutral, u.GetComplementarySetSize())
		if !v.grow(rc, seed, unionType) {
			// 种子撑不起合格规则，放弃它防止死循环
			uncovered.Delete(seed)
			continue
		}
		v.components.ConditionsPruner().Prune(rc, v.components.StoppingChecker())
		induced = append(induced, rc)
		uncovered = uncovered.AndNot(rc.Covered())
	}
	return v.components.RuleSetPruner().Prune(induced, toCover)
}

// grow 生长阶段：每轮在未用属性里挑评估最优的基本条件追加，
// 直到停机条件满足。候选打分平手时依次看后续评估器，
// 仍平手保留属性下标小的
func (v *VCDomLEM) grow(rc *rule.RuleConditions, seed int, unionType string) bool {
	checker := v.components.StoppingChecker()
	for !checker.IsStoppingConditionSatisfied(rc) {
		best, ok := v.bestCandidate(rc, seed, unionType)
		if !ok {
			return false
		}
		if rc.AddCondition(best) != nil {
			return false
		}
	}
	return true
}

func (v *VCDomLEM) bestCandidate(rc *rule.RuleConditions, seed int, unionType string) (rule.Condition, bool) {
	tbl := rc.LearningTable()
	var best rule.Condition
	found := false
	for _, attrIdx := range tbl.ActiveConditionAttributeIndices() {
		if rc.IsAttributeUsed(attrIdx) {
			continue
		}
		field := tbl.Field(seed, attrIdx)
		if field == nil || field.IsUnknown() {
			// 种子在该属性上缺失，生不出阈值
			continue
		}
		candidate := rule.NewCondition(attrIdx, tbl.Attribute(attrIdx).Name,
			conditionRelation(unionType, field.Preference()), field)
		if !found || v.candidateBeats(rc, candidate, best) {
			best = candidate
			found = true
		}
	}
	return best, found
}

// candidateBeats a是否严格优于b，评估器链逐级比较
func (v *VCDomLEM) candidateBeats(rc *rule.RuleConditions, a, b rule.Condition) bool {
	for _, e := range v.components.ConditionAdditionEvaluators() {
		va := e.EvaluateWithCondition(rc, a)
		vb := e.EvaluateWithCondition(rc, b)
		if measure.FirstIsBetter(va, vb, e.MeasureType()) {
			return true
		}
		if measure.FirstIsBetter(vb, va, e.MeasureType()) {
			return false
		}
	}
	return false
}

// conditionRelation 基本条件的关系按并集方向走，
// 无偏好属性只能取等值条件
func conditionRelation(unionType string, preference string) enum.RelationEnum {
	if preference == enum.None {
		return enum.EqualRelation
	}
	if unionType == enum.AtLeast {
		return enum.AtLeastRelation
	}
	return enum.AtMostRelation
}
