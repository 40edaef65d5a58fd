package rule

import (
	"math"
	"testing"

	"github.com/yourbasic/bit"

	"drsa-shenglin/rock-share/global/enum"
	"drsa-shenglin/rock-share/global/model/drsa"
	"drsa-shenglin/table"
	"drsa-shenglin/utils"
)

func gainColumn(pref string, values ...int64) []drsa.Field {
	out := make([]drsa.Field, len(values))
	for i, v := range values {
		out[i] = drsa.NewIntegerField(v, pref)
	}
	return out
}

func buildTable(t *testing.T, condition, decision []int64) *table.InformationTable {
	t.Helper()
	attrs := []*drsa.Attribute{
		{Name: "a1", Active: true, Kind: enum.ConditionAttribute, Preference: enum.Gain, ValueType: enum.IntType, MissingTyp: enum.MV2},
		{Name: "d", Active: true, Kind: enum.DecisionAttribute, Preference: enum.Gain, ValueType: enum.IntType, MissingTyp: enum.MV2},
	}
	it, err := table.NewInformationTable(attrs, [][]drsa.Field{
		gainColumn(enum.Gain, condition...),
		gainColumn(enum.Gain, decision...),
	})
	if err != nil {
		t.Fatalf("建表失败:%v", err)
	}
	return it
}

func TestConditionSatisfied(t *testing.T) {
	it := buildTable(t, []int64{1, 2, 3}, []int64{1, 2, 3})
	c := NewCondition(0, "a1", enum.AtLeastRelation, drsa.NewIntegerField(2, enum.Gain))

	if c.SatisfiedBy(0, it) {
		t.Fatal("值1不满足>=2")
	}
	if !c.SatisfiedBy(1, it) || !c.SatisfiedBy(2, it) {
		t.Fatal("值2和3满足>=2")
	}
}

func TestConditionSymbolFollowsPreference(t *testing.T) {
	// 成本型属性上"不差于3"展示成<=3
	c := NewCondition(0, "price", enum.AtLeastRelation, drsa.NewIntegerField(3, enum.Cost))
	if got := c.String(); got != "(price <= 3)" {
		t.Fatalf("成本型条件展示不对:%s", got)
	}
	g := NewCondition(0, "score", enum.AtLeastRelation, drsa.NewIntegerField(3, enum.Gain))
	if got := g.String(); got != "(score >= 3)" {
		t.Fatalf("收益型条件展示不对:%s", got)
	}
}

func TestRuleCoversAndSupport(t *testing.T) {
	it := buildTable(t, []int64{1, 2, 3, 4}, []int64{1, 1, 2, 2})
	decisionPart := NewDecisionPart(1, "d", enum.AtLeast,
		drsa.NewSimpleDecision(1, drsa.NewIntegerField(2, enum.Gain)))
	r := NewRule([]Condition{
		NewCondition(0, "a1", enum.AtLeastRelation, drsa.NewIntegerField(3, enum.Gain)),
	}, decisionPart, enum.CertainRule, enum.AtLeast)

	if r.Covers(1, it) {
		t.Fatal("对象1不满足条件")
	}
	if !r.Covers(2, it) || !r.Covers(3, it) {
		t.Fatal("对象2和3满足条件")
	}
	if !r.IsSupportedBy(2, it) {
		t.Fatal("对象2覆盖且决策一致")
	}
	if got := r.String(); got != "(a1 >= 3) => (d >= 2)" {
		t.Fatalf("规则文本不对:%s", got)
	}
}

func TestComputeCharacteristics(t *testing.T) {
	it := buildTable(t, []int64{1, 2, 3, 4}, []int64{1, 1, 2, 2})
	decisionPart := NewDecisionPart(1, "d", enum.AtLeast,
		drsa.NewSimpleDecision(1, drsa.NewIntegerField(2, enum.Gain)))
	r := NewRule([]Condition{
		NewCondition(0, "a1", enum.AtLeastRelation, drsa.NewIntegerField(2, enum.Gain)),
	}, decisionPart, enum.CertainRule, enum.AtLeast)

	rc := ComputeCharacteristics(r, it)
	// 覆盖{1,2,3},正对象{2,3},support=2
	if rc.Support != 2 {
		t.Fatalf("support应为2,实际%d", rc.Support)
	}
	if rc.Strength != 0.5 {
		t.Fatalf("strength应为2/4,实际%v", rc.Strength)
	}
	if rc.CoverageFactor != 1.0 {
		t.Fatalf("coverage-factor应为2/2,实际%v", rc.CoverageFactor)
	}
	if rc.Confidence != 2.0/3.0 {
		t.Fatalf("confidence应为2/3,实际%v", rc.Confidence)
	}
	// 覆盖了1个负对象,负对象总共2个
	if rc.Epsilon != 0.5 {
		t.Fatalf("epsilon应为1/2,实际%v", rc.Epsilon)
	}
}

func TestSerializeWithCharacteristics(t *testing.T) {
	decisionPart := NewDecisionPart(1, "d", enum.AtLeast,
		drsa.NewSimpleDecision(1, drsa.NewIntegerField(2, enum.Gain)))
	r := NewRule([]Condition{
		NewCondition(0, "a1", enum.AtLeastRelation, drsa.NewIntegerField(3, enum.Gain)),
	}, decisionPart, enum.CertainRule, enum.AtLeast)

	rs := NewRuleSetWithCharacteristics(NewRuleSet([]*Rule{r}), nil)
	rs.characteristics[0] = &RuleCharacteristics{
		Support:        10,
		Strength:       0.2,
		CoverageFactor: 0.3,
		Confidence:     math.NaN(),
		Epsilon:        0.1,
	}

	want := "(a1 >= 3) => (d >= 2) [support=10, strength=0.2, coverage-factor=0.3, confidence=?, epsilon=0.1]\n"
	if got := rs.Serialize(); got != want {
		t.Fatalf("序列化文本不对:\n%q\n%q", got, want)
	}
}

func TestJoinKeepsOrder(t *testing.T) {
	mk := func(threshold int64, semantics string) *Rule {
		relation := enum.AtLeastRelation
		if semantics == enum.AtMost {
			relation = enum.AtMostRelation
		}
		return NewRule([]Condition{
			NewCondition(0, "a1", relation, drsa.NewIntegerField(threshold, enum.Gain)),
		}, NewDecisionPart(1, "d", semantics,
			drsa.NewSimpleDecision(1, drsa.NewIntegerField(threshold, enum.Gain))),
			enum.CertainRule, semantics)
	}
	up := NewRuleSet([]*Rule{mk(3, enum.AtLeast), mk(2, enum.AtLeast)})
	down := NewRuleSet([]*Rule{mk(1, enum.AtMost), mk(2, enum.AtMost)})

	joined := Join(up, down)
	if joined.Size() != 4 {
		t.Fatalf("拼接后应有4条,实际%d", joined.Size())
	}
	// 原顺序不变,按语义切回去还原两个输入
	var upBack, downBack []*Rule
	for _, r := range joined.Rules() {
		if r.Semantics() == enum.AtLeast {
			upBack = append(upBack, r)
		} else {
			downBack = append(downBack, r)
		}
	}
	for i, r := range upBack {
		if r != up.Rule(i) {
			t.Fatal("向上规则顺序被打乱")
		}
	}
	for i, r := range downBack {
		if r != down.Rule(i) {
			t.Fatal("向下规则顺序被打乱")
		}
	}
}

func TestRuleConditionsCoverage(t *testing.T) {
	it := buildTable(t, []int64{1, 2, 3, 4}, []int64{1, 1, 2, 2})
	positive := bit.New(2, 3)
	rc := NewRuleConditions(it, positive, nil, 2)

	if rc.Covered().Size() != 4 {
		t.Fatal("没有条件时应覆盖全表")
	}
	if err := rc.AddCondition(NewCondition(0, "a1", enum.AtLeastRelation, drsa.NewIntegerField(2, enum.Gain))); err != nil {
		t.Fatalf("加条件失败:%v", err)
	}
	if rc.Covered().Size() != 3 {
		t.Fatal("加条件后覆盖应收缩到3")
	}
	if rc.CoveredNegativeCount() != 1 || rc.CoveredPositiveCount() != 2 {
		t.Fatal("覆盖正负计数不对")
	}

	// 同属性不允许第二个条件
	err := rc.AddCondition(NewCondition(0, "a1", enum.AtLeastRelation, drsa.NewIntegerField(3, enum.Gain)))
	if err != utils.ErrAttributeAlreadyUsed {
		t.Fatalf("重复属性应报错,实际%v", err)
	}
	if rc.Covered().Size() != 3 {
		t.Fatal("被拒绝的条件不应改动覆盖集")
	}

	if err := rc.RemoveCondition(0); err != nil {
		t.Fatalf("删条件失败:%v", err)
	}
	if rc.Covered().Size() != 4 {
		t.Fatal("删条件后覆盖应重算回全表")
	}
	// 删掉后属性解除占用,可以重新加
	if err := rc.AddCondition(NewCondition(0, "a1", enum.AtLeastRelation, drsa.NewIntegerField(3, enum.Gain))); err != nil {
		t.Fatalf("重新加条件失败:%v", err)
	}
	if rc.Covered().Size() != 2 {
		t.Fatal("重新加条件后覆盖应为2")
	}
	if err := rc.RemoveCondition(5); err == nil {
		t.Fatal("越界删除应报错")
	}
}

func TestFilterByExpression(t *testing.T) {
	it := buildTable(t, []int64{1, 2, 3, 4}, []int64{1, 1, 2, 2})
	decisionPart := NewDecisionPart(1, "d", enum.AtLeast,
		drsa.NewSimpleDecision(1, drsa.NewIntegerField(2, enum.Gain)))
	loose := NewRule([]Condition{
		NewCondition(0, "a1", enum.AtLeastRelation, drsa.NewIntegerField(2, enum.Gain)),
	}, decisionPart, enum.CertainRule, enum.AtLeast)
	tight := NewRule([]Condition{
		NewCondition(0, "a1", enum.AtLeastRelation, drsa.NewIntegerField(3, enum.Gain)),
	}, decisionPart, enum.CertainRule, enum.AtLeast)

	rs := NewRuleSetWithCharacteristics(NewRuleSet([]*Rule{loose, tight}), it)
	filtered, err := FilterByExpression(rs, "epsilon == 0 && support >= 2")
	if err != nil {
		t.Fatalf("筛选失败:%v", err)
	}
	if filtered.Size() != 1 || filtered.Rule(0) != tight {
		t.Fatal("只有零epsilon的规则应通过筛选")
	}

	if _, err := FilterByExpression(rs, "support >="); err == nil {
		t.Fatal("非法表达式应报错")
	}
}
