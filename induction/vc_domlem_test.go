package induction

import (
	"testing"

	"github.com/yourbasic/bit"

	"drsa-shenglin/rock-share/global/enum"
	"drsa-shenglin/rock-share/global/model/drsa"
	"drsa-shenglin/rule"
	"drsa-shenglin/table"
)

func gainColumn(pref string, values ...int64) []drsa.Field {
	out := make([]drsa.Field, len(values))
	for i, v := range values {
		out[i] = drsa.NewIntegerField(v, pref)
	}
	return out
}

func buildTable(t *testing.T, columnsData [][]int64, decision []int64) *table.InformationTable {
	t.Helper()
	var attrs []*drsa.Attribute
	var columns [][]drsa.Field
	for i, col := range columnsData {
		attrs = append(attrs, &drsa.Attribute{
			Name: "a" + string(rune('1'+i)), Active: true, Kind: enum.ConditionAttribute,
			Preference: enum.Gain, ValueType: enum.IntType, MissingTyp: enum.MV2,
		})
		columns = append(columns, gainColumn(enum.Gain, col...))
	}
	attrs = append(attrs, &drsa.Attribute{
		Name: "d", Active: true, Kind: enum.DecisionAttribute,
		Preference: enum.Gain, ValueType: enum.IntType, MissingTyp: enum.MV2,
	})
	columns = append(columns, gainColumn(enum.Gain, decision...))
	it, err := table.NewInformationTable(attrs, columns)
	if err != nil {
		t.Fatalf("建表失败:%v", err)
	}
	return it
}

func TestInduceCertainRulesMonotone(t *testing.T) {
	it := buildTable(t, [][]int64{{1, 2, 3, 4, 5}}, []int64{1, 1, 2, 2, 3})
	rs, err := NewCertainRuleInducerWrapper().InduceRules(it)
	if err != nil {
		t.Fatalf("归纳失败:%v", err)
	}
	if rs.Size() == 0 {
		t.Fatal("单调数据应归纳出规则")
	}

	// 每个对象都要被同语义的某条规则覆盖且决策一致
	for obj := 0; obj < it.NumberOfObjects(); obj++ {
		supported := false
		for _, r := range rs.Rules() {
			if r.IsSupportedBy(obj, it) {
				supported = true
				break
			}
		}
		if !supported {
			t.Fatalf("对象%d没有被任何规则支持", obj)
		}
	}

	// 向上规则在前且两个语义都有产出
	sawAtMost := false
	for _, r := range rs.Rules() {
		if r.Semantics() == enum.AtMost {
			sawAtMost = true
		} else if sawAtMost {
			t.Fatal("拼接顺序应当向上规则在前")
		}
	}
	if !sawAtMost {
		t.Fatal("应当有向下规则")
	}
}

func TestInducedRuleEpsilonWithinThreshold(t *testing.T) {
	// 对象1和2制造不一致
	it := buildTable(t, [][]int64{{1, 3, 2, 4, 5}}, []int64{1, 1, 2, 2, 2})
	threshold := 0.5
	rs, err := NewVariableConsistencyRuleInducerWrapper(threshold).InduceRulesWithCharacteristics(it)
	if err != nil {
		t.Fatalf("归纳失败:%v", err)
	}
	if rs.Size() == 0 {
		t.Fatal("应归纳出规则")
	}
	for i := 0; i < rs.Size(); i++ {
		rc := rs.RuleCharacteristics(i)
		if rc.Epsilon > threshold {
			t.Fatalf("规则%v的epsilon=%v越过阈值%v", rs.Rule(i), rc.Epsilon, threshold)
		}
	}
}

func TestPossibleRulesCoverUpperApproximation(t *testing.T) {
	it := buildTable(t, [][]int64{{1, 3, 2, 4}}, []int64{1, 1, 2, 2})
	rs, err := NewPossibleRuleInducerWrapper().InduceRules(it)
	if err != nil {
		t.Fatalf("归纳失败:%v", err)
	}
	for _, r := range rs.Rules() {
		if r.Type() != enum.PossibleRule {
			t.Fatal("规则类型应为possible")
		}
	}
}

func TestGrowPicksDiscriminatingAttribute(t *testing.T) {
	// 第一列是噪声,第二列完美分离,生长应选第二列
	it := buildTable(t, [][]int64{{5, 5, 5, 5}, {1, 2, 3, 4}}, []int64{1, 1, 2, 2})
	rs, err := NewCertainRuleInducerWrapper().InduceRules(it)
	if err != nil {
		t.Fatalf("归纳失败:%v", err)
	}
	for _, r := range rs.Rules() {
		for _, c := range r.Conditions() {
			if c.AttributeIndex == 0 {
				t.Fatalf("规则%v不应使用噪声属性", r)
			}
		}
	}
}

func TestCoverageCarriesAcrossUnions(t *testing.T) {
	// 对象2被>=3的规则覆盖后,更泛的>=2并集不再为它出规则
	it := buildTable(t, [][]int64{{3, 2, 5}}, []int64{1, 2, 3})
	rs, err := NewCertainRuleInducerWrapper().InduceRules(it)
	if err != nil {
		t.Fatalf("归纳失败:%v", err)
	}
	if rs.Size() != 2 {
		t.Fatalf("应只有2条规则,实际%d条:\n%s", rs.Size(), rs.Serialize())
	}
	if got := rs.Rule(0).String(); got != "(a1 >= 5) => (d >= 3)" {
		t.Fatalf("向上规则不对:%s", got)
	}
	if got := rs.Rule(1).String(); got != "(a1 <= 3) => (d <= 2)" {
		t.Fatalf("向下规则不对:%s", got)
	}
	for _, r := range rs.Rules() {
		if r.String() == "(a1 >= 5) => (d >= 2)" {
			t.Fatal("已覆盖对象不应再归纳出被支配的冗余规则")
		}
	}
}

func TestStoppingCheckerRequiresCoverage(t *testing.T) {
	it := buildTable(t, [][]int64{{1, 2, 3, 4}}, []int64{1, 1, 2, 2})
	components := NewCertainRuleInducerComponents(0)
	checker := components.StoppingChecker()

	rc := rule.NewRuleConditions(it, bit.New(2, 3), nil, 2)
	// 空条件序列覆盖全表,epsilon=1,不满足
	if checker.IsStoppingConditionSatisfied(rc) {
		t.Fatal("覆盖负对象时不应满足停机条件")
	}
	// 收紧到只覆盖正对象后满足
	rc.AddCondition(rule.NewCondition(0, "a1", enum.AtLeastRelation, drsa.NewIntegerField(3, enum.Gain)))
	if !checker.IsStoppingConditionSatisfied(rc) {
		t.Fatal("只覆盖正对象时应满足停机条件")
	}
}
