package dominance

import (
	"testing"

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

// monotoneTable 5个对象,条件和决策同步递增,数据完全一致
func monotoneTable(t *testing.T) *table.InformationTable {
	t.Helper()
	attrs := []*drsa.Attribute{
		{Name: "a1", Active: true, Kind: enum.ConditionAttribute, Preference: enum.Gain, ValueType: enum.IntType, MissingTyp: enum.MV2},
		{Name: "d", Active: true, Kind: enum.DecisionAttribute, Preference: enum.Gain, ValueType: enum.IntType, MissingTyp: enum.MV2},
	}
	columns := [][]drsa.Field{
		gainColumn(enum.Gain, 1, 2, 3, 4, 5),
		gainColumn(enum.Gain, 1, 2, 3, 4, 5),
	}
	it, err := table.NewInformationTable(attrs, columns)
	if err != nil {
		t.Fatalf("建表失败:%v", err)
	}
	return it
}

func TestDominatesMonotone(t *testing.T) {
	it := monotoneTable(t)
	for x := 0; x < 5; x++ {
		if !Dominates(it, x, x) {
			t.Fatalf("对象%d应当支配自己", x)
		}
		for y := 0; y < 5; y++ {
			want := y >= x
			if Dominates(it, y, x) != want {
				t.Fatalf("Dominates(%d,%d)应为%v", y, x, want)
			}
			if IsDominatedBy(it, x, y) != want {
				t.Fatalf("IsDominatedBy(%d,%d)应为%v", x, y, want)
			}
		}
	}
}

func TestConesMonotone(t *testing.T) {
	it := monotoneTable(t)
	cones, err := NewConeDistributions(it)
	if err != nil {
		t.Fatalf("建锥失败:%v", err)
	}

	// 单调数据里正锥就是下标>=x的对象,负锥是下标<=x的
	for x := 0; x < 5; x++ {
		pos := cones.PositiveCone(x)
		neg := cones.NegativeCone(x)
		for y := 0; y < 5; y++ {
			if pos.Contains(y) != (y >= x) {
				t.Fatalf("对象%d的正锥成员%d不对", x, y)
			}
			if neg.Contains(y) != (y <= x) {
				t.Fatalf("对象%d的负锥成员%d不对", x, y)
			}
		}
		if !pos.Contains(x) || !neg.Contains(x) {
			t.Fatalf("对象%d应在自己的锥里", x)
		}
		// 单条件属性下反转锥与普通锥一致
		if cones.PositiveInvCone(x).Size() != pos.Size() {
			t.Fatalf("对象%d的反转正锥大小不对", x)
		}
		if cones.PositiveConeDistribution(x).Total() != pos.Size() {
			t.Fatalf("对象%d的锥分布总数与锥大小不符", x)
		}
	}
}

func TestConesNoDecisionAttribute(t *testing.T) {
	attrs := []*drsa.Attribute{
		{Name: "a1", Active: true, Kind: enum.ConditionAttribute, Preference: enum.Gain, ValueType: enum.IntType, MissingTyp: enum.MV2},
	}
	columns := [][]drsa.Field{gainColumn(enum.Gain, 1, 2)}
	it, err := table.NewInformationTable(attrs, columns)
	if err != nil {
		t.Fatalf("建表失败:%v", err)
	}
	if _, err := NewConeDistributions(it); err != utils.ErrNoDecisionAttribute {
		t.Fatalf("没有决策属性应当快速失败,实际%v", err)
	}
}

func TestDominanceTransitiveWithoutMissingValues(t *testing.T) {
	// 两个条件属性,没有缺失值,支配关系必须传递
	attrs := []*drsa.Attribute{
		{Name: "a1", Active: true, Kind: enum.ConditionAttribute, Preference: enum.Gain, ValueType: enum.IntType, MissingTyp: enum.MV2},
		{Name: "a2", Active: true, Kind: enum.ConditionAttribute, Preference: enum.Cost, ValueType: enum.IntType, MissingTyp: enum.MV2},
		{Name: "d", Active: true, Kind: enum.DecisionAttribute, Preference: enum.Gain, ValueType: enum.IntType, MissingTyp: enum.MV2},
	}
	columns := [][]drsa.Field{
		gainColumn(enum.Gain, 1, 2, 2, 3, 1),
		gainColumn(enum.Cost, 2, 3, 1, 1, 2),
		gainColumn(enum.Gain, 1, 1, 2, 3, 2),
	}
	it, err := table.NewInformationTable(attrs, columns)
	if err != nil {
		t.Fatalf("建表失败:%v", err)
	}
	n := it.NumberOfObjects()
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			if !Dominates(it, x, y) {
				continue
			}
			for z := 0; z < n; z++ {
				if Dominates(it, y, z) && !Dominates(it, x, z) {
					t.Fatalf("传递性破坏:%d支配%d且%d支配%d,但%d不支配%d", x, y, y, z, x, z)
				}
			}
		}
	}
}

func TestConesWithMissingValueMV15(t *testing.T) {
	attrs := []*drsa.Attribute{
		{Name: "a1", Active: true, Kind: enum.ConditionAttribute, Preference: enum.Gain, ValueType: enum.IntType, MissingTyp: enum.MV15},
		{Name: "d", Active: true, Kind: enum.DecisionAttribute, Preference: enum.Gain, ValueType: enum.IntType, MissingTyp: enum.MV2},
	}
	// 对象1的条件值缺失,mv1.5和谁比都打平
	columns := [][]drsa.Field{
		{drsa.NewIntegerField(1, enum.Gain), drsa.NewUnknownFieldMV15(), drsa.NewIntegerField(3, enum.Gain)},
		gainColumn(enum.Gain, 1, 2, 3),
	}
	it, err := table.NewInformationTable(attrs, columns)
	if err != nil {
		t.Fatalf("建表失败:%v", err)
	}
	for y := 0; y < 3; y++ {
		if !Dominates(it, y, 1) {
			t.Fatalf("对象%d应当支配缺失值对象1", y)
		}
		if !Dominates(it, 1, y) {
			t.Fatalf("缺失值对象1应当支配对象%d", y)
		}
	}
}

func TestConesWithMissingValueMV2(t *testing.T) {
	attrs := []*drsa.Attribute{
		{Name: "a1", Active: true, Kind: enum.ConditionAttribute, Preference: enum.Gain, ValueType: enum.IntType, MissingTyp: enum.MV2},
		{Name: "d", Active: true, Kind: enum.DecisionAttribute, Preference: enum.Gain, ValueType: enum.IntType, MissingTyp: enum.MV2},
	}
	// 对象1的条件值缺失,mv2和已知值互不可比
	columns := [][]drsa.Field{
		{drsa.NewIntegerField(1, enum.Gain), drsa.NewUnknownFieldMV2(), drsa.NewIntegerField(3, enum.Gain)},
		gainColumn(enum.Gain, 1, 2, 3),
	}
	it, err := table.NewInformationTable(attrs, columns)
	if err != nil {
		t.Fatalf("建表失败:%v", err)
	}
	for _, y := range []int{0, 2} {
		if Dominates(it, y, 1) {
			t.Fatalf("对象%d不应支配mv2缺失值对象1", y)
		}
		if Dominates(it, 1, y) {
			t.Fatalf("mv2缺失值对象1不应支配对象%d", y)
		}
	}
	if !Dominates(it, 1, 1) {
		t.Fatal("mv2缺失值对象仍应支配自己")
	}

	cones, err := NewConeDistributions(it)
	if err != nil {
		t.Fatalf("建锥失败:%v", err)
	}
	if cones.PositiveCone(1).Size() != 1 || !cones.PositiveCone(1).Contains(1) {
		t.Fatal("mv2缺失值对象的正锥应只有自己")
	}
	if cones.NegativeCone(1).Size() != 1 || !cones.NegativeCone(1).Contains(1) {
		t.Fatal("mv2缺失值对象的负锥应只有自己")
	}
	// 其他对象的锥也不收mv2缺失值对象
	if cones.PositiveCone(0).Contains(1) || cones.NegativeCone(2).Contains(1) {
		t.Fatal("已知值对象的锥不应包含mv2缺失值对象")
	}
}
