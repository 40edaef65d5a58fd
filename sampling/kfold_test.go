package sampling

import (
	"math/rand"
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

func TestSplitSizesAndCoverage(t *testing.T) {
	it := buildTable(t,
		[]int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		[]int64{1, 1, 1, 1, 1, 2, 2, 2, 2, 2})
	folds, err := SplitStratifiedIntoKFolds(it, 3, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("划分失败:%v", err)
	}
	if len(folds) != 3 {
		t.Fatalf("应有3折,实际%d", len(folds))
	}

	total := 0
	minSize, maxSize := it.NumberOfObjects(), 0
	for i, f := range folds {
		size := f.Test.NumberOfObjects()
		if size+f.Train.NumberOfObjects() != it.NumberOfObjects() {
			t.Fatalf("第%d折训练测试之和不等于全表", i)
		}
		total += size
		if size < minSize {
			minSize = size
		}
		if size > maxSize {
			maxSize = size
		}
	}
	if total != it.NumberOfObjects() {
		t.Fatalf("测试折合计%d应等于对象数%d", total, it.NumberOfObjects())
	}
	if maxSize-minSize > 1 {
		t.Fatalf("折大小最多差1,实际%d和%d", minSize, maxSize)
	}
}

func TestSplitIsStratified(t *testing.T) {
	// 两个决策类各4个,k=2时每折必然各分到2个
	it := buildTable(t,
		[]int64{1, 2, 3, 4, 5, 6, 7, 8},
		[]int64{1, 1, 1, 1, 2, 2, 2, 2})
	folds, err := SplitStratifiedIntoKFolds(it, 2, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("划分失败:%v", err)
	}
	for i, f := range folds {
		counts := map[string]int{}
		for obj := 0; obj < f.Test.NumberOfObjects(); obj++ {
			counts[f.Test.Decision(obj).Key()]++
		}
		for key, c := range counts {
			if c != 2 {
				t.Fatalf("第%d折决策%s应有2个,实际%d", i, key, c)
			}
		}
	}
}

func TestSplitReproducibleWithSeed(t *testing.T) {
	it := buildTable(t,
		[]int64{1, 2, 3, 4, 5, 6},
		[]int64{1, 1, 2, 2, 3, 3})
	first, err := SplitStratifiedIntoKFolds(it, 3, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("划分失败:%v", err)
	}
	second, err := SplitStratifiedIntoKFolds(it, 3, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("划分失败:%v", err)
	}
	for i := range first {
		a, b := first[i].Test, second[i].Test
		if a.NumberOfObjects() != b.NumberOfObjects() {
			t.Fatalf("同seed第%d折大小不同", i)
		}
		for obj := 0; obj < a.NumberOfObjects(); obj++ {
			if a.Field(obj, 0).IsEqualTo(b.Field(obj, 0)) != drsa.TruthTrue {
				t.Fatalf("同seed第%d折对象%d不同", i, obj)
			}
		}
	}
}

func TestSplitRejectsBadInput(t *testing.T) {
	it := buildTable(t, []int64{1, 2, 3}, []int64{1, 2, 3})
	rng := rand.New(rand.NewSource(1))

	if _, err := SplitStratifiedIntoKFolds(nil, 2, rng); err != utils.ErrEmptyPointer {
		t.Fatalf("空表应报错,实际%v", err)
	}
	if _, err := SplitStratifiedIntoKFolds(it, 2, nil); err != utils.ErrEmptyPointer {
		t.Fatalf("空随机源应报错,实际%v", err)
	}
	if _, err := SplitStratifiedIntoKFolds(it, 1, rng); err != utils.ErrFoldNumber {
		t.Fatalf("折数1应报错,实际%v", err)
	}
	if _, err := SplitStratifiedIntoKFolds(it, 4, rng); err != utils.ErrFoldNumber {
		t.Fatalf("折数超过对象数应报错,实际%v", err)
	}
}
