package drsa

import (
	"fmt"
	"strconv"

	"drsa-shenglin/rock-share/global/enum"
)

// Field 带偏好方向的有序取值。不同具体类型或不同偏好之间不可比
type Field interface {
	Preference() string
	// IsAtLeastAsGoodAs 按偏好方向判断自身是否不差于other
	IsAtLeastAsGoodAs(other Field) Truth
	// IsAtMostAsGoodAs 按偏好方向判断自身是否不好于other
	IsAtMostAsGoodAs(other Field) Truth
	IsEqualTo(other Field) Truth
	IsUnknown() bool
	String() string
}

type IntegerField struct {
	Value int64
	Pref  string
}

type RealField struct {
	Value float64
	Pref  string
}

// EnumerationField 枚举值，按Index排序，Label只用于展示
type EnumerationField struct {
	Index int
	Label string
	Pref  string
}

// PairField 成对取值，两个分量分别比较后按下确界合并
type PairField struct {
	First  Field
	Second Field
}

func NewIntegerField(value int64, pref string) *IntegerField {
	return &IntegerField{Value: value, Pref: pref}
}

func NewRealField(value float64, pref string) *RealField {
	return &RealField{Value: value, Pref: pref}
}

func NewEnumerationField(index int, label string, pref string) *EnumerationField {
	return &EnumerationField{Index: index, Label: label, Pref: pref}
}

// orderedCompare 已知值按偏好方向转换原始排序：
// cmp是原始值比较结果，返回"不差于"的三值判断
func orderedCompare(cmp int, pref string) Truth {
	switch pref {
	case enum.Gain:
		if cmp >= 0 {
			return TruthTrue
		}
		return TruthFalse
	case enum.Cost:
		if cmp <= 0 {
			return TruthTrue
		}
		return TruthFalse
	default:
		// 无偏好只承认相等
		if cmp == 0 {
			return TruthTrue
		}
		return TruthFalse
	}
}

// unknownOnRight 已知值与缺失值比较时由缺失值语义给出结果
func unknownOnRight(other Field) (Truth, bool) {
	switch other.(type) {
	case *UnknownFieldMV15:
		return TruthTrue, true
	case *UnknownFieldMV2:
		return TruthUncomparable, true
	}
	return TruthFalse, false
}

func (f *IntegerField) Preference() string { return f.Pref }
func (f *IntegerField) IsUnknown() bool    { return false }

func (f *IntegerField) String() string {
	return strconv.FormatInt(f.Value, 10)
}

func (f *IntegerField) compare(other Field) (int, bool) {
	o, ok := other.(*IntegerField)
	if !ok || o.Pref != f.Pref {
		return 0, false
	}
	if f.Value < o.Value {
		return -1, true
	} else if f.Value > o.Value {
		return 1, true
	}
	return 0, true
}

func (f *IntegerField) IsAtLeastAsGoodAs(other Field) Truth {
	if r, ok := unknownOnRight(other); ok {
		return r
	}
	cmp, ok := f.compare(other)
	if !ok {
		return TruthUncomparable
	}
	return orderedCompare(cmp, f.Pref)
}

func (f *IntegerField) IsAtMostAsGoodAs(other Field) Truth {
	if r, ok := unknownOnRight(other); ok {
		return r
	}
	cmp, ok := f.compare(other)
	if !ok {
		return TruthUncomparable
	}
	return orderedCompare(-cmp, f.Pref)
}

func (f *IntegerField) IsEqualTo(other Field) Truth {
	if r, ok := unknownOnRight(other); ok {
		return r
	}
	cmp, ok := f.compare(other)
	if !ok {
		return TruthUncomparable
	}
	if cmp == 0 {
		return TruthTrue
	}
	return TruthFalse
}

func (f *RealField) Preference() string { return f.Pref }
func (f *RealField) IsUnknown() bool    { return false }

func (f *RealField) String() string {
	return strconv.FormatFloat(f.Value, 'f', -1, 64)
}

func (f *RealField) compare(other Field) (int, bool) {
	o, ok := other.(*RealField)
	if !ok || o.Pref != f.Pref {
		return 0, false
	}
	if f.Value < o.Value {
		return -1, true
	} else if f.Value > o.Value {
		return 1, true
	}
	return 0, true
}

func (f *RealField) IsAtLeastAsGoodAs(other Field) Truth {
	if r, ok := unknownOnRight(other); ok {
		return r
	}
	cmp, ok := f.compare(other)
	if !ok {
		return TruthUncomparable
	}
	return orderedCompare(cmp, f.Pref)
}

func (f *RealField) IsAtMostAsGoodAs(other Field) Truth {
	if r, ok := unknownOnRight(other); ok {
		return r
	}
	cmp, ok := f.compare(other)
	if !ok {
		return TruthUncomparable
	}
	return orderedCompare(-cmp, f.Pref)
}

func (f *RealField) IsEqualTo(other Field) Truth {
	if r, ok := unknownOnRight(other); ok {
		return r
	}
	cmp, ok := f.compare(other)
	if !ok {
		return TruthUncomparable
	}
	if cmp == 0 {
		return TruthTrue
	}
	return TruthFalse
}

func (f *EnumerationField) Preference() string { return f.Pref }
func (f *EnumerationField) IsUnknown() bool    { return false }

func (f *EnumerationField) String() string {
	if f.Label != "" {
		return f.Label
	}
	return strconv.Itoa(f.Index)
}

func (f *EnumerationField) compare(other Field) (int, bool) {
	o, ok := other.(*EnumerationField)
	if !ok || o.Pref != f.Pref {
		return 0, false
	}
	if f.Index < o.Index {
		return -1, true
	} else if f.Index > o.Index {
		return 1, true
	}
	return 0, true
}

func (f *EnumerationField) IsAtLeastAsGoodAs(other Field) Truth {
	if r, ok := unknownOnRight(other); ok {
		return r
	}
	cmp, ok := f.compare(other)
	if !ok {
		return TruthUncomparable
	}
	return orderedCompare(cmp, f.Pref)
}

func (f *EnumerationField) IsAtMostAsGoodAs(other Field) Truth {
	if r, ok := unknownOnRight(other); ok {
		return r
	}
	cmp, ok := f.compare(other)
	if !ok {
		return TruthUncomparable
	}
	return orderedCompare(-cmp, f.Pref)
}

func (f *EnumerationField) IsEqualTo(other Field) Truth {
	if r, ok := unknownOnRight(other); ok {
		return r
	}
	cmp, ok := f.compare(other)
	if !ok {
		return TruthUncomparable
	}
	if cmp == 0 {
		return TruthTrue
	}
	return TruthFalse
}

func (f *PairField) Preference() string {
	if f.First != nil {
		return f.First.Preference()
	}
	return enum.None
}

func (f *PairField) IsUnknown() bool { return false }

func (f *PairField) String() string {
	return fmt.Sprintf("(%v,%v)", f.First, f.Second)
}

func (f *PairField) IsAtLeastAsGoodAs(other Field) Truth {
	if r, ok := unknownOnRight(other); ok {
		return r
	}
	o, ok := other.(*PairField)
	if !ok {
		return TruthUncomparable
	}
	return CombineTruth([]Truth{
		f.First.IsAtLeastAsGoodAs(o.First),
		f.Second.IsAtLeastAsGoodAs(o.Second),
	})
}

func (f *PairField) IsAtMostAsGoodAs(other Field) Truth {
	if r, ok := unknownOnRight(other); ok {
		return r
	}
	o, ok := other.(*PairField)
	if !ok {
		return TruthUncomparable
	}
	return CombineTruth([]Truth{
		f.First.IsAtMostAsGoodAs(o.First),
		f.Second.IsAtMostAsGoodAs(o.Second),
	})
}

func (f *PairField) IsEqualTo(other Field) Truth {
	if r, ok := unknownOnRight(other); ok {
		return r
	}
	o, ok := other.(*PairField)
	if !ok {
		return TruthUncomparable
	}
	return CombineTruth([]Truth{
		f.First.IsEqualTo(o.First),
		f.Second.IsEqualTo(o.Second),
	})
}
