package drsa

import "drsa-shenglin/rock-share/global/enum"

// UnknownFieldMV15 mv1.5语义的缺失值：与任何取值可比且并列，
// 空满足任何阈值条件
type UnknownFieldMV15 struct{}

// UnknownFieldMV2 mv2语义的缺失值：除与另一个mv2缺失值外均不可比
type UnknownFieldMV2 struct{}

func NewUnknownFieldMV15() *UnknownFieldMV15 { return &UnknownFieldMV15{} }
func NewUnknownFieldMV2() *UnknownFieldMV2   { return &UnknownFieldMV2{} }

func (f *UnknownFieldMV15) Preference() string { return enum.None }
func (f *UnknownFieldMV15) IsUnknown() bool    { return true }
func (f *UnknownFieldMV15) String() string     { return "?" }

func (f *UnknownFieldMV15) IsAtLeastAsGoodAs(other Field) Truth { return TruthTrue }
func (f *UnknownFieldMV15) IsAtMostAsGoodAs(other Field) Truth  { return TruthTrue }
func (f *UnknownFieldMV15) IsEqualTo(other Field) Truth         { return TruthTrue }

func (f *UnknownFieldMV2) Preference() string { return enum.None }
func (f *UnknownFieldMV2) IsUnknown() bool    { return true }
func (f *UnknownFieldMV2) String() string     { return "?" }

func (f *UnknownFieldMV2) IsAtLeastAsGoodAs(other Field) Truth {
	if _, ok := other.(*UnknownFieldMV2); ok {
		return TruthTrue
	}
	return TruthUncomparable
}

func (f *UnknownFieldMV2) IsAtMostAsGoodAs(other Field) Truth {
	if _, ok := other.(*UnknownFieldMV2); ok {
		return TruthTrue
	}
	return TruthUncomparable
}

func (f *UnknownFieldMV2) IsEqualTo(other Field) Truth {
	if _, ok := other.(*UnknownFieldMV2); ok {
		return TruthTrue
	}
	return TruthUncomparable
}
