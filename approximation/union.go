package approximation

import (
	"fmt"

	"github.com/yourbasic/bit"

	"drsa-shenglin/dominance"
	"drsa-shenglin/rock-share/global/enum"
	"drsa-shenglin/rock-share/global/model/drsa"
	"drsa-shenglin/utils"
)

// Union 有序决策类的向上/向下并集。
// positive是并集成员，neutral是决策与界限决策不可比的对象，
// 其余对象构成补集。近似结果由Unions计算后回填
type Union struct {
	unionType        string // enum.AtLeast / enum.AtMost
	limitingDecision *drsa.Decision
	table            *dominance.TableWithDistributions

	positive *bit.Set
	neutral  *bit.Set
	// complementarySize 既不属于并集也不中立的对象个数
	complementarySize int

	lower    *bit.Set
	upper    *bit.Set
	boundary *bit.Set

	// complementary 互补并集，由Unions构造时链接，用于上近似计算
	complementary *Union
}

func NewUnion(unionType string, limitingDecision *drsa.Decision, t *dominance.TableWithDistributions) (*Union, error) {
	if limitingDecision == nil || t == nil {
		return nil, utils.ErrEmptyPointer
	}
	if unionType != enum.AtLeast && unionType != enum.AtMost {
		return nil, utils.ErrUnknownUnionType
	}
	u := &Union{
		unionType:        unionType,
		limitingDecision: limitingDecision,
		table:            t,
		positive:         bit.New(),
		neutral:          bit.New(),
	}
	decisions := t.Decisions(true)
	for i, d := range decisions {
		switch u.classify(d) {
		case drsa.TruthTrue:
			u.positive.Add(i)
		case drsa.TruthUncomparable:
			u.neutral.Add(i)
		default:
			u.complementarySize++
		}
	}
	return u, nil
}

// classify 决策相对界限决策的三值分类
func (u *Union) classify(d *drsa.Decision) drsa.Truth {
	if d == nil {
		return drsa.TruthUncomparable
	}
	if u.unionType == enum.AtLeast {
		return d.IsAtLeastAsGoodAs(u.limitingDecision)
	}
	return d.IsAtMostAsGoodAs(u.limitingDecision)
}

func (u *Union) UnionType() string                         { return u.unionType }
func (u *Union) LimitingDecision() *drsa.Decision          { return u.limitingDecision }
func (u *Union) Table() *dominance.TableWithDistributions  { return u.table }
func (u *Union) Complementary() *Union                     { return u.complementary }

func (u *Union) IsDecisionPositive(d *drsa.Decision) bool {
	return u.classify(d) == drsa.TruthTrue
}

func (u *Union) IsDecisionNegative(d *drsa.Decision) bool {
	return u.classify(d) == drsa.TruthFalse
}

func (u *Union) IsDecisionNeutral(d *drsa.Decision) bool {
	return u.classify(d) == drsa.TruthUncomparable
}

// Positive 并集成员的对象下标集
func (u *Union) Positive() *bit.Set { return u.positive }

func (u *Union) Neutral() *bit.Set { return u.neutral }

// GetComplementarySetSize 补集大小，不含中立对象
func (u *Union) GetComplementarySetSize() int { return u.complementarySize }

func (u *Union) LowerApproximation() *bit.Set { return u.lower }
func (u *Union) UpperApproximation() *bit.Set { return u.upper }
func (u *Union) Boundary() *bit.Set           { return u.boundary }

// ConsistencyConeDistribution 一致性度量用的锥内决策分布：
// 向上并集取反转正锥，向下并集取负锥
func (u *Union) ConsistencyConeDistribution(objectIndex int) *drsa.DecisionDistribution {
	if u.unionType == enum.AtLeast {
		return u.table.Cones().PositiveInvConeDistribution(objectIndex)
	}
	return u.table.Cones().NegativeConeDistribution(objectIndex)
}

// MembershipConeDistribution 粗糙隶属度用的锥内决策分布：
// 向上并集取正锥，向下并集取负锥
func (u *Union) MembershipConeDistribution(objectIndex int) *drsa.DecisionDistribution {
	if u.unionType == enum.AtLeast {
		return u.table.Cones().PositiveConeDistribution(objectIndex)
	}
	return u.table.Cones().NegativeConeDistribution(objectIndex)
}

// NegativeCountInCone 一致性锥里决策为负的对象个数
func (u *Union) NegativeCountInCone(objectIndex int) int {
	count := 0
	dd := u.ConsistencyConeDistribution(objectIndex)
	for _, d := range dd.Decisions() {
		if u.IsDecisionNegative(d) {
			count += dd.Count(d)
		}
	}
	return count
}

func (u *Union) String() string {
	if u.unionType == enum.AtLeast {
		return fmt.Sprintf(">=[%v]", u.limitingDecision)
	}
	return fmt.Sprintf("<=[%v]", u.limitingDecision)
}

func (u *Union) setApproximations(lower, upper *bit.Set) {
	u.lower = lower
	u.upper = upper
	u.boundary = upper.AndNot(lower)
}
