package approximation

import (
	"github.com/yourbasic/bit"

	"drsa-shenglin/dominance"
	"drsa-shenglin/rock-share/base/logger"
	"drsa-shenglin/rock-share/global/enum"
	"drsa-shenglin/utils"
)

// Unions 一张表的全部向上/向下并集及其近似。
// 决策类按从差到好排序后，向上并集取第2差到最好的界限，
// 向下并集取最差到第2好的界限，两组一一互补
type Unions struct {
	table      *dominance.TableWithDistributions
	calculator RoughSetCalculator

	upward   []*Union // AT_LEAST，界限决策升序
	downward []*Union // AT_MOST，界限决策升序
}

func NewUnions(t *dominance.TableWithDistributions, calculator RoughSetCalculator) (*Unions, error) {
	if t == nil || calculator == nil {
		return nil, utils.ErrEmptyPointer
	}
	decisions, err := t.UniqueDecisionsAscending()
	if err != nil {
		return nil, err
	}

	us := &Unions{table: t, calculator: calculator}
	for i := 1; i < len(decisions); i++ {
		up, err := NewUnion(enum.AtLeast, decisions[i], t)
		if err != nil {
			return nil, err
		}
		down, err := NewUnion(enum.AtMost, decisions[i-1], t)
		if err != nil {
			return nil, err
		}
		// >=decisions[i] 与 <=decisions[i-1] 互补
		up.complementary = down
		down.complementary = up
		us.upward = append(us.upward, up)
		us.downward = append(us.downward, down)
	}
	us.calculateApproximations()
	logger.Debugf("并集构建完成, 决策类数:%d, 向上并集:%d, 向下并集:%d",
		len(decisions), len(us.upward), len(us.downward))
	return us, nil
}

// calculateApproximations 先算所有下近似，
// 上近似 = 全集去掉互补并集的下近似，边界 = 上近似\下近似
func (us *Unions) calculateApproximations() {
	n := us.table.NumberOfObjects()
	all := bit.New().AddRange(0, n)

	lowers := make(map[*Union]*bit.Set)
	for _, u := range append(append([]*Union{}, us.upward...), us.downward...) {
		// 下近似永远不越过并集成员
		lowers[u] = us.calculator.LowerApproximation(u).And(u.Positive())
	}
	for u, lower := range lowers {
		upper := all.AndNot(lowers[u.complementary])
		u.setApproximations(lower, upper)
	}
}

// UpwardUnions 向上并集，界限决策从差到好
func (us *Unions) UpwardUnions() []*Union { return us.upward }

// DownwardUnions 向下并集，界限决策从差到好
func (us *Unions) DownwardUnions() []*Union { return us.downward }

func (us *Unions) Table() *dominance.TableWithDistributions { return us.table }

// UnionsOfType 按方向取并集组
func (us *Unions) UnionsOfType(unionType string) []*Union {
	if unionType == enum.AtLeast {
		return us.upward
	}
	return us.downward
}

// MostSpecificFirst 归纳时的遍历顺序：向上并集从最好界限开始，
// 向下并集从最差界限开始，保证先归纳最特殊的并集
func (us *Unions) MostSpecificFirst(unionType string) []*Union {
	src := us.UnionsOfType(unionType)
	out := make([]*Union, len(src))
	if unionType == enum.AtLeast {
		for i, u := range src {
			out[len(src)-1-i] = u
		}
		return out
	}
	copy(out, src)
	return out
}
