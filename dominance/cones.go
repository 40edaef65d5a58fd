package dominance

import (
	"github.com/yourbasic/bit"

	"drsa-shenglin/rock-share/global/model/drsa"
	"drsa-shenglin/table"
	"drsa-shenglin/utils"
)

/*
每个对象的四个支配锥及锥内的决策分布：
正锥          支配该对象的对象集合，{y : y D x}
负锥          被该对象支配的对象集合，{y : x D y}
反转正锥      按反转关系该对象被谁支配，{y : x D^-1 y}
反转负锥      按反转关系谁被该对象支配，{y : y D^-1 x}
无缺失值时正锥与反转正锥一致；mv1.5/mv2会让它们分开。
一次性在构造时算好并缓存，基线就是O(n²·a)的逐对比较
*/
type ConeDistributions struct {
	positive    []*drsa.DecisionDistribution
	negative    []*drsa.DecisionDistribution
	positiveInv []*drsa.DecisionDistribution
	negativeInv []*drsa.DecisionDistribution

	positiveSet    []*bit.Set
	negativeSet    []*bit.Set
	positiveInvSet []*bit.Set
	negativeInvSet []*bit.Set

	objectNum int
}

// NewConeDistributions 逐对计算全部支配锥。
// 表中没有有效决策属性时快速失败
func NewConeDistributions(t *table.InformationTable) (*ConeDistributions, error) {
	if t == nil {
		return nil, utils.ErrEmptyPointer
	}
	decisions := t.Decisions(true)
	if decisions == nil {
		return nil, utils.ErrNoDecisionAttribute
	}

	n := t.NumberOfObjects()
	c := &ConeDistributions{
		positive:       make([]*drsa.DecisionDistribution, n),
		negative:       make([]*drsa.DecisionDistribution, n),
		positiveInv:    make([]*drsa.DecisionDistribution, n),
		negativeInv:    make([]*drsa.DecisionDistribution, n),
		positiveSet:    make([]*bit.Set, n),
		negativeSet:    make([]*bit.Set, n),
		positiveInvSet: make([]*bit.Set, n),
		negativeInvSet: make([]*bit.Set, n),
		objectNum:      n,
	}
	for i := 0; i < n; i++ {
		c.positive[i] = drsa.NewDecisionDistribution()
		c.negative[i] = drsa.NewDecisionDistribution()
		c.positiveInv[i] = drsa.NewDecisionDistribution()
		c.negativeInv[i] = drsa.NewDecisionDistribution()
		c.positiveSet[i] = bit.New()
		c.negativeSet[i] = bit.New()
		c.positiveInvSet[i] = bit.New()
		c.negativeInvSet[i] = bit.New()
	}

	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			// y支配x：y进x的正锥，x进y的负锥
			if Dominates(t, y, x) {
				c.positive[x].IncreaseCount(decisions[y])
				c.positiveSet[x].Add(y)
				c.negative[y].IncreaseCount(decisions[x])
				c.negativeSet[y].Add(x)
			}
			// 反转关系下x被y支配：y进x的反转正锥，x进y的反转负锥
			if IsDominatedBy(t, x, y) {
				c.positiveInv[x].IncreaseCount(decisions[y])
				c.positiveInvSet[x].Add(y)
				c.negativeInv[y].IncreaseCount(decisions[x])
				c.negativeInvSet[y].Add(x)
			}
		}
	}
	return c, nil
}

func (c *ConeDistributions) NumberOfObjects() int { return c.objectNum }

func (c *ConeDistributions) PositiveConeDistribution(objectIndex int) *drsa.DecisionDistribution {
	return c.positive[objectIndex]
}

func (c *ConeDistributions) NegativeConeDistribution(objectIndex int) *drsa.DecisionDistribution {
	return c.negative[objectIndex]
}

func (c *ConeDistributions) PositiveInvConeDistribution(objectIndex int) *drsa.DecisionDistribution {
	return c.positiveInv[objectIndex]
}

func (c *ConeDistributions) NegativeInvConeDistribution(objectIndex int) *drsa.DecisionDistribution {
	return c.negativeInv[objectIndex]
}

func (c *ConeDistributions) PositiveCone(objectIndex int) *bit.Set {
	return c.positiveSet[objectIndex]
}

func (c *ConeDistributions) NegativeCone(objectIndex int) *bit.Set {
	return c.negativeSet[objectIndex]
}

func (c *ConeDistributions) PositiveInvCone(objectIndex int) *bit.Set {
	return c.positiveInvSet[objectIndex]
}

func (c *ConeDistributions) NegativeInvCone(objectIndex int) *bit.Set {
	return c.negativeInvSet[objectIndex]
}
