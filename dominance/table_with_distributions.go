package dominance

import (
	"drsa-shenglin/rock-share/base/logger"
	"drsa-shenglin/rock-share/global/model/drsa"
	"drsa-shenglin/table"
	"drsa-shenglin/utils"
)

// TableWithDistributions 信息表加上一次性算好的决策分布和支配锥。
// 近似计算和一致性度量都只读这里的缓存
type TableWithDistributions struct {
	*table.InformationTable

	decisionDistribution *drsa.DecisionDistribution
	cones                *ConeDistributions
}

func NewTableWithDistributions(t *table.InformationTable) (*TableWithDistributions, error) {
	if t == nil {
		return nil, utils.ErrEmptyPointer
	}
	decisions := t.Decisions(true)
	if decisions == nil {
		return nil, utils.ErrNoDecisionAttribute
	}

	dd := drsa.NewDecisionDistribution()
	for _, d := range decisions {
		dd.IncreaseCount(d)
	}

	cones, err := NewConeDistributions(t)
	if err != nil {
		return nil, err
	}
	logger.Debugf("支配锥计算完成, 对象数:%d, 决策类数:%d", t.NumberOfObjects(), dd.NumberOfDecisions())

	return &TableWithDistributions{
		InformationTable:     t,
		decisionDistribution: dd,
		cones:                cones,
	}, nil
}

// DecisionDistribution 全表的决策分布，计数之和等于对象数
func (t *TableWithDistributions) DecisionDistribution() *drsa.DecisionDistribution {
	return t.decisionDistribution
}

func (t *TableWithDistributions) Cones() *ConeDistributions {
	return t.cones
}
