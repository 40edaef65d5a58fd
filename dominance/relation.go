package dominance

import (
	"drsa-shenglin/rock-share/global/model/drsa"
	"drsa-shenglin/table"
)

// Dominates y是否支配x：y在每个有效条件属性上都不差于x。
// 判定从y侧发问，缺失值语义按属性逐个生效
func Dominates(t *table.InformationTable, y, x int) bool {
	for _, attrIdx := range t.ActiveConditionAttributeIndices() {
		if t.Field(y, attrIdx).IsAtLeastAsGoodAs(t.Field(x, attrIdx)) != drsa.TruthTrue {
			return false
		}
	}
	return true
}

// IsDominatedBy 反转支配关系：x在每个有效条件属性上都不好于y。
// 与Dominates(y,x)在无缺失值时一致，判定方向从x侧发问，
// 所以带缺失值时两者可以给出不同的锥
func IsDominatedBy(t *table.InformationTable, x, y int) bool {
	for _, attrIdx := range t.ActiveConditionAttributeIndices() {
		if t.Field(x, attrIdx).IsAtMostAsGoodAs(t.Field(y, attrIdx)) != drsa.TruthTrue {
			return false
		}
	}
	return true
}
