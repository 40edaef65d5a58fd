package po

import (
	"gorm.io/gorm"
)

// Rule 规则落库的持久化模型
type Rule struct {
	Id             int64   `gorm:"column:id;primaryKey;autoIncrement"`
	TaskId         int64   `gorm:"column:task_id;index"`
	RuleText       string  `gorm:"column:rule_text"`
	RuleType       int     `gorm:"column:rule_type"`
	Semantics      string  `gorm:"column:semantics"`
	Support        int     `gorm:"column:support"`
	Strength       float64 `gorm:"column:strength"`
	CoverageFactor float64 `gorm:"column:coverage_factor"`
	Confidence     float64 `gorm:"column:confidence"`
	Epsilon        float64 `gorm:"column:epsilon"`
}

func (Rule) TableName() string { return "drsa_rule" }

func CreateRule(rule *Rule, db *gorm.DB) error {
	return db.Create(rule).Error
}

func CreateRules(rules *[]Rule, db *gorm.DB) error {
	return db.CreateInBatches(rules, 200).Error
}

func GetRulesByTask(taskId int64, db *gorm.DB) ([]Rule, error) {
	var out []Rule
	err := db.Where("task_id = ?", taskId).Order("id").Find(&out).Error
	return out, err
}

func DeleteRulesByTask(taskId int64, db *gorm.DB) error {
	return db.Where("task_id = ?", taskId).Delete(&Rule{}).Error
}
