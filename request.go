package main

import (
	"drsa-shenglin/table"
)

type DRSARequest struct {
	Table DataTable `json:"table"`
	// RuleType certain或possible，空值按certain处理
	RuleType string `json:"ruleType"`
	// ConsistencyThreshold epsilon上限，nil时用配置里的缺省值
	ConsistencyThreshold *float64 `json:"consistencyThreshold"`
	// Filter 规则特征筛选表达式，如"support >= 10 && epsilon <= 0.1"
	Filter string `json:"filter"`
}

type DataTable struct {
	Path    string                `json:"path"`
	Columns []table.AttributeSpec `json:"columns"`
}
