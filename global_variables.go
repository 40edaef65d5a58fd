package main

import (
	"strconv"
	"sync"

	cmap "github.com/orcaman/concurrent-map"

	"drsa-shenglin/rock-share/global/enum"
)

// taskRegistry taskId -> *TaskInfo，handler和后台落库并发读写
var taskRegistry = cmap.New()

type TaskInfo struct {
	TaskId               int64
	Status               string // enum.DIG_EXEC / DIG_FINISH / DIG_FAIL
	RuleType             string
	ConsistencyThreshold float64
	RuleSize             int
	ResultPath           string
	SpentTimeMs          int64

	mu sync.Mutex
}

func RegisterTask(taskId int64, ruleType string, threshold float64) *TaskInfo {
	info := &TaskInfo{
		TaskId:               taskId,
		Status:               enum.DIG_EXEC,
		RuleType:             ruleType,
		ConsistencyThreshold: threshold,
	}
	taskRegistry.Set(taskKey(taskId), info)
	return info
}

func GetTask(taskId int64) (*TaskInfo, bool) {
	v, ok := taskRegistry.Get(taskKey(taskId))
	if !ok {
		return nil, false
	}
	return v.(*TaskInfo), true
}

func (t *TaskInfo) Finish(resultPath string, ruleSize int, spentTimeMs int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.Status = enum.DIG_FINISH
	t.ResultPath = resultPath
	t.RuleSize = ruleSize
	t.SpentTimeMs = spentTimeMs
}

func (t *TaskInfo) Fail() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.Status = enum.DIG_FAIL
}

// Snapshot 锁内拷贝一份当前状态，查询接口只读快照
func (t *TaskInfo) Snapshot() TaskInfo {
	t.mu.Lock()
	defer t.mu.Unlock()
	return TaskInfo{
		TaskId:               t.TaskId,
		Status:               t.Status,
		RuleType:             t.RuleType,
		ConsistencyThreshold: t.ConsistencyThreshold,
		RuleSize:             t.RuleSize,
		ResultPath:           t.ResultPath,
		SpentTimeMs:          t.SpentTimeMs,
	}
}

func taskKey(taskId int64) string {
	return strconv.FormatInt(taskId, 10)
}
