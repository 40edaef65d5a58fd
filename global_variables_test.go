package main

import (
	"sync"
	"testing"

	"drsa-shenglin/rock-share/global/enum"
)

func TestTaskRegistryLifecycle(t *testing.T) {
	info := RegisterTask(101, "certain", 0.2)
	got, ok := GetTask(101)
	if !ok || got != info {
		t.Fatal("注册后应能按taskId取回同一个TaskInfo")
	}
	if _, ok := GetTask(102); ok {
		t.Fatal("没注册的taskId不应取到任务")
	}

	s := info.Snapshot()
	if s.Status != enum.DIG_EXEC || s.RuleType != "certain" || s.ConsistencyThreshold != 0.2 {
		t.Fatalf("初始快照不对:%+v", &s)
	}

	info.Finish("result/101.csv", 7, 42)
	s = info.Snapshot()
	if s.Status != enum.DIG_FINISH || s.RuleSize != 7 || s.ResultPath != "result/101.csv" || s.SpentTimeMs != 42 {
		t.Fatalf("完成后快照不对:%+v", &s)
	}
}

func TestTaskSnapshotConcurrentWithWrites(t *testing.T) {
	// 查询和状态写入并发,快照读必须走锁
	info := RegisterTask(103, "possible", 0)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = info.Snapshot()
			}
		}()
	}
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				info.Finish("result/103.csv", j, int64(j))
			}
		}()
	}
	wg.Wait()

	if s := info.Snapshot(); s.Status != enum.DIG_FINISH {
		t.Fatalf("写入结束后状态应为完成,实际%s", s.Status)
	}
}
