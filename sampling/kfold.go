package sampling

import (
	"math/rand"
	"sort"

	"drsa-shenglin/rock-share/base/logger"
	"drsa-shenglin/table"
	"drsa-shenglin/utils"
)

// Fold 一折交叉验证的训练表和测试表
type Fold struct {
	Train *table.InformationTable
	Test  *table.InformationTable
}

// SplitStratifiedIntoKFolds 分层k折划分。
// 对象按决策分组，组内用注入的随机源打乱，再轮转发牌进k个桶，
// 保证各折决策类比例接近且折大小最多差1。
// 随机源必须显式传入，同一seed划分结果可复现
func SplitStratifiedIntoKFolds(t *table.InformationTable, k int, rng *rand.Rand) ([]Fold, error) {
	if t == nil || rng == nil {
		return nil, utils.ErrEmptyPointer
	}
	n := t.NumberOfObjects()
	if k <= 1 || k > n {
		logger.Errorf("折数非法:%d, 对象数:%d", k, n)
		return nil, utils.ErrFoldNumber
	}

	// 决策key分组，没有决策的对象归到空key一组
	groups := map[string][]int{}
	var keys []string
	for obj := 0; obj < n; obj++ {
		key := ""
		if d := t.Decision(obj); d != nil {
			key = d.Key()
		}
		if _, seen := groups[key]; !seen {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], obj)
	}
	sort.Strings(keys)

	buckets := make([][]int, k)
	cursor := 0
	for _, key := range keys {
		indices := groups[key]
		rng.Shuffle(len(indices), func(a, b int) {
			indices[a], indices[b] = indices[b], indices[a]
		})
		// cursor跨组延续，避免小组都堆在前几折
		for _, obj := range indices {
			buckets[cursor%k] = append(buckets[cursor%k], obj)
			cursor++
		}
	}

	folds := make([]Fold, k)
	for i, bucket := range buckets {
		sort.Ints(bucket)
		test, err := t.Select(bucket, true)
		if err != nil {
			return nil, err
		}
		train, err := t.Discard(bucket, true)
		if err != nil {
			return nil, err
		}
		folds[i] = Fold{Train: train, Test: test}
	}
	return folds, nil
}
