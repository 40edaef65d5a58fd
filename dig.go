package main

import (
	"math"
	"os"
	"path"
	"strconv"
	"time"

	"drsa-shenglin/dominance"
	"drsa-shenglin/drsa_config"
	"drsa-shenglin/induction"
	"drsa-shenglin/rock-share/base/config"
	"drsa-shenglin/rock-share/base/logger"
	"drsa-shenglin/rock-share/global/db"
	"drsa-shenglin/rock-share/global/model/po"
	"drsa-shenglin/rule"
	"drsa-shenglin/table"
	"drsa-shenglin/utils"
)

// DigRules 一次完整的归纳任务：
// 读csv建表,归纳规则,可选筛选,导出csv,可选落库。
// 返回结果路径、规则数和耗时
func DigRules(request *DRSARequest) (string, int, int64, error) {
	startTime := time.Now().UnixMilli()
	taskId := startTime

	ruleType := request.RuleType
	if ruleType == "" {
		ruleType = drsa_config.CertainRuleType
	}
	if ruleType != drsa_config.CertainRuleType && ruleType != drsa_config.PossibleRuleType {
		return "", 0, 0, utils.ErrParameter
	}
	threshold := config.All.Induction.ConsistencyThreshold
	if request.ConsistencyThreshold != nil {
		threshold = *request.ConsistencyThreshold
	}
	if threshold < 0 || threshold > drsa_config.MaxConsistencyThreshold {
		logger.Errorf("taskId:%v,非法阈值:%v", taskId, threshold)
		return "", 0, 0, utils.ErrInvalidThreshold
	}

	info := RegisterTask(taskId, ruleType, threshold)
	logger.Infof("taskId:%v,规则归纳开始,ruleType:%s,threshold:%v", taskId, ruleType, threshold)

	data, err := utils.GetCsvData(request.Table.Path)
	if err != nil {
		info.Fail()
		return "", 0, 0, err
	}
	t, err := table.NewInformationTableFromCsv(data, request.Table.Columns)
	if err != nil {
		info.Fail()
		return "", 0, 0, err
	}
	logger.Infof("taskId:%v,信息表就绪,对象数:%d,属性数:%d", taskId, t.NumberOfObjects(), t.NumberOfAttributes())

	var rs *rule.RuleSetWithCharacteristics
	if ruleType == drsa_config.PossibleRuleType {
		rs, err = induction.NewPossibleRuleInducerWrapper().InduceRulesWithCharacteristics(t)
	} else {
		rs, err = induction.NewVariableConsistencyRuleInducerWrapper(threshold).InduceRulesWithCharacteristicsThreshold(t, threshold)
	}
	if err != nil {
		info.Fail()
		return "", 0, 0, err
	}

	if request.Filter != "" {
		rs, err = rule.FilterByExpression(rs, request.Filter)
		if err != nil {
			info.Fail()
			return "", 0, 0, err
		}
	}

	if drsa_config.SaveDominanceGraph {
		graphPath := path.Join(drsa_config.GraphDir, strconv.FormatInt(taskId, 10)+".dot")
		dominance.ToSimpleGraph(t, graphPath)
	}

	rule.RenderReport(rs, os.Stdout)

	resultPath := path.Join(drsa_config.ResultDir, strconv.FormatInt(taskId, 10)+".csv")
	if err := exportRules(resultPath, rs); err != nil {
		info.Fail()
		return "", 0, 0, err
	}

	if drsa_config.UseStorage {
		saveRules(taskId, rs)
	}

	spent := time.Now().UnixMilli() - startTime
	info.Finish(resultPath, rs.Size(), spent)
	logger.Infof("taskId:%v,规则归纳完成,规则数:%v,耗时:%vms", taskId, rs.Size(), spent)
	return resultPath, rs.Size(), spent, nil
}

func exportRules(resultPath string, rs *rule.RuleSetWithCharacteristics) error {
	data := [][]string{{"rule", "support", "strength", "coverage_factor", "confidence", "epsilon"}}
	for i := 0; i < rs.Size(); i++ {
		rc := rs.RuleCharacteristics(i)
		data = append(data, []string{
			rs.Rule(i).String(),
			strconv.Itoa(rc.Support),
			formatCsvFloat(rc.Strength),
			formatCsvFloat(rc.CoverageFactor),
			formatCsvFloat(rc.Confidence),
			formatCsvFloat(rc.Epsilon),
		})
	}
	return utils.CreateCsv(resultPath, data)
}

func formatCsvFloat(v float64) string {
	if math.IsNaN(v) {
		return "?"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// saveRules 落库失败不影响任务结果，记日志继续
func saveRules(taskId int64, rs *rule.RuleSetWithCharacteristics) {
	if db.DB == nil {
		logger.Warnf("taskId:%v,存储未初始化,跳过规则落库", taskId)
		return
	}
	rules := make([]po.Rule, 0, rs.Size())
	for i := 0; i < rs.Size(); i++ {
		r := rs.Rule(i)
		rc := rs.RuleCharacteristics(i)
		rules = append(rules, po.Rule{
			TaskId:         taskId,
			RuleText:       r.String(),
			RuleType:       int(r.Type()),
			Semantics:      r.Semantics(),
			Support:        rc.Support,
			Strength:       rc.Strength,
			CoverageFactor: rc.CoverageFactor,
			Confidence:     rc.Confidence,
			Epsilon:        rc.Epsilon,
		})
	}
	if len(rules) == 0 {
		return
	}
	if err := po.CreateRules(&rules, db.DB); err != nil {
		logger.Errorf("taskId:%v,规则落库失败:%v", taskId, err)
	}
}
