package main

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"drsa-shenglin/drsa_config"
	"drsa-shenglin/rock-share/base/config"
	"drsa-shenglin/rock-share/base/logger"
	"drsa-shenglin/rock-share/global/db"
)

func main() {
	go func() {
		err := http.ListenAndServe(":8081", nil)
		if err != nil {
			fmt.Printf("http.ListenAndServe failed, err:%s", err)
		}
	}()

	// 一些初始化配置
	config.InitConfig()
	all := config.All
	l := all.Logger
	ss := all.Server
	logger.InitLogger(l.Level, "drsa-backend", l.Path, l.MaxAge, l.RotationTime, l.RotationSize, ss.SentryDsn)
	if drsa_config.UseStorage {
		if err := db.Init(); err != nil {
			logger.Errorf("存储初始化失败:%v", err)
		}
	}
	r := gin.Default()

	r.POST("/drsa", start)
	r.GET("/drsa/task/:taskId", taskStatus)

	address := ":" + drsa_config.GinPort
	r.Run(address)
}

func start(c *gin.Context) {
	var requestJson DRSARequest
	if err := c.ShouldBindJSON(&requestJson); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		fmt.Println("_____________________请求异常:")
		fmt.Println(err)
		return
	}
	p, size, t, e := DigRules(&requestJson)
	if e != nil {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"error":   e.Error(),
		})
	} else {
		c.JSON(http.StatusOK, gin.H{
			"success":     true,
			"result_path": p,
			"rule_size":   size,
			"spent_time":  t,
		})
	}
}

func taskStatus(c *gin.Context) {
	taskId, err := strconv.ParseInt(c.Param("taskId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	info, ok := GetTask(taskId)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	snapshot := info.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"task_id":     snapshot.TaskId,
		"status":      snapshot.Status,
		"rule_type":   snapshot.RuleType,
		"threshold":   snapshot.ConsistencyThreshold,
		"rule_size":   snapshot.RuleSize,
		"result_path": snapshot.ResultPath,
		"spent_time":  snapshot.SpentTimeMs,
	})
}
