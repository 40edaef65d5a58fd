package enum

/*
digStatus规则归纳任务状态：
DIG_EXEC 归纳中
DIG_FINISH 归纳完成
DIG_FAIL 归纳失败
*/

const (
	DIG_EXEC   = "DIG_EXEC"
	DIG_FINISH = "DIG_FINISH"
	DIG_FAIL   = "DIG_FAIL"
)
