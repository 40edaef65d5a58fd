package logger

import (
	"os"
	"path"
	"strings"
	"time"

	"github.com/LinkinStars/golang-util/gu"
	"github.com/getsentry/sentry-go"
	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// yourProjectName 项目名称，用于命名日志文件和截短打印路径
var yourProjectName = "drsa-backend"

// InitLogger 初始化全局zap日志
// level: 最低打印级别
// projectName: 项目名称
// logPath: 日志目录
// maxAge: 日志最大存在时间，单位：天
// rotationTime: 日志切分时间，单位：小时
// rotationSize: 日志切分大小，单位：MB
// sentryDsn: 不为空时错误日志上报sentry
func InitLogger(level, projectName, logPath string, maxAge, rotationTime time.Duration, rotationSize uint32, sentryDsn string) {
	if len(projectName) != 0 {
		yourProjectName = projectName
	}

	maxAge = maxAge * 24 * time.Hour
	rotationTime = rotationTime * time.Hour
	if rotationSize == 0 {
		rotationSize = 1024 //1G
	}
	rotationSizeMB := int64(rotationSize) * 1024 * 1024
	if err := gu.CreateDirIfNotExist(logPath); err != nil {
		panic(err)
	}
	logPath = path.Join(logPath, yourProjectName)

	errWriter, err := rotatelogs.New(
		logPath+"_err_%Y-%m-%d.log",
		rotatelogs.WithLinkName(logPath+"_err_last.log"), // 软链,指向最新日志文件
		rotatelogs.WithMaxAge(maxAge),
		rotatelogs.WithRotationTime(rotationTime),
		rotatelogs.WithRotationSize(rotationSizeMB),
	)
	if err != nil {
		panic(err)
	}
	infoWriter, err := rotatelogs.New(
		logPath+"_info_%Y-%m-%d.log",
		rotatelogs.WithLinkName(logPath+"_info_last.log"),
		rotatelogs.WithMaxAge(maxAge),
		rotatelogs.WithRotationTime(rotationTime),
		rotatelogs.WithRotationSize(rotationSizeMB),
	)
	if err != nil {
		panic(err)
	}

	minLevel := parseLevel(level)
	highPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl > zapcore.WarnLevel
	})
	lowPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= minLevel
	})

	consoleEncoderConfig := zap.NewDevelopmentEncoderConfig()
	consoleEncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	consoleEncoderConfig.EncodeTime = timeEncoder
	consoleEncoderConfig.EncodeCaller = shortCallerEncoder
	consoleEncoder := zapcore.NewConsoleEncoder(consoleEncoderConfig)

	fileEncodeConfig := zap.NewProductionEncoderConfig()
	fileEncodeConfig.EncodeTime = timeEncoder
	fileEncodeConfig.EncodeCaller = shortCallerEncoder
	fileEncoder := zapcore.NewJSONEncoder(fileEncodeConfig)

	cores := []zapcore.Core{
		zapcore.NewCore(fileEncoder, zapcore.AddSync(errWriter), highPriority),
		zapcore.NewCore(fileEncoder, zapcore.AddSync(infoWriter), lowPriority),
		zapcore.NewCore(consoleEncoder, zapcore.Lock(os.Stdout), minLevel),
	}

	// 配了dsn就挂一个sentry core，错误级别以上上报
	if sentryDsn != "" {
		client, err := sentry.NewClient(sentry.ClientOptions{Dsn: sentryDsn})
		if err != nil {
			panic(err)
		}
		cores = append(cores, NewSentryCore(SentryCoreConfig{
			Level: zapcore.ErrorLevel,
			Tags:  map[string]string{"project": yourProjectName},
		}, client))
	}

	l := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1), zap.Development())
	zap.ReplaceGlobals(l)

	// 系统输出也重定向进来，保证异常都落到文件
	if _, err := zap.RedirectStdLogAt(l, zapcore.ErrorLevel); err != nil {
		panic(err)
	}
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// shortCallerEncoder 按项目名截短打印路径
func shortCallerEncoder(caller zapcore.EntryCaller, enc zapcore.PrimitiveArrayEncoder) {
	str := caller.String()
	index := strings.Index(str, yourProjectName)
	if index == -1 {
		enc.AppendString(caller.TrimmedPath())
	} else {
		enc.AppendString(str[index+len(yourProjectName)+1:])
	}
}

// timeEncoder 格式化日志时间，官方的不好看
func timeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("2006-01-02 15:04:05.000"))
}

func Debug(args ...interface{}) { zap.S().Debug(args...) }
func Info(args ...interface{})  { zap.S().Info(args...) }
func Warn(args ...interface{})  { zap.S().Warn(args...) }
func Error(args ...interface{}) { zap.S().Error(args...) }

func Debugf(template string, args ...interface{}) { zap.S().Debugf(template, args...) }
func Infof(template string, args ...interface{})  { zap.S().Infof(template, args...) }
func Warnf(template string, args ...interface{})  { zap.S().Warnf(template, args...) }
func Errorf(template string, args ...interface{}) { zap.S().Errorf(template, args...) }
