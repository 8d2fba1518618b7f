package calculator

import (
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

// 计算器配置
type cfg struct {
	NInt          int     // 径向温度分布采样区间数
	NLambda       int     // 特征值搜索带数量
	DeltaT        float64 // 液滴积分时间步长 [s]
	Fluid         string  // 工质名称
	Workers       int     // 计算协程数量
	CloudCapacity int     // 液滴容器容量
	InjectCount   int     // 每步注入的液滴数
}

var calCfg cfg

func init() {
	file, err := ini.Load("conf/config.ini")
	if err != nil {
		file, err = ini.Load("../conf/config.ini")
	}
	if err != nil {
		log.WithField("err", err).Warn("配置文件加载失败, 使用默认配置")
		file = ini.Empty()
	}
	loadCfg(file)
}

func loadCfg(file *ini.File) {
	section := file.Section("calculator")
	calCfg.NInt = section.Key("n_int").MustInt(100)
	calCfg.NLambda = section.Key("n_lambda").MustInt(44)
	calCfg.DeltaT = section.Key("delta_t").MustFloat64(1e-4)
	calCfg.Fluid = section.Key("fluid").MustString("dodecane")
	calCfg.Workers = section.Key("workers").MustInt(4)
	calCfg.CloudCapacity = section.Key("cloud_capacity").MustInt(1024)
	calCfg.InjectCount = section.Key("inject_count").MustInt(1)
	log.WithFields(log.Fields{
		"n_int":    calCfg.NInt,
		"n_lambda": calCfg.NLambda,
		"delta_t":  calCfg.DeltaT,
		"fluid":    calCfg.Fluid,
		"workers":  calCfg.Workers,
	}).Info("计算器配置加载完成")
}
