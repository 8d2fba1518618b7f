package calculator

import "dvap/model"

// calculator 的接口定义

type Calculator interface {
	// 构建data
	BuildData() *DropletFieldData
	BuildProfileData() *ProfileData

	// 获取CalcHub
	GetCalcHub() *CalcHub

	// 初始化环境参数
	InitParameter(env model.Env)

	// 设置注入参数
	SetStartTemperature(startTemperature float64)
	SetDiameter(diameter float64)

	// 运行
	Run()

	// 停止注入新液滴
	SetStateTail()
}
