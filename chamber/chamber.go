package chamber

import (
	"math"

	log "github.com/sirupsen/logrus"

	"dvap/model"
)

// 燃烧室/蒸发室环境：液滴所在位置的气相状态
// 气相流场本身不在本核心求解范围内，这里只提供一个冻结的
// 线性剪切速度场以及对应的速度梯度张量，供 FLA 使用。

// 默认环境参数
const (
	DefaultGasTemperature = 800.0    // K
	DefaultGasPressure    = 101325.0 // Pa
	DefaultGasVelocity    = 5.0      // m/s
	DefaultShearRate      = 100.0    // 1/s
)

// 气相环境配置
type GasCfg struct {
	Temperature float64 // K
	Pressure    float64 // Pa
	U0          float64 // x 方向主流速度，m/s
	ShearRate   float64 // du/dy，1/s
}

type Chamber struct {
	Number    int
	Name      string
	GasConfig GasCfg

	// 蒸发组分的摩尔质量，kg/kmol，由所选工质在初始化时设定
	vapourMolWeight float64
}

func NewChamber(number int) *Chamber {
	return &Chamber{
		Number: number,
		Name:   "蒸发室1",
		GasConfig: GasCfg{
			Temperature: DefaultGasTemperature,
			Pressure:    DefaultGasPressure,
			U0:          DefaultGasVelocity,
			ShearRate:   DefaultShearRate,
		},
	}
}

// 设置气相环境参数
func (c *Chamber) SetGasConfig(env model.Env) {
	if env.GasTemperature > 0 {
		c.GasConfig.Temperature = env.GasTemperature
	}
	if env.GasPressure > 0 {
		c.GasConfig.Pressure = env.GasPressure
	}
	c.GasConfig.U0 = env.GasVelocity
	c.GasConfig.ShearRate = env.ShearRate
	log.WithFields(log.Fields{
		"GasTemperature": c.GasConfig.Temperature,
		"GasPressure":    c.GasConfig.Pressure,
		"GasVelocity":    c.GasConfig.U0,
		"ShearRate":      c.GasConfig.ShearRate,
	}).Info("设置气相环境参数")
}

func (c *Chamber) SetVapourMolWeight(mw float64) {
	c.vapourMolWeight = mw
}

// 液滴所在位置的气相状态快照
// 速度场 u = (U0 + ShearRate*y, 0)，在一个时间步内冻结；
// 环境中蒸气质量分数取 0
func (c *Chamber) State() model.Carrier {
	T := c.GasConfig.Temperature
	p := c.GasConfig.Pressure
	return model.Carrier{
		Temperature: T,
		Pressure:    p,
		Rho:         p / (model.RAir * T),
		Velocity:    [3]float64{c.GasConfig.U0, 0, 0},
		Mu:          AirViscosity(T),
		TCond:       AirConductivity(T),
		SHeat:       AirCp(T),
		Yi:          []float64{0.0},
		MolWeight:   []float64{c.vapourMolWeight},
		Gradient: model.Gradients{
			DuDx: 0,
			DuDy: c.GasConfig.ShearRate,
			DvDx: 0,
			DvDy: 0,
		},
	}
}

// 空气动力粘度，Sutherland 公式
func AirViscosity(T float64) float64 {
	return 1.716e-5 * math.Pow(T/273.15, 1.5) * (273.15 + 110.4) / (T + 110.4)
}

// 空气导热系数
func AirConductivity(T float64) float64 {
	return 0.02624 * math.Pow(T/300.0, 0.8646)
}

// 空气比热容，Cengel 多项式
func AirCp(T float64) float64 {
	return (28.11 + 0.1967e-2*T + 0.4802e-5*T*T - 1.966e-9*T*T*T) / 28.967 * 1000.0
}
