package fluid

import (
	"fmt"
)

// 空气摩尔质量，kg/kmol
const AirMolWeight = 28.967

// 液滴工质物性模型
// 三种工质共用同一套接口，启动时按配置选定一种，运行期间不切换。
// 所有相关函数均为纯函数；接近临界温度（T > 0.99*Tcr）时
// 各关联式在截断点处取值外推，避免对数/幂在 T -> Tcr 处发散。

type Fluid interface {
	Name() string

	// 摩尔质量，kg/kmol
	MolWeight() float64

	// 临界温度，K
	CriticalTemperature() float64

	// 饱和蒸气压，Pa
	SaturationPressure(T float64) float64

	// 蒸气比热容，J/(kg K)
	VapourCp(T float64) float64

	// 蒸气-空气二元扩散系数，m^2/s
	BinaryDiffusivity(p, T float64) float64

	// 汽化潜热，J/kg
	LatentHeat(T float64) float64

	// 液相密度，kg/m^3
	LiquidDensity(T float64) float64

	// 液相动力粘度，Pa s
	LiquidViscosity(T float64) float64

	// 液相导热系数，W/(m K)
	LiquidConductivity(T float64) float64

	// 液相比热容，J/(kg K)
	LiquidCp(T float64) float64
}

// 根据工质名称获取物性模型
func New(name string) (Fluid, error) {
	switch name {
	case "water":
		return water{}, nil
	case "dodecane":
		return dodecane{}, nil
	case "isooctane":
		return isooctane{}, nil
	}
	return nil, fmt.Errorf("fluid: 未知工质 %q，可选 water | dodecane | isooctane", name)
}
