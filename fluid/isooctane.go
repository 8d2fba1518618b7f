package fluid

import "math"

// 异辛烷的物性参数
// Poling BE, Prausnitz JM, O'Connell JP. The Properties of Gases and
// Liquids, 5th ed. (2000)

const (
	c8Mw  = 114.23
	c8Tcr = 543.9
	c8Tb  = 372.39

	c8Omega = 0.303
)

// Pcr 由碳数拟合式给出
var c8Pcr = (-0.0186*64.0*8.0 + 0.459*64.0 - 5.924*8.0 + 54.071) * 100000.0

type isooctane struct{}

func (isooctane) Name() string { return "isooctane" }

func (isooctane) MolWeight() float64 { return c8Mw }

func (isooctane) CriticalTemperature() float64 { return c8Tcr }

// Ambrose and Walton (1989)
func (isooctane) SaturationPressure(T float64) float64 {
	Tr := T / c8Tcr
	tau := 1 - Tr
	if T > 0.99*c8Tcr {
		Tr = 0.99
		tau = 0.01
	}
	f0 := (-5.97616*tau + 1.29874*math.Pow(tau, 1.5) - 0.60394*math.Pow(tau, 2.5) - 1.06841*math.Pow(tau, 5.0)) / Tr
	f1 := (-5.03365*tau + 1.11505*math.Pow(tau, 1.5) - 5.41217*math.Pow(tau, 2.5) - 7.46628*math.Pow(tau, 5.0)) / Tr
	f2 := (-0.64771*tau + 2.41539*math.Pow(tau, 1.5) - 4.26979*math.Pow(tau, 2.5) + 3.25259*math.Pow(tau, 5.0)) / Tr
	return math.Exp(f0+f1*c8Omega+f2*c8Omega*c8Omega) * c8Pcr
}

// T = 400 K 附近的取值，http://webbook.nist.gov/cgi/cbook.cgi?ID=C540841
func (isooctane) VapourCp(T float64) float64 {
	return 244.60 / c8Mw * 1000.0
}

func (isooctane) BinaryDiffusivity(p, T float64) float64 {
	return (-0.0578 + 3.0455e-4*T + 3.4265e-7*T*T) * 1.e-4
}

func (isooctane) LatentHeat(T float64) float64 {
	if T > 0.99*c8Tcr {
		return 49.32456 * math.Pow(1-0.99, 0.382229) / c8Mw * 1.e6
	}
	return 49.32456 * math.Pow(1-T/c8Tcr, 0.382229) / c8Mw * 1.e6
}

func (isooctane) LiquidDensity(T float64) float64 {
	if T > 0.99*c8Tcr {
		T = 0.99 * c8Tcr
	}
	return 1000.0 * (-0.000981411583995317*8.0*8.0 + 0.0167403553403262*8.0 + 0.175683060992056) *
		math.Pow(-0.000706081955526297*64.0+0.00873629109926122*8.0+0.249117016533684,
			-math.Pow(1-T/c8Tcr, 0.00114456989247312*64.0-0.0174424731182795*8.0+0.343958172043011))
}

func (isooctane) LiquidViscosity(T float64) float64 {
	a := -10.2217
	b := 1423.586
	c := 0.024242
	d := -2.33636e-05
	k := a + b/T + c*T + d*T*T - 3.0
	return math.Pow(10.0, k)
}

func (isooctane) LiquidConductivity(T float64) float64 {
	if T > 0.99*c8Tcr {
		T = 0.99 * c8Tcr
	}
	return 0.0035 * math.Pow(c8Tb, 1.2) * math.Pow(c8Mw, -0.5) * math.Pow(c8Tcr, -0.167) *
		math.Pow(1.0-T/c8Tcr, 0.38) * math.Pow(T/c8Tcr, -1.0/6.0)
}

// 异辛烷的液相比热容原始文献公式有排版错误，沿用正十二烷的取值
func (isooctane) LiquidCp(T float64) float64 {
	return (2.18 + 0.0041*(T-300.0)) * 1000.0
}
