package fluid

import "math"

// 水的物性参数
// Carl L. Yaws, Thermophysical Properties of Chemicals and Hydrocarbons (2008)
// Incropera FP, DeWitt DP. Introduction to Heat Transfer, 4th ed. (2002)

const (
	h2oMw    = 18.0
	h2oTcr   = 647.13
	h2oTb    = 373.15
	h2oOmega = 0.3449 // 偏心因子
	h2oPcr   = 220.55e+5
)

type water struct{}

func (water) Name() string { return "water" }

func (water) MolWeight() float64 { return h2oMw }

func (water) CriticalTemperature() float64 { return h2oTcr }

// Wagner 型饱和蒸气压，Ambrose-Walton 对应态系数
func (water) SaturationPressure(T float64) float64 {
	Tr := T / h2oTcr
	tau := 1 - Tr
	if T > 0.99*h2oTcr {
		Tr = 0.99
		tau = 0.01
	}
	f0 := (-5.97616*tau + 1.29874*math.Pow(tau, 1.5) - 0.60394*math.Pow(tau, 2.5) - 1.06841*math.Pow(tau, 5.0)) / Tr
	f1 := (-5.03365*tau + 1.11505*math.Pow(tau, 1.5) - 5.41217*math.Pow(tau, 2.5) - 7.46628*math.Pow(tau, 5.0)) / Tr
	f2 := (-0.64771*tau + 2.41539*math.Pow(tau, 1.5) - 4.26979*math.Pow(tau, 2.5) + 3.25259*math.Pow(tau, 5.0)) / Tr
	return math.Exp(f0+f1*h2oOmega+f2*h2oOmega*h2oOmega) * h2oPcr
}

func (water) VapourCp(T float64) float64 {
	return (-5.9796e-9*T*T*T + 1.7437e-5*T*T - 3.2463e-3*T + 33.174) / h2oMw * 1.e+3
}

// Wilke-Lee 二元扩散系数，水蒸气-空气
func (water) BinaryDiffusivity(p, T float64) float64 {
	Mva := 2.0 / (1/h2oMw + 1/AirMolWeight)
	sqMva := math.Sqrt(Mva)
	sigmava := 0.5 * (2.641 + 3.711)
	Tn := T / math.Sqrt(78.6*809.1)
	omegaD := 1.06036*math.Pow(Tn, -0.1561) + 0.193*math.Exp(-0.47635*Tn) +
		1.03587*math.Exp(-1.52996*Tn) + 1.76474*math.Exp(-3.89411*Tn)
	return (3.03 - 0.98/sqMva) / (p * sqMva * (sigmava * sigmava) * omegaD) * 1.e-2 * math.Pow(T, 1.5)
}

func (water) LatentHeat(T float64) float64 {
	if T > 0.99*h2oTcr {
		return 54.0 * math.Pow(0.01, 0.34) / h2oMw * 1.e6
	}
	return 54.0 * math.Pow(1-T/h2oTcr, 0.34) / h2oMw * 1.e6
}

func (water) LiquidDensity(T float64) float64 {
	return 1.0 / 1.058 * 1.e+3
}

func (water) LiquidViscosity(T float64) float64 {
	return math.Pow(10.0, -11.6225+1.949e+3/T+2.1641e-2*T-1.5990e-5*T*T) * 1.e-3
}

func (water) LiquidConductivity(T float64) float64 {
	return 686.e-3
}

func (water) LiquidCp(T float64) float64 {
	return 1000.0 * 4239.0
}
