package fluid

import "math"

// 正十二烷的物性参数
// Abramzon B, Sazhin S. Convective vaporization of a fuel droplet with
// thermal radiation absorption. Fuel 2006;85(1):32-46.

const (
	c12Mw  = 170.34
	c12Tcr = 659.0
)

type dodecane struct{}

func (dodecane) Name() string { return "dodecane" }

func (dodecane) MolWeight() float64 { return c12Mw }

func (dodecane) CriticalTemperature() float64 { return c12Tcr }

func (dodecane) SaturationPressure(T float64) float64 {
	psat := math.Exp(8.1948-7.8099*(300.0/T)-9.0098*(300.0/T)*(300.0/T)) * 1.e5
	if T > 0.99*c12Tcr {
		psat = psat * math.Exp(15.0*(T/0.99/c12Tcr-1.0))
	}
	return psat
}

func (dodecane) VapourCp(T float64) float64 {
	return (0.2979 + 1.4394*(T/300.0) - 0.1351*(T/300.0)*(T/300.0)) * 1000.0
}

func (dodecane) BinaryDiffusivity(p, T float64) float64 {
	return 0.527 * math.Pow(T/300.0, 1.583) / p
}

func (dodecane) LatentHeat(T float64) float64 {
	if T > 0.99*c12Tcr {
		return 37.44 * math.Pow(c12Tcr-653.0, 0.38) * 1000.0
	}
	return 37.44 * math.Pow(c12Tcr-T, 0.38) * 1000.0
}

func (dodecane) LiquidDensity(T float64) float64 {
	return 744.11 - 0.771*(T-300.0)
}

func (dodecane) LiquidViscosity(T float64) float64 {
	return 1.e-3 * math.Exp(2.0303*(300.0/T)*(300.0/T)+1.1769*(300.0/T)-2.929)
}

func (dodecane) LiquidConductivity(T float64) float64 {
	return 0.1405 - 0.00022*(T-300.0)
}

func (dodecane) LiquidCp(T float64) float64 {
	return (2.18 + 0.0041*(T-300.0)) * 1000.0
}
