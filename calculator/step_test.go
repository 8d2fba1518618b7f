package calculator

import (
	"math"
	"testing"

	"dvap/chamber"
	"dvap/fluid"
	"dvap/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 热空气中的十二烷液滴, 典型喷雾工况
func hotAirCarrier(T, p float64, fl fluid.Fluid) model.Carrier {
	return model.Carrier{
		Temperature: T,
		Pressure:    p,
		Rho:         p / (model.RAir * T),
		Velocity:    [3]float64{5.0, 0.0, 0.0},
		Mu:          chamber.AirViscosity(T),
		TCond:       chamber.AirConductivity(T),
		SHeat:       chamber.AirCp(T),
		Yi:          []float64{0.0},
		MolWeight:   []float64{fl.MolWeight()},
		Gradient:    model.Gradients{DuDy: 100.0},
	}
}

func TestInitDroplet(t *testing.T) {
	fl, err := fluid.New("dodecane")
	require.NoError(t, err)
	d := &model.Droplet{}
	InitDroplet(d, fl, 2e-5, 300.0, 1e-4, 100)

	assert.Len(t, d.Profile, 101)
	for _, p := range d.Profile {
		assert.Equal(t, 300.0, p)
	}
	assert.Equal(t, 300.0, d.TAv)
	assert.Equal(t, 300.0, d.SurfaceTemperature())
	assert.Equal(t, 2.0, d.Nu)
	assert.Equal(t, 0.0, d.BM)
	assert.Equal(t, 0.0, d.VapRate)
	assert.Greater(t, d.LEff, 0.0)
	assert.InDelta(t, math.Pi/6.0*8e-15*d.Density, d.Mass, 1e-20)

	js := d.Jacobian
	assert.Equal(t, 1.0, js.J11)
	assert.Equal(t, 1.0, js.J22)
	assert.Equal(t, 0.0, js.J12)
	assert.Equal(t, 0.0, js.W11)
	assert.Equal(t, 1.0, js.Det)
	assert.Equal(t, 1.0, js.NP)
	assert.Equal(t, 0, js.NSign)
}

func TestHeatMassStepDodecane(t *testing.T) {
	fl, err := fluid.New("dodecane")
	require.NoError(t, err)
	carrier := hotAirCarrier(800.0, 101325.0, fl)
	d := &model.Droplet{}
	InitDroplet(d, fl, 2e-5, 300.0, 1e-4, 100)
	d.Re = Reynolds(d, carrier)
	assert.Greater(t, d.Re, 0.0)

	src, err := HeatMassStep(d, carrier, fl, nil)
	require.NoError(t, err)

	// 冷液滴在热环境中: BM/BT 为小正数, 分布整体升温
	assert.Greater(t, d.BM, 0.0)
	assert.Less(t, d.BM, 0.1)
	assert.Greater(t, d.BT, 0.0)
	assert.Greater(t, d.Nu, 2.0)
	assert.Greater(t, d.VapRate, 0.0)
	assert.Greater(t, d.SurfaceTemperature(), 300.0)
	assert.Less(t, d.SurfaceTemperature(), 800.0)
	assert.Greater(t, d.TAv, 300.0)
	assert.Less(t, d.TAv, 800.0)
	// 表面比内部热
	assert.Greater(t, d.SurfaceTemperature(), d.TAv)

	assert.Greater(t, src.Species, 0.0)
	assert.Greater(t, src.Energy, 0.0)
	assert.Greater(t, src.MTC, 0.0)
	// 单组分: 组分蒸发速率等于总蒸发速率
	assert.InEpsilon(t, d.VapRate, src.Species, 1e-9)
}

func TestHeatMassStepThenFLA(t *testing.T) {
	fl, err := fluid.New("dodecane")
	require.NoError(t, err)
	carrier := hotAirCarrier(800.0, 101325.0, fl)
	d := &model.Droplet{}
	InitDroplet(d, fl, 2e-5, 300.0, 1e-4, 100)
	d.Re = Reynolds(d, carrier)

	_, err = HeatMassStep(d, carrier, fl, nil)
	require.NoError(t, err)
	FLAStep(d, carrier.Gradient, carrier.Mu)

	// 一步之内不可能折叠
	assert.Equal(t, 0, d.Jacobian.NSign)
	assert.InDelta(t, 1.0, d.Jacobian.NP, 1e-3)
	assert.Greater(t, d.Jacobian.Beta, 0.0)
}

func TestHeatMassStepMultiStepEvaporation(t *testing.T) {
	// 升温阶段平均温度与蒸发速率单调增长, 最终稳定在
	// 远低于环境温度的湿球温度附近
	fl, err := fluid.New("dodecane")
	require.NoError(t, err)
	carrier := hotAirCarrier(800.0, 101325.0, fl)
	d := &model.Droplet{}
	InitDroplet(d, fl, 2e-5, 300.0, 1e-4, 100)

	prevTAv := d.TAv
	prevVap := 0.0
	for i := 0; i < 10; i++ {
		d.Re = Reynolds(d, carrier)
		_, err := HeatMassStep(d, carrier, fl, nil)
		require.NoError(t, err)
		assert.Greater(t, d.TAv, prevTAv)
		assert.Greater(t, d.VapRate, prevVap)
		prevTAv = d.TAv
		prevVap = d.VapRate
	}
	// 十二烷在 800K 空气中的准稳态液滴温度约 478K
	assert.Greater(t, d.TAv, 470.0)
	assert.Less(t, d.TAv, 485.0)

	// 继续推进保持在湿球温度附近
	for i := 0; i < 20; i++ {
		d.Re = Reynolds(d, carrier)
		_, err := HeatMassStep(d, carrier, fl, nil)
		require.NoError(t, err)
	}
	assert.InDelta(t, 478.0, d.TAv, 5.0)
}
