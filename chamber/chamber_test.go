package chamber

import (
	"testing"

	"dvap/model"

	"github.com/stretchr/testify/assert"
)

func TestAirProperties(t *testing.T) {
	// 300K 标况下的空气物性
	assert.InDelta(t, 1.846e-5, AirViscosity(300.0), 1e-7)
	assert.InDelta(t, 0.02624, AirConductivity(300.0), 1e-6)
	assert.InDelta(t, 1004.0, AirCp(300.0), 2.0)

	// 高温下黏度和导热系数升高, 比热容升高
	assert.Greater(t, AirViscosity(800.0), AirViscosity(300.0))
	assert.Greater(t, AirConductivity(800.0), AirConductivity(300.0))
	assert.Greater(t, AirCp(800.0), AirCp(300.0))
}

func TestChamberState(t *testing.T) {
	c := NewChamber(1)
	c.SetVapourMolWeight(170.34)
	state := c.State()

	assert.Equal(t, DefaultGasTemperature, state.Temperature)
	assert.Equal(t, DefaultGasPressure, state.Pressure)
	assert.InDelta(t, state.Pressure/(model.RAir*state.Temperature), state.Rho, 1e-12)
	assert.Equal(t, DefaultGasVelocity, state.Velocity[0])
	assert.Equal(t, DefaultShearRate, state.Gradient.DuDy)
	assert.Equal(t, 0.0, state.Gradient.DuDx)
	assert.Equal(t, []float64{170.34}, state.MolWeight)
}

func TestSetGasConfig(t *testing.T) {
	c := NewChamber(1)
	c.SetGasConfig(model.Env{
		GasTemperature: 600.0,
		GasPressure:    2e5,
		GasVelocity:    2.0,
		ShearRate:      10.0,
	})
	state := c.State()
	assert.Equal(t, 600.0, state.Temperature)
	assert.Equal(t, 2e5, state.Pressure)
	assert.Equal(t, 2.0, state.Velocity[0])
	assert.Equal(t, 10.0, state.Gradient.DuDy)

	// 零值不覆盖温度与压力
	c.SetGasConfig(model.Env{GasVelocity: 1.0})
	assert.Equal(t, 600.0, c.GasConfig.Temperature)
	assert.Equal(t, 2e5, c.GasConfig.Pressure)
}
