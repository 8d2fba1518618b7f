package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateCloudInjection(t *testing.T) {
	c := NewCalculatorWithCloud()
	assert.Equal(t, 0, c.cloud.Size())

	c.carrier = c.chamber.State()
	c.updateCloud()
	require.Equal(t, c.injectCount, c.cloud.Size())

	d := c.cloud.Get(0)
	assert.Equal(t, c.diameter, d.Diameter)
	assert.Equal(t, c.startTemperature, d.TAv)
	assert.Equal(t, 1.0, d.Jacobian.Det)

	// 拉尾坯后不再注入
	c.SetStateTail()
	size := c.cloud.Size()
	c.updateCloud()
	assert.Equal(t, size, c.cloud.Size())
}

func TestDispatchStepsDroplets(t *testing.T) {
	c := NewCalculatorWithCloud()
	c.carrier = c.chamber.State()
	c.updateCloud()
	require.Equal(t, c.injectCount, c.cloud.Size())

	c.e.dispatchTask(calCfg.DeltaT, 0, c.cloud.Size())

	// 默认环境为 800K 热空气, 一步之后液滴升温并开始蒸发
	d := c.cloud.Get(0)
	assert.Greater(t, d.Re, 0.0)
	assert.Greater(t, d.TAv, c.startTemperature)
	assert.Greater(t, d.VapRate, 0.0)
	assert.Greater(t, d.Jacobian.Beta, 0.0)
	// 升温初期密度下降引起的热膨胀超过蒸发损失, 直径略增
	assert.Greater(t, d.Diameter, c.diameter)
	assert.Equal(t, 0, d.Jacobian.NSign)
}

func TestBuildDataSnapshot(t *testing.T) {
	c := NewCalculatorWithCloud()
	c.carrier = c.chamber.State()
	c.updateCloud()
	c.e.dispatchTask(calCfg.DeltaT, 0, c.cloud.Size())

	data := c.BuildData()
	require.Equal(t, c.cloud.Size(), data.Count)
	assert.Equal(t, c.fl.Name(), data.Fluid)
	assert.Greater(t, data.TAv[0], 0.0)
	assert.Greater(t, data.TSurf[0], data.TAv[0])
	assert.Greater(t, data.NP[0], 0.0)

	profile := c.BuildProfileData()
	require.Equal(t, c.cloud.Size(), profile.Count)
	assert.Len(t, profile.Profile, calCfg.NInt+1)
}
