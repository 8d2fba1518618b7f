package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func uniformProfile(n int, value float64) []float64 {
	profile := make([]float64, n+1)
	for j := range profile {
		profile[j] = value
	}
	return profile
}

func TestRebuildProfileUniformAtEffective(t *testing.T) {
	// 初始分布已经等于有效环境温度时重建应保持不动
	h0 := -0.5
	lambda := make([]float64, 44)
	Lambda(h0, lambda)
	profile := uniformProfile(100, 400.0)
	RebuildProfile(profile, lambda, h0, 400.0, 2000.0, 1e-4)
	for _, p := range profile {
		assert.InDelta(t, 400.0, p, 1e-3)
	}
}

func TestRebuildProfileRelaxesTowardEffective(t *testing.T) {
	// 冷液滴放入热环境, 一步之后整体升温且不越过环境温度
	h0 := -0.7
	lambda := make([]float64, 44)
	Lambda(h0, lambda)
	profile := uniformProfile(100, 300.0)
	RebuildProfile(profile, lambda, h0, 800.0, 2000.0, 1e-4)
	for _, p := range profile {
		assert.Greater(t, p, 300.0)
		assert.Less(t, p, 800.0)
	}
	// 表面比中心更接近环境温度
	assert.Greater(t, profile[100], profile[0])
}

func TestAverageTemperatureUniform(t *testing.T) {
	profile := uniformProfile(100, 500.0)
	assert.InDelta(t, 500.0, AverageTemperature(profile), 1e-9)
}

func TestAverageTemperatureQuadratic(t *testing.T) {
	// T(r) = a + b·r² 的体积平均为 a + 3b/5
	a, b := 300.0, 50.0
	profile := make([]float64, 101)
	for j := range profile {
		r := float64(j) / 100.0
		profile[j] = a + b*r*r
	}
	assert.InDelta(t, a+3.0*b/5.0, AverageTemperature(profile), 1e-5)
}
