package calculator

import "math"

// 球对称瞬态导热的级数解。液滴内温度分布 T(r) 在归一化半径
// [0,1] 上等距采样, 每个时间步先对上一步分布做广义傅里叶展开,
// 衰减后叠加回有效环境温度, 整体重建全部采样点。

// 上一步分布对基函数 sin(λr)/r 的展开系数, 即 ∫ T(r)·r·sin(λr) dr,
// 复合辛普森求积: 奇数内点权 4, 偶数内点权 2, 表面点权 sin(λ)
func fourierCoefficient(profile []float64, lambda float64) float64 {
	n := len(profile) - 1
	deltaR := 1.0 / float64(n)
	iN := profile[n] * math.Sin(lambda)
	for j := 1; j < n; j += 2 {
		r := float64(j) * deltaR
		iN += 4.0 * profile[j] * r * math.Sin(lambda*r)
	}
	for j := 2; j < n; j += 2 {
		r := float64(j) * deltaR
		iN += 2.0 * profile[j] * r * math.Sin(lambda*r)
	}
	return iN * deltaR / 3.0
}

// RebuildProfile 把分布推进一个时间步。lambda 为当前 h0 下的特征值,
// 哨兵带直接跳过。tEff 为修正了蒸发潜热的有效环境温度,
// kappa 为液相热扩散率除以液滴半径平方
func RebuildProfile(profile, lambda []float64, h0, tEff, kappa, dt float64) {
	n := len(profile) - 1
	deltaR := 1.0 / float64(n)
	zeta := (h0 + 1.0) * tEff

	// 全部展开系数必须在覆写分布之前算完
	series := make([]float64, len(lambda))
	for i, l := range lambda {
		if l == NoRoot {
			continue
		}
		bN := 0.5 * (1.0 + h0/(h0*h0+l*l))
		iN := fourierCoefficient(profile, l)
		series[i] = (iN - math.Sin(l)/l/l*zeta) * math.Exp(-kappa*l*l*dt) / bN
	}

	for j := 0; j <= n; j++ {
		profile[j] = tEff
	}
	for i, l := range lambda {
		if l == NoRoot {
			continue
		}
		profile[0] += series[i] * l // sin(λr)/r 在 r=0 的极限
		for j := 1; j <= n; j++ {
			r := float64(j) * deltaR
			profile[j] += series[i] * math.Sin(l*r) / r
		}
	}
}

// AverageTemperature 体积平均温度, 辛普森求积附加球坐标权 r²
func AverageTemperature(profile []float64) float64 {
	n := len(profile) - 1
	deltaR := 1.0 / float64(n)
	tAv := profile[n]
	for j := 1; j < n; j += 2 {
		r := float64(j) * deltaR
		tAv += 4.0 * profile[j] * r * r
	}
	for j := 2; j < n; j += 2 {
		r := float64(j) * deltaR
		tAv += 2.0 * profile[j] * r * r
	}
	return tAv * deltaR
}
