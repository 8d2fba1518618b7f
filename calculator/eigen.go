package calculator

import "math"

// 特征方程 λ·cos(λ) + h0·sin(λ) = 0 的正实根。
// 正实轴划分为 len(lambda) 个搜索带, 每带至多一个根;
// h0 > 0 时根的分布整体右移, 搜索带跟着平移 π/2。
// h0 每个时间步都在变, 根每次调用都重新求解, 不做缓存。

const (
	// 搜索带内没有根时写入的哨兵值
	NoRoot = -1.0

	// 二分终止判据: 区间宽度
	bracketAccuracy = 1e-8

	// 带端点内缩量, 避开 sin 的天然零点
	bandMargin = 1e-7
)

func eigenFunc(lambda, h0 float64) float64 {
	return lambda*math.Cos(lambda) + h0*math.Sin(lambda)
}

// Lambda 求出每个搜索带内的根, 升序写入 lambda, 无根的带写入 NoRoot
func Lambda(h0 float64, lambda []float64) {
	for i := range lambda {
		lambda[i] = NoRoot
	}
	for i := range lambda {
		left := float64(i)*math.Pi + bandMargin
		right := (float64(i)+0.5)*math.Pi - bandMargin
		if h0 > 0.0 {
			left += 0.5 * math.Pi
			right += 0.5 * math.Pi
		}
		fLeft := eigenFunc(left, h0)
		if fLeft*eigenFunc(right, h0) >= 0.0 {
			continue // 端点同号, 此带无根
		}
		for right-left > bracketAccuracy {
			mid := (left + right) * 0.5
			fMid := eigenFunc(mid, h0)
			if fLeft*fMid < 0.0 {
				right = mid
			} else {
				left = mid
				fLeft = fMid
			}
		}
		lambda[i] = left
	}
}
