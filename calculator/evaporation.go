package calculator

import (
	"errors"
	"math"
)

// Abramzon–Sirignano 薄膜蒸发闭合模型:
// Spalding 传质数 BM 由表面蒸气质量分数直接给出,
// 传热数 BT 通过不动点迭代求解, 二者分别修正 Sherwood 数和 Nusselt 数。

// BT 迭代在上限次数内未收敛
var ErrNoConvergence = errors.New("calculator: BT 迭代不收敛")

const (
	// 不动点迭代收敛判据
	accuracy = 1e-6

	// 迭代次数上限
	maxBTIter = 100

	bmMin = -0.99999
	bmMax = 1e20
)

// 吹拂修正因子 F(B) = (1+B)^0.7·ln(1+B)/B, B→0 时取极限值 1
func blowingCorrection(B float64) float64 {
	if math.Abs(B) < 1e-12 {
		return 1.0
	}
	return math.Pow(1.0+B, 0.7) * math.Log(1.0+B) / B
}

// SpaldingBM 传质数, 环境蒸气质量分数取零
func SpaldingBM(ysTot float64) float64 {
	bm := ysTot / (1.0 - ysTot)
	if bm < bmMin {
		bm = bmMin
	}
	if bm > bmMax {
		bm = bmMax
	}
	return bm
}

// Frössling 型对流增强项, x 为 Sc 或 Pr
func filmTerm(Re, x float64) float64 {
	return math.Pow(1.0+Re*x, 1.0/3.0)*math.Max(1.0, math.Pow(Re, 0.077)) - 1.0
}

// SherwoodStar 薄膜修正后的 Sherwood 数
func SherwoodStar(Re, Sc, bm float64) float64 {
	return 2.0 + filmTerm(Re, Sc)/blowingCorrection(bm)
}

// SolveBT 以 BM 为初值做不动点迭代, 返回收敛的 BT 和对应的修正
// Nusselt 数 Nu*。coef = cp_vap·ρ_gas·D/k_gas·Sh*
func SolveBT(Re, Pr, bm, coef float64) (bt, nuStar float64, err error) {
	bt = bm
	btPrev := bt
	for k := 0; k < maxBTIter; k++ {
		nuStar = 2.0 + filmTerm(Re, Pr)/blowingCorrection(bt)
		phi := coef / nuStar
		bt = math.Pow(1.0+bm, phi) - 1.0
		if math.Abs(bt-btPrev) < accuracy {
			return bt, nuStar, nil
		}
		btPrev = bt
	}
	return bt, nuStar, ErrNoConvergence
}

// Nusselt 最终传热 Nusselt 数 Nu = ln(1+BT)·Nu*/BT
func Nusselt(bt, nuStar float64) float64 {
	if math.Abs(bt) < 1e-12 {
		return nuStar
	}
	return math.Log(1.0+bt) * nuStar / bt
}
