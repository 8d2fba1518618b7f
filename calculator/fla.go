package calculator

import (
	"math"

	"dvap/model"
)

// 全拉格朗日方法: 沿液滴轨迹积分轨迹映射雅可比矩阵 J 及其
// 时间导数 W 的线性微分方程组, 从 det(J) 直接恢复液滴数密度,
// 并统计行列式变号次数(轨迹折叠穿越)。

// Schiller–Naumann 阻力修正 Cd·Re/24 = 1 + 0.15·Re^0.687
func dragFactor(Re float64) float64 {
	if Re <= 0.0 {
		return 1.0
	}
	return 1.0 + 0.15*math.Pow(Re, 0.687)
}

// 动量弛豫时间, 与轨迹积分使用同一套阻力规律
func relaxationTime(d *model.Droplet, mu float64) float64 {
	return d.Density * d.Diameter * d.Diameter / (18.0 * mu * dragFactor(d.Re))
}

// 右端项。y 的排布固定: [J11 J12 J21 J22 W11 W12 W21 W22]
func flaDydt(y, f *[model.NEq]float64, grad model.Gradients, tau float64) {
	f[0] = y[4]
	f[1] = y[5]
	f[2] = y[6]
	f[3] = y[7]
	f[4] = (y[0]*grad.DuDx + y[2]*grad.DuDy - y[4]) / tau
	f[5] = (y[1]*grad.DuDx + y[3]*grad.DuDy - y[5]) / tau
	f[6] = (y[0]*grad.DvDx + y[2]*grad.DvDy - y[6]) / tau
	f[7] = (y[1]*grad.DvDx + y[3]*grad.DvDy - y[7]) / tau
}

// InitJacobian 注入时刻的初始条件: J 为单位阵, W 为零
func InitJacobian(d *model.Droplet) {
	d.Jacobian = model.JacobianState{
		J11: 1.0, J22: 1.0,
		Det: 1.0, NP: 1.0,
	}
}

// FLAStep 经典四阶 Runge–Kutta 推进一步, 步长取液滴积分步长,
// 一步之内速度梯度场冻结。mu 为载气动力黏度
func FLAStep(d *model.Droplet, grad model.Gradients, mu float64) {
	tau := relaxationTime(d, mu)
	js := &d.Jacobian
	js.Beta = 1.0 / tau
	h := d.Dt

	var y [model.NEq]float64
	y[0], y[1], y[2], y[3] = js.J11, js.J12, js.J21, js.J22
	y[4], y[5], y[6], y[7] = js.W11, js.W12, js.W21, js.W22

	var yTmp, k1, k2, k3, k4 [model.NEq]float64
	flaDydt(&y, &k1, grad, tau)
	for i := 0; i < model.NEq; i++ {
		yTmp[i] = y[i] + k1[i]*h/2
	}
	flaDydt(&yTmp, &k2, grad, tau)
	for i := 0; i < model.NEq; i++ {
		yTmp[i] = y[i] + k2[i]*h/2
	}
	flaDydt(&yTmp, &k3, grad, tau)
	for i := 0; i < model.NEq; i++ {
		yTmp[i] = y[i] + k3[i]*h
	}
	flaDydt(&yTmp, &k4, grad, tau)
	for i := 0; i < model.NEq; i++ {
		y[i] += (k1[i] + 2.0*k2[i] + 2.0*k3[i] + k4[i]) * h / 6.0
	}

	js.J11, js.J12, js.J21, js.J22 = y[0], y[1], y[2], y[3]
	js.W11, js.W12, js.W21, js.W22 = y[4], y[5], y[6], y[7]

	det := js.J11*js.J22 - js.J12*js.J21
	if math.Signbit(det) != math.Signbit(js.Det) {
		js.NSign++
	}
	js.Det = det
	js.NP = 1.0 / math.Max(math.Abs(det), model.DPMSmall)
}
