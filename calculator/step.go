package calculator

import (
	"math"

	"dvap/fluid"
	"dvap/model"

	log "github.com/sirupsen/logrus"
)

// 单个液滴一个时间步的加热-蒸发计算。
// 先由表面温度求蒸气表面分数和 BM, 再解 BT 得到修正后的
// Nu/Sh, 最后用级数解重建内部温度分布, 返回传给载气的源项。

// Reynolds 液滴滑移 Reynolds 数, 气相密度取载气当地密度
func Reynolds(d *model.Droplet, c model.Carrier) float64 {
	return c.Rho * RelativeVelocity(d, c) * d.Diameter / c.Mu
}

// RelativeVelocity 液滴与载气的滑移速度模
func RelativeVelocity(d *model.Droplet, c model.Carrier) float64 {
	dx := c.Velocity[0] - d.Velocity[0]
	dy := c.Velocity[1] - d.Velocity[1]
	dz := c.Velocity[2] - d.Velocity[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// InitDroplet 注入时刻的液滴初始化: 内部温度均匀,
// 诊断量取静止蒸发的初值, 雅可比矩阵为单位阵
func InitDroplet(d *model.Droplet, fl fluid.Fluid, diameter, temperature, dt float64, nInt int) {
	// 容器槽位会被循环复用，先清掉上一个液滴的残留状态
	*d = model.Droplet{Profile: d.Profile}
	d.Diameter = diameter
	d.Density = fl.LiquidDensity(temperature)
	d.Mass = math.Pi / 6.0 * diameter * diameter * diameter * d.Density
	d.Components = 1
	d.Dt = dt
	if len(d.Profile) != nInt+1 {
		d.Profile = make([]float64, nInt+1)
	}
	for j := range d.Profile {
		d.Profile[j] = temperature
	}
	d.TAv = temperature
	d.Nu = 2.0
	d.LEff = fl.LatentHeat(temperature)
	InitJacobian(d)
}

// HeatMassStep 推进液滴热质状态一步。lambda 为长度等于特征值带数的
// 复用缓冲区, 传 nil 时内部分配。BT 不收敛时返回 ErrNoConvergence,
// 此时分布不更新
func HeatMassStep(d *model.Droplet, c model.Carrier, fl fluid.Fluid, lambda []float64) (model.Sources, error) {
	var src model.Sources
	if d.Components != 1 {
		log.WithField("components", d.Components).Warn("非单组分液滴, 结果不可信")
	}

	Tp := d.SurfaceTemperature()

	// 表面蒸气摩尔分数与质量分数, 分母保护下限
	xSurf := fl.SaturationPressure(Tp) / c.Pressure
	xsTot := xSurf*fl.MolWeight() + (1.0-xSurf)*model.AirMolWeight
	xsTot = math.Max(xsTot, model.DPMSmall)
	ySurf := xSurf * fl.MolWeight() / xsTot
	ysTot := math.Max(ySurf, model.DPMSmall)
	lEff := fl.LatentHeat(Tp)

	// 薄膜参考状态: 1/3 规则, 气相密度按理想气体
	tRef := (c.Temperature + 2.0*Tp) / 3.0
	rhoGas := c.Pressure / (model.RAir * tRef)
	cpVap := fl.VapourCp(tRef)
	diff := fl.BinaryDiffusivity(c.Pressure, tRef)
	kGas := c.TCond
	Sc := c.Mu / (rhoGas * diff)
	Pr := c.SHeat * c.Mu / kGas
	Re := d.Re

	// 传质: BM 直接可得
	bm := SpaldingBM(ysTot)
	shStar := SherwoodStar(Re, Sc, bm)
	sh := math.Log(1.0+bm) * shStar
	Dp := d.Diameter
	Ap := math.Pi * Dp * Dp
	totVapRate := Ap * diff * rhoGas * sh / Dp

	// 传热: BT 迭代
	coef := cpVap * rhoGas * diff / kGas * shStar
	bt, nuStar, err := SolveBT(Re, Pr, bm, coef)
	if err != nil {
		log.WithFields(log.Fields{
			"bm": bm, "bt": bt, "re": Re,
		}).Warn("BT 迭代不收敛, 跳过本步分布更新")
		return src, err
	}
	nu := Nusselt(bt, nuStar)

	// 液相物性取平均温度, 内部回流用等效导热系数近似
	viscL := fl.LiquidViscosity(d.TAv)
	kL := fl.LiquidConductivity(d.TAv)
	cpL := fl.LiquidCp(d.TAv)
	pe := 12.69 / 16.0 * d.Density * 0.5 * Dp * cpL / kL *
		RelativeVelocity(d, c) * c.Mu / viscL * math.Pow(Re, 1.0/3.0) / (1.0 + bm)
	kEff := (1.86 + 0.86*math.Tanh(2.225*math.Log10(pe/30.0))) * kL
	if math.Abs(pe) < 1e-12 {
		kEff = kL
	}

	// 有效环境温度吸收蒸发潜热, h0 为无量纲对流边界系数
	tEff := c.Temperature - totVapRate*lEff/(math.Pi*Dp*nu*kGas)
	h0 := kGas*nu*0.5/kEff - 1.0
	kappa := kEff / (cpL * d.Density * 0.25 * Dp * Dp)

	if lambda == nil {
		lambda = make([]float64, calCfg.NLambda)
	}
	Lambda(h0, lambda)
	RebuildProfile(d.Profile, lambda, h0, tEff, kappa, d.Dt)
	tAv := AverageTemperature(d.Profile)

	// 源项与诊断量
	src.Species = ySurf * totVapRate / ysTot
	src.Energy = nu * kGas * Ap / Dp * (c.Temperature - tAv)
	src.MTC = c.Rho * math.Pi * Dp * shStar * diff

	d.XSurf = xSurf
	d.YSurf = ySurf
	d.YsTot = ysTot
	d.LEff = lEff
	d.BM = bm
	d.BT = bt
	d.Nu = nu
	d.NuStar = nuStar
	d.Coef = coef
	d.D = diff
	d.KGas = kGas
	d.VapRate = totVapRate
	d.TAv = tAv
	d.HeatRate = src.Energy
	return src, nil
}
