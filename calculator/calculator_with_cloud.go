package calculator

import (
	"math"
	"sync"
	"time"

	"dvap/chamber"
	"dvap/cloud"
	"dvap/fluid"
	"dvap/model"

	log "github.com/sirupsen/logrus"
)

// 蒸干判据: 直径小于该值的液滴从容器中移除
const minDiameter = 1e-7

type calculatorWithCloud struct {
	fl      fluid.Fluid
	chamber *chamber.Chamber
	cloud   *cloud.Cloud

	// 注入参数
	startTemperature float64
	diameter         float64
	injectCount      int

	// 当前步冻结的载气状态
	carrier model.Carrier

	calcHub *CalcHub
	e       *executorBaseOnRange

	isTail bool // 不再注入新液滴

	mu sync.Mutex // 保护push data时对液滴数据的并发访问
}

func NewCalculatorWithCloud() *calculatorWithCloud {
	c := &calculatorWithCloud{
		startTemperature: 300.0,
		diameter:         2e-5,
		injectCount:      calCfg.InjectCount,
	}
	fl, err := fluid.New(calCfg.Fluid)
	if err != nil {
		log.WithField("fluid", calCfg.Fluid).Fatal("工质初始化失败")
	}
	c.fl = fl
	c.chamber = chamber.NewChamber(1)
	c.chamber.SetVapourMolWeight(fl.MolWeight())
	c.cloud = cloud.NewCloud(calCfg.CloudCapacity)
	c.calcHub = NewCalcHub()
	c.e = newExecutorBaseOnRange(calCfg.Workers, c.stepRange)
	c.e.run()
	return c
}

func (c *calculatorWithCloud) GetCalcHub() *CalcHub {
	return c.calcHub
}

func (c *calculatorWithCloud) InitParameter(env model.Env) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if env.Fluid != "" && env.Fluid != c.fl.Name() {
		fl, err := fluid.New(env.Fluid)
		if err != nil {
			log.WithField("fluid", env.Fluid).Warn("未知工质, 保持原配置")
		} else {
			c.fl = fl
			c.chamber.SetVapourMolWeight(fl.MolWeight())
		}
	}
	c.chamber.SetGasConfig(env)
	if env.StartTemperature > 0 {
		c.startTemperature = env.StartTemperature
	}
	if env.Diameter > 0 {
		c.diameter = env.Diameter
	}
	if env.InjectionCount > 0 {
		c.injectCount = env.InjectionCount
	}
	log.WithFields(log.Fields{
		"fluid":             c.fl.Name(),
		"start_temperature": c.startTemperature,
		"diameter":          c.diameter,
		"inject_count":      c.injectCount,
	}).Info("注入参数初始化完成")
}

func (c *calculatorWithCloud) SetStartTemperature(startTemperature float64) {
	c.startTemperature = startTemperature
}

func (c *calculatorWithCloud) SetDiameter(diameter float64) {
	c.diameter = diameter
}

func (c *calculatorWithCloud) SetStateTail() {
	c.isTail = true
}

// worker 回调, 处理一个液滴索引区间
func (c *calculatorWithCloud) stepRange(t task) {
	c.cloud.TraverseRange(t.start, t.end, func(i int, d *model.Droplet) {
		d.Dt = t.deltaT
		c.stepOne(d)
	})
}

// 单液滴一步: 热质计算 + 轨迹映射雅可比推进 + 质量回缩
func (c *calculatorWithCloud) stepOne(d *model.Droplet) {
	d.Re = Reynolds(d, c.carrier)
	src, err := HeatMassStep(d, c.carrier, c.fl, nil)
	if err != nil {
		return
	}
	d.Mass -= src.Species * d.Dt
	if d.Mass < 0.0 {
		d.Mass = 0.0
	}
	d.Density = c.fl.LiquidDensity(d.TAv)
	d.Diameter = math.Cbrt(6.0 * d.Mass / (math.Pi * d.Density))

	FLAStep(d, c.carrier.Gradient, c.carrier.Mu)
	d.HeatRateScaled = d.HeatRate * d.Jacobian.NP
	d.VapRateScaled = d.VapRate * d.Jacobian.NP
}

func (c *calculatorWithCloud) Run() {
	duration := time.Duration(0)
LOOP:
	for {
		select {
		case <-c.calcHub.Stop:
			break LOOP
		default:
			c.mu.Lock()
			c.carrier = c.chamber.State()
			calcDuration := c.e.dispatchTask(calCfg.DeltaT, 0, c.cloud.Size())
			c.updateCloud()
			c.mu.Unlock()
			if calcDuration < 25*time.Millisecond {
				calcDuration = 25 * time.Millisecond
			}
			duration += calcDuration
			if duration > time.Second {
				c.calcHub.PushSignal()
				duration = time.Duration(0)
			}
		}
	}
}

// 每步结束后的容器维护: 移除蒸干的液滴并注入新液滴。
// 容器按注入顺序排列, 最早注入的在尾部, 先蒸干的也是它们
func (c *calculatorWithCloud) updateCloud() {
	for !c.cloud.IsEmpty() && c.cloud.Get(c.cloud.Size()-1).Diameter < minDiameter {
		c.cloud.RemoveLast()
	}
	if c.isTail {
		return
	}
	for i := 0; i < c.injectCount; i++ {
		if c.cloud.IsFull() {
			c.cloud.RemoveLast()
		}
		c.cloud.AddFirst(func(d *model.Droplet) {
			InitDroplet(d, c.fl, c.diameter, c.startTemperature, calCfg.DeltaT, calCfg.NInt)
		})
	}
}
