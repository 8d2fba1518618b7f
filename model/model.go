package model

// 前端下发的环境参数
type Env struct {
	Fluid            string  `json:"fluid"`             // 液滴工质：water | dodecane | isooctane
	GasTemperature   float64 `json:"gas_temperature"`   // 环境气体温度，K
	GasPressure      float64 `json:"gas_pressure"`      // 环境气体压力，Pa
	GasVelocity      float64 `json:"gas_velocity"`      // 气流速度，m/s
	ShearRate        float64 `json:"shear_rate"`        // 剪切率 du/dy，1/s
	StartTemperature float64 `json:"start_temperature"` // 液滴初始温度，K
	Diameter         float64 `json:"diameter"`          // 液滴初始直径，m
	InjectionCount   int     `json:"injection_count"`   // 每个计算周期注入的液滴数
}

// 气相在液滴所在位置的状态快照，每步由 chamber 给出，计算过程中冻结
type Carrier struct {
	Temperature float64    // K
	Pressure    float64    // Pa
	Rho         float64    // kg/m^3
	Velocity    [3]float64 // m/s
	Mu          float64    // Pa s
	TCond       float64    // W/(m K)
	SHeat       float64    // J/(kg K)
	Yi          []float64  // 组分质量分数
	MolWeight   []float64  // 组分摩尔质量，kg/kmol
	Gradient    Gradients
}

// 气相速度梯度张量（二维）
type Gradients struct {
	DuDx float64
	DuDy float64
	DvDx float64
	DvDy float64
}

// 雅可比状态，FLA 的跨步持久状态
// J 为变形梯度矩阵，W 为其时间导数
type JacobianState struct {
	J11   float64 `json:"j11"`
	J12   float64 `json:"j12"`
	J21   float64 `json:"j21"`
	J22   float64 `json:"j22"`
	W11   float64 `json:"w11"`
	W12   float64 `json:"w12"`
	W21   float64 `json:"w21"`
	W22   float64 `json:"w22"`
	Det   float64 `json:"det"`    // 上一步行列式
	NP    float64 `json:"np"`     // 数密度 = 1/|Det|
	NSign int     `json:"n_sign"` // 行列式变号计数，单调不减
	Beta  float64 `json:"beta"`   // 1/tau
}

// 液滴的持久状态，跨时间步保留
type Droplet struct {
	// 运动学/物理量
	Diameter float64    // m
	Mass     float64    // kg
	Density  float64    // kg/m^3
	Velocity [3]float64 // m/s
	Re       float64
	Dt       float64 // 当前积分时间步长，s

	Components int // 组分数，本核心固定为 1

	// 径向温度分布，N_INT+1 个采样点，r_j = j/N_INT，末位为表面温度
	Profile []float64

	// 表面组分
	XSurf float64 // 液滴表面蒸气摩尔分数
	YSurf float64 // 液滴表面蒸气质量分数
	YsTot float64

	// 蒸发诊断量，每步重写
	BM      float64 // Spalding 传质数
	BT      float64 // 传热数
	LEff    float64 // 有效潜热，J/kg
	Nu      float64
	NuStar  float64
	Coef    float64
	D       float64 // 二元扩散系数，m^2/s
	KGas    float64 // 气相导热系数，W/(m K)
	VapRate float64 // 总蒸发速率，kg/s
	TAv     float64 // 体积平均温度，作为下一步输入

	HeatRate float64 // 对流换热速率 dh/dt，W

	// FLA 数密度加权的源项诊断
	HeatRateScaled float64
	VapRateScaled  float64

	Jacobian JacobianState
}

// 表面温度即径向分布的末位采样
func (d *Droplet) SurfaceTemperature() float64 {
	return d.Profile[len(d.Profile)-1]
}

// 某一步计算返回的源项，由宿主负责累加到气相
type Sources struct {
	Species float64 // 蒸气质量源，kg/s
	Energy  float64 // 能量源，W
	MTC     float64 // 传质系数
}

// 前后端通信消息结构
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}
