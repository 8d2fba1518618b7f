package calculator

import (
	"dvap/model"
)

// 推送给前端的液滴场快照, 下标 0 为最新注入的液滴
type DropletFieldData struct {
	Count    int       `json:"count"`
	Fluid    string    `json:"fluid"`
	Diameter []float64 `json:"diameter"`
	TAv      []float64 `json:"t_av"`
	TSurf    []float64 `json:"t_surf"`
	BM       []float64 `json:"bm"`
	BT       []float64 `json:"bt"`
	Nu       []float64 `json:"nu"`
	VapRate  []float64 `json:"vap_rate"`
	NP       []float64 `json:"np"`
	NSign    []int     `json:"n_sign"`
	Beta     []float64 `json:"beta"`
}

// 单个液滴的径向温度分布详情, 取最早注入(历史最长)的液滴
type ProfileData struct {
	Count   int       `json:"count"`
	TAv     float64   `json:"t_av"`
	Profile []float64 `json:"profile"`
}

func (c *calculatorWithCloud) BuildData() *DropletFieldData {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := c.cloud.Size()
	data := &DropletFieldData{
		Count:    n,
		Fluid:    c.fl.Name(),
		Diameter: make([]float64, n),
		TAv:      make([]float64, n),
		TSurf:    make([]float64, n),
		BM:       make([]float64, n),
		BT:       make([]float64, n),
		Nu:       make([]float64, n),
		VapRate:  make([]float64, n),
		NP:       make([]float64, n),
		NSign:    make([]int, n),
		Beta:     make([]float64, n),
	}
	c.cloud.Traverse(func(i int, d *model.Droplet) {
		data.Diameter[i] = d.Diameter
		data.TAv[i] = d.TAv
		data.TSurf[i] = d.SurfaceTemperature()
		data.BM[i] = d.BM
		data.BT[i] = d.BT
		data.Nu[i] = d.Nu
		data.VapRate[i] = d.VapRate
		data.NP[i] = d.Jacobian.NP
		data.NSign[i] = d.Jacobian.NSign
		data.Beta[i] = d.Jacobian.Beta
	})
	return data
}

func (c *calculatorWithCloud) BuildProfileData() *ProfileData {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := c.cloud.Size()
	data := &ProfileData{Count: n}
	if n == 0 {
		return data
	}
	d := c.cloud.Get(n - 1)
	data.TAv = d.TAv
	data.Profile = make([]float64, len(d.Profile))
	copy(data.Profile, d.Profile)
	return data
}
