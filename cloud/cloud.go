/**
 *
 * 利用数组实现液滴云容器：计算过程中主要消耗在于遍历液滴逐个积分，
 * 数组具有更好的局部性，有利于计算速度的提升。
 * 头部注入新液滴（AddFirst），尾部移除驻留时间最长/已蒸发完的液滴
 * （RemoveLast），下标 0 始终是最新注入的液滴。
 *
 */

package cloud

import (
	"dvap/model"
)

const (
	// 数组大小基数
	base = 8
)

type Cloud struct {
	arr []model.Droplet

	// 头部位置，下标 0 对应的物理位置
	head int

	// 元素个数
	size int

	// 容量
	capacity int
}

// 工厂方法
func NewCloud(capacity int) *Cloud {
	remainder := capacity % base
	if remainder != 0 {
		capacity = capacity - remainder + base
	}
	return &Cloud{
		arr:      make([]model.Droplet, capacity),
		head:     0,
		size:     0,
		capacity: capacity,
	}
}

func (c *Cloud) Size() int {
	return c.size
}

func (c *Cloud) Capacity() int {
	return c.capacity
}

func (c *Cloud) IsFull() bool {
	return c.size == c.capacity
}

func (c *Cloud) IsEmpty() bool {
	return c.size == 0
}

// 获取队列中对应下标的液滴
func (c *Cloud) Get(i int) *model.Droplet {
	if i >= c.size {
		panic("index out of length")
	}
	return &c.arr[(c.head+i)%c.capacity]
}

// 在头部注入一个液滴，init 负责初始化其状态
func (c *Cloud) AddFirst(init func(d *model.Droplet)) bool {
	if c.IsFull() {
		return false
	}
	c.head = (c.head - 1 + c.capacity) % c.capacity
	c.size++
	init(&c.arr[c.head])
	return true
}

// 在尾部移除一个液滴
func (c *Cloud) RemoveLast() {
	if !c.IsEmpty() {
		c.size--
	}
}

// 在头部移除一个液滴
func (c *Cloud) RemoveFirst() {
	if !c.IsEmpty() {
		c.head = (c.head + 1) % c.capacity
		c.size--
	}
}

// 正向遍历
func (c *Cloud) Traverse(f func(i int, d *model.Droplet)) {
	for i := 0; i < c.size; i++ {
		f(i, &c.arr[(c.head+i)%c.capacity])
	}
}

// 遍历 [start, end) 区间，executor 按区间分派任务
func (c *Cloud) TraverseRange(start, end int, f func(i int, d *model.Droplet)) {
	if end > c.size {
		end = c.size
	}
	for i := start; i < end; i++ {
		f(i, &c.arr[(c.head+i)%c.capacity])
	}
}
