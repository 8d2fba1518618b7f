package calculator

import (
	"time"
)

// 基于液滴索引区间的任务分配: 主协程把 [first,last) 切成
// 连续区间下发给固定数量的 worker, 等全部完成后返回。
// 一次 dispatch 之内各 worker 的区间互不重叠, 无须加锁。

type task struct {
	start  int
	end    int
	deltaT float64
}

type executorBaseOnRange struct {
	workers      int
	f            func(t task)
	dispatchChan chan task
	doneSoFar    chan struct{}
	finish       chan struct{}
	start        chan task
}

func newExecutorBaseOnRange(workers int, f func(t task)) *executorBaseOnRange {
	if workers < 1 {
		workers = 1
	}
	return &executorBaseOnRange{
		workers:      workers,
		f:            f,
		dispatchChan: make(chan task, 50),
		doneSoFar:    make(chan struct{}, 50),
		finish:       make(chan struct{}, 1),
		start:        make(chan task, 1),
	}
}

// dispatchTask 下发一轮计算并阻塞到全部区间处理完, 返回耗时
func (e *executorBaseOnRange) dispatchTask(deltaT float64, first, last int) time.Duration {
	start := time.Now()
	e.start <- task{start: first, end: last, deltaT: deltaT}
	<-e.finish
	return time.Since(start)
}

func (e *executorBaseOnRange) run() {
	totalTasks := 0
	doneSoFar := 0
	go func() {
		for {
			select {
			case tasks := <-e.start:
				total := tasks.end - tasks.start
				if total == 0 {
					e.finish <- struct{}{}
					break
				}
				chunk := total / e.workers
				if total%e.workers != 0 {
					chunk++
				}
				totalTasks = 0
				for start := tasks.start; start < tasks.end; start += chunk {
					end := start + chunk
					if end > tasks.end {
						end = tasks.end
					}
					e.dispatchChan <- task{start: start, end: end, deltaT: tasks.deltaT}
					totalTasks++
				}
			case <-e.doneSoFar:
				doneSoFar++
				if doneSoFar == totalTasks {
					e.finish <- struct{}{}
					doneSoFar = 0
				}
			default:
				time.Sleep(1 * time.Millisecond)
			}
		}
	}()

	for i := 0; i < e.workers; i++ {
		go func() {
			for {
				select {
				case t := <-e.dispatchChan:
					e.f(t)
					e.doneSoFar <- struct{}{}
				default:
					time.Sleep(1 * time.Millisecond)
				}
			}
		}()
	}
}
