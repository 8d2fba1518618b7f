package calculator

import (
	"time"

	log "github.com/sirupsen/logrus"
)

type CalcHub struct {
	// 液滴场推送
	Stop             chan struct{}
	PeriodCalcResult chan struct{}
	// 温度分布详情推送
	StopPushProfileSignalForRun  chan struct{}
	StopPushProfileSignalForPush chan struct{}
	StopSuccessForRun            chan struct{}
	StopSuccessForPush           chan struct{}
	PeriodPushProfile            chan struct{}
}

func NewCalcHub() *CalcHub {
	return &CalcHub{
		PeriodCalcResult: make(chan struct{}),

		PeriodPushProfile:            make(chan struct{}),
		StopPushProfileSignalForRun:  make(chan struct{}, 10),
		StopPushProfileSignalForPush: make(chan struct{}, 10),
		StopSuccessForRun:            make(chan struct{}, 10),
		StopSuccessForPush:           make(chan struct{}, 10),
	}
}

// 液滴场计算
func (ch *CalcHub) PushSignal() {
	ch.PeriodCalcResult <- struct{}{}
}

func (ch *CalcHub) StopSignal() {
	close(ch.Stop)
}

func (ch *CalcHub) StartSignal() {
	ch.Stop = make(chan struct{})
}

// 温度分布详情
func (ch *CalcHub) PushProfileSignal() {
	ch.PeriodPushProfile <- struct{}{}
}

func (ch *CalcHub) StopPushProfile() {
	ch.StopPushProfileSignalForRun <- struct{}{}
	<-ch.StopSuccessForRun
	ch.StopPushProfileSignalForPush <- struct{}{}
	<-ch.StopSuccessForPush
	log.Info("温度分布详情推送已停止")
}

// 温度分布周期性推送任务
func (ch *CalcHub) ProfileDetailRun() {
LOOP:
	for {
		select {
		case <-ch.StopPushProfileSignalForRun:
			ch.StopSuccessForRun <- struct{}{}
			break LOOP
		default:
			ch.PushProfileSignal()
			time.Sleep(1 * time.Second)
		}
	}
}
