package server

import (
	"encoding/json"
	"time"

	"dvap/calculator"
	"dvap/model"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

// Hub 维护单个前端连接, 负责请求分发与数据推送。
// conn 的全部写操作都收拢在 handleResponse 协程里。
type Hub struct {
	c    calculator.Calculator
	conn *websocket.Conn
	// request
	msg chan model.Msg
	// response
	envSet  chan model.Msg
	started chan model.Msg
	stopped chan model.Msg
	tailSet chan model.Msg
	pushed  chan model.Msg

	running bool
}

func NewHub() *Hub {
	return &Hub{
		msg:     make(chan model.Msg, 10),
		envSet:  make(chan model.Msg, 10),
		started: make(chan model.Msg, 10),
		stopped: make(chan model.Msg, 10),
		tailSet: make(chan model.Msg, 10),
		pushed:  make(chan model.Msg, 10),
	}
}

func (h *Hub) handleResponse() {
	for {
		select {
		case reply := <-h.envSet:
			h.write(reply)
		case reply := <-h.started:
			h.write(reply)
		case reply := <-h.stopped:
			h.write(reply)
		case reply := <-h.tailSet:
			h.write(reply)
		case reply := <-h.pushed:
			h.write(reply)
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
}

func (h *Hub) write(reply model.Msg) {
	err := h.conn.WriteJSON(&reply)
	if err != nil {
		log.WithField("err", err).Warn("连接写入失败")
	}
}

func (h *Hub) handleRequest() {
	for {
		select {
		case msg := <-h.msg:
			switch msg.Type {
			case "env":
				var env model.Env
				err := json.Unmarshal([]byte(msg.Content), &env)
				if err != nil {
					log.WithField("err", err).Warn("环境参数解析失败")
					break
				}
				h.c.InitParameter(env)
				h.envSet <- model.Msg{
					Type:    "envSet",
					Content: "env is set",
				}
			case "start":
				if h.running {
					break
				}
				h.running = true
				h.c.GetCalcHub().StartSignal()
				go h.c.Run()
				go h.pushDropletField()
				h.started <- model.Msg{
					Type: "started",
				}
			case "stop":
				if !h.running {
					break
				}
				h.running = false
				h.c.GetCalcHub().StopSignal()
				h.stopped <- model.Msg{
					Type:    "stopped",
					Content: "stopped",
				}
			case "tail":
				h.c.SetStateTail()
				h.tailSet <- model.Msg{
					Type:    "tailSet",
					Content: "no more droplets",
				}
			case "startPushProfile":
				go h.c.GetCalcHub().ProfileDetailRun()
				go h.pushProfile()
			case "stopPushProfile":
				h.c.GetCalcHub().StopPushProfile()
			default:
				log.WithField("type", msg.Type).Warn("未知的消息类型")
			}
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
}

// 计算周期结束后推送液滴场快照
func (h *Hub) pushDropletField() {
	calcHub := h.c.GetCalcHub()
	for {
		select {
		case <-calcHub.PeriodCalcResult:
			data, err := json.Marshal(h.c.BuildData())
			if err != nil {
				log.WithField("err", err).Error("液滴场数据序列化失败")
				break
			}
			h.pushed <- model.Msg{
				Type:    "data",
				Content: string(data),
			}
		case <-calcHub.Stop:
			return
		}
	}
}

// 周期性推送单液滴温度分布详情
func (h *Hub) pushProfile() {
	calcHub := h.c.GetCalcHub()
	for {
		select {
		case <-calcHub.PeriodPushProfile:
			data, err := json.Marshal(h.c.BuildProfileData())
			if err != nil {
				log.WithField("err", err).Error("温度分布数据序列化失败")
				break
			}
			h.pushed <- model.Msg{
				Type:    "profile",
				Content: string(data),
			}
		case <-calcHub.StopPushProfileSignalForPush:
			calcHub.StopSuccessForPush <- struct{}{}
			return
		}
	}
}
