package server

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"ht/conduction"
	"ht/deque"
	"ht/material"
	"ht/model"
)

// 结果的单位串
const (
	unitK              = "W/(m*K)"
	unitR              = "K/W"
	unitResistivity    = "m*K/W"
	unitRValueSI       = "m^2*K/(W*inch)"
	unitRValueImperial = "ft^2*F*h/(BTU*inch)"
)

// Hub maintains the set of active clients and broadcasts messages to the clients.
type Hub struct {
	conn *websocket.Conn

	// 最近的换算历史
	history deque.Deque

	// request
	msg chan model.Msg
	// response
	computed chan model.Msg

	// 连接关闭信号
	done chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		history:  deque.NewArrDeque(srvCfg.HistorySize),
		msg:      make(chan model.Msg, 10),
		computed: make(chan model.Msg, 10),
		done:     make(chan struct{}),
	}
}

func (h *Hub) handleResponse() {
	for {
		select {
		case reply := <-h.computed:
			err := h.conn.WriteJSON(&reply)
			if err != nil {
				log.Error("err: ", err)
			}
		case <-h.done:
			return
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
}

func (h *Hub) handleRequest() {
	for {
		select {
		case msg := <-h.msg:
			h.computed <- h.dispatch(msg)
		case <-h.done:
			return
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
}

// 按请求类型计算并生成应答
func (h *Hub) dispatch(msg model.Msg) model.Msg {
	switch msg.Type {
	case "r_to_k":
		var req model.PlaneReq
		if err := json.Unmarshal([]byte(msg.Content), &req); err != nil {
			return errorMsg("请求参数解析失败: " + err.Error())
		}
		area := defaultArea(req.Area)
		if req.R <= 0 || req.Thickness <= 0 || area <= 0 {
			return errorMsg("r、thickness、area 必须为正数")
		}
		return h.reply(msg.Type, conduction.RToK(req.R, req.Thickness, area), unitK)
	case "k_to_r":
		var req model.PlaneReq
		if err := json.Unmarshal([]byte(msg.Content), &req); err != nil {
			return errorMsg("请求参数解析失败: " + err.Error())
		}
		area := defaultArea(req.Area)
		if req.K <= 0 || req.Thickness <= 0 || area <= 0 {
			return errorMsg("k、thickness、area 必须为正数")
		}
		return h.reply(msg.Type, conduction.KToR(req.K, req.Thickness, area), unitR)
	case "k_to_resistivity":
		var req model.ResistivityReq
		if err := json.Unmarshal([]byte(msg.Content), &req); err != nil {
			return errorMsg("请求参数解析失败: " + err.Error())
		}
		if req.K <= 0 {
			return errorMsg("k 必须为正数")
		}
		return h.reply(msg.Type, conduction.KToThermalResistivity(req.K), unitResistivity)
	case "resistivity_to_k":
		var req model.ResistivityReq
		if err := json.Unmarshal([]byte(msg.Content), &req); err != nil {
			return errorMsg("请求参数解析失败: " + err.Error())
		}
		if req.R <= 0 {
			return errorMsg("r 必须为正数")
		}
		return h.reply(msg.Type, conduction.ThermalResistivityToK(req.R), unitK)
	case "r_value_to_k":
		var req model.RValueReq
		if err := json.Unmarshal([]byte(msg.Content), &req); err != nil {
			return errorMsg("请求参数解析失败: " + err.Error())
		}
		si, ok := parseUnitSystem(req.UnitSystem)
		if !ok {
			return errorMsg("未知单位制: " + req.UnitSystem)
		}
		if req.RValue <= 0 {
			return errorMsg("r_value 必须为正数")
		}
		return h.reply(msg.Type, conduction.RValueToK(req.RValue, si), unitK)
	case "k_to_r_value":
		var req model.RValueReq
		if err := json.Unmarshal([]byte(msg.Content), &req); err != nil {
			return errorMsg("请求参数解析失败: " + err.Error())
		}
		si, ok := parseUnitSystem(req.UnitSystem)
		if !ok {
			return errorMsg("未知单位制: " + req.UnitSystem)
		}
		if req.K <= 0 {
			return errorMsg("k 必须为正数")
		}
		return h.reply(msg.Type, conduction.KToRValue(req.K, si), rValueUnit(si))
	case "r_cylinder":
		var req model.CylinderReq
		if err := json.Unmarshal([]byte(msg.Content), &req); err != nil {
			return errorMsg("请求参数解析失败: " + err.Error())
		}
		if req.Di <= 0 || req.Do <= req.Di {
			return errorMsg("直径必须满足 do > di > 0")
		}
		if req.K <= 0 || req.L <= 0 {
			return errorMsg("k、l 必须为正数")
		}
		return h.reply(msg.Type, conduction.RCylinder(req.Di, req.Do, req.K, req.L), unitR)
	case "material":
		var req model.MaterialReq
		if err := json.Unmarshal([]byte(msg.Content), &req); err != nil {
			return errorMsg("请求参数解析失败: " + err.Error())
		}
		return h.materialReply(req)
	case "history":
		return h.historyReply()
	default:
		log.Warn("no such type: ", msg.Type)
		return errorMsg("未知请求类型: " + msg.Type)
	}
}

// 计算成功后记录历史并生成应答
func (h *Hub) reply(reqType string, value float64, unit string) model.Msg {
	h.history.AddLast(model.Record{
		Type:  reqType,
		Value: value,
		Unit:  unit,
	})
	data, err := json.Marshal(model.Result{Value: value, Unit: unit})
	if err != nil {
		return errorMsg("应答编码失败: " + err.Error())
	}
	return model.Msg{
		Type:    reqType + "_result",
		Content: string(data),
	}
}

func (h *Hub) materialReply(req model.MaterialReq) model.Msg {
	m := material.NewMaterial(req.Number)
	if m == nil {
		return errorMsg("未知材料编号")
	}
	si, ok := parseUnitSystem(req.UnitSystem)
	if !ok {
		return errorMsg("未知单位制: " + req.UnitSystem)
	}
	res := model.MaterialResult{
		Number:      m.Number,
		Name:        m.Name,
		Lambda:      m.Lambda,
		Resistivity: m.Resistivity(),
		RValue:      m.RValue(si),
	}
	if req.Thickness > 0 {
		res.ROfSlab = m.ROfSlab(req.Thickness, defaultArea(req.Area))
	}
	data, err := json.Marshal(&res)
	if err != nil {
		return errorMsg("应答编码失败: " + err.Error())
	}
	return model.Msg{
		Type:    "material_result",
		Content: string(data),
	}
}

func (h *Hub) historyReply() model.Msg {
	res := model.HistoryResult{
		Records: make([]model.Record, 0, h.history.Size()),
	}
	h.history.Traverse(func(i int, record model.Record) {
		res.Records = append(res.Records, record)
	})
	data, err := json.Marshal(&res)
	if err != nil {
		return errorMsg("应答编码失败: " + err.Error())
	}
	return model.Msg{
		Type:    "history_result",
		Content: string(data),
	}
}

func errorMsg(content string) model.Msg {
	return model.Msg{
		Type:    "error",
		Content: content,
	}
}

// 面积为0时按单位面积处理
func defaultArea(area float64) float64 {
	if area == 0 {
		return 1
	}
	return area
}

// 解析单位制，空串按配置的默认值处理
func parseUnitSystem(s string) (si bool, ok bool) {
	if s == "" {
		s = srvCfg.UnitSystem
	}
	switch s {
	case model.UnitSystemSI:
		return true, true
	case model.UnitSystemImperial:
		return false, true
	default:
		return false, false
	}
}

func rValueUnit(si bool) string {
	if si {
		return unitRValueSI
	}
	return unitRValueImperial
}
