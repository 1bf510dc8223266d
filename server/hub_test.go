package server

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"ht/model"
)

func result(t *testing.T, reply model.Msg, wantType string) model.Result {
	t.Helper()
	if reply.Type != wantType {
		t.Fatalf("reply.Type = %q (%s), want %q", reply.Type, reply.Content, wantType)
	}
	var res model.Result
	if err := json.Unmarshal([]byte(reply.Content), &res); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	return res
}

func TestDispatchRToK(t *testing.T) {
	h := NewHub()
	reply := h.dispatch(model.Msg{Type: "r_to_k", Content: `{"r":0.05,"thickness":0.025}`})
	res := result(t, reply, "r_to_k_result")
	if res.Value != 0.5 || res.Unit != unitK {
		t.Errorf("got %v %s, want 0.5 %s", res.Value, res.Unit, unitK)
	}
}

func TestDispatchKToR(t *testing.T) {
	h := NewHub()
	reply := h.dispatch(model.Msg{Type: "k_to_r", Content: `{"k":0.5,"thickness":0.025,"area":1}`})
	res := result(t, reply, "k_to_r_result")
	if res.Value != 0.05 || res.Unit != unitR {
		t.Errorf("got %v %s, want 0.05 %s", res.Value, res.Unit, unitR)
	}
}

func TestDispatchResistivity(t *testing.T) {
	h := NewHub()
	reply := h.dispatch(model.Msg{Type: "k_to_resistivity", Content: `{"k":0.25}`})
	if res := result(t, reply, "k_to_resistivity_result"); res.Value != 4.0 {
		t.Errorf("k_to_resistivity = %v, want 4.0", res.Value)
	}
	reply = h.dispatch(model.Msg{Type: "resistivity_to_k", Content: `{"r":4}`})
	if res := result(t, reply, "resistivity_to_k_result"); res.Value != 0.25 {
		t.Errorf("resistivity_to_k = %v, want 0.25", res.Value)
	}
}

// 单位制为空时按默认配置处理
func TestDispatchRValueDefaultUnitSystem(t *testing.T) {
	h := NewHub()
	reply := h.dispatch(model.Msg{Type: "r_value_to_k", Content: `{"r_value":0.12}`})
	res := result(t, reply, "r_value_to_k_result")
	want := 0.2116666666666667
	if math.Abs(res.Value-want) > 1e-12 {
		t.Errorf("r_value_to_k = %v, want %v", res.Value, want)
	}
}

func TestDispatchRValueImperial(t *testing.T) {
	h := NewHub()
	reply := h.dispatch(model.Msg{Type: "r_value_to_k", Content: `{"r_value":0.71,"unit_system":"imperial"}`})
	res := result(t, reply, "r_value_to_k_result")
	want := 0.20313787163983468
	if math.Abs(res.Value-want) > 1e-12 {
		t.Errorf("r_value_to_k imperial = %v, want %v", res.Value, want)
	}
}

func TestDispatchKToRValueUnit(t *testing.T) {
	h := NewHub()
	reply := h.dispatch(model.Msg{Type: "k_to_r_value", Content: `{"k":0.5,"unit_system":"imperial"}`})
	res := result(t, reply, "k_to_r_value_result")
	if res.Unit != unitRValueImperial {
		t.Errorf("unit = %q, want %q", res.Unit, unitRValueImperial)
	}
}

func TestDispatchRCylinder(t *testing.T) {
	h := NewHub()
	reply := h.dispatch(model.Msg{Type: "r_cylinder", Content: `{"di":0.9,"do":1.0,"k":20,"l":10}`})
	res := result(t, reply, "r_cylinder_result")
	want := 8.38432343682705e-05
	if math.Abs(res.Value-want) > 1e-16 {
		t.Errorf("r_cylinder = %v, want %v", res.Value, want)
	}
}

// 非法直径应返回错误应答而不是非有限值
func TestDispatchRCylinderInvalid(t *testing.T) {
	h := NewHub()
	reply := h.dispatch(model.Msg{Type: "r_cylinder", Content: `{"di":1.0,"do":1.0,"k":20,"l":10}`})
	if reply.Type != "error" {
		t.Errorf("reply.Type = %q, want error", reply.Type)
	}
}

func TestDispatchMaterial(t *testing.T) {
	h := NewHub()
	reply := h.dispatch(model.Msg{Type: "material", Content: `{"number":1,"thickness":0.05}`})
	if reply.Type != "material_result" {
		t.Fatalf("reply.Type = %q (%s), want material_result", reply.Type, reply.Content)
	}
	var res model.MaterialResult
	if err := json.Unmarshal([]byte(reply.Content), &res); err != nil {
		t.Fatalf("unmarshal material result: %v", err)
	}
	if res.Lambda != 0.04 {
		t.Errorf("lambda = %v, want 0.04", res.Lambda)
	}
	want := 0.05 / 0.04
	if math.Abs(res.ROfSlab-want) > 1e-12 {
		t.Errorf("r_of_slab = %v, want %v", res.ROfSlab, want)
	}
}

func TestDispatchHistory(t *testing.T) {
	h := NewHub()
	h.dispatch(model.Msg{Type: "r_to_k", Content: `{"r":0.05,"thickness":0.025}`})
	h.dispatch(model.Msg{Type: "k_to_resistivity", Content: `{"k":0.25}`})
	reply := h.dispatch(model.Msg{Type: "history"})
	if reply.Type != "history_result" {
		t.Fatalf("reply.Type = %q, want history_result", reply.Type)
	}
	var res model.HistoryResult
	if err := json.Unmarshal([]byte(reply.Content), &res); err != nil {
		t.Fatalf("unmarshal history: %v", err)
	}
	if len(res.Records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(res.Records))
	}
	if res.Records[0].Type != "r_to_k" || res.Records[1].Type != "k_to_resistivity" {
		t.Errorf("record types = %q, %q", res.Records[0].Type, res.Records[1].Type)
	}
}

// 连接关闭后两个处理协程应退出
func TestHubStopsOnDone(t *testing.T) {
	h := NewHub()
	exited := make(chan struct{}, 2)
	go func() {
		h.handleRequest()
		exited <- struct{}{}
	}()
	go func() {
		h.handleResponse()
		exited <- struct{}{}
	}()
	close(h.done)
	for i := 0; i < 2; i++ {
		select {
		case <-exited:
		case <-time.After(time.Second):
			t.Fatal("goroutine did not exit after done closed")
		}
	}
}

func TestDispatchUnknownType(t *testing.T) {
	h := NewHub()
	reply := h.dispatch(model.Msg{Type: "bogus"})
	if reply.Type != "error" {
		t.Errorf("reply.Type = %q, want error", reply.Type)
	}
}
