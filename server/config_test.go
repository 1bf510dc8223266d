package server

import (
	"testing"

	"gopkg.in/ini.v1"
)

// 配置文件缺失时应使用默认值
func TestLoadCfgDefaults(t *testing.T) {
	loadCfg(ini.Empty())
	if srvCfg.Addr != ":9000" {
		t.Errorf("Addr = %q, want :9000", srvCfg.Addr)
	}
	if srvCfg.HistorySize != 64 {
		t.Errorf("HistorySize = %d, want 64", srvCfg.HistorySize)
	}
	if srvCfg.UnitSystem != "si" {
		t.Errorf("UnitSystem = %q, want si", srvCfg.UnitSystem)
	}
	if srvCfg.ReadBufferSize != 1024 || srvCfg.WriteBufferSize != 1024 {
		t.Errorf("buffer sizes = %d, %d, want 1024, 1024", srvCfg.ReadBufferSize, srvCfg.WriteBufferSize)
	}
}

// 导出的读取函数应与配置一致
func TestCfgAccessors(t *testing.T) {
	loadCfg(ini.Empty())
	if Addr() != srvCfg.Addr {
		t.Errorf("Addr() = %q, want %q", Addr(), srvCfg.Addr)
	}
	if ReadBufferSize() != srvCfg.ReadBufferSize {
		t.Errorf("ReadBufferSize() = %d, want %d", ReadBufferSize(), srvCfg.ReadBufferSize)
	}
	if WriteBufferSize() != srvCfg.WriteBufferSize {
		t.Errorf("WriteBufferSize() = %d, want %d", WriteBufferSize(), srvCfg.WriteBufferSize)
	}
}
