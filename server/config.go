package server

import (
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

var srvCfg Config

type Config struct {
	Addr string

	// 历史记录容量
	HistorySize int

	// 默认单位制，si 或 imperial
	UnitSystem string

	ReadBufferSize  int
	WriteBufferSize int
}

func init() {
	file, err := ini.Load("conf/config.ini")
	if err != nil {
		log.Warn("配置文件读取错误，使用默认配置: ", err)
		file = ini.Empty()
	}

	loadCfg(file)
}

func loadCfg(file *ini.File) {
	srvCfg = Config{
		Addr:            file.Section("server").Key("Addr").MustString(":9000"),
		HistorySize:     file.Section("server").Key("HistorySize").MustInt(64),
		UnitSystem:      file.Section("server").Key("UnitSystem").MustString("si"),
		ReadBufferSize:  file.Section("server").Key("ReadBufferSize").MustInt(1024),
		WriteBufferSize: file.Section("server").Key("WriteBufferSize").MustInt(1024),
	}
}

// 监听地址
func Addr() string {
	return srvCfg.Addr
}

// websocket读缓冲区大小
func ReadBufferSize() int {
	return srvCfg.ReadBufferSize
}

// websocket写缓冲区大小
func WriteBufferSize() int {
	return srvCfg.WriteBufferSize
}
