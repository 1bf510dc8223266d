package main

import (
	"net/http"

	"github.com/gorilla/websocket"

	"ht/server"
)

func main() {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  server.ReadBufferSize(),
		WriteBufferSize: server.WriteBufferSize(),
	}
	upgrader.CheckOrigin = func(r *http.Request) bool {
		return true
	}
	s := server.NewServer(server.Addr(), upgrader)
	s.Serve()
}
