package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/sebitservices/SaborHub-sub000/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}
var clients = make(map[*websocket.Conn]bool)
var mu sync.Mutex

func HandleWebSocket() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Println("error during connection upgrade:", err)
			return
		}
		defer conn.Close()

		mu.Lock()
		clients[conn] = true
		mu.Unlock()

		for {
			_, _, err := conn.ReadMessage()
			if err != nil {
				mu.Lock()
				delete(clients, conn)
				mu.Unlock()
				break
			}
		}
	}
}

// notifyClients broadcasts an order/table lifecycle event to every
// connected staff client.
func notifyClients(notification models.Notification) {
	mu.Lock()
	defer mu.Unlock()

	messageBytes, err := json.Marshal(notification)
	if err != nil {
		log.Println("error marshaling notification:", err)
		return
	}
	for client := range clients {
		err := client.WriteMessage(websocket.TextMessage, messageBytes)
		if err != nil {
			log.Println("error writing message:", err)
			client.Close()
			delete(clients, client)
		}
	}
}
