package ws

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/ngtlinh/edupanel-backend/utils"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // chỉ để phát triển, nên giới hạn ở production
	},
}

// gửi message dạng JSON qua WebSocket
func sendJSON(conn *websocket.Conn, data interface{}) {
	msg, err := json.Marshal(data)
	if err != nil {
		log.Println("Lỗi JSON marshal:", err)
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
		log.Println("Lỗi gửi message:", err)
	}
}

// WebSocket cho lớp học: relay annotation giữa các màn hình cùng unit.
// Token truyền qua query vì browser không set được header cho WS.
func HandleClassroomWebSocket(c *gin.Context) {
	unitID := c.Param("unitId")
	token := c.Query("token")

	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Thiếu token"})
		return
	}
	claims, err := utils.VerifyToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token không hợp lệ hoặc hết hạn"})
		return
	}

	userID := claims.UserID
	log.Printf("Classroom WS connected: unitID=%s, userID=%s\n", unitID, userID)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("WebSocket upgrade thất bại:", err)
		return
	}
	H.Register(unitID, conn)
	defer H.Unregister(unitID, conn)

	sendJSON(conn, ClassroomEvent{Type: "connected", UnitID: unitID})

	// Đọc event từ client và relay nguyên vẹn cho cả phòng.
	// Server không parse payload nét vẽ, cũng không lưu gì cả.
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			break
		}

		var event ClassroomEvent
		if err := json.Unmarshal(msg, &event); err != nil {
			continue // bỏ qua message không đúng format
		}
		event.UnitID = unitID
		event.Sender = userID

		data, err := json.Marshal(event)
		if err != nil {
			continue
		}
		H.Broadcast(unitID, conn, data)
	}

	log.Printf("Classroom WS disconnected: unitID=%s, userID=%s\n", unitID, userID)
	conn.Close()
}
