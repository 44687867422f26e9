package handlers

import (
	"net/http"
	"sync"

	"github.com/FahadTahat/btec-companion-backend/internal/models"
	"github.com/FahadTahat/btec-companion-backend/pkg/logger"
	"github.com/FahadTahat/btec-companion-backend/pkg/utils"
	"github.com/gin-gonic/gin"
	socketio "github.com/googollee/go-socket.io"
	"github.com/googollee/go-socket.io/engineio"
	"github.com/googollee/go-socket.io/engineio/transport"
	"github.com/googollee/go-socket.io/engineio/transport/polling"
	"github.com/googollee/go-socket.io/engineio/transport/websocket"
)

var SocketServer *socketio.Server

// Presence tracking
var (
	onlineUsers   = make(map[string]string) // userId -> socketId
	onlineUsersMu sync.RWMutex
)

// GetOnlineUsers returns list of online user IDs
func GetOnlineUsers() []string {
	onlineUsersMu.RLock()
	defer onlineUsersMu.RUnlock()

	users := make([]string, 0, len(onlineUsers))
	for userId := range onlineUsers {
		users = append(users, userId)
	}
	return users
}

// IsUserOnline checks if a user is online
func IsUserOnline(userId string) bool {
	onlineUsersMu.RLock()
	defer onlineUsersMu.RUnlock()
	_, exists := onlineUsers[userId]
	return exists
}

// BroadcastChatMessage relays a freshly persisted message to everyone in the
// room. The REST handler is the single write path; the socket only fans out.
func BroadcastChatMessage(room string, msg models.ChatMessage) {
	if SocketServer != nil {
		SocketServer.BroadcastToRoom("/", "room:"+room, "chat_message", msg)
	}
}

// SendNotificationToUser sends a real-time notification to a specific user
func SendNotificationToUser(userId string, notification interface{}) {
	if SocketServer != nil {
		SocketServer.BroadcastToRoom("/", userId, "notification", notification)
	}
}

// BroadcastPresenceUpdate broadcasts user online/offline status to all clients
func BroadcastPresenceUpdate(userId string, isOnline bool) {
	if SocketServer != nil {
		data := map[string]interface{}{
			"userId":   userId,
			"isOnline": isOnline,
		}
		SocketServer.BroadcastToRoom("/", "presence", "presence_update", data)
	}
}

func InitSocketServer() *socketio.Server {
	server := socketio.NewServer(&engineio.Options{
		Transports: []transport.Transport{
			&websocket.Transport{
				CheckOrigin: func(r *http.Request) bool { return true },
			},
			&polling.Transport{
				CheckOrigin: func(r *http.Request) bool { return true },
			},
		},
	})

	server.OnConnect("/", func(s socketio.Conn) error {
		s.SetContext("")
		url := s.URL()

		// Token arrives as a query param; most reliable for the ws handshake.
		token := url.Query().Get("token")
		if token == "" {
			token = url.Query().Get("auth_token") // Fallback
		}

		if token == "" {
			logger.Warn().Str("socket_id", s.ID()).Msg("Socket connection rejected: no token")
			return http.ErrNoCookie
		}

		claims, err := utils.ValidateToken(token)
		if err != nil {
			logger.Warn().Str("socket_id", s.ID()).Msg("Socket connection rejected: invalid token")
			return err
		}

		userId := claims.UserID
		s.SetContext(userId)

		onlineUsersMu.Lock()
		onlineUsers[userId] = s.ID()
		onlineUsersMu.Unlock()

		// Personal room for notifications, community room for chat fan-out,
		// presence room for online status.
		s.Join(userId)
		s.Join("room:community")
		s.Join("presence")

		BroadcastPresenceUpdate(userId, true)
		s.Emit("online_users", GetOnlineUsers())

		logger.Debug().Str("socket_id", s.ID()).Str("user_id", userId).Msg("Socket connected")
		return nil
	})

	server.OnEvent("/", "join_room", func(s socketio.Conn, room string) {
		if room != "" {
			s.Join("room:" + room)
		}
	})

	server.OnEvent("/", "leave_room", func(s socketio.Conn, room string) {
		if room != "" {
			s.Leave("room:" + room)
		}
	})

	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		userId, _ := s.Context().(string)
		if userId == "" {
			return
		}

		onlineUsersMu.Lock()
		// Only clear presence if this socket is the one we tracked; the user
		// may have reconnected from another tab.
		if onlineUsers[userId] == s.ID() {
			delete(onlineUsers, userId)
		}
		stillOnline := false
		if _, ok := onlineUsers[userId]; ok {
			stillOnline = true
		}
		onlineUsersMu.Unlock()

		if !stillOnline {
			BroadcastPresenceUpdate(userId, false)
		}
	})

	server.OnError("/", func(s socketio.Conn, e error) {
		logger.Warn().Err(e).Msg("Socket error")
	})

	go func() {
		if err := server.Serve(); err != nil {
			logger.Error().Err(err).Msg("Socket server stopped")
		}
	}()

	SocketServer = server
	return server
}

// SocketHandler wraps the socket.io server for gin
func SocketHandler(server *socketio.Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		server.ServeHTTP(c.Writer, c.Request)
	}
}
