package tracking

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"fleetops/internal/config"
	"fleetops/internal/domain/user"
	"fleetops/internal/logger"
	"fleetops/pkg/utils"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Handler serves the live-tracking WebSocket endpoint. Browsers cannot set
// an Authorization header on a WebSocket handshake, so the token travels in
// a query parameter.
type Handler struct {
	hub *Hub
	cfg *config.Config
}

func NewHandler(hub *Hub, cfg *config.Config) *Handler {
	return &Handler{hub: hub, cfg: cfg}
}

func (h *Handler) HandleTracking(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Missing authentication token")
		return
	}

	claims, err := utils.ValidateToken(token, h.cfg.JWT.Secret)
	if err != nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	if claims.Role != user.RoleAdmin && claims.Role != user.RoleDispatcher {
		utils.ErrorResponse(c, http.StatusForbidden, "Insufficient permissions")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Error("Failed to upgrade tracking connection", zap.Error(err))
		return
	}
	defer conn.Close()

	h.hub.Register(conn)
	defer h.hub.Unregister(conn)

	logger.Info("Tracking client connected",
		zap.String("user_id", claims.UserID.String()),
		zap.String("role", claims.Role),
	)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("Tracking connection read error", zap.Error(err))
			}
			break
		}
	}
}
