package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"pkrms_db/internal/hub"
)

// FeedController streams finished upload summaries over websockets.
type FeedController struct {
	hub      *hub.UploadHub
	upgrader websocket.Upgrader
}

// NewFeedController builds a controller whose upgrader accepts the origins
// checkOrigin allows.
func NewFeedController(h *hub.UploadHub, checkOrigin func(origin string) bool) *FeedController {
	return &FeedController{
		hub: h,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || checkOrigin(origin)
			},
		},
	}
}

// Subscribe upgrades the connection and registers it with the hub.
// @Summary Upload activity feed
// @Produce json
// @Router /ws/uploads [get]
// @Param admin_code query string false "Only batches touching this admin code"
func (fc *FeedController) Subscribe(c *gin.Context) {
	adminCode := c.Query("admin_code")
	if adminCode != "" {
		if _, err := strconv.ParseUint(adminCode, 10, 64); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "admin_code must be numeric"})
			return
		}
	}

	conn, err := fc.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logrus.WithError(err).Error("Failed to upgrade WebSocket connection.")
		return
	}
	defer conn.Close()

	client := fc.hub.Register(conn, adminCode)
	defer fc.hub.Unregister(client)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logrus.WithField("admin_code", adminCode).Info("Upload feed WebSocket closed.")
			} else {
				logrus.WithError(err).WithField("conn_ptr", fmt.Sprintf("%p", conn)).Warn("Error reading from upload feed WebSocket.")
			}
			return
		}
		logrus.WithField("admin_code", adminCode).Debug("Upload feed client sent unexpected message. Ignoring.")
	}
}
