package routes

import (
	"github.com/gin-gonic/gin"

	"pkrms_db/internal/controllers"
	"pkrms_db/internal/middleware"
)

func WebSocketRoutes(r *gin.Engine, d Deps) {
	if d.Hub == nil {
		return
	}
	feed := controllers.NewFeedController(d.Hub, middleware.OriginChecker(d.CORSOrigins))

	wsRoutes := r.Group("/ws")
	{
		wsRoutes.GET("/uploads", feed.Subscribe)
	}
}
