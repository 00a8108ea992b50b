package routes

import (
	"github.com/gin-gonic/gin"

	"pkrms_db/internal/controllers"
)

func UploadRoutes(r *gin.Engine, d Deps) {
	uploads := controllers.NewUploadController(d.Service, d.MaxBodyBytes)

	api := r.Group("/api")
	{
		api.POST("/upload-data/", uploads.Upload)
	}
}
