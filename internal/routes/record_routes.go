package routes

import (
	"github.com/gin-gonic/gin"

	"pkrms_db/internal/controllers"
)

func RecordRoutes(r *gin.Engine, d Deps) {
	records := controllers.NewRecordController(d.Service.Registry(), d.Store)

	api := r.Group("/api")
	{
		api.GET("/entities", records.ListEntities)
		api.GET("/records/:entity/:id", records.GetRecord)
		api.GET("/links/:link_no/:entity", records.ListByLink)
	}
}
