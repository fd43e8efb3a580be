package handler

import (
	"time"

	"github.com/2001Hector/api-movil/internal/apierror"
	"github.com/2001Hector/api-movil/internal/dto"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Health answers the liveness probe with a trivial query so a broken
// database connection shows up here before it shows up in the app.
func Health(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var one int
		if err := db.WithContext(c.Request.Context()).Raw("SELECT 1").Scan(&one).Error; err != nil {
			respondError(c, apierror.Internal("Error de base de datos: "+err.Error()))
			return
		}
		respond(c, dto.HealthResponse{
			Status:    "API funcionando",
			Timestamp: time.Now().Format("2006-01-02 15:04:05"),
		})
	}
}
