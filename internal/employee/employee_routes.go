package employee

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	logger *zap.Logger,
) {
	employees := r.Group("/employees")
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.GET("",
			middleware.RateLimitByIP(5, 20),
			handler.GetAll,
		)

		employees.GET("/:email",
			middleware.RateLimitByIP(5, 20),
			handler.GetByEmail,
		)

		employees.GET("/:email/photo",
			middleware.RateLimitByIP(5, 20),
			handler.Photo,
		)

		employees.POST("",
			middleware.RateLimitByIP(0.5, 2),
			handler.Create,
		)

		employees.PUT("/:email",
			middleware.RateLimitByIP(1, 3),
			handler.Update,
		)

		employees.PUT("/:email/photo",
			middleware.RateLimitByIP(0.5, 2),
			handler.ReplacePhoto,
		)

		employees.DELETE("/:email",
			middleware.RateLimitByIP(0.2, 1),
			handler.Delete,
		)
	}
}
