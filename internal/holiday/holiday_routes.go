package holiday

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
	holidays := r.Group("/holidays")
	holidays.Use(middleware.ContextLogger(logger))
	{
		holidays.GET("",
			middleware.RateLimitByIP(5, 20),
			handler.GetAll,
		)

		holidays.POST("",
			middleware.RateLimitByIP(1, 3),
			handler.Create,
		)

		holidays.PUT("/:name/:date",
			middleware.RateLimitByIP(1, 3),
			handler.Update,
		)

		holidays.DELETE("/:name/:date",
			middleware.RateLimitByIP(0.5, 2),
			handler.Delete,
		)
	}
}
