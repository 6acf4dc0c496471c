package leave

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
	leaves := r.Group("/leaves")
	leaves.Use(middleware.ContextLogger(logger))
	{
		leaves.GET("",
			middleware.RateLimitByIP(5, 20),
			handler.GetAll,
		)

		leaves.POST("",
			middleware.RateLimitByIP(1, 3),
			handler.Create,
		)

		leaves.PATCH("/:employee/:applied_date",
			middleware.RateLimitByIP(1, 3),
			handler.Decide,
		)
	}
}
