package document

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
	documents := r.Group("/documents")
	documents.Use(middleware.ContextLogger(logger))
	{
		documents.GET("",
			middleware.RateLimitByIP(5, 20),
			handler.GetAll,
		)

		documents.POST("",
			middleware.RateLimitByIP(1, 3),
			handler.Create,
		)
	}
}
