package routes

import (
	"cardoctor/handlers"
	"cardoctor/middleware"
	"cardoctor/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter builds the gin engine with the global middleware chain and every route.
func NewRouter(logger *zap.Logger, hb *handlers.HandlerBundle) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger(logger))
	router.Use(utils.ErrorHandler())

	RegisterRoutes(router, hb)
	return router
}
