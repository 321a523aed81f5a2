package handlers

import (
	"cardoctor/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger retrieves the request-scoped zap logger from the gin context.
func getLogger(c *gin.Context) *zap.Logger {
	return utils.RequestLogger(c)
}
