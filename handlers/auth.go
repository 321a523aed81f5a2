package handlers

import (
	"net/http"

	"cardoctor/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TokenGenerator signs a claim set.
type TokenGenerator interface {
	GenerateToken(payload map[string]interface{}) (string, error)
}

type AuthHandler struct {
	Tokens TokenGenerator
}

func NewAuthHandler(tokens TokenGenerator) *AuthHandler {
	return &AuthHandler{Tokens: tokens}
}

// IssueToken handles POST /jwt. The JSON object body becomes the claim set;
// an empty body signs an empty claim set.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	payload := map[string]interface{}{}
	if err := bindJSONBody(c, &payload); err != nil {
		_ = c.Error(utils.NewBadRequest("token payload must be a JSON object"))
		return
	}

	token, err := h.Tokens.GenerateToken(payload)
	if err != nil {
		_ = c.Error(err)
		return
	}
	getLogger(c).Debug("token issued", zap.Any("email", payload["email"]))
	c.JSON(http.StatusOK, gin.H{"token": token})
}
