package handlers

import (
	"fmt"

	"cardoctor/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// objectIDParam parses the :id path parameter as a hex ObjectID.
func objectIDParam(c *gin.Context) (primitive.ObjectID, error) {
	raw := c.Param("id")
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("parse id %q: %w", raw, utils.ErrInvalidID)
	}
	return id, nil
}
