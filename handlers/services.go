package handlers

import (
	"net/http"

	serviceRepo "cardoctor/database/repository/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ServiceHandler struct {
	Repo serviceRepo.ServiceRepository
}

func NewServiceHandler(repo serviceRepo.ServiceRepository) *ServiceHandler {
	return &ServiceHandler{Repo: repo}
}

// ListServices handles GET /services?search=&sort=.
func (h *ServiceHandler) ListServices(c *gin.Context) {
	criteria := serviceRepo.ListCriteria{
		Search: c.Query("search"),
		Sort:   c.Query("sort"),
	}
	services, err := h.Repo.List(c.Request.Context(), criteria)
	if err != nil {
		_ = c.Error(err)
		return
	}
	getLogger(c).Debug("ListServices", zap.String("search", criteria.Search), zap.Int("count", len(services)))
	c.JSON(http.StatusOK, services)
}

// GetServiceByID handles GET /services/:id. A well-formed id with no
// matching document renders null.
func (h *ServiceHandler) GetServiceByID(c *gin.Context) {
	id, err := objectIDParam(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	service, err := h.Repo.GetByIDWithProjection(c.Request.Context(), id, serviceRepo.CardProjection)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if service == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, service)
}
