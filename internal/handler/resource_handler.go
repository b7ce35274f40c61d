package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campusai-api/internal/service"
	"github.com/noah-isme/campusai-api/pkg/response"
)

// ResourceHandler serves the learning resources library.
type ResourceHandler struct {
	service *service.ResourceService
}

// NewResourceHandler creates a new handler.
func NewResourceHandler(svc *service.ResourceService) *ResourceHandler {
	return &ResourceHandler{service: svc}
}

// List returns resources filtered by the optional category and search
// query parameters.
func (h *ResourceHandler) List(c *gin.Context) {
	resources, err := h.service.List(c.Request.Context(), c.Query("category"), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, resources)
}

// Categories returns the distinct resource categories.
func (h *ResourceHandler) Categories(c *gin.Context) {
	categories, err := h.service.Categories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, categories)
}
