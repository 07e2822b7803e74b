package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"saas-admin.backend/internal/interfaces/http/response"
	"saas-admin.backend/internal/usecases"
)

type schemaService interface {
	CreateSchema(ctx context.Context) (*usecases.SchemaResult, error)
	DeleteAllCollections(ctx context.Context) error
}

// SchemaHandler handles record store maintenance endpoints
type SchemaHandler struct {
	service schemaService
}

// NewSchemaHandler creates a new schema handler
func NewSchemaHandler(service schemaService) *SchemaHandler {
	return &SchemaHandler{service: service}
}

// CreateSchema creates every managed collection and the event log tables of known listeners
// POST /api/v1/admin/schema
func (h *SchemaHandler) CreateSchema(c *gin.Context) {
	result, err := h.service.CreateSchema(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"schema": result})
}

// DeleteAllCollections empties every managed collection except organizations
// DELETE /api/v1/admin/collections
func (h *SchemaHandler) DeleteAllCollections(c *gin.Context) {
	if err := h.service.DeleteAllCollections(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
