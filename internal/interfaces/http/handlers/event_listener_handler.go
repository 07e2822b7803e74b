package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"saas-admin.backend/internal/domain/entities"
	domainerrors "saas-admin.backend/internal/domain/errors"
	"saas-admin.backend/internal/domain/repositories"
	"saas-admin.backend/internal/interfaces/http/response"
	"saas-admin.backend/pkg/utils"
)

// EventListenerHandler lists the listeners registered by deployment imports
type EventListenerHandler struct {
	listenerRepo repositories.EventListenerRepository
}

// NewEventListenerHandler creates a new event listener handler
func NewEventListenerHandler(listenerRepo repositories.EventListenerRepository) *EventListenerHandler {
	return &EventListenerHandler{listenerRepo: listenerRepo}
}

// ListEventListeners lists listeners with optional networkId, projectId and enabled filters
// GET /api/v1/event-listeners
func (h *EventListenerHandler) ListEventListeners(c *gin.Context) {
	var filter entities.EventListenerFilter

	if s := c.Query("networkId"); s != "" {
		networkID, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			response.Error(c, domainerrors.BadRequest("Invalid networkId"))
			return
		}
		filter.NetworkID = &networkID
	}

	if s := c.Query("projectId"); s != "" {
		projectID, err := uuid.Parse(s)
		if err != nil {
			response.Error(c, domainerrors.BadRequest("Invalid projectId"))
			return
		}
		filter.ProjectID = &projectID
	}

	if s := c.Query("enabled"); s != "" {
		enabled, err := strconv.ParseBool(s)
		if err != nil {
			response.Error(c, domainerrors.BadRequest("Invalid enabled"))
			return
		}
		filter.Enabled = &enabled
	}

	pagination := utils.ParsePagination(c.Query("page"), c.Query("limit"))

	listeners, totalCount, err := h.listenerRepo.List(c.Request.Context(), filter, pagination)
	if err != nil {
		response.Error(c, err)
		return
	}
	if listeners == nil {
		listeners = []*entities.EventListener{}
	}

	response.Success(c, http.StatusOK, gin.H{
		"items": listeners,
		"meta":  pagination.Meta(totalCount),
	})
}
