package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"saas-admin.backend/internal/domain/entities"
	domainerrors "saas-admin.backend/internal/domain/errors"
	"saas-admin.backend/internal/interfaces/http/response"
	"saas-admin.backend/pkg/logger"
)

type deploymentSyncService interface {
	ImportHardhatDeploymentsForOrganization(ctx context.Context, orgID uuid.UUID, folder, fallbackRPCURL string) (*entities.SyncReport, error)
}

// DeploymentHandler handles hardhat deployment import endpoints
type DeploymentHandler struct {
	service deploymentSyncService
}

// NewDeploymentHandler creates a new deployment handler
func NewDeploymentHandler(service deploymentSyncService) *DeploymentHandler {
	return &DeploymentHandler{service: service}
}

// SyncDeployments imports a deployments folder into the organization's records.
// The body is optional; an empty deploymentsPath uses the configured folder.
// POST /api/v1/organizations/:id/deployments/sync
func (h *DeploymentHandler) SyncDeployments(c *gin.Context) {
	orgID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid organization id"))
		return
	}

	var input struct {
		DeploymentsPath string `json:"deploymentsPath"`
		FallbackRPCURL  string `json:"fallbackRpcUrl"`
	}
	if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	// the import outlives a dropped client connection
	ctx := context.WithoutCancel(c.Request.Context())

	report, err := h.service.ImportHardhatDeploymentsForOrganization(ctx, orgID, input.DeploymentsPath, input.FallbackRPCURL)
	if err != nil {
		logger.Warn(ctx, "Deployment sync failed", zap.String("organization_id", orgID.String()), zap.Error(err))
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"report": report})
}
