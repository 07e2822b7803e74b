package main

import (
	"github.com/gin-gonic/gin"
	"saas-admin.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	deploymentHandler    *handlers.DeploymentHandler
	schemaHandler        *handlers.SchemaHandler
	eventListenerHandler *handlers.EventListenerHandler
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		organizations := v1.Group("/organizations")
		{
			organizations.POST("/:id/deployments/sync", d.deploymentHandler.SyncDeployments)
		}

		listeners := v1.Group("/event-listeners")
		{
			listeners.GET("", d.eventListenerHandler.ListEventListeners)
		}

		// Record store maintenance
		admin := v1.Group("/admin")
		{
			admin.POST("/schema", d.schemaHandler.CreateSchema)
			admin.DELETE("/collections", d.schemaHandler.DeleteAllCollections)
		}
	}
}
