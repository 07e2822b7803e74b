package repositories

import (
	"context"

	"saas-admin.backend/internal/domain/entities"
	"saas-admin.backend/pkg/utils"
)

// EventListenerRepository defines event listener data operations
type EventListenerRepository interface {
	// Ensure creates the listener or refreshes address and definition of an existing one.
	// The enabled flag of an existing listener is never changed.
	Ensure(ctx context.Context, listener *entities.EventListener) (*entities.EventListener, bool, error)
	List(ctx context.Context, filter entities.EventListenerFilter, pagination utils.PaginationParams) ([]*entities.EventListener, int64, error)
}
