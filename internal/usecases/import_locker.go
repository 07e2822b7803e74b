package usecases

import (
	"context"
	"sync"

	"saas-admin.backend/pkg/utils"
)

// localImportLocker serializes imports inside one process when no redis is configured
type localImportLocker struct {
	mu   sync.Mutex
	held map[string]string
}

// NewLocalImportLocker creates an in-process locker
func NewLocalImportLocker() ImportLocker {
	return &localImportLocker{held: make(map[string]string)}
}

func (l *localImportLocker) Acquire(_ context.Context, key string) (string, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.held[key]; ok {
		return "", false, nil
	}
	token := utils.GenerateUUIDv7().String()
	l.held[key] = token
	return token, true, nil
}

func (l *localImportLocker) Release(_ context.Context, key, token string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.held[key] == token {
		delete(l.held, key)
	}
	return nil
}

func (l *localImportLocker) Refresh(_ context.Context, key, token string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.held[key] == token, nil
}
