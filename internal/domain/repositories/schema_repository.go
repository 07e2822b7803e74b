package repositories

import "context"

// SchemaRepository manages the tables behind the record store
type SchemaRepository interface {
	// Collections lists managed collections in dependency order
	Collections() []string
	EnsureCollection(ctx context.Context, name string) (bool, error)
	EnsureEventLogCollection(ctx context.Context, name string) (bool, error)
	// TruncateCollection deletes every row; a missing table is not an error
	TruncateCollection(ctx context.Context, name string) error
}
