package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"saas-admin.backend/internal/infrastructure/models"
)

// KeyField is one column of a natural key
type KeyField struct {
	Column string
	Value  interface{}
}

// NaturalKey identifies a record by business columns instead of its id
type NaturalKey []KeyField

// Key builds a natural key from column/value pairs
func Key(pairs ...interface{}) NaturalKey {
	key := make(NaturalKey, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		key = append(key, KeyField{Column: pairs[i].(string), Value: pairs[i+1]})
	}
	return key
}

type record[T any] interface {
	*T
	Identity() *models.Base
}

func findByKey[T any](ctx context.Context, db *gorm.DB, key NaturalKey) (*T, error) {
	query := db.WithContext(ctx)
	for _, field := range key {
		query = query.Where(clause.Eq{Column: clause.Column{Name: field.Column}, Value: field.Value})
	}

	var row T
	if err := query.First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// getOrCreate returns the row matching key, inserting attrs when there is none.
// attrs must carry the same natural key values. When the insert loses a race on the
// unique index, the winning row is returned instead.
func getOrCreate[T any, PT record[T]](ctx context.Context, db *gorm.DB, key NaturalKey, attrs PT) (PT, bool, error) {
	existing, err := findByKey[T](ctx, db, key)
	if err == nil {
		return PT(existing), false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	if err := db.WithContext(ctx).Create(attrs).Error; err != nil {
		if !isDuplicateKey(err) {
			return nil, false, err
		}
		winner, findErr := findByKey[T](ctx, db, key)
		if findErr != nil {
			return nil, false, findErr
		}
		return PT(winner), false, nil
	}
	return attrs, true, nil
}

// upsert writes attrs onto the row matching key, keeping its id and creation time
func upsert[T any, PT record[T]](ctx context.Context, db *gorm.DB, key NaturalKey, attrs PT) (PT, error) {
	existing, created, err := getOrCreate[T, PT](ctx, db, key, attrs)
	if err != nil {
		return nil, err
	}
	if created {
		return existing, nil
	}

	current := existing.Identity()
	target := attrs.Identity()
	target.ID = current.ID
	target.CreatedAt = current.CreatedAt

	if err := db.WithContext(ctx).Save(attrs).Error; err != nil {
		return nil, err
	}
	return attrs, nil
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation"
}

// jsonText renders raw JSON for a jsonb column, storing null for an absent value
func jsonText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "null"
	}
	return string(raw)
}

func rawJSON(text string) json.RawMessage {
	if text == "" {
		return nil
	}
	return json.RawMessage(text)
}
