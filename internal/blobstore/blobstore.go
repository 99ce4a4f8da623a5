// Package blobstore is the persistence gateway: named byte blobs in a single
// table, JSON in and out. It owns no policy beyond encode/decode; a missing
// key and a corrupt blob are reported as distinct errors so callers choose
// the empty-default behaviour themselves.
package blobstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrNotFound = errors.New("blob not found")

// DecodeError marks bytes that exist but do not parse into the expected
// shape.
type DecodeError struct {
	Key string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode blob %q: %v", e.Key, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

type Blob struct {
	Key       string `gorm:"primaryKey"`
	Value     []byte
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Migrate() error {
	return s.db.AutoMigrate(&Blob{})
}

// Save serializes record and stores it under key, overwriting any prior
// value.
func (s *Store) Save(ctx context.Context, key string, record any) error {
	return save(s.db.WithContext(ctx), key, record)
}

// SaveAll writes every record inside one transaction so a crash cannot leave
// the set partially written.
func (s *Store) SaveAll(ctx context.Context, records map[string]any) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for key, record := range records {
			if err := save(tx, key, record); err != nil {
				return err
			}
		}
		return nil
	})
}

// Load deserializes the bytes at key into out. Returns ErrNotFound when the
// key is unset and *DecodeError when the bytes fail to parse.
func (s *Store) Load(ctx context.Context, key string, out any) error {
	var b Blob
	err := s.db.WithContext(ctx).First(&b, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b.Value, out); err != nil {
		return &DecodeError{Key: key, Err: err}
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Delete(&Blob{}, "key = ?", key).Error
}

func save(tx *gorm.DB, key string, record any) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode blob %q: %w", key, err)
	}
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&Blob{Key: key, Value: data}).Error
}
