package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// documentRecord is one document in the self-hosted Postgres backend. The
// payload lives in a JSONB column so the collection stays schemaless.
type documentRecord struct {
	Collection string         `gorm:"primaryKey;type:text"`
	ID         string         `gorm:"primaryKey;type:text;column:id"`
	Data       datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt  time.Time      `gorm:"default:CURRENT_TIMESTAMP"`
	UpdatedAt  time.Time      `gorm:"default:CURRENT_TIMESTAMP"`
}

func (documentRecord) TableName() string {
	return "documents"
}

type postgresStore struct {
	db *gorm.DB
}

// NewPostgres opens the Postgres-backed document store and migrates its
// single table.
func NewPostgres(dsn string, verbose bool) (Store, error) {
	logLevel := gormlogger.Silent
	if verbose {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&documentRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &postgresStore{db: db}, nil
}

func (s *postgresStore) Get(ctx context.Context, collection, id string) (map[string]any, error) {
	var rec documentRecord
	err := s.db.WithContext(ctx).
		Where("collection = ? AND id = ?", collection, id).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get %s/%s: %w", collection, id, err)
	}

	var data map[string]any
	if err := json.Unmarshal(rec.Data, &data); err != nil {
		return nil, fmt.Errorf("failed to decode %s/%s: %w", collection, id, err)
	}

	return data, nil
}

func (s *postgresStore) Set(ctx context.Context, collection, id string, data map[string]any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode %s/%s: %w", collection, id, err)
	}

	rec := documentRecord{
		Collection: collection,
		ID:         id,
		Data:       datatypes.JSON(payload),
	}

	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "collection"}, {Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
		}).
		Create(&rec).Error
	if err != nil {
		return fmt.Errorf("failed to set %s/%s: %w", collection, id, err)
	}

	return nil
}

func (s *postgresStore) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	// Field-level merge: read the current payload, overlay the provided
	// fields, write the result back. Last writer wins.
	data, err := s.Get(ctx, collection, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			data = map[string]any{}
		} else {
			return err
		}
	}

	for k, v := range fields {
		data[k] = v
	}

	return s.Set(ctx, collection, id, data)
}

func (s *postgresStore) Query(ctx context.Context, collection string, filters []Filter, limit int) ([]Document, error) {
	q := s.db.WithContext(ctx).
		Model(&documentRecord{}).
		Where("collection = ?", collection).
		Order("created_at ASC")

	for _, f := range filters {
		q = q.Where(datatypes.JSONQuery("data").Equals(f.Value, f.Field))
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	var recs []documentRecord
	if err := q.Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", collection, err)
	}

	docs := make([]Document, 0, len(recs))
	for _, rec := range recs {
		var data map[string]any
		if err := json.Unmarshal(rec.Data, &data); err != nil {
			return nil, fmt.Errorf("failed to decode %s/%s: %w", collection, rec.ID, err)
		}
		docs = append(docs, Document{ID: rec.ID, Data: data})
	}

	return docs, nil
}

func (s *postgresStore) NewID(string) string {
	return uuid.New().String()
}

func (s *postgresStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
