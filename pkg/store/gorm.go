package store

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Document is one kind's JSON array stored as a single row.
type Document struct {
	Kind      string    `gorm:"column:kind;primaryKey;size:32"`
	Payload   string    `gorm:"column:payload;type:longtext"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Document) TableName() string {
	return "documents"
}

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&Document{}); err != nil {
		return nil, errors.Wrap(err, "migrate documents")
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Read(ctx context.Context, kind Kind) ([]byte, error) {
	if !kind.Valid() {
		return nil, errors.Errorf("unknown record kind %q", kind)
	}
	var doc Document
	err := s.db.WithContext(ctx).Where("kind = ?", string(kind)).First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		doc = Document{Kind: string(kind), Payload: string(emptyArray), UpdatedAt: time.Now()}
		if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&doc).Error; err != nil {
			return nil, errors.Wrapf(err, "create document %s", kind)
		}
		return emptyArray, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read document %s", kind)
	}
	return []byte(doc.Payload), nil
}

func (s *GormStore) Write(ctx context.Context, kind Kind, data []byte) error {
	if !kind.Valid() {
		return errors.Errorf("unknown record kind %q", kind)
	}
	doc := Document{Kind: string(kind), Payload: string(data), UpdatedAt: time.Now()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "kind"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&doc).Error
	if err != nil {
		return errors.Wrapf(err, "write document %s", kind)
	}
	return nil
}
