package repositories

import (
	"context"

	"github.com/dquispe/electromarket/app/models"
	"gorm.io/gorm"
)

type ContentBlockRepositoryImpl interface {
	GetByKey(ctx context.Context, key string) (*models.ContentBlock, error)
	Upsert(ctx context.Context, block *models.ContentBlock) error
}

type contentBlockRepository struct {
	db *gorm.DB
}

func NewContentBlockRepository(db *gorm.DB) ContentBlockRepositoryImpl {
	return &contentBlockRepository{db}
}

func (r *contentBlockRepository) GetByKey(ctx context.Context, key string) (*models.ContentBlock, error) {
	var block models.ContentBlock
	err := r.db.WithContext(ctx).First(&block, "`key` = ?", key).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &block, nil
}

func (r *contentBlockRepository) Upsert(ctx context.Context, block *models.ContentBlock) error {
	existing, err := r.GetByKey(ctx, block.Key)
	if err != nil {
		return err
	}
	if existing == nil {
		return r.db.WithContext(ctx).Create(block).Error
	}

	existing.Title = block.Title
	existing.Content = block.Content
	return r.db.WithContext(ctx).Save(existing).Error
}
