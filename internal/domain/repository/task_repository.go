package repository

import (
	"context"

	"hospital-food-manager/internal/domain/entity"

	"gorm.io/gorm"
)

type TaskRepository interface {
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Task, error)
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Task, error)
	Create(ctx context.Context, db *gorm.DB, task *entity.Task) error
	UpdateCompleted(ctx context.Context, db *gorm.DB, id int, completed bool) (int64, error)
}
