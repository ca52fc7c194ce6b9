package repository

import (
	"context"
	"errors"

	"hospital-food-manager/internal/domain/entity"
	domainRepo "hospital-food-manager/internal/domain/repository"

	"gorm.io/gorm"
)

type taskRepository struct{}

func NewTaskRepository() domainRepo.TaskRepository {
	return &taskRepository{}
}

func (r *taskRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Task, error) {
	var tasks []entity.Task
	err := db.WithContext(ctx).Order("id").Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Task, error) {
	var task entity.Task
	err := db.WithContext(ctx).Where("id = ?", id).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) Create(ctx context.Context, db *gorm.DB, task *entity.Task) error {
	return db.WithContext(ctx).Create(task).Error
}

// UpdateCompleted uses Update rather than Updates so that false is written.
func (r *taskRepository) UpdateCompleted(ctx context.Context, db *gorm.DB, id int, completed bool) (int64, error) {
	result := db.WithContext(ctx).Model(&entity.Task{}).Where("id = ?", id).Update("completed", completed)
	return result.RowsAffected, result.Error
}
