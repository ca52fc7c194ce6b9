package usecase

import (
	"context"

	"hospital-food-manager/internal/converter"
	"hospital-food-manager/internal/delivery/dto"
	"hospital-food-manager/internal/domain/entity"
	"hospital-food-manager/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type TaskUsecase interface {
	List(ctx context.Context) ([]dto.TaskResponse, error)
	Create(ctx context.Context, req *dto.CreateTaskRequest) (*dto.TaskResponse, error)
	// Update changes only the completed flag.
	Update(ctx context.Context, id int, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error)
}

type taskUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	taskRepo repository.TaskRepository
}

func NewTaskUsecase(db *gorm.DB, log *logrus.Logger, taskRepo repository.TaskRepository) TaskUsecase {
	return &taskUsecase{
		db:       db,
		log:      log,
		taskRepo: taskRepo,
	}
}

func (u *taskUsecase) List(ctx context.Context) ([]dto.TaskResponse, error) {
	tasks, err := u.taskRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.WithError(err).Error("Error fetching tasks")
		return nil, err
	}
	return converter.TasksToResponses(tasks), nil
}

func (u *taskUsecase) Create(ctx context.Context, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	task := &entity.Task{
		Description: req.Description,
		StaffID:     req.StaffID,
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}

	if err := u.taskRepo.Create(ctx, u.db, task); err != nil {
		u.log.WithError(err).Error("Error creating task")
		return nil, err
	}

	return converter.TaskToResponse(task), nil
}

func (u *taskUsecase) Update(ctx context.Context, id int, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	log := u.log.WithField("task_id", id)

	task, err := u.taskRepo.FindByID(ctx, u.db, id)
	if err != nil {
		log.WithError(err).Error("Error updating task")
		return nil, err
	}
	if task == nil {
		log.Error("Error updating task: not found")
		return nil, ErrTaskNotFound
	}

	if req.Completed == nil {
		return converter.TaskToResponse(task), nil
	}

	if _, err := u.taskRepo.UpdateCompleted(ctx, u.db, id, *req.Completed); err != nil {
		log.WithError(err).Error("Error updating task")
		return nil, err
	}
	task.Completed = *req.Completed

	return converter.TaskToResponse(task), nil
}
