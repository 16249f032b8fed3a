package persistence

import (
	"context"

	"gorm.io/gorm"

	"subflix/ddd/domain/entity"
	"subflix/ddd/domain/repo"
	"subflix/ddd/infrastructure/database/convertor"
	"subflix/ddd/infrastructure/database/dao"
)

// processingJobRepositoryImpl 转封装任务仓储实现
type processingJobRepositoryImpl struct {
	jobDao    *dao.ProcessingJobDAO
	convertor *convertor.ProcessingJobConvertor
}

// NewProcessingJobRepository 创建任务仓储实现
func NewProcessingJobRepository(db *gorm.DB) repo.ProcessingJobRepository {
	return &processingJobRepositoryImpl{
		jobDao:    dao.NewProcessingJobDAO(db),
		convertor: convertor.NewProcessingJobConvertor(),
	}
}

// Create 保存新任务
func (r *processingJobRepositoryImpl) Create(ctx context.Context, job *entity.ProcessingJob) error {
	return r.jobDao.Create(ctx, r.convertor.EntityToPO(job))
}

// GetByUUID 按UUID查询
func (r *processingJobRepositoryImpl) GetByUUID(ctx context.Context, jobUUID string) (*entity.ProcessingJob, error) {
	jobPo, err := r.jobDao.FindByUUID(ctx, jobUUID)
	if err != nil {
		return nil, err
	}
	if jobPo == nil {
		return nil, nil
	}
	return r.convertor.POToEntity(jobPo), nil
}

// List 按创建时间倒序列出
func (r *processingJobRepositoryImpl) List(ctx context.Context) ([]*entity.ProcessingJob, error) {
	poList, err := r.jobDao.List(ctx)
	if err != nil {
		return nil, err
	}
	return r.convertor.POListToEntityList(poList), nil
}

// CountActiveByVideo 统计活跃任务数
func (r *processingJobRepositoryImpl) CountActiveByVideo(ctx context.Context, videoUUID string) (int64, error) {
	return r.jobDao.CountActiveByVideo(ctx, videoUUID)
}

// UpdateStatus 更新任务状态
func (r *processingJobRepositoryImpl) UpdateStatus(ctx context.Context, job *entity.ProcessingJob) error {
	return r.jobDao.UpdateStatus(ctx, r.convertor.EntityToPO(job))
}

// UpdateProgress 只更新进度
func (r *processingJobRepositoryImpl) UpdateProgress(ctx context.Context, jobUUID string, progress int) error {
	return r.jobDao.UpdateProgress(ctx, jobUUID, progress)
}

// DeleteFinished 批量删除非活跃任务
func (r *processingJobRepositoryImpl) DeleteFinished(ctx context.Context) (int64, error) {
	return r.jobDao.DeleteFinished(ctx)
}
