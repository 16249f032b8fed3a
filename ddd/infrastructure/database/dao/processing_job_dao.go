package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"subflix/ddd/infrastructure/database/po"
	"subflix/pkg/logger"
)

// ProcessingJobDAO 转封装任务数据访问对象
type ProcessingJobDAO struct {
	db *gorm.DB
}

// NewProcessingJobDAO 创建任务DAO实例
func NewProcessingJobDAO(db *gorm.DB) *ProcessingJobDAO {
	return &ProcessingJobDAO{db: db}
}

// Create 创建任务
func (d *ProcessingJobDAO) Create(ctx context.Context, jobPo *po.ProcessingJob) error {
	err := d.db.WithContext(ctx).Create(jobPo).Error
	if err != nil {
		logger.Errorf("create processing job failed job_uuid=%s error=%v", jobPo.JobUUID, err)
		return err
	}
	return nil
}

// FindByUUID 按UUID查询任务
func (d *ProcessingJobDAO) FindByUUID(ctx context.Context, jobUUID string) (*po.ProcessingJob, error) {
	var jobPo po.ProcessingJob
	err := d.db.WithContext(ctx).Where("job_uuid = ?", jobUUID).First(&jobPo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &jobPo, nil
}

// List 按创建时间倒序列出任务
func (d *ProcessingJobDAO) List(ctx context.Context) ([]*po.ProcessingJob, error) {
	var jobs []*po.ProcessingJob
	if err := d.db.WithContext(ctx).Order("created_at DESC").Find(&jobs).Error; err != nil {
		logger.Errorf("list processing jobs failed error=%v", err)
		return nil, err
	}
	return jobs, nil
}

// CountActiveByVideo 统计某视频的活跃任务数
func (d *ProcessingJobDAO) CountActiveByVideo(ctx context.Context, videoUUID string) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&po.ProcessingJob{}).
		Where("video_uuid = ? AND status IN ?", videoUUID, []string{"queued", "processing"}).
		Count(&count).Error
	if err != nil {
		logger.Errorf("count active jobs failed video_uuid=%s error=%v", videoUUID, err)
		return 0, err
	}
	return count, nil
}

// UpdateStatus 更新任务状态、进度、错误信息与完成时间
func (d *ProcessingJobDAO) UpdateStatus(ctx context.Context, jobPo *po.ProcessingJob) error {
	update := map[string]interface{}{
		"status":        jobPo.Status,
		"progress":      jobPo.Progress,
		"error_message": jobPo.ErrorMessage,
		"started_at":    jobPo.StartedAt,
		"completed_at":  jobPo.CompletedAt,
	}
	err := d.db.WithContext(ctx).Model(&po.ProcessingJob{}).
		Where("job_uuid = ?", jobPo.JobUUID).
		Updates(update).Error
	if err != nil {
		logger.Errorf("update job status failed job_uuid=%s error=%v", jobPo.JobUUID, err)
		return err
	}
	return nil
}

// UpdateProgress 只更新进度字段
func (d *ProcessingJobDAO) UpdateProgress(ctx context.Context, jobUUID string, progress int) error {
	err := d.db.WithContext(ctx).Model(&po.ProcessingJob{}).
		Where("job_uuid = ?", jobUUID).
		Update("progress", progress).Error
	if err != nil {
		logger.Errorf("update job progress failed job_uuid=%s error=%v", jobUUID, err)
		return err
	}
	return nil
}

// DeleteFinished 删除所有非活跃任务,返回删除数量。processing 任务不被
// 清理,避免执行中的任务写入已删除的记录。
func (d *ProcessingJobDAO) DeleteFinished(ctx context.Context) (int64, error) {
	result := d.db.WithContext(ctx).
		Where("status NOT IN ?", []string{"processing"}).
		Delete(&po.ProcessingJob{})
	if result.Error != nil {
		logger.Errorf("clear processing jobs failed error=%v", result.Error)
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
