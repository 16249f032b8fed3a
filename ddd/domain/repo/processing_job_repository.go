package repo

import (
	"context"

	"subflix/ddd/domain/entity"
)

// ProcessingJobRepository 转封装任务仓储接口
type ProcessingJobRepository interface {
	// Create 保存新任务
	Create(ctx context.Context, job *entity.ProcessingJob) error

	// GetByUUID 按UUID查询，未找到返回 (nil, nil)
	GetByUUID(ctx context.Context, jobUUID string) (*entity.ProcessingJob, error)

	// List 按创建时间倒序列出任务
	List(ctx context.Context) ([]*entity.ProcessingJob, error)

	// CountActiveByVideo 统计某视频的活跃任务数 (queued/processing)
	CountActiveByVideo(ctx context.Context, videoUUID string) (int64, error)

	// UpdateStatus 更新任务状态、错误信息与进度
	UpdateStatus(ctx context.Context, job *entity.ProcessingJob) error

	// UpdateProgress 只更新进度字段
	UpdateProgress(ctx context.Context, jobUUID string, progress int) error

	// DeleteFinished 批量删除非活跃任务，返回删除数量
	DeleteFinished(ctx context.Context) (int64, error)
}
