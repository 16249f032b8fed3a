package repo

import (
	"context"

	"subflix/ddd/domain/entity"
	"subflix/ddd/domain/vo"
)

// VideoFileRepository 视频文件仓储接口
type VideoFileRepository interface {
	// Upsert 按 (file_path, content_type) 幂等写入；已存在时更新文件大小与
	// 字幕配对，不改动状态。
	Upsert(ctx context.Context, videoFile *entity.VideoFile) (*entity.VideoFile, error)

	// GetByUUID 按UUID查询，未找到返回 (nil, nil)
	GetByUUID(ctx context.Context, videoUUID string) (*entity.VideoFile, error)

	// List 列出视频文件，contentType/status 为空表示不过滤，按创建时间倒序
	List(ctx context.Context, contentType vo.ContentType, status vo.VideoStatus) ([]*entity.VideoFile, error)

	// ClaimForProcessing 原子地把 pending 视频标记为 processing。
	// 返回 false 表示视频不存在或不处于 pending（并发去重的关键路径）。
	ClaimForProcessing(ctx context.Context, videoUUID string) (bool, error)

	// UpdateStatus 更新视频状态
	UpdateStatus(ctx context.Context, videoUUID string, status vo.VideoStatus) error

	// DeleteAll 清空目录（批量删除）
	DeleteAll(ctx context.Context) error
}
