package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"subflix/ddd/domain/entity"
	"subflix/ddd/domain/repo"
	"subflix/ddd/domain/vo"
	"subflix/ddd/infrastructure/database/convertor"
	"subflix/ddd/infrastructure/database/dao"
)

// videoFileRepositoryImpl 视频文件仓储实现
type videoFileRepositoryImpl struct {
	videoDao  *dao.VideoFileDAO
	convertor *convertor.VideoFileConvertor
}

// NewVideoFileRepository 创建视频文件仓储实现
func NewVideoFileRepository(db *gorm.DB) repo.VideoFileRepository {
	return &videoFileRepositoryImpl{
		videoDao:  dao.NewVideoFileDAO(db),
		convertor: convertor.NewVideoFileConvertor(),
	}
}

// Upsert 幂等写入后回读,返回数据库中的权威记录(重扫描时保留原有的
// video_uuid 与 status)。
func (r *videoFileRepositoryImpl) Upsert(ctx context.Context, videoFile *entity.VideoFile) (*entity.VideoFile, error) {
	videoPo := r.convertor.EntityToPO(videoFile)
	if err := r.videoDao.Upsert(ctx, videoPo); err != nil {
		return nil, err
	}

	stored, err := r.videoDao.FindByPath(ctx, videoFile.FilePath, videoFile.ContentType.String())
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, fmt.Errorf("video file missing after upsert: %s", videoFile.FilePath)
	}
	return r.convertor.POToEntity(stored), nil
}

// GetByUUID 按UUID查询
func (r *videoFileRepositoryImpl) GetByUUID(ctx context.Context, videoUUID string) (*entity.VideoFile, error) {
	videoPo, err := r.videoDao.FindByUUID(ctx, videoUUID)
	if err != nil {
		return nil, err
	}
	if videoPo == nil {
		return nil, nil
	}
	return r.convertor.POToEntity(videoPo), nil
}

// List 列出视频文件
func (r *videoFileRepositoryImpl) List(ctx context.Context, contentType vo.ContentType, status vo.VideoStatus) ([]*entity.VideoFile, error) {
	poList, err := r.videoDao.List(ctx, contentType.String(), status.String())
	if err != nil {
		return nil, err
	}
	return r.convertor.POListToEntityList(poList), nil
}

// ClaimForProcessing 原子认领
func (r *videoFileRepositoryImpl) ClaimForProcessing(ctx context.Context, videoUUID string) (bool, error) {
	return r.videoDao.ClaimForProcessing(ctx, videoUUID)
}

// UpdateStatus 更新状态
func (r *videoFileRepositoryImpl) UpdateStatus(ctx context.Context, videoUUID string, status vo.VideoStatus) error {
	return r.videoDao.UpdateStatus(ctx, videoUUID, status.String())
}

// DeleteAll 清空目录
func (r *videoFileRepositoryImpl) DeleteAll(ctx context.Context) error {
	return r.videoDao.DeleteAll(ctx)
}
