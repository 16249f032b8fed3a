package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"subflix/ddd/infrastructure/database/po"
	"subflix/pkg/logger"
)

// VideoFileDAO 视频文件数据访问对象
type VideoFileDAO struct {
	db *gorm.DB
}

// NewVideoFileDAO 创建视频文件DAO实例
func NewVideoFileDAO(db *gorm.DB) *VideoFileDAO {
	return &VideoFileDAO{db: db}
}

// Upsert 按 (file_path, content_type) 幂等写入。冲突时只刷新文件尺寸和
// 字幕配对，status 与 video_uuid 不被扫描改动。
func (d *VideoFileDAO) Upsert(ctx context.Context, videoPo *po.VideoFile) error {
	err := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "file_path"}, {Name: "content_type"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"file_name", "file_size", "subtitle_path", "subtitle_language", "updated_at",
		}),
	}).Create(videoPo).Error
	if err != nil {
		logger.Errorf("upsert video file failed path=%s error=%v", videoPo.FilePath, err)
		return err
	}
	return nil
}

// FindByPath 按物理路径与内容类型查询
func (d *VideoFileDAO) FindByPath(ctx context.Context, filePath, contentType string) (*po.VideoFile, error) {
	var videoPo po.VideoFile
	err := d.db.WithContext(ctx).
		Where("file_path = ? AND content_type = ?", filePath, contentType).
		First(&videoPo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &videoPo, nil
}

// FindByUUID 按UUID查询
func (d *VideoFileDAO) FindByUUID(ctx context.Context, videoUUID string) (*po.VideoFile, error) {
	var videoPo po.VideoFile
	err := d.db.WithContext(ctx).Where("video_uuid = ?", videoUUID).First(&videoPo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &videoPo, nil
}

// List 列出视频文件,空过滤条件表示不限制,按创建时间倒序
func (d *VideoFileDAO) List(ctx context.Context, contentType, status string) ([]*po.VideoFile, error) {
	var videos []*po.VideoFile
	query := d.db.WithContext(ctx).Model(&po.VideoFile{})
	if contentType != "" {
		query = query.Where("content_type = ?", contentType)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Order("created_at DESC").Find(&videos).Error; err != nil {
		logger.Errorf("list video files failed error=%v", err)
		return nil, err
	}
	return videos, nil
}

// ClaimForProcessing 条件更新实现原子认领:只有 pending 状态才会被置为
// processing,RowsAffected 为0说明另一次入队抢先或状态不符。
func (d *VideoFileDAO) ClaimForProcessing(ctx context.Context, videoUUID string) (bool, error) {
	result := d.db.WithContext(ctx).Model(&po.VideoFile{}).
		Where("video_uuid = ? AND status = ?", videoUUID, "pending").
		Update("status", "processing")
	if result.Error != nil {
		logger.Errorf("claim video file failed video_uuid=%s error=%v", videoUUID, result.Error)
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// UpdateStatus 更新视频状态
func (d *VideoFileDAO) UpdateStatus(ctx context.Context, videoUUID, status string) error {
	err := d.db.WithContext(ctx).Model(&po.VideoFile{}).
		Where("video_uuid = ?", videoUUID).
		Update("status", status).Error
	if err != nil {
		logger.Errorf("update video file status failed video_uuid=%s error=%v", videoUUID, err)
		return err
	}
	return nil
}

// DeleteAll 清空视频目录
func (d *VideoFileDAO) DeleteAll(ctx context.Context) error {
	err := d.db.WithContext(ctx).Where("1 = 1").Delete(&po.VideoFile{}).Error
	if err != nil {
		logger.Errorf("clear video files failed error=%v", err)
		return err
	}
	return nil
}
