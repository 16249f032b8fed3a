package convertor

import (
	"subflix/ddd/domain/entity"
	"subflix/ddd/domain/vo"
	"subflix/ddd/infrastructure/database/po"
)

// VideoFileConvertor 视频文件 PO <-> 实体转换器
type VideoFileConvertor struct{}

// NewVideoFileConvertor 创建转换器
func NewVideoFileConvertor() *VideoFileConvertor {
	return &VideoFileConvertor{}
}

// EntityToPO 实体转持久化对象
func (c *VideoFileConvertor) EntityToPO(videoFile *entity.VideoFile) *po.VideoFile {
	return &po.VideoFile{
		VideoUUID:        videoFile.VideoUUID,
		FileName:         videoFile.FileName,
		FilePath:         videoFile.FilePath,
		FileSize:         videoFile.FileSize,
		ContentType:      videoFile.ContentType.String(),
		SubtitlePath:     videoFile.SubtitlePath,
		SubtitleLanguage: videoFile.SubtitleLanguage,
		Status:           videoFile.Status.String(),
		CreatedAt:        videoFile.CreatedAt,
		UpdatedAt:        videoFile.UpdatedAt,
	}
}

// POToEntity 持久化对象转实体
func (c *VideoFileConvertor) POToEntity(videoPo *po.VideoFile) *entity.VideoFile {
	return &entity.VideoFile{
		VideoUUID:        videoPo.VideoUUID,
		FileName:         videoPo.FileName,
		FilePath:         videoPo.FilePath,
		FileSize:         videoPo.FileSize,
		ContentType:      vo.ContentType(videoPo.ContentType),
		SubtitlePath:     videoPo.SubtitlePath,
		SubtitleLanguage: videoPo.SubtitleLanguage,
		Status:           vo.VideoStatus(videoPo.Status),
		CreatedAt:        videoPo.CreatedAt,
		UpdatedAt:        videoPo.UpdatedAt,
	}
}

// POListToEntityList 批量转换
func (c *VideoFileConvertor) POListToEntityList(poList []*po.VideoFile) []*entity.VideoFile {
	entities := make([]*entity.VideoFile, 0, len(poList))
	for _, videoPo := range poList {
		entities = append(entities, c.POToEntity(videoPo))
	}
	return entities
}
