package dto

import (
	"time"

	"subflix/ddd/domain/entity"
)

// VideoFileDto 视频文件数据传输对象
type VideoFileDto struct {
	VideoUUID        string    `json:"video_uuid"`
	FileName         string    `json:"file_name"`
	FilePath         string    `json:"file_path"`
	FileSize         int64     `json:"file_size"`
	ContentType      string    `json:"content_type"`
	SubtitlePath     string    `json:"subtitle_path,omitempty"`
	SubtitleLanguage string    `json:"subtitle_language,omitempty"`
	HasSubtitle      bool      `json:"has_subtitle"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// VideoFileListDto 视频文件列表数据传输对象
type VideoFileListDto struct {
	VideoFiles []VideoFileDto `json:"video_files"`
	Total      int            `json:"total"`
}

// NewVideoFileDto 从实体创建DTO
func NewVideoFileDto(v *entity.VideoFile) *VideoFileDto {
	if v == nil {
		return nil
	}
	return &VideoFileDto{
		VideoUUID:        v.VideoUUID,
		FileName:         v.FileName,
		FilePath:         v.FilePath,
		FileSize:         v.FileSize,
		ContentType:      v.ContentType.String(),
		SubtitlePath:     v.SubtitlePath,
		SubtitleLanguage: v.SubtitleLanguage,
		HasSubtitle:      v.HasSubtitle(),
		Status:           v.Status.String(),
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}
}

// NewVideoFileListDto 创建视频文件列表DTO
func NewVideoFileListDto(entities []*entity.VideoFile) *VideoFileListDto {
	files := make([]VideoFileDto, 0, len(entities))
	for _, e := range entities {
		if d := NewVideoFileDto(e); d != nil {
			files = append(files, *d)
		}
	}
	return &VideoFileListDto{VideoFiles: files, Total: len(files)}
}

// ScanResultDto 一次扫描的汇总结果
type ScanResultDto struct {
	ContentType    string   `json:"content_type"`
	VideosFound    int      `json:"videos_found"`
	SubtitlesFound int      `json:"subtitles_found"`
	Paired         int      `json:"paired"`
	Warnings       []string `json:"warnings,omitempty"`
}
