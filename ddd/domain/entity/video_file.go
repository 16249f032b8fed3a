package entity

import (
	"time"

	"github.com/google/uuid"

	"subflix/ddd/domain/vo"
)

// VideoFile 媒体库中发现的视频文件及其字幕配对
type VideoFile struct {
	VideoUUID        string
	FileName         string
	FilePath         string
	FileSize         int64
	ContentType      vo.ContentType
	SubtitlePath     string // 为空表示未配对
	SubtitleLanguage string
	Status           vo.VideoStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewVideoFile 创建新发现的视频文件记录
func NewVideoFile(contentType vo.ContentType, filePath, fileName string, fileSize int64) *VideoFile {
	now := time.Now()
	return &VideoFile{
		VideoUUID:   uuid.New().String(),
		FileName:    fileName,
		FilePath:    filePath,
		FileSize:    fileSize,
		ContentType: contentType,
		Status:      vo.VideoStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// HasSubtitle 是否已配对字幕
func (v *VideoFile) HasSubtitle() bool {
	return v.SubtitlePath != ""
}

// PairSubtitle 记录字幕配对，重新扫描时可替换
func (v *VideoFile) PairSubtitle(subtitlePath, language string) {
	v.SubtitlePath = subtitlePath
	v.SubtitleLanguage = language
	v.UpdatedAt = time.Now()
}

// ClearSubtitle 清除字幕配对
func (v *VideoFile) ClearSubtitle() {
	v.SubtitlePath = ""
	v.SubtitleLanguage = ""
	v.UpdatedAt = time.Now()
}

// TransitionTo 校验并执行状态转换
func (v *VideoFile) TransitionTo(target vo.VideoStatus) error {
	if !v.Status.CanTransitionTo(target) {
		return NewDomainError("video file cannot transition from " + v.Status.String() + " to " + target.String())
	}
	v.Status = target
	v.UpdatedAt = time.Now()
	return nil
}
