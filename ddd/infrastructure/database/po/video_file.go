package po

import "time"

// VideoFile 视频文件持久化对象
type VideoFile struct {
	ID               uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	VideoUUID        string    `gorm:"uniqueIndex;size:36;not null" json:"video_uuid"`
	FileName         string    `gorm:"size:255;not null" json:"file_name"`
	FilePath         string    `gorm:"uniqueIndex:idx_path_content,length:191;size:500;not null" json:"file_path"`
	FileSize         int64     `gorm:"not null" json:"file_size"`
	ContentType      string    `gorm:"uniqueIndex:idx_path_content;index;size:20;not null" json:"content_type"`
	SubtitlePath     string    `gorm:"size:500" json:"subtitle_path"`
	SubtitleLanguage string    `gorm:"size:8" json:"subtitle_language"`
	Status           string    `gorm:"index;size:20;not null" json:"status"`
	CreatedAt        time.Time `gorm:"index" json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// TableName 指定表名
func (VideoFile) TableName() string {
	return "video_files"
}
