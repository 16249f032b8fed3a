package po

import "time"

// ProcessingJob 转封装任务持久化对象
type ProcessingJob struct {
	ID           uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	JobUUID      string     `gorm:"uniqueIndex;size:36;not null" json:"job_uuid"`
	VideoUUID    string     `gorm:"index;size:36;not null" json:"video_uuid"`
	InputPath    string     `gorm:"size:500;not null" json:"input_path"`
	SubtitlePath string     `gorm:"size:500;not null" json:"subtitle_path"`
	OutputPath   string     `gorm:"size:500;not null" json:"output_path"`
	Status       string     `gorm:"index;size:20;not null" json:"status"`
	Progress     int        `gorm:"default:0" json:"progress"`
	ErrorMessage string     `gorm:"type:text" json:"error_message"`
	CreatedAt    time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	StartedAt    *time.Time `json:"started_at"`
	CompletedAt  *time.Time `json:"completed_at"`
}

// TableName 指定表名
func (ProcessingJob) TableName() string {
	return "processing_jobs"
}
