package dto

import (
	"time"

	"subflix/ddd/domain/entity"
)

// ProcessingJobDto 转封装任务数据传输对象
type ProcessingJobDto struct {
	JobUUID      string     `json:"job_uuid"`
	VideoUUID    string     `json:"video_uuid"`
	InputPath    string     `json:"input_path"`
	SubtitlePath string     `json:"subtitle_path"`
	OutputPath   string     `json:"output_path"`
	Status       string     `json:"status"`
	Progress     int        `json:"progress"`
	ErrorMessage string     `json:"error_message,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	StartedAt    *time.Time `json:"started_at,omitempty"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
}

// ProcessingJobListDto 任务列表数据传输对象
type ProcessingJobListDto struct {
	Jobs  []ProcessingJobDto `json:"jobs"`
	Total int                `json:"total"`
}

// ClearJobsDto 批量清理结果
type ClearJobsDto struct {
	Deleted int64 `json:"deleted"`
}

// NewProcessingJobDto 从实体创建DTO
func NewProcessingJobDto(j *entity.ProcessingJob) *ProcessingJobDto {
	if j == nil {
		return nil
	}
	return &ProcessingJobDto{
		JobUUID:      j.JobUUID,
		VideoUUID:    j.VideoUUID,
		InputPath:    j.InputPath,
		SubtitlePath: j.SubtitlePath,
		OutputPath:   j.OutputPath,
		Status:       j.Status.String(),
		Progress:     j.Progress,
		ErrorMessage: j.ErrorMessage,
		CreatedAt:    j.CreatedAt,
		UpdatedAt:    j.UpdatedAt,
		StartedAt:    j.StartedAt,
		CompletedAt:  j.CompletedAt,
	}
}

// NewProcessingJobListDto 创建任务列表DTO
func NewProcessingJobListDto(entities []*entity.ProcessingJob) *ProcessingJobListDto {
	jobs := make([]ProcessingJobDto, 0, len(entities))
	for _, e := range entities {
		if d := NewProcessingJobDto(e); d != nil {
			jobs = append(jobs, *d)
		}
	}
	return &ProcessingJobListDto{Jobs: jobs, Total: len(jobs)}
}
