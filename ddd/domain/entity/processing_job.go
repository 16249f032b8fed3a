package entity

import (
	"time"

	"github.com/google/uuid"

	"subflix/ddd/domain/vo"
)

// ProcessingJob 一次字幕转封装任务。Job是短暂的工作记录，只引用视频文件，
// 不拥有它。
type ProcessingJob struct {
	JobUUID       string
	VideoUUID     string
	InputPath     string
	SubtitlePath  string
	OutputPath    string
	Status        vo.JobStatus
	Progress      int // 0-100，processing期间单调不减
	ErrorMessage  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	StartedAt     *time.Time
	CompletedAt   *time.Time
}

// NewProcessingJob 创建排队中的转封装任务
func NewProcessingJob(videoUUID, inputPath, subtitlePath, outputPath string) *ProcessingJob {
	now := time.Now()
	return &ProcessingJob{
		JobUUID:      uuid.New().String(),
		VideoUUID:    videoUUID,
		InputPath:    inputPath,
		SubtitlePath: subtitlePath,
		OutputPath:   outputPath,
		Status:       vo.JobStatusQueued,
		Progress:     0,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// StartProcessing 开始处理
func (j *ProcessingJob) StartProcessing() error {
	if !j.Status.CanTransitionTo(vo.JobStatusProcessing) {
		return NewDomainError("cannot start job in status " + j.Status.String())
	}
	now := time.Now()
	j.Status = vo.JobStatusProcessing
	j.StartedAt = &now
	j.UpdatedAt = now
	return nil
}

// UpdateProgress 更新进度，只允许单调递增
func (j *ProcessingJob) UpdateProgress(progress int) error {
	if j.Status != vo.JobStatusProcessing {
		return NewDomainError("can only update progress for processing jobs")
	}
	if progress < 0 || progress > 100 {
		return NewDomainError("progress must be between 0 and 100")
	}
	if progress < j.Progress {
		return nil // 进度不回退
	}
	j.Progress = progress
	j.UpdatedAt = time.Now()
	return nil
}

// Complete 完成任务，进度固定为100
func (j *ProcessingJob) Complete() error {
	if !j.Status.CanTransitionTo(vo.JobStatusCompleted) {
		return NewDomainError("cannot complete job in status " + j.Status.String())
	}
	now := time.Now()
	j.Status = vo.JobStatusCompleted
	j.Progress = 100
	j.CompletedAt = &now
	j.UpdatedAt = now
	return nil
}

// Fail 标记任务失败
func (j *ProcessingJob) Fail(errorMessage string) error {
	if !j.Status.CanTransitionTo(vo.JobStatusFailed) {
		return NewDomainError("cannot fail job in status " + j.Status.String())
	}
	now := time.Now()
	j.Status = vo.JobStatusFailed
	j.ErrorMessage = errorMessage
	j.CompletedAt = &now
	j.UpdatedAt = now
	return nil
}
