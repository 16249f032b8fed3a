package convertor

import (
	"subflix/ddd/domain/entity"
	"subflix/ddd/domain/vo"
	"subflix/ddd/infrastructure/database/po"
)

// ProcessingJobConvertor 任务 PO <-> 实体转换器
type ProcessingJobConvertor struct{}

// NewProcessingJobConvertor 创建转换器
func NewProcessingJobConvertor() *ProcessingJobConvertor {
	return &ProcessingJobConvertor{}
}

// EntityToPO 实体转持久化对象
func (c *ProcessingJobConvertor) EntityToPO(job *entity.ProcessingJob) *po.ProcessingJob {
	return &po.ProcessingJob{
		JobUUID:      job.JobUUID,
		VideoUUID:    job.VideoUUID,
		InputPath:    job.InputPath,
		SubtitlePath: job.SubtitlePath,
		OutputPath:   job.OutputPath,
		Status:       job.Status.String(),
		Progress:     job.Progress,
		ErrorMessage: job.ErrorMessage,
		CreatedAt:    job.CreatedAt,
		UpdatedAt:    job.UpdatedAt,
		StartedAt:    job.StartedAt,
		CompletedAt:  job.CompletedAt,
	}
}

// POToEntity 持久化对象转实体
func (c *ProcessingJobConvertor) POToEntity(jobPo *po.ProcessingJob) *entity.ProcessingJob {
	return &entity.ProcessingJob{
		JobUUID:      jobPo.JobUUID,
		VideoUUID:    jobPo.VideoUUID,
		InputPath:    jobPo.InputPath,
		SubtitlePath: jobPo.SubtitlePath,
		OutputPath:   jobPo.OutputPath,
		Status:       vo.JobStatus(jobPo.Status),
		Progress:     jobPo.Progress,
		ErrorMessage: jobPo.ErrorMessage,
		CreatedAt:    jobPo.CreatedAt,
		UpdatedAt:    jobPo.UpdatedAt,
		StartedAt:    jobPo.StartedAt,
		CompletedAt:  jobPo.CompletedAt,
	}
}

// POListToEntityList 批量转换
func (c *ProcessingJobConvertor) POListToEntityList(poList []*po.ProcessingJob) []*entity.ProcessingJob {
	entities := make([]*entity.ProcessingJob, 0, len(poList))
	for _, jobPo := range poList {
		entities = append(entities, c.POToEntity(jobPo))
	}
	return entities
}
