package app

import (
	"context"

	"subflix/ddd/application/cqe"
	"subflix/ddd/application/dto"
	"subflix/ddd/domain/entity"
	"subflix/ddd/domain/repo"
	"subflix/ddd/domain/service"
	"subflix/ddd/domain/vo"
	"subflix/ddd/infrastructure/queue"
	"subflix/pkg/errno"
	"subflix/pkg/logger"
	"subflix/pkg/redisclient"
)

type JobApp interface {
	// CreateJob 为视频创建转封装任务并入队
	CreateJob(ctx context.Context, req *cqe.CreateJobReq) (*dto.ProcessingJobDto, error)
	// GetJob 查询任务详情
	GetJob(ctx context.Context, req *cqe.JobIDReq) (*dto.ProcessingJobDto, error)
	// ListJobs 按创建时间倒序列出任务
	ListJobs(ctx context.Context) (*dto.ProcessingJobListDto, error)
	// ClearJobs 批量删除已结束的任务
	ClearJobs(ctx context.Context) (*dto.ClearJobsDto, error)
}

type jobAppImpl struct {
	jobRepo      repo.ProcessingJobRepository
	videoRepo    repo.VideoFileRepository
	settingsRepo repo.SettingsRepository
	jobQueue     queue.JobQueue
	redisClient  *redisclient.Client // 可为nil,进度只从数据库读
}

func NewJobApp(
	jobRepo repo.ProcessingJobRepository,
	videoRepo repo.VideoFileRepository,
	settingsRepo repo.SettingsRepository,
	jobQueue queue.JobQueue,
	redisClient *redisclient.Client,
) JobApp {
	return &jobAppImpl{
		jobRepo:      jobRepo,
		videoRepo:    videoRepo,
		settingsRepo: settingsRepo,
		jobQueue:     jobQueue,
		redisClient:  redisClient,
	}
}

func (j *jobAppImpl) CreateJob(ctx context.Context, req *cqe.CreateJobReq) (*dto.ProcessingJobDto, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	video, err := j.videoRepo.GetByUUID(ctx, req.VideoUUID)
	if err != nil {
		return nil, errno.NewBizError(errno.ErrDatabase, err)
	}
	if video == nil {
		return nil, errno.ErrVideoFileNotFound
	}
	if !video.HasSubtitle() {
		return nil, errno.ErrNoSubtitlePaired
	}

	settings, err := j.settingsRepo.Get(ctx)
	if err != nil {
		return nil, errno.NewBizError(errno.ErrDatabase, err)
	}
	outputRoot, ok := service.OutputRoot(settings, video.ContentType)
	if !ok {
		return nil, errno.ErrOutputPathNotConfigured
	}

	// 原子认领:pending→processing只会成功一次,并发重复请求在这里被挡掉
	claimed, err := j.videoRepo.ClaimForProcessing(ctx, video.VideoUUID)
	if err != nil {
		return nil, errno.NewBizError(errno.ErrDatabase, err)
	}
	if !claimed {
		active, countErr := j.jobRepo.CountActiveByVideo(ctx, video.VideoUUID)
		if countErr == nil && active > 0 {
			return nil, errno.ErrVideoBusy
		}
		return nil, errno.ErrVideoNotPending
	}

	outputPath := service.OutputFilePath(outputRoot, video.FileName, video.SubtitleLanguage)
	job := entity.NewProcessingJob(video.VideoUUID, video.FilePath, video.SubtitlePath, outputPath)

	if err := j.jobRepo.Create(ctx, job); err != nil {
		j.rollbackClaim(ctx, video.VideoUUID, nil, err)
		return nil, errno.NewBizError(errno.ErrDatabase, err)
	}
	if err := j.jobQueue.Enqueue(ctx, job); err != nil {
		j.rollbackClaim(ctx, video.VideoUUID, job, err)
		return nil, errno.ErrQueueFull
	}

	logger.Info("job enqueued", map[string]interface{}{
		"job_uuid":    job.JobUUID,
		"video_uuid":  video.VideoUUID,
		"output_path": outputPath,
	})
	return dto.NewProcessingJobDto(job), nil
}

// rollbackClaim 入队失败后的补偿:任务记为失败,视频落到failed等待重置
func (j *jobAppImpl) rollbackClaim(ctx context.Context, videoUUID string, job *entity.ProcessingJob, cause error) {
	logger.Errorf("enqueue failed video_uuid=%s error=%v", videoUUID, cause)
	if job != nil {
		if job.StartProcessing() == nil && job.Fail("enqueue failed: "+cause.Error()) == nil {
			if err := j.jobRepo.UpdateStatus(ctx, job); err != nil {
				logger.Errorf("rollback job status failed job_uuid=%s error=%v", job.JobUUID, err)
			}
		}
	}
	if err := j.videoRepo.UpdateStatus(ctx, videoUUID, vo.VideoStatusFailed); err != nil {
		logger.Errorf("rollback video status failed video_uuid=%s error=%v", videoUUID, err)
	}
}

func (j *jobAppImpl) GetJob(ctx context.Context, req *cqe.JobIDReq) (*dto.ProcessingJobDto, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	job, err := j.jobRepo.GetByUUID(ctx, req.JobUUID)
	if err != nil {
		return nil, errno.NewBizError(errno.ErrDatabase, err)
	}
	if job == nil {
		return nil, errno.ErrJobNotFound
	}

	// 执行中的任务优先取redis里的最新进度,数据库的落库频率更低
	if j.redisClient != nil && job.Status.IsActive() {
		if progress, found, rErr := j.redisClient.GetJobProgress(ctx, job.JobUUID); rErr == nil && found {
			if progress > job.Progress {
				job.Progress = progress
			}
		}
	}
	return dto.NewProcessingJobDto(job), nil
}

func (j *jobAppImpl) ListJobs(ctx context.Context) (*dto.ProcessingJobListDto, error) {
	jobs, err := j.jobRepo.List(ctx)
	if err != nil {
		return nil, errno.NewBizError(errno.ErrDatabase, err)
	}
	return dto.NewProcessingJobListDto(jobs), nil
}

func (j *jobAppImpl) ClearJobs(ctx context.Context) (*dto.ClearJobsDto, error) {
	deleted, err := j.jobRepo.DeleteFinished(ctx)
	if err != nil {
		return nil, errno.NewBizError(errno.ErrDatabase, err)
	}
	logger.Infof("cleared %d finished jobs", deleted)
	return &dto.ClearJobsDto{Deleted: deleted}, nil
}
