package progress

import (
	"context"

	"subflix/ddd/domain/entity"
	"subflix/ddd/domain/port"
	"subflix/ddd/domain/repo"
	"subflix/pkg/logger"
	"subflix/pkg/redisclient"
)

// DBSink writes progress to the job repository.
type DBSink struct {
	repo repo.ProcessingJobRepository
}

func NewDBSink(r repo.ProcessingJobRepository) port.ProgressSink {
	return &DBSink{repo: r}
}

func (s *DBSink) SaveProgress(ctx context.Context, job *entity.ProcessingJob, progress int) error {
	if s.repo == nil || job == nil {
		return nil
	}
	return s.repo.UpdateProgress(ctx, job.JobUUID, progress)
}

// RedisSink mirrors progress into redis so polling readers get a live
// snapshot without hitting the database on every request.
type RedisSink struct {
	client *redisclient.Client
}

func NewRedisSink(client *redisclient.Client) port.ProgressSink {
	return &RedisSink{client: client}
}

func (s *RedisSink) SaveProgress(ctx context.Context, job *entity.ProcessingJob, progress int) error {
	if s.client == nil || job == nil {
		return nil
	}
	return s.client.SetJobProgress(ctx, job.JobUUID, progress)
}

// MultiSink fans progress out to several sinks; a failing sink is logged and
// skipped so progress reporting never fails the job.
type MultiSink struct {
	sinks []port.ProgressSink
}

func NewMultiSink(sinks ...port.ProgressSink) port.ProgressSink {
	kept := make([]port.ProgressSink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			kept = append(kept, s)
		}
	}
	return &MultiSink{sinks: kept}
}

func (s *MultiSink) SaveProgress(ctx context.Context, job *entity.ProcessingJob, progress int) error {
	for _, sink := range s.sinks {
		if err := sink.SaveProgress(ctx, job, progress); err != nil {
			logger.Warnf("progress sink failed job_uuid=%s error=%v", job.JobUUID, err)
		}
	}
	return nil
}
