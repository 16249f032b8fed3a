package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"subflix/ddd/domain/entity"
	"subflix/ddd/domain/port"
	"subflix/ddd/domain/repo"
	"subflix/ddd/domain/vo"
	"subflix/ddd/infrastructure/queue"
	"subflix/pkg/logger"
)

// EmbedWorker pulls jobs off the queue and drives the remux executor. One
// goroutine per worker slot; the enqueue-side claim on the video file already
// guarantees two slots never run jobs for the same video.
type EmbedWorker struct {
	jobQueue  queue.JobQueue
	jobRepo   repo.ProcessingJobRepository
	videoRepo repo.VideoFileRepository
	executor  port.EmbedExecutor
	sink      port.ProgressSink
	uploader  port.UploadConnector
	slots     int

	running bool
	cancel  context.CancelFunc
	mu      sync.Mutex
	wg      sync.WaitGroup
}

// NewEmbedWorker 创建转封装工作器
func NewEmbedWorker(
	jobQueue queue.JobQueue,
	jobRepo repo.ProcessingJobRepository,
	videoRepo repo.VideoFileRepository,
	executor port.EmbedExecutor,
	sink port.ProgressSink,
	uploader port.UploadConnector,
	slots int,
) *EmbedWorker {
	if slots <= 0 {
		slots = 1
	}
	return &EmbedWorker{
		jobQueue:  jobQueue,
		jobRepo:   jobRepo,
		videoRepo: videoRepo,
		executor:  executor,
		sink:      sink,
		uploader:  uploader,
		slots:     slots,
	}
}

// Name implements task.BackgroundTask.
func (w *EmbedWorker) Name() string {
	return "embed-worker"
}

// Start 启动工作协程
func (w *EmbedWorker) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return fmt.Errorf("embed worker already running")
	}

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.running = true

	logger.Infof("starting embed worker slots=%d", w.slots)
	for i := 0; i < w.slots; i++ {
		w.wg.Add(1)
		go w.loop(runCtx, i)
	}
	return nil
}

// Stop 取消上下文并等待在跑的任务收尾。被强杀的转封装进程会以失败
// 落库,不会留下永远processing的任务。
func (w *EmbedWorker) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return nil
	}
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
	w.running = false
	logger.Infof("embed worker stopped")
	return nil
}

func (w *EmbedWorker) loop(ctx context.Context, slot int) {
	defer w.wg.Done()

	logger.Debugf("worker slot %d started", slot)
	defer logger.Debugf("worker slot %d stopped", slot)

	for {
		job, err := w.jobQueue.Dequeue(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return
			}
			logger.Errorf("slot %d dequeue failed: %v", slot, err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Second):
			}
			continue
		}
		if job == nil {
			continue
		}
		w.processJob(ctx, job, slot)
	}
}

func (w *EmbedWorker) processJob(ctx context.Context, job *entity.ProcessingJob, slot int) {
	logger.Info("job started", map[string]interface{}{
		"job_uuid":   job.JobUUID,
		"video_uuid": job.VideoUUID,
		"slot":       slot,
	})

	// 收尾写库用独立上下文,关闭流程中取消的ctx不能阻止状态落库
	persistCtx := context.Background()

	if err := job.StartProcessing(); err != nil {
		logger.Errorf("job %s in unexpected state: %v", job.JobUUID, err)
		return
	}
	if err := w.jobRepo.UpdateStatus(persistCtx, job); err != nil {
		logger.Errorf("persist job start failed job_uuid=%s error=%v", job.JobUUID, err)
	}

	opts := port.EmbedOptions{
		ProgressCb: func(progress int) {
			if job.UpdateProgress(progress) == nil {
				_ = w.sink.SaveProgress(persistCtx, job, job.Progress)
			}
		},
	}

	execErr := w.executor.Execute(ctx, job, opts)
	if execErr != nil {
		w.finalizeFailure(persistCtx, job, execErr)
		return
	}
	w.finalizeSuccess(persistCtx, job)
}

func (w *EmbedWorker) finalizeSuccess(ctx context.Context, job *entity.ProcessingJob) {
	if err := job.Complete(); err != nil {
		logger.Errorf("complete job %s: %v", job.JobUUID, err)
		return
	}
	if err := w.jobRepo.UpdateStatus(ctx, job); err != nil {
		logger.Errorf("persist job completion failed job_uuid=%s error=%v", job.JobUUID, err)
	}
	_ = w.sink.SaveProgress(ctx, job, job.Progress)
	if err := w.videoRepo.UpdateStatus(ctx, job.VideoUUID, vo.VideoStatusCompleted); err != nil {
		logger.Errorf("persist video completion failed video_uuid=%s error=%v", job.VideoUUID, err)
	}

	logger.Info("job completed", map[string]interface{}{
		"job_uuid":    job.JobUUID,
		"video_uuid":  job.VideoUUID,
		"output_path": job.OutputPath,
	})

	// 上传是fire-and-forget,结果不影响任务状态
	if w.uploader != nil {
		go func() {
			if err := w.uploader.UploadOutput(context.Background(), job.OutputPath, job.VideoUUID); err != nil {
				logger.Warnf("upload connector failed video_uuid=%s error=%v", job.VideoUUID, err)
			}
		}()
	}
}

func (w *EmbedWorker) finalizeFailure(ctx context.Context, job *entity.ProcessingJob, cause error) {
	if err := job.Fail(cause.Error()); err != nil {
		logger.Errorf("fail job %s: %v", job.JobUUID, err)
		return
	}
	if err := w.jobRepo.UpdateStatus(ctx, job); err != nil {
		logger.Errorf("persist job failure failed job_uuid=%s error=%v", job.JobUUID, err)
	}
	if err := w.videoRepo.UpdateStatus(ctx, job.VideoUUID, vo.VideoStatusFailed); err != nil {
		logger.Errorf("persist video failure failed video_uuid=%s error=%v", job.VideoUUID, err)
	}

	logger.Error("job failed", map[string]interface{}{
		"job_uuid":   job.JobUUID,
		"video_uuid": job.VideoUUID,
		"error":      cause.Error(),
	})
}
