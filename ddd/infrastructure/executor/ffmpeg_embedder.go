package executor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"subflix/ddd/domain/entity"
	"subflix/ddd/domain/port"
	"subflix/pkg/config"
	"subflix/pkg/errno"
	"subflix/pkg/logger"
)

// FFmpegEmbedder implements port.EmbedExecutor with a local ffmpeg binary.
// All existing streams are copied unmodified; the subtitle is mapped in as an
// additional stream. No re-encoding happens at any point.
type FFmpegEmbedder struct {
	cfg *config.FFmpegConfig
}

// NewFFmpegEmbedder 创建ffmpeg转封装执行器
func NewFFmpegEmbedder(cfg *config.FFmpegConfig) *FFmpegEmbedder {
	return &FFmpegEmbedder{cfg: cfg}
}

// Execute runs the remux for one job. A nil return means ffmpeg exited zero
// and a non-empty output file exists; anything else is reported as an error
// carrying the bounded stderr tail.
func (e *FFmpegEmbedder) Execute(ctx context.Context, job *entity.ProcessingJob, opts port.EmbedOptions) error {
	if job == nil {
		return errors.New("nil job")
	}

	if err := os.MkdirAll(filepath.Dir(job.OutputPath), 0o755); err != nil {
		return errno.NewBizError(errno.ErrOutputPath, err)
	}

	if e.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.cfg.Timeout)
		defer cancel()
	}

	// 时长探测失败时 durationSec 为0,进度降级为不确定态,不阻塞任务
	durationSec := e.probeDurationSeconds(job.InputPath)
	if durationSec <= 0 {
		logger.Warnf("duration probe failed, progress will be indeterminate input=%s", job.InputPath)
	}

	cmd := e.buildCommand(ctx, job)
	logger.Infof("ffmpeg command job_uuid=%s command=%s", job.JobUUID, strings.Join(cmd.Args, " "))

	if err := e.runCommand(ctx, cmd, durationSec, opts.ProgressCb); err != nil {
		// 失败时不保留半成品输出
		_ = os.Remove(job.OutputPath)
		return err
	}

	info, err := os.Stat(job.OutputPath)
	if err != nil {
		return errno.NewBizError(errno.ErrTranscoder, fmt.Errorf("output file missing: %w", err))
	}
	if info.Size() == 0 {
		_ = os.Remove(job.OutputPath)
		return errno.NewBizError(errno.ErrTranscoder, errors.New("output file is empty"))
	}
	return nil
}

// buildCommand 组装转封装命令:复制全部流,字幕作为新流加入
func (e *FFmpegEmbedder) buildCommand(ctx context.Context, job *entity.ProcessingJob) *exec.Cmd {
	args := []string{
		"-y",
		"-i", job.InputPath,
		"-i", job.SubtitlePath,
		"-c", "copy",
		"-c:s", e.cfg.SubtitleCodec,
		"-map", "0",
		"-map", "1",
		job.OutputPath,
	}
	return exec.CommandContext(ctx, e.cfg.BinaryPath, args...)
}

func (e *FFmpegEmbedder) runCommand(ctx context.Context, cmd *exec.Cmd, durationSec float64, progressCb port.ProgressCallback) error {
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return errno.NewBizError(errno.ErrTranscoder, fmt.Errorf("stderr pipe: %w", err))
	}

	if err := cmd.Start(); err != nil {
		return errno.NewBizError(errno.ErrTranscoder, fmt.Errorf("start ffmpeg: %w", err))
	}

	tail := newStderrTail(e.cfg.StderrTail)
	scanDone := make(chan struct{})
	go func() {
		defer close(scanDone)
		e.scanStderr(stderr, durationSec, tail, progressCb)
	}()

	waitErr := cmd.Wait()
	<-scanDone

	if waitErr != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return errno.NewBizError(errno.ErrTranscoder, errors.New("timed out"))
		}
		return errno.NewBizError(errno.ErrTranscoder,
			fmt.Errorf("ffmpeg exited with error: %v; last output: %s", waitErr, tail.String()))
	}
	return nil
}

func (e *FFmpegEmbedder) scanStderr(stderr io.Reader, durationSec float64, tail *stderrTail, progressCb port.ProgressCallback) {
	parser := NewProgressParser(durationSec)
	scanner := bufio.NewScanner(stderr)
	scanner.Buffer(make([]byte, 0, 1024), 1024*1024)
	// ffmpeg以\r刷新进度行,按行和回车都切分
	scanner.Split(scanCRorLF)

	for scanner.Scan() {
		line := scanner.Text()
		if pct, ok := parser.ParseLine(line); ok {
			if progressCb != nil {
				progressCb(pct)
			}
			continue
		}
		if strings.TrimSpace(line) != "" {
			tail.Append(line)
		}
	}
}

// scanCRorLF 兼容ffmpeg用\r覆写进度行的输出习惯
func scanCRorLF(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	for i, b := range data {
		if b == '\n' || b == '\r' {
			return i + 1, data[:i], nil
		}
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// probeDurationSeconds 调用 ffprobe 获取输入时长(秒),失败则返回 0。
func (e *FFmpegEmbedder) probeDurationSeconds(inputPath string) float64 {
	cmd := exec.Command(e.cfg.ProbePath,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		inputPath,
	)
	out, err := cmd.Output()
	if err != nil {
		return 0
	}
	val, err := strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
	if err != nil {
		return 0
	}
	return val
}
