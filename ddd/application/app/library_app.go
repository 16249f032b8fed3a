package app

import (
	"context"

	"subflix/ddd/application/cqe"
	"subflix/ddd/application/dto"
	"subflix/ddd/domain/entity"
	"subflix/ddd/domain/repo"
	"subflix/ddd/domain/service"
	"subflix/ddd/domain/vo"
	"subflix/pkg/errno"
	"subflix/pkg/logger"
)

type LibraryApp interface {
	// ScanLibrary 扫描媒体库并幂等落库
	ScanLibrary(ctx context.Context, req *cqe.ScanLibraryReq) (*dto.ScanResultDto, error)
	// ListVideoFiles 查询目录中的视频文件
	ListVideoFiles(ctx context.Context, req *cqe.ListVideoFilesReq) (*dto.VideoFileListDto, error)
	// ResetVideoFile 把失败的视频重置回pending
	ResetVideoFile(ctx context.Context, req *cqe.VideoFileIDReq) (*dto.VideoFileDto, error)
	// ClearVideoFiles 清空目录
	ClearVideoFiles(ctx context.Context) error
}

type libraryAppImpl struct {
	videoRepo    repo.VideoFileRepository
	settingsRepo repo.SettingsRepository
}

func NewLibraryApp(videoRepo repo.VideoFileRepository, settingsRepo repo.SettingsRepository) LibraryApp {
	return &libraryAppImpl{
		videoRepo:    videoRepo,
		settingsRepo: settingsRepo,
	}
}

func (l *libraryAppImpl) ScanLibrary(ctx context.Context, req *cqe.ScanLibraryReq) (*dto.ScanResultDto, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	contentType := vo.ContentType(req.ContentType)

	settings, err := l.settingsRepo.Get(ctx)
	if err != nil {
		return nil, errno.NewBizError(errno.ErrDatabase, err)
	}
	root, ok := service.SourceRoot(settings, contentType)
	if !ok {
		return nil, errno.ErrSourcePathNotConfigured
	}

	scan, err := service.ScanLibrary(root)
	if err != nil {
		return nil, errno.NewBizError(errno.ErrInternalServer, err)
	}
	for _, warning := range scan.Warnings {
		logger.Warnf("scan warning content_type=%s %s", contentType, warning)
	}

	paired := 0
	for _, video := range scan.Videos {
		videoFile := entity.NewVideoFile(contentType, video.Path, video.Name, video.Size)
		if match, found := service.ResolveSubtitle(video.Name, scan.Subtitles); found {
			videoFile.PairSubtitle(match.Path, match.Language)
			paired++
		}
		// 已存在的记录保留其UUID与状态,只刷新大小与字幕配对
		if _, err := l.videoRepo.Upsert(ctx, videoFile); err != nil {
			return nil, errno.NewBizError(errno.ErrDatabase, err)
		}
	}

	logger.Info("library scan finished", map[string]interface{}{
		"content_type": contentType.String(),
		"videos":       len(scan.Videos),
		"subtitles":    len(scan.Subtitles),
		"paired":       paired,
		"warnings":     len(scan.Warnings),
	})

	return &dto.ScanResultDto{
		ContentType:    contentType.String(),
		VideosFound:    len(scan.Videos),
		SubtitlesFound: len(scan.Subtitles),
		Paired:         paired,
		Warnings:       scan.Warnings,
	}, nil
}

func (l *libraryAppImpl) ListVideoFiles(ctx context.Context, req *cqe.ListVideoFilesReq) (*dto.VideoFileListDto, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	files, err := l.videoRepo.List(ctx, vo.ContentType(req.ContentType), vo.VideoStatus(req.Status))
	if err != nil {
		return nil, errno.NewBizError(errno.ErrDatabase, err)
	}
	return dto.NewVideoFileListDto(files), nil
}

func (l *libraryAppImpl) ResetVideoFile(ctx context.Context, req *cqe.VideoFileIDReq) (*dto.VideoFileDto, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	video, err := l.videoRepo.GetByUUID(ctx, req.VideoUUID)
	if err != nil {
		return nil, errno.NewBizError(errno.ErrDatabase, err)
	}
	if video == nil {
		return nil, errno.ErrVideoFileNotFound
	}
	if video.Status != vo.VideoStatusFailed {
		return nil, errno.ErrVideoNotResettable
	}
	if err := video.TransitionTo(vo.VideoStatusPending); err != nil {
		return nil, errno.NewBizError(errno.ErrInvalidParam, err)
	}
	if err := l.videoRepo.UpdateStatus(ctx, video.VideoUUID, video.Status); err != nil {
		return nil, errno.NewBizError(errno.ErrDatabase, err)
	}
	return dto.NewVideoFileDto(video), nil
}

func (l *libraryAppImpl) ClearVideoFiles(ctx context.Context) error {
	if err := l.videoRepo.DeleteAll(ctx); err != nil {
		return errno.NewBizError(errno.ErrDatabase, err)
	}
	logger.Infof("video file catalog cleared")
	return nil
}
