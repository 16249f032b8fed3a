package app

import (
	"context"
	"time"

	"subflix/ddd/application/cqe"
	"subflix/ddd/application/dto"
	"subflix/ddd/domain/repo"
	"subflix/pkg/errno"
	"subflix/pkg/logger"
)

type SettingsApp interface {
	// GetSettings 读取当前设置
	GetSettings(ctx context.Context) (*dto.SettingsDto, error)
	// UpdateSettings 部分更新设置,未携带的字段保持原值
	UpdateSettings(ctx context.Context, req *cqe.UpdateSettingsReq) (*dto.SettingsDto, error)
}

type settingsAppImpl struct {
	settingsRepo repo.SettingsRepository
}

func NewSettingsApp(settingsRepo repo.SettingsRepository) SettingsApp {
	return &settingsAppImpl{settingsRepo: settingsRepo}
}

func (s *settingsAppImpl) GetSettings(ctx context.Context) (*dto.SettingsDto, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, errno.NewBizError(errno.ErrDatabase, err)
	}
	return dto.NewSettingsDto(settings), nil
}

func (s *settingsAppImpl) UpdateSettings(ctx context.Context, req *cqe.UpdateSettingsReq) (*dto.SettingsDto, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, errno.NewBizError(errno.ErrDatabase, err)
	}

	if req.MoviesSourcePath != nil {
		settings.MoviesSourcePath = *req.MoviesSourcePath
	}
	if req.MoviesOutputPath != nil {
		settings.MoviesOutputPath = *req.MoviesOutputPath
	}
	if req.TVShowsSourcePath != nil {
		settings.TVShowsSourcePath = *req.TVShowsSourcePath
	}
	if req.TVShowsOutputPath != nil {
		settings.TVShowsOutputPath = *req.TVShowsOutputPath
	}
	if req.UploadEnabled != nil {
		settings.UploadEnabled = *req.UploadEnabled
	}
	if req.UploadEndpoint != nil {
		settings.UploadEndpoint = *req.UploadEndpoint
	}
	if req.UploadAccessKey != nil {
		settings.UploadAccessKey = *req.UploadAccessKey
	}
	if req.UploadSecretKey != nil {
		settings.UploadSecretKey = *req.UploadSecretKey
	}
	if req.UploadBucket != nil {
		settings.UploadBucket = *req.UploadBucket
	}
	if req.UploadUseSSL != nil {
		settings.UploadUseSSL = *req.UploadUseSSL
	}
	settings.UpdatedAt = time.Now()

	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return nil, errno.NewBizError(errno.ErrDatabase, err)
	}
	logger.Infof("settings updated")
	return dto.NewSettingsDto(settings), nil
}
