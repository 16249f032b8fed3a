package dto

import (
	"time"

	"subflix/ddd/domain/entity"
)

// SettingsDto 设置数据传输对象。SecretKey不回传明文,只标记是否已配置。
type SettingsDto struct {
	MoviesSourcePath  string `json:"movies_source_path"`
	MoviesOutputPath  string `json:"movies_output_path"`
	TVShowsSourcePath string `json:"tvshows_source_path"`
	TVShowsOutputPath string `json:"tvshows_output_path"`

	UploadEnabled      bool   `json:"upload_enabled"`
	UploadEndpoint     string `json:"upload_endpoint"`
	UploadAccessKey    string `json:"upload_access_key"`
	UploadSecretKeySet bool   `json:"upload_secret_key_set"`
	UploadBucket       string `json:"upload_bucket"`
	UploadUseSSL       bool   `json:"upload_use_ssl"`

	UpdatedAt time.Time `json:"updated_at"`
}

// NewSettingsDto 从实体创建DTO
func NewSettingsDto(s *entity.Settings) *SettingsDto {
	if s == nil {
		return nil
	}
	return &SettingsDto{
		MoviesSourcePath:   s.MoviesSourcePath,
		MoviesOutputPath:   s.MoviesOutputPath,
		TVShowsSourcePath:  s.TVShowsSourcePath,
		TVShowsOutputPath:  s.TVShowsOutputPath,
		UploadEnabled:      s.UploadEnabled,
		UploadEndpoint:     s.UploadEndpoint,
		UploadAccessKey:    s.UploadAccessKey,
		UploadSecretKeySet: s.UploadSecretKey != "",
		UploadBucket:       s.UploadBucket,
		UploadUseSSL:       s.UploadUseSSL,
		UpdatedAt:          s.UpdatedAt,
	}
}
