package convertor

import (
	"subflix/ddd/domain/entity"
	"subflix/ddd/infrastructure/database/po"
)

// SettingsConvertor 设置 PO <-> 实体转换器
type SettingsConvertor struct{}

// NewSettingsConvertor 创建转换器
func NewSettingsConvertor() *SettingsConvertor {
	return &SettingsConvertor{}
}

// EntityToPO 实体转持久化对象
func (c *SettingsConvertor) EntityToPO(settings *entity.Settings) *po.AppSettings {
	return &po.AppSettings{
		SettingsUUID:      settings.SettingsUUID,
		MoviesSourcePath:  settings.MoviesSourcePath,
		MoviesOutputPath:  settings.MoviesOutputPath,
		TVShowsSourcePath: settings.TVShowsSourcePath,
		TVShowsOutputPath: settings.TVShowsOutputPath,
		UploadEnabled:     settings.UploadEnabled,
		UploadEndpoint:    settings.UploadEndpoint,
		UploadAccessKey:   settings.UploadAccessKey,
		UploadSecretKey:   settings.UploadSecretKey,
		UploadBucket:      settings.UploadBucket,
		UploadUseSSL:      settings.UploadUseSSL,
		CreatedAt:         settings.CreatedAt,
		UpdatedAt:         settings.UpdatedAt,
	}
}

// POToEntity 持久化对象转实体
func (c *SettingsConvertor) POToEntity(settingsPo *po.AppSettings) *entity.Settings {
	return &entity.Settings{
		SettingsUUID:      settingsPo.SettingsUUID,
		MoviesSourcePath:  settingsPo.MoviesSourcePath,
		MoviesOutputPath:  settingsPo.MoviesOutputPath,
		TVShowsSourcePath: settingsPo.TVShowsSourcePath,
		TVShowsOutputPath: settingsPo.TVShowsOutputPath,
		UploadEnabled:     settingsPo.UploadEnabled,
		UploadEndpoint:    settingsPo.UploadEndpoint,
		UploadAccessKey:   settingsPo.UploadAccessKey,
		UploadSecretKey:   settingsPo.UploadSecretKey,
		UploadBucket:      settingsPo.UploadBucket,
		UploadUseSSL:      settingsPo.UploadUseSSL,
		CreatedAt:         settingsPo.CreatedAt,
		UpdatedAt:         settingsPo.UpdatedAt,
	}
}
