package po

import "time"

// AppSettings 应用设置持久化对象，正常情况下只有一行
type AppSettings struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	SettingsUUID string `gorm:"uniqueIndex;size:36;not null" json:"settings_uuid"`

	MoviesSourcePath  string `gorm:"size:500" json:"movies_source_path"`
	MoviesOutputPath  string `gorm:"size:500" json:"movies_output_path"`
	TVShowsSourcePath string `gorm:"size:500" json:"tvshows_source_path"`
	TVShowsOutputPath string `gorm:"size:500" json:"tvshows_output_path"`

	UploadEnabled   bool   `json:"upload_enabled"`
	UploadEndpoint  string `gorm:"size:255" json:"upload_endpoint"`
	UploadAccessKey string `gorm:"size:255" json:"upload_access_key"`
	UploadSecretKey string `gorm:"size:255" json:"upload_secret_key"`
	UploadBucket    string `gorm:"size:255" json:"upload_bucket"`
	UploadUseSSL    bool   `json:"upload_use_ssl"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName 指定表名
func (AppSettings) TableName() string {
	return "app_settings"
}
