package entity

import (
	"time"

	"github.com/google/uuid"

	"subflix/ddd/domain/vo"
)

// Settings 运行时设置，存储于数据库的单行记录。媒体库路径为空
// 表示对应内容类型的扫描/处理被禁用。
type Settings struct {
	SettingsUUID string

	MoviesSourcePath  string
	MoviesOutputPath  string
	TVShowsSourcePath string
	TVShowsOutputPath string

	// 上传连接器（S3兼容对象存储），可选
	UploadEnabled   bool
	UploadEndpoint  string
	UploadAccessKey string
	UploadSecretKey string
	UploadBucket    string
	UploadUseSSL    bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultSettings 全空的默认设置
func DefaultSettings() *Settings {
	now := time.Now()
	return &Settings{
		SettingsUUID: uuid.New().String(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// SourcePath 按内容类型取源目录，空串表示禁用
func (s *Settings) SourcePath(contentType vo.ContentType) string {
	switch contentType {
	case vo.ContentTypeMovies:
		return s.MoviesSourcePath
	case vo.ContentTypeTVShows:
		return s.TVShowsSourcePath
	default:
		return ""
	}
}

// OutputPath 按内容类型取输出目录，空串表示禁用
func (s *Settings) OutputPath(contentType vo.ContentType) string {
	switch contentType {
	case vo.ContentTypeMovies:
		return s.MoviesOutputPath
	case vo.ContentTypeTVShows:
		return s.TVShowsOutputPath
	default:
		return ""
	}
}

// UploadConfigured 上传连接器配置是否完整
func (s *Settings) UploadConfigured() bool {
	return s.UploadEnabled && s.UploadEndpoint != "" && s.UploadBucket != ""
}
