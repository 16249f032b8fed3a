package cqe

import "strings"

// UpdateSettingsReq 更新设置请求。全部字段可选，nil表示保持原值，
// 空串表示清空该项（禁用对应内容类型）。
type UpdateSettingsReq struct {
	MoviesSourcePath  *string `json:"movies_source_path"`
	MoviesOutputPath  *string `json:"movies_output_path"`
	TVShowsSourcePath *string `json:"tvshows_source_path"`
	TVShowsOutputPath *string `json:"tvshows_output_path"`

	UploadEnabled   *bool   `json:"upload_enabled"`
	UploadEndpoint  *string `json:"upload_endpoint"`
	UploadAccessKey *string `json:"upload_access_key"`
	UploadSecretKey *string `json:"upload_secret_key"`
	UploadBucket    *string `json:"upload_bucket"`
	UploadUseSSL    *bool   `json:"upload_use_ssl"`
}

func (req *UpdateSettingsReq) Validate() error {
	trim := func(p *string) {
		if p != nil {
			*p = strings.TrimSpace(*p)
		}
	}
	trim(req.MoviesSourcePath)
	trim(req.MoviesOutputPath)
	trim(req.TVShowsSourcePath)
	trim(req.TVShowsOutputPath)
	trim(req.UploadEndpoint)
	trim(req.UploadBucket)
	return nil
}
