package cqe

import (
	"subflix/ddd/domain/vo"
	"subflix/pkg/errno"
)

// ScanLibraryReq 扫描媒体库请求
type ScanLibraryReq struct {
	ContentType string `json:"content_type" form:"content_type" binding:"required"`
}

func (req *ScanLibraryReq) Validate() error {
	if !vo.ContentType(req.ContentType).IsValid() {
		return errno.ErrContentTypeInvalid
	}
	return nil
}

// ListVideoFilesReq 查询视频文件列表请求，过滤字段可选
type ListVideoFilesReq struct {
	ContentType string `form:"content_type"`
	Status      string `form:"status"`
}

func (req *ListVideoFilesReq) Validate() error {
	if req.ContentType != "" && !vo.ContentType(req.ContentType).IsValid() {
		return errno.ErrContentTypeInvalid
	}
	if req.Status != "" && !vo.VideoStatus(req.Status).IsValid() {
		return errno.ErrInvalidParam
	}
	return nil
}

// VideoFileIDReq 按UUID定位视频文件的请求
type VideoFileIDReq struct {
	VideoUUID string `uri:"video_file_id" binding:"required"`
}

func (req *VideoFileIDReq) Validate() error {
	if req.VideoUUID == "" {
		return errno.ErrVideoFileIDRequired
	}
	return nil
}
