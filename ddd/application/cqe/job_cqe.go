package cqe

import "subflix/pkg/errno"

// CreateJobReq 为视频创建转封装任务的请求
type CreateJobReq struct {
	VideoUUID string `uri:"video_file_id" binding:"required"`
}

func (req *CreateJobReq) Validate() error {
	if req.VideoUUID == "" {
		return errno.ErrVideoFileIDRequired
	}
	return nil
}

// JobIDReq 按UUID定位任务的请求
type JobIDReq struct {
	JobUUID string `uri:"job_id" binding:"required"`
}

func (req *JobIDReq) Validate() error {
	if req.JobUUID == "" {
		return errno.ErrJobIDRequired
	}
	return nil
}
