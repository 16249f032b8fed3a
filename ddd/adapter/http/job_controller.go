package http

import (
	"github.com/gin-gonic/gin"

	"subflix/ddd/application/app"
	"subflix/ddd/application/cqe"
	"subflix/pkg/restapi"
)

// JobController 转封装任务控制器
type JobController struct {
	jobApp app.JobApp
}

// NewJobController 创建任务控制器
func NewJobController(jobApp app.JobApp) *JobController {
	return &JobController{jobApp: jobApp}
}

// CreateJob 为视频创建转封装任务
func (c *JobController) CreateJob(ctx *gin.Context) {
	req := cqe.CreateJobReq{VideoUUID: ctx.Param("video_file_id")}

	resp, err := c.jobApp.CreateJob(ctx.Request.Context(), &req)
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}
	restapi.Success(ctx, resp)
}

// GetJob 查询任务详情
func (c *JobController) GetJob(ctx *gin.Context) {
	req := cqe.JobIDReq{JobUUID: ctx.Param("job_id")}

	resp, err := c.jobApp.GetJob(ctx.Request.Context(), &req)
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}
	restapi.Success(ctx, resp)
}

// ListJobs 任务列表
func (c *JobController) ListJobs(ctx *gin.Context) {
	resp, err := c.jobApp.ListJobs(ctx.Request.Context())
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}
	restapi.Success(ctx, resp)
}

// ClearJobs 批量删除已结束的任务
func (c *JobController) ClearJobs(ctx *gin.Context) {
	resp, err := c.jobApp.ClearJobs(ctx.Request.Context())
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}
	restapi.Success(ctx, resp)
}
