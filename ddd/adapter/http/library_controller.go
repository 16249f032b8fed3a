package http

import (
	"github.com/gin-gonic/gin"

	"subflix/ddd/application/app"
	"subflix/ddd/application/cqe"
	"subflix/pkg/restapi"
)

// LibraryController 媒体库控制器
type LibraryController struct {
	libraryApp app.LibraryApp
}

// NewLibraryController 创建媒体库控制器
func NewLibraryController(libraryApp app.LibraryApp) *LibraryController {
	return &LibraryController{libraryApp: libraryApp}
}

// ScanLibrary 触发一次媒体库扫描
func (c *LibraryController) ScanLibrary(ctx *gin.Context) {
	var req cqe.ScanLibraryReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		restapi.Failed(ctx, err)
		return
	}

	resp, err := c.libraryApp.ScanLibrary(ctx.Request.Context(), &req)
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}
	restapi.Success(ctx, resp)
}

// ListVideoFiles 查询目录
func (c *LibraryController) ListVideoFiles(ctx *gin.Context) {
	var req cqe.ListVideoFilesReq
	if err := ctx.ShouldBindQuery(&req); err != nil {
		restapi.Failed(ctx, err)
		return
	}

	resp, err := c.libraryApp.ListVideoFiles(ctx.Request.Context(), &req)
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}
	restapi.Success(ctx, resp)
}

// ResetVideoFile 把失败的视频重置回pending
func (c *LibraryController) ResetVideoFile(ctx *gin.Context) {
	req := cqe.VideoFileIDReq{VideoUUID: ctx.Param("video_file_id")}

	resp, err := c.libraryApp.ResetVideoFile(ctx.Request.Context(), &req)
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}
	restapi.Success(ctx, resp)
}

// ClearVideoFiles 清空目录
func (c *LibraryController) ClearVideoFiles(ctx *gin.Context) {
	if err := c.libraryApp.ClearVideoFiles(ctx.Request.Context()); err != nil {
		restapi.Failed(ctx, err)
		return
	}
	restapi.Success(ctx, nil)
}
