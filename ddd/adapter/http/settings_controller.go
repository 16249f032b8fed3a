package http

import (
	"github.com/gin-gonic/gin"

	"subflix/ddd/application/app"
	"subflix/ddd/application/cqe"
	"subflix/pkg/restapi"
)

// SettingsController 设置控制器
type SettingsController struct {
	settingsApp app.SettingsApp
}

// NewSettingsController 创建设置控制器
func NewSettingsController(settingsApp app.SettingsApp) *SettingsController {
	return &SettingsController{settingsApp: settingsApp}
}

// GetSettings 读取当前设置
func (c *SettingsController) GetSettings(ctx *gin.Context) {
	resp, err := c.settingsApp.GetSettings(ctx.Request.Context())
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}
	restapi.Success(ctx, resp)
}

// UpdateSettings 部分更新设置
func (c *SettingsController) UpdateSettings(ctx *gin.Context) {
	var req cqe.UpdateSettingsReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		restapi.Failed(ctx, err)
		return
	}

	resp, err := c.settingsApp.UpdateSettings(ctx.Request.Context(), &req)
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}
	restapi.Success(ctx, resp)
}
