package repo

import (
	"context"

	"subflix/ddd/domain/entity"
)

// SettingsRepository 设置仓储接口，库内始终只有一行有效记录
type SettingsRepository interface {
	// Get 读取当前设置，不存在时创建并返回默认设置
	Get(ctx context.Context) (*entity.Settings, error)

	// Save 覆盖保存设置
	Save(ctx context.Context, settings *entity.Settings) error
}
