package persistence

import (
	"context"
	"time"

	"gorm.io/gorm"

	"subflix/ddd/domain/entity"
	"subflix/ddd/domain/repo"
	"subflix/ddd/infrastructure/database/convertor"
	"subflix/ddd/infrastructure/database/dao"
)

// settingsRepositoryImpl 设置仓储实现
type settingsRepositoryImpl struct {
	settingsDao *dao.SettingsDAO
	convertor   *convertor.SettingsConvertor
}

// NewSettingsRepository 创建设置仓储实现
func NewSettingsRepository(db *gorm.DB) repo.SettingsRepository {
	return &settingsRepositoryImpl{
		settingsDao: dao.NewSettingsDAO(db),
		convertor:   convertor.NewSettingsConvertor(),
	}
}

// Get 读取当前设置,首次访问时落库一行默认设置
func (r *settingsRepositoryImpl) Get(ctx context.Context) (*entity.Settings, error) {
	settingsPo, err := r.settingsDao.FindLatest(ctx)
	if err != nil {
		return nil, err
	}
	if settingsPo == nil {
		defaults := entity.DefaultSettings()
		if err := r.settingsDao.Save(ctx, r.convertor.EntityToPO(defaults)); err != nil {
			return nil, err
		}
		return defaults, nil
	}
	return r.convertor.POToEntity(settingsPo), nil
}

// Save 覆盖保存;已有记录时沿用其主键,保证单行语义
func (r *settingsRepositoryImpl) Save(ctx context.Context, settings *entity.Settings) error {
	settings.UpdatedAt = time.Now()
	settingsPo := r.convertor.EntityToPO(settings)

	existing, err := r.settingsDao.FindLatest(ctx)
	if err != nil {
		return err
	}
	if existing != nil {
		settingsPo.ID = existing.ID
		settingsPo.CreatedAt = existing.CreatedAt
	}
	return r.settingsDao.Save(ctx, settingsPo)
}
