package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"subflix/ddd/infrastructure/database/po"
	"subflix/pkg/logger"
)

// SettingsDAO 设置数据访问对象
type SettingsDAO struct {
	db *gorm.DB
}

// NewSettingsDAO 创建设置DAO实例
func NewSettingsDAO(db *gorm.DB) *SettingsDAO {
	return &SettingsDAO{db: db}
}

// FindLatest 取最新一行设置,不存在返回 (nil, nil)
func (d *SettingsDAO) FindLatest(ctx context.Context) (*po.AppSettings, error) {
	var settingsPo po.AppSettings
	err := d.db.WithContext(ctx).Order("created_at DESC").First(&settingsPo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &settingsPo, nil
}

// Save 插入或整体更新设置行
func (d *SettingsDAO) Save(ctx context.Context, settingsPo *po.AppSettings) error {
	err := d.db.WithContext(ctx).Save(settingsPo).Error
	if err != nil {
		logger.Errorf("save settings failed error=%v", err)
		return err
	}
	return nil
}
