package app

import (
	"errors"
	"strings"
	"time"

	"github.com/talkincode/stockpilot/internal/domain"
	"github.com/talkincode/stockpilot/pkg/common"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func (a *Application) checkSuper() {
	const superUsername = "admin"
	const defaultPassword = "stockpilot"

	hashedPassword, err := common.HashPassword(defaultPassword)
	if err != nil {
		zap.L().Error("failed to hash default password", zap.Error(err))
		return
	}

	var user domain.SysUser
	err = a.gormDB.Where("username = ?", superUsername).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := a.gormDB.Create(&domain.SysUser{
			ID:        common.UUIDint64(),
			Username:  superUsername,
			Password:  hashedPassword,
			Realname:  "administrator",
			Email:     "N/A",
			Role:      domain.RoleAdmin,
			Status:    common.ENABLED,
			LastLogin: time.Now(),
		}).Error; err != nil {
			zap.L().Error("failed to create default admin", zap.Error(err))
		} else {
			zap.L().Info("initialized default admin account", zap.String("username", superUsername))
		}
		return
	case err != nil:
		zap.L().Error("failed to query default admin", zap.Error(err))
		return
	}

	resetPassword := strings.TrimSpace(user.Password) == ""
	resetRole := user.Role != domain.RoleAdmin
	resetStatus := !strings.EqualFold(user.Status, common.ENABLED)

	if !resetPassword && !resetRole && !resetStatus {
		return
	}

	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if resetPassword {
		updates["password"] = hashedPassword
	}
	if resetRole {
		updates["role"] = domain.RoleAdmin
	}
	if resetStatus {
		updates["status"] = common.ENABLED
	}

	if err := a.gormDB.Model(&domain.SysUser{}).Where("id = ?", user.ID).Updates(updates).Error; err != nil {
		zap.L().Error("failed to repair default admin account", zap.Error(err))
		return
	}

	zap.L().Warn("repaired default admin account",
		zap.String("username", superUsername),
		zap.Bool("passwordReset", resetPassword),
		zap.Bool("roleReset", resetRole),
		zap.Bool("statusEnabled", resetStatus))
}

// checkSettings initializes missing runtime settings with defaults
func (a *Application) checkSettings() {
	defaultSettings := []domain.SysConfig{
		{Type: "web", Name: "page_size", Value: "10", Remark: "Products per page in list views"},
		{Type: "web", Name: "site_title", Value: "Inventory Admin", Remark: "Title shown in page headers"},
	}

	for sortid, setting := range defaultSettings {
		var count int64
		a.gormDB.Model(&domain.SysConfig{}).
			Where("type = ? and name = ?", setting.Type, setting.Name).
			Count(&count)

		if count == 0 {
			setting.ID = common.UUIDint64()
			setting.Sort = sortid
			if err := a.gormDB.Create(&setting).Error; err != nil {
				zap.L().Error("failed to create default setting",
					zap.String("name", setting.Name),
					zap.Error(err))
			} else {
				zap.L().Info("initialized setting",
					zap.String("key", setting.Type+"."+setting.Name),
					zap.String("default", setting.Value))
			}
		}
	}
}
