package app

import (
	"sync"
	"time"

	"github.com/spf13/cast"
	"github.com/talkincode/stockpilot/internal/domain"
	"go.uber.org/zap"
)

// ConfigManager reads and writes runtime settings stored in the sys_config
// table. Values are cached per category/name with a short TTL.
type ConfigManager struct {
	app   *Application
	mu    sync.RWMutex
	cache map[string]cachedValue
}

type cachedValue struct {
	value    string
	expireAt time.Time
}

const configCacheTTL = 30 * time.Second

func NewConfigManager(a *Application) *ConfigManager {
	return &ConfigManager{app: a, cache: make(map[string]cachedValue)}
}

func (cm *ConfigManager) GetString(category, name string) string {
	key := category + "." + name

	cm.mu.RLock()
	if cv, ok := cm.cache[key]; ok && time.Now().Before(cv.expireAt) {
		cm.mu.RUnlock()
		return cv.value
	}
	cm.mu.RUnlock()

	var cfg domain.SysConfig
	err := cm.app.gormDB.Where("type = ? and name = ?", category, name).First(&cfg).Error
	if err != nil {
		return ""
	}

	cm.mu.Lock()
	cm.cache[key] = cachedValue{value: cfg.Value, expireAt: time.Now().Add(configCacheTTL)}
	cm.mu.Unlock()
	return cfg.Value
}

func (cm *ConfigManager) GetInt64(category, name string) int64 {
	return cast.ToInt64(cm.GetString(category, name))
}

func (cm *ConfigManager) GetBool(category, name string) bool {
	return cast.ToBool(cm.GetString(category, name))
}

// Set upserts a setting and invalidates its cache entry.
func (cm *ConfigManager) Set(category, name, value string) error {
	var count int64
	cm.app.gormDB.Model(&domain.SysConfig{}).
		Where("type = ? and name = ?", category, name).
		Count(&count)

	var err error
	if count == 0 {
		err = cm.app.gormDB.Create(&domain.SysConfig{
			Type:  category,
			Name:  name,
			Value: value,
		}).Error
	} else {
		err = cm.app.gormDB.Model(&domain.SysConfig{}).
			Where("type = ? and name = ?", category, name).
			Update("value", value).Error
	}
	if err != nil {
		zap.L().Error("failed to save setting",
			zap.String("category", category),
			zap.String("name", name),
			zap.Error(err))
		return err
	}

	cm.mu.Lock()
	delete(cm.cache, category+"."+name)
	cm.mu.Unlock()
	return nil
}
