package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/decker502/softcursor/pkg/config"
)

// CursorSettings 演示程序的光标调参设置
// 持久化保存，重启后恢复上次的手感
type CursorSettings struct {
	FollowerRate   float64 `yaml:"followerRate"`   // 跟随速率（每秒）
	TransitionRate float64 `yaml:"transitionRate"` // 形变速率（每秒）
	DefaultSize    float64 `yaml:"defaultSize"`    // 空闲光标边长（像素）
}

// DefaultSettings 返回默认设置（与 config 包的默认配置一致）
func DefaultSettings() *CursorSettings {
	cfg := config.DefaultCursorConfig()
	return &CursorSettings{
		FollowerRate:   cfg.FollowerRate,
		TransitionRate: cfg.TransitionRate,
		DefaultSize:    cfg.DefaultSize,
	}
}

// SettingsManager 设置管理器
// 负责光标调参的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager  // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *CursorSettings // 当前设置
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "cursor"
)

// NewSettingsManager 创建新的设置管理器实例
//
// gdataManager 可为 nil（降级模式，仅内存设置）。
// 加载失败不是致命错误，回退到默认设置。
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// Load 从 gdata 加载设置
// gdataManager 为 nil 或数据不存在时使用默认设置
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	var loaded CursorSettings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	sm.settings = &loaded
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
// gdataManager 为 nil 时返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *CursorSettings {
	return sm.settings
}

// SetFollowerRate 设置跟随速率
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetFollowerRate(rate float64) {
	sm.settings.FollowerRate = clampRate(rate)
}

// SetTransitionRate 设置形变速率
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetTransitionRate(rate float64) {
	sm.settings.TransitionRate = clampRate(rate)
}

// SetDefaultSize 设置空闲光标边长
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetDefaultSize(size float64) {
	if size < 4 {
		size = 4
	}
	if size > 200 {
		size = 200
	}
	sm.settings.DefaultSize = size
}

// Overrides 把当前设置转换为配置覆盖项
func (sm *SettingsManager) Overrides() *config.CursorOverrides {
	s := sm.settings
	return &config.CursorOverrides{
		FollowerRate:   &s.FollowerRate,
		TransitionRate: &s.TransitionRate,
		DefaultSize:    &s.DefaultSize,
	}
}

// clampRate 速率限制在 0 ~ 60 每秒
func clampRate(rate float64) float64 {
	if rate < 0 {
		return 0
	}
	if rate > 60 {
		return 60
	}
	return rate
}
