package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// AnimationSettings 转移动画的共享参数
// 调度器/运动引擎/投影系统实时读取，设置面板通过 SettingsManager 的
// setter 修改。参数不做版本化：最新值作用于下一次调度决策或下一帧动画，
// 飞行中的转移实时读取模糊强度，但不会因时长变化而重启
type AnimationSettings struct {
	// TransferIntervalSec 转移触发间隔（秒）
	TransferIntervalSec float64 `yaml:"transferInterval"`

	// TransferDurationSec 单次转移动画时长（秒）
	TransferDurationSec float64 `yaml:"transferDuration"`

	// MotionBlurStrength 运动模糊强度 0.0 ~ 1.0
	MotionBlurStrength float64 `yaml:"motionBlur"`

	// ShadowsEnabled 投影开关
	ShadowsEnabled bool `yaml:"shadowsEnabled"`

	// SpiralProfile true 使用弧线翻面策略，false 使用直线策略
	SpiralProfile bool `yaml:"spiralProfile"`
}

// DefaultAnimationSettings 返回默认动画参数
func DefaultAnimationSettings() *AnimationSettings {
	return &AnimationSettings{
		TransferIntervalSec: 1.0,
		TransferDurationSec: 2.0,
		MotionBlurStrength:  0.5,
		ShadowsEnabled:      true,
		SpiralProfile:       true,
	}
}

// 参数取值范围
const (
	MinTransferInterval = 0.2
	MaxTransferInterval = 5.0
	MinTransferDuration = 0.3
	MaxTransferDuration = 6.0
)

// SettingsManager 设置管理器
// 负责动画参数的加载、保存和内存管理
// 动画状态本身不持久化（每次进入模式重建），持久化的只是面板偏好
type SettingsManager struct {
	gdataManager *gdata.Manager     // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *AnimationSettings // 当前参数

	// onIntervalChange 间隔变化时的额外回调（调度器重置计时器用）
	onIntervalChange func()
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "animation"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultAnimationSettings(),
	}

	// 尝试加载已保存的设置
	if err := sm.Load(); err != nil {
		// 加载失败不是致命错误，使用默认设置
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// Load 从 gdata 加载设置
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultAnimationSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultAnimationSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultAnimationSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	var loaded AnimationSettings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		sm.settings = DefaultAnimationSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	sm.settings = &loaded
	sm.clampAll()
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
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
// 返回的指针被各系统持有并实时读取
func (sm *SettingsManager) GetSettings() *AnimationSettings {
	return sm.settings
}

// SetOnIntervalChange 注册间隔变化回调
// 调度器用它实现"间隔变化只影响下一次触发"的重置策略
func (sm *SettingsManager) SetOnIntervalChange(fn func()) {
	sm.onIntervalChange = fn
}

// SetTransferInterval 设置转移触发间隔（秒）
// 取值被限制在 [MinTransferInterval, MaxTransferInterval]
// 间隔变化只作用于下一次调度触发，不会中断飞行中的转移
func (sm *SettingsManager) SetTransferInterval(sec float64) {
	sm.settings.TransferIntervalSec = clamp(sec, MinTransferInterval, MaxTransferInterval)
	if sm.onIntervalChange != nil {
		sm.onIntervalChange()
	}
}

// SetTransferDuration 设置单次转移时长（秒）
// 只作用于下一次起飞的转移，飞行中的转移不重启
func (sm *SettingsManager) SetTransferDuration(sec float64) {
	sm.settings.TransferDurationSec = clamp(sec, MinTransferDuration, MaxTransferDuration)
}

// SetMotionBlurStrength 设置运动模糊强度 (0.0 ~ 1.0)
// 飞行中的转移会实时读取新值
func (sm *SettingsManager) SetMotionBlurStrength(strength float64) {
	sm.settings.MotionBlurStrength = clamp(strength, 0.0, 1.0)
}

// SetShadowsEnabled 设置投影开关
func (sm *SettingsManager) SetShadowsEnabled(enabled bool) {
	sm.settings.ShadowsEnabled = enabled
}

// SetSpiralProfile 设置运动策略（true=弧线翻面，false=直线）
// 只作用于下一次起飞的转移
func (sm *SettingsManager) SetSpiralProfile(spiral bool) {
	sm.settings.SpiralProfile = spiral
}

// clampAll 将所有参数拉回合法区间（加载外部数据后调用）
func (sm *SettingsManager) clampAll() {
	s := sm.settings
	s.TransferIntervalSec = clamp(s.TransferIntervalSec, MinTransferInterval, MaxTransferInterval)
	s.TransferDurationSec = clamp(s.TransferDurationSec, MinTransferDuration, MaxTransferDuration)
	s.MotionBlurStrength = clamp(s.MotionBlurStrength, 0.0, 1.0)
}

// clamp 将 v 限制在 [lo, hi] 区间内
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
