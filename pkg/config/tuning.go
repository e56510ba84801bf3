package config

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed tuning.yaml
var defaultTuningYAML []byte

// FloorShadowTuning 地面投影参数
type FloorShadowTuning struct {
	Width  float64 `yaml:"width"`  // 投影椭圆宽度（像素）
	Height float64 `yaml:"height"` // 投影椭圆高度（像素）
	Alpha  float32 `yaml:"alpha"`  // 投影透明度 (0.0-1.0)
}

// PileShadowTuning 堆顶投影参数
type PileShadowTuning struct {
	Alpha   float32 `yaml:"alpha"`    // 投影透明度 (0.0-1.0)
	OffsetX float64 `yaml:"offset_x"` // 相对顶牌中心的X偏移（像素）
	OffsetY float64 `yaml:"offset_y"` // 相对顶牌中心的Y偏移（像素）
	// HitMargin 命中宽度余量（像素）
	// 命中宽度 = 卡牌宽度 + HitMargin，飞行卡牌与堆锚点的
	// 水平距离小于命中宽度时才可能出现堆顶投影
	HitMargin float64 `yaml:"hit_margin"`
}

// TuningConfig 转移动画调参配置
// 从嵌入的 tuning.yaml 加载，集中存放没有推导公式的实测常量
type TuningConfig struct {
	// ClearanceFactor 安全距离系数
	// 飞行卡牌与源堆锚点的水平距离超过 ClearanceFactor*卡牌宽度
	// 时解锁弧线/翻面/层级提升行为
	ClearanceFactor float64 `yaml:"clearance_factor"`

	// ArcHeight 弧线抬升高度（像素）
	// 弧线峰值 = min(起点Y, 终点Y) - ArcHeight
	ArcHeight float64 `yaml:"arc_height"`

	// ArcDurationFraction 弧线子动画时长占剩余转移时长的比例
	ArcDurationFraction float64 `yaml:"arc_duration_fraction"`

	// FlipDuration 翻面子动画总时长（秒），与弧线时长相互独立
	// 实际时长不超过转移的剩余时间
	FlipDuration float64 `yaml:"flip_duration"`

	// SettleDuration 堆底弹出后剩余卡牌补位动画的时长（秒）
	// 与主转移的时长相互独立
	SettleDuration float64 `yaml:"settle_duration"`

	FloorShadow FloorShadowTuning `yaml:"floor_shadow"`
	PileShadow  PileShadowTuning  `yaml:"pile_shadow"`

	// BlurGhosts 运动模糊残影数量
	BlurGhosts int `yaml:"blur_ghosts"`

	// BlurGhostSpacing 相邻残影之间的时间间距（秒）
	BlurGhostSpacing float64 `yaml:"blur_ghost_spacing"`
}

// LoadTuningConfig 解析嵌入的默认调参配置
func LoadTuningConfig() (*TuningConfig, error) {
	return parseTuningConfig(defaultTuningYAML)
}

// parseTuningConfig 解析 YAML 数据并做基本校验
func parseTuningConfig(data []byte) (*TuningConfig, error) {
	var cfg TuningConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tuning config: %w", err)
	}

	if cfg.ClearanceFactor <= 0 {
		return nil, fmt.Errorf("invalid clearance_factor: %v", cfg.ClearanceFactor)
	}
	if cfg.ArcDurationFraction <= 0 || cfg.ArcDurationFraction > 1 {
		return nil, fmt.Errorf("invalid arc_duration_fraction: %v", cfg.ArcDurationFraction)
	}
	if cfg.FlipDuration <= 0 {
		return nil, fmt.Errorf("invalid flip_duration: %v", cfg.FlipDuration)
	}
	if cfg.SettleDuration <= 0 {
		return nil, fmt.Errorf("invalid settle_duration: %v", cfg.SettleDuration)
	}
	if cfg.BlurGhosts < 0 {
		return nil, fmt.Errorf("invalid blur_ghosts: %d", cfg.BlurGhosts)
	}

	return &cfg, nil
}

// ClearanceDistance 返回按卡牌宽度换算的安全距离（像素）
func (c *TuningConfig) ClearanceDistance(cardWidth float64) float64 {
	return c.ClearanceFactor * cardWidth
}

// PileHitWidth 返回堆顶投影的命中宽度（像素）
func (c *TuningConfig) PileHitWidth(cardWidth float64) float64 {
	return cardWidth + c.PileShadow.HitMargin
}
