package config

import "testing"

// TestLoadTuningConfig 测试嵌入的默认调参配置
func TestLoadTuningConfig(t *testing.T) {
	cfg, err := LoadTuningConfig()
	if err != nil {
		t.Fatalf("LoadTuningConfig failed: %v", err)
	}

	if cfg.ClearanceFactor != 1.5 {
		t.Errorf("ClearanceFactor = %v, want 1.5", cfg.ClearanceFactor)
	}
	if cfg.ArcDurationFraction != 0.6 {
		t.Errorf("ArcDurationFraction = %v, want 0.6", cfg.ArcDurationFraction)
	}
	if cfg.FlipDuration <= 0 {
		t.Errorf("FlipDuration = %v, want > 0", cfg.FlipDuration)
	}
	if cfg.BlurGhosts <= 0 {
		t.Errorf("BlurGhosts = %v, want > 0", cfg.BlurGhosts)
	}
}

// TestParseTuningConfig_Invalid 测试非法配置的校验
func TestParseTuningConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad yaml", "clearance_factor: ["},
		{"zero clearance", "clearance_factor: 0\narc_duration_fraction: 0.6\nflip_duration: 0.3\nsettle_duration: 0.25"},
		{"arc fraction above 1", "clearance_factor: 1.5\narc_duration_fraction: 1.5\nflip_duration: 0.3\nsettle_duration: 0.25"},
		{"zero flip duration", "clearance_factor: 1.5\narc_duration_fraction: 0.6\nflip_duration: 0\nsettle_duration: 0.25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseTuningConfig([]byte(tt.yaml)); err == nil {
				t.Error("Expected parse error, got nil")
			}
		})
	}
}

// TestTuningConfig_Derived 测试派生量计算
func TestTuningConfig_Derived(t *testing.T) {
	cfg, err := LoadTuningConfig()
	if err != nil {
		t.Fatalf("LoadTuningConfig failed: %v", err)
	}

	// 安全距离 = 系数 × 卡牌宽度
	if got := cfg.ClearanceDistance(80); got != cfg.ClearanceFactor*80 {
		t.Errorf("ClearanceDistance(80) = %v, want %v", got, cfg.ClearanceFactor*80)
	}

	// 命中宽度 = 卡牌宽度 + 余量
	if got := cfg.PileHitWidth(80); got != 80+cfg.PileShadow.HitMargin {
		t.Errorf("PileHitWidth(80) = %v, want %v", got, 80+cfg.PileShadow.HitMargin)
	}
}
