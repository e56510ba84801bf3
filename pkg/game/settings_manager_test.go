package game

import "testing"

// newTestSettingsManager 创建降级模式（无持久化）的设置管理器
func newTestSettingsManager(t *testing.T) *SettingsManager {
	t.Helper()
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager failed: %v", err)
	}
	return sm
}

// TestSettingsManager_Defaults 测试默认参数
func TestSettingsManager_Defaults(t *testing.T) {
	sm := newTestSettingsManager(t)
	s := sm.GetSettings()

	if s.TransferIntervalSec != 1.0 {
		t.Errorf("Default interval = %v, want 1.0", s.TransferIntervalSec)
	}
	if s.TransferDurationSec != 2.0 {
		t.Errorf("Default duration = %v, want 2.0", s.TransferDurationSec)
	}
	if !s.ShadowsEnabled {
		t.Error("Shadows should default to enabled")
	}
	if !s.SpiralProfile {
		t.Error("Spiral profile should default to enabled")
	}
}

// TestSettingsManager_Clamp 测试参数越界时取边界
func TestSettingsManager_Clamp(t *testing.T) {
	sm := newTestSettingsManager(t)

	sm.SetTransferInterval(100)
	if got := sm.GetSettings().TransferIntervalSec; got != MaxTransferInterval {
		t.Errorf("Interval clamped to %v, want %v", got, MaxTransferInterval)
	}
	sm.SetTransferInterval(0)
	if got := sm.GetSettings().TransferIntervalSec; got != MinTransferInterval {
		t.Errorf("Interval clamped to %v, want %v", got, MinTransferInterval)
	}

	sm.SetTransferDuration(-1)
	if got := sm.GetSettings().TransferDurationSec; got != MinTransferDuration {
		t.Errorf("Duration clamped to %v, want %v", got, MinTransferDuration)
	}

	sm.SetMotionBlurStrength(2.5)
	if got := sm.GetSettings().MotionBlurStrength; got != 1.0 {
		t.Errorf("Blur clamped to %v, want 1.0", got)
	}
}

// TestSettingsManager_IntervalChangeCallback 测试间隔变化回调
// 调度器通过该回调实现"间隔变化只影响下一次触发"
func TestSettingsManager_IntervalChangeCallback(t *testing.T) {
	sm := newTestSettingsManager(t)

	calls := 0
	sm.SetOnIntervalChange(func() { calls++ })

	sm.SetTransferInterval(2.0)
	sm.SetTransferInterval(3.0)
	if calls != 2 {
		t.Errorf("Interval callback fired %d times, want 2", calls)
	}

	// 其他参数变化不触发间隔回调
	sm.SetTransferDuration(4.0)
	sm.SetMotionBlurStrength(0.3)
	if calls != 2 {
		t.Errorf("Callback fired for unrelated setter, count = %d", calls)
	}
}

// TestSettingsManager_DegradedSave 测试降级模式下保存不报错
func TestSettingsManager_DegradedSave(t *testing.T) {
	sm := newTestSettingsManager(t)
	if err := sm.Save(); err != nil {
		t.Errorf("Save in degraded mode should be a no-op, got %v", err)
	}
	if err := sm.Load(); err != nil {
		t.Errorf("Load in degraded mode should fall back to defaults, got %v", err)
	}
}
