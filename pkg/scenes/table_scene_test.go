package scenes

import (
	"io"
	"log"
	"math/rand"
	"testing"

	"github.com/gonewx/cardtable/pkg/components"
	"github.com/gonewx/cardtable/pkg/config"
	"github.com/gonewx/cardtable/pkg/ecs"
	"github.com/gonewx/cardtable/pkg/game"
)

func init() {
	// 未就绪的资源管理器会让每张卡牌都打一条跳过警告
	log.SetOutput(io.Discard)
}

// newTestTableScene 创建测试场景
// 资源管理器不做 Prepare：所有卡牌因缺纹理被跳过，牌堆为空，
// 但系统接线和清理路径照常工作
func newTestTableScene(t *testing.T) *TableScene {
	t.Helper()
	sm, err := game.NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager failed: %v", err)
	}
	tuning, err := config.LoadTuningConfig()
	if err != nil {
		t.Fatalf("LoadTuningConfig failed: %v", err)
	}
	return NewTableScene(game.NewResourceManager(), sm, tuning, rand.New(rand.NewSource(1)))
}

// TestTableScene_Wiring 测试场景组装：两个牌堆和控制面板控件齐全
func TestTableScene_Wiring(t *testing.T) {
	scene := newTestTableScene(t)
	em := scene.EntityManager()

	pileA, pileB := scene.Piles()
	if _, ok := ecs.GetComponent[*components.PileComponent](em, pileA); !ok {
		t.Error("Left pile entity missing PileComponent")
	}
	if _, ok := ecs.GetComponent[*components.PileComponent](em, pileB); !ok {
		t.Error("Right pile entity missing PileComponent")
	}

	if n := len(ecs.GetEntitiesWith1[*components.SliderComponent](em)); n != 3 {
		t.Errorf("Found %d sliders, want 3", n)
	}
	if n := len(ecs.GetEntitiesWith1[*components.CheckboxComponent](em)); n != 2 {
		t.Errorf("Found %d checkboxes, want 2", n)
	}
	if n := len(ecs.GetEntitiesWith1[*components.ButtonComponent](em)); n != 2 {
		t.Errorf("Found %d buttons, want 2", n)
	}
}

// TestTableScene_TeardownIdempotent 测试整体清理的幂等性
func TestTableScene_TeardownIdempotent(t *testing.T) {
	scene := newTestTableScene(t)

	scene.Teardown()
	if scene.MotionSystem().ActiveAnimationCount() != 0 {
		t.Error("Active animations should be zero after teardown")
	}

	// 重复清理和清理后的 Update 都必须安全
	scene.Teardown()
	scene.Update(1.0 / 60.0)
}

// TestTableScene_ResetPhase 测试重置目标牌堆决定排空阶段
func TestTableScene_ResetPhase(t *testing.T) {
	scene := newTestTableScene(t)
	pileA, pileB := scene.Piles()

	scene.ResetToPile(pileB)
	if got := scene.SchedulerSystem().Phase(); got != components.PhaseDrainBackward {
		t.Errorf("Phase after reset to right pile = %s, want drain-backward", got)
	}

	scene.ResetToPile(pileA)
	if got := scene.SchedulerSystem().Phase(); got != components.PhaseDrainForward {
		t.Errorf("Phase after reset to left pile = %s, want drain-forward", got)
	}
}

// TestTableScene_SceneManagerTeardown 测试场景切换触发清理
func TestTableScene_SceneManagerTeardown(t *testing.T) {
	scene := newTestTableScene(t)

	manager := game.NewSceneManager()
	manager.SwitchTo(scene)
	manager.SwitchTo(nil)

	// 切换后再次 Teardown 是空操作
	scene.Teardown()
}
