package systems

import (
	"math"
	"testing"

	"github.com/gonewx/cardtable/pkg/components"
	"github.com/gonewx/cardtable/pkg/config"
	"github.com/gonewx/cardtable/pkg/ecs"
	"github.com/gonewx/cardtable/pkg/game"
)

// schedulerTestEnv 调度器测试环境
type schedulerTestEnv struct {
	em        *ecs.EntityManager
	settings  *game.AnimationSettings
	motion    *MotionSystem
	scheduler *TransferSchedulerSystem
	pileA     ecs.EntityID
	pileB     ecs.EntityID
}

// newSchedulerEnv 构建两堆结构，cardsInA 张卡牌全部入左堆
func newSchedulerEnv(t *testing.T, cardsInA int) *schedulerTestEnv {
	t.Helper()
	em := ecs.NewEntityManager()
	settings := game.DefaultAnimationSettings()
	tuning := newTestTuning(t)

	pileA := em.CreateEntity()
	ecs.AddComponent(em, pileA, &components.PileComponent{
		AnchorX: config.LeftPileAnchorX, AnchorY: config.PileAnchorY,
		StackOffsetY: config.PileStackOffsetY,
	})
	pileB := em.CreateEntity()
	ecs.AddComponent(em, pileB, &components.PileComponent{
		AnchorX: config.RightPileAnchorX, AnchorY: config.PileAnchorY,
		StackOffsetY: config.PileStackOffsetY,
	})

	a, _ := ecs.GetComponent[*components.PileComponent](em, pileA)
	for i := 0; i < cardsInA; i++ {
		x, y := a.NextSlotPosition()
		a.PushTop(newTestCard(em, x, y))
	}

	motion := NewMotionSystem(em, settings, tuning)
	scheduler := NewTransferSchedulerSystem(em, settings, motion, pileA, pileB)
	return &schedulerTestEnv{
		em: em, settings: settings, motion: motion,
		scheduler: scheduler, pileA: pileA, pileB: pileB,
	}
}

// pile 返回牌堆组件
func (e *schedulerTestEnv) pile(id ecs.EntityID) *components.PileComponent {
	p, _ := ecs.GetComponent[*components.PileComponent](e.em, id)
	return p
}

// totalCards 返回两堆卡牌数加飞行中卡牌（守恒检查用）
func (e *schedulerTestEnv) totalCards() int {
	n := e.pile(e.pileA).Len() + e.pile(e.pileB).Len()
	if e.scheduler.InFlightCard() != 0 {
		n++
	}
	return n
}

// TestTransferScheduler_SingleFire 测试单次触发场景
// A 堆 1 张、B 堆空、正向阶段：触发一次后卡牌成为 B 堆唯一成员；
// 弧线策略落地时背面朝上，直线策略保持正面朝上
func TestTransferScheduler_SingleFire(t *testing.T) {
	tests := []struct {
		name       string
		spiral     bool
		wantFaceUp bool
	}{
		{"spiral lands face down", true, false},
		{"linear lands face up", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newSchedulerEnv(t, 1)
			env.settings.SpiralProfile = tt.spiral
			env.settings.TransferIntervalSec = 1.0
			env.settings.TransferDurationSec = 2.0

			// 间隔到期触发
			env.scheduler.Update(1.1)
			card := env.scheduler.InFlightCard()
			if card == 0 {
				t.Fatal("Expected a transfer to fire")
			}
			if env.pile(env.pileA).Len() != 0 {
				t.Error("Source pile should be empty while card is in flight")
			}

			// 推进运动引擎直至完成
			const dt = 1.0 / 60.0
			for i := 0; i < 60*3 && env.motion.ActiveAnimationCount() > 0; i++ {
				env.motion.Update(dt)
			}

			if env.scheduler.InFlightCard() != 0 {
				t.Error("InFlight should be cleared after completion")
			}
			b := env.pile(env.pileB)
			if b.Len() != 1 {
				t.Fatalf("Dest pile has %d cards, want 1", b.Len())
			}
			top, _ := b.Top()
			if top != card {
				t.Errorf("Dest pile top = %d, want %d", top, card)
			}
			cardComp, _ := ecs.GetComponent[*components.CardComponent](env.em, card)
			if cardComp.FaceUp != tt.wantFaceUp {
				t.Errorf("FaceUp = %v, want %v", cardComp.FaceUp, tt.wantFaceUp)
			}
		})
	}
}

// TestTransferScheduler_Conservation 测试任意推进下的卡牌守恒
// |A| + |B| + 飞行中 在每一拍都等于总张数
func TestTransferScheduler_Conservation(t *testing.T) {
	env := newSchedulerEnv(t, 6)
	env.settings.TransferIntervalSec = 0.5
	env.settings.TransferDurationSec = 0.4

	const dt = 0.05
	for i := 0; i < int(30.0/dt); i++ {
		env.scheduler.Update(dt)
		env.motion.Update(dt)
		if total := env.totalCards(); total != 6 {
			t.Fatalf("Card count = %d at step %d, want 6", total, i)
		}
	}

	// 30 秒足够排空 A 并翻转阶段
	if env.scheduler.Phase() != components.PhaseDrainBackward {
		t.Errorf("Phase = %s, want drain-backward after pile A drained", env.scheduler.Phase())
	}
}

// TestTransferScheduler_NoOpWhileInFlight 测试飞行中到期不触发第二次转移
func TestTransferScheduler_NoOpWhileInFlight(t *testing.T) {
	env := newSchedulerEnv(t, 3)
	env.settings.TransferIntervalSec = 0.5
	env.settings.TransferDurationSec = 5.0

	env.scheduler.Update(0.6)
	card := env.scheduler.InFlightCard()
	if card == 0 {
		t.Fatal("Expected a transfer to fire")
	}

	// 多个间隔过去，转移还在飞：不触发、不排队
	env.scheduler.Update(0.6)
	env.scheduler.Update(0.6)
	if env.scheduler.InFlightCard() != card {
		t.Error("In-flight card changed while a transfer was active")
	}
	if env.pile(env.pileA).Len() != 2 {
		t.Errorf("Pile A = %d cards, want 2 (only one pop)", env.pile(env.pileA).Len())
	}
}

// TestTransferScheduler_EmptySourceFlipsPhase 测试源堆排空时切换阶段并立即重试
func TestTransferScheduler_EmptySourceFlipsPhase(t *testing.T) {
	env := newSchedulerEnv(t, 0)

	// 把 2 张卡牌直接放进 B 堆
	b := env.pile(env.pileB)
	for i := 0; i < 2; i++ {
		x, y := b.NextSlotPosition()
		b.PushTop(newTestCard(env.em, x, y))
	}

	env.scheduler.Update(1.1)

	if env.scheduler.Phase() != components.PhaseDrainBackward {
		t.Errorf("Phase = %s, want drain-backward", env.scheduler.Phase())
	}
	// 切换阶段的同一拍立即触发新阶段的第一次转移
	if env.scheduler.InFlightCard() == 0 {
		t.Error("Expected immediate transfer after phase flip")
	}
	if b.Len() != 1 {
		t.Errorf("Pile B = %d cards, want 1 (bottom popped)", b.Len())
	}
}

// TestTransferScheduler_BothEmpty 测试两堆皆空时安全空转
func TestTransferScheduler_BothEmpty(t *testing.T) {
	env := newSchedulerEnv(t, 0)

	for i := 0; i < 10; i++ {
		env.scheduler.Update(1.0)
	}
	if env.scheduler.InFlightCard() != 0 {
		t.Error("No transfer should fire with both piles empty")
	}
}

// TestTransferScheduler_Reschedule 测试间隔重置只影响下一次触发
func TestTransferScheduler_Reschedule(t *testing.T) {
	env := newSchedulerEnv(t, 3)
	env.settings.TransferIntervalSec = 1.0

	// 累计 0.9 秒后重置：计时从零重新开始
	env.scheduler.Update(0.9)
	env.scheduler.Reschedule()

	env.scheduler.Update(0.5)
	if env.scheduler.InFlightCard() != 0 {
		t.Error("Transfer fired before rescheduled interval elapsed")
	}
	env.scheduler.Update(0.6)
	if env.scheduler.InFlightCard() == 0 {
		t.Error("Transfer should fire after full interval since reschedule")
	}
}

// TestTransferScheduler_BackwardSettles 测试反向阶段弹堆底后剩余卡牌补位
func TestTransferScheduler_BackwardSettles(t *testing.T) {
	env := newSchedulerEnv(t, 0)
	b := env.pile(env.pileB)
	for i := 0; i < 4; i++ {
		x, y := b.NextSlotPosition()
		b.PushTop(newTestCard(env.em, x, y))
	}
	env.scheduler.SetPhase(components.PhaseDrainBackward)

	env.scheduler.Update(1.1)

	// 1 张在飞 + 3 张补位动画
	if got := env.motion.ActiveAnimationCount(); got != 4 {
		t.Errorf("ActiveAnimationCount = %d, want 4 (1 flight + 3 settles)", got)
	}

	// 补位完成后剩余卡牌落到下移一位的槽位
	for i := 0; i < 60*6 && env.motion.ActiveAnimationCount() > 0; i++ {
		env.motion.Update(1.0 / 60.0)
	}
	for i, card := range b.Cards {
		pos, _ := ecs.GetComponent[*components.PositionComponent](env.em, card)
		wantX, wantY := b.SlotPosition(i)
		// 补位插值以 float32 精度收尾，允许亚像素误差
		if math.Abs(pos.X-wantX) > 0.01 || math.Abs(pos.Y-wantY) > 0.01 {
			t.Errorf("Card %d at (%v, %v), want slot %d (%v, %v)", card, pos.X, pos.Y, i, wantX, wantY)
		}
	}
}

// TestTransferScheduler_Stop 测试停止后的幂等性
func TestTransferScheduler_Stop(t *testing.T) {
	env := newSchedulerEnv(t, 2)
	env.scheduler.Update(1.1)
	if env.scheduler.InFlightCard() == 0 {
		t.Fatal("Expected a transfer to fire")
	}

	env.scheduler.Stop()
	if env.scheduler.InFlightCard() != 0 {
		t.Error("Stop should clear the in-flight marker")
	}
	env.scheduler.Stop() // 幂等
}
