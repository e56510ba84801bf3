package systems

import (
	"log"

	"github.com/gonewx/cardtable/pkg/components"
	"github.com/gonewx/cardtable/pkg/ecs"
	"github.com/gonewx/cardtable/pkg/game"
)

// TransferSchedulerSystem 转移调度系统
//
// 职责：
//   - 按设置的间隔周期性触发卡牌转移
//   - 维护两阶段排空状态机（正向：A顶→B顶，反向：B底→A顶）
//   - 源堆排空时切换阶段并立即尝试新阶段的第一次转移（不浪费空拍）
//   - 同一时刻至多一次转移在飞；间隔到期但有转移在飞时本拍为空操作
//
// 架构说明：
//   - 状态存在 DealTimerComponent 单例实体里，系统只放逻辑
//   - 用 deltaTime 累加驱动，测试注入 dt 即可，无需真实墙钟
//   - 间隔变化通过 Reschedule 重置累加器，只影响下一次触发
type TransferSchedulerSystem struct {
	entityManager *ecs.EntityManager
	settings      *game.AnimationSettings
	motion        *MotionSystem

	// pileA / pileB 左右两个牌堆实体
	pileA ecs.EntityID
	pileB ecs.EntityID

	// timerEntityID 计时器组件所在的实体ID
	timerEntityID ecs.EntityID
}

// NewTransferSchedulerSystem 创建转移调度系统
//
// 参数：
//   - em: 实体管理器
//   - settings: 共享动画参数（实时读取）
//   - motion: 运动插值引擎
//   - pileA, pileB: 左右牌堆实体
func NewTransferSchedulerSystem(
	em *ecs.EntityManager,
	settings *game.AnimationSettings,
	motion *MotionSystem,
	pileA, pileB ecs.EntityID,
) *TransferSchedulerSystem {
	system := &TransferSchedulerSystem{
		entityManager: em,
		settings:      settings,
		motion:        motion,
		pileA:         pileA,
		pileB:         pileB,
	}

	system.createTimerEntity()
	return system
}

// createTimerEntity 创建计时器组件实体
func (s *TransferSchedulerSystem) createTimerEntity() {
	entityID := s.entityManager.CreateEntity()
	s.timerEntityID = entityID

	ecs.AddComponent(s.entityManager, entityID, &components.DealTimerComponent{
		ElapsedSec: 0,
		Phase:      components.PhaseDrainForward,
		InFlight:   0,
	})

	log.Printf("[Scheduler] Created timer entity (ID: %d)", entityID)
}

// getTimerComponent 获取计时器组件
func (s *TransferSchedulerSystem) getTimerComponent() *components.DealTimerComponent {
	timer, ok := ecs.GetComponent[*components.DealTimerComponent](s.entityManager, s.timerEntityID)
	if !ok {
		return nil
	}
	return timer
}

// Update 推进调度计时
// 计时器到期且无转移在飞时触发一次转移
func (s *TransferSchedulerSystem) Update(deltaTime float64) {
	timer := s.getTimerComponent()
	if timer == nil {
		return
	}

	timer.ElapsedSec += deltaTime

	if timer.ElapsedSec < s.settings.TransferIntervalSec {
		return
	}

	// 有转移在飞：本拍空操作，不排队不补偿，下一拍空闲时自然重触发
	if timer.InFlight != 0 {
		return
	}

	timer.ElapsedSec = 0
	s.fireTransfer(timer)
}

// Reschedule 重置调度计时器
// 间隔变化时调用：飞行中的转移不受影响，只有下一次触发使用新间隔
func (s *TransferSchedulerSystem) Reschedule() {
	if timer := s.getTimerComponent(); timer != nil {
		timer.ElapsedSec = 0
	}
}

// Stop 停止调度（模式退出/重置路径的一部分）
// 幂等：计时器实体不存在或本来就空闲时也安全
func (s *TransferSchedulerSystem) Stop() {
	if timer := s.getTimerComponent(); timer != nil {
		timer.ElapsedSec = 0
		timer.InFlight = 0
	}
}

// SetPhase 设置排空阶段（重置到指定牌堆后调用）
func (s *TransferSchedulerSystem) SetPhase(phase components.DealPhase) {
	if timer := s.getTimerComponent(); timer != nil {
		timer.Phase = phase
	}
}

// Phase 返回当前排空阶段
func (s *TransferSchedulerSystem) Phase() components.DealPhase {
	if timer := s.getTimerComponent(); timer != nil {
		return timer.Phase
	}
	return components.PhaseDrainForward
}

// InFlightCard 返回当前飞行中的卡牌实体（0 = 无）
func (s *TransferSchedulerSystem) InFlightCard() ecs.EntityID {
	if timer := s.getTimerComponent(); timer != nil {
		return timer.InFlight
	}
	return 0
}

// fireTransfer 触发一次转移
// 当前阶段的源堆为空时切换阶段并立即尝试新阶段的第一次转移
func (s *TransferSchedulerSystem) fireTransfer(timer *components.DealTimerComponent) {
	srcID, dstID := s.pilesForPhase(timer.Phase)
	src, dst := s.getPile(srcID), s.getPile(dstID)
	if src == nil || dst == nil {
		return
	}

	// 源堆排空是阶段的正常终止信号，不是错误
	if src.Len() == 0 {
		timer.Phase = s.flippedPhase(timer.Phase)
		log.Printf("[Scheduler] Source pile empty, phase -> %s", timer.Phase)

		srcID, dstID = s.pilesForPhase(timer.Phase)
		src, dst = s.getPile(srcID), s.getPile(dstID)
		if src == nil || dst == nil || src.Len() == 0 {
			// 两个堆都空：没有可转移的卡牌
			return
		}
	}

	direction := components.TransferForward
	if timer.Phase == components.PhaseDrainBackward {
		direction = components.TransferBackward
	}

	// 正向取堆顶，反向取堆底（剩余卡牌下沉补位）
	var card ecs.EntityID
	var ok bool
	if direction == components.TransferForward {
		card, ok = src.PopTop()
	} else {
		card, ok = src.PopBottom()
	}
	if !ok {
		return
	}

	if direction == components.TransferBackward {
		s.settleRemaining(src)
	}

	pos, posOK := ecs.GetComponent[*components.PositionComponent](s.entityManager, card)
	if !posOK {
		// 卡牌实体不完整：跳过这次转移（非致命）
		log.Printf("[Scheduler] WARNING: card %d has no position, transfer skipped", card)
		return
	}

	targetX, targetY := dst.NextSlotPosition()

	profile := components.ProfileLinear
	if s.settings.SpiralProfile {
		profile = components.ProfileSpiral
	}

	transfer := &components.TransferComponent{
		SourcePile: srcID,
		DestPile:   dstID,
		Direction:  direction,
		StartX:     src.AnchorX,
		StartY:     pos.Y,
		TargetX:    targetX,
		TargetY:    targetY,
		Profile:    profile,
		Phase:      components.PhaseLaunched,
		Duration:   s.settings.TransferDurationSec,
	}

	timer.InFlight = card
	err := s.motion.StartTransfer(card, transfer, func() {
		dst.PushTop(card)
		timer.InFlight = 0
	})
	if err != nil {
		log.Printf("[Scheduler] WARNING: transfer not started: %v", err)
		timer.InFlight = 0
		// 弹出的卡牌放回原处，保持守恒
		if direction == components.TransferForward {
			src.PushTop(card)
		} else {
			src.Cards = append([]ecs.EntityID{card}, src.Cards...)
		}
		return
	}

	log.Printf("[Scheduler] Transfer fired: %s card=%d |src|=%d |dst|=%d",
		direction, card, src.Len(), dst.Len())
}

// settleRemaining 为源堆剩余卡牌下发补位动画
// 补位时长独立于主转移，可与主转移并发运行
func (s *TransferSchedulerSystem) settleRemaining(pile *components.PileComponent) {
	for i, card := range pile.Cards {
		x, y := pile.SlotPosition(i)
		s.motion.StartSettle(card, x, y)
	}
}

// pilesForPhase 返回当前阶段的（源堆，目标堆）
func (s *TransferSchedulerSystem) pilesForPhase(phase components.DealPhase) (ecs.EntityID, ecs.EntityID) {
	if phase == components.PhaseDrainForward {
		return s.pileA, s.pileB
	}
	return s.pileB, s.pileA
}

// flippedPhase 返回相反的排空阶段
func (s *TransferSchedulerSystem) flippedPhase(phase components.DealPhase) components.DealPhase {
	if phase == components.PhaseDrainForward {
		return components.PhaseDrainBackward
	}
	return components.PhaseDrainForward
}

// getPile 获取牌堆组件
func (s *TransferSchedulerSystem) getPile(id ecs.EntityID) *components.PileComponent {
	pile, ok := ecs.GetComponent[*components.PileComponent](s.entityManager, id)
	if !ok {
		return nil
	}
	return pile
}
