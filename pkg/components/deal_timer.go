package components

import "github.com/gonewx/cardtable/pkg/ecs"

// DealPhase 调度器的排空阶段
type DealPhase int

const (
	// PhaseDrainForward 正向排空：反复把 A 堆顶移到 B 堆顶
	PhaseDrainForward DealPhase = iota
	// PhaseDrainBackward 反向排空：反复把 B 堆底移到 A 堆顶
	PhaseDrainBackward
)

// String 返回排空阶段的字符串表示
func (p DealPhase) String() string {
	if p == PhaseDrainBackward {
		return "drain-backward"
	}
	return "drain-forward"
}

// DealTimerComponent 转移调度计时器组件（单例实体）
// 仿照波次计时器的模式：状态放组件里，逻辑放系统里，
// 用 deltaTime 累加驱动，测试时无需真实墙钟
type DealTimerComponent struct {
	// ElapsedSec 距上次触发已累计的时间（秒）
	ElapsedSec float64

	// Phase 当前排空阶段
	Phase DealPhase

	// InFlight 当前飞行中的卡牌实体（0 = 无，调度器可以触发）
	// 同一时刻至多一张卡牌在飞行；计时器到期但有飞行中转移时，
	// 该次触发是空操作，不排队不补偿
	InFlight ecs.EntityID
}
