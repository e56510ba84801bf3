package components

import "github.com/gonewx/cardtable/pkg/ecs"

// TransferDirection 转移方向
type TransferDirection int

const (
	// TransferForward 正向：源堆顶 → 目标堆顶
	TransferForward TransferDirection = iota
	// TransferBackward 反向：源堆底 → 目标堆顶（源堆剩余卡牌下沉补位）
	TransferBackward
)

// String 返回转移方向的字符串表示
func (d TransferDirection) String() string {
	if d == TransferBackward {
		return "backward"
	}
	return "forward"
}

// MotionProfile 运动插值策略
type MotionProfile int

const (
	// ProfileLinear 直线缓动：X/Y 同时缓入缓出插值到目标
	ProfileLinear MotionProfile = iota
	// ProfileSpiral 弧线翻面：X 全程直线插值，越过安全距离后触发
	// 弧线抬升和翻面两个子动画
	ProfileSpiral
)

// String 返回运动策略的字符串表示
func (p MotionProfile) String() string {
	if p == ProfileSpiral {
		return "spiral"
	}
	return "linear"
}

// TransferPhase 转移的子状态
// 显式状态机替代"在逐帧回调里用 started 标志触发子动画"的闭包模式
type TransferPhase int

const (
	// PhaseLaunched 已起飞，尚未越过安全距离
	PhaseLaunched TransferPhase = iota
	// PhaseCleared 已越过安全距离（弧线/翻面/层级提升已触发）
	PhaseCleared
	// PhaseDone 转移已完成
	PhaseDone
)

// TransferComponent 转移记录组件（每次飞行一个，挂在飞行中的卡牌实体上）
// 转移完成或被强制取消时随动画一起丢弃
type TransferComponent struct {
	// SourcePile 源牌堆实体
	SourcePile ecs.EntityID

	// DestPile 目标牌堆实体
	DestPile ecs.EntityID

	// Direction 转移方向
	Direction TransferDirection

	// StartX/StartY 起点世界坐标
	StartX float64
	StartY float64

	// TargetX/TargetY 终点世界坐标（目标堆的下一个槽位）
	TargetX float64
	TargetY float64

	// Profile 本次转移使用的运动策略（起飞时从设置快照）
	Profile MotionProfile

	// Phase 当前子状态
	Phase TransferPhase

	// 每个行为触发器独立的"已触发"标志，保证各自至多触发一次
	ArcStarted  bool // 弧线子动画已启动
	FlipStarted bool // 翻面子动画已启动
	Promoted    bool // 已提升到飞行层（最顶层）

	// Elapsed 已经过的转移时间（秒）
	Elapsed float64

	// Duration 本次转移总时长（秒，起飞时从设置快照，期间不受设置变化影响）
	Duration float64
}
