package systems

import (
	"fmt"
	"log"
	"math"
	"reflect"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/gonewx/cardtable/pkg/components"
	"github.com/gonewx/cardtable/pkg/config"
	"github.com/gonewx/cardtable/pkg/ecs"
	"github.com/gonewx/cardtable/pkg/game"
)

// blurBaseSpeed 模糊速度向量的基准速率（像素/秒）
// 实际模糊速度 = 基准速率 * 模糊强度 * sin(π*进度)，方向指向剩余路程
const blurBaseSpeed = 220.0

// PositionListener 飞行卡牌的逐帧位置回调
// 投影系统通过它跟踪飞行卡牌的实时位置
type PositionListener func(card ecs.EntityID, x, y float64)

// 弧线/翻面子动画的阶段
const (
	subAnimIdle   = 0 // 未触发
	subAnimFirst  = 1 // 前半段（抬升 / 压缩）
	subAnimSecond = 2 // 后半段（回落 / 展开）
	subAnimDone   = 3 // 已完成
)

// cardFlight 一次转移的运行时状态
// 补间对象只存在于这里，完成或取消时整体丢弃，不依赖全局动画注册表
type cardFlight struct {
	card     ecs.EntityID
	transfer *components.TransferComponent

	// xTween X 轴补间，两种策略都覆盖整个转移时长
	xTween *gween.Tween

	// yTween Y 轴补间（仅直线策略）
	yTween *gween.Tween

	// 弧线子动画（仅弧线策略，越过安全距离后创建）
	arcUp    *gween.Tween
	arcDown  *gween.Tween
	arcStage int

	// 翻面子动画（仅弧线策略，与弧线同时触发但时长独立）
	flipOut   *gween.Tween
	flipIn    *gween.Tween
	flipStage int

	// onComplete 完成回调，保证恰好触发一次
	onComplete func()
}

// settleAnim 牌堆补位动画（堆底弹出后剩余卡牌下沉）
// 与主转移相互独立，可以并发运行
type settleAnim struct {
	card   ecs.EntityID
	xTween *gween.Tween
	yTween *gween.Tween
}

// MotionSystem 运动插值引擎
//
// 驱动单张卡牌的位置/朝向/缩放随时间变化，支持两种可切换的运动策略：
//   - 直线：X/Y 同时缓入缓出插值到目标
//   - 弧线翻面：X 全程直线插值；越过安全距离后一次性触发层级提升、
//     弧线抬升（时长为剩余时间的固定比例）和翻面（独立时长）
//
// 活动动画保存在显式注册表（flights/settles）里，
// 模式退出时由 CancelAll 迭代取消，不依赖进程级动画管理器。
// 任何子动画都不会比所属转移活得更久：转移完成时强制写入终态。
type MotionSystem struct {
	entityManager *ecs.EntityManager
	settings      *game.AnimationSettings
	tuning        *config.TuningConfig

	// flights 活动转移注册表（键为卡牌实体）
	flights map[ecs.EntityID]*cardFlight

	// settles 活动补位动画注册表
	settles map[ecs.EntityID]*settleAnim

	// listener 逐帧位置回调（可为 nil）
	listener PositionListener
}

// NewMotionSystem 创建运动插值引擎
func NewMotionSystem(em *ecs.EntityManager, settings *game.AnimationSettings, tuning *config.TuningConfig) *MotionSystem {
	return &MotionSystem{
		entityManager: em,
		settings:      settings,
		tuning:        tuning,
		flights:       make(map[ecs.EntityID]*cardFlight),
		settles:       make(map[ecs.EntityID]*settleAnim),
	}
}

// SetPositionListener 注册飞行卡牌的逐帧位置回调
func (s *MotionSystem) SetPositionListener(fn PositionListener) {
	s.listener = fn
}

// StartTransfer 启动一次转移
//
// 调用前 transfer 的起止坐标、时长、策略必须已经填好；
// 转移期间 TransferComponent 挂在卡牌实体上，完成时移除。
// 同一卡牌已有转移在飞时返回错误（调度器保证不会发生）。
func (s *MotionSystem) StartTransfer(card ecs.EntityID, transfer *components.TransferComponent, onComplete func()) error {
	if _, exists := s.flights[card]; exists {
		return fmt.Errorf("card entity %d already in flight", card)
	}

	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, card)
	if !ok {
		return fmt.Errorf("card entity %d has no position component", card)
	}

	// 被转移的卡牌不再参与补位动画
	delete(s.settles, card)

	ecs.AddComponent(s.entityManager, card, transfer)

	dur := float32(transfer.Duration)
	f := &cardFlight{
		card:       card,
		transfer:   transfer,
		xTween:     gween.New(float32(pos.X), float32(transfer.TargetX), dur, ease.InOutQuad),
		onComplete: onComplete,
	}
	if transfer.Profile == components.ProfileLinear {
		f.yTween = gween.New(float32(pos.Y), float32(transfer.TargetY), dur, ease.InOutQuad)
		// 直线滑动不穿过牌堆之间的空隙下方，起飞即提升到飞行层
		transfer.Promoted = true
	}

	s.flights[card] = f
	log.Printf("[Motion] Transfer started: card=%d profile=%s duration=%.2fs target=(%.0f,%.0f)",
		card, transfer.Profile, transfer.Duration, transfer.TargetX, transfer.TargetY)
	return nil
}

// StartSettle 启动一张卡牌的补位动画（时长与主转移无关）
func (s *MotionSystem) StartSettle(card ecs.EntityID, toX, toY float64) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, card)
	if !ok {
		return
	}

	dur := float32(s.tuning.SettleDuration)
	s.settles[card] = &settleAnim{
		card:   card,
		xTween: gween.New(float32(pos.X), float32(toX), dur, ease.OutQuad),
		yTween: gween.New(float32(pos.Y), float32(toY), dur, ease.OutQuad),
	}
}

// Update 推进全部活动动画
func (s *MotionSystem) Update(deltaTime float64) {
	dt := float32(deltaTime)

	// 补位动画
	for id, settle := range s.settles {
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			delete(s.settles, id)
			continue
		}
		x, _ := settle.xTween.Update(dt)
		y, yDone := settle.yTween.Update(dt)
		pos.X = float64(x)
		pos.Y = float64(y)
		if yDone {
			delete(s.settles, id)
		}
	}

	// 主转移
	var finished []*cardFlight
	for _, f := range s.flights {
		if s.stepFlight(f, deltaTime) {
			finished = append(finished, f)
		}
	}
	for _, f := range finished {
		s.completeFlight(f)
	}
}

// stepFlight 推进一次转移，返回是否到达终点
func (s *MotionSystem) stepFlight(f *cardFlight, deltaTime float64) bool {
	t := f.transfer
	t.Elapsed += deltaTime

	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, f.card)
	if !ok {
		// 实体已被销毁，丢弃飞行记录（不触发回调）
		delete(s.flights, f.card)
		return false
	}

	x, _ := f.xTween.Update(float32(deltaTime))
	pos.X = float64(x)

	switch t.Profile {
	case components.ProfileLinear:
		y, _ := f.yTween.Update(float32(deltaTime))
		pos.Y = float64(y)

	case components.ProfileSpiral:
		// Y 和朝向推迟到越过安全距离后才开始变化
		if t.Phase == components.PhaseLaunched &&
			math.Abs(pos.X-t.StartX) > s.tuning.ClearanceDistance(config.CardWidth) {
			s.triggerClearance(f, pos)
		}
		s.stepArc(f, pos, float32(deltaTime))
		s.stepFlip(f, float32(deltaTime))
	}

	s.updateBlur(f, pos)

	if s.listener != nil {
		s.listener(f.card, pos.X, pos.Y)
	}

	return t.Elapsed >= t.Duration
}

// triggerClearance 越过安全距离，一次性触发三个行为
// 每个触发器各自带"已触发"标志，保证至多触发一次
func (s *MotionSystem) triggerClearance(f *cardFlight, pos *components.PositionComponent) {
	t := f.transfer
	t.Phase = components.PhaseCleared

	// 层级提升：飞行卡牌从牌堆层提升到最顶层
	if !t.Promoted {
		t.Promoted = true
	}

	remaining := t.Duration - t.Elapsed
	if remaining <= 0 {
		return
	}

	// 弧线：抬升到峰值再回落，总时长为剩余时间的固定比例
	if !t.ArcStarted {
		arcDur := remaining * s.tuning.ArcDurationFraction
		peak := math.Min(t.StartY, t.TargetY) - s.tuning.ArcHeight
		f.arcUp = gween.New(float32(pos.Y), float32(peak), float32(arcDur/2), ease.OutQuad)
		f.arcDown = gween.New(float32(peak), float32(t.TargetY), float32(arcDur/2), ease.InQuad)
		f.arcStage = subAnimFirst
		t.ArcStarted = true
	}

	// 翻面：横向缩放压缩到零、换纹理、再展开；时长与弧线无关
	if !t.FlipStarted {
		flipDur := math.Min(s.tuning.FlipDuration, remaining)
		f.flipOut = gween.New(1, 0, float32(flipDur/2), ease.InQuad)
		f.flipIn = gween.New(0, 1, float32(flipDur/2), ease.OutQuad)
		f.flipStage = subAnimFirst
		t.FlipStarted = true
	}

	log.Printf("[Motion] Clearance reached: card=%d x=%.0f (source anchor %.0f)", f.card, pos.X, t.StartX)
}

// stepArc 推进弧线子动画（抬升 → 回落）
func (s *MotionSystem) stepArc(f *cardFlight, pos *components.PositionComponent, dt float32) {
	switch f.arcStage {
	case subAnimFirst:
		y, done := f.arcUp.Update(dt)
		pos.Y = float64(y)
		if done {
			f.arcStage = subAnimSecond
		}
	case subAnimSecond:
		y, done := f.arcDown.Update(dt)
		pos.Y = float64(y)
		if done {
			f.arcStage = subAnimDone
		}
	}
}

// stepFlip 推进翻面子动画（压缩 → 换纹理 → 展开）
func (s *MotionSystem) stepFlip(f *cardFlight, dt float32) {
	scale, ok := ecs.GetComponent[*components.ScaleComponent](s.entityManager, f.card)
	if !ok {
		return
	}

	switch f.flipStage {
	case subAnimFirst:
		v, done := f.flipOut.Update(dt)
		scale.ScaleX = float64(v)
		if done {
			s.swapTexture(f.card)
			f.flipStage = subAnimSecond
		}
	case subAnimSecond:
		v, done := f.flipIn.Update(dt)
		scale.ScaleX = float64(v)
		if done {
			f.flipStage = subAnimDone
		}
	}
}

// swapTexture 在压缩到零宽的瞬间切换正反面纹理
// 牌背按花色红黑分组在创建实体时就已选好
func (s *MotionSystem) swapTexture(card ecs.EntityID) {
	cardComp, ok := ecs.GetComponent[*components.CardComponent](s.entityManager, card)
	if !ok {
		return
	}
	cardComp.FaceUp = !cardComp.FaceUp

	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, card); ok {
		sprite.Image = cardComp.CurrentImage()
	}
}

// updateBlur 按当前进度更新模糊速度向量
// 模糊强度实时读取设置，方向指向剩余路程，中段最强两端归零
func (s *MotionSystem) updateBlur(f *cardFlight, pos *components.PositionComponent) {
	blur, ok := ecs.GetComponent[*components.MotionBlurComponent](s.entityManager, f.card)
	if !ok {
		return
	}

	t := f.transfer
	strength := s.settings.MotionBlurStrength
	dx := t.TargetX - pos.X
	dy := t.TargetY - pos.Y
	dist := math.Hypot(dx, dy)
	if strength <= 0 || dist < 1e-3 || t.Duration <= 0 {
		blur.Clear()
		return
	}

	progress := t.Elapsed / t.Duration
	if progress > 1 {
		progress = 1
	}
	speed := blurBaseSpeed * strength * math.Sin(math.Pi*progress)
	blur.VX = dx / dist * speed
	blur.VY = dy / dist * speed
	blur.Strength = strength
}

// completeFlight 把一次转移写入终态并触发完成回调
//
// 终态：目标坐标、满缩放、正确的最终纹理、模糊清零；
// 仍在运行的子动画被强制完成后丢弃 —— 没有动画能比转移活得更久
func (s *MotionSystem) completeFlight(f *cardFlight) {
	t := f.transfer

	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, f.card); ok {
		pos.X = t.TargetX
		pos.Y = t.TargetY
	}
	if scale, ok := ecs.GetComponent[*components.ScaleComponent](s.entityManager, f.card); ok {
		scale.ScaleX = 1.0
		scale.ScaleY = 1.0
	}
	if blur, ok := ecs.GetComponent[*components.MotionBlurComponent](s.entityManager, f.card); ok {
		blur.Clear()
	}

	// 翻面已触发但没来得及换纹理：强制换到最终纹理
	if t.FlipStarted && f.flipStage == subAnimFirst {
		s.swapTexture(f.card)
	}
	f.arcStage = subAnimDone
	f.flipStage = subAnimDone

	t.Phase = components.PhaseDone
	s.removeTransferComponent(f.card)
	delete(s.flights, f.card)

	log.Printf("[Motion] Transfer complete: card=%d", f.card)
	if f.onComplete != nil {
		f.onComplete()
	}
}

// removeTransferComponent 摘掉飞行期间挂载的转移记录
func (s *MotionSystem) removeTransferComponent(card ecs.EntityID) {
	s.entityManager.RemoveComponent(card, reflect.TypeOf(&components.TransferComponent{}))
}

// CancelAll 取消全部活动动画（主转移、子动画、补位动画）
//
// 模式退出和手动重置的唯一取消路径：同步、彻底、幂等。
// 被取消的转移不触发完成回调 —— 回调竞态从结构上杜绝，
// 而不是在回调里做运行时检查。
func (s *MotionSystem) CancelAll() {
	for card := range s.flights {
		if scale, ok := ecs.GetComponent[*components.ScaleComponent](s.entityManager, card); ok {
			scale.ScaleX = 1.0
			scale.ScaleY = 1.0
		}
		if blur, ok := ecs.GetComponent[*components.MotionBlurComponent](s.entityManager, card); ok {
			blur.Clear()
		}
		s.removeTransferComponent(card)
	}

	n := len(s.flights) + len(s.settles)
	s.flights = make(map[ecs.EntityID]*cardFlight)
	s.settles = make(map[ecs.EntityID]*settleAnim)
	if n > 0 {
		log.Printf("[Motion] Cancelled %d active animation(s)", n)
	}
}

// ActiveAnimationCount 返回活动动画总数（转移 + 补位）
func (s *MotionSystem) ActiveAnimationCount() int {
	return len(s.flights) + len(s.settles)
}

// InFlight 返回指定卡牌是否有转移在飞
func (s *MotionSystem) InFlight(card ecs.EntityID) bool {
	_, ok := s.flights[card]
	return ok
}
