package systems

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/cardtable/pkg/components"
	"github.com/gonewx/cardtable/pkg/config"
	"github.com/gonewx/cardtable/pkg/ecs"
	"github.com/gonewx/cardtable/pkg/game"
)

// ShadowSystem 投影系统
//
// 根据飞行卡牌的实时位置计算并渲染两个投影元素：
//   - 地面投影：转移期间始终可见，横向跟随卡牌，固定在地面高度
//   - 堆顶投影：仅当卡牌水平上接近某个非空牌堆（距离 < 命中宽度）
//     且垂直上位于该堆顶牌上方（Y 数值更小）时可见；渲染时裁剪到
//     顶牌轮廓内，模拟投在牌面上而不越过牌边的接触阴影
//
// 状态存在 ShadowStateComponent 单例实体里；转移完成或模式退出时
// 调用 Clear 整体清零
type ShadowSystem struct {
	entityManager *ecs.EntityManager
	settings      *game.AnimationSettings
	tuning        *config.TuningConfig

	// pileA / pileB 左右两个牌堆实体
	pileA ecs.EntityID
	pileB ecs.EntityID

	// stateEntityID 投影状态组件所在的实体ID
	stateEntityID ecs.EntityID

	// 被跟踪的飞行卡牌（运动引擎逐帧回调写入）
	trackedCard ecs.EntityID
	trackedX    float64
	trackedY    float64

	// 渲染资源（懒加载）
	shadowTex *ebiten.Image // 软边椭圆基础纹理，按需缩放
	scratch   *ebiten.Image // 卡牌大小的暂存画布，用于轮廓裁剪
}

// NewShadowSystem 创建投影系统
func NewShadowSystem(
	em *ecs.EntityManager,
	settings *game.AnimationSettings,
	tuning *config.TuningConfig,
	pileA, pileB ecs.EntityID,
) *ShadowSystem {
	system := &ShadowSystem{
		entityManager: em,
		settings:      settings,
		tuning:        tuning,
		pileA:         pileA,
		pileB:         pileB,
	}

	entityID := em.CreateEntity()
	system.stateEntityID = entityID
	ecs.AddComponent(em, entityID, &components.ShadowStateComponent{})

	return system
}

// TrackCard 运动引擎的逐帧位置回调
// 投影开关关闭时回调仍然会来，由 Update 统一判定可见性
func (s *ShadowSystem) TrackCard(card ecs.EntityID, x, y float64) {
	s.trackedCard = card
	s.trackedX = x
	s.trackedY = y
}

// Clear 清零全部投影状态并停止跟踪
// 转移完成、手动重置、模式退出时调用；幂等
func (s *ShadowSystem) Clear() {
	s.trackedCard = 0
	if state := s.getState(); state != nil {
		state.Clear()
	}
}

// getState 获取投影状态组件
func (s *ShadowSystem) getState() *components.ShadowStateComponent {
	state, ok := ecs.GetComponent[*components.ShadowStateComponent](s.entityManager, s.stateEntityID)
	if !ok {
		return nil
	}
	return state
}

// State 返回投影状态（测试用）
func (s *ShadowSystem) State() *components.ShadowStateComponent {
	return s.getState()
}

// Update 重新计算两个投影元素的状态
func (s *ShadowSystem) Update(deltaTime float64) {
	state := s.getState()
	if state == nil {
		return
	}

	if !s.settings.ShadowsEnabled || s.trackedCard == 0 {
		state.Clear()
		return
	}

	// 地面投影：跟随卡牌X，固定地面高度
	state.FloorVisible = true
	state.FloorX = s.trackedX
	state.FloorY = config.FloorShadowY
	state.FloorAlpha = s.tuning.FloorShadow.Alpha

	// 堆顶投影
	state.PileVisible = false
	state.MaskCard = 0
	for _, pileID := range [2]ecs.EntityID{s.pileA, s.pileB} {
		pile, ok := ecs.GetComponent[*components.PileComponent](s.entityManager, pileID)
		if !ok {
			continue
		}
		if s.computePileShadow(state, pile) {
			break
		}
	}
}

// computePileShadow 判定飞行卡牌是否在该牌堆顶牌上方投影
// 可见条件：牌堆非空 且 水平距离 < 命中宽度 且 卡牌Y在顶牌Y上方（数值更小）
func (s *ShadowSystem) computePileShadow(state *components.ShadowStateComponent, pile *components.PileComponent) bool {
	if pile.Len() == 0 {
		return false
	}
	if math.Abs(s.trackedX-pile.AnchorX) >= s.tuning.PileHitWidth(config.CardWidth) {
		return false
	}

	topCard, _ := pile.Top()
	topY := pile.TopY()
	if s.trackedY >= topY {
		return false
	}

	state.PileVisible = true
	state.PileX = pile.AnchorX + s.tuning.PileShadow.OffsetX
	state.PileY = topY + s.tuning.PileShadow.OffsetY
	state.PileAlpha = s.tuning.PileShadow.Alpha
	state.MaskCard = topCard
	return true
}

// DrawFloorShadow 绘制地面投影（牌堆层之下）
func (s *ShadowSystem) DrawFloorShadow(screen *ebiten.Image) {
	state := s.getState()
	if state == nil || !state.FloorVisible {
		return
	}

	s.drawEllipse(screen, state.FloorX, state.FloorY,
		s.tuning.FloorShadow.Width, s.tuning.FloorShadow.Height, state.FloorAlpha)
}

// DrawPileShadow 绘制堆顶投影（牌堆层之上、飞行层之下）
// 投影先画进卡牌大小的暂存画布，再用顶牌纹理做 DestinationIn
// 混合裁剪出顶牌轮廓，最后贴回屏幕
func (s *ShadowSystem) DrawPileShadow(screen *ebiten.Image) {
	state := s.getState()
	if state == nil || !state.PileVisible || state.MaskCard == 0 {
		return
	}

	maskCard, ok := ecs.GetComponent[*components.CardComponent](s.entityManager, state.MaskCard)
	if !ok {
		return
	}
	maskPos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, state.MaskCard)
	if !ok {
		return
	}
	maskImage := maskCard.CurrentImage()
	if maskImage == nil {
		return
	}

	if s.scratch == nil {
		s.scratch = ebiten.NewImage(int(config.CardWidth), int(config.CardHeight))
	}
	s.scratch.Clear()

	// 投影椭圆（暂存画布坐标系，原点为顶牌左上角）
	localX := state.PileX - (maskPos.X - config.CardWidth/2)
	localY := state.PileY - (maskPos.Y - config.CardHeight/2)
	s.drawEllipse(s.scratch, localX, localY, config.CardWidth*0.9, config.CardHeight*0.5, state.PileAlpha)

	// 轮廓裁剪：只保留落在顶牌不透明区域内的部分
	maskOp := &ebiten.DrawImageOptions{}
	maskOp.Blend = ebiten.BlendDestinationIn
	s.scratch.DrawImage(maskImage, maskOp)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(maskPos.X-config.CardWidth/2, maskPos.Y-config.CardHeight/2)
	screen.DrawImage(s.scratch, op)
}

// drawEllipse 以 (cx, cy) 为中心绘制半透明椭圆投影
func (s *ShadowSystem) drawEllipse(dst *ebiten.Image, cx, cy, w, h float64, alpha float32) {
	if s.shadowTex == nil {
		// 64x64 的圆形基础纹理，绘制时缩放成任意椭圆
		s.shadowTex = ebiten.NewImage(64, 64)
		vector.DrawFilledCircle(s.shadowTex, 32, 32, 30, color.RGBA{A: 255}, true)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/64.0, h/64.0)
	op.GeoM.Translate(cx-w/2, cy-h/2)
	op.ColorScale.ScaleAlpha(alpha)
	dst.DrawImage(s.shadowTex, op)
}
