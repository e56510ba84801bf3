package scenes

import (
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/cardtable/pkg/components"
	"github.com/gonewx/cardtable/pkg/config"
	"github.com/gonewx/cardtable/pkg/ecs"
	"github.com/gonewx/cardtable/pkg/entities"
	"github.com/gonewx/cardtable/pkg/game"
	"github.com/gonewx/cardtable/pkg/systems"
)

// TableDeckSize 演示模式的牌组张数
const TableDeckSize = 144

// TableScene 桌面演示场景
//
// 持有两堆卡牌和全部动画系统，负责：
//   - 进入时按确定性配方构建整副牌（全部落入左堆，正面朝上）
//   - 组装调度器/运动引擎/投影系统并接线（位置回调、间隔变化回调）
//   - 搭建控制面板（间隔/时长/模糊滑动条，投影/弧线复选框，重置按钮）
//   - 分层渲染（桌面 → 地面投影 → 牌堆 → 堆顶投影 → 飞行层 → 面板）
//   - Teardown 按固定顺序整体清理，幂等，退出后不再有回调触发
type TableScene struct {
	entityManager   *ecs.EntityManager
	resourceManager *game.ResourceManager
	settingsManager *game.SettingsManager
	tuning          *config.TuningConfig
	rng             *rand.Rand

	// pileA 左堆（正向阶段的源堆），pileB 右堆
	pileA ecs.EntityID
	pileB ecs.EntityID

	motionSystem    *systems.MotionSystem
	schedulerSystem *systems.TransferSchedulerSystem
	shadowSystem    *systems.ShadowSystem
	renderSystem    *systems.RenderSystem
	sliderSystem    *systems.SliderSystem
	checkboxSystem  *systems.CheckboxSystem
	buttonSystem    *systems.ButtonSystem

	tornDown bool
}

// NewTableScene 创建桌面演示场景
//
// 参数：
//   - rm: 资源管理器（纹理必须已就绪）
//   - sm: 设置管理器
//   - tuning: 调参配置
//   - rng: 牌组洗乱用的随机源
func NewTableScene(
	rm *game.ResourceManager,
	sm *game.SettingsManager,
	tuning *config.TuningConfig,
	rng *rand.Rand,
) *TableScene {
	scene := &TableScene{
		entityManager:   ecs.NewEntityManager(),
		resourceManager: rm,
		settingsManager: sm,
		tuning:          tuning,
		rng:             rng,
	}

	scene.buildPiles()
	scene.buildSystems()
	scene.buildControlPanel()
	scene.buildDeckInto(scene.pileA)

	log.Printf("[TableScene] Scene ready: %d cards in left pile", scene.pileCount(scene.pileA))
	return scene
}

// buildPiles 创建左右两个牌堆实体
func (s *TableScene) buildPiles() {
	s.pileA = entities.NewPileEntity(s.entityManager, config.LeftPileAnchorX, config.PileAnchorY)
	s.pileB = entities.NewPileEntity(s.entityManager, config.RightPileAnchorX, config.PileAnchorY)
}

// buildSystems 组装动画系统并接线
func (s *TableScene) buildSystems() {
	settings := s.settingsManager.GetSettings()

	s.motionSystem = systems.NewMotionSystem(s.entityManager, settings, s.tuning)
	s.schedulerSystem = systems.NewTransferSchedulerSystem(
		s.entityManager, settings, s.motionSystem, s.pileA, s.pileB)
	s.shadowSystem = systems.NewShadowSystem(
		s.entityManager, settings, s.tuning, s.pileA, s.pileB)
	s.renderSystem = systems.NewRenderSystem(s.entityManager, s.tuning)
	s.sliderSystem = systems.NewSliderSystem(s.entityManager)
	s.checkboxSystem = systems.NewCheckboxSystem(s.entityManager)
	s.buttonSystem = systems.NewButtonSystem(s.entityManager)

	// 运动引擎逐帧位置回调驱动投影
	s.motionSystem.SetPositionListener(s.shadowSystem.TrackCard)

	// 间隔变化重置调度计时器（只影响下一次触发）
	s.settingsManager.SetOnIntervalChange(s.schedulerSystem.Reschedule)
}

// buildControlPanel 搭建控制面板控件
func (s *TableScene) buildControlPanel() {
	sm := s.settingsManager
	settings := sm.GetSettings()

	// 滑动条列
	sliderY := func(row int) float64 {
		return config.PanelTop + 20 + float64(row)*config.PanelRowHeight
	}
	entities.NewSliderEntity(s.entityManager, config.PanelSliderX, sliderY(0),
		"Interval (s)", game.MinTransferInterval, game.MaxTransferInterval,
		settings.TransferIntervalSec, sm.SetTransferInterval)
	entities.NewSliderEntity(s.entityManager, config.PanelSliderX, sliderY(1),
		"Duration (s)", game.MinTransferDuration, game.MaxTransferDuration,
		settings.TransferDurationSec, sm.SetTransferDuration)
	entities.NewSliderEntity(s.entityManager, config.PanelSliderX, sliderY(2),
		"Motion blur", 0.0, 1.0,
		settings.MotionBlurStrength, sm.SetMotionBlurStrength)

	// 复选框列
	entities.NewCheckboxEntity(s.entityManager, config.PanelCheckboxX, sliderY(0),
		"Shadows", settings.ShadowsEnabled, sm.SetShadowsEnabled)
	entities.NewCheckboxEntity(s.entityManager, config.PanelCheckboxX, sliderY(1),
		"Spiral flight", settings.SpiralProfile, sm.SetSpiralProfile)

	// 按钮列
	entities.NewButtonEntity(s.entityManager, config.PanelButtonX, sliderY(0),
		"Reset to left pile", func() { s.ResetToPile(s.pileA) })
	entities.NewButtonEntity(s.entityManager, config.PanelButtonX, sliderY(1),
		"Reset to right pile", func() { s.ResetToPile(s.pileB) })
}

// buildDeckInto 构建一副牌并全部落入指定牌堆（正面朝上）
// 单张牌面纹理缺失时跳过该卡牌，其余照常入堆
func (s *TableScene) buildDeckInto(pileID ecs.EntityID) {
	pile, ok := ecs.GetComponent[*components.PileComponent](s.entityManager, pileID)
	if !ok {
		return
	}

	deck := game.BuildDeck(TableDeckSize, s.rng)
	for _, id := range deck {
		x, y := pile.NextSlotPosition()
		card, err := entities.NewCardEntity(s.entityManager, s.resourceManager, id, x, y, true)
		if err != nil {
			log.Printf("[TableScene] WARNING: %v", err)
			continue
		}
		pile.PushTop(card)
	}
}

// ResetToPile 取消全部动画并把一副新牌重建到指定牌堆
// 目标是左堆则从正向阶段重新开始，右堆则从反向阶段开始
func (s *TableScene) ResetToPile(pileID ecs.EntityID) {
	s.motionSystem.CancelAll()
	s.schedulerSystem.Stop()
	s.shadowSystem.Clear()
	s.destroyAllCards()

	s.buildDeckInto(pileID)

	phase := components.PhaseDrainForward
	if pileID == s.pileB {
		phase = components.PhaseDrainBackward
	}
	s.schedulerSystem.SetPhase(phase)

	log.Printf("[TableScene] Reset: %d cards rebuilt, phase=%s", s.pileCount(pileID), phase)
}

// destroyAllCards 销毁两个牌堆的全部卡牌实体（含飞行中被取消的卡牌）
func (s *TableScene) destroyAllCards() {
	for _, id := range ecs.GetEntitiesWith1[*components.CardComponent](s.entityManager) {
		s.entityManager.DestroyEntity(id)
	}
	s.entityManager.RemoveMarkedEntities()

	for _, pileID := range [2]ecs.EntityID{s.pileA, s.pileB} {
		if pile, ok := ecs.GetComponent[*components.PileComponent](s.entityManager, pileID); ok {
			pile.Cards = pile.Cards[:0]
		}
	}
}

// Update 按固定顺序推进各系统
// 顺序：面板输入 → 调度 → 运动插值 → 投影 → 实体回收
func (s *TableScene) Update(deltaTime float64) {
	if s.tornDown {
		return
	}

	s.sliderSystem.Update(deltaTime)
	s.checkboxSystem.Update(deltaTime)
	s.buttonSystem.Update(deltaTime)

	s.schedulerSystem.Update(deltaTime)
	s.motionSystem.Update(deltaTime)

	// 转移完成后投影立即整体消失
	if s.schedulerSystem.InFlightCard() == 0 {
		s.shadowSystem.Clear()
	}
	s.shadowSystem.Update(deltaTime)

	s.entityManager.RemoveMarkedEntities()
}

// Draw 分层渲染场景
// 桌面 → 地面投影 → 牌堆 → 未提升的飞行卡牌 → 堆顶投影 →
// 已提升的飞行卡牌（带残影，最上层） → 控制面板
func (s *TableScene) Draw(screen *ebiten.Image) {
	if table := s.resourceManager.TableTexture(); table != nil {
		screen.DrawImage(table, nil)
	}

	s.shadowSystem.DrawFloorShadow(screen)

	s.renderSystem.DrawPile(screen, s.pileA)
	s.renderSystem.DrawPile(screen, s.pileB)

	inFlight, promoted := s.inFlightCard()
	if inFlight != 0 && !promoted {
		s.renderSystem.DrawCardWithBlur(screen, inFlight)
	}

	s.shadowSystem.DrawPileShadow(screen)

	if inFlight != 0 && promoted {
		s.renderSystem.DrawCardWithBlur(screen, inFlight)
	}

	s.renderSystem.DrawWidgets(screen)
}

// inFlightCard 返回飞行中的卡牌及其是否已提升到最上层
func (s *TableScene) inFlightCard() (ecs.EntityID, bool) {
	card := s.schedulerSystem.InFlightCard()
	if card == 0 {
		return 0, false
	}
	transfer, ok := ecs.GetComponent[*components.TransferComponent](s.entityManager, card)
	if !ok {
		return card, true
	}
	return card, transfer.Promoted
}

// Teardown 整体清理场景
// 顺序：取消全部动画 → 停止调度 → 清空投影 → 销毁全部实体；幂等
func (s *TableScene) Teardown() {
	if s.tornDown {
		return
	}
	s.tornDown = true

	s.motionSystem.CancelAll()
	s.schedulerSystem.Stop()
	s.shadowSystem.Clear()
	s.entityManager.DestroyAllEntities()

	log.Printf("[TableScene] Torn down")
}

// EntityManager 返回场景的实体管理器（测试用）
func (s *TableScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// Piles 返回左右牌堆实体（测试用）
func (s *TableScene) Piles() (ecs.EntityID, ecs.EntityID) {
	return s.pileA, s.pileB
}

// MotionSystem 返回运动插值引擎（测试用）
func (s *TableScene) MotionSystem() *systems.MotionSystem {
	return s.motionSystem
}

// SchedulerSystem 返回转移调度系统（测试用）
func (s *TableScene) SchedulerSystem() *systems.TransferSchedulerSystem {
	return s.schedulerSystem
}

// pileCount 返回牌堆的卡牌数
func (s *TableScene) pileCount(pileID ecs.EntityID) int {
	if pile, ok := ecs.GetComponent[*components.PileComponent](s.entityManager, pileID); ok {
		return pile.Len()
	}
	return 0
}
