package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/cardtable/pkg/components"
	"github.com/gonewx/cardtable/pkg/config"
	"github.com/gonewx/cardtable/pkg/ecs"
)

// RenderSystem 管理桌面场景实体的渲染
//
// 分层绘制由场景编排（背景 → 地面投影 → 牌堆 → 堆顶投影 → 飞行层 → 控制面板），
// 本系统提供每一层的具体绘制方法：
//   - DrawPile: 按索引从堆底到堆顶绘制一个牌堆
//   - DrawCardWithBlur: 绘制飞行中的卡牌及其运动模糊残影
//   - DrawWidgets: 绘制控制面板（滑动条/复选框/按钮）
type RenderSystem struct {
	entityManager *ecs.EntityManager
	tuning        *config.TuningConfig
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, tuning *config.TuningConfig) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		tuning:        tuning,
	}
}

// DrawPile 绘制一个牌堆（索引 0 在最底，依次向上）
func (s *RenderSystem) DrawPile(screen *ebiten.Image, pileID ecs.EntityID) {
	pile, ok := ecs.GetComponent[*components.PileComponent](s.entityManager, pileID)
	if !ok {
		return
	}
	for _, card := range pile.Cards {
		s.DrawCard(screen, card)
	}
}

// DrawCard 绘制一张卡牌（以位置为中心，应用实体缩放）
func (s *RenderSystem) DrawCard(screen *ebiten.Image, card ecs.EntityID) {
	s.drawCardImage(screen, card, 0, 0, 1.0)
}

// DrawCardWithBlur 绘制飞行中的卡牌和运动模糊残影
// 残影沿速度反方向排布，逐个变淡；模糊强度为零时与 DrawCard 等价
func (s *RenderSystem) DrawCardWithBlur(screen *ebiten.Image, card ecs.EntityID) {
	blur, ok := ecs.GetComponent[*components.MotionBlurComponent](s.entityManager, card)
	if ok && blur.Strength > 0 && (blur.VX != 0 || blur.VY != 0) {
		ghosts := s.tuning.BlurGhosts
		for i := ghosts; i >= 1; i-- {
			offset := s.tuning.BlurGhostSpacing * float64(i)
			alpha := float32(blur.Strength) * float32(ghosts-i+1) / float32(ghosts+1) * 0.6
			s.drawCardImage(screen, card, -blur.VX*offset, -blur.VY*offset, alpha)
		}
	}

	s.drawCardImage(screen, card, 0, 0, 1.0)
}

// drawCardImage 按偏移和透明度绘制卡牌纹理
func (s *RenderSystem) drawCardImage(screen *ebiten.Image, card ecs.EntityID, dx, dy float64, alpha float32) {
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, card)
	if !ok || sprite.Image == nil {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, card)
	if !ok {
		return
	}

	scaleX, scaleY := 1.0, 1.0
	if scale, ok := ecs.GetComponent[*components.ScaleComponent](s.entityManager, card); ok {
		scaleX = scale.ScaleX
		scaleY = scale.ScaleY
	}
	if scaleX <= 0 || scaleY <= 0 {
		// 翻面压缩到零宽的瞬间不绘制
		return
	}

	w := float64(sprite.Image.Bounds().Dx())
	h := float64(sprite.Image.Bounds().Dy())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(scaleX, scaleY)
	op.GeoM.Translate(pos.X+dx, pos.Y+dy)
	if alpha < 1.0 {
		op.ColorScale.ScaleAlpha(alpha)
	}
	screen.DrawImage(sprite.Image, op)
}

// 控制面板配色
var (
	widgetSlotColor   = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	widgetFillColor   = color.RGBA{R: 200, G: 180, B: 90, A: 255}
	widgetKnobColor   = color.RGBA{R: 235, G: 235, B: 225, A: 255}
	widgetBorderColor = color.RGBA{R: 210, G: 210, B: 200, A: 255}
	widgetHoverColor  = color.RGBA{R: 70, G: 90, B: 70, A: 255}
)

// DrawWidgets 绘制控制面板的全部控件
func (s *RenderSystem) DrawWidgets(screen *ebiten.Image) {
	s.drawSliders(screen)
	s.drawCheckboxes(screen)
	s.drawButtons(screen)
}

// drawSliders 绘制滑动条（滑槽 + 已填充段 + 滑块 + 标签和当前值）
func (s *RenderSystem) drawSliders(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.SliderComponent, *components.PositionComponent](s.entityManager)
	for _, id := range entities {
		slider, _ := ecs.GetComponent[*components.SliderComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if slider == nil || pos == nil {
			continue
		}

		x, y := float32(pos.X), float32(pos.Y)
		w, h := float32(slider.SlotWidth), float32(slider.SlotHeight)

		vector.DrawFilledRect(screen, x, y, w, h, widgetSlotColor, false)
		vector.DrawFilledRect(screen, x, y, w*float32(slider.Value), h, widgetFillColor, false)
		vector.StrokeRect(screen, x, y, w, h, 1, widgetBorderColor, false)

		knobX := x + w*float32(slider.Value) - float32(slider.KnobWidth)/2
		knobY := y + h/2 - float32(slider.KnobHeight)/2
		vector.DrawFilledRect(screen, knobX, knobY, float32(slider.KnobWidth), float32(slider.KnobHeight), widgetKnobColor, false)

		label := fmt.Sprintf("%s: %.2f", slider.Label, slider.ActualValue())
		ebitenutil.DebugPrintAt(screen, label, int(pos.X), int(pos.Y)-18)
	}
}

// drawCheckboxes 绘制复选框
func (s *RenderSystem) drawCheckboxes(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.CheckboxComponent, *components.PositionComponent](s.entityManager)
	for _, id := range entities {
		box, _ := ecs.GetComponent[*components.CheckboxComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if box == nil || pos == nil {
			continue
		}

		x, y := float32(pos.X), float32(pos.Y)
		w, h := float32(box.Width), float32(box.Height)

		fill := widgetSlotColor
		if box.IsHovered {
			fill = widgetHoverColor
		}
		vector.DrawFilledRect(screen, x, y, w, h, fill, false)
		vector.StrokeRect(screen, x, y, w, h, 1, widgetBorderColor, false)
		if box.Checked {
			vector.DrawFilledRect(screen, x+4, y+4, w-8, h-8, widgetFillColor, false)
		}

		ebitenutil.DebugPrintAt(screen, box.Label, int(pos.X+box.Width)+8, int(pos.Y)+1)
	}
}

// drawButtons 绘制按钮
func (s *RenderSystem) drawButtons(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)
	for _, id := range entities {
		btn, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if btn == nil || pos == nil {
			continue
		}

		x, y := float32(pos.X), float32(pos.Y)
		w, h := float32(btn.Width), float32(btn.Height)

		fill := widgetSlotColor
		if btn.IsPressed {
			fill = widgetFillColor
		} else if btn.IsHovered {
			fill = widgetHoverColor
		}
		vector.DrawFilledRect(screen, x, y, w, h, fill, false)
		vector.StrokeRect(screen, x, y, w, h, 1, widgetBorderColor, false)

		textX := int(pos.X + btn.Width/2 - float64(len(btn.Label))*3)
		textY := int(pos.Y + btn.Height/2 - 8)
		ebitenutil.DebugPrintAt(screen, btn.Label, textX, textY)
	}
}
