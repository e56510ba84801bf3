package systems

import (
	"github.com/gonewx/cardtable/pkg/components"
	"github.com/gonewx/cardtable/pkg/ecs"
	"github.com/gonewx/cardtable/pkg/utils"
)

// SliderMouseInput 指针输入接口，测试时可注入模拟输入
type SliderMouseInput interface {
	// PointerPosition 当前指针位置
	PointerPosition() (int, int)
	// IsPointerPressed 指针是否按下中
	IsPointerPressed() bool
	// IsPointerJustPressed 指针是否刚刚按下
	IsPointerJustPressed() bool
}

// defaultSliderInput 真实输入（触摸优先，回退鼠标）
type defaultSliderInput struct{}

func (defaultSliderInput) PointerPosition() (int, int) { return utils.GetPointerPosition() }
func (defaultSliderInput) IsPointerPressed() bool      { return utils.IsPointerPressed() }
func (defaultSliderInput) IsPointerJustPressed() bool {
	pressed, _, _ := utils.IsPointerJustPressed()
	return pressed
}

// SliderSystem 滑动条交互系统
// 处理滑块拖动并把归一化值映射成实际值后回调
type SliderSystem struct {
	entityManager *ecs.EntityManager
	input         SliderMouseInput
}

// NewSliderSystem 创建滑动条系统
func NewSliderSystem(em *ecs.EntityManager) *SliderSystem {
	return &SliderSystem{
		entityManager: em,
		input:         defaultSliderInput{},
	}
}

// SetInput 注入指针输入实现（测试用）
func (s *SliderSystem) SetInput(input SliderMouseInput) {
	s.input = input
}

// Update 处理滑动条的悬停、按下和拖动
func (s *SliderSystem) Update(deltaTime float64) {
	mouseX, mouseY := s.input.PointerPosition()
	pressed := s.input.IsPointerPressed()
	justPressed := s.input.IsPointerJustPressed()

	entities := ecs.GetEntitiesWith2[*components.SliderComponent, *components.PositionComponent](s.entityManager)
	for _, id := range entities {
		slider, _ := ecs.GetComponent[*components.SliderComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if slider == nil || pos == nil {
			continue
		}

		// 命中区域覆盖整个滑槽加滑块高度的余量
		hitTop := pos.Y - slider.KnobHeight/2
		hitBottom := pos.Y + slider.SlotHeight + slider.KnobHeight/2
		inside := float64(mouseX) >= pos.X && float64(mouseX) <= pos.X+slider.SlotWidth &&
			float64(mouseY) >= hitTop && float64(mouseY) <= hitBottom

		slider.IsHovered = inside

		if justPressed && inside {
			slider.IsDragging = true
		}
		if !pressed {
			slider.IsDragging = false
		}

		if slider.IsDragging {
			s.dragTo(slider, pos.X, float64(mouseX))
		}
	}
}

// dragTo 把滑块移到指针位置并触发回调
func (s *SliderSystem) dragTo(slider *components.SliderComponent, slotX, mouseX float64) {
	if slider.SlotWidth <= 0 {
		return
	}

	value := (mouseX - slotX) / slider.SlotWidth
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}

	if value == slider.Value {
		return
	}
	slider.Value = value

	if slider.OnValueChange != nil {
		slider.OnValueChange(slider.ActualValue())
	}
}
