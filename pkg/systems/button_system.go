package systems

import (
	"github.com/gonewx/cardtable/pkg/components"
	"github.com/gonewx/cardtable/pkg/ecs"
	"github.com/gonewx/cardtable/pkg/utils"
)

// ButtonSystem 按钮交互系统
// 按下并在按钮区域内释放才算一次点击
type ButtonSystem struct {
	entityManager *ecs.EntityManager
}

// NewButtonSystem 创建按钮系统
func NewButtonSystem(em *ecs.EntityManager) *ButtonSystem {
	return &ButtonSystem{entityManager: em}
}

// Update 处理按钮的悬停、按下和释放
func (s *ButtonSystem) Update(deltaTime float64) {
	mouseX, mouseY := utils.GetPointerPosition()
	justPressed, pressX, pressY := utils.IsPointerJustPressed()
	justReleased := utils.IsPointerJustReleased()

	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)
	for _, id := range entities {
		btn, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if btn == nil || pos == nil {
			continue
		}

		btn.IsHovered = s.contains(btn, pos, float64(mouseX), float64(mouseY))

		if justPressed && s.contains(btn, pos, float64(pressX), float64(pressY)) {
			btn.IsPressed = true
		}

		if justReleased {
			wasPressed := btn.IsPressed
			btn.IsPressed = false
			if wasPressed && btn.IsHovered {
				s.Click(id)
			}
		}
	}
}

// Click 触发按钮的点击回调
func (s *ButtonSystem) Click(id ecs.EntityID) {
	btn, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)
	if !ok {
		return
	}
	if btn.OnClick != nil {
		btn.OnClick()
	}
}

// contains 判断点是否落在按钮内
func (s *ButtonSystem) contains(btn *components.ButtonComponent, pos *components.PositionComponent, x, y float64) bool {
	return x >= pos.X && x <= pos.X+btn.Width &&
		y >= pos.Y && y <= pos.Y+btn.Height
}
