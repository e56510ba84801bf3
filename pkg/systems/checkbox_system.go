package systems

import (
	"github.com/gonewx/cardtable/pkg/components"
	"github.com/gonewx/cardtable/pkg/ecs"
	"github.com/gonewx/cardtable/pkg/utils"
)

// CheckboxSystem 复选框交互系统
// 点击切换勾选状态并触发回调
type CheckboxSystem struct {
	entityManager *ecs.EntityManager
}

// NewCheckboxSystem 创建复选框系统
func NewCheckboxSystem(em *ecs.EntityManager) *CheckboxSystem {
	return &CheckboxSystem{entityManager: em}
}

// Update 处理复选框的悬停和点击
func (s *CheckboxSystem) Update(deltaTime float64) {
	mouseX, mouseY := utils.GetPointerPosition()
	justPressed, pressX, pressY := utils.IsPointerJustPressed()

	entities := ecs.GetEntitiesWith2[*components.CheckboxComponent, *components.PositionComponent](s.entityManager)
	for _, id := range entities {
		box, _ := ecs.GetComponent[*components.CheckboxComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if box == nil || pos == nil {
			continue
		}

		box.IsHovered = s.contains(box, pos, float64(mouseX), float64(mouseY))

		if justPressed && s.contains(box, pos, float64(pressX), float64(pressY)) {
			s.Toggle(id)
		}
	}
}

// Toggle 切换勾选状态并触发回调
func (s *CheckboxSystem) Toggle(id ecs.EntityID) {
	box, ok := ecs.GetComponent[*components.CheckboxComponent](s.entityManager, id)
	if !ok {
		return
	}

	box.Checked = !box.Checked
	if box.OnToggle != nil {
		box.OnToggle(box.Checked)
	}
}

// contains 判断点是否落在复选框内（含标签文字不算）
func (s *CheckboxSystem) contains(box *components.CheckboxComponent, pos *components.PositionComponent, x, y float64) bool {
	return x >= pos.X && x <= pos.X+box.Width &&
		y >= pos.Y && y <= pos.Y+box.Height
}
