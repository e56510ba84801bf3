package entities

import (
	"github.com/gonewx/cardtable/pkg/components"
	"github.com/gonewx/cardtable/pkg/config"
	"github.com/gonewx/cardtable/pkg/ecs"
)

// NewSliderEntity 创建滑动条实体
//
// 参数：
//   - em: 实体管理器
//   - x, y: 滑槽左上角世界坐标
//   - label: 标签文字
//   - minValue, maxValue: 实际值区间
//   - initial: 初始实际值
//   - onChange: 值改变回调（收到映射后的实际值）
func NewSliderEntity(
	em *ecs.EntityManager,
	x, y float64,
	label string,
	minValue, maxValue, initial float64,
	onChange func(value float64),
) ecs.EntityID {
	entityID := em.CreateEntity()

	slider := &components.SliderComponent{
		SlotWidth:     config.PanelSliderWidth,
		SlotHeight:    config.PanelSliderHeight,
		KnobWidth:     10,
		KnobHeight:    20,
		MinValue:      minValue,
		MaxValue:      maxValue,
		Label:         label,
		OnValueChange: onChange,
	}
	slider.SetActualValue(initial)

	ecs.AddComponent(em, entityID, slider)
	ecs.AddComponent(em, entityID, &components.PositionComponent{X: x, Y: y})

	return entityID
}

// NewCheckboxEntity 创建复选框实体
func NewCheckboxEntity(
	em *ecs.EntityManager,
	x, y float64,
	label string,
	checked bool,
	onToggle func(checked bool),
) ecs.EntityID {
	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.CheckboxComponent{
		Width:    config.PanelCheckboxSize,
		Height:   config.PanelCheckboxSize,
		Checked:  checked,
		Label:    label,
		OnToggle: onToggle,
	})
	ecs.AddComponent(em, entityID, &components.PositionComponent{X: x, Y: y})

	return entityID
}

// NewButtonEntity 创建按钮实体
func NewButtonEntity(
	em *ecs.EntityManager,
	x, y float64,
	label string,
	onClick func(),
) ecs.EntityID {
	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.ButtonComponent{
		Width:   config.PanelButtonWidth,
		Height:  config.PanelButtonHeight,
		Label:   label,
		OnClick: onClick,
	})
	ecs.AddComponent(em, entityID, &components.PositionComponent{X: x, Y: y})

	return entityID
}
