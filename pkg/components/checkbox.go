package components

// CheckboxComponent 复选框组件
// 用于开关选项（投影开关、弧线翻面策略开关）
type CheckboxComponent struct {
	// 复选框尺寸
	Width  float64
	Height float64

	// Checked 当前是否勾选
	Checked bool

	// Label 标签文字
	Label string

	// IsHovered 是否指针悬停
	IsHovered bool

	// OnToggle 勾选状态改变时的回调
	OnToggle func(checked bool)
}
