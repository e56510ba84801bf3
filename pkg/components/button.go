package components

// ButtonComponent 按钮组件
// 用于"重置到左堆/右堆"等一次性动作
type ButtonComponent struct {
	// 按钮尺寸
	Width  float64
	Height float64

	// Label 标签文字
	Label string

	// 状态
	IsHovered bool // 是否指针悬停
	IsPressed bool // 是否按下中

	// OnClick 点击（按下并在按钮内释放）时的回调
	OnClick func()
}
