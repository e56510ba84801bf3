package components

// SliderComponent 滑动条组件
// 用于调节转移间隔、转移时长、模糊强度等数值参数
// 控件只负责发出数值变化事件，语义由 OnValueChange 回调决定
type SliderComponent struct {
	// 滑动条尺寸
	SlotWidth  float64 // 滑槽宽度
	SlotHeight float64 // 滑槽高度
	KnobWidth  float64 // 滑块宽度
	KnobHeight float64 // 滑块高度

	// Value 当前值（0.0 - 1.0，归一化）
	Value float64

	// MinValue/MaxValue 实际值区间，回调收到的是映射后的实际值
	MinValue float64
	MaxValue float64

	// Label 标签文字
	Label string

	// 状态
	IsDragging bool // 是否正在拖动
	IsHovered  bool // 是否指针悬停

	// OnValueChange 值改变时的回调（参数为映射到 Min/Max 区间的实际值）
	OnValueChange func(value float64)
}

// ActualValue 返回映射到 [MinValue, MaxValue] 区间的实际值
func (s *SliderComponent) ActualValue() float64 {
	return s.MinValue + (s.MaxValue-s.MinValue)*s.Value
}

// SetActualValue 按实际值反推归一化 Value（越界时取边界）
func (s *SliderComponent) SetActualValue(v float64) {
	if s.MaxValue == s.MinValue {
		s.Value = 0
		return
	}
	t := (v - s.MinValue) / (s.MaxValue - s.MinValue)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	s.Value = t
}
