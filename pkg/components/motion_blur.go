package components

// MotionBlurComponent 运动模糊组件
// 由 MotionSystem 逐帧写入速度向量，RenderSystem 据此沿反方向
// 绘制逐渐透明的残影；转移完成时必须清零
type MotionBlurComponent struct {
	// VX/VY 模糊速度向量（像素/秒，指向运动方向）
	VX float64
	VY float64

	// Strength 生效的模糊强度（0.0 = 关闭，实时读取设置）
	Strength float64
}

// Clear 清零模糊效果
func (m *MotionBlurComponent) Clear() {
	m.VX = 0
	m.VY = 0
	m.Strength = 0
}
