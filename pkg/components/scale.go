package components

// ScaleComponent 存储实体级别的缩放因子
// 用于渲染时对整个实体进行缩放（如翻面动画的横向压缩）
//
// 最终绘制尺寸 = 纹理尺寸 * ScaleX/ScaleY
type ScaleComponent struct {
	// ScaleX X轴缩放因子（1.0 = 原始大小，0.0 = 完全压缩）
	ScaleX float64

	// ScaleY Y轴缩放因子
	ScaleY float64
}
