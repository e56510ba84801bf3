package components

// PositionComponent 存储实体的世界坐标位置
type PositionComponent struct {
	X float64
	Y float64
}
