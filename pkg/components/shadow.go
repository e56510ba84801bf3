package components

import "github.com/gonewx/cardtable/pkg/ecs"

// ShadowStateComponent 投影状态组件（单例实体）
// 每次转移期间由 ShadowSystem 逐帧计算，转移完成或强制取消时整体清零
//
// 两个投影元素：
//   - 地面投影：转移开始后始终可见，横向跟随飞行卡牌，固定在地面高度
//   - 堆顶投影：仅当飞行卡牌位于某个非空牌堆上方时可见，
//     贴在该堆顶牌位置并裁剪到顶牌轮廓内
type ShadowStateComponent struct {
	// 地面投影
	FloorVisible bool
	FloorX       float64
	FloorY       float64
	FloorAlpha   float32

	// 堆顶投影
	PileVisible bool
	PileX       float64
	PileY       float64
	PileAlpha   float32

	// MaskCard 堆顶投影的裁剪目标（被投影的顶牌实体，0 = 无）
	MaskCard ecs.EntityID
}

// Clear 清零全部投影状态
func (s *ShadowStateComponent) Clear() {
	*s = ShadowStateComponent{}
}
