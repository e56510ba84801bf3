package components

import "github.com/gonewx/cardtable/pkg/ecs"

// PileComponent 牌堆组件
// 维护一个有序的卡牌实体序列（索引 0 为堆底）和固定的锚点位置
//
// 不变量：
//   - 相邻卡牌的视觉堆叠偏移是一个固定的亚像素级常量（StackOffsetY），
//     使整个牌堆看起来是一个连续的块
//   - 一张卡牌同一时刻只属于一个牌堆，或处于"飞行中"状态（转移期间）
type PileComponent struct {
	// Cards 卡牌实体序列，索引 0 为堆底，末尾为堆顶
	Cards []ecs.EntityID

	// AnchorX 牌堆锚点X坐标（世界坐标，堆底卡牌中心）
	AnchorX float64

	// AnchorY 牌堆锚点Y坐标（世界坐标，堆底卡牌中心）
	AnchorY float64

	// StackOffsetY 相邻卡牌之间的堆叠偏移（像素，向上为正）
	StackOffsetY float64
}

// Len 返回牌堆中的卡牌数量
func (p *PileComponent) Len() int {
	return len(p.Cards)
}

// PushTop 将卡牌压入堆顶
func (p *PileComponent) PushTop(card ecs.EntityID) {
	p.Cards = append(p.Cards, card)
}

// PopTop 弹出堆顶卡牌
// 空堆时返回 (0, false)，调用方必须先检查长度（调度器会检查）
func (p *PileComponent) PopTop() (ecs.EntityID, bool) {
	if len(p.Cards) == 0 {
		return 0, false
	}
	card := p.Cards[len(p.Cards)-1]
	p.Cards = p.Cards[:len(p.Cards)-1]
	return card, true
}

// PopBottom 弹出堆底卡牌
// 剩余卡牌整体下移一个槽位，调用方需要为它们重新下发位置动画
func (p *PileComponent) PopBottom() (ecs.EntityID, bool) {
	if len(p.Cards) == 0 {
		return 0, false
	}
	card := p.Cards[0]
	p.Cards = append(p.Cards[:0], p.Cards[1:]...)
	return card, true
}

// Top 返回堆顶卡牌（不弹出）
func (p *PileComponent) Top() (ecs.EntityID, bool) {
	if len(p.Cards) == 0 {
		return 0, false
	}
	return p.Cards[len(p.Cards)-1], true
}

// SlotPosition 返回指定索引槽位的世界坐标
func (p *PileComponent) SlotPosition(index int) (float64, float64) {
	return p.AnchorX, p.AnchorY - float64(index)*p.StackOffsetY
}

// TopY 返回堆顶卡牌的Y坐标（空堆时返回锚点Y）
func (p *PileComponent) TopY() float64 {
	if len(p.Cards) == 0 {
		return p.AnchorY
	}
	_, y := p.SlotPosition(len(p.Cards) - 1)
	return y
}

// BottomY 返回堆底的Y坐标
func (p *PileComponent) BottomY() float64 {
	return p.AnchorY
}

// NextSlotPosition 返回下一张入堆卡牌将落到的槽位坐标
func (p *PileComponent) NextSlotPosition() (float64, float64) {
	return p.SlotPosition(len(p.Cards))
}
