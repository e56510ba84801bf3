package components

import (
	"testing"

	"github.com/gonewx/cardtable/pkg/ecs"
)

func newTestPile() *PileComponent {
	return &PileComponent{
		Cards:        make([]ecs.EntityID, 0, 8),
		AnchorX:      250,
		AnchorY:      330,
		StackOffsetY: 0.4,
	}
}

// TestPileComponent_PushPop 测试堆顶/堆底的压入弹出
func TestPileComponent_PushPop(t *testing.T) {
	pile := newTestPile()

	// 空堆弹出失败
	if _, ok := pile.PopTop(); ok {
		t.Error("Expected PopTop to fail on empty pile")
	}
	if _, ok := pile.PopBottom(); ok {
		t.Error("Expected PopBottom to fail on empty pile")
	}

	pile.PushTop(1)
	pile.PushTop(2)
	pile.PushTop(3)

	if pile.Len() != 3 {
		t.Fatalf("Expected 3 cards, got %d", pile.Len())
	}

	// 堆顶弹出末尾
	if card, ok := pile.PopTop(); !ok || card != 3 {
		t.Errorf("PopTop = (%d, %v), want (3, true)", card, ok)
	}

	// 堆底弹出索引 0，剩余卡牌下移
	if card, ok := pile.PopBottom(); !ok || card != 1 {
		t.Errorf("PopBottom = (%d, %v), want (1, true)", card, ok)
	}
	if top, _ := pile.Top(); top != 2 {
		t.Errorf("Expected card 2 to remain, got %d", top)
	}
}

// TestPileComponent_SlotPosition 测试槽位坐标计算
func TestPileComponent_SlotPosition(t *testing.T) {
	pile := newTestPile()

	// 堆底槽位就是锚点
	x, y := pile.SlotPosition(0)
	if x != 250 || y != 330 {
		t.Errorf("SlotPosition(0) = (%v, %v), want (250, 330)", x, y)
	}

	// 每个槽位向上偏移一个固定常量
	_, y5 := pile.SlotPosition(5)
	if y5 != 330-5*0.4 {
		t.Errorf("SlotPosition(5) y = %v, want %v", y5, 330-5*0.4)
	}

	// NextSlotPosition 对应下一个索引
	pile.PushTop(1)
	pile.PushTop(2)
	_, nextY := pile.NextSlotPosition()
	_, wantY := pile.SlotPosition(2)
	if nextY != wantY {
		t.Errorf("NextSlotPosition y = %v, want %v", nextY, wantY)
	}
}

// TestPileComponent_TopY 测试堆顶高度
func TestPileComponent_TopY(t *testing.T) {
	pile := newTestPile()

	// 空堆返回锚点Y
	if y := pile.TopY(); y != pile.AnchorY {
		t.Errorf("Empty pile TopY = %v, want %v", y, pile.AnchorY)
	}

	for i := 0; i < 10; i++ {
		pile.PushTop(ecs.EntityID(i + 1))
	}

	// 堆越高，堆顶Y越小（向上）
	if y := pile.TopY(); y >= pile.AnchorY {
		t.Errorf("TopY = %v, expected above anchor %v", y, pile.AnchorY)
	}
	_, want := pile.SlotPosition(9)
	if y := pile.TopY(); y != want {
		t.Errorf("TopY = %v, want %v", y, want)
	}
}
