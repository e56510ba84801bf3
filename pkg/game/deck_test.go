package game

import (
	"math/rand"
	"testing"

	"github.com/gonewx/cardtable/pkg/types"
)

// TestBuildDeck_CompleteGroups 测试配方：144 张 = 两组完整52张 + 40 张随机补齐
// 每个卡牌身份必须至少出现两次
func TestBuildDeck_CompleteGroups(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	deck := BuildDeck(144, rng)

	if len(deck) != 144 {
		t.Fatalf("Expected 144 cards, got %d", len(deck))
	}

	counts := make(map[types.CardID]int)
	for _, id := range deck {
		counts[id]++
	}

	if len(counts) != types.DeckSize {
		t.Errorf("Expected all %d identities present, got %d", types.DeckSize, len(counts))
	}
	for id, n := range counts {
		if n < MaxCompleteGroups {
			t.Errorf("Identity %s appears %d times, want >= %d", id, n, MaxCompleteGroups)
		}
	}
}

// TestBuildDeck_ExactSingleGroup 测试恰好 52 张时为一组完整牌，无重复
func TestBuildDeck_ExactSingleGroup(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	deck := BuildDeck(types.DeckSize, rng)

	counts := make(map[types.CardID]int)
	for _, id := range deck {
		counts[id]++
	}
	for id, n := range counts {
		if n != 1 {
			t.Errorf("Identity %s appears %d times, want exactly 1", id, n)
		}
	}
}

// TestBuildDeck_SmallSize 测试小于一组时全部随机补齐
func TestBuildDeck_SmallSize(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	deck := BuildDeck(10, rng)
	if len(deck) != 10 {
		t.Fatalf("Expected 10 cards, got %d", len(deck))
	}
}

// TestBuildDeck_Deterministic 测试相同种子产生相同牌序
func TestBuildDeck_Deterministic(t *testing.T) {
	a := BuildDeck(144, rand.New(rand.NewSource(7)))
	b := BuildDeck(144, rand.New(rand.NewSource(7)))

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Decks diverge at index %d: %s vs %s", i, a[i], b[i])
		}
	}
}

// TestBuildDeck_ZeroSize 测试非法张数
func TestBuildDeck_ZeroSize(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if deck := BuildDeck(0, rng); deck != nil {
		t.Errorf("Expected nil deck for size 0, got %d cards", len(deck))
	}
}
