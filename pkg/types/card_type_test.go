package types

import "testing"

// TestAllCardIDs 测试完整牌组的枚举
func TestAllCardIDs(t *testing.T) {
	ids := AllCardIDs()

	if len(ids) != DeckSize {
		t.Fatalf("Expected %d card IDs, got %d", DeckSize, len(ids))
	}

	// 每个标识必须唯一
	seen := make(map[CardID]bool)
	for _, id := range ids {
		if seen[id] {
			t.Errorf("Duplicate card ID: %s", id)
		}
		seen[id] = true
	}
}

// TestSuit_IsRed 测试花色的红黑分组
func TestSuit_IsRed(t *testing.T) {
	tests := []struct {
		suit Suit
		want bool
	}{
		{SuitHearts, true},
		{SuitDiamonds, true},
		{SuitClubs, false},
		{SuitSpades, false},
	}

	for _, tt := range tests {
		if got := tt.suit.IsRed(); got != tt.want {
			t.Errorf("%s.IsRed() = %v, want %v", tt.suit, got, tt.want)
		}
	}
}

// TestRank_String 测试点数的字符串表示
func TestRank_String(t *testing.T) {
	tests := []struct {
		rank Rank
		want string
	}{
		{RankAce, "A"},
		{Rank(2), "2"},
		{Rank(10), "10"},
		{RankJack, "J"},
		{RankQueen, "Q"},
		{RankKing, "K"},
	}

	for _, tt := range tests {
		if got := tt.rank.String(); got != tt.want {
			t.Errorf("Rank(%d).String() = %q, want %q", int(tt.rank), got, tt.want)
		}
	}
}

// TestCardID_String 测试卡牌标识的字符串表示
func TestCardID_String(t *testing.T) {
	id := CardID{Suit: SuitSpades, Rank: RankAce}
	if got := id.String(); got != "A of Spades" {
		t.Errorf("String() = %q, want %q", got, "A of Spades")
	}
}
