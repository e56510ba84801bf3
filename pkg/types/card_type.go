// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import "fmt"

// Suit 定义扑克牌的花色
type Suit int

const (
	// SuitClubs 梅花
	SuitClubs Suit = iota
	// SuitDiamonds 方块
	SuitDiamonds
	// SuitHearts 红桃
	SuitHearts
	// SuitSpades 黑桃
	SuitSpades
)

// SuitCount 花色总数
const SuitCount = 4

// String 返回花色的字符串表示
func (s Suit) String() string {
	switch s {
	case SuitClubs:
		return "Clubs"
	case SuitDiamonds:
		return "Diamonds"
	case SuitHearts:
		return "Hearts"
	case SuitSpades:
		return "Spades"
	default:
		return "Unknown"
	}
}

// IsRed 返回该花色是否属于红色分组（红桃/方块）
// 红色花色的卡牌使用红色牌背，黑色花色使用蓝色牌背
func (s Suit) IsRed() bool {
	return s == SuitHearts || s == SuitDiamonds
}

// Rank 定义扑克牌的点数（1=A, 11=J, 12=Q, 13=K）
type Rank int

const (
	// RankAce A
	RankAce Rank = 1
	// RankJack J
	RankJack Rank = 11
	// RankQueen Q
	RankQueen Rank = 12
	// RankKing K
	RankKing Rank = 13
)

// RankCount 每个花色的点数总数
const RankCount = 13

// String 返回点数的字符串表示
func (r Rank) String() string {
	switch r {
	case RankAce:
		return "A"
	case RankJack:
		return "J"
	case RankQueen:
		return "Q"
	case RankKing:
		return "K"
	default:
		return fmt.Sprintf("%d", int(r))
	}
}

// CardID 唯一标识一张扑克牌（花色+点数）
type CardID struct {
	Suit Suit
	Rank Rank
}

// DeckSize 一副完整扑克牌的张数（4花色 × 13点数）
const DeckSize = SuitCount * RankCount

// String 返回卡牌标识的字符串表示，如 "A of Spades"
func (c CardID) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// IsRed 返回该卡牌是否属于红色花色分组
func (c CardID) IsRed() bool {
	return c.Suit.IsRed()
}

// AllCardIDs 返回一副完整扑克牌的全部 52 个卡牌标识
// 顺序固定：按花色、点数升序排列
func AllCardIDs() []CardID {
	ids := make([]CardID, 0, DeckSize)
	for s := SuitClubs; s <= SuitSpades; s++ {
		for r := RankAce; r <= RankKing; r++ {
			ids = append(ids, CardID{Suit: s, Rank: r})
		}
	}
	return ids
}
