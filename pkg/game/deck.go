package game

import (
	"math/rand"

	"github.com/gonewx/cardtable/pkg/types"
)

// MaxCompleteGroups 牌组配方中完整52张子序列的最大重复次数
const MaxCompleteGroups = 2

// BuildDeck 按确定性配方构建并洗乱一副牌
//
// 配方：在目标张数允许的范围内先放入完整的52张子序列（至多两组，
// 每组内每个卡牌身份恰好出现一次），不足的部分用均匀随机抽取的
// 卡牌身份补齐，最后整体洗乱
//
// 参数：
//   - size: 目标张数
//   - rng: 随机源（测试注入固定种子可复现）
//
// 返回：
//   - []types.CardID: 洗乱后的有序卡牌身份序列
func BuildDeck(size int, rng *rand.Rand) []types.CardID {
	if size <= 0 {
		return nil
	}

	all := types.AllCardIDs()
	deck := make([]types.CardID, 0, size)

	// 完整子序列
	groups := 0
	for groups < MaxCompleteGroups && len(deck)+types.DeckSize <= size {
		deck = append(deck, all...)
		groups++
	}

	// 均匀随机补齐
	for len(deck) < size {
		deck = append(deck, all[rng.Intn(len(all))])
	}

	// Fisher-Yates 洗乱
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})

	return deck
}
