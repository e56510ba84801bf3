package components

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/cardtable/pkg/types"
)

// CardComponent 卡牌组件
// 显式建模卡牌的身份和正反面纹理，替代在视觉对象上临时挂接属性的做法
//
// 纹理归属：
//   - FaceImage 牌面纹理（由 ResourceManager 按 CardID 提供）
//   - BackImage 牌背纹理（按花色红黑分组选择红背/蓝背）
//   - FaceUp 决定 SpriteComponent 当前应显示哪一张
type CardComponent struct {
	// ID 卡牌身份（花色+点数）
	ID types.CardID

	// FaceImage 牌面纹理
	FaceImage *ebiten.Image

	// BackImage 牌背纹理（红色花色→红背，黑色花色→蓝背）
	BackImage *ebiten.Image

	// FaceUp 当前是否正面朝上
	FaceUp bool
}

// CurrentImage 返回当前朝向对应的纹理
func (c *CardComponent) CurrentImage() *ebiten.Image {
	if c.FaceUp {
		return c.FaceImage
	}
	return c.BackImage
}
