// Package entities 提供实体工厂函数
// 工厂负责创建实体并挂载初始组件，逻辑一律放在 systems 包
package entities

import (
	"fmt"

	"github.com/gonewx/cardtable/pkg/components"
	"github.com/gonewx/cardtable/pkg/config"
	"github.com/gonewx/cardtable/pkg/ecs"
	"github.com/gonewx/cardtable/pkg/game"
	"github.com/gonewx/cardtable/pkg/types"
)

// NewCardEntity 创建一张卡牌实体
//
// 参数：
//   - em: 实体管理器
//   - rm: 资源管理器（按身份提供牌面/牌背纹理）
//   - id: 卡牌身份
//   - x, y: 初始世界坐标（卡牌中心）
//   - faceUp: 初始是否正面朝上
//
// 返回：
//   - ecs.EntityID: 卡牌实体ID
//   - error: 牌面纹理缺失时返回错误，调用方跳过该卡牌
func NewCardEntity(
	em *ecs.EntityManager,
	rm *game.ResourceManager,
	id types.CardID,
	x, y float64,
	faceUp bool,
) (ecs.EntityID, error) {
	face, err := rm.CardFace(id)
	if err != nil {
		return 0, fmt.Errorf("card %s skipped: %w", id, err)
	}
	back := rm.CardBack(id)

	entityID := em.CreateEntity()

	card := &components.CardComponent{
		ID:        id,
		FaceImage: face,
		BackImage: back,
		FaceUp:    faceUp,
	}
	ecs.AddComponent(em, entityID, card)
	ecs.AddComponent(em, entityID, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entityID, &components.ScaleComponent{ScaleX: 1.0, ScaleY: 1.0})
	ecs.AddComponent(em, entityID, &components.SpriteComponent{Image: card.CurrentImage()})
	ecs.AddComponent(em, entityID, &components.MotionBlurComponent{})

	return entityID, nil
}

// NewPileEntity 创建一个牌堆实体
func NewPileEntity(em *ecs.EntityManager, anchorX, anchorY float64) ecs.EntityID {
	entityID := em.CreateEntity()
	ecs.AddComponent(em, entityID, &components.PileComponent{
		Cards:        make([]ecs.EntityID, 0, 64),
		AnchorX:      anchorX,
		AnchorY:      anchorY,
		StackOffsetY: config.PileStackOffsetY,
	})
	return entityID
}

