package game

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/cardtable/pkg/config"
	"github.com/gonewx/cardtable/pkg/types"
)

// ResourceManager is responsible for centralized management of card textures.
// It provides generation and caching for card faces, the two back designs and
// the table background, ensuring each texture is built only once and reused.
//
// 本应用不解析图集文件：纹理是程序化生成的（卡牌观感不在范围内），
// 但对外接口与图集提供者一致 —— 按卡牌身份取牌面，按花色红黑分组取牌背。
//
// Thread Safety Note:
// This implementation is NOT thread-safe. The internal caches use standard
// Go maps. For the current single-threaded game loop, no synchronization
// is needed.
type ResourceManager struct {
	faceCache map[types.CardID]*ebiten.Image // 牌面缓存: CardID -> Image
	redBack   *ebiten.Image                  // 红色牌背（红桃/方块）
	blueBack  *ebiten.Image                  // 蓝色牌背（梅花/黑桃）
	table     *ebiten.Image                  // 桌面背景
	ready     bool                           // 全部纹理是否已生成
}

// NewResourceManager creates and initializes a new ResourceManager instance
// with empty caches. Call Prepare before starting the table scene.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		faceCache: make(map[types.CardID]*ebiten.Image),
	}
}

// Prepare 生成全部纹理（52张牌面、2张牌背、桌面背景）
// 演示模式在纹理就绪前不得启动；LoadingScene 以 Ready 为门禁
func (rm *ResourceManager) Prepare() error {
	if rm.ready {
		return nil
	}

	for _, id := range types.AllCardIDs() {
		rm.faceCache[id] = rm.buildFaceImage(id)
	}
	rm.redBack = rm.buildBackImage(color.RGBA{R: 170, G: 40, B: 40, A: 255})
	rm.blueBack = rm.buildBackImage(color.RGBA{R: 40, G: 60, B: 160, A: 255})
	rm.table = rm.buildTableImage()

	rm.ready = true
	log.Printf("[ResourceManager] Prepared %d card faces, 2 backs, table texture", len(rm.faceCache))
	return nil
}

// Ready 返回全部纹理是否已生成
func (rm *ResourceManager) Ready() bool {
	return rm.ready
}

// CardFace 按卡牌身份返回牌面纹理
// 纹理缺失返回错误，调用方跳过该卡牌（非致命）
func (rm *ResourceManager) CardFace(id types.CardID) (*ebiten.Image, error) {
	img, ok := rm.faceCache[id]
	if !ok || img == nil {
		return nil, fmt.Errorf("no face texture for card %s", id)
	}
	return img, nil
}

// CardBack 按花色红黑分组返回对应的牌背纹理
// 红桃/方块 → 红背，梅花/黑桃 → 蓝背
func (rm *ResourceManager) CardBack(id types.CardID) *ebiten.Image {
	if id.IsRed() {
		return rm.redBack
	}
	return rm.blueBack
}

// TableTexture 返回桌面背景纹理
func (rm *ResourceManager) TableTexture() *ebiten.Image {
	return rm.table
}

// buildFaceImage 生成一张牌面纹理
// 白底灰边，左上角点数+花色缩写，中心花色色块标记
func (rm *ResourceManager) buildFaceImage(id types.CardID) *ebiten.Image {
	const w = float32(config.CardWidth)
	const h = float32(config.CardHeight)

	img := ebiten.NewImage(int(w), int(h))
	vector.DrawFilledRect(img, 0, 0, w, h, color.RGBA{R: 250, G: 250, B: 246, A: 255}, false)
	vector.StrokeRect(img, 1, 1, w-2, h-2, 2, color.RGBA{R: 120, G: 120, B: 120, A: 255}, false)

	suitColor := color.RGBA{R: 30, G: 30, B: 30, A: 255}
	if id.IsRed() {
		suitColor = color.RGBA{R: 190, G: 30, B: 30, A: 255}
	}

	// 中心花色标记
	vector.DrawFilledCircle(img, w/2, h/2, 16, suitColor, true)

	// 左上/右下角标（点数 + 花色首字母）
	label := fmt.Sprintf("%s%c", id.Rank, id.Suit.String()[0])
	ebitenutil.DebugPrintAt(img, label, 6, 4)
	ebitenutil.DebugPrintAt(img, label, int(w)-6-len(label)*6, int(h)-20)

	return img
}

// buildBackImage 生成牌背纹理
func (rm *ResourceManager) buildBackImage(base color.RGBA) *ebiten.Image {
	const w = float32(config.CardWidth)
	const h = float32(config.CardHeight)

	img := ebiten.NewImage(int(w), int(h))
	vector.DrawFilledRect(img, 0, 0, w, h, base, false)
	vector.StrokeRect(img, 1, 1, w-2, h-2, 2, color.RGBA{R: 240, G: 240, B: 240, A: 255}, false)

	// 内框 + 斜线纹理
	inner := color.RGBA{
		R: base.R / 2, G: base.G / 2, B: base.B / 2, A: 255,
	}
	vector.StrokeRect(img, 8, 8, w-16, h-16, 2, inner, false)
	for x := float32(8); x < w-8; x += 12 {
		vector.StrokeLine(img, x, 8, x+(h-16)/2, h-8, 1, inner, true)
	}

	return img
}

// buildTableImage 生成桌面背景纹理（深绿桌布 + 地面分隔线）
func (rm *ResourceManager) buildTableImage() *ebiten.Image {
	img := ebiten.NewImage(config.GameWindowWidth, config.GameWindowHeight)
	img.Fill(color.RGBA{R: 24, G: 84, B: 46, A: 255})

	// 控制面板区域底色
	vector.DrawFilledRect(img, 0, config.PanelTop-10, config.GameWindowWidth,
		config.GameWindowHeight-(config.PanelTop-10), color.RGBA{R: 18, G: 52, B: 32, A: 255}, false)

	// 地面高度参考线
	vector.StrokeLine(img, 0, config.FloorShadowY+18, config.GameWindowWidth,
		config.FloorShadowY+18, 1, color.RGBA{R: 16, G: 60, B: 34, A: 255}, false)

	return img
}
