package scenes

import (
	"image/color"
	"log"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/cardtable/pkg/config"
	"github.com/gonewx/cardtable/pkg/game"
)

// 加载进度条布局
const (
	loadingBarWidth  = 320.0
	loadingBarHeight = 18.0

	// loadingMinDuration 进度条的最短展示时长（秒）
	// 纹理生成很快，保留一小段展示时间避免闪屏
	loadingMinDuration = 0.6
)

// LoadingScene 加载场景
// 生成全部卡牌纹理并展示进度条，纹理就绪后切换到桌面场景
type LoadingScene struct {
	resourceManager *game.ResourceManager
	settingsManager *game.SettingsManager
	sceneManager    *game.SceneManager
	tuning          *config.TuningConfig
	rng             *rand.Rand

	progress float64 // 展示进度 (0.0 - 1.0)
	prepared bool    // 纹理是否已生成
}

// NewLoadingScene 创建加载场景
func NewLoadingScene(
	rm *game.ResourceManager,
	sm *game.SettingsManager,
	scm *game.SceneManager,
	tuning *config.TuningConfig,
	rng *rand.Rand,
) *LoadingScene {
	return &LoadingScene{
		resourceManager: rm,
		settingsManager: sm,
		sceneManager:    scm,
		tuning:          tuning,
		rng:             rng,
	}
}

// Update 推进加载进度
// 纹理就绪且进度条走满后切换到桌面场景
func (s *LoadingScene) Update(deltaTime float64) {
	if !s.prepared {
		if err := s.resourceManager.Prepare(); err != nil {
			log.Printf("[LoadingScene] Failed to prepare textures: %v", err)
		}
		s.prepared = true
	}

	s.progress = math.Min(s.progress+deltaTime/loadingMinDuration, 1.0)

	if s.progress >= 1.0 && s.resourceManager.Ready() {
		table := NewTableScene(s.resourceManager, s.settingsManager, s.tuning, s.rng)
		s.sceneManager.SwitchTo(table)
	}
}

// Draw 绘制加载画面（深色底 + 进度条）
func (s *LoadingScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 14, G: 40, B: 24, A: 255})

	barX := float32(config.GameWindowWidth-loadingBarWidth) / 2
	barY := float32(config.GameWindowHeight) / 2

	vector.DrawFilledRect(screen, barX, barY, loadingBarWidth, loadingBarHeight,
		color.RGBA{R: 30, G: 30, B: 30, A: 255}, false)
	vector.DrawFilledRect(screen, barX, barY, float32(loadingBarWidth*s.progress), loadingBarHeight,
		color.RGBA{R: 200, G: 180, B: 90, A: 255}, false)
	vector.StrokeRect(screen, barX, barY, loadingBarWidth, loadingBarHeight, 1,
		color.RGBA{R: 210, G: 210, B: 200, A: 255}, false)

	ebitenutil.DebugPrintAt(screen, "Loading...", int(barX), int(barY)-20)
}
