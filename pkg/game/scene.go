package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents an application scene (e.g., loading screen, card table).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Teardowner 是一个可选接口，场景退出时需要完整清理的场景实现它
//
// SceneManager 切换场景时会对旧场景调用 Teardown()，
// 保证定时器、动画、投影等不会在场景退出后继续活动。
// Teardown 必须幂等：重复调用或在空场景上调用都不得出错。
type Teardowner interface {
	Teardown()
}
