package systems

import (
	"math"

	"github.com/genjam/platformer/components"
	"github.com/genjam/platformer/config"
	"github.com/genjam/platformer/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the camera toward the player, kept inside the level.
func UpdateCamera(e *ecs.ECS) {
	followPlayer(e, config.Camera.FollowSmoothing)
}

// SnapCamera jumps straight to the clamped target, used on spawn.
func SnapCamera(e *ecs.ECS) {
	followPlayer(e, 1)
}

func followPlayer(e *ecs.ECS, smoothing float64) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerObject := components.Object.Get(playerEntry)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}

	targetX, targetY := playerObject.Center()
	targetX, targetY = ClampCamera(targetX, targetY, float64(levelData.CurrentLevel.Width), float64(levelData.CurrentLevel.Height))

	camera.Position.X += (targetX - camera.Position.X) * smoothing
	camera.Position.Y += (targetY - camera.Position.Y) * smoothing
}

// ClampCamera keeps a camera centre where the level fills the whole screen.
// Levels smaller than the screen are centred.
func ClampCamera(x, y, levelWidth, levelHeight float64) (float64, float64) {
	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)

	if levelWidth <= screenWidth {
		x = levelWidth / 2
	} else {
		x = math.Max(screenWidth/2, math.Min(levelWidth-screenWidth/2, x))
	}
	if levelHeight <= screenHeight {
		y = levelHeight / 2
	} else {
		y = math.Max(screenHeight/2, math.Min(levelHeight-screenHeight/2, y))
	}
	return x, y
}
