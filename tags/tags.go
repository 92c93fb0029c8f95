package tags

import "github.com/yohamta/donburi"

var (
	Player      = donburi.NewTag().SetName("Player")
	Ground      = donburi.NewTag().SetName("Ground")
	Enemy       = donburi.NewTag().SetName("Enemy")
	Collectible = donburi.NewTag().SetName("Collectible")
	Background  = donburi.NewTag().SetName("Background")
)

// Resolv tags double as collision layers for proximity queries.
const (
	ResolvSolid       = "solid"
	ResolvGround      = "ground"
	ResolvPlayer      = "Player"
	ResolvEnemy       = "Enemy"
	ResolvCollectible = "collectible"
	ResolvProbe       = "probe"
)
