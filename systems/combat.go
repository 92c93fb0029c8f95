package systems

import (
	"log"

	"github.com/genjam/platformer/components"
	cfg "github.com/genjam/platformer/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombat applies queued damage events to anything with Health and
// marks entities that run out for removal.
func UpdateCombat(ecs *ecs.ECS) {
	ApplyDamage(ecs.World)

	dt := cfg.DeltaTime()
	components.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		if enemy.HitFlash > 0 {
			enemy.HitFlash -= dt
		}
	})
}

// ApplyDamage consumes every pending DamageEvent in w.
func ApplyDamage(w donburi.World) {
	var hit []*donburi.Entry
	for e := range components.DamageEvent.Iter(w) {
		hit = append(hit, e)
	}

	for _, e := range hit {
		dmg := components.DamageEvent.Get(e)
		donburi.Remove[components.DamageEventData](e, components.DamageEvent)

		if !e.HasComponent(components.Health) || e.HasComponent(components.Death) {
			continue
		}

		hp := components.Health.Get(e)
		dead := hp.TakeDamage(dmg.Amount)
		name := entityName(e)
		log.Printf("%s hit by %s for %d damage (%d/%d)", name, dmg.Source, dmg.Amount, max(hp.Current, 0), hp.Max)

		if e.HasComponent(components.Enemy) {
			components.Enemy.Get(e).HitFlash = cfg.Enemy.HitFlash
		}
		PlaySFX(w, cfg.SoundHit)

		if dead {
			log.Printf("%s defeated", name)
			PlaySFX(w, cfg.SoundDefeat)
			donburi.Add(e, components.Death, &components.DeathData{Reason: "health"})
		}
	}
}

func entityName(e *donburi.Entry) string {
	if e.HasComponent(components.Enemy) {
		if name := components.Enemy.Get(e).Name; name != "" {
			return name
		}
		return "enemy"
	}
	return "entity"
}
