package systems

import (
	"math"

	"github.com/automoto/catsan64/components"
	cfg "github.com/automoto/catsan64/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCoins bobs and spins the decorative coins.
func UpdateCoins(e *ecs.ECS) {
	dt := GetOrCreateClock(e).Delta
	if dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return
	}

	components.Coin.Each(e.World, func(entry *donburi.Entry) {
		coin := components.Coin.Get(entry)
		transform := components.Transform.Get(entry)

		offset := float64(0)
		if coin.Bob != nil {
			value, _, _ := coin.Bob.Update(float32(dt))
			offset = float64(value)
		}
		coin.Spin += cfg.Coin.SpinRate * dt

		transform.Position = coin.Base
		transform.Position[1] += offset
		transform.Yaw = coin.Spin
	})
}
