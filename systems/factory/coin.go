package factory

import (
	"github.com/automoto/catsan64/archetypes"
	"github.com/automoto/catsan64/components"
	cfg "github.com/automoto/catsan64/config"
	"github.com/automoto/catsan64/shared/leveldata"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCoin spawns a decorative coin. phase staggers the bob so coins do
// not move in lockstep.
func CreateCoin(ecs *ecs.ECS, c leveldata.Coin, phase float32) *donburi.Entry {
	coin := archetypes.Coin.Spawn(ecs)

	// The coin bobs using a looping *gween.Sequence, up and back down.
	height := float32(cfg.Coin.BobHeight)
	duration := cfg.Coin.BobDuration
	tw := gween.NewSequence(
		gween.New(0, height, duration, ease.InOutSine),
		gween.New(height, 0, duration, ease.InOutSine),
	)
	tw.SetLoop(-1)
	if phase > 0 {
		tw.Update(phase)
	}

	components.Coin.SetValue(coin, components.CoinData{
		Base: c.Position,
		Bob:  tw,
	})
	components.Transform.SetValue(coin, components.TransformData{Position: c.Position})

	return coin
}
