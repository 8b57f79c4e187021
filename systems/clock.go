package systems

import (
	"time"

	"github.com/automoto/catsan64/components"
	cfg "github.com/automoto/catsan64/config"
	"github.com/automoto/catsan64/shared/motion"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi/ecs"
)

// Now is the clock source. Tests replace it.
var Now = time.Now

// UpdateClock measures the elapsed seconds since the previous frame.
// Must run first.
func UpdateClock(ecs *ecs.ECS) {
	clock := GetOrCreateClock(ecs)
	now := Now()
	setDelta(clock, frameDelta(clock.Last, now, cfg.C.TPS, cfg.Frame.MaxDelta))
	clock.Last = now
}

// setDelta starts a new frame with dt. A delta the steppers will refuse is
// counted here, once per frame.
func setDelta(clock *components.ClockData, dt float64) {
	clock.Delta = dt
	clock.Frame++
	if err := motion.CheckDelta(dt); err != nil {
		clock.Rejected++
		log.Warn().Err(err).Uint64("frame", clock.Frame).Msg("frame delta rejected")
	}
}

// frameDelta returns the seconds between last and now. The first frame has no
// previous timestamp and assumes one tick. A backwards clock yields a
// negative delta, which the steppers reject.
func frameDelta(last, now time.Time, tps int, maxDelta float64) float64 {
	if last.IsZero() {
		if tps <= 0 {
			return 0
		}
		return 1 / float64(tps)
	}
	dt := now.Sub(last).Seconds()
	if maxDelta > 0 && dt > maxDelta {
		dt = maxDelta
	}
	return dt
}

// GetOrCreateClock returns the singleton Clock component, creating if needed.
func GetOrCreateClock(ecs *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Clock))
	}
	return components.Clock.Get(entry)
}
