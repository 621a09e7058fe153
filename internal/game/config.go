package game

// Timing is split between the host engine's 60 Hz tick and the original
// game's native 70 Hz "tic". Each 70 Hz subsystem carries its own fractional
// accumulator so a slow engine frame runs several tics and a fast one runs
// none, with no tic ever dropped or double-counted.
const (
	engineTPS   = 60
	ticRate     = 70.0
	ticDuration = 1.0 / ticRate
)

// Config holds the simulation tunables. One instance lives on the Sim for the
// whole level; tests override individual fields through harness options.
type Config struct {
	// ClaimEarly makes an enemy claim its destination tile the moment a chase
	// step is accepted rather than on arrival, so two enemies can never pick
	// the same destination within one tick.
	ClaimEarly bool

	// DoorOpenTics is how long a door stays open before auto-closing.
	DoorOpenTics int
	// DoorRetryTics is the grace period re-armed when an actor stands in the
	// doorway at close time.
	DoorRetryTics int

	// ShootRange is the maximum Chebyshev tile distance for the enemy shoot
	// gate.
	ShootRange int
	// ShootCooldownTics is the delay between enemy shots.
	ShootCooldownTics int
	// ShootFlashTics is how long the muzzle-flash animation holds the enemy.
	ShootFlashTics int
	// DamageMin and DamageMax bound the uniform damage roll on a hit.
	DamageMin int
	DamageMax int

	// EnemySpeed is the slide rate in tiles per second.
	EnemySpeed float64
	// SightRange caps perception line-of-sight length, in tiles.
	SightRange float64

	// PlayerSpeed is the walk rate in tiles per second.
	PlayerSpeed float64
	// PlayerRadius is the half-width of the 4-corner collision footprint.
	PlayerRadius float64
}

// DefaultConfig returns the standard tuning.
func DefaultConfig() Config {
	return Config{
		ClaimEarly:        true,
		DoorOpenTics:      300,
		DoorRetryTics:     60,
		ShootRange:        10,
		ShootCooldownTics: 60,
		ShootFlashTics:    20,
		DamageMin:         5,
		DamageMax:         15,
		EnemySpeed:        2.0,
		SightRange:        64.0,
		PlayerSpeed:       4.0,
		PlayerRadius:      0.25,
	}
}

// hitChanceForDistance returns the enemy shot hit probability for a Chebyshev
// tile distance. Four bands, decreasing stepwise with range.
func hitChanceForDistance(dist int) float64 {
	switch {
	case dist <= 2:
		return 0.65
	case dist <= 4:
		return 0.50
	case dist <= 6:
		return 0.35
	default:
		return 0.20
	}
}

// ticAccum converts variable frame time into whole 70 Hz tics, carrying the
// fractional remainder between frames. Each subsystem owns one.
type ticAccum struct {
	leftover float64
}

// steps returns how many whole tics elapsed after adding dt seconds.
func (a *ticAccum) steps(dt float64) int {
	a.leftover += dt
	n := 0
	for a.leftover >= ticDuration {
		a.leftover -= ticDuration
		n++
	}
	return n
}
