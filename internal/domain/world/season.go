package world

import "time"

type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
	SeasonWinter Season = "winter"
)

var seasonOrder = [4]Season{SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter}

type SeasonClockConfig struct {
	StartAt        time.Time
	SeasonDuration time.Duration
}

type SeasonClock struct {
	cfg SeasonClockConfig
}

func NewSeasonClock(cfg SeasonClockConfig) SeasonClock {
	if cfg.SeasonDuration <= 0 {
		cfg.SeasonDuration = 24 * time.Hour
	}
	if cfg.StartAt.IsZero() {
		cfg.StartAt = time.Unix(0, 0)
	}
	return SeasonClock{cfg: cfg}
}

func DefaultSeasonClock() SeasonClock {
	return NewSeasonClock(SeasonClockConfig{})
}

// SeasonAt returns the season active at now and the time remaining in it.
func (c SeasonClock) SeasonAt(now time.Time) (Season, time.Duration) {
	if c.cfg.SeasonDuration <= 0 {
		return SeasonSpring, 0
	}
	elapsed := now.Sub(c.cfg.StartAt)
	if elapsed < 0 {
		elapsed = 0
	}
	cycle := 4 * c.cfg.SeasonDuration
	offset := elapsed % cycle
	idx := int(offset / c.cfg.SeasonDuration)
	remaining := c.cfg.SeasonDuration - offset%c.cfg.SeasonDuration
	return seasonOrder[idx], remaining
}
