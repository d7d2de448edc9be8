package t2048

import (
	"time"

	"github.com/vovakirdan/tui-2048/internal/config"
)

// Default timings.
const (
	DefaultSettleLock    = 150 * time.Millisecond
	DefaultCountdownTick = 100 * time.Millisecond
	DefaultSpawn4Chance  = 0.10
)

// Rules are the tunable parameters of a session.
type Rules struct {
	Size         int
	WinTile      int
	Spawn4Chance float64

	SettleLock    time.Duration // Minimum gap between accepted moves
	ComboWindow   time.Duration // Combo resets after this long without a merge
	TimeLimit     time.Duration // Time attack budget
	CountdownTick time.Duration // How often the front end should call Tick

	HistoryDepth int
	PowerUps     map[PowerUpID]PowerUpBudget
}

// DefaultRules returns the standard 4x4 rules.
func DefaultRules() Rules {
	return Rules{
		Size:          DefaultBoardSize,
		WinTile:       WinValue,
		Spawn4Chance:  DefaultSpawn4Chance,
		SettleLock:    DefaultSettleLock,
		ComboWindow:   DefaultComboWindow,
		TimeLimit:     DefaultTimeLimit,
		CountdownTick: DefaultCountdownTick,
		HistoryDepth:  DefaultHistoryDepth,
		PowerUps:      DefaultPowerUpBudgets(),
	}
}

// RulesFromConfig converts a loaded configuration into session rules.
// Unset or invalid values fall back to the defaults.
func RulesFromConfig(cfg config.T2048Config) Rules {
	r := Rules{
		Size:          cfg.Board.Size,
		WinTile:       cfg.Board.WinTile,
		Spawn4Chance:  cfg.Board.Spawn4Chance,
		SettleLock:    time.Duration(cfg.Timing.SettleLockMS) * time.Millisecond,
		ComboWindow:   time.Duration(cfg.Timing.ComboWindowMS) * time.Millisecond,
		TimeLimit:     time.Duration(cfg.Timing.TimeLimitSec) * time.Second,
		CountdownTick: time.Duration(cfg.Timing.CountdownTickMS) * time.Millisecond,
		HistoryDepth:  cfg.History.Depth,
		PowerUps:      make(map[PowerUpID]PowerUpBudget, len(cfg.PowerUps)),
	}
	for name, p := range cfg.PowerUps {
		if id, ok := ParsePowerUpID(name); ok {
			r.PowerUps[id] = PowerUpBudget{Uses: p.Uses, Cooldown: p.Cooldown}
		}
	}
	return r.normalized()
}

// normalized replaces out-of-range values with defaults.
func (r Rules) normalized() Rules {
	d := DefaultRules()
	if r.Size < 2 {
		r.Size = d.Size
	}
	if r.WinTile < 4 || r.WinTile&(r.WinTile-1) != 0 {
		r.WinTile = d.WinTile
	}
	if r.Spawn4Chance < 0 || r.Spawn4Chance > 1 {
		r.Spawn4Chance = d.Spawn4Chance
	}
	if r.SettleLock < 0 {
		r.SettleLock = d.SettleLock
	}
	if r.ComboWindow <= 0 {
		r.ComboWindow = d.ComboWindow
	}
	if r.TimeLimit <= 0 {
		r.TimeLimit = d.TimeLimit
	}
	if r.CountdownTick <= 0 {
		r.CountdownTick = d.CountdownTick
	}
	if r.HistoryDepth <= 0 {
		r.HistoryDepth = d.HistoryDepth
	}
	budgets := make(map[PowerUpID]PowerUpBudget, len(d.PowerUps))
	for id, budget := range r.PowerUps {
		if budget.Uses < 0 || budget.Cooldown < 0 {
			budget = d.PowerUps[id]
		}
		budgets[id] = budget
	}
	r.PowerUps = budgets
	return r
}
