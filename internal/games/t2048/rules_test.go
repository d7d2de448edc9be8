package t2048

import (
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/tui-2048/internal/config"
)

func TestRulesFromDefaultConfig(t *testing.T) {
	got := RulesFromConfig(config.DefaultT2048Config())
	want := DefaultRules()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RulesFromConfig(defaults) = %+v, want %+v", got, want)
	}
}

func TestRulesFromConfigFallbacks(t *testing.T) {
	cfg := config.DefaultT2048Config()
	cfg.Board.Size = 0
	cfg.Board.WinTile = 1000
	cfg.Board.Spawn4Chance = 2
	cfg.Timing.ComboWindowMS = 0
	cfg.History.Depth = -1
	cfg.PowerUps["bomb"] = config.T2048PowerUp{Uses: -1, Cooldown: 1}
	cfg.PowerUps["teleport"] = config.T2048PowerUp{Uses: 9}

	r := RulesFromConfig(cfg)
	if r.Size != DefaultBoardSize || r.WinTile != WinValue || r.Spawn4Chance != DefaultSpawn4Chance {
		t.Errorf("board fallbacks not applied: %+v", r)
	}
	if r.ComboWindow != DefaultComboWindow || r.HistoryDepth != DefaultHistoryDepth {
		t.Errorf("timing fallbacks not applied: %+v", r)
	}
	if r.PowerUps[PowerBomb] != DefaultPowerUpBudgets()[PowerBomb] {
		t.Errorf("bomb = %+v, want default", r.PowerUps[PowerBomb])
	}
	if _, ok := r.PowerUps["teleport"]; ok {
		t.Error("unknown power-ups should be ignored")
	}
}

func TestRulesFromConfigCustom(t *testing.T) {
	cfg := config.DefaultT2048Config()
	cfg.Board.Size = 5
	cfg.Board.WinTile = 512
	cfg.Timing.TimeLimitSec = 60
	cfg.Timing.SettleLockMS = 0

	r := RulesFromConfig(cfg)
	if r.Size != 5 || r.WinTile != 512 {
		t.Errorf("size/win = %d/%d", r.Size, r.WinTile)
	}
	if r.TimeLimit != 60*time.Second {
		t.Errorf("TimeLimit = %v, want 60s", r.TimeLimit)
	}
	if r.SettleLock != 0 {
		t.Errorf("a zero settle lock is allowed, got %v", r.SettleLock)
	}
}
