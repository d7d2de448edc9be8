package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "warn")
	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "t2048")
}

func TestNewLoggerUnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, "chatty").Info("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	got, err := expandHome("~/scores.db")
	assert.NoError(t, err)
	assert.Equal(t, "/home/tester/scores.db", got)

	got, err = expandHome("/tmp/x.db")
	assert.NoError(t, err)
	assert.Equal(t, "/tmp/x.db", got)
}

func TestSettingsFromEnv(t *testing.T) {
	t.Setenv("T2048_DB", "/tmp/env.db")
	t.Setenv("T2048_LOG_LEVEL", "debug")

	s := loadSettings()
	assert.Equal(t, "/tmp/env.db", s.DBPath)
	assert.Equal(t, "debug", s.LogLevel)
}

func TestStatsRows(t *testing.T) {
	secs := 75.0
	rows := statsRows(t2048.GameStats{GamesPlayed: 4, GamesWon: 1, TotalScore: 400, FastestWin: &secs}, 900)

	byName := map[string]string{}
	for _, r := range rows {
		byName[r[0]] = r[1]
	}
	assert.Equal(t, "900", byName["Best score"])
	assert.Equal(t, "25%", byName["Win rate"])
	assert.Equal(t, "100", byName["Average score"])
	assert.Equal(t, "1:15", byName["Fastest win"])
	assert.True(t, strings.HasPrefix(byName["Games played"], "4"))
}
