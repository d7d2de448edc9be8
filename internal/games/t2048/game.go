package t2048

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Callbacks are optional hooks fired after an event has been applied.
// Any of them may be nil.
type Callbacks struct {
	OnMove        func()
	OnMerge       func(maxMergeValue int)
	OnWin         func()
	OnGameOver    func()
	OnPowerUpUsed func(id PowerUpID)
}

// Game is one player's 2048 session plus the statistics that outlive it.
//
// Game is not safe for concurrent use. Every event (Move, UsePowerUp,
// KeepPlaying, NewGame, Tick) is expected to arrive from a single event loop;
// timers are modelled as scheduled tasks that only fire from Tick or at the
// start of another event.
type Game struct {
	rules  Rules
	clock  Clock
	rng    *rand.Rand
	ids    *IDGenerator
	sched  *Scheduler
	store  bestEffortStore
	logger *log.Logger
	events Callbacks

	state    GameState
	history  *History
	powerUps PowerUps
	stats    GameStats

	finalized   bool      // Stats already aggregated for this session
	lockedUntil time.Time // Settle lock after an accepted move
	comboTask   TaskID    // Pending combo decay, 0 when none
}

// Option configures a Game.
type Option func(*gameOptions)

type gameOptions struct {
	rules  Rules
	clock  Clock
	rng    *rand.Rand
	store  Store
	logger *log.Logger
	events Callbacks
}

// WithRules overrides the default rules.
func WithRules(r Rules) Option {
	return func(o *gameOptions) { o.rules = r }
}

// WithClock sets the time source.
func WithClock(c Clock) Option {
	return func(o *gameOptions) { o.clock = c }
}

// WithSeed makes tile spawns and power-up randomness reproducible.
// A zero seed uses the current time.
func WithSeed(seed int64) Option {
	return func(o *gameOptions) {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// WithStore sets the persistence backend. Without one nothing is saved.
func WithStore(s Store) Option {
	return func(o *gameOptions) { o.store = s }
}

// WithLogger sets the logger used for persistence warnings and session events.
func WithLogger(l *log.Logger) Option {
	return func(o *gameOptions) { o.logger = l }
}

// WithCallbacks registers feedback hooks.
func WithCallbacks(cb Callbacks) Option {
	return func(o *gameOptions) { o.events = cb }
}

// New creates a game and starts its first session in mode.
func New(mode Mode, opts ...Option) *Game {
	o := gameOptions{
		rules: DefaultRules(),
		clock: SystemClock{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}

	g := &Game{
		rules:  o.rules.normalized(),
		clock:  o.clock,
		rng:    o.rng,
		sched:  NewScheduler(),
		store:  bestEffortStore{store: o.store, logger: o.logger},
		logger: o.logger,
		events: o.events,
	}
	g.stats = g.store.LoadStats()
	g.start(validMode(mode, ModeClassic))
	return g
}

func validMode(m, fallback Mode) Mode {
	if _, ok := ParseMode(string(m)); ok {
		return m
	}
	return fallback
}

// start replaces the live session with a fresh one.
func (g *Game) start(mode Mode) {
	g.sched.CancelAll()
	g.comboTask = 0
	g.finalized = false
	g.lockedUntil = time.Time{}
	g.ids = &IDGenerator{}
	g.history = NewHistory(g.rules.HistoryDepth)
	g.powerUps = NewPowerUps(g.rules.PowerUps)
	g.state = newSessionState(mode, uuid.NewString(), g.store.LoadBestScore(), g.clock.Now(), g.deps())

	g.logger.Debug("session started", "session", g.state.SessionID, "mode", mode)
}

func (g *Game) deps() deps {
	return deps{rng: g.rng, ids: g.ids, rules: g.rules}
}

func (g *Game) turn() turn {
	return turn{state: g.state, history: g.history, powerUps: g.powerUps}
}

func (g *Game) commit(t turn) {
	g.state = t.state
	g.history = t.history
	g.powerUps = t.powerUps
}

// NewGame finalizes the current session if it saw any moves and starts a new
// one. An empty or unknown mode keeps the current mode.
func (g *Game) NewGame(mode Mode) {
	if g.state.MoveCount > 0 && !g.finalized {
		g.finalize(0)
	}
	g.start(validMode(mode, g.state.Mode))
}

// Move applies a player move. It returns true when the board changed.
// Rejected input (settle lock, terminal state, invalid direction, a move that
// shifts nothing) leaves the session untouched.
func (g *Game) Move(dir Direction) bool {
	now := g.clock.Now()
	g.advance(now)
	if now.Before(g.lockedUntil) {
		return false
	}

	next, out := applyMove(g.turn(), dir, g.deps())
	if !out.Moved {
		if out.NewlyOver {
			g.commit(next)
			g.enterGameOver(0)
		}
		return false
	}

	prevBest := g.state.BestScore
	g.commit(next)
	g.lockedUntil = now.Add(g.rules.SettleLock)

	if out.MergeCount > 0 {
		g.scheduleComboDecay(now)
		if g.events.OnMerge != nil {
			g.events.OnMerge(out.MaxMergeValue)
		}
	}
	if g.state.BestScore > prevBest {
		g.store.SaveBestScore(g.state.BestScore)
	}
	if out.NewlyWon {
		g.logger.Info("win tile reached", "session", g.state.SessionID, "moves", g.state.MoveCount)
		if g.events.OnWin != nil {
			g.events.OnWin()
		}
	}
	if out.NewlyOver {
		g.enterGameOver(out.MergeCount)
	}
	if g.events.OnMove != nil {
		g.events.OnMove()
	}
	return true
}

// MoveNamed is Move for symbolic input ("up", "down", "left", "right").
// Unknown names are ignored.
func (g *Game) MoveNamed(name string) bool {
	dir, ok := ParseDirection(name)
	if !ok {
		return false
	}
	return g.Move(dir)
}

// UsePowerUp triggers the named power-up and reports whether it took effect.
// Unknown ids, exhausted or cooling power-ups and impossible effects
// (undo with no history, an empty board) change nothing.
func (g *Game) UsePowerUp(id string) bool {
	pid, ok := ParsePowerUpID(id)
	if !ok {
		return false
	}
	g.advance(g.clock.Now())

	next, out := applyPowerUp(g.turn(), pid, g.deps())
	if !out.Success {
		return false
	}
	g.commit(next)

	g.logger.Debug("power-up used", "session", g.state.SessionID, "power_up", pid, "removed", out.Removed)
	if g.events.OnPowerUpUsed != nil {
		g.events.OnPowerUpUsed(pid)
	}
	return true
}

// KeepPlaying dismisses a win so the session can continue.
func (g *Game) KeepPlaying() bool {
	next, ok := applyKeepPlaying(g.state)
	if ok {
		g.state = next
	}
	return ok
}

// Tick runs due timers and advances the time attack countdown. Ticks carrying
// another session's id are stale and ignored; Tick reports whether it ran.
func (g *Game) Tick(sessionID string) bool {
	if sessionID != g.state.SessionID {
		return false
	}
	g.advance(g.clock.Now())
	return true
}

// advance brings timers and the countdown up to now.
func (g *Game) advance(now time.Time) {
	g.sched.RunDue(now)

	next, expired := applyTick(g.state, now, g.rules)
	g.state = next
	if expired {
		g.logger.Debug("time is up", "session", g.state.SessionID)
		g.enterGameOver(0)
	}
}

// scheduleComboDecay replaces any pending combo reset with one a full window
// from now.
func (g *Game) scheduleComboDecay(now time.Time) {
	if g.comboTask != 0 {
		g.sched.Cancel(g.comboTask)
	}
	session := g.state.SessionID
	g.comboTask = g.sched.Schedule(now.Add(g.rules.ComboWindow), func() {
		g.comboTask = 0
		if g.state.SessionID != session {
			return
		}
		g.state = applyComboDecay(g.state)
	})
}

// enterGameOver handles the first arrival in the game over state.
func (g *Game) enterGameOver(mergeCount int) {
	if g.finalized {
		return
	}
	g.finalize(mergeCount)
	if g.events.OnGameOver != nil {
		g.events.OnGameOver()
	}
}

// finalize folds the session into the statistics. It runs once per session.
func (g *Game) finalize(mergeCount int) {
	if g.finalized {
		return
	}
	g.finalized = true

	elapsed := g.clock.Now().Sub(g.state.StartTime)
	g.stats = AggregateStats(g.stats, g.state, mergeCount, elapsed)
	g.store.SaveStats(g.stats)
	g.store.RecordScore(ScoreRecord{
		SessionID:   g.state.SessionID,
		Mode:        g.state.Mode,
		Score:       g.state.Score,
		HighestTile: HighestTile(g.state.Grid),
		Moves:       g.state.MoveCount,
		Won:         g.state.Won,
		Duration:    elapsed,
	})

	g.logger.Info("session finished",
		"session", g.state.SessionID,
		"mode", g.state.Mode,
		"score", g.state.Score,
		"moves", g.state.MoveCount,
		"won", g.state.Won,
	)
}

// SessionID returns the live session's id.
func (g *Game) SessionID() string {
	return g.state.SessionID
}

// Mode returns the live session's mode.
func (g *Game) Mode() Mode {
	return g.state.Mode
}

// Rules returns the rules in effect.
func (g *Game) Rules() Rules {
	return g.rules
}

// State returns a deep copy of the current game state.
func (g *Game) State() GameState {
	return g.state.Clone()
}

// PowerUps returns a copy of the power-up set.
func (g *Game) PowerUps() PowerUps {
	return g.powerUps.Clone()
}

// Stats returns a copy of the cumulative statistics.
func (g *Game) Stats() GameStats {
	return g.stats.Clone()
}

// HistoryLen returns how many undo snapshots are stored.
func (g *Game) HistoryLen() int {
	return g.history.Len()
}

// Locked reports whether the settle lock is still rejecting moves.
func (g *Game) Locked() bool {
	return g.clock.Now().Before(g.lockedUntil)
}
