package tui

import (
	"io"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/replay"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// ReplayEndedMessage is shown when a playback script runs out before the game ends.
const ReplayEndedMessage = "End of replay."

// Options configures a single game session.
type Options struct {
	Runtime    core.RuntimeConfig
	Config     config.InvadersConfig
	Difficulty string
	Player     string
	Store      *storage.Store // Replay store; nil disables recording
	Record     bool
	Game       *invaders.Game // Prebuilt game for playback; built from Runtime when nil
	Script     *replay.Script // Playback inputs; nil reads the keyboard
	Logger     *log.Logger
}

// Result describes how a session ended.
type Result struct {
	Snapshot invaders.Snapshot
	Quit     bool
	ReplayID int64 // Zero when nothing was saved
}

// Model is the Bubble Tea model for one game of invaders.
type Model struct {
	game     *invaders.Game
	screen   *core.Screen
	opts     Options
	keys     KeyMap
	logger   *log.Logger
	recorder *replay.Recorder
	pending  core.UserInput
	ending   bool // End-of-game pause in progress
	quitting bool
	saved    bool
	replayID int64
}

// NewModel creates a model and the game it drives.
func NewModel(opts Options) (Model, error) {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = opts.Config.Driver.TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game := opts.Game
	if game == nil {
		var err error
		game, err = invaders.New(
			opts.Runtime.ScreenW,
			opts.Runtime.ScreenH,
			opts.Config,
			rand.New(rand.NewSource(opts.Runtime.Seed)),
		)
		if err != nil {
			return Model{}, err
		}
	}

	m := Model{
		game:   game,
		screen: core.NewScreen(game.Grid().Width(), game.Grid().Height()),
		opts:   opts,
		keys:   DefaultKeyMap(),
		logger: logger,
	}
	if opts.Record && opts.Store != nil && opts.Script == nil {
		m.recorder = replay.NewRecorder()
	}
	return m, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("game started",
		"player", m.opts.Player,
		"seed", m.opts.Runtime.Seed,
		"width", m.game.Grid().Width(),
		"height", m.game.Grid().Height(),
		"playback", m.opts.Script != nil,
	)
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		return m.handleTick()

	case EndMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey records the latest input. Quit ends the session at once.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	in := m.keys.MapKey(msg)
	if in == core.InputQuit {
		m.logger.Info("game abandoned", "tick", m.game.Tick())
		m.save()
		m.quitting = true
		return m, tea.Quit
	}

	if m.opts.Script == nil && in != core.InputNone {
		m.pending = in
	}
	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.ending || m.quitting {
		return m, nil
	}

	in := m.pending
	m.pending = core.InputNone

	if m.opts.Script != nil {
		next, ok := m.opts.Script.Next()
		if !ok {
			m.logger.Info("replay ended", "tick", m.game.Tick())
			m.ending = true
			return m, endCmd(m.opts.Config.Driver.EndPause)
		}
		in = next
	}

	if m.recorder != nil {
		m.recorder.Record(in)
	}
	m.game.Update(in)

	if !m.game.IsRunning() {
		snap := m.game.Snapshot()
		m.logger.Info("game over",
			"outcome", snap.State,
			"tick", snap.Tick,
			"dead", snap.DeadInvaders,
			"total", snap.TotalInvaders,
		)
		m.save()
		m.ending = true
		return m, endCmd(m.opts.Config.Driver.EndPause)
	}

	return m, tickCmd(m.opts.Runtime.TickRate)
}

// save stores the recording once. Failures are logged and the game continues.
func (m *Model) save() {
	if m.recorder == nil || m.saved {
		return
	}
	m.saved = true

	rec, err := m.recorder.Finish(replay.Header{
		Player:     m.opts.Player,
		Seed:       m.opts.Runtime.Seed,
		Width:      m.game.Grid().Width(),
		Height:     m.game.Grid().Height(),
		Difficulty: m.opts.Difficulty,
		Config:     m.opts.Config,
	}, m.game)
	if err != nil {
		m.logger.Error("cannot build replay", "error", err)
		return
	}

	id, err := m.opts.Store.SaveReplay(rec)
	if err != nil {
		m.logger.Error("cannot save replay", "error", err)
		return
	}
	m.replayID = id
	m.logger.Info("replay saved", "id", id, "outcome", rec.Outcome, "ticks", rec.Ticks, "inputs", m.recorder.Len())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.ending && m.game.IsRunning() {
		_, cy := m.screen.Bounds().Center()
		m.screen.DrawTextCentered(cy, ReplayEndedMessage, core.ColorBrightWhite)
	}
	return RenderScreen(m.screen)
}

// Game returns the driven game.
func (m Model) Game() *invaders.Game {
	return m.game
}

// Result returns how the session ended.
func (m Model) Result() Result {
	return Result{
		Snapshot: m.game.Snapshot(),
		Quit:     m.quitting && !m.ending,
		ReplayID: m.replayID,
	}
}

// Run starts the Bubble Tea program and blocks until the game ends.
func Run(opts Options) (Result, error) {
	model, err := NewModel(opts)
	if err != nil {
		return Result{}, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return Result{}, err
	}
	if fm, ok := final.(Model); ok {
		return fm.Result(), nil
	}
	return model.Result(), nil
}
