package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-breaker/internal/config"
	"github.com/vovakirdan/neon-breaker/internal/core"
	"github.com/vovakirdan/neon-breaker/internal/games/breakout"
	"github.com/vovakirdan/neon-breaker/internal/storage"
)

// Model is the Bubble Tea model for one game of Neon Breaker.
type Model struct {
	game       *breakout.Game
	screen     *core.Screen
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	runs       *runRecord // Shared by every copy of the model
}

// runRecord saves each run at most once.
type runRecord struct {
	store  *storage.Store
	logger *log.Logger
	gameID string
	saved  bool
}

// save records state unless this run was already recorded or never scored.
func (r *runRecord) save(state core.GameState) {
	if r.saved || state.Score <= 0 {
		return
	}
	r.saved = true
	if r.store == nil {
		return
	}

	run, err := r.store.SaveRun(storage.Run{
		GameID: r.gameID,
		Score:  state.Score,
		Level:  state.Level,
	})
	if err != nil {
		r.logger.Warn("could not save run", "score", state.Score, "err", err)
		return
	}
	r.logger.Debug("run saved", "run", run.RunID, "score", run.Score, "level", run.Level)
}

// NewModel creates a model for game. store and logger may be nil.
func NewModel(game *breakout.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	cfg = cfg.WithDefaults()
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)
	logger = logger.WithPrefix("tui")

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		logger:     logger,
		config:     cfg,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		runs:       &runRecord{store: store, logger: logger, gameID: game.ID()},
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.IsScreenshot(msg) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse turns pointer motion into a paddle sample. The pointer is
// taken at the centre of its cell.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.inputFrame.SetPointer(float64(msg.X) + 0.5)

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.inputFrame.Set(core.ActionConfirm)
	}
	return m, nil
}

// handleResize remaps the canvas onto the new size. The run continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the simulation by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	switch {
	case result.LifeLost:
		m.logger.Debug("life lost", "lives", result.State.Lives, "score", result.State.Score)
	case result.LevelCleared:
		m.logger.Debug("level cleared", "next", result.State.Level, "score", result.State.Score)
	}

	if wasOver && !m.gameState.GameOver {
		// Restarted: the next run gets its own record
		m.runs.saved = false
	}
	if m.gameState.GameOver {
		m.saveRun()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveRun records the current run once. Runs that never scored are skipped.
func (m *Model) saveRun() {
	m.runs.save(m.gameState)
}

// Finish records a scored run that was left unsaved, such as one cut short
// by a dropped connection. Call it after the program has exited.
func (m Model) Finish() {
	m.runs.save(m.game.State())
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir := filepath.Join(config.UserDir(), "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create screenshot dir: %w", err)
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}

// State returns the platform view of the run as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting reports whether the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run plays game in the local terminal until the user quits.
func Run(game *breakout.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // Paddle follows the pointer without a button held
	)

	_, err := p.Run()
	model.Finish()
	return err
}
