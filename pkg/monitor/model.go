// Package monitor hosts a popup in a bubbletea program.
//
// The Model owns the single popup.State. It plays the part of the host
// document: a toggle flag stands in for the "opened" attribute, a list of
// content pages stands in for the element's children, and a tick loop stands
// in for the animation subsystem that reports when a fade has finished.
package monitor

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/popup/internal/config"
	"github.com/marcus/popup/internal/popup"
	"github.com/marcus/popup/pkg/monitor/mouse"
)

// Options configures New.
type Options struct {
	Config *config.Config
	Pages  [][]popup.Node
	Logger *slog.Logger
	Now    func() time.Time
}

// Model is the bubbletea model for the popup demo.
type Model struct {
	Width  int
	Height int

	State     popup.State
	Requested bool // declared open state
	Pages     [][]popup.Node
	PageIdx   int

	appearance      popup.Appearance
	frameInterval   time.Duration
	panelWidth      int
	closeOnBackdrop bool

	// Animation clock. animGen increases with every animation started so
	// ticks from an earlier animation can be told apart.
	animGen   int
	animStart time.Time
	elapsed   time.Duration

	mouse *mouse.Handler
	keys  keyMap
	help  help.Model
	log   *slog.Logger
	now   func() time.Time
}

// frameMsg advances the animation clock.
type frameMsg struct {
	gen int
	at  time.Time
}

// animationEndMsg is the animation-finished signal for animation gen.
type animationEndMsg struct {
	gen  int
	name string
}

// New creates a model with the popup closed.
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = &config.Config{}
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	mh := mouse.NewHandler()
	mh.Now = now

	return Model{
		State:           popup.Initial(),
		Pages:           opts.Pages,
		appearance:      cfg.Appearance(),
		frameInterval:   cfg.FrameInterval(),
		panelWidth:      cfg.Width(),
		closeOnBackdrop: cfg.CloseOnBackdrop,
		mouse:           mh,
		keys:            defaultKeyMap(),
		help:            help.New(),
		log:             log,
		now:             now,
	}
}

// OpenRequested implements popup.Source.
func (m Model) OpenRequested() bool {
	return m.Requested
}

// Children implements popup.Source.
func (m Model) Children() []popup.Node {
	if m.PageIdx < 0 || m.PageIdx >= len(m.Pages) {
		return nil
	}
	return m.Pages[m.PageIdx]
}

// Init implements tea.Model. The first observation captures the initial
// content while the popup is still closed.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return observeMsg{} }
}

type observeMsg struct{}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case observeMsg:
		return m.observe()

	case frameMsg:
		return m.advance(msg)

	case animationEndMsg:
		return m.finishAnimation(msg)
	}

	return m, nil
}

// observe feeds a fresh snapshot of the model into the popup.
func (m Model) observe() (Model, tea.Cmd) {
	return m.apply(popup.OnExternalObservation(m.State, popup.Observe(m)))
}

// apply installs next and starts the animation clock when a fade begins.
func (m Model) apply(next popup.State) (Model, tea.Cmd) {
	step := popup.Step{Prev: m.State, Next: next}
	m.State = next
	if !step.Transitioned() {
		return m, nil
	}

	m.log.Debug("popup transition",
		"transition", step.Name(),
		"from", step.Prev.Visibility().String(),
		"to", next.Visibility().String(),
		"nodes", len(next.Content()))

	if !step.Animating() {
		return m, nil
	}
	m.animGen++
	m.animStart = m.now()
	m.elapsed = 0
	return m, m.tick()
}

func (m Model) tick() tea.Cmd {
	gen := m.animGen
	return tea.Tick(m.frameInterval, func(t time.Time) tea.Msg {
		return frameMsg{gen: gen, at: t}
	})
}

// advance moves the animation clock and signals the end of playback.
func (m Model) advance(msg frameMsg) (Model, tea.Cmd) {
	if msg.gen != m.animGen {
		return m, nil
	}

	m.elapsed = msg.at.Sub(m.animStart)
	if m.elapsed < m.appearance.AnimationDuration {
		return m, m.tick()
	}

	name := ""
	if tree := m.appearance.Render(m.State); !tree.Empty() && tree.Overlay.Animation != nil {
		name = tree.Overlay.Animation.Name
	}
	gen := m.animGen
	return m, func() tea.Msg { return animationEndMsg{gen: gen, name: name} }
}

// finishAnimation commits the finished animation, then re-observes so a
// request that was ignored mid-animation takes effect now.
func (m Model) finishAnimation(msg animationEndMsg) (Model, tea.Cmd) {
	if msg.gen != m.animGen {
		m.log.Debug("stray animation end", "gen", msg.gen, "current", m.animGen)
		return m, nil
	}

	m, finishCmd := m.apply(popup.OnAnimationFinished(m.State, popup.AnimationFinished{Name: msg.name}))
	m, observeCmd := m.observe()
	return m, tea.Batch(finishCmd, observeCmd)
}

// setRequested changes the declared open state and observes the change.
func (m Model) setRequested(open bool) (Model, tea.Cmd) {
	m.Requested = open
	return m.observe()
}
