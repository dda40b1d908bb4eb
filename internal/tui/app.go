package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hashicorp/go-hclog"
	"github.com/pablasso/pbar/internal/anim"
	"github.com/pablasso/pbar/internal/config"
	"github.com/pablasso/pbar/internal/demo"
	"github.com/pablasso/pbar/internal/layout"
	"github.com/pablasso/pbar/internal/paint"
	"github.com/pablasso/pbar/internal/tui/components"
	"github.com/pablasso/pbar/internal/tui/msgs"
	"github.com/pablasso/pbar/internal/tui/styles"
)

// Minimum terminal dimensions for the gallery.
const (
	MinTerminalWidth  = 40
	MinTerminalHeight = 12
)

const (
	horizontalPadding = 2
	eventLogHeight    = 4
	progressStep      = 0.1
)

var kinds = []anim.Kind{anim.KindTiming, anim.KindSpring, anim.KindDecay}

type entry struct {
	name string
	demo bool
	bar  *components.ProgressBar
}

// Model is the gallery: a column of bars, an event log and a status line.
type Model struct {
	entries []entry
	cursor  int
	width   int
	height  int

	demoMode demo.Mode
	demoOn   bool

	events   *components.EventLog
	status   components.StatusBar
	painter  *paint.Painter
	showHelp bool
	log      hclog.Logger
	err      error
}

// Run starts the TUI application.
func Run(opts Options) error {
	m, err := newModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if opts.Demo != nil {
		cfg, err := demo.NewConfig(opts.Demo.Preset, opts.Demo.Scenario)
		if err != nil {
			return err
		}
		playback, err := demo.NewPlayback(cfg)
		if err != nil {
			return err
		}
		m.log.Info("demo started", "scenario", cfg.Scenario, "preset", cfg.Preset, "steps", len(playback.Steps))
		go playback.Run(ctx, p)
	}

	_, err = p.Run()
	return err
}

func newModel(opts Options) (Model, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultGallery()
	}
	log := opts.Logger
	if log == nil {
		log = hclog.NewNullLogger()
	}

	painter, err := paint.New(paint.Options{CellHeight: cfg.CellHeight, Backdrop: cfg.Backdrop})
	if err != nil {
		return Model{}, err
	}

	events := components.NewEventLog(0, eventLogHeight, 0)
	m := Model{
		events:  &events,
		status:  components.NewStatusBar(),
		painter: painter,
		log:     log,
	}
	if opts.Demo != nil {
		m.demoOn = true
		m.demoMode = opts.Demo.Mode
		if m.demoMode == "" {
			m.demoMode = demo.ModeFlagged
		}
	}

	for _, bc := range cfg.Bars {
		barCfg, err := bc.ToBar()
		if err != nil {
			return Model{}, err
		}
		name := bc.Name
		barCfg.OnLayout = func(ms layout.Measurement) {
			m.events.Add(fmt.Sprintf("%s: layout %.0fx%.0f", name, ms.Width, ms.Height))
		}
		pb, err := components.NewProgressBar(barCfg,
			components.WithLogger(log.Named(strings.ToLower(name))),
			components.WithPainter(painter),
			components.WithFPS(cfg.FPS),
		)
		if err != nil {
			return Model{}, fmt.Errorf("bar %q: %w", name, err)
		}
		m.entries = append(m.entries, entry{name: name, demo: bc.Demo, bar: pb})
	}
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.entries))
	for _, e := range m.entries {
		cmds = append(cmds, e.bar.Init())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.events.Update(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.events.SetSize(max(0, msg.Width-2*horizontalPadding-4), eventLogHeight)
		for _, e := range m.entries {
			e.bar.Measure(max(0, msg.Width-2*horizontalPadding), msg.Height)
		}
		return m, nil

	case components.FrameMsg:
		for _, e := range m.entries {
			if e.bar.ID == msg.ID {
				return m, e.bar.Update(msg)
			}
		}
		return m, nil

	case msgs.ProgressMsg:
		return m, m.forDemo(func(pb *components.ProgressBar) tea.Cmd {
			return pb.SetProgress(msg.Progress)
		})

	case msgs.LoopMsg:
		m.events.Add(fmt.Sprintf("demo: loop %s", onOff(msg.On)))
		return m, m.forDemo(func(pb *components.ProgressBar) tea.Cmd {
			return pb.SetLoop(msg.On)
		})

	case msgs.DemoDoneMsg:
		m.events.Add(fmt.Sprintf("demo: %s finished in %s", msg.Scenario, msg.Duration.Round(time.Millisecond)))
		m.log.Info("demo finished", "scenario", msg.Scenario, "duration", msg.Duration)
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.closeAll()
		return m, tea.Quit
	case "?":
		m.showHelp = !m.showHelp
		return m, nil
	case "pgup", "pgdown":
		return m, m.events.Update(msg)
	}

	if len(m.entries) == 0 {
		return m, nil
	}
	sel := m.entries[m.cursor]

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case "right", "l", "+":
		return m, sel.bar.IncrProgress(progressStep)
	case "left", "h", "-":
		return m, sel.bar.IncrProgress(-progressStep)
	case "0":
		return m, sel.bar.SetProgress(0)
	case "1":
		return m, sel.bar.SetProgress(1)
	case " ", "space":
		on := !sel.bar.Driver().Looping()
		m.events.Add(fmt.Sprintf("%s: loop %s", sel.name, onOff(on)))
		return m, sel.bar.SetLoop(on)
	case "a":
		on := !sel.bar.Driver().Config().Animated
		sel.bar.SetAnimated(on)
		m.events.Add(fmt.Sprintf("%s: animated %s", sel.name, onOff(on)))
	case "t":
		cfg := sel.bar.Driver().Config()
		cfg.AnimationType = nextKind(cfg.AnimationType)
		cmd, err := sel.bar.SetConfig(cfg)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.events.Add(fmt.Sprintf("%s: animation %s", sel.name, cfg.AnimationType))
		return m, cmd
	}
	return m, nil
}

// forDemo applies fn to the bars the demo drives.
func (m Model) forDemo(fn func(*components.ProgressBar) tea.Cmd) tea.Cmd {
	if !m.demoOn {
		return nil
	}
	var cmds []tea.Cmd
	for _, e := range m.entries {
		if m.demoMode == demo.ModeAll || e.demo {
			cmds = append(cmds, fn(e.bar))
		}
	}
	return tea.Batch(cmds...)
}

func (m Model) closeAll() {
	for _, e := range m.entries {
		e.bar.Close()
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 {
		return ""
	}
	if m.width < MinTerminalWidth || m.height < MinTerminalHeight {
		return m.renderTerminalTooSmall()
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Progress bar gallery"))
	b.WriteString("\n")

	for i, e := range m.entries {
		caption := styles.LabelStyle.Render("  " + e.name)
		if i == m.cursor {
			caption = styles.SelectedStyle.Render("▸ " + e.name)
		}
		b.WriteString(caption)
		b.WriteString("\n")
		if view := e.bar.View(); view != "" {
			b.WriteString(view)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(styles.BoxStyle.Render(m.events.View()))
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(styles.ErrorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(m.status.Render(m.width, m.statusItems()))
	if m.showHelp {
		b.WriteString("\n")
		b.WriteString(styles.SubtleStyle.Render(helpText))
	}

	return lipgloss.NewStyle().PaddingLeft(horizontalPadding).Render(b.String())
}

const helpText = "↑/↓ select • ←/→ ±10% • 0/1 empty/full • space loop • a animated • t tween • pgup/pgdn log • q quit"

func (m Model) statusItems() []string {
	if len(m.entries) == 0 {
		return []string{"no bars", "? help"}
	}
	e := m.entries[m.cursor]
	items := m.status.Items(e.name, e.bar.Driver())
	if m.demoOn {
		items = append(items, "demo "+string(m.demoMode))
	}
	return append(items, "? help")
}

func (m Model) renderTerminalTooSmall() string {
	return styles.ErrorStyle.Render("Terminal too small") + "\n" +
		fmt.Sprintf("Minimum: %dx%d\n", MinTerminalWidth, MinTerminalHeight) +
		fmt.Sprintf("Current: %dx%d", m.width, m.height)
}

func nextKind(k anim.Kind) anim.Kind {
	for i, kind := range kinds {
		if kind == k {
			return kinds[(i+1)%len(kinds)]
		}
	}
	return kinds[0]
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
