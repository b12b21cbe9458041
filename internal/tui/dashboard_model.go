package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/tinyforest/internal/config"
	"github.com/rshade/tinyforest/internal/forest"
	"github.com/rshade/tinyforest/internal/logging"
	"github.com/rshade/tinyforest/internal/methodology"
)

// DashboardState is the interaction mode of the dashboard.
type DashboardState int

const (
	// DashboardStateBrowsing moves between inputs and adjusts sliders.
	DashboardStateBrowsing DashboardState = iota
	// DashboardStateEditing types a value into the focused number field.
	DashboardStateEditing
	// DashboardStateMethodology shows the methodology pane with focus.
	DashboardStateMethodology
	// DashboardStateQuitting indicates the application is exiting.
	DashboardStateQuitting
)

// Default dimensions before the first WindowSizeMsg.
const (
	dashboardDefaultWidth  = 100
	dashboardDefaultHeight = 30

	// methodologyChrome is the number of lines around the viewport.
	methodologyChrome = 4
	minViewportHeight = 5
	numberFieldWidth  = 8
	numberCharLimit   = 10
)

// DashboardOptions configure a new dashboard.
type DashboardOptions struct {
	Inputs            config.InputsConfig
	Assumptions       forest.Assumptions
	ShowEquivalencies bool
}

// DashboardModel is the Bubble Tea model for the interactive estimator.
// Each input is a single value shown both as a number field and a slider;
// every change recomputes the estimate synchronously.
type DashboardModel struct {
	ctx context.Context

	inputs            config.InputsConfig
	initial           config.InputsConfig
	assumptions       forest.Assumptions
	showEquivalencies bool

	focused config.InputKey
	state   DashboardState

	numberInput textinput.Model
	editErr     string

	showMethodology bool
	methodology     viewport.Model

	keys dashboardKeyMap
	help help.Model

	result forest.EstimationResult
	err    error

	width  int
	height int
}

// NewDashboardModel creates a dashboard with the given starting inputs.
func NewDashboardModel(ctx context.Context, opts DashboardOptions) *DashboardModel {
	ti := textinput.New()
	ti.CharLimit = numberCharLimit
	ti.Width = numberFieldWidth
	ti.Prompt = ""

	vp := viewport.New(dashboardDefaultWidth, dashboardDefaultHeight-methodologyChrome)
	vp.SetContent(methodology.Document())

	m := &DashboardModel{
		ctx:               ctx,
		inputs:            opts.Inputs,
		initial:           opts.Inputs,
		assumptions:       opts.Assumptions,
		showEquivalencies: opts.ShowEquivalencies,
		focused:           config.InputDiameter,
		state:             DashboardStateBrowsing,
		numberInput:       ti,
		methodology:       vp,
		keys:              newDashboardKeyMap(),
		help:              help.New(),
		width:             dashboardDefaultWidth,
		height:            dashboardDefaultHeight,
	}
	m.recalculate()
	return m
}

// Init initializes the model.
func (m *DashboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case DashboardStateEditing:
			return m.handleEditKey(msg)
		case DashboardStateMethodology:
			return m.handleMethodologyKey(msg)
		case DashboardStateBrowsing, DashboardStateQuitting:
			return m.handleBrowseKey(msg)
		}
	}

	if m.state == DashboardStateEditing {
		var cmd tea.Cmd
		m.numberInput, cmd = m.numberInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *DashboardModel) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.methodology.Width = width
	m.methodology.Height = max(minViewportHeight, height/2-methodologyChrome)
}

// handleBrowseKey processes keys while moving between inputs.
func (m *DashboardModel) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.state = DashboardStateQuitting
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.focused > config.InputDiameter {
			m.focused--
		}

	case key.Matches(msg, m.keys.Down):
		if m.focused < config.InputEmployees {
			m.focused++
		}

	case key.Matches(msg, m.keys.Decrease):
		m.step(-1)

	case key.Matches(msg, m.keys.Increase):
		m.step(1)

	case key.Matches(msg, m.keys.Edit):
		return m, m.startEdit()

	case key.Matches(msg, m.keys.Methodology):
		m.showMethodology = true
		m.state = DashboardStateMethodology

	case key.Matches(msg, m.keys.Reset):
		m.inputs = m.initial
		m.recalculate()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// handleEditKey processes keys while the number field has focus.
func (m *DashboardModel) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		m.state = DashboardStateQuitting
		return m, tea.Quit

	case key.Matches(msg, m.keys.Edit):
		m.commitEdit()
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		m.stopEdit()
		return m, nil
	}

	var cmd tea.Cmd
	m.numberInput, cmd = m.numberInput.Update(msg)
	return m, cmd
}

// handleMethodologyKey scrolls or closes the methodology pane.
func (m *DashboardModel) handleMethodologyKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.state = DashboardStateQuitting
		return m, tea.Quit

	case key.Matches(msg, m.keys.Methodology), key.Matches(msg, m.keys.Cancel):
		m.showMethodology = false
		m.state = DashboardStateBrowsing
		return m, nil
	}

	var cmd tea.Cmd
	m.methodology, cmd = m.methodology.Update(msg)
	return m, cmd
}

// step moves the focused slider by n steps.
func (m *DashboardModel) step(n int) {
	b := config.BoundFor(m.focused)
	m.setValue(b.Increment(m.inputs.Value(m.focused), n))
}

func (m *DashboardModel) setValue(v float64) {
	m.inputs = m.inputs.With(m.focused, v)
	m.recalculate()
}

func (m *DashboardModel) startEdit() tea.Cmd {
	b := config.BoundFor(m.focused)
	m.state = DashboardStateEditing
	m.editErr = ""
	m.numberInput.SetValue(b.Format(m.inputs.Value(m.focused)))
	m.numberInput.CursorEnd()
	return m.numberInput.Focus()
}

// commitEdit parses the typed value and applies it clamped to the bounds.
// Text that is not a number keeps the field open with an error.
func (m *DashboardModel) commitEdit() {
	b := config.BoundFor(m.focused)
	v, err := b.Parse(m.numberInput.Value())
	if err != nil {
		m.editErr = "Enter a number between " + b.Format(b.Min) + " and " + b.Format(b.Max) + "."
		return
	}
	if !b.Contains(v) {
		logging.FromContext(m.ctx).Debug().Ctx(m.ctx).
			Str("input", b.Name).
			Float64("typed", v).
			Msg("value outside bounds, clamping")
	}
	m.setValue(v)
	m.stopEdit()
}

func (m *DashboardModel) stopEdit() {
	m.numberInput.Blur()
	m.numberInput.SetValue("")
	m.editErr = ""
	m.state = DashboardStateBrowsing
}

// recalculate refreshes the estimate from the current inputs.
func (m *DashboardModel) recalculate() {
	m.result, m.err = forest.Estimate(m.inputs.ToInputs(), m.assumptions)

	log := logging.FromContext(m.ctx)
	if m.err != nil && !errors.Is(m.err, forest.ErrInvalidAge) {
		log.Error().Ctx(m.ctx).Err(m.err).Msg("estimate failed")
		return
	}
	log.Debug().Ctx(m.ctx).
		Str("component", "tui").
		Interface("inputs", m.inputs).
		Float64("captured_kg", m.result.CapturedKgPerYear).
		Float64("emitted_kg", m.result.EmissionsKgPerYear).
		Msg("estimate recalculated")
}

// Inputs returns the current input values.
func (m *DashboardModel) Inputs() config.InputsConfig {
	return m.inputs
}

// Result returns the latest estimate and its error, if any.
func (m *DashboardModel) Result() (forest.EstimationResult, error) {
	return m.result, m.err
}

// Focused returns the input that currently has focus.
func (m *DashboardModel) Focused() config.InputKey {
	return m.focused
}

// State returns the current interaction mode.
func (m *DashboardModel) State() DashboardState {
	return m.state
}
