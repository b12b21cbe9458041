package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/tinyforest/internal/config"
	"github.com/rshade/tinyforest/internal/forest"
	"github.com/rshade/tinyforest/internal/methodology"
)

func newTestDashboard(t *testing.T) *DashboardModel {
	t.Helper()
	return NewDashboardModel(context.Background(), DashboardOptions{
		Inputs:            config.Default().Inputs,
		Assumptions:       forest.DefaultAssumptions(),
		ShowEquivalencies: true,
	})
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func press(m *DashboardModel, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func TestNewDashboardModel(t *testing.T) {
	m := newTestDashboard(t)

	assert.Equal(t, DashboardStateBrowsing, m.State())
	assert.Equal(t, config.InputDiameter, m.Focused())
	assert.Nil(t, m.Init())

	result, err := m.Result()
	require.NoError(t, err)
	assert.InDelta(t, 794690.064, result.CapturedKgPerYear, 1)
	assert.InDelta(t, 470000.0, result.EmissionsKgPerYear, 1e-9)
}

func TestDashboardModel_Navigation(t *testing.T) {
	m := newTestDashboard(t)

	press(m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, config.InputDiameter, m.Focused(), "focus stops at the first input")

	press(m, tea.KeyMsg{Type: tea.KeyDown}, keyRune('j'))
	assert.Equal(t, config.InputAge, m.Focused())

	press(m, keyRune('j'), keyRune('j'), keyRune('j'))
	assert.Equal(t, config.InputEmployees, m.Focused(), "focus stops at the last input")

	press(m, keyRune('k'))
	assert.Equal(t, config.InputForests, m.Focused())
}

func TestDashboardModel_SliderSteps(t *testing.T) {
	t.Run("steps recompute the estimate", func(t *testing.T) {
		m := newTestDashboard(t)
		before, _ := m.Result()

		press(m, tea.KeyMsg{Type: tea.KeyRight})
		assert.InDelta(t, 41.0, m.Inputs().DiameterCm, 0)

		after, _ := m.Result()
		assert.Greater(t, after.CapturedKgPerYear, before.CapturedKgPerYear)
	})

	t.Run("fractional step for height", func(t *testing.T) {
		m := newTestDashboard(t)
		press(m, keyRune('j'), keyRune('l'), keyRune('l'))
		assert.InDelta(t, 15.2, m.Inputs().HeightM, 1e-9)

		press(m, keyRune('h'))
		assert.InDelta(t, 15.1, m.Inputs().HeightM, 1e-9)
	})

	t.Run("steps clamp at bounds", func(t *testing.T) {
		inputs := config.Default().Inputs
		inputs.DiameterCm = 100
		inputs.EmployeeCount = 0
		m := NewDashboardModel(context.Background(), DashboardOptions{
			Inputs: inputs, Assumptions: forest.DefaultAssumptions(),
		})

		press(m, tea.KeyMsg{Type: tea.KeyRight})
		assert.InDelta(t, 100.0, m.Inputs().DiameterCm, 0)

		press(m, keyRune('j'), keyRune('j'), keyRune('j'), keyRune('j'), tea.KeyMsg{Type: tea.KeyLeft})
		assert.Equal(t, 0, m.Inputs().EmployeeCount)
	})
}

func TestDashboardModel_Edit(t *testing.T) {
	t.Run("enter commits the typed value", func(t *testing.T) {
		m := newTestDashboard(t)

		press(m, tea.KeyMsg{Type: tea.KeyEnter})
		require.Equal(t, DashboardStateEditing, m.State())
		assert.Equal(t, "40", m.numberInput.Value())

		press(m,
			tea.KeyMsg{Type: tea.KeyBackspace},
			tea.KeyMsg{Type: tea.KeyBackspace},
			keyRune('2'), keyRune('5'),
			tea.KeyMsg{Type: tea.KeyEnter},
		)
		assert.Equal(t, DashboardStateBrowsing, m.State())
		assert.InDelta(t, 25.0, m.Inputs().DiameterCm, 0)
	})

	t.Run("committed values are clamped", func(t *testing.T) {
		m := newTestDashboard(t)
		press(m, tea.KeyMsg{Type: tea.KeyEnter})
		m.numberInput.SetValue("250")
		press(m, tea.KeyMsg{Type: tea.KeyEnter})

		assert.InDelta(t, 100.0, m.Inputs().DiameterCm, 0)
	})

	t.Run("invalid text keeps the field open", func(t *testing.T) {
		m := newTestDashboard(t)
		press(m, tea.KeyMsg{Type: tea.KeyEnter})
		m.numberInput.SetValue("forty")
		press(m, tea.KeyMsg{Type: tea.KeyEnter})

		assert.Equal(t, DashboardStateEditing, m.State())
		assert.Equal(t, "Enter a number between 0 and 100.", m.editErr)
		assert.InDelta(t, 40.0, m.Inputs().DiameterCm, 0)
		assert.Contains(t, m.View(), "Enter a number between 0 and 100.")
	})

	t.Run("esc cancels", func(t *testing.T) {
		m := newTestDashboard(t)
		press(m, tea.KeyMsg{Type: tea.KeyEnter})
		m.numberInput.SetValue("12")
		press(m, tea.KeyMsg{Type: tea.KeyEsc})

		assert.Equal(t, DashboardStateBrowsing, m.State())
		assert.InDelta(t, 40.0, m.Inputs().DiameterCm, 0)
	})

	t.Run("q is typed rather than quitting", func(t *testing.T) {
		m := newTestDashboard(t)
		press(m, tea.KeyMsg{Type: tea.KeyEnter})
		press(m, keyRune('q'))

		assert.Equal(t, DashboardStateEditing, m.State())
		assert.Equal(t, "40q", m.numberInput.Value())
	})
}

func TestDashboardModel_AgeZero(t *testing.T) {
	m := newTestDashboard(t)
	press(m, keyRune('j'), keyRune('j'), tea.KeyMsg{Type: tea.KeyEnter})
	m.numberInput.SetValue("0")
	press(m, tea.KeyMsg{Type: tea.KeyEnter})

	_, err := m.Result()
	require.ErrorIs(t, err, forest.ErrInvalidAge)

	view := m.View()
	assert.Contains(t, view, AgeWarning)
	assert.NotContains(t, view, MetricCaptured)
	assert.NotContains(t, view, BarCaptured)

	press(m, keyRune('l'))
	_, err = m.Result()
	require.NoError(t, err)
	assert.Contains(t, m.View(), MetricCaptured)
}

func TestDashboardModel_Methodology(t *testing.T) {
	m := newTestDashboard(t)
	assert.Contains(t, m.View(), "▸ "+methodology.Title)

	press(m, keyRune('m'))
	assert.Equal(t, DashboardStateMethodology, m.State())
	view := m.View()
	assert.Contains(t, view, "▾ "+methodology.Title)
	assert.Contains(t, view, "Calculation methodology")

	// Slider keys do not reach the inputs while the pane has focus.
	press(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, config.InputDiameter, m.Focused())

	press(m, keyRune('m'))
	assert.Equal(t, DashboardStateBrowsing, m.State())

	press(m, keyRune('m'), tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, DashboardStateBrowsing, m.State())
}

func TestDashboardModel_Reset(t *testing.T) {
	m := newTestDashboard(t)
	press(m, keyRune('l'), keyRune('l'), keyRune('j'), keyRune('h'))
	require.NotEqual(t, config.Default().Inputs, m.Inputs())

	press(m, keyRune('r'))
	assert.Equal(t, config.Default().Inputs, m.Inputs())
}

func TestDashboardModel_Quit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{keyRune('q'), {Type: tea.KeyCtrlC}} {
		m := newTestDashboard(t)
		cmd := press(m, msg)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
		assert.Equal(t, DashboardStateQuitting, m.State())
		assert.Empty(t, m.View())
	}
}

func TestDashboardModel_View(t *testing.T) {
	m := newTestDashboard(t)

	t.Run("narrow layout", func(t *testing.T) {
		press(m, tea.WindowSizeMsg{Width: 80, Height: 40})
		view := m.View()
		for _, want := range []string{
			DashboardTitle,
			"Tree diameter (cm)",
			"Employees",
			"795 tCO2/year",
			"169.08%",
			BarCaptured,
			BarEmitted,
			"Equivalent to driving ~4.1 million miles",
		} {
			assert.Contains(t, view, want)
		}
	})

	t.Run("wide layout", func(t *testing.T) {
		press(m, tea.WindowSizeMsg{Width: 160, Height: 50})
		assert.Contains(t, m.View(), "795 tCO2/year")
	})

	t.Run("equivalencies can be hidden", func(t *testing.T) {
		hidden := NewDashboardModel(context.Background(), DashboardOptions{
			Inputs: config.Default().Inputs, Assumptions: forest.DefaultAssumptions(),
		})
		assert.NotContains(t, hidden.View(), "Equivalent to driving")
	})

	t.Run("help toggles", func(t *testing.T) {
		press(m, keyRune('?'))
		assert.True(t, m.help.ShowAll)
		assert.Contains(t, m.View(), "reset")
	})
}

func TestSliderPosition(t *testing.T) {
	diameter := config.BoundFor(config.InputDiameter)

	assert.Equal(t, 0, SliderPosition(diameter, 0, 30))
	assert.Equal(t, 29, SliderPosition(diameter, 100, 30))
	assert.Equal(t, 12, SliderPosition(diameter, 40, 30))
	assert.Equal(t, 29, SliderPosition(diameter, 500, 30))
	assert.Equal(t, 0, SliderPosition(config.InputBound{Min: 1, Max: 1}, 1, 30))
	assert.Empty(t, RenderSlider(diameter, 40, 0))
}

func TestEquivalencyLine(t *testing.T) {
	assert.Equal(t,
		"Equivalent to driving ~4.1 million miles or powering ~43,426 homes for a day",
		EquivalencyLine(794690.064))
	assert.Empty(t, EquivalencyLine(0))
}
