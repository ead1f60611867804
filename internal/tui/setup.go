// ABOUTME: Interactive TUI wizard for configuring moodlog storage and date display.
// ABOUTME: 3-step bubbletea model collecting backend type, data directory, and date locale.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/harper/moodlog/internal/config"
	"github.com/harper/moodlog/internal/timeutil"
)

// Step represents the current wizard step.
type Step int

const (
	StepBackend Step = iota
	StepDataDir
	StepLocale
	StepDone
)

const stepCount = 3

// setupBackends are the backends offered by the wizard. The memory backend
// keeps nothing between runs, so it is left to the --backend flag.
var setupBackends = []string{config.BackendSQLite, config.BackendFile, config.BackendCharm}

// SetupModel is the bubbletea model for the setup wizard.
type SetupModel struct {
	step     Step
	inputs   [stepCount]textinput.Model
	errMsg   string
	quitting bool
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	brandStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// defaultDataDir returns the default XDG data directory for moodlog.
func defaultDataDir() string {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, _ := os.UserHomeDir()
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, "moodlog")
}

// NewSetupModel creates a new setup wizard model, pre-filling with existing config values.
func NewSetupModel(backend, dataDir, dateLocale string) SetupModel {
	backendInput := textinput.New()
	backendInput.Placeholder = config.DefaultBackend
	backendInput.Focus()
	backendInput.Width = 50
	if backend != "" {
		backendInput.SetValue(backend)
	}

	dataDirInput := textinput.New()
	dataDirInput.Placeholder = defaultDataDir()
	dataDirInput.Width = 50
	if dataDir != "" {
		dataDirInput.SetValue(dataDir)
	}

	localeInput := textinput.New()
	localeInput.Placeholder = timeutil.DefaultLocale
	localeInput.Width = 20
	if dateLocale != "" {
		localeInput.SetValue(dateLocale)
	}

	return SetupModel{
		step:   StepBackend,
		inputs: [stepCount]textinput.Model{backendInput, dataDirInput, localeInput},
	}
}

func (m SetupModel) editing() bool {
	return m.step < StepDone
}

// Init implements tea.Model.
func (m SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEscape:
			m.quitting = true
			return m, tea.Quit
		}

		if m.editing() {
			return m.updateInput(msg)
		}
	default:
		// Forward other messages (e.g. cursor blink) to the active input
		if m.editing() {
			idx := int(m.step)
			var cmd tea.Cmd
			m.inputs[idx], cmd = m.inputs[idx].Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m SetupModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		return m.handleEnter()
	}

	idx := int(m.step)
	var cmd tea.Cmd
	m.inputs[idx], cmd = m.inputs[idx].Update(msg)
	return m, cmd
}

func isSetupBackend(name string) bool {
	for _, b := range setupBackends {
		if b == name {
			return true
		}
	}
	return false
}

func (m SetupModel) handleEnter() (tea.Model, tea.Cmd) {
	idx := int(m.step)

	switch m.step {
	case StepBackend:
		val := strings.ToLower(strings.TrimSpace(m.inputs[idx].Value()))
		if val == "" {
			val = config.DefaultBackend
		}
		if !isSetupBackend(val) {
			m.errMsg = fmt.Sprintf("unknown backend %q", val)
			return m, nil
		}
		m.inputs[idx].SetValue(val)
	case StepDataDir:
		if strings.TrimSpace(m.inputs[idx].Value()) == "" {
			m.inputs[idx].SetValue(defaultDataDir())
		}
	case StepLocale:
		val := strings.TrimSpace(m.inputs[idx].Value())
		if val == "" {
			val = timeutil.DefaultLocale
		}
		if !timeutil.SupportedLocale(val) {
			m.errMsg = fmt.Sprintf("unsupported locale %q", val)
			return m, nil
		}
		m.inputs[idx].SetValue(val)
	}

	m.errMsg = ""
	m.inputs[idx].Blur()
	m.step++
	if m.step == StepDone {
		return m, tea.Quit
	}
	m.inputs[m.step].Focus()
	return m, textinput.Blink
}

// View implements tea.Model.
func (m SetupModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(brandStyle.Render("   MOODLOG"))
	b.WriteString(titleStyle.Render(" - Setup"))
	b.WriteString("\n\n")
	b.WriteString("Configure where your journal lives and how dates look.\n\n")

	switch m.step {
	case StepBackend:
		b.WriteString(stepStyle.Render(fmt.Sprintf("Step 1 of %d: Storage Backend", stepCount)))
		b.WriteString("\n")
		b.WriteString(promptStyle.Render(fmt.Sprintf("(%s, press Enter for default)", strings.Join(setupBackends, ", "))))
		b.WriteString("\n")
		b.WriteString(promptStyle.Render("charm needs a charm account and network access"))
		b.WriteString("\n")
		b.WriteString(m.inputs[StepBackend].View())
		b.WriteString("\n")

	case StepDataDir:
		b.WriteString(fmt.Sprintf("  Backend: %s\n\n", m.inputs[StepBackend].Value()))
		b.WriteString(stepStyle.Render(fmt.Sprintf("Step 2 of %d: Data Directory", stepCount)))
		b.WriteString("\n")
		b.WriteString(promptStyle.Render(fmt.Sprintf("(press Enter for default: %s)", defaultDataDir())))
		b.WriteString("\n")
		b.WriteString(m.inputs[StepDataDir].View())
		b.WriteString("\n")

	case StepLocale:
		b.WriteString(fmt.Sprintf("  Backend:        %s\n", m.inputs[StepBackend].Value()))
		b.WriteString(fmt.Sprintf("  Data directory: %s\n\n", m.inputs[StepDataDir].Value()))
		b.WriteString(stepStyle.Render(fmt.Sprintf("Step 3 of %d: Date Locale", stepCount)))
		b.WriteString("\n")
		b.WriteString(promptStyle.Render(fmt.Sprintf("(%s, press Enter for default)", strings.Join(timeutil.Locales(), ", "))))
		b.WriteString("\n")
		b.WriteString(m.inputs[StepLocale].View())
		b.WriteString("\n")

	case StepDone:
		b.WriteString(successStyle.Render("Setup complete! Configuration will be saved."))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("  Backend:        %s\n", m.inputs[StepBackend].Value()))
		b.WriteString(fmt.Sprintf("  Data directory: %s\n", m.inputs[StepDataDir].Value()))
		b.WriteString(fmt.Sprintf("  Date locale:    %s\n", m.inputs[StepLocale].Value()))
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	return b.String()
}

// Result returns the entered values.
func (m SetupModel) Result() (backend, dataDir, dateLocale string) {
	return m.inputs[StepBackend].Value(), m.inputs[StepDataDir].Value(), m.inputs[StepLocale].Value()
}

// ShouldSave returns true if the wizard completed and the user did not cancel.
func (m SetupModel) ShouldSave() bool {
	return m.step == StepDone && !m.quitting
}
