// ABOUTME: Unit tests for the moodlog setup TUI wizard bubbletea model.
// ABOUTME: Uses synthetic tea.Msg values to test state machine transitions.
package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func enter(t *testing.T, m SetupModel) SetupModel {
	t.Helper()
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return updated.(SetupModel)
}

func TestNewSetupModel_DefaultValues(t *testing.T) {
	m := NewSetupModel("", "", "")
	if m.step != StepBackend {
		t.Errorf("expected initial step StepBackend, got %d", m.step)
	}
	for i, in := range m.inputs {
		if in.Value() != "" {
			t.Errorf("expected empty input %d for new config, got %q", i, in.Value())
		}
	}
}

func TestNewSetupModel_ExistingConfig(t *testing.T) {
	m := NewSetupModel("file", "/custom/path", "de")
	if m.inputs[StepBackend].Value() != "file" {
		t.Errorf("expected pre-filled backend, got %q", m.inputs[StepBackend].Value())
	}
	if m.inputs[StepDataDir].Value() != "/custom/path" {
		t.Errorf("expected pre-filled data dir, got %q", m.inputs[StepDataDir].Value())
	}
	if m.inputs[StepLocale].Value() != "de" {
		t.Errorf("expected pre-filled locale, got %q", m.inputs[StepLocale].Value())
	}
}

func TestSetupModel_StepTransitions(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/xdg/data")
	m := NewSetupModel("", "", "")

	m = enter(t, m)
	if m.step != StepDataDir {
		t.Errorf("expected StepDataDir after Enter on backend, got %d", m.step)
	}
	if m.inputs[StepBackend].Value() != "sqlite" {
		t.Errorf("expected default backend 'sqlite', got %q", m.inputs[StepBackend].Value())
	}

	m = enter(t, m)
	if m.step != StepLocale {
		t.Errorf("expected StepLocale after Enter on data dir, got %d", m.step)
	}
	if m.inputs[StepDataDir].Value() != "/xdg/data/moodlog" {
		t.Errorf("expected default data dir, got %q", m.inputs[StepDataDir].Value())
	}

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(SetupModel)
	if m.step != StepDone {
		t.Errorf("expected StepDone after Enter on locale, got %d", m.step)
	}
	if cmd == nil {
		t.Error("expected quit cmd when done")
	}
	if m.inputs[StepLocale].Value() != "tr" {
		t.Errorf("expected default locale 'tr', got %q", m.inputs[StepLocale].Value())
	}
}

func TestSetupModel_InvalidBackend(t *testing.T) {
	for _, backend := range []string{"invalid", "memory", "markdown"} {
		t.Run(backend, func(t *testing.T) {
			m := NewSetupModel(backend, "", "")
			m = enter(t, m)
			if m.step != StepBackend {
				t.Errorf("expected to stay on StepBackend with %q, got %d", backend, m.step)
			}
			if !strings.Contains(m.View(), "unknown backend") {
				t.Error("expected error message in view")
			}
		})
	}
}

func TestSetupModel_ViewBackendStep(t *testing.T) {
	view := NewSetupModel("", "", "").View()
	if !strings.Contains(view, "(sqlite, file, charm") {
		t.Errorf("expected sqlite listed first, got %q", view)
	}
	if !strings.Contains(view, "network") {
		t.Error("expected the charm network requirement to be shown")
	}
}

func TestSetupModel_BackendCaseInsensitive(t *testing.T) {
	m := NewSetupModel("SQLite", "", "")
	m = enter(t, m)
	if m.inputs[StepBackend].Value() != "sqlite" {
		t.Errorf("expected lowercased backend, got %q", m.inputs[StepBackend].Value())
	}
}

func TestSetupModel_InvalidLocale(t *testing.T) {
	m := NewSetupModel("file", "/data", "xx")
	m = enter(t, enter(t, m))
	if m.step != StepLocale {
		t.Fatalf("expected StepLocale, got %d", m.step)
	}

	m = enter(t, m)
	if m.step != StepLocale {
		t.Errorf("expected to stay on StepLocale with invalid locale, got %d", m.step)
	}

	m.inputs[StepLocale].SetValue("en-GB")
	m = enter(t, m)
	if m.step != StepDone {
		t.Errorf("expected StepDone with valid locale, got %d", m.step)
	}
	if m.errMsg != "" {
		t.Errorf("expected error cleared, got %q", m.errMsg)
	}
}

func TestSetupModel_QuitOnCtrlC(t *testing.T) {
	m := NewSetupModel("", "", "")
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = updated.(SetupModel)
	if cmd == nil {
		t.Error("expected quit cmd on ctrl+c")
	}
	if !m.quitting {
		t.Error("expected quitting to be true")
	}
	if m.ShouldSave() {
		t.Error("expected ShouldSave false after ctrl+c")
	}
}

func TestSetupModel_QuitOnEsc(t *testing.T) {
	m := NewSetupModel("", "", "")
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	m = updated.(SetupModel)
	if cmd == nil {
		t.Error("expected quit cmd on escape")
	}
	if !m.quitting {
		t.Error("expected quitting to be true")
	}
}

func TestSetupModel_Result(t *testing.T) {
	m := NewSetupModel("sqlite", "/data/moodlog", "ja")
	m.step = StepDone

	backend, dataDir, locale := m.Result()
	if backend != "sqlite" {
		t.Errorf("expected backend from result, got %q", backend)
	}
	if dataDir != "/data/moodlog" {
		t.Errorf("expected data dir from result, got %q", dataDir)
	}
	if locale != "ja" {
		t.Errorf("expected locale from result, got %q", locale)
	}
}

func TestSetupModel_ShouldSave(t *testing.T) {
	t.Run("done means save", func(t *testing.T) {
		m := NewSetupModel("", "", "")
		m.step = StepDone
		if !m.ShouldSave() {
			t.Error("expected ShouldSave true when done")
		}
	})

	t.Run("quit means no save", func(t *testing.T) {
		m := NewSetupModel("", "", "")
		m.quitting = true
		if m.ShouldSave() {
			t.Error("expected ShouldSave false when quitting")
		}
	})
}

func TestSetupModel_ViewContainsBranding(t *testing.T) {
	m := NewSetupModel("", "", "")
	if !strings.Contains(m.View(), "MOODLOG") {
		t.Error("expected view to contain MOODLOG branding")
	}
}

func TestSetupModel_ViewShowsCurrentStep(t *testing.T) {
	m := NewSetupModel("", "", "")

	m.step = StepBackend
	if !strings.Contains(m.View(), "Storage Backend") {
		t.Error("expected StepBackend view to mention Storage Backend")
	}

	m.step = StepDataDir
	if !strings.Contains(m.View(), "Data Directory") {
		t.Error("expected StepDataDir view to mention Data Directory")
	}

	m.step = StepLocale
	if !strings.Contains(m.View(), "Date Locale") {
		t.Error("expected StepLocale view to mention Date Locale")
	}
}

func TestSetupModel_ViewDone(t *testing.T) {
	m := NewSetupModel("sqlite", "/data/moodlog", "tr")
	m.step = StepDone
	view := m.View()
	if !strings.Contains(view, "saved") {
		t.Error("expected StepDone view to mention saved")
	}
	if !strings.Contains(view, "/data/moodlog") {
		t.Error("expected StepDone view to show data dir")
	}
}

func TestSetupModel_FullPrefilledFlow(t *testing.T) {
	m := NewSetupModel("sqlite", "/data/moodlog", "iso")

	for _, want := range []Step{StepDataDir, StepLocale, StepDone} {
		m = enter(t, m)
		if m.step != want {
			t.Fatalf("expected step %d, got %d", want, m.step)
		}
	}

	if !m.ShouldSave() {
		t.Error("expected ShouldSave true after completing flow")
	}
}
