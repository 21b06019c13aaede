// Package modal provides a reusable modal component for confirmation
// dialogs and input prompts.
package modal

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"slate/internal/ui/overlay"
	"slate/internal/ui/styles"
)

// ButtonVariant controls the styling of the confirm button.
type ButtonVariant int

const (
	ButtonPrimary ButtonVariant = iota
	ButtonDanger
)

// InputConfig defines a single input field.
type InputConfig struct {
	Key         string
	Label       string
	Placeholder string
	Value       string
	MaxLength   int
}

// Config controls modal appearance and behavior.
type Config struct {
	Title          string
	Message        string
	Inputs         []InputConfig // empty means plain confirmation mode
	ConfirmVariant ButtonVariant
	MinWidth       int
}

// SubmitMsg is sent when the user confirms. Values holds input values
// keyed by InputConfig.Key; empty in confirmation mode.
type SubmitMsg struct {
	Values map[string]string
}

// CancelMsg is sent when the user cancels.
type CancelMsg struct{}

// Field identifies which button is focused.
type Field int

const (
	FieldConfirm Field = iota
	FieldCancel
)

// Model is the modal component state.
type Model struct {
	config       Config
	inputs       []textinput.Model
	inputKeys    []string
	focusedInput int // -1 when focus is on the buttons
	focusedField Field
	width        int
	height       int
}

// New creates a modal. With Inputs it collects text fields; without,
// it is a confirm/cancel dialog.
func New(cfg Config) Model {
	m := Model{
		config:       cfg,
		focusedInput: -1,
		focusedField: FieldConfirm,
	}

	for i, inputCfg := range cfg.Inputs {
		ti := textinput.New()
		ti.Placeholder = inputCfg.Placeholder
		ti.Width = 36
		ti.Prompt = ""
		if inputCfg.MaxLength > 0 {
			ti.CharLimit = inputCfg.MaxLength
		}
		ti.SetValue(inputCfg.Value)
		if i == 0 {
			ti.Focus()
			m.focusedInput = 0
		}
		m.inputs = append(m.inputs, ti)
		m.inputKeys = append(m.inputKeys, inputCfg.Key)
	}

	return m
}

// Init starts the cursor blink when the modal has inputs.
func (m Model) Init() tea.Cmd {
	if len(m.inputs) > 0 {
		return textinput.Blink
	}
	return nil
}

// SetSize updates the viewport size used for overlay centering.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the modal.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.forwardToInput(msg)
	}

	switch keyMsg.String() {
	case "tab", "down":
		return m.cycleFocus(1), nil
	case "shift+tab", "up":
		return m.cycleFocus(-1), nil
	case "left", "right":
		if m.focusedInput == -1 {
			if m.focusedField == FieldConfirm {
				m.focusedField = FieldCancel
			} else {
				m.focusedField = FieldConfirm
			}
			return m, nil
		}
	case "enter":
		return m.confirm()
	case "esc":
		return m, func() tea.Msg { return CancelMsg{} }
	}

	return m.forwardToInput(msg)
}

func (m Model) confirm() (Model, tea.Cmd) {
	if m.focusedInput >= 0 {
		return m.cycleFocus(1), nil
	}
	if m.focusedField == FieldCancel {
		return m, func() tea.Msg { return CancelMsg{} }
	}

	values := make(map[string]string)
	for i, input := range m.inputs {
		if input.Value() == "" {
			return m, nil
		}
		values[m.inputKeys[i]] = input.Value()
	}
	return m, func() tea.Msg { return SubmitMsg{Values: values} }
}

func (m Model) cycleFocus(dir int) Model {
	if m.focusedInput >= 0 {
		m.inputs[m.focusedInput].Blur()
	}

	next := m.focusedInput + dir
	switch {
	case m.focusedInput == -1 && dir > 0:
		if m.focusedField == FieldConfirm {
			m.focusedField = FieldCancel
			return m
		}
		next = 0
	case m.focusedInput == -1 && dir < 0:
		if m.focusedField == FieldCancel {
			m.focusedField = FieldConfirm
			return m
		}
		next = len(m.inputs) - 1
	}

	if next < 0 || next >= len(m.inputs) {
		m.focusedInput = -1
		if dir > 0 {
			m.focusedField = FieldConfirm
		} else {
			m.focusedField = FieldCancel
		}
		return m
	}

	m.focusedInput = next
	m.inputs[next].Focus()
	return m
}

func (m Model) forwardToInput(msg tea.Msg) (Model, tea.Cmd) {
	if m.focusedInput >= 0 && m.focusedInput < len(m.inputs) {
		var cmd tea.Cmd
		m.inputs[m.focusedInput], cmd = m.inputs[m.focusedInput].Update(msg)
		return m, cmd
	}
	return m, nil
}

// Values returns the current input values keyed by InputConfig.Key.
func (m Model) Values() map[string]string {
	values := make(map[string]string, len(m.inputs))
	for i, input := range m.inputs {
		values[m.inputKeys[i]] = input.Value()
	}
	return values
}

// View renders the modal box.
func (m Model) View() string {
	contentWidth := max(m.config.MinWidth, 40)
	contentWidth = max(contentWidth, lipgloss.Width(m.config.Title))
	boxWidth := contentWidth + 2

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.OverlayTitleColor).
		PaddingLeft(1)
	divider := lipgloss.NewStyle().
		Foreground(styles.OverlayBorderColor).
		Render(strings.Repeat("─", boxWidth))

	var content strings.Builder
	if m.config.Message != "" {
		content.WriteString(lipgloss.NewStyle().Width(contentWidth).Render(m.config.Message))
		content.WriteString("\n\n")
	}

	for i, inputCfg := range m.config.Inputs {
		content.WriteString(m.renderInputSection(i, inputCfg.Label, contentWidth))
		content.WriteString("\n\n")
	}

	content.WriteString(m.renderButtons())

	var result strings.Builder
	result.WriteString(titleStyle.Render(m.config.Title))
	result.WriteString("\n")
	result.WriteString(divider)
	result.WriteString("\n")
	result.WriteString(lipgloss.NewStyle().Padding(1, 1).Render(content.String()))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Width(boxWidth).
		Render(result.String())
}

func (m Model) renderInputSection(index int, label string, width int) string {
	if label == "" {
		label = "Input"
	}

	borderColor := styles.BorderDefaultColor
	if m.focusedInput == index {
		borderColor = styles.BorderFocusColor
	}

	section := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Width(width - 2).
		Render(m.inputs[index].View())

	labelLine := styles.MutedStyle.Render(label)
	return labelLine + "\n" + section
}

func (m Model) renderButtons() string {
	onButtons := m.focusedInput == -1

	confirmColor := styles.ToastBorderInfoColor
	if m.config.ConfirmVariant == ButtonDanger {
		confirmColor = styles.StatusErrorColor
	}

	confirmStyle := lipgloss.NewStyle().Padding(0, 2).Foreground(confirmColor)
	cancelStyle := lipgloss.NewStyle().Padding(0, 2).Foreground(styles.TextMutedColor)
	if onButtons && m.focusedField == FieldConfirm {
		confirmStyle = confirmStyle.Reverse(true).Bold(true)
	}
	if onButtons && m.focusedField == FieldCancel {
		cancelStyle = cancelStyle.Reverse(true).Bold(true)
	}

	label := "Confirm"
	if len(m.inputs) > 0 {
		label = "Save"
	}
	return confirmStyle.Render(label) + "  " + cancelStyle.Render("Cancel")
}

// Overlay renders the modal centered on the given background.
func (m Model) Overlay(bg string) string {
	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, m.View(), bg)
}
