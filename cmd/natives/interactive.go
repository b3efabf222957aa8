package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/playday3008/scripthook-go/bindings"
	"github.com/playday3008/scripthook-go/invoker"
	"github.com/playday3008/scripthook-go/joaat"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#5F5FD7")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	symStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	hashStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#5F5FD7"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type consoleState int

const (
	stateHash consoleState = iota
	stateCatalog
	stateSlot
)

type consoleModel struct {
	input     textinput.Model
	slotInput textinput.Model
	catalog   []bindings.Export
	selected  int
	state     consoleState
}

func newConsoleModel() *consoleModel {
	ti := textinput.New()
	ti.Placeholder = "police_car"
	ti.Prompt = "> "
	ti.Width = 48
	ti.Focus()

	si := textinput.New()
	si.Placeholder = "i32:-1"
	si.Prompt = "> "
	si.Width = 48

	return &consoleModel{
		input:     ti,
		slotInput: si,
		catalog:   bindings.Catalog(),
	}
}

func (m *consoleModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *consoleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			if m.state != stateHash {
				return m.enter(stateHash)
			}
			return m, tea.Quit

		case "tab":
			switch m.state {
			case stateHash:
				return m.enter(stateCatalog)
			case stateCatalog:
				return m.enter(stateSlot)
			default:
				return m.enter(stateHash)
			}

		case "q":
			// Only a command in the catalog; the text consoles need the
			// letter.
			if m.state == stateCatalog {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateCatalog {
				if m.selected > 0 {
					m.selected--
				}
				return m, nil
			}

		case "down", "j":
			if m.state == stateCatalog {
				if m.selected < len(m.catalog)-1 {
					m.selected++
				}
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case stateHash:
		m.input, cmd = m.input.Update(msg)
	case stateSlot:
		m.slotInput, cmd = m.slotInput.Update(msg)
	}
	return m, cmd
}

// enter switches the console view and moves keyboard focus with it.
func (m *consoleModel) enter(s consoleState) (tea.Model, tea.Cmd) {
	m.state = s
	m.input.Blur()
	m.slotInput.Blur()
	switch s {
	case stateHash:
		m.input.Focus()
		return m, textinput.Blink
	case stateSlot:
		m.slotInput.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

func (m *consoleModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Native Console"))
	b.WriteString("\n\n")

	switch m.state {
	case stateHash:
		b.WriteString("Type a name to hash:\n\n")
		b.WriteString(m.input.View())
		b.WriteString("\n\n")

		name := m.input.Value()
		b.WriteString("joaat32:   " + hashStyle.Render(fmt.Sprintf("0x%08X", joaat.String32(name))))
		b.WriteString("\n")
		b.WriteString("joaat64:   " + hashStyle.Render(fmt.Sprintf("0x%016X", joaat.String64(name))))
		b.WriteString("\n")
		b.WriteString("literal32: " + hashStyle.Render(fmt.Sprintf("0x%08X", joaat.Literal32(name))))
		b.WriteString("\n")
		b.WriteString("literal64: " + hashStyle.Render(fmt.Sprintf("0x%016X", joaat.Literal64(name))))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("tab catalog • esc quit"))

	case stateCatalog:
		b.WriteString("SDK exports:\n\n")
		for i, e := range m.catalog {
			if i == m.selected {
				b.WriteString(selectedStyle.Render(fmt.Sprintf("> %-28s %s", e.Name, e.Symbol)))
			} else {
				b.WriteString("  " + nameStyle.Render(fmt.Sprintf("%-28s", e.Name)) + " " + symStyle.Render(e.Symbol))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • tab slot packer • q quit"))

	case stateSlot:
		b.WriteString("Pack a typed literal into an argument slot:\n\n")
		b.WriteString(m.slotInput.View())
		b.WriteString("\n\n")
		b.WriteString(m.slotView())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("tab hash console • esc back"))
	}

	return b.String()
}

func (m *consoleModel) slotView() string {
	expr := m.slotInput.Value()
	if expr == "" {
		return helpStyle.Render("types: bool i8 i16 i32 i64 u8 u16 u32 u64 addr f32 f64")
	}
	v, err := parseSlotValue(expr)
	if err != nil {
		return errStyle.Render(err.Error())
	}
	slot, err := invoker.PackValue(v)
	if err != nil {
		return errStyle.Render(err.Error())
	}
	return fmt.Sprintf("value: %v (%T)\nslot:  %s", v, v,
		hashStyle.Render(fmt.Sprintf("0x%016X", uint64(slot))))
}

func runInteractive() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("interactive mode needs a terminal")
	}

	p := tea.NewProgram(newConsoleModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
