package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/dynlist"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	elemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	markStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#FF8C00"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type explorerModel struct {
	list   *dynlist.List[string]
	input  textinput.Model
	status string
	errMsg string
	cursor int
	mark   int // swap origin, -1 when unset
	pend   pendingOp
	state  modelState
}

type modelState int

const (
	stateBrowse modelState = iota
	stateInput
)

type pendingOp int

const (
	opNone pendingOp = iota
	opAppend
	opPrepend
	opInsert
	opSet
	opFind
)

func newExplorerModel(seed []string) *explorerModel {
	l := dynlist.New[string]()
	for _, s := range seed {
		l.Append(s)
	}
	return &explorerModel{
		list:  l,
		mark:  -1,
		state: stateBrowse,
	}
}

func (m *explorerModel) Init() tea.Cmd {
	return nil
}

func (m *explorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.state == stateInput {
		return m.updateInput(keyMsg)
	}
	return m.updateBrowse(keyMsg)
}

func (m *explorerModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.errMsg = ""

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < m.list.Len()-1 {
			m.cursor++
		}

	case "a":
		m.prompt(opAppend, "value to append")
	case "p":
		m.prompt(opPrepend, "value to prepend")
	case "i":
		m.prompt(opInsert, fmt.Sprintf("value to insert at %d", m.cursor))
	case "e":
		m.prompt(opSet, fmt.Sprintf("new value for slot %d", m.cursor))
	case "/":
		m.prompt(opFind, "value to find")

	case "x":
		if err := m.list.DeleteAt(m.cursor); err != nil {
			m.errMsg = err.Error()
			break
		}
		m.status = fmt.Sprintf("deleted index %d", m.cursor)
		m.clampCursor()

	case "X":
		v, err := m.list.DeleteLast()
		if err != nil {
			m.errMsg = err.Error()
			break
		}
		m.status = fmt.Sprintf("deleted last (%q)", v)
		m.clampCursor()

	case "s":
		if m.mark < 0 {
			m.mark = m.cursor
			m.status = fmt.Sprintf("swap origin set to %d", m.mark)
			break
		}
		if err := m.list.Swap(m.mark, m.cursor); err != nil {
			m.errMsg = err.Error()
		} else {
			m.status = fmt.Sprintf("swapped %d and %d", m.mark, m.cursor)
		}
		m.mark = -1

	case "c":
		m.list.Clear()
		m.cursor = 0
		m.mark = -1
		m.status = "cleared"

	case "esc":
		m.mark = -1
		m.status = ""
	}

	return m, nil
}

func (m *explorerModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.state = stateBrowse
		m.pend = opNone
		return m, nil

	case "enter":
		m.commit(m.input.Value())
		m.state = stateBrowse
		m.pend = opNone
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *explorerModel) prompt(op pendingOp, placeholder string) {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "> "
	ti.Width = 40
	ti.Focus()
	m.input = ti
	m.pend = op
	m.state = stateInput
}

func (m *explorerModel) commit(value string) {
	m.errMsg = ""

	switch m.pend {
	case opAppend:
		m.list.Append(value)
		m.status = fmt.Sprintf("appended %q", value)
	case opPrepend:
		m.list.Prepend(value)
		m.status = fmt.Sprintf("prepended %q", value)
	case opInsert:
		m.list.Insert(m.cursor, value)
		m.status = fmt.Sprintf("inserted %q at %d", value, m.cursor)
	case opSet:
		if err := m.list.Set(m.cursor, value); err != nil {
			m.errMsg = err.Error()
			return
		}
		m.status = fmt.Sprintf("slot %d set to %q", m.cursor, value)
	case opFind:
		n := m.list.IndexOf(value)
		if n < 0 {
			m.status = fmt.Sprintf("%q not found", value)
			return
		}
		m.cursor = n
		m.status = fmt.Sprintf("%q is at index %d", value, n)
	}
}

func (m *explorerModel) clampCursor() {
	if m.cursor >= m.list.Len() {
		m.cursor = m.list.Len() - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.mark = -1
}

func (m *explorerModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("List Explorer"))
	b.WriteString("\n\n")

	if m.list.Len() == 0 {
		b.WriteString(helpStyle.Render("(empty list)"))
		b.WriteString("\n")
	}

	i := 0
	m.list.Each(func(v string) {
		line := fmt.Sprintf("%3d  %s", i, elemStyle.Render(v))
		switch {
		case i == m.cursor:
			b.WriteString(selectedStyle.Render("> " + line))
		case i == m.mark:
			b.WriteString(markStyle.Render("* " + line))
		default:
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
		i++
	})

	b.WriteString("\n")
	b.WriteString(statusStyle.Render(fmt.Sprintf("count %d  capacity %d", m.list.Len(), m.list.Cap())))
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	if m.state == stateInput {
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter confirm • esc cancel"))
		return b.String()
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ move • a append • p prepend • i insert • e edit • x delete • X delete last"))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("s swap (twice) • / find • c clear • q quit"))
	return b.String()
}

func runInteractive(seed []string) error {
	p := tea.NewProgram(newExplorerModel(seed), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
