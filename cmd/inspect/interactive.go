package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/membox/alloc"
	"github.com/wippyai/membox/box"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	eventStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateDashboard modelState = iota
	stateInputCount
)

const eventLogSize = 8

type interactiveModel struct {
	tracker *alloc.Tracking
	live    []*box.Box[payload]
	events  []string
	input   textinput.Model
	next    uint64
	state   modelState
	err     error
}

func newInteractiveModel() *interactiveModel {
	m := &interactiveModel{
		tracker: newWorkloadAllocator(0),
	}
	m.tracker.Subscribe(alloc.ObserverFunc(func(e alloc.Event) {
		line := fmt.Sprintf("%s %d bytes (%s)", e.Type, e.Size, e.Typ)
		m.events = append(m.events, line)
		if len(m.events) > eventLogSize {
			m.events = m.events[len(m.events)-eventLogSize:]
		}
	}))
	return m
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.state == stateInputCount {
			switch msg.String() {
			case "enter":
				n, err := strconv.Atoi(strings.TrimSpace(m.input.Value()))
				if err != nil || n <= 0 {
					m.err = fmt.Errorf("batch size must be a positive number")
				} else {
					m.allocate(n)
					m.err = nil
				}
				m.state = stateDashboard
				return m, nil
			case "esc":
				m.state = stateDashboard
				return m, nil
			default:
				var cmd tea.Cmd
				m.input, cmd = m.input.Update(msg)
				return m, cmd
			}
		}

		switch msg.String() {
		case "ctrl+c", "q":
			for _, b := range m.live {
				b.Drop()
			}
			m.live = nil
			return m, tea.Quit

		case "a":
			m.input = textinput.New()
			m.input.Placeholder = "batch size"
			m.input.Prompt = "boxes: "
			m.input.Width = 20
			m.input.Focus()
			m.state = stateInputCount

		case "u":
			if n := len(m.live); n > 0 {
				_ = m.live[n-1].Into()
				m.live = m.live[:n-1]
			}

		case "d":
			if n := len(m.live); n > 0 {
				m.live[n-1].Drop()
				m.live = m.live[:n-1]
			}

		case "c":
			if n := len(m.live); n > 0 {
				m.live = append(m.live, m.live[n-1].Clone())
			}
		}
	}

	return m, nil
}

func (m *interactiveModel) allocate(n int) {
	for i := 0; i < n; i++ {
		b := box.NewIn(m.tracker, payload{
			ID:    m.next,
			Label: "interactive",
		})
		m.next++
		m.live = append(m.live, b)
	}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("membox inspector"))
	b.WriteString("\n\n")

	rows := []struct {
		label string
		value string
	}{
		{"live boxes", fmt.Sprintf("%d", len(m.live))},
		{"live slots", fmt.Sprintf("%d", m.tracker.Live())},
		{"allocations", fmt.Sprintf("%d", m.tracker.Allocs())},
		{"frees", fmt.Sprintf("%d", m.tracker.Frees())},
		{"bytes handed out", fmt.Sprintf("%d", m.tracker.AllocatedBytes())},
	}
	for _, r := range rows {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-18s", r.label)))
		b.WriteString(valueStyle.Render(r.value))
		b.WriteString("\n")
	}

	if len(m.events) > 0 {
		b.WriteString("\nRecent events:\n")
		for _, e := range m.events {
			b.WriteString("  ")
			b.WriteString(eventStyle.Render(e))
			b.WriteString("\n")
		}
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.state == stateInputCount {
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter allocate • esc cancel"))
	} else {
		b.WriteString(helpStyle.Render("a allocate • u unwrap • d drop • c clone • q quit"))
	}
	b.WriteString("\n")

	return b.String()
}

func runInteractive() error {
	p := tea.NewProgram(newInteractiveModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
