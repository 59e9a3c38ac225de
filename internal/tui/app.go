// Package tui provides the interactive to-do manager.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"wallet/internal/log"
	"wallet/internal/tasks"
)

type mode int

const (
	modeNormal mode = iota
	modeAdd
	modeFilter
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("237"))
	doneStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Strikethrough(true)
	categoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// App is the root Bubble Tea model for the task manager.
type App struct {
	store *tasks.Store

	visible []tasks.Task
	cursor  int
	filter  string

	mode     mode
	input    textinput.Model
	catIndex int

	errMsg string
	width  int
	height int
}

// NewApp creates the task manager model over an open store.
func NewApp(store *tasks.Store) App {
	ti := textinput.New()
	ti.Placeholder = "What needs doing?"
	ti.CharLimit = 200
	ti.Width = 40

	a := App{store: store, input: ti}
	a.reload()
	return a
}

func (a *App) reload() {
	list, err := a.store.List(a.filter)
	if err != nil {
		a.errMsg = err.Error()
		return
	}
	a.visible = list
	if a.cursor >= len(a.visible) {
		a.cursor = len(a.visible) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		switch a.mode {
		case modeAdd:
			return a.updateAdd(msg)
		case modeFilter:
			return a.updateFilter(msg)
		default:
			return a.updateNormal(msg)
		}
	}
	return a, nil
}

func (a App) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a.errMsg = ""
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(a.visible)-1 {
			a.cursor++
		}
	case "a":
		a.mode = modeAdd
		a.input.Placeholder = "What needs doing?"
		a.input.SetValue("")
		a.input.Focus()
	case "/":
		a.mode = modeFilter
		a.input.Placeholder = "Filter tasks..."
		a.input.SetValue(a.filter)
		a.input.Focus()
	case " ", "enter":
		if t, ok := a.selected(); ok {
			if _, err := a.store.Toggle(t.ID); err != nil {
				a.errMsg = err.Error()
			}
			log.Logger.Debug().Int64("id", t.ID).Msg("task toggled")
			a.reload()
		}
	case "d", "delete":
		if t, ok := a.selected(); ok {
			if err := a.store.Delete(t.ID); err != nil {
				a.errMsg = err.Error()
			}
			a.reload()
		}
	case "C":
		if err := a.store.Clear(); err != nil {
			a.errMsg = err.Error()
		}
		a.reload()
	case "esc":
		if a.filter != "" {
			a.filter = ""
			a.reload()
		}
	}
	return a, nil
}

func (a App) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = modeNormal
		a.input.Blur()
		return a, nil
	case "tab":
		a.catIndex = (a.catIndex + 1) % len(tasks.Categories)
		return a, nil
	case "enter":
		if _, err := a.store.Add(a.input.Value(), tasks.Categories[a.catIndex]); err != nil {
			a.errMsg = err.Error()
			return a, nil
		}
		a.errMsg = ""
		a.mode = modeNormal
		a.input.Blur()
		a.reload()
		a.cursor = len(a.visible) - 1
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a App) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = modeNormal
		a.input.Blur()
		a.filter = ""
		a.reload()
		return a, nil
	case "enter":
		a.mode = modeNormal
		a.input.Blur()
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	a.filter = a.input.Value()
	a.reload()
	return a, cmd
}

func (a App) selected() (tasks.Task, bool) {
	if a.cursor < 0 || a.cursor >= len(a.visible) {
		return tasks.Task{}, false
	}
	return a.visible[a.cursor], true
}

// View implements tea.Model.
func (a App) View() string {
	var b strings.Builder

	b.WriteString("\n  ")
	b.WriteString(titleStyle.Render("To-Do"))
	if a.filter != "" {
		b.WriteString(hintStyle.Render(fmt.Sprintf("  (filter: %q)", a.filter)))
	}
	b.WriteString("\n\n")

	if len(a.visible) == 0 {
		b.WriteString(hintStyle.Render("  Nothing here. Press a to add a task.\n"))
	}

	for i, t := range a.visible {
		mark := "[ ]"
		if t.Done {
			mark = "[x]"
		}
		line := fmt.Sprintf("  %s %s %s", mark, categoryStyle.Render("["+t.Category+"]"), t.Text)
		if t.Done {
			line = fmt.Sprintf("  %s %s %s", mark, categoryStyle.Render("["+t.Category+"]"), doneStyle.Render(t.Text))
		}
		if i == a.cursor && a.mode == modeNormal {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch a.mode {
	case modeAdd:
		b.WriteString(fmt.Sprintf("  Add %s %s\n",
			categoryStyle.Render("["+tasks.Categories[a.catIndex]+"]"),
			a.input.View()))
		b.WriteString(hintStyle.Render("  tab: category  enter: save  esc: cancel\n"))
	case modeFilter:
		b.WriteString(fmt.Sprintf("  Filter %s\n", a.input.View()))
		b.WriteString(hintStyle.Render("  enter: apply  esc: clear\n"))
	default:
		b.WriteString(hintStyle.Render("  a: add  space: done  d: delete  /: filter  C: clear all  q: quit\n"))
	}

	if a.errMsg != "" {
		b.WriteString(errorStyle.Render("  " + a.errMsg))
		b.WriteString("\n")
	}

	return b.String()
}

// Run starts the task manager over the database at dbPath and blocks
// until the user quits.
func Run(dbPath string) error {
	store, err := tasks.Open(dbPath)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	p := tea.NewProgram(NewApp(store), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running task manager: %w", err)
	}
	return nil
}
