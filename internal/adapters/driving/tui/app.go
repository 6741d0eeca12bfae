package tui

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/adityakanu/penrose-vault/internal/adapters/driving/tui/styles"
	"github.com/adityakanu/penrose-vault/internal/core/domain"
)

// mode tracks which part of the editor is active.
type mode int

const (
	modeList mode = iota
	modeEdit
)

// editField indexes the focused input in edit mode.
type editField int

const (
	fieldName editField = iota
	fieldDomain
	fieldStyle
	fieldCount
)

// aliasRow is one displayed alias.
type aliasRow struct {
	name  string
	entry domain.AliasEntry
}

// Messages produced by background commands.

type aliasesLoadedMsg struct {
	table domain.AliasTable
	err   error
}

type aliasSavedMsg struct {
	err error
}

type aliasRemovedMsg struct {
	err error
}

// App is the alias editor, following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles

	mode     mode
	rows     []aliasRow
	selected int

	// Edit mode state. editing holds the original name when an
	// existing alias is being changed, empty for a new one.
	editing string
	inputs  [fieldCount]textinput.Model
	focused editField

	status string
	err    error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new alias editor with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()

	var inputs [fieldCount]textinput.Model
	placeholders := [fieldCount]string{"alias name", "domain reference", "style reference"}
	for i := range inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = 256
		inputs[i] = in
	}

	return &App{
		ports:  ports,
		ctx:    context.Background(),
		styles: s,
		mode:   modeList,
		inputs: inputs,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("penrose-vault - Aliases"),
		a.loadAliases(),
	)
}

// loadAliases returns a command that fetches the alias table.
func (a *App) loadAliases() tea.Cmd {
	return func() tea.Msg {
		table, err := a.ports.Settings.Aliases()
		return aliasesLoadedMsg{table: table, err: err}
	}
}

// saveAlias returns a command that persists one alias. When the name
// changed during an edit, the old entry is removed first.
func (a *App) saveAlias(oldName, name string, entry domain.AliasEntry) tea.Cmd {
	return func() tea.Msg {
		if oldName != "" && oldName != name {
			if err := a.ports.Settings.RemoveAlias(oldName); err != nil {
				return aliasSavedMsg{err: err}
			}
		}
		return aliasSavedMsg{err: a.ports.Settings.PutAlias(name, entry)}
	}
}

// removeAlias returns a command that deletes one alias.
func (a *App) removeAlias(name string) tea.Cmd {
	return func() tea.Msg {
		return aliasRemovedMsg{err: a.ports.Settings.RemoveAlias(name)}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		return a, nil

	case aliasesLoadedMsg:
		if msg.err != nil {
			a.err = msg.err
			return a, nil
		}
		a.err = nil
		a.setRows(msg.table)
		return a, nil

	case aliasSavedMsg:
		if msg.err != nil {
			a.err = msg.err
			return a, nil
		}
		a.err = nil
		a.mode = modeList
		a.status = "Saved."
		return a, a.loadAliases()

	case aliasRemovedMsg:
		if msg.err != nil {
			a.err = msg.err
			return a, nil
		}
		a.err = nil
		a.status = "Removed."
		return a, a.loadAliases()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		switch a.mode {
		case modeList:
			return a.updateList(msg)
		case modeEdit:
			return a.updateEdit(msg)
		}
	}

	return a, nil
}

// setRows rebuilds the sorted row list, keeping the selection in range.
func (a *App) setRows(table domain.AliasTable) {
	rows := make([]aliasRow, 0, len(table))
	for name, entry := range table {
		rows = append(rows, aliasRow{name: name, entry: entry})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].name < rows[j].name })
	a.rows = rows
	if a.selected >= len(rows) {
		a.selected = len(rows) - 1
	}
	if a.selected < 0 {
		a.selected = 0
	}
}

// updateList handles keys in list mode.
func (a *App) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return a, tea.Quit

	case "up", "k":
		if a.selected > 0 {
			a.selected--
		}
		return a, nil

	case "down", "j":
		if a.selected < len(a.rows)-1 {
			a.selected++
		}
		return a, nil

	case "a":
		a.beginEdit("", domain.AliasEntry{})
		return a, textinput.Blink

	case "enter", "e":
		if len(a.rows) == 0 {
			return a, nil
		}
		row := a.rows[a.selected]
		a.beginEdit(row.name, row.entry)
		return a, textinput.Blink

	case "d":
		if len(a.rows) == 0 {
			return a, nil
		}
		return a, a.removeAlias(a.rows[a.selected].name)
	}

	return a, nil
}

// beginEdit switches to edit mode, seeding the inputs.
func (a *App) beginEdit(name string, entry domain.AliasEntry) {
	a.mode = modeEdit
	a.editing = name
	a.status = ""
	a.err = nil

	a.inputs[fieldName].SetValue(name)
	a.inputs[fieldDomain].SetValue(entry.Domain)
	a.inputs[fieldStyle].SetValue(entry.Style)
	a.setFocus(fieldName)
}

// setFocus moves input focus to one field.
func (a *App) setFocus(field editField) {
	a.focused = field
	for i := range a.inputs {
		if editField(i) == field {
			a.inputs[i].Focus()
		} else {
			a.inputs[i].Blur()
		}
	}
}

// updateEdit handles keys in edit mode.
func (a *App) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = modeList
		return a, nil

	case "tab", "down":
		a.setFocus((a.focused + 1) % fieldCount)
		return a, nil

	case "shift+tab", "up":
		a.setFocus((a.focused + fieldCount - 1) % fieldCount)
		return a, nil

	case "enter":
		if a.focused < fieldCount-1 {
			a.setFocus(a.focused + 1)
			return a, nil
		}
		return a.submitEdit()
	}

	var cmd tea.Cmd
	a.inputs[a.focused], cmd = a.inputs[a.focused].Update(msg)
	return a, cmd
}

// submitEdit validates the form and issues the save command.
func (a *App) submitEdit() (tea.Model, tea.Cmd) {
	name := strings.TrimSpace(a.inputs[fieldName].Value())
	entry := domain.AliasEntry{
		Domain: strings.TrimSpace(a.inputs[fieldDomain].Value()),
		Style:  strings.TrimSpace(a.inputs[fieldStyle].Value()),
	}

	if name == "" || entry.Domain == "" || entry.Style == "" {
		a.err = fmt.Errorf("name, domain and style are all required")
		return a, nil
	}

	return a, a.saveAlias(a.editing, name, entry)
}

// View implements tea.Model.
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("Aliases"))
	b.WriteString("\n\n")

	switch a.mode {
	case modeList:
		a.viewList(&b)
	case modeEdit:
		a.viewEdit(&b)
	}

	if a.err != nil {
		b.WriteString("\n")
		b.WriteString(a.styles.Error.Render(a.err.Error()))
		b.WriteString("\n")
	} else if a.status != "" {
		b.WriteString("\n")
		b.WriteString(a.styles.Success.Render(a.status))
		b.WriteString("\n")
	}

	return b.String()
}

// viewList renders the alias table.
func (a *App) viewList(b *strings.Builder) {
	if len(a.rows) == 0 {
		b.WriteString(a.styles.Muted.Render("No aliases configured. Press 'a' to add one."))
		b.WriteString("\n")
	}

	for i, row := range a.rows {
		line := fmt.Sprintf("%s  %s / %s", row.name, row.entry.Domain, row.entry.Style)
		if i == a.selected {
			b.WriteString(a.styles.Selected.Render("> " + line))
		} else {
			b.WriteString(a.styles.Normal.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.styles.Help.Render("a add · e edit · d delete · j/k move · q quit"))
	b.WriteString("\n")
}

// viewEdit renders the alias form.
func (a *App) viewEdit(b *strings.Builder) {
	labels := [fieldCount]string{"Name", "Domain", "Style"}
	for i := range a.inputs {
		b.WriteString(a.styles.Muted.Render(labels[i]))
		b.WriteString("\n")
		b.WriteString(a.styles.InputField.Render(a.inputs[i].View()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.styles.Help.Render("tab next field · enter save · esc cancel"))
	b.WriteString("\n")
}

// Accessors for testing.

// Mode returns the active editor mode.
func (a *App) Mode() int {
	return int(a.mode)
}

// Selected returns the selected row index.
func (a *App) Selected() int {
	return a.selected
}

// Rows returns the displayed alias names in order.
func (a *App) Rows() []string {
	names := make([]string, len(a.rows))
	for i, row := range a.rows {
		names[i] = row.name
	}
	return names
}

// Err returns the last error.
func (a *App) Err() error {
	return a.err
}

// Ready reports whether the first window size was received.
func (a *App) Ready() bool {
	return a.ready
}
