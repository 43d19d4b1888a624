// Package ui implements the interactive starter-kit wizard.
package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/youssefhossamm/cursor-kickstart/internal/config"
	"github.com/youssefhossamm/cursor-kickstart/internal/kit"
	"github.com/youssefhossamm/cursor-kickstart/internal/models"
	"github.com/youssefhossamm/cursor-kickstart/internal/service"
)

// wizard steps
type step int

const (
	stepSelect step = iota
	stepDetails
	stepDone
)

// templateItem wraps a catalog document for the list component
type templateItem struct {
	doc      models.TemplateDocument
	selected bool
}

func (i templateItem) Title() string {
	check := "[ ]"
	if i.selected {
		check = "[x]"
	}
	return fmt.Sprintf("%s %s (%s)", check, i.doc.Name, i.doc.Category)
}

func (i templateItem) Description() string { return i.doc.Description }
func (i templateItem) FilterValue() string { return i.doc.Name + " " + i.doc.Description }

// Model is the wizard's bubbletea model
type Model struct {
	service *service.Service
	config  config.Config

	step     step
	list     list.Model
	selected map[string]bool

	nameInput textinput.Model
	scaffold  bool

	previewing bool
	preview    string

	outPath string
	result  *models.KitResult
	err     error

	width  int
	height int
}

// NewModel creates the wizard over the built-in catalog
func NewModel(svc *service.Service, cfg config.Config) (*Model, error) {
	initializeColors()
	initializeStyles()

	selected := make(map[string]bool)
	for _, path := range svc.DefaultSelection() {
		selected[path] = true
	}

	docs := svc.ListTemplates()
	items := make([]list.Item, len(docs))
	for i, doc := range docs {
		items[i] = templateItem{doc: doc, selected: selected[doc.Path]}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(ColorPrimary).BorderForeground(ColorPrimary)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(ColorTextMuted).BorderForeground(ColorPrimary)

	l := list.New(items, delegate, 0, 0)
	l.Title = "Select templates for your starter kit"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle

	nameInput := textinput.New()
	nameInput.Placeholder = "my-project"
	nameInput.CharLimit = 64
	nameInput.Width = 40

	return &Model{
		service:   svc,
		config:    cfg,
		step:      stepSelect,
		list:      l,
		selected:  selected,
		nameInput: nameInput,
		scaffold:  true,
	}, nil
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.step {
		case stepSelect:
			return m.updateSelect(msg)
		case stepDetails:
			return m.updateDetails(msg)
		case stepDone:
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m *Model) updateSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.previewing {
		switch msg.String() {
		case "esc", "q", "p":
			m.previewing = false
		}
		return m, nil
	}

	// Filtering gets the keystrokes while active
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case " ":
		if item, ok := m.list.SelectedItem().(templateItem); ok {
			m.toggle(item.doc.Path)
		}
		return m, nil
	case "p":
		if item, ok := m.list.SelectedItem().(templateItem); ok {
			m.preview = renderPreview(item.doc.Body, m.width)
			m.previewing = true
		}
		return m, nil
	case "enter":
		if countSelected(m.selected) == 0 {
			return m, nil
		}
		m.step = stepDetails
		m.nameInput.Focus()
		return m, textinput.Blink
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) updateDetails(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.step = stepSelect
		m.nameInput.Blur()
		return m, nil
	case "tab":
		m.scaffold = !m.scaffold
		return m, nil
	case "enter":
		m.buildKit()
		m.step = stepDone
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m *Model) toggle(path string) {
	m.selected[path] = !m.selected[path]

	items := m.list.Items()
	for i, it := range items {
		if item, ok := it.(templateItem); ok && item.doc.Path == path {
			item.selected = m.selected[path]
			m.list.SetItem(i, item)
		}
	}
}

// buildKit resolves the selection and writes the archive
func (m *Model) buildKit() {
	var paths []string
	for _, it := range m.list.Items() {
		if item, ok := it.(templateItem); ok && m.selected[item.doc.Path] {
			paths = append(paths, item.doc.Path)
		}
	}

	req := models.SelectionRequest{
		Paths:           paths,
		IncludeScaffold: m.scaffold,
	}
	if name := strings.TrimSpace(m.nameInput.Value()); name != "" {
		req.Vars = map[string]string{"project_name": name}
		req.KitName = name + "-" + kit.DefaultKitName
	}

	data, result, err := m.service.PackageKit(req)
	if err != nil {
		m.err = err
		return
	}

	kitName := req.KitName
	if kitName == "" {
		kitName = kit.DefaultKitName
	}
	out := filepath.Join(m.config.OutputDir, kitName+".zip")
	if err := os.WriteFile(out, data, 0644); err != nil {
		m.err = err
		return
	}

	m.outPath = out
	m.result = result
}

// View implements tea.Model
func (m *Model) View() string {
	switch m.step {
	case stepSelect:
		return m.viewSelect()
	case stepDetails:
		return m.viewDetails()
	case stepDone:
		return m.viewDone()
	}
	return ""
}

func (m *Model) viewSelect() string {
	if m.previewing {
		return m.preview + "\n" + helpStyle.Render("esc: back")
	}

	footer := helpStyle.Render(fmt.Sprintf(
		"%d selected  •  space: toggle  •  p: preview  •  enter: continue  •  q: quit",
		countSelected(m.selected)))
	return m.list.View() + "\n" + footer
}

func (m *Model) viewDetails() string {
	scaffoldState := "no"
	if m.scaffold {
		scaffoldState = "yes"
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Kit details"),
		"",
		"Project name (used for {{project_name}} placeholders):",
		m.nameInput.View(),
		"",
		fmt.Sprintf("Include AGENTS.md and README.md scaffold: %s", scaffoldState),
		"",
		helpStyle.Render("tab: toggle scaffold  •  enter: build  •  esc: back"),
	)
	return boxStyle.Render(body)
}

func (m *Model) viewDone() string {
	if m.err != nil {
		return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			errorStyle.Render("Build failed"),
			"",
			m.err.Error(),
			"",
			helpStyle.Render("press any key to exit"),
		))
	}

	var lines []string
	lines = append(lines, statusStyle.Render(fmt.Sprintf("Wrote %s", m.outPath)))
	lines = append(lines, "")
	for _, vr := range m.result.Results {
		mark := statusStyle.Render("✓")
		if !vr.Valid {
			mark = errorStyle.Render("✗")
		}
		lines = append(lines, fmt.Sprintf("%s %s (~%d tokens)", mark, vr.Path, vr.TokenEstimate))
		for _, issue := range vr.Issues {
			lines = append(lines, warningStyle.Render("    "+issue.Message))
		}
		if vr.Oversized {
			lines = append(lines, warningStyle.Render("    large template, consider splitting it"))
		}
	}
	lines = append(lines, "", helpStyle.Render("press any key to exit"))
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func countSelected(selected map[string]bool) int {
	n := 0
	for _, on := range selected {
		if on {
			n++
		}
	}
	return n
}

// renderPreview renders markdown for the terminal, falling back to the
// raw text when the renderer fails
func renderPreview(content string, width int) string {
	wrap := width - 4
	if wrap < 40 {
		wrap = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return content
	}
	rendered, err := r.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
