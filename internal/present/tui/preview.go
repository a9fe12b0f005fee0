// Package tui implements the interactive README preview: a viewport over
// the glamour-rendered markdown with audience switching, clipboard copy,
// and file export bound to single keys.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/mithrel/readmekit/internal/export"
	"github.com/mithrel/readmekit/internal/markdown"
	"github.com/mithrel/readmekit/pkg/api"
)

type Options struct {
	View       api.ViewMode
	Style      string
	WordWrap   int
	ExportDir  string
	ExportName string
}

// RenderPreview opens the full-screen preview for doc.
func RenderPreview(ctx context.Context, doc api.Document, opts Options) error {
	if opts.Style == "" {
		opts.Style = "dracula"
	}
	if opts.WordWrap <= 0 {
		opts.WordWrap = 80
	}
	if opts.ExportName == "" {
		opts.ExportName = "README.md"
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	m := model{
		doc:  doc,
		opts: opts,
		view: opts.View,
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

const copiedTTL = 2 * time.Second

type copyResultMsg struct{ err error }
type copiedExpiredMsg struct{}
type exportResultMsg struct {
	path string
	err  error
}

type model struct {
	doc      api.Document
	opts     Options
	view     api.ViewMode
	viewport viewport.Model
	copied   bool
	status   string
	width    int
	height   int
	ready    bool
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-1)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 1
		}
		m.viewport.SetContent(m.renderContent())
		return m, nil

	case copyResultMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("copy failed: %v", msg.err)
			return m, nil
		}
		m.copied = true
		m.status = ""
		return m, tea.Tick(copiedTTL, func(time.Time) tea.Msg { return copiedExpiredMsg{} })

	case copiedExpiredMsg:
		m.copied = false
		return m, nil

	case exportResultMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("export failed: %v", msg.err)
		} else {
			m.status = "wrote " + msg.path
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "v":
			m.view = nextView(m.view)
			m.status = ""
			if m.ready {
				m.viewport.SetContent(m.renderContent())
				m.viewport.GotoTop()
			}
			return m, nil
		case "c":
			md := m.generate()
			return m, func() tea.Msg { return copyResultMsg{err: export.Clipboard(md)} }
		case "e":
			md := m.generate()
			dir, name := m.opts.ExportDir, m.opts.ExportName
			return m, func() tea.Msg {
				path, err := export.WriteFile(dir, name, md)
				return exportResultMsg{path: path, err: err}
			}
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if !m.ready {
		return "loading preview..."
	}
	return m.viewport.View() + "\n" + m.statusBar()
}

func (m model) generate() string {
	return markdown.Generate(api.Filter(m.doc.Elements, m.view))
}

func (m model) renderContent() string {
	md := m.generate()
	wrap := m.opts.WordWrap
	if m.width > 0 && m.width < wrap {
		wrap = m.width
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(m.opts.Style),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

var (
	barStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	copiedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
)

func (m model) statusBar() string {
	left := barStyle.Render(fmt.Sprintf("%s [%s]", m.doc.Name, m.view))
	hint := "v: view • c: copy • e: export • q: quit"
	if m.copied {
		hint = copiedStyle.Render("copied to clipboard")
	} else if m.status != "" {
		hint = m.status
	}
	return left + " " + hint
}

// nextView cycles developer -> recruiter -> client -> developer.
func nextView(v api.ViewMode) api.ViewMode {
	for i, mode := range api.ViewModes {
		if mode == v {
			return api.ViewModes[(i+1)%len(api.ViewModes)]
		}
	}
	return api.ViewModes[0]
}
