package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/gerunddev/notedoc/internal/convert"
	"github.com/gerunddev/notedoc/internal/diff"
	"github.com/gerunddev/notedoc/internal/notes"
	"github.com/gerunddev/notedoc/internal/stats"
	"github.com/gerunddev/notedoc/internal/styles"
	"github.com/mattn/go-runewidth"
)

const titleWidth = 40

// BrowseData holds the notes shown in the browser
type BrowseData struct {
	Notes []NoteRow
}

// NoteRow is one note with its precomputed statistics
type NoteRow struct {
	ID      string
	ShortID string
	Title   string
	Format  string
	Chars   int
	Minutes int
	Updated time.Time
	Content string
}

// BrowseMsg is sent when browse data is ready
type BrowseMsg struct {
	Data *BrowseData
	Err  error
}

// PreviewMsg is sent when a rendered preview or diff is ready
type PreviewMsg struct {
	Title   string
	Content string
}

type browseMode int

const (
	modeTable browseMode = iota
	modePreview
)

type browseModel struct {
	table        table.Model
	viewport     viewport.Model
	data         *BrowseData
	err          error
	ready        bool
	mode         browseMode
	previewTitle string
	width        int
	height       int
	load         func() (*BrowseData, error)
}

// NewBrowseData builds table rows from notes, newest first
func NewBrowseData(list []*notes.Note, charsPerMinute int) *BrowseData {
	data := &BrowseData{Notes: make([]NoteRow, 0, len(list))}
	for _, n := range list {
		s := stats.ComputeWithRate(n.Content, charsPerMinute)
		data.Notes = append(data.Notes, NoteRow{
			ID:      n.ID.String(),
			ShortID: n.ShortID(),
			Title:   n.Title,
			Format:  n.Format(),
			Chars:   s.CharCount,
			Minutes: s.ReadingMinutes,
			Updated: n.UpdatedAt,
			Content: n.Content,
		})
	}
	return data
}

// InitBrowseModel creates a new note browser model
func InitBrowseModel(load func() (*BrowseData, error)) browseModel {
	columns := []table.Column{
		{Title: "ID", Width: 8},
		{Title: "Title", Width: titleWidth},
		{Title: "Format", Width: 8},
		{Title: "Chars", Width: 7},
		{Title: "Min", Width: 4},
		{Title: "Updated", Width: 16},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(20),
	)

	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(styles.Border)).
		BorderBottom(true).
		Bold(false)
	ts.Selected = ts.Selected.
		Foreground(lipgloss.Color(styles.Background)).
		Background(lipgloss.Color(styles.Yellow)).
		Bold(false)
	t.SetStyles(ts)

	vp := viewport.New(100, 20)
	vp.Style = styles.ViewportStyle

	return browseModel{
		table:    t,
		viewport: vp,
		load:     load,
	}
}

func (m browseModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m browseModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		if m.load == nil {
			return BrowseMsg{Data: &BrowseData{}}
		}
		data, err := m.load()
		return BrowseMsg{Data: data, Err: err}
	}
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(msg.Height - 10)
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - 6

	case tea.KeyMsg:
		if m.mode == modePreview {
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "q", "esc":
				m.mode = modeTable
				return m, nil
			default:
				m.viewport, cmd = m.viewport.Update(msg)
				return m, cmd
			}
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			return m, m.loadCmd()
		case "enter":
			if row := m.selected(); row != nil {
				return m, previewCmd(*row, m.viewport.Width)
			}
			return m, nil
		case "d":
			if row := m.selected(); row != nil {
				return m, diffCmd(*row)
			}
			return m, nil
		default:
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case BrowseMsg:
		m.ready = true
		m.data = msg.Data
		m.err = msg.Err

		if m.data != nil {
			rows := make([]table.Row, 0, len(m.data.Notes))
			for _, n := range m.data.Notes {
				rows = append(rows, table.Row{
					n.ShortID,
					runewidth.Truncate(displayTitle(n.Title), titleWidth, "…"),
					n.Format,
					fmt.Sprintf("%d", n.Chars),
					fmt.Sprintf("%d", n.Minutes),
					humanize.Time(n.Updated),
				})
			}
			m.table.SetRows(rows)
		}
		return m, nil

	case PreviewMsg:
		m.mode = modePreview
		m.previewTitle = msg.Title
		m.viewport.SetContent(msg.Content)
		m.viewport.GotoTop()
		return m, nil
	}

	return m, nil
}

func (m browseModel) selected() *NoteRow {
	if m.data == nil || len(m.data.Notes) == 0 {
		return nil
	}
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.data.Notes) {
		return nil
	}
	return &m.data.Notes[idx]
}

func (m browseModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("notedoc"))
	b.WriteString("\n\n")

	if m.err != nil {
		return styles.ErrorStyle.Render("✗ Error: "+m.err.Error()) + "\n"
	}

	if !m.ready || m.data == nil {
		return b.String()
	}

	switch m.mode {
	case modePreview:
		b.WriteString(styles.LabelStyle.Render(m.previewTitle))
		b.WriteString("\n\n")
		b.WriteString(m.viewport.View())
		b.WriteString("\n\n")
		b.WriteString(styles.HelpStyle.Render("↑/k up • ↓/j down • esc/q back"))
		b.WriteString("\n")
	default:
		b.WriteString(styles.LabelStyle.Render(fmt.Sprintf("Notes: %d", len(m.data.Notes))))
		b.WriteString("\n\n")
		b.WriteString(styles.TableStyle.Render(m.table.View()))
		b.WriteString("\n\n")
		b.WriteString(styles.HelpStyle.Render("↑/k up • ↓/j down • enter preview • d roundtrip diff • r reload • q quit"))
		b.WriteString("\n")
	}

	return b.String()
}

func displayTitle(title string) string {
	if title == "" {
		return "(untitled)"
	}
	return title
}

// previewCmd renders the note as legacy text through glamour
func previewCmd(row NoteRow, width int) tea.Cmd {
	return func() tea.Msg {
		return PreviewMsg{
			Title:   fmt.Sprintf("Preview: %s", displayTitle(row.Title)),
			Content: RenderMarkup(convert.ToMarkup(row.Content), width),
		}
	}
}

// diffCmd shows what an editor round trip would change in the note
func diffCmd(row NoteRow) tea.Cmd {
	return func() tea.Msg {
		content := styles.SuccessStyle.Render("✓ Round trip preserves this note")
		if unified := diff.Roundtrip(row.Content); unified != "" {
			content = diff.Render(unified)
		}
		return PreviewMsg{
			Title:   fmt.Sprintf("Roundtrip diff: %s", displayTitle(row.Title)),
			Content: content,
		}
	}
}

// RenderMarkup renders legacy text for the terminal, falling back to the raw
// text when glamour cannot render it
func RenderMarkup(markup string, width int) string {
	if width <= 0 {
		width = 100
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return markup
	}

	rendered, err := renderer.Render(markup)
	if err != nil {
		return markup
	}
	return rendered
}
