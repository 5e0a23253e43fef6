// Package tui is the interactive front end: a keyword search box, the loaded
// postings on the left, and listing/analysis output on the right. It talks
// only to the assistant's rendering boundary (result text plus titles).
package tui

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dpatel512/jobdeck/internal/assistant"
	"github.com/dpatel512/jobdeck/internal/prompt"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Padding(1, 0, 1, 2)

	activeBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("39"))

	inactiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	activeHeaderStyle = headerStyle.
				Foreground(lipgloss.Color("39"))

	inactiveHeaderStyle = headerStyle.
				Foreground(lipgloss.Color("240"))

	statusBarStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236"))

	itemStyle = lipgloss.NewStyle()

	selectedItemStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("24"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true)

	offlineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

type inputMode int

const (
	inputNone inputMode = iota
	inputKeyword
	inputSkills
)

// postingsLoadedMsg is sent when an async search completes.
type postingsLoadedMsg struct {
	text   string
	titles []string
}

// outputMsg is sent when an async analysis/recommendation/tips call completes.
type outputMsg struct {
	text string
}

type spinnerTickMsg struct{}

type browseModel struct {
	assist  *assistant.Assistant
	perPage int
	online  bool // advisory backend probe result at startup

	input      textinput.Model
	inputMode  inputMode
	listTitles []string
	cursor     int
	output     viewport.Model
	outputText string
	activePane int // 0=list, 1=output
	busy       bool
	busyLabel  string
	frame      int
	width      int
	height     int
	ready      bool
}

func newBrowseModel(assist *assistant.Assistant, perPage int, online bool) browseModel {
	in := textinput.New()
	in.Placeholder = "e.g. finance, technology"
	in.CharLimit = 120
	in.Focus()

	return browseModel{
		assist:    assist,
		perPage:   perPage,
		online:    online,
		input:     in,
		inputMode: inputKeyword,
	}
}

func (m browseModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m browseModel) tick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(time.Time) tea.Msg {
		return spinnerTickMsg{}
	})
}

func (m browseModel) searchCmd(keyword string) tea.Cmd {
	assist := m.assist
	perPage := m.perPage
	return func() tea.Msg {
		text, titles := assist.LoadPostings(context.Background(), keyword, perPage)
		return postingsLoadedMsg{text: text, titles: titles}
	}
}

func (m browseModel) analyzeCmd(title string, kind prompt.Kind) tea.Cmd {
	assist := m.assist
	return func() tea.Msg {
		return outputMsg{text: assist.AnalyzeJob(context.Background(), title, kind)}
	}
}

func (m browseModel) recommendCmd(skills string) tea.Cmd {
	assist := m.assist
	return func() tea.Msg {
		return outputMsg{text: assist.RecommendFromSkills(context.Background(), skills)}
	}
}

func (m browseModel) tipsCmd(title string) tea.Cmd {
	assist := m.assist
	return func() tea.Msg {
		return outputMsg{text: assist.ResumeTips(context.Background(), title)}
	}
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.recalcLayout()
		return m, nil

	case spinnerTickMsg:
		if !m.busy {
			return m, nil
		}
		m.frame = (m.frame + 1) % len(spinnerFrames)
		return m, m.tick()

	case postingsLoadedMsg:
		m.busy = false
		m.listTitles = msg.titles
		m.cursor = 0
		m.setOutput(msg.text)
		return m, nil

	case outputMsg:
		m.busy = false
		m.setOutput(msg.text)
		return m, nil

	case tea.KeyMsg:
		if m.inputMode != inputNone {
			return m.updateInput(msg)
		}
		return m.updateBrowse(msg)
	}

	return m, nil
}

func (m browseModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		// Escape only makes sense once something is loaded to go back to.
		if len(m.listTitles) > 0 || m.outputText != "" {
			m.inputMode = inputNone
			m.input.Blur()
		}
		return m, nil
	case "enter":
		value := strings.TrimSpace(m.input.Value())
		if value == "" {
			return m, nil
		}
		mode := m.inputMode
		m.inputMode = inputNone
		m.input.Blur()
		m.input.SetValue("")
		m.busy = true
		if mode == inputSkills {
			m.busyLabel = "generating recommendations"
			return m, tea.Batch(m.recommendCmd(value), m.tick())
		}
		m.busyLabel = fmt.Sprintf("searching %q", value)
		return m, tea.Batch(m.searchCmd(value), m.tick())
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m browseModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "/":
		m.inputMode = inputKeyword
		m.input.Placeholder = "e.g. finance, technology"
		m.input.Focus()
		return m, textinput.Blink
	case "k":
		if m.activePane == 0 {
			m.moveCursor(-1)
			return m, nil
		}
	case "j":
		if m.activePane == 0 {
			m.moveCursor(1)
			return m, nil
		}
	case "up":
		if m.activePane == 0 {
			m.moveCursor(-1)
			return m, nil
		}
	case "down":
		if m.activePane == 0 {
			m.moveCursor(1)
			return m, nil
		}
	case "tab":
		m.activePane = 1 - m.activePane
		return m, nil
	case "s":
		m.inputMode = inputSkills
		m.input.Placeholder = "e.g. Python, Excel, data analysis"
		m.input.Focus()
		return m, textinput.Blink
	case "1", "2", "3":
		if m.busy || len(m.listTitles) == 0 {
			return m, nil
		}
		kind := prompt.JobKinds[int(msg.String()[0]-'1')]
		m.busy = true
		m.busyLabel = fmt.Sprintf("running %s analysis", kind)
		return m, tea.Batch(m.analyzeCmd(m.selectedTitle(), kind), m.tick())
	case "t":
		if m.busy || len(m.listTitles) == 0 {
			return m, nil
		}
		m.busy = true
		m.busyLabel = "generating resume tips"
		return m, tea.Batch(m.tipsCmd(m.selectedTitle()), m.tick())
	case "o":
		if rec, ok := m.assist.Catalog().LookupByTitle(m.selectedTitle()); ok && rec.HasURL() {
			openURL(rec.URL)
		}
		return m, nil
	}

	if m.activePane == 1 {
		var cmd tea.Cmd
		m.output, cmd = m.output.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *browseModel) moveCursor(delta int) {
	if len(m.listTitles) == 0 {
		return
	}
	m.cursor = clamp(m.cursor+delta, 0, len(m.listTitles)-1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (m *browseModel) setOutput(text string) {
	m.outputText = text
	if m.ready {
		m.output.SetContent(text)
		m.output.SetYOffset(0)
	}
}

func (m browseModel) selectedTitle() string {
	if m.cursor >= 0 && m.cursor < len(m.listTitles) {
		return m.listTitles[m.cursor]
	}
	return ""
}

func (m *browseModel) recalcLayout() {
	listWidth := max(m.width/3, 24)
	outputWidth := max(m.width-listWidth-5, 20)
	paneHeight := max(m.height-6, 5)

	if !m.ready {
		m.output = viewport.New(outputWidth, paneHeight)
		m.ready = true
	} else {
		m.output.Width = outputWidth
		m.output.Height = paneHeight
	}
	m.output.SetContent(m.outputText)
}

func (m browseModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	header := titleStyle.Render("jobdeck — AI job search assistant")
	if !m.online {
		header += offlineStyle.Render("  generation backend offline — analysis will report errors")
	}

	if m.inputMode != inputNone {
		label := "Search keyword"
		hint := "enter search  ctrl+c quit"
		if m.inputMode == inputSkills {
			label = "Your skills"
			hint = "enter recommend  esc back  ctrl+c quit"
		} else if len(m.listTitles) > 0 {
			hint = "enter search  esc back  ctrl+c quit"
		}
		return header + "\n" +
			headerStyle.Render(label) + "\n\n  " +
			m.input.View() + "\n\n" +
			hintStyle.Render("  "+hint) + "\n"
	}

	listWidth := max(m.width/3, 24)
	paneHeight := max(m.height-6, 5)

	var listHeader, outputHeader string
	var listBorder, outputBorder lipgloss.Style
	if m.activePane == 0 {
		listHeader = activeHeaderStyle.Render(fmt.Sprintf(" Postings (%d)", len(m.listTitles)))
		outputHeader = inactiveHeaderStyle.Render(" Output")
		listBorder = activeBorderStyle
		outputBorder = inactiveBorderStyle
	} else {
		listHeader = inactiveHeaderStyle.Render(fmt.Sprintf(" Postings (%d)", len(m.listTitles)))
		outputHeader = activeHeaderStyle.Render(" Output")
		listBorder = inactiveBorderStyle
		outputBorder = activeBorderStyle
	}

	listPane := listBorder.Width(listWidth).Height(paneHeight).Render(m.renderList(listWidth, paneHeight))
	outputPane := outputBorder.Width(m.output.Width).Render(m.output.View())

	headerRow := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(listWidth+2).Render(listHeader),
		" ",
		outputHeader,
	)
	panes := lipgloss.JoinHorizontal(lipgloss.Top, listPane, " ", outputPane)

	status := " / search  s skills  1 summary  2 qualifications  3 salary  t resume tips  o open URL  tab pane  q quit"
	if m.busy {
		status = fmt.Sprintf(" %s %s...", spinnerFrames[m.frame], m.busyLabel)
	}
	statusBar := statusBarStyle.Width(m.width).Render(status)

	return header + "\n" + headerRow + "\n" + panes + "\n" + statusBar
}

func (m browseModel) renderList(width, height int) string {
	if len(m.listTitles) == 0 {
		return hintStyle.Render("  (no postings — press / to search)")
	}

	var b strings.Builder
	for i, title := range m.listTitles {
		st := itemStyle
		prefix := "  "
		if i == m.cursor {
			st = selectedItemStyle
			prefix = "> "
		}
		b.WriteString(prefix + st.Render(truncate(title, width-4)) + "\n")
	}
	return b.String()
}

func truncate(s string, width int) string {
	if width < 4 || len(s) <= width {
		return s
	}
	return s[:width-1] + "…"
}

// openURL opens url in the default system browser, fire-and-forget.
func openURL(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	default:
		return
	}
	_ = cmd.Start()
}

// Run launches the interactive browse TUI. online is the startup result of
// the generation backend probe, shown as an advisory banner only.
func Run(assist *assistant.Assistant, perPage int, online bool) error {
	m := newBrowseModel(assist, perPage, online)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
