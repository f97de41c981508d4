// Package tui is a terminal frontend for the quiz built on bubbletea.
// It drives the same quiz.Selector and quiz.Session as the desktop game.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/decker502/carquiz/pkg/quiz"
)

// Screen is the view the model is showing.
type Screen int

const (
	ScreenSelect Screen = iota
	ScreenPlay
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	maxLogoCols   = 60
	maxLogoRows   = 14
	answerLimit   = 64
)

// dialog is a modal message; any of enter or esc dismisses it.
type dialog struct {
	title   string
	body    string
	onClose func(m *Model)
}

// Model is the root bubbletea model.
type Model struct {
	catalog *quiz.Catalog
	log     *zap.Logger
	keys    KeyMap

	screen       Screen
	difficulties []quiz.Difficulty
	cursor       int // -1 until the player picks a difficulty
	selector     *quiz.Selector

	session     *quiz.Session
	input       textinput.Model
	reveal      string
	lastCorrect bool

	dialog  *dialog
	results []quiz.Result // finished games of this run, oldest first

	width, height int
}

// NewModel creates the model on the difficulty selector.
func NewModel(catalog *quiz.Catalog, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}
	ti := textinput.New()
	ti.Placeholder = "brand name"
	ti.CharLimit = answerLimit
	ti.Width = 40
	ti.Prompt = "> "

	return Model{
		catalog:      catalog,
		log:          log.Named("tui"),
		keys:         DefaultKeyMap(),
		screen:       ScreenSelect,
		difficulties: quiz.Difficulties(),
		cursor:       -1,
		selector:     quiz.NewSelector(),
		input:        ti,
		width:        defaultWidth,
		height:       defaultHeight,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Screen returns the current view.
func (m Model) Screen() Screen { return m.screen }

// Session returns the running session, or nil.
func (m Model) Session() *quiz.Session { return m.session }

// Results returns the finished games of this run.
func (m Model) Results() []quiz.Result { return m.results }

// DialogText returns the open dialog's title and body.
func (m Model) DialogText() (string, string, bool) {
	if m.dialog == nil {
		return "", "", false
	}
	return m.dialog.title, m.dialog.body, true
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.dialog != nil {
			if key.Matches(msg, m.keys.Enter, m.keys.Escape) {
				d := m.dialog
				m.dialog = nil
				if d.onClose != nil {
					d.onClose(&m)
				}
			}
			return m, nil
		}
		switch m.screen {
		case ScreenSelect:
			return m.updateSelect(msg)
		case ScreenPlay:
			return m.updatePlay(msg)
		}
	}
	return m, nil
}

func (m Model) updateSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(m.difficulties)
	switch {
	case key.Matches(msg, m.keys.Leave, m.keys.Escape):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor <= 0 {
			m.pick(n - 1)
		} else {
			m.pick(m.cursor - 1)
		}
	case key.Matches(msg, m.keys.Down):
		m.pick((m.cursor + 1) % n)
	case key.Matches(msg, m.keys.Easy):
		m.pick(0)
	case key.Matches(msg, m.keys.Normal):
		m.pick(1)
	case key.Matches(msg, m.keys.Hard):
		m.pick(2)
	case key.Matches(msg, m.keys.Enter):
		return m.start()
	}
	return m, nil
}

func (m *Model) pick(i int) {
	if i < 0 || i >= len(m.difficulties) {
		return
	}
	m.cursor = i
	if err := m.selector.Select(m.difficulties[i]); err != nil {
		m.log.Warn("invalid difficulty", zap.Error(err))
	}
}

func (m Model) start() (tea.Model, tea.Cmd) {
	session, err := m.selector.Start(m.catalog)
	if err != nil {
		m.log.Info("cannot start game", zap.Error(err))
		m.dialog = &dialog{title: "Error", body: quiz.UserMessage(err)}
		return m, nil
	}
	m.session = session
	m.screen = ScreenPlay
	m.reveal = ""
	m.input.Reset()
	cmd := m.input.Focus()
	m.log.Info("game started", zap.String("difficulty", string(session.Difficulty())), zap.Int("images", session.Total()))
	return m, cmd
}

func (m Model) updatePlay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.log.Info("game abandoned", zap.Int("answered", m.session.Index()), zap.Int("total", m.session.Total()))
		m.backToSelector()
		return m, nil
	case key.Matches(msg, m.keys.Enter):
		m.submit()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) submit() {
	ans, err := m.session.Submit(m.input.Value())
	if err != nil {
		m.log.Warn("submit rejected", zap.Error(err))
		return
	}
	m.reveal = "Correct Answer: " + ans.Expected
	m.lastCorrect = ans.Correct
	m.input.Reset()

	if !m.session.Finished() {
		return
	}
	res, err := m.session.Result()
	if err != nil {
		m.log.Error("finished session has no result", zap.Error(err))
		m.backToSelector()
		return
	}
	m.log.Info("game over", zap.Int("correct", res.Correct), zap.Int("total", res.Total))
	m.input.Blur()
	m.dialog = &dialog{
		title: "Game Over",
		body:  res.Summary(),
		onClose: func(m *Model) {
			m.results = append(m.results, res)
			m.backToSelector()
		},
	}
}

// backToSelector drops the session and shows a fresh selector.
func (m *Model) backToSelector() {
	m.session = nil
	m.screen = ScreenSelect
	m.selector = quiz.NewSelector()
	m.cursor = -1
	m.reveal = ""
	m.input.Reset()
	m.input.Blur()
}

// View implements tea.Model.
func (m Model) View() string {
	var body string
	switch m.screen {
	case ScreenPlay:
		body = m.viewPlay()
	default:
		body = m.viewSelect()
	}
	if m.dialog != nil {
		body = lipgloss.JoinVertical(lipgloss.Left, body, "", m.viewDialog())
	}
	return body
}

func (m Model) viewSelect() string {
	var sb strings.Builder
	sb.WriteString(TitleStyle.Render("GAME - guess the car brand"))
	sb.WriteString("\n")
	sb.WriteString("Select the game difficulty level:\n")
	for i, d := range m.difficulties {
		mark := "( )"
		style := OptionStyle
		if i == m.cursor {
			mark = "(•)"
			style = SelectedOptionStyle
		}
		label := fmt.Sprintf("%s %s  [%d images]", mark, d.Title(), m.catalog.Len(d))
		sb.WriteString(style.Render(label))
		sb.WriteString("\n")
	}
	if n := len(m.results); n > 0 {
		last := m.results[n-1]
		sb.WriteString(HelpStyle.Render(fmt.Sprintf("Last game: %s %d/%d (%s%%)", last.Difficulty.Title(), last.Correct, last.Total, last.AccuracyText())))
		sb.WriteString("\n")
	}
	sb.WriteString(HelpStyle.Render("1/2/3 or ↑/↓ choose • enter start game • q quit"))
	return sb.String()
}

func (m Model) viewPlay() string {
	s := m.session
	var parts []string
	parts = append(parts, TitleStyle.Render(s.Difficulty().WindowTitle()))

	i := min(s.Index()+1, s.Total())
	parts = append(parts, fmt.Sprintf("Image %d of %d", i, s.Total()))

	if entry, ok := s.Current(); ok {
		cols := min(maxLogoCols, max(1, m.width-4))
		rows := min(maxLogoRows, max(1, m.height-12))
		parts = append(parts, LogoFrameStyle.Render(RenderLogo(entry.Image, cols, rows)))
	}

	if m.reveal != "" {
		style := WrongStyle
		if m.lastCorrect {
			style = CorrectStyle
		}
		parts = append(parts, style.Render(m.reveal))
	}
	parts = append(parts, m.input.View())
	parts = append(parts, HelpStyle.Render("enter submit answer • esc back to menu"))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewDialog() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		DialogTitleStyle.Render(m.dialog.title),
		m.dialog.body,
		HelpStyle.Render("enter OK"),
	)
	return DialogStyle.Render(content)
}
