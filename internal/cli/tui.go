package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/algotrace/pkg/catalog"
	"github.com/matzehuels/algotrace/pkg/errors"
	"github.com/matzehuels/algotrace/pkg/playback"
)

var (
	playerMessageStyle = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	playerStateStyle   = lipgloss.NewStyle().Foreground(colorCyan)
	playerPromptStyle  = lipgloss.NewStyle().Foreground(colorBlue)
)

// =============================================================================
// PlayerModel - Interactive trace playback
// =============================================================================

// statusMsg reports a controller change to the bubbletea loop.
type statusMsg playback.Status

// PlayerModel is the bubbletea model for stepping through a trace.
//
// The controller advances on its own scheduler; every change is forwarded
// through a channel that the model drains with a waiting command, so ticks
// arriving from timer goroutines are rendered on the program's goroutine.
type PlayerModel struct {
	Alg    *catalog.Algorithm
	Params map[string]string

	ctrl    *playback.Controller
	changes chan playback.Status
	source  func(map[string]string) playback.Source

	status  playback.Status
	notice  string
	editing bool
	input   string
}

// NewPlayerModel creates a player for alg. source builds the step source
// for a parameter set; it is called again whenever parameters are edited.
func NewPlayerModel(alg *catalog.Algorithm, params map[string]string, source func(map[string]string) playback.Source, opts ...playback.Option) (*PlayerModel, error) {
	m := &PlayerModel{
		Alg:     alg,
		Params:  params,
		changes: make(chan playback.Status, 64),
		source:  source,
	}
	opts = append(opts, playback.WithOnChange(m.forward))
	m.ctrl = playback.New(opts...)
	if err := m.ctrl.SetInput(source(params)); err != nil {
		return nil, err
	}
	m.status = m.ctrl.Status()
	return m, nil
}

// forward drops changes the loop has not consumed yet; the model reads the
// controller's status when it wakes up.
func (m *PlayerModel) forward(st playback.Status) {
	select {
	case m.changes <- st:
	default:
	}
}

func (m *PlayerModel) waitForChange() tea.Cmd {
	return func() tea.Msg {
		return statusMsg(<-m.changes)
	}
}

// Controller returns the playback controller driving the model.
func (m *PlayerModel) Controller() *playback.Controller {
	return m.ctrl
}

func (m *PlayerModel) Init() tea.Cmd {
	return m.waitForChange()
}

func (m *PlayerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statusMsg:
		m.status = m.ctrl.Status()
		return m, m.waitForChange()
	case tea.KeyMsg:
		if m.editing {
			return m, m.edit(msg)
		}
		return m, m.key(msg)
	}
	return m, nil
}

func (m *PlayerModel) key(msg tea.KeyMsg) tea.Cmd {
	var err error
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.ctrl.Close()
		return tea.Quit
	case " ", "p":
		if m.ctrl.State() == playback.Playing {
			err = m.ctrl.Pause()
		} else {
			err = m.ctrl.Play()
		}
	case "right", "l", "n":
		err = m.ctrl.Step()
	case "r":
		err = m.ctrl.Reset()
	case "+", "=":
		err = m.ctrl.SetSpeed(max(m.ctrl.Status().Speed/2, playback.MinSpeed))
	case "-":
		err = m.ctrl.SetSpeed(min(m.ctrl.Status().Speed*2, playback.MaxSpeed))
	case "e":
		m.editing = true
		m.input = ""
		m.notice = ""
		return nil
	default:
		return nil
	}
	m.refresh(err)
	return nil
}

// edit handles keys while the parameter prompt is open. Enter applies
// "name=value"; an invalid value keeps the current trace on screen.
func (m *PlayerModel) edit(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyCtrlC:
		m.editing = false
	case tea.KeyEnter:
		m.editing = false
		m.apply(m.input)
	case tea.KeyBackspace:
		if r := []rune(m.input); len(r) > 0 {
			m.input = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		m.input += " "
	case tea.KeyRunes:
		m.input += string(msg.Runes)
	}
	return nil
}

func (m *PlayerModel) apply(line string) {
	set, err := parseSets([]string{line})
	if err != nil {
		m.refresh(err)
		return
	}
	params := make(map[string]string, len(m.Params)+len(set))
	for k, v := range m.Params {
		params[k] = v
	}
	for k, v := range set {
		params[k] = v
	}
	err = m.ctrl.SetInput(m.source(params))
	if err == nil {
		m.Params = params
	}
	m.refresh(err)
}

func (m *PlayerModel) refresh(err error) {
	m.status = m.ctrl.Status()
	m.notice = ""
	if err != nil {
		m.notice = errors.UserMessage(err)
	}
}

func (m *PlayerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Alg.Title))
	b.WriteString("  ")
	b.WriteString(playerStateStyle.Render(m.statusLine()))
	b.WriteString("\n\n")

	step, ok := m.ctrl.Current()
	line := 0
	if ok {
		line = step.Line
	}
	b.WriteString(renderListing(m.Alg.Listing, line))
	b.WriteString("\n")

	if ok {
		b.WriteString(playerMessageStyle.Render(step.Message))
		b.WriteString("\n\n")
		b.WriteString(renderStep(step))
		b.WriteString("\n")
	}

	if m.notice != "" {
		b.WriteString("\n" + styleIconError.Render(iconError) + " " + m.notice + "\n")
	}
	b.WriteString("\n")
	if m.editing {
		b.WriteString(playerPromptStyle.Render("set name=value: ") + m.input + "█\n")
		b.WriteString(StyleDim.Render("enter apply  esc cancel"))
	} else {
		b.WriteString(StyleDim.Render("space play/pause  → step  r reset  +/- speed  e edit input  q quit"))
	}
	return b.String()
}

func (m *PlayerModel) statusLine() string {
	st := m.status
	if st.Len == 0 {
		return st.State.String()
	}
	return fmt.Sprintf("step %d/%d · %s · %s", st.Index, st.Len-1, st.State, st.Speed.Round(time.Millisecond))
}
