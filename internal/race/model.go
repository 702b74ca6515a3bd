package race

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	tickInterval = 100 * time.Millisecond
	trackCells   = 28
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF75B5"))
	trackStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#FF75B5")).
			Padding(0, 1)
	pickStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFD700"))
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// FinishedMsg is sent when the player leaves the track. Balance is the
// absolute fragment count the player walks away with.
type FinishedMsg struct {
	Balance int
}

type tickMsg struct {
	started time.Time
}

// Model is the Bubble Tea model for the race track
type Model struct {
	Race    *Race
	Message string

	// Standalone quits the program when the player leaves
	Standalone bool

	betStep int
	started time.Time
	done    bool
}

// NewModel opens the betting window for a player holding balance fragments
func NewModel(balance int, rng Rand) Model {
	m := Model{Race: New(balance, rng)}
	m.placeBet()
	return m
}

func tick(started time.Time) tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return tickMsg{started: started}
	})
}

// Done reports whether the player has left
func (m Model) Done() bool {
	return m.done
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.done {
			return m, nil
		}
		return m.handleKey(msg)

	case tickMsg:
		// Ignore ticks from an earlier race
		if m.done || m.Race.Phase != Racing || !m.started.Equal(msg.started) {
			return m, nil
		}
		m.Race.Step(tickInterval.Seconds())
		if m.Race.Phase == Finished {
			m.Message = m.resultText()
			return m, nil
		}
		return m, tick(m.started)

	case FinishedMsg:
		if m.Standalone {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m.finish()
	}

	switch m.Race.Phase {
	case Betting:
		switch key {
		case "1", "2", "3", "4":
			m.choose(int(key[0] - '1'))
		case "up", "k":
			m.choose(max(m.Race.Pick-1, 0))
		case "down", "j":
			m.choose(min(m.Race.Pick+1, len(m.Race.Horses)-1))
		case "left", "h":
			m.betStep = (m.betStep + len(BetSteps) - 1) % len(BetSteps)
			m.placeBet()
		case "right", "l":
			m.betStep = (m.betStep + 1) % len(BetSteps)
			m.placeBet()
		case "enter", " ":
			if err := m.Race.Start(); err != nil {
				m.Message = err.Error()
				return m, nil
			}
			m.Message = ""
			m.started = time.Now()
			return m, tick(m.started)
		case "esc", "q":
			return m.finish()
		}

	case Finished:
		switch key {
		case "enter", " ", "r":
			m.Race.Reset()
			m.Message = ""
			m.placeBet()
		case "esc", "q":
			return m.finish()
		}
	}
	return m, nil
}

func (m *Model) choose(i int) {
	if err := m.Race.Choose(i); err != nil {
		m.Message = err.Error()
		return
	}
	m.Message = ""
}

// placeBet applies the selected bet step, falling back to no bet when the
// balance does not cover it
func (m *Model) placeBet() {
	err := m.Race.PlaceBet(BetSteps[m.betStep])
	switch {
	case errors.Is(err, ErrBetTooHigh), errors.Is(err, ErrNoBet):
		m.Race.Bet = 0
		m.Message = fmt.Sprintf("You only have %d fragments", m.Race.Balance)
	case err != nil:
		m.Message = err.Error()
	default:
		m.Message = ""
	}
}

func (m Model) finish() (Model, tea.Cmd) {
	m.done = true
	balance := m.Race.Balance
	return m, func() tea.Msg {
		return FinishedMsg{Balance: balance}
	}
}

func (m Model) resultText() string {
	r := m.Race
	winner := r.Horses[r.Winner]
	if r.Won() {
		return fmt.Sprintf("🏆 %s %s won! You get %d fragments", winner.Emoji, winner.Name, r.Payout())
	}
	return fmt.Sprintf("%s %s won. Better luck next time", winner.Emoji, winner.Name)
}

// View implements tea.Model
func (m Model) View() string {
	r := m.Race

	var lanes []string
	for i, h := range r.Horses {
		cell := min(int(h.Progress()*trackCells), trackCells-1)
		lane := strings.Repeat("·", cell) + h.Emoji + strings.Repeat("·", trackCells-1-cell) + "🏁"
		line := fmt.Sprintf("%d %-9s x%.1f  %s", i+1, h.Name, h.Odds, lane)
		if i == r.Pick {
			line = pickStyle.Render(line)
		}
		lanes = append(lanes, line)
	}

	bet := "none"
	if r.Bet > 0 {
		bet = fmt.Sprintf("%d 🧩", r.Bet)
	}
	header := titleStyle.Render(fmt.Sprintf("🏇 Horse Race   Fragments: %d   Bet: %s", r.Balance, bet))

	help := "1-4 pick a horse • ←/→ bet size • enter to race • q to leave"
	switch r.Phase {
	case Racing:
		help = "And they're off!"
	case Finished:
		help = "enter to race again • q to leave"
	}

	sections := []string{header, trackStyle.Render(strings.Join(lanes, "\n"))}
	if m.Message != "" {
		sections = append(sections, m.Message)
	}
	sections = append(sections, helpStyle.Render(help))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Run plays the race full screen and returns the balance the player left with
func Run(balance int, rng Rand) (int, error) {
	m := NewModel(balance, rng)
	m.Standalone = true

	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return balance, fmt.Errorf("race: %w", err)
	}
	return final.(Model).Race.Balance, nil
}
