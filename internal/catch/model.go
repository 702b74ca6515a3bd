package catch

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	tickInterval = 70 * time.Millisecond
	maxLanes     = 12
	maxRows      = 16
)

var (
	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#FF75B5"))
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF75B5"))
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

var itemGlyphs = map[Kind]string{
	Hay:       "🌾",
	GoldenHay: "🌟",
	Bomb:      "💣",
}

const (
	ponyGlyph  = "🐴"
	emptyGlyph = "  "
)

// FinishedMsg is sent once when the round ends
type FinishedMsg struct {
	Result Result
}

type tickMsg struct {
	started time.Time
}

// Model is the Bubble Tea model for one round
type Model struct {
	Game       *Game
	TermWidth  int
	TermHeight int

	// Standalone quits the program when the round ends
	Standalone bool

	started time.Time
	done    bool
}

// New starts a round. The board is sized on the first resize event.
func New(rng Rand) Model {
	return Model{
		Game:    NewGame(minLanes, minRows, rng),
		started: time.Now(),
	}
}

func tick(started time.Time) tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return tickMsg{started: started}
	})
}

// Done reports whether the round has ended
func (m Model) Done() bool {
	return m.done
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tick(m.started)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.done {
			return m, nil
		}
		switch msg.String() {
		case "left", "h", "a":
			m.Game.Move(-1)
		case "right", "l", "d":
			m.Game.Move(1)
		case "esc", "q", "ctrl+c":
			return m.finish()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.TermWidth = msg.Width
		m.TermHeight = msg.Height
		m.Game.Resize(m.boardSize())
		return m, nil

	case tickMsg:
		// Ignore ticks from an earlier round
		if m.done || !m.started.Equal(msg.started) {
			return m, nil
		}
		if m.TermWidth == 0 || m.TermHeight == 0 {
			return m, tick(m.started)
		}

		m.Game.Step()
		if m.Game.Over {
			return m.finish()
		}
		return m, tick(m.started)

	case FinishedMsg:
		if m.Standalone {
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m Model) finish() (Model, tea.Cmd) {
	m.done = true
	result := m.Game.Result()
	return m, func() tea.Msg {
		return FinishedMsg{Result: result}
	}
}

// boardSize fits the board inside the terminal, leaving room for the
// header, border and help line. Each lane is two columns wide.
func (m Model) boardSize() (int, int) {
	lanes := min((m.TermWidth-4)/2, maxLanes)
	rows := min(m.TermHeight-6, maxRows)
	return lanes, rows
}

// View implements tea.Model
func (m Model) View() string {
	g := m.Game

	header := headerStyle.Render(fmt.Sprintf(
		"Score: %d   Lives: %s   Combo: %d",
		g.Score, strings.Repeat("❤️ ", g.Lives), g.Combo,
	))

	grid := make([][]string, g.Rows)
	for y := range grid {
		grid[y] = make([]string, g.Lanes)
		for x := range grid[y] {
			grid[y][x] = emptyGlyph
		}
	}
	for _, it := range g.Items {
		y := int(it.Y)
		if y >= 0 && y < g.Rows-1 {
			grid[y][it.Lane] = itemGlyphs[it.Kind]
		}
	}
	grid[g.Rows-1][g.Pony] = ponyGlyph

	var b strings.Builder
	for y, row := range grid {
		b.WriteString(strings.Join(row, ""))
		if y < len(grid)-1 {
			b.WriteString("\n")
		}
	}

	footer := "←/→ move • q end round"
	if m.done {
		res := g.Result()
		footer = fmt.Sprintf("Round over! Score %d, max combo %d, +%d fragments",
			res.Score, res.MaxCombo, res.Fragments)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		boardStyle.Render(b.String()),
		helpStyle.Render(footer),
	)
}

// Run plays one round full screen and returns its result
func Run(rng Rand) (Result, error) {
	m := New(rng)
	m.Standalone = true

	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return Result{}, fmt.Errorf("catch: %w", err)
	}
	return final.(Model).Game.Result(), nil
}
