package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"pony/internal/checkin"
	"pony/internal/game"
	"pony/internal/pet"
)

// StatsModel is a simple Bubble Tea model for displaying stats
type StatsModel struct {
	Status game.StatusView
	Week   []checkin.WeekDay
}

// Init implements tea.Model
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, tea.Quit
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model
func (m StatsModel) View() string {
	return renderStatusCard(m.Status, m.Week) + "\nPress ESC, click, or any key to close..."
}

func makeBar(value int) string {
	filled := value / 20
	bar := ""
	for i := 0; i < 5; i++ {
		if i < filled {
			bar += "█"
		} else {
			bar += "░"
		}
	}
	return bar
}

func renderStatusCard(v game.StatusView, week []checkin.WeekDay) string {
	p := v.Pet
	emoji := pet.GetMoodEmoji(v.Mood)

	growth := "Fully grown!"
	if !v.Progress.Complete {
		growth = fmt.Sprintf("%d more to %s", v.Progress.Remaining, v.Progress.NextLabel)
	}

	var days []string
	for _, d := range week {
		mark := "·"
		if d.Checked {
			mark = "✓"
		}
		days = append(days, d.Name[:1]+mark)
	}

	boost := "None"
	if v.BoostMinutes > 0 {
		boost = fmt.Sprintf("%d min left", v.BoostMinutes)
	}

	var s strings.Builder
	s.WriteString("╔════════════════════════════════════╗\n")
	s.WriteString(fmt.Sprintf("║  %s %s %s\n", emoji, p.Name, emoji))
	s.WriteString("╠════════════════════════════════════╣\n")
	s.WriteString(fmt.Sprintf("║  Owner:   %-24s ║\n", v.Owner))
	s.WriteString(fmt.Sprintf("║  Status:  %-24s ║\n", pet.GetStatusWithLabel(p)))
	s.WriteString(fmt.Sprintf("║  Body:    %-24s ║\n", pet.BodyLabel(p.BodyStage)))
	s.WriteString(fmt.Sprintf("║  Coat:    %-24s ║\n", pet.AppearanceLabel(p.AppearanceStage)))
	s.WriteString(fmt.Sprintf("║  Growth:  %-24s ║\n", growth))
	s.WriteString("║                                    ║\n")
	s.WriteString(fmt.Sprintf("║  Hunger:    [%s] %3d%%           ║\n", makeBar(p.Hunger), p.Hunger))
	s.WriteString(fmt.Sprintf("║  Happiness: [%s] %3d%%           ║\n", makeBar(p.Happiness), p.Happiness))
	s.WriteString("║                                    ║\n")
	s.WriteString(fmt.Sprintf("║  Feeds:     %-23d║\n", p.TotalFeedCount))
	s.WriteString(fmt.Sprintf("║  Pats:      %-23d║\n", p.TotalInteractCount))
	s.WriteString(fmt.Sprintf("║  Today:     %-23d║\n", v.TodayInteracts))
	s.WriteString(fmt.Sprintf("║  Streak:    %-23s║\n", fmt.Sprintf("%d days (%d total)", v.Streak, v.TotalDays)))
	if len(days) > 0 {
		s.WriteString(fmt.Sprintf("║  Week:      %s\n", strings.Join(days, " ")))
	}
	s.WriteString(fmt.Sprintf("║  Fragments: %-23d║\n", v.Fragments))
	s.WriteString(fmt.Sprintf("║  Bag:       %-23s║\n", fmt.Sprintf("%d decorations", v.Decorations)))
	s.WriteString(fmt.Sprintf("║  Trophies:  %-23s║\n", fmt.Sprintf("%d/%d", v.Unlocked, v.Achievements)))
	s.WriteString(fmt.Sprintf("║  Boost:     %-23s║\n", boost))
	s.WriteString(fmt.Sprintf("║  Catch:     %-23s║\n", fmt.Sprintf("best %d", v.CatchBest)))
	if f := v.Fortune; f != nil {
		s.WriteString(fmt.Sprintf("║  Fortune:   %-23s║\n", fmt.Sprintf("%d pts, lucky %d", f.Score, f.LuckyNumber)))
	}
	s.WriteString("╚════════════════════════════════════╝\n")

	return s.String()
}

// DisplayStats shows the stats card full screen until a key is pressed
func DisplayStats(s *game.Session) error {
	m := StatsModel{Status: s.Status(), Week: s.Checkins().WeekStatus()}
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("stats display: %w", err)
	}
	return nil
}
