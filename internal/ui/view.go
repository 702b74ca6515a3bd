package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pony/internal/decoration"
	"pony/internal/game"
	"pony/internal/interaction"
	"pony/internal/pet"
)

var gameStyles = struct {
	title   lipgloss.Style
	status  lipgloss.Style
	menu    lipgloss.Style
	menuBox lipgloss.Style
	stats   lipgloss.Style
	dim     lipgloss.Style
	warn    lipgloss.Style
}{
	title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF75B5")).
		Padding(0, 1),

	status: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF75B5")).
		Width(50),

	stats: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF75B5")).
		Width(40),

	menu: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF75B5")),

	menuBox: lipgloss.NewStyle().
		Padding(0, 2),

	dim: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#626262")),

	warn: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF0000")),
}

// View implements tea.Model
func (m Model) View() string {
	if m.Quitting {
		return "Thanks for playing!\n"
	}

	switch m.Screen {
	case screenAdopt:
		return m.adoptView()
	case screenCatch:
		return m.Catch.View()
	case screenRace:
		return m.Race.View()
	case screenBag:
		return m.bagView()
	case screenCraft:
		return m.craftView()
	case screenAchievements:
		return m.achievementsView()
	case screenAssist:
		return m.assistView()
	case screenStatus:
		return lipgloss.JoinVertical(lipgloss.Left,
			renderStatusCard(m.Session.Status(), m.Session.Checkins().WeekStatus()),
			gameStyles.dim.Render("Press any key to go back"),
		)
	case screenConfirmReset:
		return m.resetView()
	}

	// Show animation if one is active
	if m.Animation.Type != AnimNone {
		return m.renderAnimation()
	}

	p := m.Session.Pet()
	sections := []string{
		m.renderTitle(p),
		"",
		gameStyles.menuBox.Render(IdleFrames[m.IdleFrame%len(IdleFrames)]),
		"",
		m.renderStats(p),
		"",
		gameStyles.status.Render("Status: " + pet.GetStatusWithLabel(p)),
	}

	if boost := m.Session.Assists().BoostMinutes(); boost > 0 {
		sections = append(sections, gameStyles.status.Render(fmt.Sprintf("⚡ Friend boost: %d min left", boost)))
	}

	if msg := m.renderMessage(); msg != "" {
		sections = append(sections, "", msg)
	}

	sections = append(sections,
		"",
		m.renderMenu(),
		"",
		gameStyles.dim.Render("Use arrows to move • enter to select • q to quit"),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderTitle(p pet.Pet) string {
	emoji := pet.GetMoodEmoji(p.GetMood())
	return gameStyles.title.Render(emoji + " " + p.Name + " " + emoji)
}

func (m Model) renderMessage() string {
	if m.Message == "" || !m.now().Before(m.MessageExpires) {
		return ""
	}
	return gameStyles.status.Render(m.Message)
}

func (m Model) renderStats(p pet.Pet) string {
	worn := "None"
	if len(p.Decorations) > 0 {
		var names []string
		for _, id := range p.Decorations {
			if d, ok := decoration.Info(id); ok {
				names = append(names, d.Emoji)
			}
		}
		worn = strings.Join(names, " ")
	}

	stats := []struct {
		name, value string
	}{
		{"Hunger", fmt.Sprintf("%d%%", p.Hunger)},
		{"Happiness", fmt.Sprintf("%d%%", p.Happiness)},
		{"Body", pet.BodyLabel(p.BodyStage)},
		{"Coat", pet.AppearanceLabel(p.AppearanceStage)},
		{"Wearing", worn},
		{"Fragments", fmt.Sprintf("%d", m.Session.Fragments().Count())},
	}

	var lines []string
	for _, stat := range stats {
		lines = append(lines, fmt.Sprintf("%-10s %s", stat.name+":", stat.value))
	}

	return gameStyles.stats.Render(strings.Join(lines, "\n"))
}

func (m Model) renderMenu() string {
	var menuItems []string

	for i, choice := range mainMenu {
		cursor := " "
		if m.Choice == i {
			cursor = ">"
		}
		if a, ok := menuActions[i]; ok {
			if left := m.Session.Tracker().Remaining(a); left > 0 {
				choice = fmt.Sprintf("%s (%ds)", choice, interaction.RemainingSeconds(left))
			}
		}
		if choice == "Check in" && m.Session.Checkins().CanCheckin() {
			choice += " ✨"
		}
		menuItems = append(menuItems, fmt.Sprintf("%s %s", cursor, choice))
	}

	return gameStyles.menuBox.Render(strings.Join(menuItems, "\n"))
}

func (m Model) renderAnimation() string {
	frame := GetAnimationFrame(m.Animation)
	p := m.Session.Pet()

	animStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFD700")).
		Bold(true).
		Padding(1, 2)

	sections := []string{
		m.renderTitle(p),
		"",
		animStyle.Render(frame),
	}

	if msg := m.renderMessage(); msg != "" {
		sections = append(sections, "", msg)
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) adoptView() string {
	var choices []string
	for i, p := range game.Personalities {
		cursor := " "
		if m.Personality == i {
			cursor = ">"
		}
		choices = append(choices, fmt.Sprintf("%s %s", cursor, titleCase(string(p))))
	}

	z := game.Zodiacs[m.Zodiac]
	c := game.LuckyColors[m.Color]

	sections := []string{
		gameStyles.title.Render("🐴 Adopt a Pony 🐴"),
		"",
		gameStyles.status.Render("Name: " + m.NameInput + "_"),
		gameStyles.dim.Render("Leave empty for a name that fits its personality"),
		"",
		gameStyles.status.Render("Personality:"),
		gameStyles.menuBox.Render(strings.Join(choices, "\n")),
		"",
		gameStyles.status.Render(fmt.Sprintf("Zodiac: %s %s    Colour: %s %s", z.Emoji, z.Name, c.Emoji, c.Name)),
	}

	if f, err := m.fortune(); err == nil {
		sections = append(sections,
			"",
			gameStyles.title.Render(fmt.Sprintf("🔮 Year of the Horse fortune: %d points", f.Score)),
			gameStyles.menuBox.Render(strings.Join([]string{
				"💼 " + f.Career,
				"💰 " + f.Wealth,
				"💕 " + f.Love,
				"🏃 " + f.Health,
				fmt.Sprintf("Lucky number %d • lucky colour %s", f.LuckyNumber, f.LuckyColor()),
			}, "\n")),
			gameStyles.status.Render(f.Intro()),
		)
	}

	if msg := m.renderMessage(); msg != "" {
		sections = append(sections, "", msg)
	}
	sections = append(sections,
		"",
		gameStyles.dim.Render("Type a name • tab personality • ↑/↓ zodiac • ←/→ colour • enter to adopt"),
	)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) bagView() string {
	bag := m.Session.Decorations().Bag()
	p := m.Session.Pet()

	var items []string
	for i, d := range bag {
		cursor := " "
		if m.Choice == i {
			cursor = ">"
		}
		worn := ""
		if p.IsEquipped(d.ID) {
			worn = " (wearing)"
		}
		items = append(items, fmt.Sprintf("%s %s %-24s %s%s", cursor, d.Emoji, d.Name,
			decoration.CategoryLabel(d.Category), worn))
	}
	if len(items) == 0 {
		items = append(items, "Your bag is empty. Interact with your pony to find decorations!")
	}

	return m.listView(
		fmt.Sprintf("🎒 Bag (%d/%d)", len(bag), len(decoration.Catalog)),
		items,
		"enter to wear or take off • esc to go back",
	)
}

func (m Model) craftView() string {
	views := m.Session.Fragments().RecipeViews(m.Session.Decorations().BagIDs())

	var items []string
	for i, v := range views {
		cursor := " "
		if m.Choice == i {
			cursor = ">"
		}
		state := fmt.Sprintf("%d 🧩", v.Cost)
		switch {
		case v.Owned:
			state = "owned"
		case !v.Affordable:
			state += " (need more)"
		}
		items = append(items, fmt.Sprintf("%s %s %-24s %s", cursor, v.Decoration.Emoji, v.Decoration.Name, state))
	}

	return m.listView(
		fmt.Sprintf("🔨 Craft (%d fragments)", m.Session.Fragments().Count()),
		items,
		"enter to craft • esc to go back",
	)
}

func (m Model) listView(title string, items []string, help string) string {
	sections := []string{
		gameStyles.title.Render(title),
		"",
		gameStyles.menuBox.Render(strings.Join(items, "\n")),
	}
	if msg := m.renderMessage(); msg != "" {
		sections = append(sections, "", msg)
	}
	sections = append(sections, "", gameStyles.dim.Render(help))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) achievementsView() string {
	engine := m.Session.Achievements()

	var lines []string
	for _, s := range engine.All() {
		if s.Unlocked {
			lines = append(lines, fmt.Sprintf("%s %-20s %s", s.Icon, s.Name, s.Desc))
		} else {
			lines = append(lines, gameStyles.dim.Render(fmt.Sprintf("🔒 %-20s %s", s.Name, s.Desc)))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		gameStyles.title.Render(fmt.Sprintf("🏆 Achievements (%d/%d)", engine.UnlockedCount(), engine.TotalCount())),
		"",
		gameStyles.menuBox.Render(strings.Join(lines, "\n")),
		"",
		gameStyles.dim.Render("Press any key to go back"),
	)
}

func (m Model) assistView() string {
	ledger := m.Session.Assists()

	var items []string
	for i, choice := range assistMenu {
		cursor := " "
		if m.Choice == i {
			cursor = ">"
		}
		items = append(items, fmt.Sprintf("%s %s", cursor, choice))
	}

	sections := []string{
		gameStyles.title.Render("🤝 Friend Assist"),
		"",
		gameStyles.status.Render("Your code: " + ledger.MyCode()),
		gameStyles.status.Render(fmt.Sprintf("Helped today: %d/3", ledger.TodayCount())),
	}
	if boost := ledger.BoostMinutes(); boost > 0 {
		sections = append(sections, gameStyles.status.Render(fmt.Sprintf("⚡ Boost: %d min left", boost)))
	}

	if recent := ledger.Recent(); len(recent) > 0 {
		var names []string
		for _, r := range recent {
			names = append(names, r.Name)
		}
		sections = append(sections, gameStyles.dim.Render("Recent helpers: "+strings.Join(names, ", ")))
	}

	sections = append(sections, "", gameStyles.menuBox.Render(strings.Join(items, "\n")))

	if m.EnteringCode {
		sections = append(sections, "", gameStyles.status.Render("Friend's code: "+m.CodeInput+"_"))
	}
	if m.ShowShare {
		sections = append(sections, "", gameStyles.menuBox.Render(m.Session.ShareText()))
	}
	if msg := m.renderMessage(); msg != "" {
		sections = append(sections, "", msg)
	}

	help := "enter to select • esc to go back"
	if m.EnteringCode {
		help = "type the code • enter to help • esc to cancel"
	}
	sections = append(sections, "", gameStyles.dim.Render(help))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) resetView() string {
	return lipgloss.JoinVertical(
		lipgloss.Center,
		gameStyles.warn.Render("⚠️  Start over? ⚠️"),
		"",
		gameStyles.status.Render("Your pony, bag, fragments, check-ins and achievements will all be lost."),
		"",
		gameStyles.status.Render("Press 'y' to reset, 'n' to keep playing"),
	)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
