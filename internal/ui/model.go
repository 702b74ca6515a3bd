package ui

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"pony/internal/catch"
	"pony/internal/checkin"
	"pony/internal/fragment"
	"pony/internal/game"
	"pony/internal/interaction"
	"pony/internal/pet"
	"pony/internal/race"
	"pony/internal/schedule"
)

type screen int

const (
	screenAdopt screen = iota
	screenMain
	screenBag
	screenCraft
	screenAchievements
	screenAssist
	screenCatch
	screenRace
	screenStatus
	screenConfirmReset
)

// Main menu entries, in display order
var mainMenu = []string{
	"Pat", "Groom", "Feed", "Check in", "Bag", "Craft",
	"Achievements", "Assist", "Catch Hay", "Horse Race", "Status", "Reset", "Quit",
}

var menuActions = map[int]interaction.Action{
	0: interaction.Pat,
	1: interaction.Groom,
	2: interaction.Feed,
}

var assistMenu = []string{"Ask a friend for help", "Help a friend", "Show my share text", "Back"}

const (
	messageDuration = 3 * time.Second
	maxNameLength   = 20
	maxCodeLength   = 16
)

// Timers runs background jobs for a screen. *schedule.Scheduler satisfies it.
type Timers interface {
	Every(name string, d time.Duration, fn func()) (schedule.Token, error)
	Cancel(t schedule.Token) error
}

// IdleMsg advances the idle animation on the main screen
type IdleMsg struct{}

// RefreshMsg charges decay for whole hours spent open and redraws
type RefreshMsg struct{}

type animTickMsg struct {
	started time.Time
}

type cooldownTickMsg struct{}

// Options configures NewModel
type Options struct {
	Timers       Timers
	IdleInterval time.Duration
	Rand         catch.Rand
}

// Model represents the game state
type Model struct {
	Session        *game.Session
	Screen         screen
	Choice         int
	Quitting       bool
	Message        string
	MessageExpires time.Time
	Animation      Animation
	IdleFrame      int

	// adoption form
	NameInput   string
	Personality int
	Zodiac      int
	Color       int

	// assist code form
	EnteringCode bool
	CodeInput    string
	ShowShare    bool

	Catch catch.Model
	Race  race.Model

	width, height   int
	rng             catch.Rand
	timers          Timers
	idleEvery       time.Duration
	idleToken       schedule.Token
	events          chan tea.Msg
	cooldownTicking bool
}

// NewModel creates the game model for an open session
func NewModel(s *game.Session, opts Options) Model {
	m := Model{
		Session:   s,
		Screen:    screenAdopt,
		rng:       opts.Rand,
		timers:    opts.Timers,
		idleEvery: opts.IdleInterval,
		events:    make(chan tea.Msg, 1),
	}
	if s.Adopted() {
		m.show(screenMain)
	}
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return listen(m.events)
}

// listen waits for the next message a background job sent
func listen(events <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-events
	}
}

func animTick(start time.Time) tea.Cmd {
	return tea.Tick(AnimationFrameDuration, func(t time.Time) tea.Msg {
		return animTickMsg{started: start}
	})
}

func cooldownTick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return cooldownTickMsg{}
	})
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if m.Screen == screenCatch {
			return m.updateCatch(msg)
		}
		return m, nil

	case IdleMsg:
		if m.Screen == screenMain && m.Animation.Type == AnimNone {
			m.IdleFrame = (m.IdleFrame + 1) % len(IdleFrames)
		}
		return m, listen(m.events)

	case RefreshMsg:
		m.Session.Refresh()
		return m, nil

	case cooldownTickMsg:
		if m.coolingDown() {
			return m, cooldownTick()
		}
		m.cooldownTicking = false
		return m, nil

	case animTickMsg:
		// Drop ticks that belong to an older animation
		if m.Animation.Type == AnimNone || !m.Animation.StartTime.Equal(msg.started) {
			return m, nil
		}

		m.Animation.Frame++
		if IsAnimationComplete(m.Animation) {
			m.Animation = Animation{}
			return m, nil
		}
		return m, animTick(m.Animation.StartTime)

	case catch.FinishedMsg:
		m.finishCatch(msg.Result)
		return m, nil

	case race.FinishedMsg:
		m.finishRace(msg.Balance)
		return m, nil
	}

	switch m.Screen {
	case screenCatch:
		return m.updateCatch(msg)
	case screenRace:
		return m.updateRace(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	// While an animation is playing, ignore inputs except quit keys
	if m.Animation.Type != AnimNone {
		if msg.String() == "q" {
			return m.quit()
		}
		return m, nil
	}

	switch m.Screen {
	case screenAdopt:
		return m.updateAdopt(msg)
	case screenMain:
		return m.updateMain(msg)
	case screenBag, screenCraft:
		return m.updateList(msg)
	case screenAssist:
		return m.updateAssist(msg)
	case screenCatch:
		return m.updateCatch(msg)
	case screenRace:
		return m.updateRace(msg)
	case screenConfirmReset:
		return m.updateConfirmReset(msg)
	default:
		// achievements and status close on any key
		m.show(screenMain)
		return m, nil
	}
}

func (m Model) updateAdopt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace:
		if len([]rune(m.NameInput)) < maxNameLength {
			m.NameInput += string(msg.Runes)
		}
	case tea.KeyBackspace:
		m.NameInput = trimLastRune(m.NameInput)
	case tea.KeyTab:
		m.Personality = (m.Personality + 1) % len(game.Personalities)
	case tea.KeyUp:
		m.Zodiac = (m.Zodiac + len(game.Zodiacs) - 1) % len(game.Zodiacs)
	case tea.KeyDown:
		m.Zodiac = (m.Zodiac + 1) % len(game.Zodiacs)
	case tea.KeyLeft:
		m.Color = (m.Color + len(game.LuckyColors) - 1) % len(game.LuckyColors)
	case tea.KeyRight:
		m.Color = (m.Color + 1) % len(game.LuckyColors)
	case tea.KeyEnter:
		name := strings.TrimSpace(m.NameInput)
		if name == "" {
			name = m.Session.SuggestName(game.Personalities[m.Personality])
		}
		f, err := m.fortune()
		if err != nil {
			m.setMessage(err.Error())
			return m, nil
		}
		p := m.Session.AdoptWithFortune("", name, f)
		m.NameInput = ""
		m.setMessage(fmt.Sprintf("🐴 Welcome home, %s! Your fortune: %d points", p.Name, f.Score))
		m.show(screenMain)
	}
	return m, nil
}

// fortune reads the fortune for the answers picked on the adoption screen
func (m Model) fortune() (game.Fortune, error) {
	return game.ReadFortune(
		game.Zodiacs[m.Zodiac].ID,
		game.LuckyColors[m.Color].ID,
		game.Personalities[m.Personality],
	)
}

func (m Model) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m.quit()
	case "up", "k":
		if m.Choice > 0 {
			m.Choice--
		}
	case "down", "j":
		if m.Choice < len(mainMenu)-1 {
			m.Choice++
		}
	case "enter", " ":
		return m.selectMain()
	}
	return m, nil
}

func (m Model) selectMain() (tea.Model, tea.Cmd) {
	if a, ok := menuActions[m.Choice]; ok {
		cmd := m.interact(a)
		return m, cmd
	}

	switch mainMenu[m.Choice] {
	case "Check in":
		m.doCheckin()
	case "Bag":
		m.show(screenBag)
	case "Craft":
		m.show(screenCraft)
	case "Achievements":
		m.show(screenAchievements)
	case "Assist":
		m.EnteringCode = false
		m.ShowShare = false
		m.show(screenAssist)
	case "Catch Hay":
		cmd := m.startCatch()
		return m, cmd
	case "Horse Race":
		m.Race = race.NewModel(m.Session.Fragments().Count(), m.rng)
		m.show(screenRace)
		return m, m.Race.Init()
	case "Status":
		m.show(screenStatus)
	case "Reset":
		m.show(screenConfirmReset)
	case "Quit":
		return m.quit()
	}
	return m, nil
}

func (m *Model) interact(a interaction.Action) tea.Cmd {
	out, err := m.Session.Interact(a)
	if err != nil {
		switch {
		case errors.Is(err, interaction.ErrCooldown):
			m.setMessage("⏳ " + err.Error())
		case errors.Is(err, interaction.ErrTooHungry):
			m.setMessage("😿 " + err.Error())
		default:
			m.setMessage(err.Error())
		}
		return nil
	}

	parts := []string{out.Phrase}
	if out.Boosted {
		parts[0] = "⚡ " + parts[0]
	}
	for _, g := range out.Result.Growth {
		parts = append(parts, growthText(g))
	}
	if out.Drop != nil {
		parts = append(parts, fmt.Sprintf("🎁 Found %s %s!", out.Drop.Emoji, out.Drop.Name))
	}
	if out.Fragments > 0 {
		parts = append(parts, fmt.Sprintf("🧩 +%d fragment", out.Fragments))
	}
	for _, ach := range out.Achievements {
		parts = append(parts, fmt.Sprintf("🏆 %s %s", ach.Icon, ach.Name))
	}
	m.setMessage(strings.Join(parts, "  "))

	m.startAnimation(animationFor(out))

	return tea.Batch(animTick(m.Animation.StartTime), m.pollCooldowns())
}

// animationFor picks what plays after an interaction. Growth takes over
// from the action's own animation.
func animationFor(out game.Outcome) AnimationType {
	if len(out.Result.Growth) > 0 {
		return AnimGrowth
	}
	switch out.Action {
	case interaction.Pat:
		return AnimPat
	case interaction.Groom:
		return AnimGroom
	case interaction.Feed:
		return AnimFeed
	}
	return AnimNone
}

func growthText(g pet.GrowthEvent) string {
	if g.Dimension == pet.DimensionBody {
		return fmt.Sprintf("🌟 Your pony turned %s! All that care paid off", g.Label)
	}
	return fmt.Sprintf("✨ New look: %s!", g.Label)
}

func (m *Model) doCheckin() {
	reward, unlocked, err := m.Session.DoCheckin()
	if errors.Is(err, checkin.ErrAlreadyCheckedIn) {
		m.setMessage("📅 Already checked in today, come back tomorrow!")
		return
	}
	if err != nil {
		m.setMessage(err.Error())
		return
	}

	text := fmt.Sprintf("📅 %s (streak %d)", reward.Label, m.Session.Checkins().Streak())
	for _, a := range unlocked {
		text += fmt.Sprintf("  🏆 %s %s", a.Icon, a.Name)
	}
	m.setMessage(text)
}

// updateList drives the bag and craft screens
func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := m.listLen()
	switch msg.String() {
	case "esc", "q":
		m.show(screenMain)
	case "up", "k":
		if m.Choice > 0 {
			m.Choice--
		}
	case "down", "j":
		if m.Choice < n-1 {
			m.Choice++
		}
	case "enter", " ":
		if n == 0 {
			return m, nil
		}
		if m.Screen == screenBag {
			m.toggleEquip()
		} else {
			m.craft()
		}
	}
	return m, nil
}

func (m Model) listLen() int {
	if m.Screen == screenBag {
		return len(m.Session.Decorations().Bag())
	}
	return len(fragment.Recipes)
}

func (m *Model) toggleEquip() {
	bag := m.Session.Decorations().Bag()
	if m.Choice >= len(bag) {
		return
	}
	d := bag[m.Choice]
	on, err := m.Session.ToggleEquip(d.ID)
	switch {
	case err != nil:
		m.setMessage(err.Error())
	case on:
		m.setMessage(fmt.Sprintf("%s %s equipped", d.Emoji, d.Name))
	default:
		m.setMessage(fmt.Sprintf("%s %s taken off", d.Emoji, d.Name))
	}
}

func (m *Model) craft() {
	r := fragment.Recipes[m.Choice]
	d, unlocked, err := m.Session.Craft(r.ID)
	if errors.Is(err, fragment.ErrInsufficient) {
		m.setMessage(fmt.Sprintf("🧩 Need %d fragments, you have %d", r.Cost, m.Session.Fragments().Count()))
		return
	}
	if err != nil {
		m.setMessage(err.Error())
		return
	}

	text := fmt.Sprintf("🔨 Crafted %s %s!", d.Emoji, d.Name)
	for _, a := range unlocked {
		text += fmt.Sprintf("  🏆 %s %s", a.Icon, a.Name)
	}
	m.setMessage(text)
}

func (m Model) updateAssist(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.EnteringCode {
		switch msg.Type {
		case tea.KeyEsc:
			m.EnteringCode = false
			m.CodeInput = ""
		case tea.KeyBackspace:
			m.CodeInput = trimLastRune(m.CodeInput)
		case tea.KeyRunes:
			if len(m.CodeInput) < maxCodeLength {
				m.CodeInput += string(msg.Runes)
			}
		case tea.KeyEnter:
			if err := m.Session.HelpFriend(m.CodeInput); err != nil {
				m.setMessage("🤝 " + err.Error())
			} else {
				m.setMessage("🤝 Thanks for helping a friend's pony!")
			}
			m.EnteringCode = false
			m.CodeInput = ""
		}
		return m, nil
	}

	switch msg.String() {
	case "esc", "q":
		m.show(screenMain)
	case "up", "k":
		if m.Choice > 0 {
			m.Choice--
		}
	case "down", "j":
		if m.Choice < len(assistMenu)-1 {
			m.Choice++
		}
	case "enter", " ":
		switch m.Choice {
		case 0:
			name, end, err := m.Session.SimulateAssist()
			if err != nil {
				m.setMessage("🤝 " + err.Error())
			} else {
				m.setMessage(fmt.Sprintf("⚡ %s helped! Boost until %s", name, end.Local().Format("15:04")))
			}
		case 1:
			m.EnteringCode = true
			m.CodeInput = ""
		case 2:
			m.ShowShare = !m.ShowShare
		default:
			m.show(screenMain)
		}
	}
	return m, nil
}

func (m Model) updateConfirmReset(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		if err := m.Session.Reset(); err != nil {
			m.setMessage(err.Error())
			m.show(screenMain)
			return m, nil
		}
		m.Animation = Animation{}
		m.show(screenAdopt)
	case "n", "esc", "q":
		m.show(screenMain)
	}
	return m, nil
}

func (m *Model) startCatch() tea.Cmd {
	cm := catch.New(m.rng)
	if m.width > 0 && m.height > 0 {
		updated, _ := cm.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		cm = updated.(catch.Model)
	}
	m.Catch = cm
	m.show(screenCatch)
	return m.Catch.Init()
}

func (m Model) updateCatch(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.Catch.Update(msg)
	m.Catch = updated.(catch.Model)
	return m, cmd
}

func (m *Model) finishCatch(res catch.Result) {
	if m.Screen != screenCatch {
		return
	}
	unlocked := m.Session.CompleteMiniGame(game.MiniGameResult{
		Score:     res.Score,
		Fragments: res.Fragments,
	})

	text := fmt.Sprintf("🌾 Caught hay for %d points, +%d fragments", res.Score, res.Fragments)
	if m.Session.RecordCatchScore(res.Score) {
		text += "  🥇 New best!"
	}
	for _, a := range unlocked {
		text += fmt.Sprintf("  🏆 %s %s", a.Icon, a.Name)
	}
	m.setMessage(text)
	m.show(screenMain)
}

func (m Model) updateRace(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.Race.Update(msg)
	m.Race = updated.(race.Model)
	return m, cmd
}

// finishRace settles the wager with the balance the player left the track with
func (m *Model) finishRace(balance int) {
	if m.Screen != screenRace {
		return
	}
	before := m.Session.Fragments().Count()
	unlocked, err := m.Session.SettleWager(balance)
	if err != nil {
		m.setMessage(err.Error())
		m.show(screenMain)
		return
	}

	var text string
	switch diff := balance - before; {
	case diff > 0:
		text = fmt.Sprintf("🏇 Won %d fragments at the races!", diff)
	case diff < 0:
		text = fmt.Sprintf("🏇 Lost %d fragments at the races", -diff)
	default:
		text = "🏇 Left the races even"
	}
	for _, a := range unlocked {
		text += fmt.Sprintf("  🏆 %s %s", a.Icon, a.Name)
	}
	m.setMessage(text)
	m.show(screenMain)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.stopIdle()
	m.Quitting = true
	return m, tea.Quit
}

// show switches screens. The idle animation only runs on the main screen.
func (m *Model) show(s screen) {
	m.Screen = s
	m.Choice = 0
	if s == screenMain {
		m.startIdle()
	} else {
		m.stopIdle()
	}
}

func (m *Model) startIdle() {
	if m.timers == nil || m.idleEvery <= 0 || !m.idleToken.IsZero() {
		return
	}
	events := m.events
	token, err := m.timers.Every("idle", m.idleEvery, func() {
		select {
		case events <- IdleMsg{}:
		default:
		}
	})
	if err != nil {
		log.Printf("Error starting idle animation: %v", err)
		return
	}
	m.idleToken = token
}

func (m *Model) stopIdle() {
	if m.timers == nil || m.idleToken.IsZero() {
		return
	}
	if err := m.timers.Cancel(m.idleToken); err != nil {
		log.Printf("Error stopping idle animation: %v", err)
	}
	m.idleToken = schedule.Token{}
}

func (m *Model) pollCooldowns() tea.Cmd {
	if m.cooldownTicking {
		return nil
	}
	m.cooldownTicking = true
	return cooldownTick()
}

func (m Model) coolingDown() bool {
	for _, a := range interaction.Actions {
		if m.Session.Tracker().Remaining(a) > 0 {
			return true
		}
	}
	return false
}

func (m Model) now() time.Time {
	return m.Session.Clock().Now()
}

func (m *Model) setMessage(msg string) {
	m.Message = msg
	m.MessageExpires = m.now().Add(messageDuration)
}

func (m *Model) startAnimation(animType AnimationType) {
	m.Animation = Animation{
		Type:      animType,
		Frame:     0,
		StartTime: m.now(),
	}
}

func trimLastRune(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return string(r[:len(r)-1])
}
