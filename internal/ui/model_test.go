package ui

import (
	"slices"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"

	"pony/internal/catch"
	"pony/internal/game"
	"pony/internal/interaction"
	"pony/internal/race"
	"pony/internal/schedule"
	"pony/internal/store"
)

var testEpoch = time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

type testEnv struct {
	session *game.Session
	clock   *clockwork.FakeClock
	sched   *schedule.Scheduler
}

// newTestModel opens a session on a memory store. With 0.99 rolls nothing
// drops and names are predictable.
func newTestModel(t *testing.T, adopted bool) (Model, testEnv) {
	t.Helper()
	fake := clockwork.NewFakeClockAt(testEpoch)
	s := game.Open(fake, store.NewMemoryStore(), fixedRand(0.99))
	if adopted {
		s.Adopt("Sam", "Clover")
	}

	sched, err := schedule.New(fake)
	if err != nil {
		t.Fatalf("Failed to create scheduler: %v", err)
	}
	t.Cleanup(func() { _ = sched.Shutdown() })

	m := NewModel(s, Options{Timers: sched, IdleInterval: 8 * time.Second, Rand: fixedRand(0.99)})
	return m, testEnv{session: s, clock: fake, sched: sched}
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		updated, _ := m.Update(keyMsg(k))
		m = updated.(Model)
	}
	return m
}

// choose selects a main menu entry by label
func choose(t *testing.T, m Model, label string) (Model, tea.Cmd) {
	t.Helper()
	i := slices.Index(mainMenu, label)
	if i < 0 {
		t.Fatalf("No menu entry %q", label)
	}
	m.Choice = i
	updated, cmd := m.Update(keyMsg("enter"))
	return updated.(Model), cmd
}

func TestNewModelScreens(t *testing.T) {
	m, env := newTestModel(t, false)
	if m.Screen != screenAdopt {
		t.Errorf("Expected adopt screen without a pony, got %d", m.Screen)
	}
	if len(env.sched.Active()) != 0 {
		t.Errorf("Expected no idle timer on the adopt screen, got %v", env.sched.Active())
	}

	m, env = newTestModel(t, true)
	if m.Screen != screenMain {
		t.Errorf("Expected main screen with a pony, got %d", m.Screen)
	}
	if !slices.Equal(env.sched.Active(), []string{"idle"}) {
		t.Errorf("Expected idle timer on the main screen, got %v", env.sched.Active())
	}
}

func TestAdoptWithTypedName(t *testing.T) {
	m, env := newTestModel(t, false)

	m = press(m, "S", "t", "a", "x", "backspace", "r", "enter")

	if !env.session.Adopted() {
		t.Fatal("Expected a pony after adoption")
	}
	if got := env.session.Pet().Name; got != "Star" {
		t.Errorf("Expected Star, got %q", got)
	}
	if m.Screen != screenMain {
		t.Errorf("Expected main screen, got %d", m.Screen)
	}
	if !strings.Contains(m.Message, "Star") {
		t.Errorf("Expected welcome message, got %q", m.Message)
	}
}

func TestAdoptReadsFortune(t *testing.T) {
	m, env := newTestModel(t, false)

	m = press(m, "up")
	if game.Zodiacs[m.Zodiac].ID != "pig" {
		t.Errorf("Expected zodiac to wrap to pig, got %s", game.Zodiacs[m.Zodiac].ID)
	}
	m = press(m, "left", "right")
	if m.Color != 0 {
		t.Errorf("Expected colour back on red, got %d", m.Color)
	}

	// pig + 7 = horse
	m = press(m, "down", "down", "down", "down", "down", "down", "down")
	if !strings.Contains(m.adoptView(), "93 points") {
		t.Errorf("Expected the fortune preview, got %q", m.adoptView())
	}

	m = press(m, "enter")

	f := env.session.Profile().Fortune
	if f == nil || f.Zodiac != "horse" || f.Color != "red" || f.Personality != game.Active {
		t.Fatalf("Expected horse/red/active reading, got %+v", f)
	}
	if !strings.Contains(m.Message, "93 points") {
		t.Errorf("Expected the score in the welcome, got %q", m.Message)
	}
	card := renderStatusCard(env.session.Status(), nil)
	if !strings.Contains(card, "93 pts, lucky 2") {
		t.Errorf("Expected fortune on the status card, got %q", card)
	}
}

func TestAdoptWithSuggestedName(t *testing.T) {
	m, env := newTestModel(t, false)

	m = press(m, "tab", "enter")

	if m.Personality != 1 {
		t.Errorf("Expected second personality, got %d", m.Personality)
	}
	want := game.GenerateName(game.Calm, fixedRand(0.99))
	if got := env.session.Pet().Name; got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestPatStartsAnimation(t *testing.T) {
	m, env := newTestModel(t, true)

	m, cmd := choose(t, m, "Pat")

	if m.Animation.Type != AnimPat {
		t.Errorf("Expected pat animation, got %v", m.Animation.Type)
	}
	if cmd == nil {
		t.Error("Expected animation and cooldown ticks")
	}
	if !m.cooldownTicking {
		t.Error("Expected cooldown polling to start")
	}
	if got := env.session.Pet().TotalInteractCount; got != 1 {
		t.Errorf("Expected 1 interaction, got %d", got)
	}
}

func TestKeysIgnoredDuringAnimation(t *testing.T) {
	m, env := newTestModel(t, true)
	m, _ = choose(t, m, "Feed")

	m = press(m, "down", "enter")

	if got := env.session.Pet().TotalFeedCount; got != 1 {
		t.Errorf("Expected 1 feed, got %d", got)
	}
	if m.Choice != slices.Index(mainMenu, "Feed") {
		t.Errorf("Expected cursor to stay put, got %d", m.Choice)
	}
}

func TestCooldownRefusal(t *testing.T) {
	m, env := newTestModel(t, true)
	m, _ = choose(t, m, "Pat")
	m.Animation = Animation{}

	m, cmd := choose(t, m, "Pat")

	if cmd != nil {
		t.Error("Expected no command for a refused action")
	}
	if !strings.Contains(m.Message, "wait 10 more seconds") {
		t.Errorf("Expected cooldown message, got %q", m.Message)
	}
	if got := env.session.Pet().TotalInteractCount; got != 1 {
		t.Errorf("Expected refusal to leave 1 interaction, got %d", got)
	}
}

func TestAnimationTicks(t *testing.T) {
	m, _ := newTestModel(t, true)
	m, _ = choose(t, m, "Groom")
	started := m.Animation.StartTime

	updated, _ := m.Update(animTickMsg{started: started.Add(-time.Second)})
	m = updated.(Model)
	if m.Animation.Frame != 0 {
		t.Errorf("Expected stale tick to be dropped, got frame %d", m.Animation.Frame)
	}

	for range AnimationTotalFrames(AnimGroom) {
		updated, _ = m.Update(animTickMsg{started: started})
		m = updated.(Model)
	}
	if m.Animation.Type != AnimNone {
		t.Errorf("Expected animation to finish, got %v", m.Animation.Type)
	}
}

func TestCooldownPollingStops(t *testing.T) {
	m, env := newTestModel(t, true)
	m, _ = choose(t, m, "Pat")

	updated, cmd := m.Update(cooldownTickMsg{})
	m = updated.(Model)
	if cmd == nil {
		t.Error("Expected polling to continue while cooling down")
	}

	env.clock.Advance(interaction.PatCooldown)
	updated, cmd = m.Update(cooldownTickMsg{})
	m = updated.(Model)
	if cmd != nil {
		t.Error("Expected polling to stop once cooldowns are over")
	}
	if m.cooldownTicking {
		t.Error("Expected polling flag cleared")
	}
}

func TestRefreshAppliesDecay(t *testing.T) {
	m, env := newTestModel(t, true)
	env.clock.Advance(2 * time.Hour)

	updated, _ := m.Update(RefreshMsg{})
	_ = updated.(Model)

	p := env.session.Pet()
	if p.Hunger != 46 || p.Happiness != 48 {
		t.Errorf("Expected 46/48 after two hours, got %d/%d", p.Hunger, p.Happiness)
	}
}

func TestIdleMsgAdvancesFrame(t *testing.T) {
	m, _ := newTestModel(t, true)

	updated, cmd := m.Update(IdleMsg{})
	m = updated.(Model)

	if m.IdleFrame != 1 {
		t.Errorf("Expected idle frame 1, got %d", m.IdleFrame)
	}
	if cmd == nil {
		t.Error("Expected to keep listening for background messages")
	}
}

func TestIdleTimerOnlyOnMainScreen(t *testing.T) {
	m, env := newTestModel(t, true)

	m, _ = choose(t, m, "Bag")
	if m.Screen != screenBag {
		t.Fatalf("Expected bag screen, got %d", m.Screen)
	}
	if len(env.sched.Active()) != 0 {
		t.Errorf("Expected idle timer cancelled off the main screen, got %v", env.sched.Active())
	}

	m = press(m, "esc")
	if m.Screen != screenMain {
		t.Fatalf("Expected main screen, got %d", m.Screen)
	}
	if !slices.Equal(env.sched.Active(), []string{"idle"}) {
		t.Errorf("Expected idle timer back, got %v", env.sched.Active())
	}

	updated, _ := m.Update(keyMsg("q"))
	if !updated.(Model).Quitting {
		t.Error("Expected quitting")
	}
	if len(env.sched.Active()) != 0 {
		t.Errorf("Expected idle timer cancelled on quit, got %v", env.sched.Active())
	}
}

func TestCheckinFromMenu(t *testing.T) {
	m, env := newTestModel(t, true)

	m, _ = choose(t, m, "Check in")
	if !strings.Contains(m.Message, "Checked in") {
		t.Errorf("Expected check-in message, got %q", m.Message)
	}
	if got := env.session.Fragments().Count(); got != 1 {
		t.Errorf("Expected 1 fragment, got %d", got)
	}

	m, _ = choose(t, m, "Check in")
	if !strings.Contains(m.Message, "Already checked in") {
		t.Errorf("Expected refusal message, got %q", m.Message)
	}
}

func TestCraftAndEquip(t *testing.T) {
	m, env := newTestModel(t, true)

	m, _ = choose(t, m, "Craft")
	m = press(m, "enter")
	if !strings.Contains(m.Message, "Need 3 fragments") {
		t.Errorf("Expected shortage message, got %q", m.Message)
	}

	if err := env.session.Fragments().Add(3); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	m = press(m, "enter")
	if !env.session.Decorations().Owns("saddle_basic") {
		t.Fatal("Expected crafted saddle in the bag")
	}
	if got := env.session.Fragments().Count(); got != 0 {
		t.Errorf("Expected 0 fragments left, got %d", got)
	}

	m = press(m, "esc")
	m, _ = choose(t, m, "Bag")
	m = press(m, "enter")
	if !env.session.Pet().IsEquipped("saddle_basic") {
		t.Error("Expected saddle equipped")
	}
	m = press(m, "enter")
	if env.session.Pet().IsEquipped("saddle_basic") {
		t.Error("Expected saddle taken off")
	}
}

func TestEmptyBagIgnoresEnter(t *testing.T) {
	m, _ := newTestModel(t, true)

	m, _ = choose(t, m, "Bag")
	m = press(m, "enter")

	if m.Message != "" && !strings.Contains(m.Message, "Welcome") {
		t.Errorf("Expected no message, got %q", m.Message)
	}
}

func TestBagWithRetiredDecoration(t *testing.T) {
	fake := clockwork.NewFakeClockAt(testEpoch)
	kv := store.NewMemoryStore()
	game.Open(fake, kv, fixedRand(0.99)).Adopt("Sam", "Clover")
	store.Save(kv, store.KeyBag, []string{"retired_hat", "cape_lucky"})

	s := game.Open(fake, kv, fixedRand(0.99))
	m := NewModel(s, Options{Rand: fixedRand(0.99)})

	m, _ = choose(t, m, "Bag")
	m = press(m, "down", "enter")

	if !s.Pet().IsEquipped("cape_lucky") {
		t.Errorf("Expected cape equipped, got %v", s.Pet().Decorations)
	}
	if !strings.Contains(m.bagView(), "(1/") {
		t.Errorf("Expected one item in the bag view, got %q", m.bagView())
	}
}

func TestHelpFriendCode(t *testing.T) {
	m, env := newTestModel(t, true)

	m, _ = choose(t, m, "Assist")
	m = press(m, "down", "enter")
	if !m.EnteringCode {
		t.Fatal("Expected code entry")
	}

	m = press(m, "p", "f", "r", "i", "e", "n", "d", "enter")
	if m.EnteringCode {
		t.Error("Expected code entry to close")
	}
	if !strings.Contains(m.Message, "Thanks") {
		t.Errorf("Expected thanks message, got %q", m.Message)
	}
	if got := len(env.session.Assists().Given()); got != 1 {
		t.Errorf("Expected 1 helped code, got %d", got)
	}

	m = press(m, "enter", "p", "f", "r", "i", "e", "n", "d", "enter")
	if !strings.Contains(m.Message, "already helped") {
		t.Errorf("Expected duplicate refusal, got %q", m.Message)
	}
}

func TestSimulatedAssistGivesBoost(t *testing.T) {
	m, env := newTestModel(t, true)

	m, _ = choose(t, m, "Assist")
	m = press(m, "enter")

	if !env.session.Assists().HasBoost() {
		t.Error("Expected a boost after a friend helped")
	}
	if !strings.Contains(m.Message, "helped") {
		t.Errorf("Expected assist message, got %q", m.Message)
	}
}

func TestCatchRound(t *testing.T) {
	m, env := newTestModel(t, true)
	happiness := env.session.Pet().Happiness

	m, cmd := choose(t, m, "Catch Hay")
	if m.Screen != screenCatch {
		t.Fatalf("Expected catch screen, got %d", m.Screen)
	}
	if cmd == nil {
		t.Error("Expected the round to start ticking")
	}
	if len(env.sched.Active()) != 0 {
		t.Errorf("Expected idle timer off during the round, got %v", env.sched.Active())
	}

	updated, _ := m.Update(catch.FinishedMsg{Result: catch.Result{Score: 25, Fragments: 2}})
	m = updated.(Model)

	if m.Screen != screenMain {
		t.Errorf("Expected main screen after the round, got %d", m.Screen)
	}
	if got := env.session.Fragments().Count(); got != 2 {
		t.Errorf("Expected 2 fragments, got %d", got)
	}
	if got := env.session.CatchBest(); got != 25 {
		t.Errorf("Expected best 25, got %d", got)
	}
	if got := env.session.Pet().Happiness; got != happiness+game.MiniGameHappiness {
		t.Errorf("Expected happiness %d, got %d", happiness+game.MiniGameHappiness, got)
	}
	if !strings.Contains(m.Message, "New best") {
		t.Errorf("Expected new best message, got %q", m.Message)
	}
}

func TestHorseRaceSettlesWager(t *testing.T) {
	m, env := newTestModel(t, true)
	if err := env.session.Fragments().Add(10); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	m, _ = choose(t, m, "Horse Race")
	if m.Screen != screenRace {
		t.Fatalf("Expected race screen, got %d", m.Screen)
	}
	if m.Race.Race.Balance != 10 {
		t.Errorf("Expected the track to see 10 fragments, got %d", m.Race.Race.Balance)
	}

	updated, cmd := m.Update(keyMsg("q"))
	m = updated.(Model)
	if cmd == nil {
		t.Fatal("Expected leaving the track to report a balance")
	}
	if msg, ok := cmd().(race.FinishedMsg); !ok || msg.Balance != 10 {
		t.Errorf("Expected FinishedMsg with 10, got %+v", msg)
	}

	// Backed the winner at 2.0 odds with a 3 fragment bet
	updated, _ = m.Update(race.FinishedMsg{Balance: 13})
	m = updated.(Model)

	if m.Screen != screenMain {
		t.Errorf("Expected main screen after the race, got %d", m.Screen)
	}
	if got := env.session.Fragments().Count(); got != 13 {
		t.Errorf("Expected 13 fragments, got %d", got)
	}
	if !strings.Contains(m.Message, "Won 3 fragments") {
		t.Errorf("Expected winnings message, got %q", m.Message)
	}
}

func TestRaceResultIgnoredOffTrack(t *testing.T) {
	m, env := newTestModel(t, true)

	updated, _ := m.Update(race.FinishedMsg{Balance: 50})
	_ = updated.(Model)

	if got := env.session.Fragments().Count(); got != 0 {
		t.Errorf("Expected a stray result to be ignored, got %d fragments", got)
	}
}

func TestResetConfirm(t *testing.T) {
	m, env := newTestModel(t, true)

	m, _ = choose(t, m, "Reset")
	m = press(m, "n")
	if m.Screen != screenMain || !env.session.Adopted() {
		t.Fatal("Expected 'n' to keep the pony")
	}

	m, _ = choose(t, m, "Reset")
	m = press(m, "y")
	if m.Screen != screenAdopt {
		t.Errorf("Expected adopt screen after reset, got %d", m.Screen)
	}
	if env.session.Adopted() {
		t.Error("Expected the pony to be gone")
	}
	if len(env.sched.Active()) != 0 {
		t.Errorf("Expected no idle timer after reset, got %v", env.sched.Active())
	}
}

func TestMessageExpires(t *testing.T) {
	m, env := newTestModel(t, true)
	m.setMessage("hello")

	if m.renderMessage() == "" {
		t.Error("Expected message to show")
	}
	env.clock.Advance(messageDuration)
	if m.renderMessage() != "" {
		t.Error("Expected message to expire")
	}
}

func TestViews(t *testing.T) {
	m, _ := newTestModel(t, true)

	screens := []struct {
		screen screen
		want   string
	}{
		{screenMain, "Clover"},
		{screenBag, "Bag"},
		{screenCraft, "Craft"},
		{screenAchievements, "Achievements"},
		{screenAssist, "Your code"},
		{screenStatus, "Clover"},
		{screenConfirmReset, "Start over"},
	}

	for _, tt := range screens {
		m.Screen = tt.screen
		if view := m.View(); !strings.Contains(view, tt.want) {
			t.Errorf("Screen %d: expected view to contain %q", tt.screen, tt.want)
		}
	}
}

func TestStatsCard(t *testing.T) {
	_, env := newTestModel(t, true)

	card := StatsModel{Status: env.session.Status(), Week: env.session.Checkins().WeekStatus()}.View()

	for _, want := range []string{"Clover", "Sam", "Hunger", "Fragments", "20 more to Fur Change"} {
		if !strings.Contains(card, want) {
			t.Errorf("Expected stats card to contain %q", want)
		}
	}
}

func TestMakeBar(t *testing.T) {
	tests := []struct {
		value int
		want  string
	}{
		{0, "░░░░░"},
		{50, "██░░░"},
		{100, "█████"},
	}

	for _, tt := range tests {
		if got := makeBar(tt.value); got != tt.want {
			t.Errorf("makeBar(%d): expected %q, got %q", tt.value, tt.want, got)
		}
	}
}
