package game

import "time"

// SimulateAssist has a made-up friend boost the pony
func (s *Session) SimulateAssist() (string, time.Time, error) {
	return s.assist.SimulateFriendAssist(s.rng)
}

// HelpFriend records helping the friend with the given code
func (s *Session) HelpFriend(code string) error {
	return s.assist.AssistFriend(code)
}

// ShareText is the invitation carrying the player's assist code
func (s *Session) ShareText() string {
	return s.assist.ShareText(s.profile.Name)
}
