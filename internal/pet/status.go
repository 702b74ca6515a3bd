package pet

// GetStatus returns the status emoji for the pony
func GetStatus(p Pet) string {
	switch p.GetMood() {
	case MoodExcited:
		return StatusEmojiExcited
	case MoodSad:
		// Hunger is the more pressing need
		if p.Hunger < LowStatThreshold {
			return StatusEmojiHungry
		}
		return StatusEmojiSad
	default:
		return StatusEmojiHappy
	}
}

// GetStatusWithLabel returns status with text labels for the UI
func GetStatusWithLabel(p Pet) string {
	status := GetStatus(p)

	switch status {
	case StatusEmojiExcited:
		return status + " Excited!"
	case StatusEmojiHungry:
		return status + " Hungry"
	case StatusEmojiSad:
		return status + " Sad"
	default:
		return status + " Content"
	}
}

// GetMoodEmoji returns an emoji for a mood
func GetMoodEmoji(m Mood) string {
	switch m {
	case MoodExcited:
		return StatusEmojiExcited
	case MoodSad:
		return StatusEmojiSad
	default:
		return StatusEmojiHappy
	}
}
