package game

import (
	"slices"

	"pony/internal/interaction"
)

var phrasePool = map[interaction.Action][]string{
	interaction.Pat: {
		"Off to a galloping start, everything goes your way!",
		"You're the best, luck is on its way!",
		"Full of spirit, have a happy day!",
		"With me around, good luck comes right away!",
		"Looking great today, joy is coming!",
		"Stick with me and win at everything!",
	},
	interaction.Groom: {
		"All smooth now, worries gone!",
		"Brushing feels so nice, all is well!",
		"Take good care of me and wishes come true ✨",
		"Thank you! Fortune is coming!",
		"Riches on the way, luck after luck!",
		"Well fed and carefree!",
	},
	interaction.Feed: {
		"That was delicious, thank you!",
		"Riches on the way, luck after luck!",
		"Thank you! Fortune is coming!",
		"Take good care of me and wishes come true ✨",
		"Well fed and carefree!",
		"Full of spirit, have a happy day!",
	},
}

// PhraseEngine picks a line for each action without repeating recent ones
type PhraseEngine struct {
	rng     Rand
	history map[interaction.Action][]string
}

func NewPhraseEngine(rng Rand) *PhraseEngine {
	return &PhraseEngine{rng: rng, history: make(map[interaction.Action][]string)}
}

// Next returns a phrase not among the action's recent picks. The history
// clears once it holds half the pool.
func (p *PhraseEngine) Next(a interaction.Action) string {
	pool := phrasePool[a]
	if len(pool) == 0 {
		return ""
	}
	if len(p.history[a]) >= len(pool)/2 {
		p.history[a] = nil
	}

	var available []string
	for _, phrase := range pool {
		if !slices.Contains(p.history[a], phrase) {
			available = append(available, phrase)
		}
	}
	idx := pick(p.rng, len(available))
	phrase := available[idx]
	p.history[a] = append(p.history[a], phrase)
	return phrase
}
