package sentiment

import "github.com/moodlens/moodlens/internal/models"

// Fixed keyword dictionaries per canonical emotion. Matching is substring
// containment on the lowercase token, so "unhappiness" matches "happy" and is
// counted toward joy. Known limitation: negations and compound words can be
// miscounted; the matching semantics are part of the analyzer's contract and
// are kept stable.
var emotionKeywords = map[string][]string{
	models.EmotionJoy:      {"happy", "glad", "joy", "excited", "wonderful", "love", "great", "good", "positive", "awesome"},
	models.EmotionSadness:  {"sad", "upset", "down", "blue", "depressed", "unhappy", "disappointed", "hurt", "pain", "miserable"},
	models.EmotionAnger:    {"angry", "mad", "furious", "irritated", "annoyed", "frustrated", "hate", "rage", "hostile", "resent"},
	models.EmotionFear:     {"afraid", "scared", "fear", "anxious", "worry", "nervous", "panic", "dread", "terror", "uneasy"},
	models.EmotionLove:     {"love", "adore", "affection", "care", "fond", "trust", "compassion", "tender", "kind", "warm"},
	models.EmotionSurprise: {"surprised", "shocked", "amazed", "astonished", "wow", "unexpected", "startled", "sudden", "incredible", "unpredictable"},
}
