package models

// StressLevel classifies an entry by the magnitude of its negative emotions.
type StressLevel string

const (
	StressMild     StressLevel = "mild"
	StressModerate StressLevel = "moderate"
	StressSevere   StressLevel = "severe"
)

var StressLevels = [3]StressLevel{StressMild, StressModerate, StressSevere}

func (l StressLevel) Valid() bool {
	switch l {
	case StressMild, StressModerate, StressSevere:
		return true
	}
	return false
}

// Classification thresholds on the combined negative-emotion score.
const (
	SevereThreshold   = 0.7
	ModerateThreshold = 0.4
)

// LevelForNegativeScore maps a combined sadness+fear+anger score to a level.
func LevelForNegativeScore(negative float64) StressLevel {
	switch {
	case negative > SevereThreshold:
		return StressSevere
	case negative > ModerateThreshold:
		return StressModerate
	default:
		return StressMild
	}
}

// SentimentResult is the outcome of one analysis call. Immutable once built.
type SentimentResult struct {
	Score          float64       `json:"score" dynamodbav:"score"`
	Level          StressLevel   `json:"level" dynamodbav:"level"`
	Emotions       EmotionVector `json:"emotions" dynamodbav:"emotions"`
	ImportantWords []string      `json:"important_words" dynamodbav:"important_words"`
}
