package models

import "math"

const (
	EmotionJoy      = "joy"
	EmotionSadness  = "sadness"
	EmotionAnger    = "anger"
	EmotionFear     = "fear"
	EmotionLove     = "love"
	EmotionSurprise = "surprise"
)

// EmotionNames is the canonical ordered key set of the emotion space. All
// vector reads and writes go through these names; arbitrary keys never make it
// into a stored result.
var EmotionNames = [6]string{
	EmotionJoy,
	EmotionSadness,
	EmotionAnger,
	EmotionFear,
	EmotionLove,
	EmotionSurprise,
}

// EmotionVector holds one intensity in [0,1] per canonical emotion.
type EmotionVector struct {
	Joy      float64 `json:"joy" dynamodbav:"joy"`
	Sadness  float64 `json:"sadness" dynamodbav:"sadness"`
	Anger    float64 `json:"anger" dynamodbav:"anger"`
	Fear     float64 `json:"fear" dynamodbav:"fear"`
	Love     float64 `json:"love" dynamodbav:"love"`
	Surprise float64 `json:"surprise" dynamodbav:"surprise"`
}

func ZeroEmotionVector() EmotionVector {
	return EmotionVector{}
}

// Values returns the intensities in EmotionNames order.
func (v EmotionVector) Values() [6]float64 {
	return [6]float64{v.Joy, v.Sadness, v.Anger, v.Fear, v.Love, v.Surprise}
}

// EmotionVectorFromValues builds a vector from intensities in EmotionNames order.
func EmotionVectorFromValues(vals [6]float64) EmotionVector {
	return EmotionVector{
		Joy:      vals[0],
		Sadness:  vals[1],
		Anger:    vals[2],
		Fear:     vals[3],
		Love:     vals[4],
		Surprise: vals[5],
	}
}

func (v EmotionVector) Sum() float64 {
	var sum float64
	for _, val := range v.Values() {
		sum += val
	}
	return sum
}

// Sanitized clamps every intensity to [0,1] and zeroes non-finite values, so
// one malformed record cannot poison an aggregation.
func (v EmotionVector) Sanitized() EmotionVector {
	vals := v.Values()
	for i, val := range vals {
		switch {
		case math.IsNaN(val) || math.IsInf(val, 0):
			vals[i] = 0
		case val < 0:
			vals[i] = 0
		case val > 1:
			vals[i] = 1
		}
	}
	return EmotionVectorFromValues(vals)
}

// Normalized scales the vector so its intensities sum to 1. A zero vector
// stays zero.
func (v EmotionVector) Normalized() EmotionVector {
	sum := v.Sum()
	if sum <= 0 {
		return ZeroEmotionVector()
	}
	vals := v.Values()
	for i := range vals {
		vals[i] /= sum
	}
	return EmotionVectorFromValues(vals)
}
