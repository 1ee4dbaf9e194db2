package models

import (
	"math"
	"testing"
)

func TestEmotionVector_Normalized(t *testing.T) {
	t.Parallel()

	v := EmotionVector{Joy: 2, Sadness: 1, Anger: 1}.Normalized()
	if math.Abs(v.Sum()-1.0) > 1e-9 {
		t.Fatalf("sum=%v", v.Sum())
	}
	if math.Abs(v.Joy-0.5) > 1e-9 {
		t.Fatalf("joy=%v", v.Joy)
	}

	if z := ZeroEmotionVector().Normalized(); z != ZeroEmotionVector() {
		t.Fatalf("zero vector changed by normalization: %+v", z)
	}
}

func TestEmotionVector_Sanitized(t *testing.T) {
	t.Parallel()

	v := EmotionVector{
		Joy:      math.NaN(),
		Sadness:  math.Inf(1),
		Anger:    -0.5,
		Fear:     1.5,
		Love:     0.3,
		Surprise: 0,
	}.Sanitized()

	want := EmotionVector{Fear: 1, Love: 0.3}
	if v != want {
		t.Fatalf("got %+v, want %+v", v, want)
	}
}

func TestLevelForNegativeScore(t *testing.T) {
	t.Parallel()

	cases := []struct {
		negative float64
		want     StressLevel
	}{
		{0, StressMild},
		{0.4, StressMild},
		{0.41, StressModerate},
		{0.7, StressModerate},
		{0.71, StressSevere},
		{1, StressSevere},
	}
	for _, tc := range cases {
		if got := LevelForNegativeScore(tc.negative); got != tc.want {
			t.Fatalf("negative=%v: got %q, want %q", tc.negative, got, tc.want)
		}
	}
}

func TestStressLevel_Valid(t *testing.T) {
	t.Parallel()

	for _, l := range StressLevels {
		if !l.Valid() {
			t.Fatalf("%q should be valid", l)
		}
	}
	if StressLevel("critical").Valid() {
		t.Fatal("unknown level accepted")
	}
}
