package insights

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/moodlens/moodlens/internal/models"
)

func entryAt(ts time.Time, level models.StressLevel, emotions models.EmotionVector) models.Entry {
	return models.Entry{
		ID:        fmt.Sprintf("e-%d", ts.UnixNano()),
		Text:      "test entry text here",
		Timestamp: ts,
		Analysis: models.SentimentResult{
			Level:    level,
			Emotions: emotions,
		},
	}
}

func TestDistribution_Empty(t *testing.T) {
	t.Parallel()

	if got := Distribution(nil); got != (models.StressDistribution{}) {
		t.Fatalf("got %+v, want all zero", got)
	}
}

func TestDistribution_Percentages(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	entries := []models.Entry{
		entryAt(now, models.StressMild, models.EmotionVector{Joy: 1}),
		entryAt(now, models.StressMild, models.EmotionVector{Joy: 1}),
		entryAt(now, models.StressModerate, models.EmotionVector{Sadness: 1}),
	}

	got := Distribution(entries)
	want := models.StressDistribution{Mild: 67, Moderate: 33, Severe: 0}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestAverageEmotions_Empty(t *testing.T) {
	t.Parallel()

	if got := AverageEmotions(nil); got != models.ZeroEmotionVector() {
		t.Fatalf("got %+v, want zero vector", got)
	}
}

func TestAverageEmotions_Mean(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	entries := []models.Entry{
		entryAt(now, models.StressMild, models.EmotionVector{Joy: 1}),
		entryAt(now, models.StressMild, models.EmotionVector{Sadness: 1}),
	}

	got := AverageEmotions(entries)
	if math.Abs(got.Joy-0.5) > 1e-9 || math.Abs(got.Sadness-0.5) > 1e-9 {
		t.Fatalf("got %+v, want joy=0.5 sadness=0.5", got)
	}
}

func TestAverageEmotions_SanitizesMalformedEntries(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	entries := []models.Entry{
		entryAt(now, models.StressMild, models.EmotionVector{Joy: math.NaN(), Anger: -3}),
		entryAt(now, models.StressMild, models.EmotionVector{Joy: 1}),
	}

	got := AverageEmotions(entries)
	if math.Abs(got.Joy-0.5) > 1e-9 {
		t.Fatalf("joy = %v, want 0.5", got.Joy)
	}
	if got.Anger != 0 {
		t.Fatalf("anger = %v, want 0", got.Anger)
	}
}

func TestDailyTrends_Empty(t *testing.T) {
	t.Parallel()

	if got := DailyTrends(nil, 7); len(got) != 0 {
		t.Fatalf("got %v, want empty", got)
	}
}

func TestDailyTrends_Windowing(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	var entries []models.Entry
	for day := 0; day < 10; day++ {
		ts := base.AddDate(0, 0, day)
		entries = append(entries, entryAt(ts, models.StressMild, models.EmotionVector{Joy: 1}))
	}

	got := DailyTrends(entries, 7)
	if len(got) != 7 {
		t.Fatalf("got %d points, want 7", len(got))
	}
	if got[0].Date != "2024-03-04" || got[6].Date != "2024-03-10" {
		t.Fatalf("window = [%s .. %s], want [2024-03-04 .. 2024-03-10]", got[0].Date, got[6].Date)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Date <= got[i-1].Date {
			t.Fatalf("points not sorted ascending: %s after %s", got[i].Date, got[i-1].Date)
		}
	}
}

func TestDailyTrends_FewerDaysThanWindow(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	entries := []models.Entry{
		entryAt(base, models.StressMild, models.EmotionVector{Joy: 1}),
		entryAt(base.Add(2*time.Hour), models.StressMild, models.EmotionVector{Sadness: 1}),
		entryAt(base.AddDate(0, 0, 1), models.StressMild, models.EmotionVector{Fear: 1}),
	}

	got := DailyTrends(entries, 7)
	if len(got) != 2 {
		t.Fatalf("got %d points, want 2", len(got))
	}
	first := got[0]
	if first.EntryCount != 2 {
		t.Fatalf("entry count = %d, want 2", first.EntryCount)
	}
	if math.Abs(first.Emotions.Joy-0.5) > 1e-9 || math.Abs(first.Emotions.Sadness-0.5) > 1e-9 {
		t.Fatalf("per-day average wrong: %+v", first.Emotions)
	}
}

func TestDailyTrends_GroupsByUTCDay(t *testing.T) {
	t.Parallel()

	// 23:30 UTC-5 on March 1 is March 2 in UTC.
	loc := time.FixedZone("UTC-5", -5*3600)
	entries := []models.Entry{
		entryAt(time.Date(2024, 3, 1, 23, 30, 0, 0, loc), models.StressMild, models.EmotionVector{Joy: 1}),
	}

	got := DailyTrends(entries, 7)
	if len(got) != 1 || got[0].Date != "2024-03-02" {
		t.Fatalf("got %+v, want a single 2024-03-02 point", got)
	}
}

func TestAverageScore(t *testing.T) {
	t.Parallel()

	if got := AverageScore(nil); got != 0 {
		t.Fatalf("empty: got %v, want 0", got)
	}

	now := time.Now().UTC()
	a := entryAt(now, models.StressMild, models.EmotionVector{Joy: 1})
	a.Analysis.Score = 0.5
	b := entryAt(now, models.StressModerate, models.EmotionVector{Sadness: 1})
	b.Analysis.Score = -0.5

	if got := AverageScore([]models.Entry{a, b}); math.Abs(got) > 1e-9 {
		t.Fatalf("got %v, want 0", got)
	}
}

func TestEntriesInRange(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	entries := []models.Entry{
		entryAt(base, models.StressMild, models.EmotionVector{Joy: 1}),
		entryAt(base.AddDate(0, 0, 5), models.StressMild, models.EmotionVector{Joy: 1}),
		entryAt(base.AddDate(0, 0, 10), models.StressMild, models.EmotionVector{Joy: 1}),
	}

	got := EntriesInRange(entries, base, base.AddDate(0, 0, 5))
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
}
