// Package insights derives trend views from the entry collection. Every
// function here is pure: no I/O, no mutation of its inputs, and no failure
// mode. Malformed per-entry emotion values are sanitized rather than raised.
//
// Day grouping always uses the UTC calendar date, regardless of where an
// entry was written.
package insights

import (
	"math"
	"sort"
	"time"

	"github.com/moodlens/moodlens/internal/models"
)

const dayFormat = "2006-01-02"

// Distribution returns the share of entries per stress level in whole
// percent. An empty collection yields all zeroes.
func Distribution(entries []models.Entry) models.StressDistribution {
	if len(entries) == 0 {
		return models.StressDistribution{}
	}

	counts := make(map[models.StressLevel]int, len(models.StressLevels))
	for _, entry := range entries {
		counts[entry.Analysis.Level]++
	}

	total := float64(len(entries))
	percent := func(level models.StressLevel) int {
		return int(math.Round(float64(counts[level]) / total * 100))
	}

	return models.StressDistribution{
		Mild:     percent(models.StressMild),
		Moderate: percent(models.StressModerate),
		Severe:   percent(models.StressSevere),
	}
}

// AverageEmotions returns the arithmetic mean per emotion across all entries,
// or the zero vector for an empty collection.
func AverageEmotions(entries []models.Entry) models.EmotionVector {
	if len(entries) == 0 {
		return models.ZeroEmotionVector()
	}

	var sums [6]float64
	for _, entry := range entries {
		for i, val := range entry.Analysis.Emotions.Sanitized().Values() {
			sums[i] += val
		}
	}
	for i := range sums {
		sums[i] /= float64(len(entries))
	}
	return models.EmotionVectorFromValues(sums)
}

// AverageScore returns the mean sentiment score across all entries, or 0 for
// an empty collection.
func AverageScore(entries []models.Entry) float64 {
	if len(entries) == 0 {
		return 0
	}
	var total float64
	for _, entry := range entries {
		score := entry.Analysis.Score
		if math.IsNaN(score) || math.IsInf(score, 0) {
			continue
		}
		total += score
	}
	return total / float64(len(entries))
}

// EntriesInRange returns the entries whose timestamp falls in [start, end],
// inclusive on both ends.
func EntriesInRange(entries []models.Entry, start, end time.Time) []models.Entry {
	var inRange []models.Entry
	for _, entry := range entries {
		if entry.Timestamp.Before(start) || entry.Timestamp.After(end) {
			continue
		}
		inRange = append(inRange, entry)
	}
	return inRange
}

// DailyTrends groups entries by UTC calendar day and returns one TrendPoint
// per day with data, sorted ascending by date, keeping only the most recent
// windowDays points. Days without entries are never padded in.
func DailyTrends(entries []models.Entry, windowDays int) []models.TrendPoint {
	if windowDays <= 0 || len(entries) == 0 {
		return nil
	}

	type daySums struct {
		sums  [6]float64
		count int
	}
	byDay := make(map[string]*daySums)

	for _, entry := range entries {
		date := entry.Timestamp.UTC().Format(dayFormat)
		day, ok := byDay[date]
		if !ok {
			day = &daySums{}
			byDay[date] = day
		}
		for i, val := range entry.Analysis.Emotions.Sanitized().Values() {
			day.sums[i] += val
		}
		day.count++
	}

	dates := make([]string, 0, len(byDay))
	for date := range byDay {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	if len(dates) > windowDays {
		dates = dates[len(dates)-windowDays:]
	}

	points := make([]models.TrendPoint, 0, len(dates))
	for _, date := range dates {
		day := byDay[date]
		avg := day.sums
		for i := range avg {
			avg[i] /= float64(day.count)
		}
		points = append(points, models.TrendPoint{
			Date:       date,
			Emotions:   models.EmotionVectorFromValues(avg),
			EntryCount: day.count,
		})
	}
	return points
}
