package models

import "time"

// Entry is one analyzed journal entry. Entries are immutable after creation;
// the entry collection is the sole source of truth for every insight view.
type Entry struct {
	ID              string          `json:"id" dynamodbav:"id"`
	Text            string          `json:"text" dynamodbav:"text"`
	Timestamp       time.Time       `json:"timestamp" dynamodbav:"timestamp,unixtime"`
	Analysis        SentimentResult `json:"analysis" dynamodbav:"analysis"`
	Recommendations []string        `json:"recommendations" dynamodbav:"recommendations"`
}

// EntrySubmission is the raw journal text as it arrives on the ingestion
// topic, before validation and analysis.
type EntrySubmission struct {
	SubmissionID string    `json:"submission_id"`
	Text         string    `json:"text"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

// TrendPoint is one calendar day's averaged emotions, derived on demand from
// the entry collection and never persisted.
type TrendPoint struct {
	Date       string        `json:"date"` // UTC calendar day, ISO format
	Emotions   EmotionVector `json:"emotions"`
	EntryCount int           `json:"entry_count"`
}

// StressDistribution holds the share of entries per stress level, in whole
// percent.
type StressDistribution struct {
	Mild     int `json:"mild"`
	Moderate int `json:"moderate"`
	Severe   int `json:"severe"`
}
