package domain

import "time"

// RunRecord captures one pipeline run for the generation history.
type RunRecord struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Prompt     string    `json:"prompt"`
	AppName    string    `json:"app_name"`
	Framework  string    `json:"framework"`
	Language   string    `json:"language"`
	FromCache  bool      `json:"from_cache"`
	Built      bool      `json:"built"`
	FileCount  int       `json:"file_count"`
	DurationMS int64     `json:"duration_ms"`
}
