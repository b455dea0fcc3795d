package model

import (
	"encoding/json"
	"time"
)

// Mode partitions stored predictions by subscription tier.
type Mode string

// Operating modes.
const (
	ModePro     Mode = "pro"
	ModeProPlus Mode = "proPlus"
)

// Valid reports whether the mode is one of the known tiers.
func (m Mode) Valid() bool {
	return m == ModePro || m == ModeProPlus
}

// EntryType identifies which task produced a history entry.
type EntryType string

// Entry types, one per prediction task.
const (
	EntrySingleEvent    EntryType = "single_event"
	EntryFirstHalf      EntryType = "first_half"
	EntryTicket         EntryType = "ticket"
	EntryMegaBets       EntryType = "mega_bets"
	EntryRecommendation EntryType = "recommendation"
	EntryGoalscorer     EntryType = "goalscorer"
	EntryNbaDigit       EntryType = "nba_digit"
	EntryBestChoice     EntryType = "best_choice"
	EntryNbaProphecy    EntryType = "nba_prophecy"
)

// Verification records the post-hoc audit of a stored prediction.
// IsSuccess is tri-state: true, false, or nil when the outcome cannot
// be determined (most commonly because the event has not occurred).
type Verification struct {
	ActualResults string `json:"actualResults"`
	Comparison    string `json:"comparison"`
	IsSuccess     *bool  `json:"isSuccess"`
	VerifiedAt    int64  `json:"verifiedAt"`
}

// HistoryEntry is one persisted prediction record. The store owns
// identity and ordering; ID and Timestamp are assigned on append.
type HistoryEntry struct {
	ID           string          `json:"id"`
	Timestamp    int64           `json:"timestamp"` // unix milliseconds
	Sport        string          `json:"sport"`
	Mode         Mode            `json:"mode"`
	Type         EntryType       `json:"type"`
	Label        string          `json:"label"`
	Data         json.RawMessage `json:"data"`
	Verification *Verification   `json:"verification,omitempty"`
}

// GeneratedAt converts the entry's millisecond timestamp to time.Time.
func (e HistoryEntry) GeneratedAt() time.Time {
	return time.UnixMilli(e.Timestamp)
}

// HistoryUpdate carries the mutable fields of an entry for a partial
// update. Nil fields are left untouched.
type HistoryUpdate struct {
	Label        *string
	Data         json.RawMessage
	Verification *Verification
}
