package models

import (
	"encoding/json"
	"time"
)

// JournalEntry is one row of the shared activity journal, joined with the
// causing user's display fields.
type JournalEntry struct {
	ID          int64     `db:"id"`
	LogName     string    `db:"log_name"`
	Description string    `db:"description"`
	SubjectType string    `db:"subject_type"`
	SubjectID   string    `db:"subject_id"`
	Event       string    `db:"event"`
	CauserID    *string   `db:"causer_id"`
	CauserName  *string   `db:"causer_name"`
	CauserEmail *string   `db:"causer_email"`
	PropsRaw    []byte    `db:"properties"`
	CreatedAt   time.Time `db:"created_at"`
}

type assignmentProps struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ToInterval decodes the entry's serialized payload into an assignment
// interval. Journal payloads are written by several producers and are not
// trusted: an undecodable payload or an unusable start yields ok=false and
// the row contributes nothing to the timeline.
func (e *JournalEntry) ToInterval() (AssignmentInterval, bool) {
	var props assignmentProps
	if len(e.PropsRaw) == 0 {
		return AssignmentInterval{}, false
	}
	if err := json.Unmarshal(e.PropsRaw, &props); err != nil {
		return AssignmentInterval{}, false
	}

	start, err := ParseDate(props.Start)
	if err != nil {
		return AssignmentInterval{}, false
	}

	interval := AssignmentInterval{
		ID:      JournalIntervalID(e.ID),
		AssetID: e.SubjectID,
		Start:   start,
	}

	if props.End != "" {
		if end, err := ParseDate(props.End); err == nil {
			interval.End = &end
		}
	}

	if e.CauserID != nil {
		holder := HolderRef{ID: *e.CauserID}
		if e.CauserName != nil {
			holder.Name = *e.CauserName
		}
		if e.CauserEmail != nil {
			holder.Email = *e.CauserEmail
		}
		interval.Holder = &holder
	}

	return interval, true
}
