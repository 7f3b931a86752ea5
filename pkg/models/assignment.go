package models

import "fmt"

// Provenance prefixes keep interval ids unique across sources: the activity
// journal and the assignment table use independent key spaces, and the
// synthesized current row has no backing key at all.
const (
	JournalIntervalPrefix     = "act_"
	TableIntervalPrefix       = "tbl_"
	SynthesizedIntervalPrefix = "cur_"
)

func JournalIntervalID(rowID int64) string {
	return fmt.Sprintf("%s%d", JournalIntervalPrefix, rowID)
}

func TableIntervalID(rowID int64) string {
	return fmt.Sprintf("%s%d", TableIntervalPrefix, rowID)
}

func SynthesizedIntervalID(assetID string) string {
	return SynthesizedIntervalPrefix + assetID
}

// HolderRef identifies who held an asset. Name and Email stay empty when the
// recorded holder id no longer resolves to a user.
type HolderRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AssignmentInterval is one span of "user X held asset Y". A nil End means
// the loan is still in effect.
type AssignmentInterval struct {
	ID      string     `json:"id"`
	AssetID string     `json:"-"`
	Holder  *HolderRef `json:"user"`
	Start   Date       `json:"start"`
	End     *Date      `json:"end"`
}

func (i *AssignmentInterval) IsOpen() bool {
	return i.End == nil
}

// HeldBy reports whether the interval names the given holder.
func (i *AssignmentInterval) HeldBy(userID string) bool {
	return i.Holder != nil && i.Holder.ID == userID
}
