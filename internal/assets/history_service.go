package assets

import (
	"sort"

	"facility/internal/assignments"
	"facility/internal/journal"
	"facility/pkg/models"
)

// HistoryService reconstructs the assignment timeline of one asset from two
// independently written audit sources plus the asset's live state.
//
// The activity journal and the assignment table describe overlapping but not
// guaranteed-identical facts, so their rows are unioned without cross-source
// matching; provenance-prefixed ids keep the union collision-free. The one
// record neither source explicitly writes, the still-open current assignment,
// is synthesized from the asset's live assigned-user pointer.
type HistoryService struct {
	assetRepo      AssetRepository
	journalRepo    journal.JournalRepository
	assignmentRepo assignments.AssignmentRepository
	scanLimit      uint
}

func NewHistoryService(
	assetRepo AssetRepository,
	journalRepo journal.JournalRepository,
	assignmentRepo assignments.AssignmentRepository,
	scanLimit uint,
) *HistoryService {
	return &HistoryService{
		assetRepo:      assetRepo,
		journalRepo:    journalRepo,
		assignmentRepo: assignmentRepo,
		scanLimit:      scanLimit,
	}
}

// GetAssetHistory returns the asset's assignment intervals ordered by start
// date, most recent first. The result is computed fresh on every call and
// never persisted. An unknown asset id yields a NotFoundError; an asset with
// no recorded history yields an empty slice.
func (s *HistoryService) GetAssetHistory(assetID string) ([]models.AssignmentInterval, error) {
	asset, err := s.assetRepo.GetAsset(assetID)
	if err != nil {
		return nil, err
	}

	journalIntervals, err := s.journalRepo.GetAssetAssignments(assetID, s.scanLimit)
	if err != nil {
		return nil, err
	}

	tableIntervals, err := s.assignmentRepo.GetAssetAssignments(assetID, s.scanLimit)
	if err != nil {
		return nil, err
	}

	history := make([]models.AssignmentInterval, 0, len(journalIntervals)+len(tableIntervals)+1)
	for _, interval := range journalIntervals {
		if !interval.Start.IsZero() {
			history = append(history, interval)
		}
	}
	for _, interval := range tableIntervals {
		if !interval.Start.IsZero() {
			history = append(history, interval)
		}
	}

	history = ensureCurrentAssignment(history, asset)

	// Stable sort keeps union order among equal starts, so repeated calls on
	// unchanged data return identical output. Comparison is by calendar date,
	// not by any formatted representation.
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Start.After(history[j].Start)
	})

	return history, nil
}

// ensureCurrentAssignment appends an open interval for the asset's current
// holder when neither audit source recorded one. Applied after the union and
// before ordering, so the sort never special-cases the synthetic record.
func ensureCurrentAssignment(history []models.AssignmentInterval, asset *models.Asset) []models.AssignmentInterval {
	if asset.AssignedUserID == nil {
		return history
	}

	currentUserID := *asset.AssignedUserID
	for i := range history {
		if history[i].IsOpen() && history[i].HeldBy(currentUserID) {
			return history
		}
	}

	holder := models.HolderRef{ID: currentUserID}
	if asset.AssignedUser != nil {
		holder.Name = asset.AssignedUser.Name
		holder.Email = asset.AssignedUser.Email
	}

	start := models.Today()
	if asset.ContractStart != nil {
		start = *asset.ContractStart
	}

	return append(history, models.AssignmentInterval{
		ID:      models.SynthesizedIntervalID(asset.ID),
		AssetID: asset.ID,
		Holder:  &holder,
		Start:   start,
	})
}
