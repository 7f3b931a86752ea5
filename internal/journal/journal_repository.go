package journal

import (
	"fmt"

	"facility/internal/repository"
	"facility/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

// Journal filter constants. The activity journal is shared across entity
// types; assignment history for an asset is the slice matching all of these.
const (
	logName       = "asset"
	description   = "assignment history"
	subjectType   = "asset"
	assignedEvent = "assigned"
)

type JournalRepository interface {
	GetAssetAssignments(assetID string, limit uint) ([]models.AssignmentInterval, error)
}

type journalRepositoryImpl struct {
	repository *repository.Repository
}

// GetAssetAssignments reads assignment events for one asset from the shared
// activity journal, most recent first, scanning at most limit rows. Rows
// whose payload does not decode to a usable interval are skipped. A journal
// table that was never provisioned contributes nothing.
func (r *journalRepositoryImpl) GetAssetAssignments(assetID string, limit uint) ([]models.AssignmentInterval, error) {
	provisioned, err := r.repository.HasTable("activity_log")
	if err != nil {
		return nil, err
	}
	if !provisioned {
		return nil, nil
	}

	query := r.repository.GoquDBWrapper.
		From(goqu.T("activity_log").As("al")).
		LeftJoin(
			goqu.T("users").As("u"),
			goqu.On(goqu.I("u.id").Eq(goqu.I("al.causer_id"))),
		).
		Select(
			goqu.I("al.id").As("id"),
			goqu.I("al.log_name").As("log_name"),
			goqu.I("al.description").As("description"),
			goqu.I("al.subject_type").As("subject_type"),
			goqu.I("al.subject_id").As("subject_id"),
			goqu.I("al.event").As("event"),
			goqu.I("al.causer_id").As("causer_id"),
			goqu.I("u.name").As("causer_name"),
			goqu.I("u.email").As("causer_email"),
			goqu.I("al.properties").As("properties"),
			goqu.I("al.created_at").As("created_at"),
		).
		Where(goqu.Ex{
			"al.log_name":     logName,
			"al.description":  description,
			"al.subject_type": subjectType,
			"al.subject_id":   assetID,
			"al.event":        assignedEvent,
		}).
		Order(goqu.I("al.created_at").Desc()).
		Limit(limit)

	var entries []models.JournalEntry
	if err := query.Executor().ScanStructs(&entries); err != nil {
		return nil, fmt.Errorf("error executing SQL statement: %w", err)
	}

	intervals := make([]models.AssignmentInterval, 0, len(entries))
	for i := range entries {
		if interval, ok := entries[i].ToInterval(); ok {
			intervals = append(intervals, interval)
		}
	}

	return intervals, nil
}

func NewRepository(r *repository.Repository) JournalRepository {
	return &journalRepositoryImpl{repository: r}
}
