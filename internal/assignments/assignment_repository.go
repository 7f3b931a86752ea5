package assignments

import (
	"fmt"

	"facility/internal/repository"
	"facility/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type AssignmentRepository interface {
	GetAssetAssignments(assetID string, limit uint) ([]models.AssignmentInterval, error)
}

type assignmentRepositoryImpl struct {
	repository *repository.Repository
}

// A zero End stands for NULL, meaning the loan is still open.
type assignmentRow struct {
	ID        int64       `db:"id"`
	AssetID   string      `db:"asset_id"`
	UserID    *string     `db:"user_id"`
	UserName  *string     `db:"user_name"`
	UserEmail *string     `db:"user_email"`
	Start     models.Date `db:"start"`
	End       models.Date `db:"end"`
}

// GetAssetAssignments reads the dedicated assignment-history table for one
// asset, newest loan first, scanning at most limit rows. Rows without a start
// cannot be placed on a timeline and are excluded at the source. A table that
// was never provisioned contributes nothing.
func (r *assignmentRepositoryImpl) GetAssetAssignments(assetID string, limit uint) ([]models.AssignmentInterval, error) {
	provisioned, err := r.repository.HasTable("assignment_histories")
	if err != nil {
		return nil, err
	}
	if !provisioned {
		return nil, nil
	}

	query := r.repository.GoquDBWrapper.
		From(goqu.T("assignment_histories").As("ah")).
		LeftJoin(
			goqu.T("users").As("u"),
			goqu.On(goqu.I("u.id").Eq(goqu.I("ah.user_id"))),
		).
		Select(
			goqu.I("ah.id").As("id"),
			goqu.I("ah.asset_id").As("asset_id"),
			goqu.I("ah.user_id").As("user_id"),
			goqu.I("u.name").As("user_name"),
			goqu.I("u.email").As("user_email"),
			goqu.I("ah.start").As("start"),
			goqu.I("ah.end").As("end"),
		).
		Where(
			goqu.I("ah.asset_id").Eq(assetID),
			goqu.I("ah.start").IsNotNull(),
		).
		Order(goqu.I("ah.start").Desc()).
		Limit(limit)

	var rows []assignmentRow
	if err := query.Executor().ScanStructs(&rows); err != nil {
		return nil, fmt.Errorf("error executing SQL statement: %w", err)
	}

	intervals := make([]models.AssignmentInterval, 0, len(rows))
	for i := range rows {
		intervals = append(intervals, rows[i].toInterval())
	}

	return intervals, nil
}

func (row *assignmentRow) toInterval() models.AssignmentInterval {
	interval := models.AssignmentInterval{
		ID:      models.TableIntervalID(row.ID),
		AssetID: row.AssetID,
		Start:   row.Start,
	}

	if !row.End.IsZero() {
		end := row.End
		interval.End = &end
	}

	if row.UserID != nil {
		holder := models.HolderRef{ID: *row.UserID}
		if row.UserName != nil {
			holder.Name = *row.UserName
		}
		if row.UserEmail != nil {
			holder.Email = *row.UserEmail
		}
		interval.Holder = &holder
	}

	return interval
}

func NewRepository(r *repository.Repository) AssignmentRepository {
	return &assignmentRepositoryImpl{repository: r}
}
