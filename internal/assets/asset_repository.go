package assets

import (
	"fmt"

	"facility/internal/repository"
	custom_error "facility/pkg/errors"
	"facility/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type AssetRepository interface {
	GetAsset(id string) (*models.Asset, error)
	GetAssets() ([]models.Asset, error)
}

type assetRepositoryImpl struct {
	repository *repository.Repository
}

func (r *assetRepositoryImpl) GetAssets() ([]models.Asset, error) {
	var records []models.FlatAssetRecord
	err := r.selectAssets().Executor().ScanStructs(&records)
	if err != nil {
		return nil, fmt.Errorf("error executing SQL statement: %w", err)
	}

	assets := make([]models.Asset, 0, len(records))
	for i := range records {
		assets = append(assets, records[i].TransformToAsset())
	}

	return assets, nil
}

func (r *assetRepositoryImpl) GetAsset(id string) (*models.Asset, error) {
	var record models.FlatAssetRecord
	found, err := r.selectAssets().
		Where(goqu.I("a.id").Eq(id)).
		Executor().
		ScanStruct(&record)
	if err != nil {
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}
	if !found {
		return nil, custom_error.NewNotFoundError("asset", id)
	}

	asset := record.TransformToAsset()
	return &asset, nil
}

func (r *assetRepositoryImpl) selectAssets() *goqu.SelectDataset {
	return r.repository.GoquDBWrapper.
		From(goqu.T("assets").As("a")).
		LeftJoin(
			goqu.T("users").As("u"),
			goqu.On(goqu.I("u.id").Eq(goqu.I("a.assigned_user_id"))),
		).
		Select(
			goqu.I("a.id").As("id"),
			goqu.I("a.mark").As("mark"),
			goqu.I("a.reference").As("reference"),
			goqu.I("a.cpu").As("cpu"),
			goqu.I("a.gpu").As("gpu"),
			goqu.I("a.state").As("state"),
			goqu.I("a.assigned_user_id").As("assigned_user_id"),
			goqu.I("u.name").As("assigned_user_name"),
			goqu.I("u.email").As("assigned_user_email"),
			goqu.I("a.contract_start").As("contract_start"),
			goqu.I("a.contract_end").As("contract_end"),
		).
		Order(goqu.I("a.mark").Asc())
}

func NewRepository(r *repository.Repository) AssetRepository {
	return &assetRepositoryImpl{repository: r}
}
