package models

import "facility/pkg/metadata"

type Asset struct {
	ID             string  `json:"id"`
	Mark           string  `json:"mark"`
	Reference      string  `json:"reference"`
	CPU            string  `json:"cpu"`
	GPU            string  `json:"gpu"`
	State          string  `json:"state"`
	IsBroken       bool    `json:"isBroken"`
	AssignedUser   *User   `json:"assignedUser,omitempty"`
	AssignedUserID *string `json:"assignedUserId"`
	ContractStart  *Date   `json:"contractStart"`
	ContractEnd    *Date   `json:"contractEnd"`
}

// FlatAssetRecord is the scan target for the assets/users join. Nullable date
// columns scan into value Dates; a zero Date stands for NULL.
type FlatAssetRecord struct {
	ID                string  `db:"id"`
	Mark              string  `db:"mark"`
	Reference         string  `db:"reference"`
	CPU               string  `db:"cpu"`
	GPU               string  `db:"gpu"`
	State             string  `db:"state"`
	AssignedUserID    *string `db:"assigned_user_id"`
	AssignedUserName  *string `db:"assigned_user_name"`
	AssignedUserEmail *string `db:"assigned_user_email"`
	ContractStart     Date    `db:"contract_start"`
	ContractEnd       Date    `db:"contract_end"`
}

func (fa *FlatAssetRecord) TransformToAsset() Asset {
	asset := Asset{
		ID:             fa.ID,
		Mark:           fa.Mark,
		Reference:      fa.Reference,
		CPU:            fa.CPU,
		GPU:            fa.GPU,
		State:          fa.State,
		IsBroken:       metadata.State(fa.State) != metadata.StateWorking,
		AssignedUserID: fa.AssignedUserID,
	}

	if !fa.ContractStart.IsZero() {
		start := fa.ContractStart
		asset.ContractStart = &start
	}
	if !fa.ContractEnd.IsZero() {
		end := fa.ContractEnd
		asset.ContractEnd = &end
	}

	if fa.AssignedUserID != nil {
		user := User{ID: *fa.AssignedUserID}
		if fa.AssignedUserName != nil {
			user.Name = *fa.AssignedUserName
		}
		if fa.AssignedUserEmail != nil {
			user.Email = *fa.AssignedUserEmail
		}
		asset.AssignedUser = &user
	}

	return asset
}
