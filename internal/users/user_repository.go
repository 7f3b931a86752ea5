package users

import (
	"fmt"

	"facility/internal/repository"
	custom_error "facility/pkg/errors"
	"facility/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type UserRepository interface {
	GetUser(id string) (*models.User, error)
	GetUsers() ([]models.User, error)
}

type userRepositoryImpl struct {
	repository *repository.Repository
}

func (r *userRepositoryImpl) GetUsers() ([]models.User, error) {
	var users []models.User
	query := r.repository.GoquDBWrapper.Select("id", "name", "email").
		From("users").
		Order(goqu.I("name").Asc())

	err := query.Executor().ScanStructs(&users)
	if err != nil {
		return nil, fmt.Errorf("error executing SQL statement: %w", err)
	}

	return users, nil
}

func (r *userRepositoryImpl) GetUser(id string) (*models.User, error) {
	var user models.User
	query := r.repository.GoquDBWrapper.Select("id", "name", "email").
		From("users").
		Where(goqu.Ex{"id": id})

	found, err := query.Executor().ScanStruct(&user)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if !found {
		return nil, custom_error.NewNotFoundError("user", id)
	}

	return &user, nil
}

func NewRepository(r *repository.Repository) UserRepository {
	return &userRepositoryImpl{repository: r}
}
