package repository

import (
	"context"
	"fmt"

	"github.com/d9705996/kysai/internal/model"
	"gorm.io/gorm"
)

type OrganizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// FirstOrCreate returns the organization with the given name, creating it
// when it does not exist.
func (r *OrganizationRepository) FirstOrCreate(ctx context.Context, name string) (*model.Organization, error) {
	org := model.Organization{Name: name}
	if err := r.db.WithContext(ctx).Where("name = ?", name).FirstOrCreate(&org).Error; err != nil {
		return nil, fmt.Errorf("first or create organization %q: %w", name, err)
	}
	return &org, nil
}
