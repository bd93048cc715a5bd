// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"perfumeria/internal/domain/entity"
	"perfumeria/internal/domain/repository"
	"perfumeria/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cartRepository implements the repository.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{
		db: db,
	}
}

// Load retrieves a cart snapshot by id.
func (repo *cartRepository) Load(ctx context.Context, id uuid.UUID) (*entity.Cart, error) {
	var cartM model.CartModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&cartM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to load cart")
	}

	return cartM.ToEntity(), nil
}

// Save upserts the full cart snapshot. The item list always replaces the
// stored one, last write wins.
func (repo *cartRepository) Save(ctx context.Context, cart *entity.Cart) error {
	cartM := model.FromEntity(cart)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"items", "updated_at"}),
		}).
		Create(cartM).Error; err != nil {
		return errors.Wrap(err, "failed to save cart")
	}

	return nil
}

// Delete removes a cart; deleting an unknown cart is not an error.
func (repo *cartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CartModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete cart")
	}

	return nil
}
