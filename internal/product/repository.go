package product

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/talkincode/stockpilot/internal/domain"
	"github.com/talkincode/stockpilot/pkg/common"
	"gorm.io/gorm"
)

// Repository handles database access for product records. Every read and
// mutation is scoped to the owning user; a record that belongs to another
// owner behaves exactly like a record that does not exist.
type Repository interface {
	// ListByOwner returns all of the owner's records, optionally filtered by a
	// case-insensitive substring match on name, newest first.
	ListByOwner(ctx context.Context, ownerID int64, search string) ([]domain.Product, error)

	// GetOwned retrieves one record by id within the owner's scope.
	GetOwned(ctx context.Context, ownerID, id int64) (*domain.Product, error)

	// Create inserts a new record, assigning an ID when absent.
	Create(ctx context.Context, p *domain.Product) error

	// Update rewrites the mutable fields of an owned record. The owner is
	// immutable.
	Update(ctx context.Context, p *domain.Product) error

	// DeleteOwned removes an owned record; deleting an absent or foreign id
	// reports gorm.ErrRecordNotFound.
	DeleteOwned(ctx context.Context, ownerID, id int64) error
}

// GormRepository is the GORM implementation of Repository
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a new GORM-based repository
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) ListByOwner(ctx context.Context, ownerID int64, search string) ([]domain.Product, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", ownerID)

	if s := strings.TrimSpace(search); s != "" {
		if strings.EqualFold(r.db.Name(), "postgres") {
			query = query.Where("name ILIKE ?", "%"+s+"%")
		} else {
			query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(s)+"%")
		}
	}

	var rows []domain.Product
	if err := query.Order("created_at DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "list products")
	}
	return rows, nil
}

func (r *GormRepository) GetOwned(ctx context.Context, ownerID, id int64) (*domain.Product, error) {
	var p domain.Product
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *GormRepository) Create(ctx context.Context, p *domain.Product) error {
	if p.ID == 0 {
		p.ID = common.UUIDint64()
	}
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return errors.Wrap(err, "create product")
	}
	return nil
}

func (r *GormRepository) Update(ctx context.Context, p *domain.Product) error {
	tx := r.db.WithContext(ctx).
		Model(&domain.Product{}).
		Where("id = ? AND user_id = ?", p.ID, p.UserID).
		Updates(map[string]interface{}{
			"name":        p.Name,
			"quantity":    p.Quantity,
			"weight_unit": p.WeightUnit,
			"amount":      p.Amount,
			"updated_at":  time.Now(),
		})
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "update product")
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormRepository) DeleteOwned(ctx context.Context, ownerID, id int64) error {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&domain.Product{})
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "delete product")
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
