package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/marketplace/backend/internal/domain/catalog"
	"github.com/marketplace/backend/internal/domain/shared"
	"github.com/marketplace/backend/internal/infrastructure/persistence/models"
)

// GormListingRepository implements catalog.ListingRepository using GORM
type GormListingRepository struct {
	db *gorm.DB
}

// NewGormListingRepository creates a new GormListingRepository
func NewGormListingRepository(db *gorm.DB) *GormListingRepository {
	return &GormListingRepository{db: db}
}

// FindByID finds a listing by its ID
func (r *GormListingRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Listing, error) {
	var model models.ListingModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds listings matching the filter
func (r *GormListingRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Listing, error) {
	var listingModels []models.ListingModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.ListingModel{}), filter)

	if err := query.Find(&listingModels).Error; err != nil {
		return nil, err
	}

	listings := make([]catalog.Listing, len(listingModels))
	for i, model := range listingModels {
		listings[i] = *model.ToDomain()
	}
	return listings, nil
}

// FindBySeller finds all listings posted by a seller
func (r *GormListingRepository) FindBySeller(ctx context.Context, sellerID uuid.UUID, filter shared.Filter) ([]catalog.Listing, error) {
	var listingModels []models.ListingModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.ListingModel{}).Where("seller_id = ?", sellerID),
		filter,
	)

	if err := query.Find(&listingModels).Error; err != nil {
		return nil, err
	}

	listings := make([]catalog.Listing, len(listingModels))
	for i, model := range listingModels {
		listings[i] = *model.ToDomain()
	}
	return listings, nil
}

// Count counts listings matching the filter
func (r *GormListingRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.ListingModel{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Categories returns the distinct categories in use
func (r *GormListingRepository) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := r.db.WithContext(ctx).
		Model(&models.ListingModel{}).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Save creates or updates a listing
func (r *GormListingRepository) Save(ctx context.Context, listing *catalog.Listing) error {
	model := models.ListingModelFromDomain(listing)
	return r.db.WithContext(ctx).Save(model).Error
}

// TransitionStatus atomically moves a listing from the expected status to the
// target status. The conditional update resolves concurrent buyers racing on
// one listing to a single winner; losers observe false with no error.
func (r *GormListingRepository) TransitionStatus(ctx context.Context, id uuid.UUID, from, to catalog.ListingStatus) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.ListingModel{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)

	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Delete removes a listing
func (r *GormListingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ListingModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// applyFilter applies filter options to the query
func (r *GormListingRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if orderBy := sanitizeListingOrderBy(filter.OrderBy); orderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(orderBy + " " + orderDir)
	} else {
		query = query.Order("created_at DESC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormListingRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ?", searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "category":
			query = query.Where("category = ?", value)
		case "price_min":
			query = query.Where("price >= ?", value)
		case "price_max":
			query = query.Where("price <= ?", value)
		}
	}

	return query
}

// sanitizeListingOrderBy allows only known sortable columns
func sanitizeListingOrderBy(orderBy string) string {
	switch orderBy {
	case "created_at", "updated_at", "price", "title":
		return orderBy
	}
	return ""
}

// Ensure GormListingRepository implements ListingRepository
var _ catalog.ListingRepository = (*GormListingRepository)(nil)
