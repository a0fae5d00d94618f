package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/marketplace/backend/internal/domain/catalog"
	"github.com/marketplace/backend/internal/domain/shared"
)

// Number of listings shown on the landing page
const featuredCount = 8

// ListingService handles listing business operations
type ListingService struct {
	listingRepo    catalog.ListingRepository
	eventPublisher shared.EventPublisher
}

// NewListingService creates a new ListingService
func NewListingService(listingRepo catalog.ListingRepository) *ListingService {
	return &ListingService{
		listingRepo: listingRepo,
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *ListingService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create publishes a new listing owned by the seller
func (s *ListingService) Create(ctx context.Context, sellerID uuid.UUID, req CreateListingRequest) (*ListingResponse, error) {
	listing, err := catalog.NewListing(sellerID, req.Title, req.Author, req.Category, catalog.Condition(req.Condition), req.Price)
	if err != nil {
		return nil, err
	}

	if req.Description != "" {
		desc := req.Description
		if err := listing.UpdateDetails("", "", "", "", &desc); err != nil {
			return nil, err
		}
	}
	if len(req.ImageURLs) > 0 {
		listing.SetImageURLs(req.ImageURLs)
	}

	if err := s.listingRepo.Save(ctx, listing); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, listing)

	response := ToListingResponse(listing)
	return &response, nil
}

// GetByID retrieves a single listing
func (s *ListingService) GetByID(ctx context.Context, listingID uuid.UUID) (*ListingResponse, error) {
	listing, err := s.listingRepo.FindByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	response := ToListingResponse(listing)
	return &response, nil
}

// List retrieves available listings with filtering and pagination.
// Only available listings are shown in public browse results.
func (s *ListingService) List(ctx context.Context, filter ListingListFilter) ([]ListingResponse, int64, error) {
	domainFilter := s.toDomainFilter(filter)
	domainFilter.Filters["status"] = catalog.ListingStatusAvailable.String()

	listings, err := s.listingRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.listingRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToListingResponses(listings), total, nil
}

// Featured retrieves the latest available listings for the landing page
func (s *ListingService) Featured(ctx context.Context) ([]ListingResponse, error) {
	filter := shared.DefaultFilter()
	filter.PageSize = featuredCount
	filter.Filters["status"] = catalog.ListingStatusAvailable.String()

	listings, err := s.listingRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return ToListingResponses(listings), nil
}

// Categories retrieves the distinct categories in use
func (s *ListingService) Categories(ctx context.Context) ([]string, error) {
	return s.listingRepo.Categories(ctx)
}

// ListBySeller retrieves a seller's own listings, all statuses included
func (s *ListingService) ListBySeller(ctx context.Context, sellerID uuid.UUID, filter ListingListFilter) ([]ListingResponse, error) {
	listings, err := s.listingRepo.FindBySeller(ctx, sellerID, s.toDomainFilter(filter))
	if err != nil {
		return nil, err
	}
	return ToListingResponses(listings), nil
}

// Update modifies a listing. Only the owner may update, and sold
// listings are frozen because orders reference them.
func (s *ListingService) Update(ctx context.Context, callerID, listingID uuid.UUID, req UpdateListingRequest) (*ListingResponse, error) {
	listing, err := s.listingRepo.FindByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if !listing.IsOwnedBy(callerID) {
		return nil, shared.ErrForbidden
	}
	if listing.Status == catalog.ListingStatusSold {
		return nil, shared.NewDomainError("INVALID_STATE", "Sold listings cannot be edited")
	}

	title, author, category, condition := "", "", "", catalog.Condition("")
	if req.Title != nil {
		title = *req.Title
	}
	if req.Author != nil {
		author = *req.Author
	}
	if req.Category != nil {
		category = *req.Category
	}
	if req.Condition != nil {
		condition = catalog.Condition(*req.Condition)
	}
	if err := listing.UpdateDetails(title, author, category, condition, req.Description); err != nil {
		return nil, err
	}
	if req.Price != nil {
		if err := listing.ChangePrice(*req.Price); err != nil {
			return nil, err
		}
	}
	if req.ImageURLs != nil {
		listing.SetImageURLs(req.ImageURLs)
	}

	if err := s.listingRepo.Save(ctx, listing); err != nil {
		return nil, err
	}

	response := ToListingResponse(listing)
	return &response, nil
}

// Delete removes a listing. Only the owner may delete, and sold
// listings are kept because orders reference them.
func (s *ListingService) Delete(ctx context.Context, callerID, listingID uuid.UUID) error {
	listing, err := s.listingRepo.FindByID(ctx, listingID)
	if err != nil {
		return err
	}
	if !listing.IsOwnedBy(callerID) {
		return shared.ErrForbidden
	}
	if listing.Status == catalog.ListingStatusSold {
		return shared.NewDomainError("INVALID_STATE", "Sold listings cannot be deleted")
	}

	return s.listingRepo.Delete(ctx, listingID)
}

func (s *ListingService) toDomainFilter(filter ListingListFilter) shared.Filter {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}
	domainFilter.Search = filter.Search

	if filter.Category != "" {
		domainFilter.Filters["category"] = filter.Category
	}
	if filter.PriceMin != nil {
		domainFilter.Filters["price_min"] = *filter.PriceMin
	}
	if filter.PriceMax != nil {
		domainFilter.Filters["price_max"] = *filter.PriceMax
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}

	return domainFilter
}

func (s *ListingService) publishEvents(ctx context.Context, listing *catalog.Listing) {
	if s.eventPublisher == nil {
		return
	}
	for _, event := range listing.GetDomainEvents() {
		_ = s.eventPublisher.Publish(ctx, event)
	}
	listing.ClearDomainEvents()
}
