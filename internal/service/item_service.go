package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/karthikbhat/invoice-hub-service/internal/domain"
	"github.com/karthikbhat/invoice-hub-service/internal/model"
	"github.com/karthikbhat/invoice-hub-service/internal/repository"
)

// ItemService defines the business logic for catalog items.
type ItemService interface {
	ListItems(ctx context.Context) ([]domain.Item, error)
	CreateItem(ctx context.Context, req *model.CreateItemRequest) (*domain.Item, error)
}

// ItemServiceImpl implements ItemService.
type ItemServiceImpl struct {
	repo repository.ItemRepository
}

// NewItemService creates a new ItemService.
func NewItemService(repo repository.ItemRepository) ItemService {
	return &ItemServiceImpl{repo: repo}
}

// ListItems returns all catalog items ordered by name.
func (s *ItemServiceImpl) ListItems(ctx context.Context) ([]domain.Item, error) {
	return s.repo.ListItems(ctx)
}

// CreateItem validates and persists a new catalog item. A value that does
// not parse as a number is reported separately from one that is out of
// range.
func (s *ItemServiceImpl) CreateItem(ctx context.Context, req *model.CreateItemRequest) (*domain.Item, error) {
	name := strings.TrimSpace(req.Name)

	unitPrice, priceOK := req.UnitPrice.Float64()
	gstPercent, gstOK := req.GSTPercent.Float64()
	if !priceOK || !gstOK {
		return nil, domain.NewValidationError("Invalid price or GST")
	}

	if utf8.RuneCountInString(name) < minNameLength {
		return nil, domain.NewValidationError("Item name must be at least 2 characters")
	}
	if unitPrice < 0 {
		return nil, domain.NewValidationError("Price cannot be negative")
	}
	if gstPercent < 0 || gstPercent > 100 {
		return nil, domain.NewValidationError("GST percent must be between 0 and 100")
	}

	exists, err := s.repo.ItemNameExists(ctx, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.NewConflictError("Item already exists")
	}

	item := &domain.Item{
		Name:       name,
		UnitPrice:  unitPrice,
		GSTPercent: gstPercent,
	}
	if err := s.repo.CreateItem(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}
