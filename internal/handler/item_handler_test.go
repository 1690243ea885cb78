package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karthikbhat/invoice-hub-service/internal/domain"
	"github.com/karthikbhat/invoice-hub-service/internal/model"
)

type fakeItemService struct {
	items     []domain.Item
	listErr   error
	created   *domain.Item
	createErr error
}

func (f *fakeItemService) ListItems(ctx context.Context) ([]domain.Item, error) {
	return f.items, f.listErr
}

func (f *fakeItemService) CreateItem(ctx context.Context, req *model.CreateItemRequest) (*domain.Item, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.created, nil
}

func newItemRouter(svc *fakeItemService) *gin.Engine {
	router := gin.New()
	NewItemHandler(svc).RegisterRoutes(router.Group("/api"))
	return router
}

func TestGetItemsReturnsList(t *testing.T) {
	router := newItemRouter(&fakeItemService{
		items: []domain.Item{
			{ID: 1, Name: "Hosting", UnitPrice: 40, GSTPercent: 18},
			{ID: 2, Name: "Widget", UnitPrice: 10, GSTPercent: 18},
		},
	})

	w := performRequest(router, http.MethodGet, "/api/items", "")

	assert.Equal(t, http.StatusOK, w.Code)
	var resp model.ItemListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, 40.0, resp.Items[0].UnitPrice)
}

func TestAddItemValidationMessagePassesThrough(t *testing.T) {
	router := newItemRouter(&fakeItemService{
		createErr: domain.NewValidationError("Invalid price or GST"),
	})

	w := performRequest(router, http.MethodPost, "/api/items", `{"name":"Widget","unit_price":"x","gst_percent":18}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp model.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid price or GST", resp.Message)
}

func TestAddItemConflict(t *testing.T) {
	router := newItemRouter(&fakeItemService{
		createErr: domain.NewConflictError("Item already exists"),
	})

	w := performRequest(router, http.MethodPost, "/api/items", `{"name":"Widget","unit_price":10,"gst_percent":18}`)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAddItemCreated(t *testing.T) {
	router := newItemRouter(&fakeItemService{
		created: &domain.Item{ID: 3, Name: "Widget", UnitPrice: 10, GSTPercent: 18},
	})

	w := performRequest(router, http.MethodPost, "/api/items", `{"name":"Widget","unit_price":10,"gst_percent":18}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp model.ItemCreatedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Item added successfully", resp.Message)
	assert.Equal(t, int64(3), resp.Item.ID)
}
