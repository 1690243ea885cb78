package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karthikbhat/invoice-hub-service/internal/domain"
	"github.com/karthikbhat/invoice-hub-service/internal/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeClientService struct {
	clients   []domain.Client
	listErr   error
	created   *domain.Client
	createErr error
}

func (f *fakeClientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	return f.clients, f.listErr
}

func (f *fakeClientService) CreateClient(ctx context.Context, req *model.CreateClientRequest) (*domain.Client, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.created, nil
}

func newClientRouter(svc *fakeClientService) *gin.Engine {
	router := gin.New()
	NewClientHandler(svc).RegisterRoutes(router.Group("/api"))
	return router
}

func performRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetClientsReturnsList(t *testing.T) {
	email := "billing@acme.test"
	router := newClientRouter(&fakeClientService{
		clients: []domain.Client{
			{ID: 1, Name: "Acme Traders", Email: &email},
			{ID: 2, Name: "Zen Supplies"},
		},
	})

	w := performRequest(router, http.MethodGet, "/api/clients", "")

	assert.Equal(t, http.StatusOK, w.Code)
	var resp model.ClientListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Clients, 2)
	assert.Equal(t, "Acme Traders", resp.Clients[0].Name)
	assert.Nil(t, resp.Clients[1].Email)
}

func TestGetClientsDatabaseErrorIsGeneric(t *testing.T) {
	router := newClientRouter(&fakeClientService{
		listErr: domain.NewPersistenceError("query clients", assert.AnError),
	})

	w := performRequest(router, http.MethodGet, "/api/clients", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp model.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Database error", resp.Message)
}

func TestAddClientInvalidJSON(t *testing.T) {
	router := newClientRouter(&fakeClientService{})

	w := performRequest(router, http.MethodPost, "/api/clients", `{"name":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp model.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid JSON body", resp.Message)
}

func TestAddClientValidationError(t *testing.T) {
	router := newClientRouter(&fakeClientService{
		createErr: domain.NewValidationError("Client name must be at least 2 characters"),
	})

	w := performRequest(router, http.MethodPost, "/api/clients", `{"name":"A"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp model.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Client name must be at least 2 characters", resp.Message)
}

func TestAddClientConflict(t *testing.T) {
	router := newClientRouter(&fakeClientService{
		createErr: domain.NewConflictError("Client already exists"),
	})

	w := performRequest(router, http.MethodPost, "/api/clients", `{"name":"Acme Traders"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	var resp model.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Client already exists", resp.Message)
}

func TestAddClientCreated(t *testing.T) {
	router := newClientRouter(&fakeClientService{
		created: &domain.Client{ID: 7, Name: "Acme Traders"},
	})

	w := performRequest(router, http.MethodPost, "/api/clients", `{"name":"Acme Traders"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp model.ClientCreatedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Client added successfully", resp.Message)
	assert.Equal(t, int64(7), resp.Client.ID)
}
