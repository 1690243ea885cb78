package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karthikbhat/invoice-hub-service/internal/domain"
	"github.com/karthikbhat/invoice-hub-service/internal/model"
)

type fakeClientRepo struct {
	clients []domain.Client
	nextID  int64
	listErr error
}

func (f *fakeClientRepo) ListClients(ctx context.Context) ([]domain.Client, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.clients, nil
}

func (f *fakeClientRepo) CreateClient(ctx context.Context, client *domain.Client) error {
	f.nextID++
	client.ID = f.nextID
	f.clients = append(f.clients, *client)
	return nil
}

func (f *fakeClientRepo) ClientNameExists(ctx context.Context, name string) (bool, error) {
	for _, c := range f.clients {
		if strings.EqualFold(c.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func TestCreateClientRejectsShortName(t *testing.T) {
	svc := NewClientService(&fakeClientRepo{})

	_, err := svc.CreateClient(context.Background(), &model.CreateClientRequest{Name: "A"})

	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	assert.EqualError(t, err, "Client name must be at least 2 characters")
}

func TestCreateClientTrimsBeforeLengthCheck(t *testing.T) {
	svc := NewClientService(&fakeClientRepo{})

	_, err := svc.CreateClient(context.Background(), &model.CreateClientRequest{Name: "  B  "})
	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))

	client, err := svc.CreateClient(context.Background(), &model.CreateClientRequest{Name: "  Ab  "})
	require.NoError(t, err)
	assert.Equal(t, "Ab", client.Name)
}

func TestCreateClientDuplicateNameCaseInsensitive(t *testing.T) {
	repo := &fakeClientRepo{}
	svc := NewClientService(repo)

	_, err := svc.CreateClient(context.Background(), &model.CreateClientRequest{Name: "Acme Traders"})
	require.NoError(t, err)

	_, err = svc.CreateClient(context.Background(), &model.CreateClientRequest{Name: "ACME TRADERS"})
	require.Error(t, err)
	assert.Equal(t, domain.KindConflict, domain.KindOf(err))
	assert.EqualError(t, err, "Client already exists")

	// Differing by any character is a distinct client.
	_, err = svc.CreateClient(context.Background(), &model.CreateClientRequest{Name: "Acme Traders 2"})
	require.NoError(t, err)
}

func TestCreateClientNormalizesOptionalFields(t *testing.T) {
	repo := &fakeClientRepo{}
	svc := NewClientService(repo)

	client, err := svc.CreateClient(context.Background(), &model.CreateClientRequest{
		Name:    "Acme Traders",
		Email:   "   ",
		Address: " 12 Hill Road ",
	})
	require.NoError(t, err)

	assert.Nil(t, client.Email)
	require.NotNil(t, client.Address)
	assert.Equal(t, "12 Hill Road", *client.Address)
	assert.Equal(t, int64(1), client.ID)
}

func TestListClientsPassesThroughRepoErrors(t *testing.T) {
	repoErr := domain.NewPersistenceError("query clients", assert.AnError)
	svc := NewClientService(&fakeClientRepo{listErr: repoErr})

	_, err := svc.ListClients(context.Background())

	require.Error(t, err)
	assert.Equal(t, domain.KindPersistence, domain.KindOf(err))
}
