package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caffeinepub/supply-chain-management-app/internal/apperr"
	"github.com/caffeinepub/supply-chain-management-app/internal/dto"
	"github.com/caffeinepub/supply-chain-management-app/internal/model"
	"github.com/caffeinepub/supply-chain-management-app/internal/repository"
	"github.com/caffeinepub/supply-chain-management-app/internal/service"
)

// ── In-memory VendorRepository stub ──────────────────────────────────────────

type stubVendorRepo struct {
	vendors map[uuid.UUID]*model.Vendor
}

func newStubVendorRepo() *stubVendorRepo {
	return &stubVendorRepo{vendors: make(map[uuid.UUID]*model.Vendor)}
}

func (s *stubVendorRepo) Create(_ context.Context, v *model.Vendor) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	now := time.Now()
	v.CreatedAt = now
	v.UpdatedAt = now
	cloned := *v
	s.vendors[v.ID] = &cloned
	return nil
}

func (s *stubVendorRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Vendor, error) {
	v, ok := s.vendors[id]
	if !ok {
		return nil, &apperr.NotFoundError{Entity: "vendor", ID: id.String()}
	}
	cloned := *v
	return &cloned, nil
}

func (s *stubVendorRepo) List(_ context.Context) ([]model.Vendor, error) {
	var out []model.Vendor
	for _, v := range s.vendors {
		out = append(out, *v)
	}
	return out, nil
}

func (s *stubVendorRepo) Update(_ context.Context, v *model.Vendor) error {
	if _, ok := s.vendors[v.ID]; !ok {
		return &apperr.NotFoundError{Entity: "vendor", ID: v.ID.String()}
	}
	v.UpdatedAt = time.Now()
	cloned := *v
	s.vendors[v.ID] = &cloned
	return nil
}

func (s *stubVendorRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.vendors[id]; !ok {
		return &apperr.NotFoundError{Entity: "vendor", ID: id.String()}
	}
	delete(s.vendors, id)
	return nil
}

var _ repository.VendorRepository = (*stubVendorRepo)(nil)

// ── Tests ────────────────────────────────────────────────────────────────────

func validVendorRequest() dto.CreateVendorRequest {
	return dto.CreateVendorRequest{
		CompanyName:   "Northfield Industrial Supply",
		ContactPerson: "Dana Whitfield",
		Email:         "dana@northfield-supply.example",
		PhoneNumber:   "+1-555-0142",
		Address:       "310 Harbor Rd",
		Category:      "industrial",
	}
}

func TestCreateVendorDefaultsToActive(t *testing.T) {
	svc := service.NewVendorService(newStubVendorRepo(), nil)

	resp, err := svc.Create(context.Background(), validVendorRequest())

	require.NoError(t, err)
	assert.Equal(t, "active", resp.Status)
	assert.Equal(t, "Northfield Industrial Supply", resp.CompanyName)
	assert.NotEmpty(t, resp.ID)
}

func TestVendorRoundTrip(t *testing.T) {
	svc := service.NewVendorService(newStubVendorRepo(), nil)
	created, err := svc.Create(context.Background(), validVendorRequest())
	require.NoError(t, err)

	fetched, err := svc.GetByID(context.Background(), uuid.MustParse(created.ID))

	require.NoError(t, err)
	assert.Equal(t, created.CompanyName, fetched.CompanyName)
	assert.Equal(t, created.Email, fetched.Email)
}

func TestGetUnknownVendor(t *testing.T) {
	svc := service.NewVendorService(newStubVendorRepo(), nil)

	_, err := svc.GetByID(context.Background(), uuid.New())

	assert.True(t, apperr.IsNotFound(err))
}

func TestUpdateVendorReplacesAllFields(t *testing.T) {
	svc := service.NewVendorService(newStubVendorRepo(), nil)
	created, err := svc.Create(context.Background(), validVendorRequest())
	require.NoError(t, err)

	resp, err := svc.Update(context.Background(), uuid.MustParse(created.ID), dto.UpdateVendorRequest{
		CompanyName:   "Northfield Supply Co",
		ContactPerson: "Joan Ellis",
		Email:         "joan@northfield-supply.example",
		PhoneNumber:   "+1-555-0199",
		Address:       "12 Dock St",
		Category:      "industrial",
		Status:        "inactive",
	})

	require.NoError(t, err)
	assert.Equal(t, "Northfield Supply Co", resp.CompanyName)
	assert.Equal(t, "inactive", resp.Status)
}

func TestUpdateVendorRejectsUnknownStatus(t *testing.T) {
	svc := service.NewVendorService(newStubVendorRepo(), nil)
	created, err := svc.Create(context.Background(), validVendorRequest())
	require.NoError(t, err)

	req := dto.UpdateVendorRequest{
		CompanyName:   "x",
		ContactPerson: "x",
		Email:         "x@example.com",
		PhoneNumber:   "x",
		Address:       "x",
		Category:      "x",
		Status:        "suspended",
	}
	_, err = svc.Update(context.Background(), uuid.MustParse(created.ID), req)

	assert.True(t, apperr.IsValidation(err))
}

func TestDeleteVendor(t *testing.T) {
	svc := service.NewVendorService(newStubVendorRepo(), nil)
	created, err := svc.Create(context.Background(), validVendorRequest())
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	require.NoError(t, svc.Delete(context.Background(), id))

	_, err = svc.GetByID(context.Background(), id)
	assert.True(t, apperr.IsNotFound(err))

	err = svc.Delete(context.Background(), id)
	assert.True(t, apperr.IsNotFound(err))
}
