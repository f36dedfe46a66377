package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/caffeinepub/supply-chain-management-app/internal/apperr"
	"github.com/caffeinepub/supply-chain-management-app/internal/dto"
	"github.com/caffeinepub/supply-chain-management-app/internal/model"
	"github.com/caffeinepub/supply-chain-management-app/internal/repository"
)

type VendorService interface {
	Create(ctx context.Context, req dto.CreateVendorRequest) (*dto.VendorResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.VendorResponse, error)
	List(ctx context.Context) ([]dto.VendorResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateVendorRequest) (*dto.VendorResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type vendorService struct {
	repo repository.VendorRepository
	rdb  *redis.Client
}

func NewVendorService(repo repository.VendorRepository, rdb *redis.Client) VendorService {
	return &vendorService{repo: repo, rdb: rdb}
}

func vendorCacheKey(id uuid.UUID) string { return "vendor:" + id.String() }

func (s *vendorService) Create(ctx context.Context, req dto.CreateVendorRequest) (*dto.VendorResponse, error) {
	vendor := &model.Vendor{
		CompanyName:   req.CompanyName,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		PhoneNumber:   req.PhoneNumber,
		Address:       req.Address,
		Category:      req.Category,
		Status:        model.VendorActive,
	}
	if err := s.repo.Create(ctx, vendor); err != nil {
		return nil, err
	}
	return toVendorResponse(vendor), nil
}

func (s *vendorService) GetByID(ctx context.Context, id uuid.UUID) (*dto.VendorResponse, error) {
	key := vendorCacheKey(id)
	var cached dto.VendorResponse
	if cacheGet(ctx, s.rdb, key, &cached) {
		return &cached, nil
	}

	vendor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toVendorResponse(vendor)
	cacheSet(ctx, s.rdb, key, resp)
	return resp, nil
}

func (s *vendorService) List(ctx context.Context) ([]dto.VendorResponse, error) {
	vendors, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VendorResponse, len(vendors))
	for i := range vendors {
		out[i] = *toVendorResponse(&vendors[i])
	}
	return out, nil
}

func (s *vendorService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateVendorRequest) (*dto.VendorResponse, error) {
	status := model.VendorStatus(req.Status)
	if !status.Valid() {
		return nil, apperr.Validationf("unknown vendor status %q", req.Status)
	}

	vendor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	vendor.CompanyName = req.CompanyName
	vendor.ContactPerson = req.ContactPerson
	vendor.Email = req.Email
	vendor.PhoneNumber = req.PhoneNumber
	vendor.Address = req.Address
	vendor.Category = req.Category
	vendor.Status = status

	if err := s.repo.Update(ctx, vendor); err != nil {
		return nil, err
	}
	cacheDel(ctx, s.rdb, vendorCacheKey(id))
	return toVendorResponse(vendor), nil
}

func (s *vendorService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	cacheDel(ctx, s.rdb, vendorCacheKey(id))
	return nil
}

func toVendorResponse(v *model.Vendor) *dto.VendorResponse {
	return &dto.VendorResponse{
		ID:            v.ID.String(),
		CompanyName:   v.CompanyName,
		ContactPerson: v.ContactPerson,
		Email:         v.Email,
		PhoneNumber:   v.PhoneNumber,
		Address:       v.Address,
		Category:      v.Category,
		Status:        string(v.Status),
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}
