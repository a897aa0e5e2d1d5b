package services

import (
	"context"
	"fmt"
	"strings"

	"ascendops/internal/auth"
	"ascendops/internal/models/db_models"
	"ascendops/internal/models/request_models"
	"ascendops/internal/models/response_models"
	"ascendops/internal/repositories"
	"ascendops/pkg/utils"
)

type PackageServiceInterface interface {
	Create(ctx context.Context, actor auth.Actor, request request_models.CreatePackageRequest) (*response_models.PackageResponse, error)
	List(ctx context.Context, actor auth.Actor) ([]response_models.PackageResponse, error)
}

type PackageService struct {
	packageRepo repositories.PackageRepository
}

func NewPackageService(packageRepo repositories.PackageRepository) PackageServiceInterface {
	return &PackageService{packageRepo: packageRepo}
}

func (p *PackageService) Create(ctx context.Context, actor auth.Actor, request request_models.CreatePackageRequest) (*response_models.PackageResponse, error) {
	if err := auth.RequireFounder(actor); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(request.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", utils.ErrValidation)
	}

	pkg := &db_models.Package{
		Name:        name,
		Description: strings.TrimSpace(request.Description),
		Inclusions:  request.Inclusions,
	}
	if err := p.packageRepo.Insert(ctx, pkg); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	resp := toPackageResponse(pkg)
	return &resp, nil
}

func (p *PackageService) List(ctx context.Context, actor auth.Actor) ([]response_models.PackageResponse, error) {
	if err := auth.RequireAuthenticated(actor); err != nil {
		return nil, err
	}

	pkgs, err := p.packageRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	out := make([]response_models.PackageResponse, 0, len(pkgs))
	for i := range pkgs {
		out = append(out, toPackageResponse(&pkgs[i]))
	}
	return out, nil
}

func toPackageResponse(pkg *db_models.Package) response_models.PackageResponse {
	inclusions := []string(pkg.Inclusions)
	if inclusions == nil {
		inclusions = []string{}
	}
	return response_models.PackageResponse{
		ID:          pkg.ID.String(),
		Name:        pkg.Name,
		Description: pkg.Description,
		Inclusions:  inclusions,
	}
}
