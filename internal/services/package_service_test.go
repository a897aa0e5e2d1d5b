package services

import (
	"context"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"ascendops/internal/models/db_models"
	"ascendops/internal/models/request_models"
	"ascendops/pkg/utils"
)

type fakePackageRepo struct {
	packages map[string]*db_models.Package
}

func newFakePackageRepo() *fakePackageRepo {
	return &fakePackageRepo{packages: make(map[string]*db_models.Package)}
}

func (r *fakePackageRepo) Insert(ctx context.Context, pkg *db_models.Package) error {
	if pkg.ID == uuid.Nil {
		pkg.ID = uuid.New()
	}
	r.packages[pkg.ID.String()] = pkg
	return nil
}

func (r *fakePackageRepo) FindByID(ctx context.Context, id string) (*db_models.Package, error) {
	pkg, ok := r.packages[id]
	if !ok {
		return nil, nil
	}
	return pkg, nil
}

func (r *fakePackageRepo) List(ctx context.Context) ([]db_models.Package, error) {
	out := make([]db_models.Package, 0, len(r.packages))
	for _, p := range r.packages {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakePackageRepo) seed(t *testing.T, name string, inclusions ...string) *db_models.Package {
	t.Helper()
	pkg := &db_models.Package{Name: name, Inclusions: inclusions}
	if err := r.Insert(context.Background(), pkg); err != nil {
		t.Fatalf("seed package: %v", err)
	}
	return pkg
}

func TestCreatePackage_Success(t *testing.T) {
	repo := newFakePackageRepo()
	svc := NewPackageService(repo)

	created, err := svc.Create(context.Background(), founderActor(), request_models.CreatePackageRequest{
		Name:        "Gold",
		Description: "Full coverage",
		Inclusions:  []string{"photos", "highlight"},
	})

	assert.NoError(t, err)
	assert.Equal(t, "Gold", created.Name)
	assert.Equal(t, []string{"photos", "highlight"}, created.Inclusions)
}

func TestCreatePackage_RequiresFounder(t *testing.T) {
	repo := newFakePackageRepo()
	svc := NewPackageService(repo)

	_, err := svc.Create(context.Background(), freelancerActor(), request_models.CreatePackageRequest{Name: "Gold"})

	assert.ErrorIs(t, err, utils.ErrForbidden)
	assert.Empty(t, repo.packages)
}

func TestCreatePackage_NameRequired(t *testing.T) {
	repo := newFakePackageRepo()
	svc := NewPackageService(repo)

	_, err := svc.Create(context.Background(), founderActor(), request_models.CreatePackageRequest{Name: "   "})

	assert.ErrorIs(t, err, utils.ErrValidation)
	assert.Empty(t, repo.packages)
}

func TestListPackages_Alphabetical(t *testing.T) {
	repo := newFakePackageRepo()
	repo.seed(t, "Silver")
	repo.seed(t, "Gold")
	svc := NewPackageService(repo)

	pkgs, err := svc.List(context.Background(), freelancerActor())

	assert.NoError(t, err)
	assert.Len(t, pkgs, 2)
	assert.Equal(t, "Gold", pkgs[0].Name)
	assert.Equal(t, "Silver", pkgs[1].Name)
}

// A package with no inclusions still marshals as an empty list, never
// null, so clients can range over it blindly.
func TestListPackages_NilInclusions(t *testing.T) {
	repo := newFakePackageRepo()
	repo.seed(t, "Bare")
	svc := NewPackageService(repo)

	pkgs, err := svc.List(context.Background(), freelancerActor())

	assert.NoError(t, err)
	assert.NotNil(t, pkgs[0].Inclusions)
	assert.Empty(t, pkgs[0].Inclusions)
}
