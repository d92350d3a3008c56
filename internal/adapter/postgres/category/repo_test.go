package category_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/socialblog/backend/internal/adapter/postgres/category"
	"github.com/socialblog/backend/internal/adapter/postgres/testhelper"
	"github.com/socialblog/backend/internal/domain"
)

func newRepo(t *testing.T) *category.Repo {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return category.New(pool)
}

func TestRepo_Create_And_Get(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	suffix := uuid.New().String()[:8]
	c := domain.Category{
		Name:       "Travel " + suffix,
		Slug:       "travel-" + suffix,
		Background: &domain.MediaRef{StorageID: "bg1", URL: "https://cdn.example.com/bg1.jpg"},
	}

	created, err := repo.Create(ctx, &c)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatal("expected generated id")
	}

	got, err := repo.GetBySlug(ctx, c.Slug)
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if got.Name != c.Name {
		t.Fatalf("expected name %q, got %q", c.Name, got.Name)
	}
	if got.Background == nil || got.Background.StorageID != "bg1" {
		t.Fatalf("expected background persisted, got %+v", got.Background)
	}

	_, err = repo.GetByID(ctx, uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRepo_Create_DuplicateSlug(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	suffix := uuid.New().String()[:8]
	first := domain.Category{Name: "Food " + suffix, Slug: "food-" + suffix}
	if _, err := repo.Create(ctx, &first); err != nil {
		t.Fatalf("Create: %v", err)
	}

	dup := domain.Category{Name: "Other " + suffix, Slug: first.Slug}
	_, err := repo.Create(ctx, &dup)
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestRepo_SlugExists(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	suffix := uuid.New().String()[:8]
	c := domain.Category{Name: "Music " + suffix, Slug: "music-" + suffix}
	if _, err := repo.Create(ctx, &c); err != nil {
		t.Fatalf("Create: %v", err)
	}

	exists, err := repo.SlugExists(ctx, c.Slug)
	if err != nil {
		t.Fatalf("SlugExists: %v", err)
	}
	if !exists {
		t.Fatal("expected slug to exist")
	}

	exists, err = repo.SlugExists(ctx, "nope-"+suffix)
	if err != nil {
		t.Fatalf("SlugExists: %v", err)
	}
	if exists {
		t.Fatal("expected slug to be free")
	}
}

func TestRepo_Update_And_Delete(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	suffix := uuid.New().String()[:8]
	c := domain.Category{Name: "Art " + suffix, Slug: "art-" + suffix}
	created, err := repo.Create(ctx, &c)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	created.Name = "Modern Art " + suffix
	created.Background = &domain.MediaRef{StorageID: "bg2", URL: "https://cdn.example.com/bg2.jpg"}
	updated, err := repo.Update(ctx, created)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != created.Name || updated.Background == nil {
		t.Fatalf("update not persisted: %+v", updated)
	}

	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(ctx, created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRepo_List(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	before, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	suffix := uuid.New().String()[:8]
	for _, name := range []string{"Zeta " + suffix, "Alpha " + suffix} {
		c := domain.Category{Name: name, Slug: domain.Slugify(name)}
		if _, err := repo.Create(ctx, &c); err != nil {
			t.Fatalf("Create %q: %v", name, err)
		}
	}

	after, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(after) != len(before)+2 {
		t.Fatalf("expected %d categories, got %d", len(before)+2, len(after))
	}
}
