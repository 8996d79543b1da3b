package db

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/mugiliam/contentsrv/internal/config"
	"github.com/mugiliam/contentsrv/internal/db/dberror"
	"github.com/mugiliam/contentsrv/internal/db/models"
	"github.com/mugiliam/contentsrv/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newDb initializes the pool and returns a context holding a scoped
// connection. Skipped when no database is configured.
func newDb(t *testing.T) context.Context {
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL not set")
	}
	config.LoadDefault()

	ctx := log.Logger.WithContext(context.Background())
	require.NoError(t, Init(ctx))
	t.Cleanup(Shutdown)
	return ConnCtx(ctx)
}

func uniqueName(prefix string) string {
	return prefix + strings.ReplaceAll(uuid.New().String(), "-", "")
}

func newTestUser(t *testing.T, ctx context.Context) *models.User {
	username := uniqueName("user")
	u := &models.User{
		Username:      username,
		Email:         username + "@example.com",
		URLIdentifier: "/u/" + username,
		Status:        types.AccountStatusActive,
	}
	require.NoError(t, u.SetPassword("a-strong-password"))
	require.Nil(t, DB(ctx).CreateUser(ctx, u))
	return u
}

func TestCreateUser(t *testing.T) {
	ctx := newDb(t)
	defer DB(ctx).Close(ctx)

	u := newTestUser(t, ctx)

	// Same username again should return ErrAlreadyExists
	dup := &models.User{
		Username:      u.Username,
		Email:         uniqueName("other") + "@example.com",
		URLIdentifier: "/u/" + uniqueName("other"),
		PasswordHash:  u.PasswordHash,
	}
	err := DB(ctx).CreateUser(ctx, dup)
	assert.Error(t, err)
	assert.ErrorIs(t, err, dberror.ErrAlreadyExists)

	got, err := DB(ctx).GetUserByUsername(ctx, u.Username)
	assert.Nil(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.True(t, got.CheckPassword("a-strong-password"))
	assert.False(t, got.CheckPassword("wrong"))

	_, err = DB(ctx).GetUser(ctx, uuid.New())
	assert.ErrorIs(t, err, dberror.ErrNotFound)
}

func TestCreateNamespaceWithTags(t *testing.T) {
	ctx := newDb(t)
	defer DB(ctx).Close(ctx)

	u := newTestUser(t, ctx)

	slug := uniqueName("ns")
	ns := &models.Namespace{
		Name:      "Test Namespace",
		Slug:      slug,
		MDContent: "# hello",
		Status:    types.ContentStatusActive,
		Active:    true,
		UserID:    u.ID,
	}
	err := DB(ctx).CreateNamespace(ctx, ns, []string{"go", "testing"})
	require.Nil(t, err)
	assert.NotEqual(t, uuid.Nil, ns.ID)
	assert.False(t, ns.Created.IsZero())

	// Duplicate slug should return ErrAlreadyExists
	dup := &models.Namespace{Name: "Dup", Slug: slug, MDContent: "x", UserID: u.ID, Active: true, Status: types.ContentStatusActive}
	err = DB(ctx).CreateNamespace(ctx, dup, nil)
	assert.ErrorIs(t, err, dberror.ErrAlreadyExists)

	// Unknown owner violates the FK
	orphan := &models.Namespace{Name: "Orphan", Slug: uniqueName("ns"), MDContent: "x", UserID: uuid.New(), Active: true, Status: types.ContentStatusActive}
	err = DB(ctx).CreateNamespace(ctx, orphan, nil)
	assert.ErrorIs(t, err, dberror.ErrInvalidInput)

	tags, err := DB(ctx).ListNamespaceTags(ctx, ns.ID)
	require.Nil(t, err)
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.Name)
	}
	assert.ElementsMatch(t, []string{"go", "testing"}, names)

	// Attaching the same tag from another namespace reuses the tag row
	other := &models.Namespace{Name: "Other", Slug: uniqueName("ns"), MDContent: "x", UserID: u.ID, Active: true, Status: types.ContentStatusActive}
	require.Nil(t, DB(ctx).CreateNamespace(ctx, other, []string{"go"}))
	otherTags, err := DB(ctx).ListNamespaceTags(ctx, other.ID)
	require.Nil(t, err)
	require.Len(t, otherTags, 1)
	assert.Equal(t, tagByName(tags, "go").ID, otherTags[0].ID)
}

func tagByName(tags []*models.Tag, name string) *models.Tag {
	for _, t := range tags {
		if t.Name == name {
			return t
		}
	}
	return nil
}

func TestPageParentChecks(t *testing.T) {
	ctx := newDb(t)
	defer DB(ctx).Close(ctx)

	u := newTestUser(t, ctx)

	ns := &models.Namespace{
		Name: "Parent", Slug: uniqueName("ns"), MDContent: "x",
		Status: types.ContentStatusActive, Active: true, UserID: u.ID,
	}
	require.Nil(t, DB(ctx).CreateNamespace(ctx, ns, nil))

	p := &models.Page{
		NamespaceID: ns.ID, UserID: u.ID,
		Title: "A Page", URLIdentifier: uniqueName("page"), MDContent: "body",
		Status: types.ContentStatusActive,
	}
	require.Nil(t, DB(ctx).CreatePage(ctx, p))

	// A page under a missing namespace is rejected
	lost := &models.Page{
		NamespaceID: uuid.New(), UserID: u.ID,
		Title: "Lost", URLIdentifier: uniqueName("page"), MDContent: "body",
		Status: types.ContentStatusActive,
	}
	err := DB(ctx).CreatePage(ctx, lost)
	assert.ErrorIs(t, err, dberror.ErrNotFound)

	// Soft-deleting the namespace blocks new pages
	ns.Active = false
	require.Nil(t, DB(ctx).UpdateNamespace(ctx, ns))
	blocked := &models.Page{
		NamespaceID: ns.ID, UserID: u.ID,
		Title: "Blocked", URLIdentifier: uniqueName("page"), MDContent: "body",
		Status: types.ContentStatusActive,
	}
	err = DB(ctx).CreatePage(ctx, blocked)
	assert.ErrorIs(t, err, dberror.ErrInvalidInput)

	// Existing pages stay readable
	got, err := DB(ctx).GetPage(ctx, p.ID)
	require.Nil(t, err)
	assert.Equal(t, p.URLIdentifier, got.URLIdentifier)
}

func TestSectionRoundTrip(t *testing.T) {
	ctx := newDb(t)
	defer DB(ctx).Close(ctx)

	u := newTestUser(t, ctx)

	ns := &models.Namespace{
		Name: "Parent", Slug: uniqueName("ns"), MDContent: "x",
		Status: types.ContentStatusActive, Active: true, UserID: u.ID,
	}
	require.Nil(t, DB(ctx).CreateNamespace(ctx, ns, nil))

	p := &models.Page{
		NamespaceID: ns.ID, UserID: u.ID,
		Title: "A Page", URLIdentifier: uniqueName("page"), MDContent: "body",
		Status: types.ContentStatusActive,
	}
	require.Nil(t, DB(ctx).CreatePage(ctx, p))

	first := &models.Section{PageID: p.ID, UserID: u.ID, Title: "First", MDContent: "a", Status: types.ContentStatusActive}
	second := &models.Section{PageID: p.ID, UserID: u.ID, Title: "Second", MDContent: "b", Status: types.ContentStatusActive}
	require.Nil(t, DB(ctx).CreateSection(ctx, first))
	require.Nil(t, DB(ctx).CreateSection(ctx, second))

	sections, err := DB(ctx).ListSectionsByPage(ctx, p.ID)
	require.Nil(t, err)
	require.Len(t, sections, 2)
	assert.Equal(t, "First", sections[0].Title)
	assert.Equal(t, "Second", sections[1].Title)
	assert.Equal(t, p.ID, sections[0].PageID)
	assert.Equal(t, ns.ID, p.NamespaceID)

	second.MDContent = "b2"
	require.Nil(t, DB(ctx).UpdateSection(ctx, second))
	got, err := DB(ctx).GetSection(ctx, second.ID)
	require.Nil(t, err)
	assert.Equal(t, "b2", got.MDContent)
}

func TestUpdateUser(t *testing.T) {
	ctx := newDb(t)
	defer DB(ctx).Close(ctx)

	u := newTestUser(t, ctx)
	u.Bio = "a gopher"
	require.Nil(t, DB(ctx).UpdateUser(ctx, u))

	got, err := DB(ctx).GetUser(ctx, u.ID)
	require.Nil(t, err)
	assert.Equal(t, "a gopher", got.Bio)
	assert.True(t, got.Updated.After(got.Created) || got.Updated.Equal(got.Created))

	missing := &models.User{ID: uuid.New(), Email: "x@example.com"}
	err = DB(ctx).UpdateUser(ctx, missing)
	assert.ErrorIs(t, err, dberror.ErrNotFound)
}

func TestTagRoundTrip(t *testing.T) {
	ctx := newDb(t)
	defer DB(ctx).Close(ctx)

	name := uniqueName("tag")
	tag := &models.Tag{Name: name}
	require.Nil(t, DB(ctx).CreateTag(ctx, tag))

	err := DB(ctx).CreateTag(ctx, &models.Tag{Name: name})
	assert.ErrorIs(t, err, dberror.ErrAlreadyExists)

	got, err := DB(ctx).GetTagByName(ctx, name)
	require.Nil(t, err)
	assert.Equal(t, tag.ID, got.ID)

	all, err := DB(ctx).ListTags(ctx)
	require.Nil(t, err)
	assert.NotNil(t, tagByName(all, name))
}

func TestScopedDbStats(t *testing.T) {
	ctx := newDb(t)

	d := DB(ctx)
	require.NotNil(t, d)
	d.Close(ctx)

	// A fresh checkout works after the previous one was returned
	ctx2 := ConnCtx(ctx)
	d2 := DB(ctx2)
	require.NotNil(t, d2)
	d2.Close(ctx2)
}
