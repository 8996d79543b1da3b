package contentmanager

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/mugiliam/contentsrv/internal/common"
	"github.com/mugiliam/contentsrv/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamespaceRequestValidation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		req  NamespaceRequest
	}{
		{"missing name", NamespaceRequest{MDContent: "# hi"}},
		{"missing content", NamespaceRequest{Name: "golang"}},
		{"name too long", NamespaceRequest{Name: string(make([]byte, 51)), MDContent: "# hi"}},
		{"bad book id", NamespaceRequest{Name: "golang", MDContent: "# hi", BookID: "not-a-uuid"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CreateNamespace(ctx, &tt.req)
			require.NotNil(t, err)
			assert.ErrorIs(t, err, ErrValidationFailed)
		})
	}
}

func TestCreateNamespaceRequiresCaller(t *testing.T) {
	// Valid payload, but no authenticated identity on the context.
	_, err := CreateNamespace(context.Background(), &NamespaceRequest{Name: "golang", MDContent: "# hi"})
	require.NotNil(t, err)
	assert.ErrorIs(t, err, ErrNotAuthorized)
}

func TestNamespaceUpdateNoChanges(t *testing.T) {
	ctx := common.SetUserIdInContext(context.Background(), uuid.New())

	// An empty payload must short-circuit before any store access.
	_, err := UpdateNamespace(ctx, "some-slug", &NamespaceUpdateRequest{})
	require.NotNil(t, err)
	assert.ErrorIs(t, err, ErrNoChanges)
}

func TestPageUpdateNoChanges(t *testing.T) {
	ctx := common.SetUserIdInContext(context.Background(), uuid.New())

	_, err := UpdatePage(ctx, "ns/page", &PageUpdateRequest{})
	require.NotNil(t, err)
	assert.ErrorIs(t, err, ErrNoChanges)
}

func TestSectionUpdateNoChanges(t *testing.T) {
	ctx := common.SetUserIdInContext(context.Background(), uuid.New())

	_, err := UpdateSection(ctx, uuid.New(), &SectionUpdateRequest{})
	require.NotNil(t, err)
	assert.ErrorIs(t, err, ErrNoChanges)
}

func TestUserUpdateNoChanges(t *testing.T) {
	id := uuid.New()
	ctx := common.SetUserIdInContext(context.Background(), id)

	_, err := UpdateUser(ctx, id, &UserUpdateRequest{})
	require.NotNil(t, err)
	assert.ErrorIs(t, err, ErrNoChanges)
}

func TestUserUpdateOtherAccountReadsAbsent(t *testing.T) {
	ctx := common.SetUserIdInContext(context.Background(), uuid.New())

	var bio types.NullableString
	bio.Set("hello")
	_, err := UpdateUser(ctx, uuid.New(), &UserUpdateRequest{Bio: bio})
	require.NotNil(t, err)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateRequestFieldPresence(t *testing.T) {
	var req NamespaceUpdateRequest
	assert.True(t, req.Name.IsNil())

	req.Name.Set("renamed")
	assert.False(t, req.Name.IsNil())
	assert.Equal(t, "renamed", req.Name.Value)
}
