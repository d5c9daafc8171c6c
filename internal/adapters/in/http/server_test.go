package http

import (
	"net/http/httptest"
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identityContext(t *testing.T, id, role, status string) echo.Context {
	t.Helper()

	req := httptest.NewRequest("GET", "/api/v1/cart", nil)
	if id != "" {
		req.Header.Set(headerUserID, id)
	}
	if role != "" {
		req.Header.Set(headerUserRole, role)
	}
	if status != "" {
		req.Header.Set(headerUserStatus, status)
	}
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestActorFromHeaders(t *testing.T) {
	userID := kernel.NewUUID()

	t.Run("active seller", func(t *testing.T) {
		actor, err := actorFromHeaders(identityContext(t, userID.String(), "seller", "active"))
		require.NoError(t, err)
		assert.True(t, actor.ID().IsEqual(userID))
		assert.Equal(t, user.RoleSeller, actor.Role())
		assert.True(t, actor.IsActive())
	})

	t.Run("suspended account carries its status", func(t *testing.T) {
		actor, err := actorFromHeaders(identityContext(t, userID.String(), "customer", "suspended"))
		require.NoError(t, err)
		assert.Equal(t, user.StatusSuspended, actor.Status())
		assert.False(t, actor.IsActive())
	})

	t.Run("missing status header rejected", func(t *testing.T) {
		_, err := actorFromHeaders(identityContext(t, userID.String(), "customer", ""))
		require.Error(t, err)
		assert.Contains(t, err.Error(), headerUserStatus)
	})

	t.Run("missing id header rejected", func(t *testing.T) {
		_, err := actorFromHeaders(identityContext(t, "", "customer", "active"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), headerUserID)
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		_, err := actorFromHeaders(identityContext(t, userID.String(), "superuser", "active"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), headerUserRole)
	})
}
