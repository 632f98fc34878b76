package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barnsight.xyz/pigsty-monitor-service/pkg/models"
)

func TestTokenIssueAndParse(t *testing.T) {
	ti := &TokenIssuer{Secret: []byte("test-secret"), TTL: time.Hour}

	token, err := ti.Issue(&models.User{ID: 2, Username: "jane", Role: models.RoleTechnician})
	require.NoError(t, err)

	claims, err := ti.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(2), claims.UserID)
	assert.Equal(t, "jane", claims.Subject)
	assert.Equal(t, models.RoleTechnician, claims.Role)
}

func TestTokenRejectedWithWrongSecret(t *testing.T) {
	ti := &TokenIssuer{Secret: []byte("test-secret"), TTL: time.Hour}
	other := &TokenIssuer{Secret: []byte("other-secret"), TTL: time.Hour}

	token, err := ti.Issue(&models.User{ID: 1, Username: "admin", Role: models.RoleAdmin})
	require.NoError(t, err)

	_, err = other.Parse(token)
	assert.Error(t, err)
}

func TestTokenExpires(t *testing.T) {
	ti := &TokenIssuer{Secret: []byte("test-secret"), TTL: -time.Minute}

	token, err := ti.Issue(&models.User{ID: 1, Username: "admin", Role: models.RoleAdmin})
	require.NoError(t, err)

	_, err = ti.Parse(token)
	assert.Error(t, err)
}
