package accounts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kirana_back_end/internal/models"
)

func TestAuthenticate(t *testing.T) {
	a := NewDemoAccounts()

	user, ok := a.Authenticate("customer@test.com", "123")
	require.True(t, ok)
	assert.Equal(t, "1", user.ID)
	assert.Equal(t, models.RoleCustomer, user.Role)
	assert.Equal(t, 500, user.LoyaltyPoints)

	_, ok = a.Authenticate("customer@test.com", "mauvais")
	assert.False(t, ok)

	_, ok = a.Authenticate("inconnu@test.com", "123")
	assert.False(t, ok)
}

func TestAuthenticateReturnsCopy(t *testing.T) {
	a := NewDemoAccounts()

	u1, ok := a.Authenticate("retailer@test.com", "123")
	require.True(t, ok)
	u1.Name = "modifié"

	u2, ok := a.Authenticate("retailer@test.com", "123")
	require.True(t, ok)
	assert.Equal(t, "Retail Store", u2.Name)
}
