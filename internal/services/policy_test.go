package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/surawits/vibeLink/internal/database"
	"github.com/surawits/vibeLink/internal/models"
	appErrors "github.com/surawits/vibeLink/pkg/errors"
)

func clearPolicy() {
	database.DB.Where("key = ?", models.ConfigRedirectDelay).Delete(&models.SystemConfig{})
}

func TestRedirectDelay_DefaultWhenUnset(t *testing.T) {
	SetupTestDB()
	clearPolicy()

	assert.Equal(t, 5, RedirectDelay())
}

func TestSetRedirectDelay_RequiresAdmin(t *testing.T) {
	SetupTestDB()
	user := makeUser("u_policy", models.RoleUser)

	err := SetRedirectDelay(user, 10)
	assert.ErrorIs(t, err, appErrors.ErrForbidden)
}

func TestSetRedirectDelay_Roundtrip(t *testing.T) {
	SetupTestDB()
	clearPolicy()
	admin := makeUser("a_policy", models.RoleAdmin)

	assert.NoError(t, SetRedirectDelay(admin, 9))
	assert.Equal(t, 9, RedirectDelay())

	// Upsert, not insert-once
	assert.NoError(t, SetRedirectDelay(admin, 3))
	assert.Equal(t, 3, RedirectDelay())
}

func TestSetRedirectDelay_RejectsNegative(t *testing.T) {
	SetupTestDB()
	admin := makeUser("a_policy_neg", models.RoleAdmin)

	assert.Error(t, SetRedirectDelay(admin, -1))
}

func TestEnforceDelayPolicy(t *testing.T) {
	SetupTestDB()
	clearPolicy()
	user := makeUser("u_enforce", models.RoleUser)
	admin := makeUser("a_enforce", models.RoleAdmin)

	link := models.Link{HasIntermediatePage: false, IntermediatePageDelay: 0}
	EnforceDelayPolicy(admin, &link)
	assert.False(t, link.HasIntermediatePage)
	assert.Equal(t, 0, link.IntermediatePageDelay)

	EnforceDelayPolicy(user, &link)
	assert.True(t, link.HasIntermediatePage)
	assert.Equal(t, 5, link.IntermediatePageDelay)
}
