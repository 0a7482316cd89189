package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greenhill-schools/app/models"
	"greenhill-schools/app/results"
)

func TestCurrentPrincipalFromLocals(t *testing.T) {
	app := fiber.New()
	var got results.Principal
	app.Get("/", func(c *fiber.Ctx) error {
		c.Locals("user_id", "admin-1")
		c.Locals("user_roles", []*models.Role{{Name: models.RoleAdmin}, {Name: models.RoleTeacher}})
		got = CurrentPrincipal(c)
		return c.SendStatus(200)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "admin-1", got.UserID)
	assert.Equal(t, []string{models.RoleAdmin, models.RoleTeacher}, got.Roles)
	assert.True(t, got.IsAdmin())
}

// A handler reached without the auth middleware has no locals set; the
// principal must come back empty and role-less rather than panic.
func TestCurrentPrincipalWithoutAuthLocals(t *testing.T) {
	app := fiber.New()
	var got results.Principal
	app.Get("/", func(c *fiber.Ctx) error {
		got = CurrentPrincipal(c)
		return c.SendStatus(200)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	assert.Empty(t, got.UserID)
	assert.False(t, got.IsAdmin())
}
