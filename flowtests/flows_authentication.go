package flowtests

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func DoAuthenticationTests(t *T) {
	t.Run("stored user can log in", func(t *T) {
		rec := t.RequireStoredCredentials()
		c := t.Client()

		resp, err := c.Login(rec.Username, rec.Password)
		require.NoError(t, err)
		require.Truef(t, c.LoginSucceeded(resp),
			"login with stored user %q did not reach the dashboard: landed at %s, flash %q",
			rec.Username, resp.LandedURL, resp.Flash)
	})

	t.Run("unregistered user cannot log in", func(t *T) {
		user := t.Generator().User()
		c := t.Client()

		resp, err := c.Login(user.Username, user.Password)
		require.NoError(t, err)
		assert.Falsef(t, c.LoginSucceeded(resp),
			"login with never-registered user %q reached the dashboard", user.Username)
		assert.NotEmptyf(t, resp.Flash,
			"expected a rejection message for unregistered user %q", user.Username)
	})
}
