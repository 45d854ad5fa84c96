package flowtests

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qaflows/webapp-flow-tests/client"
)

func DoRegistrationTests(t *T) {
	t.Run("new user can register and is stored for later logins", func(t *T) {
		user := t.Generator().User()
		c := t.Client()

		resp, err := c.Register(client.RegistrationForm{
			Username:        user.Username,
			Password:        user.Password,
			ConfirmPassword: user.Password,
		})
		require.NoError(t, err)
		require.Truef(t, c.RegisterSucceeded(resp),
			"registration of %q was rejected: status %d, landed at %s, flash %q",
			user.Username, resp.StatusCode, resp.LandedURL, resp.Flash)

		// Persist only now that the application confirmed the account.
		t.PersistConfirmedUser(user)
	})

	t.Run("rejects mismatched password confirmation", func(t *T) {
		user := t.Generator().User()
		c := t.Client()

		resp, err := c.Register(client.RegistrationForm{
			Username:        user.Username,
			Password:        user.Password,
			ConfirmPassword: user.Password + "x",
		})
		require.NoError(t, err)
		assert.Falsef(t, c.RegisterSucceeded(resp),
			"registration with mismatched confirmation was accepted (flash %q)", resp.Flash)
	})

	t.Run("rejects invalid username", func(t *T) {
		gen := t.Generator()
		password := gen.Password()
		c := t.Client()

		resp, err := c.Register(client.RegistrationForm{
			Username:        gen.InvalidUsername(),
			Password:        password,
			ConfirmPassword: password,
		})
		require.NoError(t, err)
		assert.Falsef(t, c.RegisterSucceeded(resp),
			"registration with an invalid username was accepted (flash %q)", resp.Flash)
	})

	t.Run("rejects short password", func(t *T) {
		gen := t.Generator()
		short := gen.ShortPassword()
		c := t.Client()

		resp, err := c.Register(client.RegistrationForm{
			Username:        gen.Username(),
			Password:        short,
			ConfirmPassword: short,
		})
		require.NoError(t, err)
		assert.Falsef(t, c.RegisterSucceeded(resp),
			"registration with a %d-character password was accepted (flash %q)",
			len(short), resp.Flash)
	})
}
