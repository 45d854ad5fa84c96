package userdata

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var alphanumeric = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

func TestUserHasPlausibleShape(t *testing.T) {
	gen := NewSeeded(42)

	for i := 0; i < 20; i++ {
		user := gen.User()

		assert.Regexp(t, alphanumeric, user.Username)
		assert.Regexp(t, `[0-9]{3}$`, user.Username, "username ends with a random numeric suffix")
		assert.NotEmpty(t, user.FirstName)
		assert.NotEmpty(t, user.LastName)
		assert.Contains(t, user.Email, "@")
		assert.Len(t, user.Password, 12)
		assert.False(t, user.BirthDate.IsZero())
		assert.True(t, user.BirthDate.Before(time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)))
	}
}

func TestPasswordContainsAllCharacterClasses(t *testing.T) {
	gen := NewSeeded(7)

	for i := 0; i < 20; i++ {
		pw := gen.Password()
		assert.Len(t, pw, 12)
		assert.Regexp(t, `[a-z]`, pw)
		assert.Regexp(t, `[A-Z]`, pw)
		assert.Regexp(t, `[0-9]`, pw)
		assert.Regexp(t, `[^a-zA-Z0-9]`, pw)
	}
}

func TestInvalidVariantsAreActuallyInvalid(t *testing.T) {
	gen := NewSeeded(99)

	for i := 0; i < 20; i++ {
		username := gen.InvalidUsername()
		assert.Contains(t, username, " ")
		assert.True(t, strings.HasSuffix(username, "!"))

		assert.NotContains(t, gen.InvalidEmail(), "@")

		short := gen.ShortPassword()
		assert.GreaterOrEqual(t, len(short), 1)
		assert.LessOrEqual(t, len(short), 4)
	}
}

func TestInvalidUserFailsEveryValidatedField(t *testing.T) {
	user := NewSeeded(3).InvalidUser()

	assert.NotRegexp(t, alphanumeric, user.Username)
	assert.NotContains(t, user.Email, "@")
	assert.LessOrEqual(t, len(user.Password), 4)
}

func TestInputValuesShapes(t *testing.T) {
	gen := NewSeeded(11)

	for i := 0; i < 10; i++ {
		values := gen.InputValues()

		assert.Regexp(t, `^[0-9]{5}$`, values.Number)
		assert.NotEmpty(t, values.Text)
		assert.Len(t, values.Password, 12)

		_, err := time.Parse("2006-01-02", values.Date)
		require.NoError(t, err)
	}
}

func TestGeneratedUsersVary(t *testing.T) {
	gen := New()
	a := gen.User()
	b := gen.User()
	assert.NotEqual(t, a.Username, b.Username, "two candidates should practically never collide")
}
