// Package userdata generates synthetic candidate users for the registration
// and input-validation flows.
//
// The generator is stateless and has no side effects. Values are randomized,
// only the field shapes are deterministic; uniqueness is best-effort (a random
// numeric suffix on the username), so a downstream duplicate rejection is an
// acceptable rare outcome of the system under test, not a generator bug.
package userdata

import (
	"regexp"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)

// User is a candidate account, not yet registered anywhere.
type User struct {
	Username  string
	FirstName string
	LastName  string
	Email     string
	Password  string
	BirthDate time.Time
}

type Generator struct {
	f *gofakeit.Faker
}

// New returns a generator with a randomized seed.
func New() *Generator {
	return &Generator{f: gofakeit.New(0)}
}

// NewSeeded returns a deterministic generator, for tests of the generator
// itself. The seed must be non-zero.
func NewSeeded(seed uint64) *Generator {
	return &Generator{f: gofakeit.New(seed)}
}

// User produces a complete, plausible registration candidate.
func (g *Generator) User() User {
	return User{
		Username:  g.Username(),
		FirstName: g.f.FirstName(),
		LastName:  g.f.LastName(),
		Email:     g.f.Email(),
		Password:  g.Password(),
		BirthDate: g.BirthDate(),
	}
}

// Username produces an alphanumeric username with a random 100-999 suffix to
// reduce collisions across runs.
func (g *Generator) Username() string {
	base := nonAlphanumeric.ReplaceAllString(g.f.Username(), "")
	if base == "" {
		base = g.f.LetterN(8)
	}
	return base + g.f.DigitN(3)
}

// Password produces a 12-character password containing lowercase, uppercase,
// digits and specials, which satisfies the demo application's policy.
func (g *Generator) Password() string {
	return g.f.Password(true, true, true, true, false, 12)
}

// BirthDate produces a date of birth for an adult.
func (g *Generator) BirthDate() time.Time {
	start := time.Date(1950, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2000, time.December, 31, 0, 0, 0, 0, time.UTC)
	return g.f.DateRange(start, end)
}

// InputValues is a value set for the web-inputs form, in the textual form the
// page receives.
type InputValues struct {
	Number   string
	Text     string
	Password string
	Date     string
}

// InputValues produces a plausible value set for the web-inputs form. The
// date uses the page's ISO layout.
func (g *Generator) InputValues() InputValues {
	return InputValues{
		Number:   g.f.DigitN(5),
		Text:     g.f.HipsterWord(),
		Password: g.Password(),
		Date:     g.BirthDate().Format("2006-01-02"),
	}
}

// InvalidUsername produces a username the application must reject: it
// contains spaces and a non-alphanumeric symbol.
func (g *Generator) InvalidUsername() string {
	return g.f.Word() + " " + g.f.Word() + "!"
}

// InvalidEmail produces an address with no "@" separator.
func (g *Generator) InvalidEmail() string {
	return nonAlphanumeric.ReplaceAllString(g.f.Username(), "") + "dominio-invalido-com"
}

// ShortPassword produces a 1-4 character password, below any reasonable
// minimum length.
func (g *Generator) ShortPassword() string {
	return g.f.Password(true, false, true, false, false, g.f.Number(1, 4))
}

// InvalidUser produces a candidate in which every validated field is wrong,
// for form-validation tests.
func (g *Generator) InvalidUser() User {
	return User{
		Username:  g.InvalidUsername(),
		FirstName: g.f.FirstName(),
		LastName:  g.f.LastName(),
		Email:     g.InvalidEmail(),
		Password:  g.ShortPassword(),
		BirthDate: g.BirthDate(),
	}
}
