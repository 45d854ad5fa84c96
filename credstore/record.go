package credstore

import (
	"time"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// StatusValid marks an entry whose account creation was confirmed by the
// application, making it usable by authentication tests.
const StatusValid = "valid"

// Record is one persisted credential entry. The serialized form is a
// human-inspectable JSON object and round-trips exactly: what Persist writes
// is what Retrieve returns, field for field.
//
// Passwords are stored in plaintext. The store only ever holds throwaway
// accounts on a public demo application.
type Record struct {
	Username  string                 `json:"username"`
	FirstName string                 `json:"firstName,omitempty"`
	LastName  string                 `json:"lastName,omitempty"`
	Email     string                 `json:"email"`
	Password  string                 `json:"password"`
	BirthDate ldvalue.OptionalString `json:"birthDate"`
	CreatedAt time.Time              `json:"createdAt"`
	Status    string                 `json:"status"`
	RunID     string                 `json:"runId,omitempty"`
}

// Usable reports whether the entry can satisfy a Retrieve: it must be marked
// valid and carry enough to attempt a login.
func (r Record) Usable() bool {
	return r.Status == StatusValid && r.Username != "" && r.Password != ""
}
