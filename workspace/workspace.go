// Package workspace provisions the output directory layout of the harness:
// report and evidence directories plus the data directory holding the
// credential store file.
//
// Provision must run before any component writes into the layout. That
// ordering is a documented precondition, not enforced by types; in this
// program main calls Provision before constructing the store or opening log
// files.
package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrCreate means a directory could not be created for a genuine filesystem
// reason (permissions, IO). Pre-existing directories never produce it.
var ErrCreate = errors.New("cannot create directory")

// CredentialFileName is the well-known location of the credential store,
// relative to the data directory.
const CredentialFileName = "successful_registrations.json"

// Layout is the set of directories the harness writes into, all under Root.
type Layout struct {
	Root     string
	Reports  string
	Logs     string
	Evidence string
	Data     string
}

// NewLayout returns the standard layout rooted at the given directory.
func NewLayout(root string) Layout {
	reports := filepath.Join(root, "reports")
	return Layout{
		Root:     root,
		Reports:  reports,
		Logs:     filepath.Join(reports, "logs"),
		Evidence: filepath.Join(reports, "evidence"),
		Data:     filepath.Join(root, "data"),
	}
}

// Provision creates every directory in the layout that does not already
// exist. It is idempotent: calling it again over an existing layout does
// nothing and returns nil. Any real filesystem failure is returned wrapping
// ErrCreate.
func (l Layout) Provision() error {
	for _, dir := range []string{l.Reports, l.Logs, l.Evidence, l.Data} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrCreate, dir, err)
		}
	}
	return nil
}

// CredentialFile is the path of the credential store file within the layout.
func (l Layout) CredentialFile() string {
	return filepath.Join(l.Data, CredentialFileName)
}
