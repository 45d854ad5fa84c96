// Package config resolves a named environment (qa, dev, ...) into an immutable
// Environment value holding the URLs of the system under test and the settings
// of the external reporting integrations.
//
// An environment is a dotenv file, by convention environments/<name>.env.
// Resolution happens exactly once per run, at startup; everything downstream
// receives the resolved Environment explicitly. Resolution never mutates the
// process environment.
package config

import (
	"strings"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// DefaultName is the environment used when none is selected explicitly.
const DefaultName = "qa"

// DefaultDir is where named environment files are looked up.
const DefaultDir = "environments"

// EnvironmentVar is the process variable consulted for the environment name
// when no command-line selection is given.
const EnvironmentVar = "ENVIRONMENT"

// Keys that must be present and non-blank in every environment file.
var requiredURLKeys = []string{
	"BASE_URL",
	"LOGIN_URL",
	"REGISTER_URL",
	"WEBINPUT_URL",
	"DYNAMICTABLE_URL",
	"USERDASHBOARD_URL",
}

// Keys that become required only when the corresponding integration is enabled.
var trelloRequiredKeys = []string{
	"TRELLO_API_KEY",
	"TRELLO_API_TOKEN",
	"TRELLO_FAIL_LIST_ID",
	"TRELLO_QA_LIST_ID",
	"TRELLO_ONGOING_LIST_ID",
	"TRELLO_DONE_LIST_ID",
}

var jiraRequiredKeys = []string{
	"JIRA_URL",
	"JIRA_API_USER",
	"JIRA_API_TOKEN",
	"JIRA_PROJECT_KEY",
	"JIRA_ISSUE_TYPE",
}

// Environment is the resolved, read-only configuration for one run.
type Environment struct {
	// Name is the environment identifier ("qa"), or "" when the source was
	// selected by explicit file path.
	Name string

	// SourcePath is the file the configuration was read from.
	SourcePath string

	BaseURL         string
	LoginURL        string
	RegisterURL     string
	WebInputURL     string
	DynamicTableURL string
	DashboardURL    string

	Trello TrelloSettings
	Jira   JiraSettings
}

// TrelloSettings carries the Trello issue-sync integration settings. The
// credential values are opaque to the harness; only Enabled is interpreted.
type TrelloSettings struct {
	Enabled       bool
	APIKey        string
	APIToken      string
	FailListID    string
	QAListID      string
	OngoingListID string
	DoneListID    string
}

// JiraSettings carries the Jira issue-sync integration settings.
type JiraSettings struct {
	Enabled         bool
	BaseURL         string
	APIUser         string
	APIToken        string
	ProjectKey      string
	IssueType       string
	SecurityLevelID ldvalue.OptionalString // optional even when Jira is enabled
}

// ParseEnabled interprets a textual boolean flag. Only "true", "1" and "t"
// (case-insensitively) enable; any other value, including an empty string,
// disables. Malformed flag values must never accidentally turn on calls to
// external reporting systems.
func ParseEnabled(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "t":
		return true
	default:
		return false
	}
}
