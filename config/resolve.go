package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Options selects the configuration source for Resolve.
type Options struct {
	// Name is the environment identifier, e.g. "qa". Ignored when Path is set.
	// When both are empty, the ENVIRONMENT process variable and then
	// DefaultName are used.
	Name string

	// Path is an explicit configuration file path, taking precedence over any
	// named-environment lookup.
	Path string

	// Dir is the directory holding named environment files. Defaults to
	// DefaultDir.
	Dir string
}

// Resolve locates and parses the selected environment source and returns the
// fully populated Environment. It returns an error wrapping ErrNotFound when
// no source exists for the selection, or ErrInvalid when the source is
// malformed or missing required keys. The source file is never modified and
// the process environment is never touched.
func Resolve(opts Options) (*Environment, error) {
	name := opts.Name
	path := opts.Path
	if path == "" {
		if name == "" {
			name = os.Getenv(EnvironmentVar)
		}
		if name == "" {
			name = DefaultName
		}
		dir := opts.Dir
		if dir == "" {
			dir = DefaultDir
		}
		path = filepath.Join(dir, name+".env")
	}

	if _, err := os.Stat(path); err != nil {
		if name != "" {
			return nil, fmt.Errorf("%w: no source at %q for environment %q", ErrNotFound, path, name)
		}
		return nil, fmt.Errorf("%w: no source at %q", ErrNotFound, path)
	}

	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot parse %q: %v", ErrInvalid, path, err)
	}

	get := func(key string) string { return strings.TrimSpace(values[key]) }

	env := &Environment{
		Name:            name,
		SourcePath:      path,
		BaseURL:         get("BASE_URL"),
		LoginURL:        get("LOGIN_URL"),
		RegisterURL:     get("REGISTER_URL"),
		WebInputURL:     get("WEBINPUT_URL"),
		DynamicTableURL: get("DYNAMICTABLE_URL"),
		DashboardURL:    get("USERDASHBOARD_URL"),
		Trello: TrelloSettings{
			Enabled:       ParseEnabled(get("TRELLO_REPORTING_ENABLED")),
			APIKey:        get("TRELLO_API_KEY"),
			APIToken:      get("TRELLO_API_TOKEN"),
			FailListID:    get("TRELLO_FAIL_LIST_ID"),
			QAListID:      get("TRELLO_QA_LIST_ID"),
			OngoingListID: get("TRELLO_ONGOING_LIST_ID"),
			DoneListID:    get("TRELLO_DONE_LIST_ID"),
		},
		Jira: JiraSettings{
			Enabled:    ParseEnabled(get("JIRA_REPORTING_ENABLED")),
			BaseURL:    get("JIRA_URL"),
			APIUser:    get("JIRA_API_USER"),
			APIToken:   get("JIRA_API_TOKEN"),
			ProjectKey: get("JIRA_PROJECT_KEY"),
			IssueType:  get("JIRA_ISSUE_TYPE"),
		},
	}
	if v := get("JIRA_SECURITY_LEVEL_ID"); v != "" {
		env.Jira.SecurityLevelID = ldvalue.NewOptionalString(v)
	}

	if missing := missingKeys(get, env); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %q is missing required keys: %s",
			ErrInvalid, path, strings.Join(missing, ", "))
	}
	return env, nil
}

// missingKeys returns every required key that is absent or blank. The
// integration credential keys are required only when that integration's
// enablement flag parsed true.
func missingKeys(get func(string) string, env *Environment) []string {
	required := append([]string(nil), requiredURLKeys...)
	if env.Trello.Enabled {
		required = append(required, trelloRequiredKeys...)
	}
	if env.Jira.Enabled {
		required = append(required, jiraRequiredKeys...)
	}

	var missing []string
	for _, key := range required {
		if get(key) == "" {
			missing = append(missing, key)
		}
	}
	sort.Strings(missing)
	return missing
}
