package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validQAKeys = map[string]string{
	"BASE_URL":          "https://x",
	"LOGIN_URL":         "https://x/login",
	"REGISTER_URL":      "https://x/register",
	"WEBINPUT_URL":      "https://x/inputs",
	"DYNAMICTABLE_URL":  "https://x/dynamic-table",
	"USERDASHBOARD_URL": "https://x/secure",
}

func writeEnvFile(t *testing.T, dir, name string, keys map[string]string) string {
	t.Helper()
	var content string
	for k, v := range keys {
		content += k + "=" + v + "\n"
	}
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func withoutKey(keys map[string]string, drop string) map[string]string {
	out := make(map[string]string, len(keys))
	for k, v := range keys {
		if k != drop {
			out[k] = v
		}
	}
	return out
}

func withKeys(keys map[string]string, extra map[string]string) map[string]string {
	out := make(map[string]string, len(keys)+len(extra))
	for k, v := range keys {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

func TestResolveRoundTripsURLValues(t *testing.T) {
	dir := t.TempDir()
	writeEnvFile(t, dir, "qa.env", validQAKeys)

	env, err := Resolve(Options{Name: "qa", Dir: dir})
	require.NoError(t, err)

	assert.Equal(t, "qa", env.Name)
	assert.Equal(t, "https://x", env.BaseURL)
	assert.Equal(t, "https://x/login", env.LoginURL)
	assert.Equal(t, "https://x/register", env.RegisterURL)
	assert.Equal(t, "https://x/inputs", env.WebInputURL)
	assert.Equal(t, "https://x/dynamic-table", env.DynamicTableURL)
	assert.Equal(t, "https://x/secure", env.DashboardURL)
	assert.False(t, env.Trello.Enabled)
	assert.False(t, env.Jira.Enabled)
}

func TestResolveMissingRequiredKeyIsInvalid(t *testing.T) {
	dir := t.TempDir()
	writeEnvFile(t, dir, "qa.env", withoutKey(validQAKeys, "LOGIN_URL"))

	env, err := Resolve(Options{Name: "qa", Dir: dir})
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "LOGIN_URL")
	assert.Nil(t, env, "no partially populated configuration may be returned")
}

func TestResolveBlankRequiredKeyIsInvalid(t *testing.T) {
	dir := t.TempDir()
	writeEnvFile(t, dir, "qa.env", withKeys(validQAKeys, map[string]string{"REGISTER_URL": "  "}))

	_, err := Resolve(Options{Name: "qa", Dir: dir})
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "REGISTER_URL")
}

func TestResolveUnknownEnvironmentIsNotFound(t *testing.T) {
	env, err := Resolve(Options{Name: "nosuch", Dir: t.TempDir()})
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "nosuch")
	assert.Nil(t, env)
}

func TestResolveExplicitPathTakesPrecedence(t *testing.T) {
	dir := t.TempDir()
	writeEnvFile(t, dir, "qa.env", withKeys(validQAKeys, map[string]string{"BASE_URL": "https://named"}))
	override := writeEnvFile(t, dir, "override.env", withKeys(validQAKeys, map[string]string{"BASE_URL": "https://override"}))

	env, err := Resolve(Options{Name: "qa", Path: override, Dir: dir})
	require.NoError(t, err)
	assert.Equal(t, "https://override", env.BaseURL)
	assert.Equal(t, override, env.SourcePath)
}

func TestResolveUsesProcessVariableThenDefault(t *testing.T) {
	dir := t.TempDir()
	writeEnvFile(t, dir, "staging.env", withKeys(validQAKeys, map[string]string{"BASE_URL": "https://staging"}))
	writeEnvFile(t, dir, "qa.env", validQAKeys)

	t.Setenv(EnvironmentVar, "staging")
	env, err := Resolve(Options{Dir: dir})
	require.NoError(t, err)
	assert.Equal(t, "staging", env.Name)
	assert.Equal(t, "https://staging", env.BaseURL)

	t.Setenv(EnvironmentVar, "")
	env, err = Resolve(Options{Dir: dir})
	require.NoError(t, err)
	assert.Equal(t, DefaultName, env.Name)
}

func TestParseEnabled(t *testing.T) {
	for _, value := range []string{"true", "TRUE", "True", "1", "t", "T", " true "} {
		assert.Truef(t, ParseEnabled(value), "%q should enable", value)
	}
	for _, value := range []string{"", "false", "FALSE", "0", "maybe", "yes", "enabled"} {
		assert.Falsef(t, ParseEnabled(value), "%q must not enable", value)
	}
}

func TestResolveFlagGatesIntegrationCredentials(t *testing.T) {
	dir := t.TempDir()

	// Disabled integration: credential keys may be absent.
	writeEnvFile(t, dir, "off.env", withKeys(validQAKeys, map[string]string{
		"TRELLO_REPORTING_ENABLED": "maybe",
	}))
	env, err := Resolve(Options{Name: "off", Dir: dir})
	require.NoError(t, err)
	assert.False(t, env.Trello.Enabled)

	// Enabled integration without its credentials is invalid.
	writeEnvFile(t, dir, "on.env", withKeys(validQAKeys, map[string]string{
		"TRELLO_REPORTING_ENABLED": "TRUE",
	}))
	_, err = Resolve(Options{Name: "on", Dir: dir})
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "TRELLO_API_KEY")

	// Enabled integration with all credentials resolves.
	writeEnvFile(t, dir, "full.env", withKeys(validQAKeys, map[string]string{
		"TRELLO_REPORTING_ENABLED": "true",
		"TRELLO_API_KEY":           "key",
		"TRELLO_API_TOKEN":         "token",
		"TRELLO_FAIL_LIST_ID":      "f1",
		"TRELLO_QA_LIST_ID":        "q1",
		"TRELLO_ONGOING_LIST_ID":   "o1",
		"TRELLO_DONE_LIST_ID":      "d1",
	}))
	env, err = Resolve(Options{Name: "full", Dir: dir})
	require.NoError(t, err)
	assert.True(t, env.Trello.Enabled)
	assert.Equal(t, "key", env.Trello.APIKey)
	assert.Equal(t, "d1", env.Trello.DoneListID)
}

func TestResolveJiraSecurityLevelStaysOptional(t *testing.T) {
	dir := t.TempDir()
	jiraKeys := map[string]string{
		"JIRA_REPORTING_ENABLED": "true",
		"JIRA_URL":               "https://jira.example.com",
		"JIRA_API_USER":          "bot",
		"JIRA_API_TOKEN":         "token",
		"JIRA_PROJECT_KEY":       "QA",
		"JIRA_ISSUE_TYPE":        "Bug",
	}

	writeEnvFile(t, dir, "jira.env", withKeys(validQAKeys, jiraKeys))
	env, err := Resolve(Options{Name: "jira", Dir: dir})
	require.NoError(t, err)
	assert.True(t, env.Jira.Enabled)
	assert.False(t, env.Jira.SecurityLevelID.IsDefined())

	writeEnvFile(t, dir, "jira2.env", withKeys(validQAKeys, withKeys(jiraKeys, map[string]string{
		"JIRA_SECURITY_LEVEL_ID": "10001",
	})))
	env, err = Resolve(Options{Name: "jira2", Dir: dir})
	require.NoError(t, err)
	assert.Equal(t, "10001", env.Jira.SecurityLevelID.StringValue())
}
