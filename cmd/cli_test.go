package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginRequiresCredentialFlags(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "login", "--email", "admin@nhileteam.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag(s) \"password\" not set")
}

func TestLoginHappyPath(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "login", "--email", "admin@nhileteam.com", "--password", "password")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Welcome back, Admin User!")
}

func TestLoginInvalidCredentialsLeavesSessionLoggedOut(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "login", "--email", "admin@nhileteam.com", "--password", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid email or password")

	stdout, _, err := executeCLI(t, home, "whoami")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Not logged in.")
}

func TestLoginWhileLoggedInRejected(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "login", "--email", "admin@nhileteam.com", "--password", "password")
	require.NoError(t, err)

	_, _, err = executeCLI(t, home, "login", "--email", "hr@nhileteam.com", "--password", "password")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already logged in as admin@nhileteam.com")
}

func TestWhoamiPersistsAcrossInvocations(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "login", "--email", "leader@nhileteam.com", "--password", "password")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "whoami")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Team Leader (3)")
	assert.Contains(t, stdout, "role: leader")
	assert.Contains(t, stdout, "team: 1")
}

func TestWhoamiJSONOutput(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "login", "--email", "hr@nhileteam.com", "--password", "password")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "whoami", "--json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, "hr@nhileteam.com")
	assert.Contains(t, stdout, "\"Status\": \"authenticated\"")
	assert.NotContains(t, stdout, "password")
}

func TestWhoamiRecoversFromMalformedSessionRecord(t *testing.T) {
	home := t.TempDir()
	stateDir := filepath.Join(home, ".nlt")
	require.NoError(t, os.MkdirAll(stateDir, 0o700))
	recordPath := filepath.Join(stateDir, "session-identity.json")
	require.NoError(t, os.WriteFile(recordPath, []byte("{broken"), 0o600))

	stdout, _, err := executeCLI(t, home, "whoami")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Not logged in.")

	// The malformed record is discarded, not kept around.
	_, statErr := os.Stat(recordPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestNavRequiresLogin(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "nav")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not logged in")
}

func TestNavFiltersByRole(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "login", "--email", "user@nhileteam.com", "--password", "password")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "nav")
	require.NoError(t, err)
	assert.Contains(t, stdout, "/attendance")
	assert.Contains(t, stdout, "/settings")
	assert.NotContains(t, stdout, "/blacklist")
	assert.NotContains(t, stdout, "/employees")
}

func TestNavAdminSeesEverything(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "login", "--email", "admin@nhileteam.com", "--password", "password")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "nav", "--json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, "/blacklist")
	assert.Contains(t, stdout, "/employees")
	assert.Contains(t, stdout, "/teams")
}

func TestLogoutIdempotent(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "login", "--email", "admin@nhileteam.com", "--password", "password")
	require.NoError(t, err)

	for range 2 {
		stdout, _, err := executeCLI(t, home, "logout")
		require.NoError(t, err)
		assert.Contains(t, stdout, "logged out successfully")
	}

	stdout, _, err := executeCLI(t, home, "whoami")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Not logged in.")
}

func TestChatOneShotAttendancePrecedence(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "chat", "--message", "team attendance report")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Attendance page")
	assert.NotContains(t, stdout, "Teams page")
}

func TestChatOneShotVietnameseGreeting(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "chat", "--lang", "vi", "--message", "xin chào")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Xin chào! Tôi là Trợ lý NLT.")
}

func TestChatOneShotFallback(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "chat", "--message", "what's for lunch?")
	require.NoError(t, err)
	assert.Contains(t, stdout, "I'm not sure about that")
}

func TestChatRejectsUnsupportedLanguage(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "chat", "--lang", "fr", "--message", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported locale")
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
