//go:build integration
// +build integration

package integration

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// TestConfig holds the environment-provided settings the suite runs against.
type TestConfig struct {
	APIEndpoint  string
	AccessToken  string
	ClientID     string
	ClientSecret string
	BinaryPath   string
	Verbose      bool
}

// LoadTestConfig loads configuration from environment variables.
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		APIEndpoint:  os.Getenv("NYLAS_TEST_API"),
		AccessToken:  os.Getenv("NYLAS_TEST_TOKEN"),
		ClientID:     os.Getenv("NYLAS_TEST_CLIENT_ID"),
		ClientSecret: os.Getenv("NYLAS_TEST_CLIENT_SECRET"),
		BinaryPath:   getBinaryPath(),
		Verbose:      os.Getenv("NYLAS_TEST_VERBOSE") == "true",
	}
}

// getBinaryPath determines the path to the nylas binary.
func getBinaryPath() string {
	if path := os.Getenv("NYLAS_TEST_BINARY"); path != "" {
		return path
	}

	candidates := []string{
		"../../nylas",
		"./nylas",
		"../nylas",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "nylas" // Fallback to PATH
}

// SkipIfMissingBinary skips the test when the nylas binary has not been
// built.
func (config *TestConfig) SkipIfMissingBinary(t *testing.T) {
	if _, err := exec.LookPath(config.BinaryPath); err != nil {
		t.Skipf("nylas binary not found at %s, skipping integration test", config.BinaryPath)
	}
}

// SkipIfMissingConfig skips the test when no connected test account is
// configured.
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	config.SkipIfMissingBinary(t)

	if config.AccessToken == "" {
		t.Skip("NYLAS_TEST_TOKEN not set, skipping integration test")
	}
}

// CommandRunner executes nylas commands against an isolated home directory
// so the suite never touches the developer's real config file.
type CommandRunner struct {
	config *TestConfig
	t      *testing.T
	home   string
}

// NewCommandRunner creates a runner with a fresh throwaway home.
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	return &CommandRunner{
		config: config,
		t:      t,
		home:   t.TempDir(),
	}
}

// Run executes a nylas command and returns its output.
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	return runner.run(nil, args...)
}

// RunWithInput executes a nylas command with stdin input.
func (runner *CommandRunner) RunWithInput(input string, args ...string) (stdout, stderr string, err error) {
	return runner.run(strings.NewReader(input), args...)
}

func (runner *CommandRunner) run(stdin io.Reader, args ...string) (stdout, stderr string, err error) {
	cmd := exec.Command(runner.config.BinaryPath, args...)
	cmd.Env = runner.environment()
	cmd.Stdin = stdin

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.BinaryPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// environment points the CLI at the test account and the isolated home.
// Later entries win, so appending overrides anything inherited.
func (runner *CommandRunner) environment() []string {
	env := append(os.Environ(),
		"HOME="+runner.home,
		"NYLAS_TOKEN="+runner.config.AccessToken,
	)

	if runner.config.APIEndpoint != "" {
		env = append(env, "NYLAS_API="+runner.config.APIEndpoint)
	}

	if runner.config.ClientID != "" {
		env = append(env, "NYLAS_CLIENT_ID="+runner.config.ClientID)
	}

	if runner.config.ClientSecret != "" {
		env = append(env, "NYLAS_CLIENT_SECRET="+runner.config.ClientSecret)
	}

	return env
}

// WithoutToken returns a runner whose CLI sees no access token at all.
func (runner *CommandRunner) WithoutToken() *CommandRunner {
	bare := *runner.config
	bare.AccessToken = ""

	return &CommandRunner{
		config: &bare,
		t:      runner.t,
		home:   runner.t.TempDir(),
	}
}

// GenerateTestName creates a unique test resource name.
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().Unix())
}

// AssertJSONOutput verifies command output is valid JSON.
func AssertJSONOutput(t *testing.T, output string) {
	if !json.Valid([]byte(strings.TrimSpace(output))) {
		t.Errorf("Output is not valid JSON: %s", output)
	}
}

// AssertYAMLOutput verifies command output is valid YAML.
func AssertYAMLOutput(t *testing.T, output string) {
	var decoded interface{}
	if err := yaml.Unmarshal([]byte(output), &decoded); err != nil {
		t.Errorf("Output is not valid YAML: %v\n%s", err, output)
	}
}
