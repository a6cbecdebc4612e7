//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	APIEndpoint string
	AccessKey   string
	SecretKey   string
	TiocsPath   string
	Verbose     bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		APIEndpoint: os.Getenv("TIOCS_API"),
		AccessKey:   os.Getenv("TIOCS_ACCESS_KEY"),
		SecretKey:   os.Getenv("TIOCS_SECRET_KEY"),
		TiocsPath:   getTiocsPath(),
		Verbose:     os.Getenv("TIOCS_VERBOSE") == "true",
	}
}

// getTiocsPath determines the path to the tiocs binary
func getTiocsPath() string {
	if path := os.Getenv("TIOCS_BINARY_PATH"); path != "" {
		return path
	}

	// Try common locations
	candidates := []string{
		"../../tiocs",
		"./tiocs",
		"../tiocs",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "tiocs" // Fallback to PATH
}

// SkipIfMissingConfig skips test if required config is missing
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.AccessKey == "" || config.SecretKey == "" {
		t.Skip("TIOCS_ACCESS_KEY or TIOCS_SECRET_KEY not set, skipping integration test")
	}

	if _, err := exec.LookPath(config.TiocsPath); err != nil {
		t.Skipf("tiocs binary not found at %s, skipping integration test", config.TiocsPath)
	}
}

// CommandRunner provides utilities for running tiocs commands
type CommandRunner struct {
	config *TestConfig
	t      *testing.T
}

// NewCommandRunner creates a new command runner
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	return &CommandRunner{
		config: config,
		t:      t,
	}
}

// Run executes a tiocs command and returns output. Keys are passed through
// the environment.
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	cmd := exec.Command(runner.config.TiocsPath, args...)
	cmd.Env = append(os.Environ(),
		"TIOCS_ACCESS_KEY="+runner.config.AccessKey,
		"TIOCS_SECRET_KEY="+runner.config.SecretKey,
	)

	if runner.config.APIEndpoint != "" {
		cmd.Env = append(cmd.Env, "TIOCS_API="+runner.config.APIEndpoint)
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.TiocsPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// DecodeJSONOutput parses command output produced with --output json
func DecodeJSONOutput(t *testing.T, output string, target any) {
	t.Helper()

	if err := json.Unmarshal([]byte(strings.TrimSpace(output)), target); err != nil {
		t.Fatalf("Output is not valid JSON: %v\n%s", err, output)
	}
}

// AssertYAMLOutput verifies command output is valid YAML
func AssertYAMLOutput(t *testing.T, output string) {
	t.Helper()

	var doc any
	if err := yaml.Unmarshal([]byte(output), &doc); err != nil {
		t.Errorf("Output is not valid YAML: %v\n%s", err, output)
	}
}
