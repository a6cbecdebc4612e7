package commands

import (
	"errors"
	"fmt"
	"io"
	"syscall"

	"github.com/fivetwenty-io/containersecurity/pkg/cs"
	"github.com/fivetwenty-io/containersecurity/pkg/csclient"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// ErrSecretKeyMissing is returned when no secret key is configured and no
// terminal is available to prompt for one.
var ErrSecretKeyMissing = errors.New("secret key is required, set --secret-key or TIOCS_SECRET_KEY")

// clientConfig assembles the library configuration from flags, environment
// and config file.
func clientConfig(stderr io.Writer) *cs.Config {
	config := &cs.Config{
		APIEndpoint:  viper.GetString("api"),
		AccessKey:    viper.GetString("access_key"),
		SecretKey:    viper.GetString("secret_key"),
		HTTPTimeout:  viper.GetDuration("timeout"),
		RetryMax:     viper.GetInt("retry_max"),
		RetryWaitMin: viper.GetDuration("retry_wait_min"),
		RetryWaitMax: viper.GetDuration("retry_wait_max"),
	}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = NewLogger(stderr, true)
	}

	return config
}

// CreateClient creates a client from the current configuration, prompting
// for the secret key when it is missing and stdin is a terminal.
func CreateClient(stderr io.Writer) (cs.Client, error) {
	config := clientConfig(stderr)

	if config.SecretKey == "" && config.AccessKey != "" {
		secretKey, err := promptSecretKey(stderr)
		if err != nil {
			return nil, err
		}

		config.SecretKey = secretKey
	}

	client, err := csclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

func promptSecretKey(stderr io.Writer) (string, error) {
	fd := int(syscall.Stdin)
	if !term.IsTerminal(fd) {
		return "", ErrSecretKeyMissing
	}

	_, _ = fmt.Fprint(stderr, "Secret key: ")

	secret, err := term.ReadPassword(fd)
	if err != nil {
		return "", fmt.Errorf("failed to read secret key: %w", err)
	}

	_, _ = fmt.Fprintln(stderr)

	return string(secret), nil
}
