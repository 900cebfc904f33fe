package plotly

import (
	"fmt"
	"strings"

	"github.com/matzehuels/plotpub/pkg/errors"
)

// Credentials is the username and API key pair the service authenticates with.
type Credentials struct {
	Username string `toml:"username"`
	APIKey   string `toml:"api_key"`
}

// Validate reports UNAUTHORIZED when either half of the pair is missing.
func (c Credentials) Validate() error {
	if strings.TrimSpace(c.Username) == "" {
		return errors.New(errors.ErrCodeUnauthorized, "missing username (set PLOTLY_USERNAME or credentials.username)")
	}
	if strings.TrimSpace(c.APIKey) == "" {
		return errors.New(errors.ErrCodeUnauthorized, "missing API key (set PLOTLY_API_KEY or credentials.api_key)")
	}
	return nil
}

// String renders the pair with the API key masked.
func (c Credentials) String() string {
	return fmt.Sprintf("%s:%s", c.Username, MaskKey(c.APIKey))
}

// MaskKey hides all but the last two characters of an API key.
func MaskKey(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-2) + key[len(key)-2:]
}
