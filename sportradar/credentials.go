package sportradar

import (
	"fmt"
	"os"
	"strings"
)

const apiKeyEnvTemplate = "SPORTRADAR_%s_%s_API_KEY"

// APIKeyEnvVar returns the environment variable holding the key for sport at
// level, e.g. SPORTRADAR_SOCCER_TRIAL_API_KEY. An empty level means Production.
func APIKeyEnvVar(sport string, level AccessLevel) string {
	return fmt.Sprintf(apiKeyEnvTemplate,
		strings.ToUpper(sport),
		strings.ToUpper(string(level.orDefault())))
}

// ResolveAPIKey looks up the API key for sport at level in the environment.
// The environment is read on every call. An unset or empty variable returns
// false; deciding whether that is fatal is up to the caller.
func ResolveAPIKey(sport string, level AccessLevel) (string, bool) {
	key, ok := os.LookupEnv(APIKeyEnvVar(sport, level))
	if !ok || key == "" {
		return "", false
	}
	return key, true
}
