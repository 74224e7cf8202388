package resource

import (
	"bytes"
	"errors"
	"io/fs"
	"log"
	"os"
	"regexp"
	"time"

	"github.com/spf13/viper"

	"weather-app/configs"
)

var envPattern = regexp.MustCompile(`^\$\{([^:}]+)(?::([^}]*))?}$`)

// init loads application properties from YAML
func init() {
	if err := Init(configs.Env.PropertiesFilePath); err != nil {
		log.Fatalf("Fail to read properties: %v", err)
	}
}

// Init reads the properties file, falling back to the defaults embedded in the binary
// when the file does not exist, and resolves ${ENV:default} placeholders.
func Init(filepath string) error {
	viper.SetConfigType("yml")

	content, err := os.ReadFile(filepath)
	if errors.Is(err, fs.ErrNotExist) {
		content = configs.DefaultApplication
	} else if err != nil {
		return err
	}

	if err := viper.ReadConfig(bytes.NewReader(content)); err != nil {
		return err
	}

	resolved := make(map[string]any)
	flattenProperties("", viper.AllSettings(), resolved)
	for key, value := range resolved {
		viper.Set(key, value)
	}
	return nil
}

// flattenProperties walks the YAML tree and collects leaves under dotted keys
func flattenProperties(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = resolveEnvVariable(v)
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, bool:
			result[fullKey] = v
		case map[string]any:
			flattenProperties(fullKey, v, result)
		default:
			log.Printf("Ignoring key '%s' with unsupported type.", fullKey)
		}
	}
}

// resolveEnvVariable replaces a whole-value ${NAME:default} placeholder. Plain values pass through.
func resolveEnvVariable(value string) string {
	matches := envPattern.FindStringSubmatch(value)
	if matches == nil {
		return value
	}

	if envValue, exists := os.LookupEnv(matches[1]); exists {
		return envValue
	}
	return matches[2]
}

func Get(key string) any {
	return viper.Get(key)
}

func GetString(key string) string {
	return viper.GetString(key)
}

func GetBool(key string) bool {
	return viper.GetBool(key)
}

func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

func GetInt(key string) int {
	return viper.GetInt(key)
}

func GetFloat64(key string) float64 {
	return viper.GetFloat64(key)
}

// GetStringOrDefault returns the property or the given default when it is empty.
func GetStringOrDefault(key, defaultValue string) string {
	if value := viper.GetString(key); value != "" {
		return value
	}
	return defaultValue
}
