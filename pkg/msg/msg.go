package msg

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"weather-app/configs"
)

var messages = make(map[string]string)

// init loads messages from YAML
func init() {
	if err := Init(configs.Env.MessagesFilePath); err != nil {
		log.Fatalf("Fail to read messages: %v", err)
	}
}

// Init loads the message catalog from filepath, or from the embedded catalog when the
// file does not exist. It uses its own viper instance so the application properties
// held by the global one are left alone.
func Init(filepath string) error {
	content, err := os.ReadFile(filepath)
	if errors.Is(err, fs.ErrNotExist) {
		content = configs.DefaultMessages
	} else if err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigType("yml")
	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		return err
	}

	parseMessageMap("", v.AllSettings(), messages)
	return nil
}

// parseMessageMap read recursively the yml archive
func parseMessageMap(prefix string, data map[string]interface{}, result map[string]string) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]interface{}:
			parseMessageMap(fullKey, v, result)
		default:
			log.Printf("Ignoring key '%s' with unsupported type.", fullKey)
		}
	}
}

// GetMessage returns the message for key with {0}, {1}... replaced by args.
// Non-primitive args are rendered as JSON.
func GetMessage(key string, args ...interface{}) string {
	msg, exists := messages[key]
	if !exists {
		return fmt.Sprintf("Message not found: %s", key)
	}

	for i, arg := range args {
		placeholder := "{" + strconv.Itoa(i) + "}"
		msg = strings.ReplaceAll(msg, placeholder, argToString(arg))
	}

	return msg
}

func argToString(arg interface{}) string {
	switch v := arg.(type) {
	case nil:
		return ""
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	}

	if isPrimitive(arg) {
		return fmt.Sprintf("%v", arg)
	}

	jsonBytes, err := json.Marshal(arg)
	if err != nil {
		return fmt.Sprintf("%v", arg)
	}
	return string(jsonBytes)
}

func isPrimitive(value interface{}) bool {
	switch reflect.TypeOf(value).Kind() {
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.String:
		return true
	default:
		return false
	}
}
