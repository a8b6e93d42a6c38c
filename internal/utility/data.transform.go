package utility

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TransformTagConfig holds the parsed configuration of a `transform` struct tag.
type TransformTagConfig struct {
	Type     string // transform type: str_objectid, str_objectid_ptr, str_time, str_int64, str_bool
	Format   string // time layout for the str_time converter
	Default  string // default value applied when the input is empty
	Optional bool   // skip the field when no value is present
	Required bool   // fail when no value is present
	MapTo    string // target field name in the model when it differs from the DTO field
}

// ParseTransformTag parses a `transform` struct tag into its config.
// Format: "[type][,format=<value>][,default=<value>][,map=<field>][,optional|required]"
//
// Examples:
//   - transform:"str_objectid"            string → primitive.ObjectID
//   - transform:"str_objectid_ptr"        string → *primitive.ObjectID
//   - transform:"str_time,format=2006-01-02"  string → int64 timestamp (ms)
//   - transform:"str_int64"               string → int64
//   - transform:"str_objectid,optional"   skip when empty
//   - transform:",map=ProspectID"         copy into a differently named field
func ParseTransformTag(tag string) (*TransformTagConfig, error) {
	config := &TransformTagConfig{
		Format: "2006-01-02T15:04:05",
	}

	if tag == "" {
		return config, nil
	}

	parts := strings.Split(tag, ",")
	if len(parts) == 0 {
		return nil, fmt.Errorf("invalid transform tag: %s", tag)
	}

	config.Type = strings.TrimSpace(parts[0])

	for i := 1; i < len(parts); i++ {
		part := strings.TrimSpace(parts[i])
		if part == "" {
			continue
		}
		if part == "optional" {
			config.Optional = true
			continue
		}
		if part == "required" {
			config.Required = true
			continue
		}
		if strings.Contains(part, "=") {
			kv := strings.SplitN(part, "=", 2)
			if len(kv) != 2 {
				continue
			}
			key := strings.TrimSpace(kv[0])
			value := strings.TrimSpace(kv[1])
			switch key {
			case "format":
				config.Format = value
			case "default":
				config.Default = value
			case "map":
				config.MapTo = value
			}
		}
	}

	return config, nil
}

// TransformFieldValue converts a DTO field value into the model field value
// according to the parsed tag config.
func TransformFieldValue(value interface{}, config *TransformTagConfig, targetFieldType reflect.Type) (interface{}, error) {
	if value == nil {
		if config.Default != "" {
			return applyTransform(config.Default, config)
		}
		if config.Optional {
			return nil, nil
		}
		if config.Required {
			return nil, fmt.Errorf("field is required but has no value")
		}
		return nil, nil
	}

	if strValue, ok := value.(string); ok && strValue == "" {
		if config.Default != "" {
			return applyTransform(config.Default, config)
		}
		if config.Optional {
			return nil, nil
		}
		if config.Required {
			return nil, fmt.Errorf("field is required but empty")
		}
		return nil, nil
	}

	return applyTransform(value, config)
}

func applyTransform(value interface{}, config *TransformTagConfig) (interface{}, error) {
	switch config.Type {
	case "str_objectid":
		return transformToObjectID(value)
	case "str_objectid_ptr":
		return transformToObjectIDPtr(value)
	case "str_time":
		return transformToTime(value, config.Format)
	case "str_int64":
		return transformToInt64(value)
	case "str_bool":
		return transformToBool(value)
	default:
		// no transform type, pass the value through
		return value, nil
	}
}

func transformToObjectID(value interface{}) (primitive.ObjectID, error) {
	if value == nil {
		return primitive.NilObjectID, nil
	}
	strValue, ok := value.(string)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("value is not a string: %T", value)
	}
	if strValue == "" {
		return primitive.NilObjectID, nil
	}
	objID, err := primitive.ObjectIDFromHex(strValue)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("cannot convert string '%s' to ObjectID: %w", strValue, err)
	}
	return objID, nil
}

func transformToObjectIDPtr(value interface{}) (*primitive.ObjectID, error) {
	if value == nil {
		return nil, nil
	}
	strValue, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("value is not a string: %T", value)
	}
	if strValue == "" {
		return nil, nil
	}
	objID, err := primitive.ObjectIDFromHex(strValue)
	if err != nil {
		return nil, fmt.Errorf("cannot convert string '%s' to ObjectID: %w", strValue, err)
	}
	return &objID, nil
}

func transformToTime(value interface{}, format string) (int64, error) {
	if value == nil {
		return 0, nil
	}
	strValue, ok := value.(string)
	if !ok {
		return 0, fmt.Errorf("value is not a string: %T", value)
	}
	if strValue == "" {
		return 0, nil
	}
	t, err := time.Parse(format, strValue)
	if err != nil {
		return 0, fmt.Errorf("cannot parse time '%s' with layout '%s': %w", strValue, format, err)
	}
	return t.UnixMilli(), nil
}

func transformToInt64(value interface{}) (int64, error) {
	if value == nil {
		return 0, nil
	}
	switch v := value.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case float64:
		return int64(v), nil
	case float32:
		return int64(v), nil
	case string:
		return strconv.ParseInt(v, 10, 64)
	default:
		return 0, fmt.Errorf("cannot convert %T to int64", value)
	}
}

func transformToBool(value interface{}) (bool, error) {
	if value == nil {
		return false, nil
	}
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		return strconv.ParseBool(v)
	case int:
		return v != 0, nil
	case int64:
		return v != 0, nil
	case float64:
		return v != 0, nil
	default:
		return false, fmt.Errorf("cannot convert %T to bool", value)
	}
}
