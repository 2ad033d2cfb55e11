package toml

import (
	"fmt"
	"reflect"
	"strings"
	"time"
)

// durationType is checked explicitly because time.Duration's Kind is
// Int64; without this check a "30s" string in a config file would fail
// the generic int conversion instead of parsing as a duration.
var durationType = reflect.TypeOf(time.Duration(0))

// Unmarshal parses TOML data and stores the result in the value pointed to
// by v. It supports exactly the subset mazebot's configuration needs:
// scalar fields (string, bool, numeric, time.Duration) on a fixed tree of
// nested structs reachable through dotted keys and [section] tables.
// Arrays, inline tables, array-of-tables, and map/slice/pointer struct
// fields are not supported; platform.Config never needs them.
func Unmarshal(data []byte, v any) error {
	p := NewParser(data)
	parsedMap, err := p.Parse()
	if err != nil {
		return err
	}
	return Decode(parsedMap, v)
}

// Decode maps a generic map[string]any to a struct using reflection. It
// prioritizes `toml` tags and falls back to field names.
func Decode(data any, v any) error {
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Ptr || val.IsNil() {
		return fmt.Errorf("target must be a non-nil pointer")
	}

	return decodeValue(data, val.Elem())
}

func decodeValue(data any, val reflect.Value) error {
	if data == nil {
		return nil
	}

	if val.Type() == durationType {
		return decodeDuration(data, val)
	}

	switch val.Kind() {
	case reflect.Struct:
		dataMap, ok := data.(map[string]any)
		if !ok {
			return fmt.Errorf("expected map for struct, got %T", data)
		}
		return decodeStruct(dataMap, val)

	case reflect.Interface:
		val.Set(reflect.ValueOf(data))

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if n, ok := data.(int); ok {
			val.SetInt(int64(n))
		} else if f, ok := toFloat(data); ok {
			val.SetInt(int64(f))
		} else {
			return fmt.Errorf("cannot convert %T to int", data)
		}

	case reflect.Float32, reflect.Float64:
		f, ok := toFloat(data)
		if ok {
			val.SetFloat(f)
		} else {
			return fmt.Errorf("cannot convert %T to float", data)
		}

	case reflect.String:
		if s, ok := data.(string); ok {
			val.SetString(s)
		} else {
			return fmt.Errorf("cannot convert %T to string", data)
		}

	case reflect.Bool:
		if b, ok := data.(bool); ok {
			val.SetBool(b)
		} else {
			return fmt.Errorf("cannot convert %T to bool", data)
		}
	}

	return nil
}

// decodeDuration accepts either a TOML string ("5s", "1m30s", parsed with
// time.ParseDuration) or a bare integer/float of nanoseconds, so a config
// author can write connect_timeout = "5s" instead of counting zeros.
func decodeDuration(data any, val reflect.Value) error {
	if s, ok := data.(string); ok {
		d, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("cannot parse duration %q: %w", s, err)
		}
		val.SetInt(int64(d))
		return nil
	}

	f, ok := toFloat(data)
	if !ok {
		return fmt.Errorf("cannot convert %T to duration", data)
	}
	val.SetInt(int64(f))
	return nil
}

func decodeStruct(data map[string]any, val reflect.Value) error {
	typ := val.Type()

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		fieldType := typ.Field(i)
		if !fieldType.IsExported() {
			continue
		}

		// Determine key name
		key := fieldType.Name
		if tag := fieldType.Tag.Get("toml"); tag != "" {
			parts := strings.Split(tag, ",")
			if parts[0] == "-" {
				continue
			}
			key = parts[0]
		}

		// Look up in data map (case sensitive)
		if vData, ok := data[key]; ok {
			if err := decodeValue(vData, field); err != nil {
				return fmt.Errorf("%s.%s: %w", typ.Name(), fieldType.Name, err)
			}
		}
	}
	return nil
}

func toFloat(v any) (float64, bool) {
	switch i := v.(type) {
	case int:
		return float64(i), true
	case int8:
		return float64(i), true
	case int16:
		return float64(i), true
	case int32:
		return float64(i), true
	case int64:
		return float64(i), true
	case uint:
		return float64(i), true
	case uint8:
		return float64(i), true
	case uint16:
		return float64(i), true
	case uint32:
		return float64(i), true
	case uint64:
		return float64(i), true
	case float64:
		return i, true
	}
	return 0, false
}
