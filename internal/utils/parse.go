package utils

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"

	"github.com/kaptinlin/jsonrepair"
)

// ParseStringAs parses a string into the target type T. MCP prompt arguments
// always arrive as strings, so the explanation templates use this to recover
// the numbers and lists their tools expect.
//
// Primitive targets (string, bool, int, float) are converted with strconv.
// Everything else goes through JSON unmarshaling, with one repair-and-retry
// pass via jsonrepair so hand-typed values such as `[Gangnam, Hongdae]` or
// `{'names': [...]}` still parse.
//
// Example usage:
//
//	salary, err := ParseStringAs[float64]("3000000")
//	months, err := ParseStringAs[int]("12")
//	names, err := ParseStringAs[[]string](`["City Hall", "Gangnam"]`)
func ParseStringAs[T any](content string) (T, error) {
	var result T

	switch reflect.TypeFor[T]().Kind() {
	case reflect.String:
		reflect.ValueOf(&result).Elem().SetString(content)
		return result, nil

	case reflect.Bool:
		val, err := strconv.ParseBool(content)
		if err != nil {
			return result, fmt.Errorf("failed to parse content as bool: %w", err)
		}
		reflect.ValueOf(&result).Elem().SetBool(val)
		return result, nil

	case reflect.Float32, reflect.Float64:
		val, err := strconv.ParseFloat(content, 64)
		if err != nil {
			return result, fmt.Errorf("failed to parse content as float: %w", err)
		}
		reflect.ValueOf(&result).Elem().SetFloat(val)
		return result, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		val, err := strconv.ParseInt(content, 10, 64)
		if err != nil {
			return result, fmt.Errorf("failed to parse content as int: %w", err)
		}
		reflect.ValueOf(&result).Elem().SetInt(val)
		return result, nil

	default:
		// Slices, maps, and structs go through JSON unmarshaling.
		err := json.Unmarshal([]byte(content), &result)
		if err != nil {
			repaired, repairErr := jsonrepair.JSONRepair(content)
			if repairErr != nil {
				return result, fmt.Errorf("failed to unmarshal content as %T and failed to repair JSON: unmarshal error: %w, repair error: %v", result, err, repairErr)
			}
			if err = json.Unmarshal([]byte(repaired), &result); err != nil {
				return result, fmt.Errorf("failed to unmarshal repaired JSON as %T: %w (original content: %s, repaired: %s)", result, err, content, repaired)
			}
		}
		return result, nil
	}
}
