package repository

import (
	"errors"
	"time"

	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// errUnexpectedFormat is returned when a query result does not decode into
// the expected row shape.
var errUnexpectedFormat = errors.New("unexpected result format")

// recordID normalizes a SurrealDB record ID to its "table:id" string form.
func recordID(id interface{}) string {
	switch v := id.(type) {
	case string:
		return v
	case models.RecordID:
		return v.String()
	case *models.RecordID:
		if v != nil {
			return v.String()
		}
	case map[string]interface{}:
		if tb, ok := v["tb"].(string); ok {
			if id, ok := v["id"].(string); ok {
				return tb + ":" + id
			}
		}
	}
	return ""
}

// rows flattens a Query response ([]{status, result} envelopes) into the
// contained row maps.
func rows(results []interface{}) []map[string]interface{} {
	out := make([]map[string]interface{}, 0)
	for _, result := range results {
		resp, ok := result.(map[string]interface{})
		if !ok {
			continue
		}
		if status, ok := resp["status"].(string); ok && status == "OK" {
			if items, ok := resp["result"].([]interface{}); ok {
				for _, item := range items {
					if row, ok := item.(map[string]interface{}); ok {
						out = append(out, row)
					}
				}
				continue
			}
		}
		// Already a bare row
		out = append(out, resp)
	}
	return out
}

// row unwraps a QueryOne result into a row map.
func row(result interface{}) (map[string]interface{}, error) {
	if data, ok := result.(map[string]interface{}); ok {
		return data, nil
	}
	return nil, errUnexpectedFormat
}

func getString(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func getBool(m map[string]interface{}, key string) bool {
	if v, ok := m[key].(bool); ok {
		return v
	}
	return false
}

func getInt(m map[string]interface{}, key string) int {
	switch v := m[key].(type) {
	case float64:
		return int(v)
	case float32:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	case uint64:
		return int(v)
	}
	return 0
}

func getTime(m map[string]interface{}, key string) time.Time {
	switch v := m[key].(type) {
	case time.Time:
		return v
	case string:
		if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
			return t
		}
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t
		}
	case models.CustomDateTime:
		return v.Time
	case *models.CustomDateTime:
		if v != nil {
			return v.Time
		}
	}
	return time.Time{}
}

func getTimePtr(m map[string]interface{}, key string) *time.Time {
	t := getTime(m, key)
	if t.IsZero() {
		return nil
	}
	return &t
}

func getMap(m map[string]interface{}, key string) map[string]interface{} {
	if v, ok := m[key].(map[string]interface{}); ok {
		return v
	}
	return nil
}
