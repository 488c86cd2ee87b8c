package domain

import (
	"encoding/json"
	"math"
	"time"
)

// Clone returns a shallow copy of the document.
func (d Document) Clone() Document {
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

func (d Document) String(key string) string {
	s, _ := d[key].(string)
	return s
}

func (d Document) Bool(key string) bool {
	b, _ := d[key].(bool)
	return b
}

// Float reads a numeric field regardless of how the adapter decoded it.
func (d Document) Float(key string) float64 {
	switch v := d[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		f, _ := v.Float64()
		return f
	default:
		return 0
	}
}

func (d Document) Int(key string) int {
	return int(math.Round(d.Float(key)))
}

// Instant reads a Unix-millisecond field as a UTC time.
func (d Document) Instant(key string) time.Time {
	ms := int64(math.Round(d.Float(key)))
	return time.UnixMilli(ms).UTC()
}
