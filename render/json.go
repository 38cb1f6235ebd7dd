package render

import (
	"encoding/json"
)

// BuildJSON serializes a snapshot to JSON.
func BuildJSON(s *Snapshot) ([]byte, error) {
	return json.Marshal(s)
}
