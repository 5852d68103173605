package canvas

import "encoding/json"

// RenderJSON serializes the canvas layout for consumption by other tools.
func RenderJSON(c Canvas) ([]byte, error) {
	return json.MarshalIndent(c, "", "  ")
}
