package workflow

import "encoding/json"

// jsonValue renders an arbitrary value the way the exported document
// shows it; unmarshalable values degrade to "null".
func jsonValue(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(data)
}
