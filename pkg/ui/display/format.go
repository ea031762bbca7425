package display

import (
	"encoding/json"
	"fmt"
)

// FormatOptions renders an options payload on one line, the way it would
// be written in a JSON configuration
func FormatOptions(opts []interface{}) string {
	if len(opts) == 0 {
		return ""
	}
	data, err := json.Marshal(opts)
	if err != nil {
		return fmt.Sprintf("%v", opts)
	}
	return string(data)
}
