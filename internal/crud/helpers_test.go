package crud

import (
	"encoding/json"
	"testing"
)

func jsonOf(t *testing.T, v interface{}) (map[string]interface{}, error) {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	var out map[string]interface{}
	err = json.Unmarshal(raw, &out)
	return out, err
}
