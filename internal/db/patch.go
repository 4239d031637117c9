package db

import (
	"encoding/json"
	"reflect"
)

// SameValue compares a stored field with a patch value after normalising both
// through JSON, so 3 (int64 from the store) equals 3.0 (float64 from a request).
func SameValue(stored, patched interface{}) bool {
	a, errA := normalize(stored)
	b, errB := normalize(patched)
	if errA != nil || errB != nil {
		return reflect.DeepEqual(stored, patched)
	}
	return reflect.DeepEqual(a, b)
}

func normalize(v interface{}) (interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
