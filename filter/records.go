package filter

import "fmt"

// RecordKeys are the list fields FRED uses for result collections, in the
// order they are looked up.
var RecordKeys = []string{
	"seriess",
	"observations",
	"categories",
	"releases",
	"release_dates",
	"sources",
	"tags",
	"vintage_dates",
}

// ExtractRecords finds the result collection in a decoded FRED response.
func ExtractRecords(object any) (key string, records []any, ok bool) {
	envelope, isMap := object.(map[string]any)
	if !isMap {
		return "", nil, false
	}
	for _, k := range RecordKeys {
		if list, found := envelope[k].([]any); found {
			return k, list, true
		}
	}
	return "", nil, false
}

// ApplyToResponse filters the result collection of a decoded response in
// place and returns the number of records kept.
func ApplyToResponse(f *Filter, object any) (int, error) {
	key, records, ok := ExtractRecords(object)
	if !ok {
		return 0, fmt.Errorf("response has no filterable collection")
	}
	kept, err := f.Apply(records)
	if err != nil {
		return 0, err
	}
	object.(map[string]any)[key] = kept
	return len(kept), nil
}
