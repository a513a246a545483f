package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"task-list-manager/pkg/response"
)

func TestDateMarshalJSON(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*60*60)

	tcs := map[string]struct {
		in   time.Time
		want string
	}{
		"keeps own location": {in: time.Date(2024, 5, 1, 0, 0, 0, 0, loc), want: `"2024-05-01"`},
		"late in the day":    {in: time.Date(2024, 5, 1, 23, 59, 0, 0, loc), want: `"2024-05-01"`},
		"zero is null":       {in: time.Time{}, want: `null`},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			b, err := json.Marshal(response.Date(tc.in))
			if err != nil {
				t.Fatalf("unexpected error marshaling Date: %v", err)
			}
			if string(b) != tc.want {
				t.Errorf("expected %s, got %s", tc.want, b)
			}
		})
	}
}

func TestDateTimeMarshalJSON(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*60*60)

	tcs := map[string]struct {
		in   time.Time
		want string
	}{
		"utc":          {in: time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC), want: `"2024-05-01T15:30:00.000Z"`},
		"converted":    {in: time.Date(2024, 5, 1, 3, 0, 0, 250e6, loc), want: `"2024-04-30T20:00:00.250Z"`},
		"zero is null": {in: time.Time{}, want: `null`},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			b, err := json.Marshal(response.DateTime(tc.in))
			if err != nil {
				t.Fatalf("unexpected error marshaling DateTime: %v", err)
			}
			if string(b) != tc.want {
				t.Errorf("expected %s, got %s", tc.want, b)
			}
		})
	}
}
