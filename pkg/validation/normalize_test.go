package validation

import (
	"reflect"
	"testing"
	"time"
)

func TestNormalize(t *testing.T) {
	date := time.Date(2020, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input any
		want  any
	}{
		{
			name:  "date becomes ISO string",
			input: date,
			want:  "2020-03-15",
		},
		{
			name:  "scalar passes through",
			input: "hello",
			want:  "hello",
		},
		{
			name:  "nil passes through",
			input: nil,
			want:  nil,
		},
		{
			name: "nested containers rebuilt",
			input: map[string]any{
				"start": date,
				"jobs": []any{
					map[string]any{"until": date, "count": 3},
				},
			},
			want: map[string]any{
				"start": "2020-03-15",
				"jobs": []any{
					map[string]any{"until": "2020-03-15", "count": 3},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Normalize() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	date := time.Date(2020, 3, 15, 0, 0, 0, 0, time.UTC)
	input := map[string]any{"start": date}

	Normalize(input)

	if _, ok := input["start"].(time.Time); !ok {
		t.Error("input map was mutated")
	}
}
