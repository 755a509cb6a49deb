package llm

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/hansollabs/clausecraft/internal/common"
)

func TestExtractObject(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string // canonical JSON the repaired object must equal
		wantErr bool
	}{
		{
			name:  "well formed object",
			input: `{"selectedIds":["t1","t2"]}`,
			want:  `{"selectedIds":["t1","t2"]}`,
		},
		{
			name:  "fenced code block",
			input: "```json\n{\"selectedNumbers\":[1,2,3]}\n```",
			want:  `{"selectedNumbers":[1,2,3]}`,
		},
		{
			name:  "fence without language tag",
			input: "```\n{\"a\":1}\n```",
			want:  `{"a":1}`,
		},
		{
			name:  "object embedded in prose",
			input: "Here is the selection you asked for:\n{\"selectedIds\":[\"t3\"]}\nLet me know if you need anything else.",
			want:  `{"selectedIds":["t3"]}`,
		},
		{
			name:  "trailing comma in array",
			input: `{"selectedNumbers":[1,2,3,]}`,
			want:  `{"selectedNumbers":[1,2,3]}`,
		},
		{
			name:  "trailing comma in object",
			input: `{"a":1,"b":2,}`,
			want:  `{"a":1,"b":2}`,
		},
		{
			name:  "missing closing brace",
			input: `{"clauses":[{"number":1,"title":"목적"}]`,
			want:  `{"clauses":[{"number":1,"title":"목적"}]}`,
		},
		{
			name:  "fenced with trailing comma and missing brace",
			input: "```json\n{\"clauses\":[{\"number\":1,\"title\":\"목적\"}],\n```",
			want:  `{"clauses":[{"number":1,"title":"목적"}]}`,
		},
		{
			name:  "truncated final element",
			input: `{"clauses":[{"number":1,"title":"목적"},{"num`,
			want:  `{"clauses":[{"number":1,"title":"목적"}]}`,
		},
		{
			name:  "unterminated string",
			input: `{"a":"hello`,
			want:  `{"a":"hello"}`,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "whitespace only",
			input:   "   \n\t  ",
			wantErr: true,
		},
		{
			name:    "prose with no object",
			input:   "I could not produce the requested clause selection, sorry.",
			wantErr: true,
		},
		{
			name:    "bare array is not an object",
			input:   `[1,2,3]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractObject(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ExtractObject(%q) = %s, want error", tt.input, got)
				}
				var parseErr *common.ParseError
				if !errors.As(err, &parseErr) {
					t.Fatalf("error is %T, want *common.ParseError", err)
				}
				if parseErr.Raw != tt.input {
					t.Errorf("ParseError.Raw = %q, want original input", parseErr.Raw)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractObject(%q) returned error: %v", tt.input, err)
			}

			var gotVal, wantVal any
			if err := json.Unmarshal(got, &gotVal); err != nil {
				t.Fatalf("repaired output is not valid JSON: %v", err)
			}
			if err := json.Unmarshal([]byte(tt.want), &wantVal); err != nil {
				t.Fatalf("bad test fixture: %v", err)
			}
			if !reflect.DeepEqual(gotVal, wantVal) {
				t.Errorf("ExtractObject(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

// Repaired recoverable inputs must decode to the same object as their
// well-formed equivalents.
func TestExtractObjectMatchesCleanParse(t *testing.T) {
	clean := `{"clauses":[{"number":1,"title":"계약의 목적","category":"purpose"}]}`
	variants := []string{
		"```json\n" + clean + "\n```",
		clean[:len(clean)-1],
		`{"clauses":[{"number":1,"title":"계약의 목적","category":"purpose"},]}`,
	}

	var want any
	if err := json.Unmarshal([]byte(clean), &want); err != nil {
		t.Fatal(err)
	}

	for _, v := range variants {
		got, err := ExtractObject(v)
		if err != nil {
			t.Fatalf("ExtractObject(%q) returned error: %v", v, err)
		}
		var gotVal any
		if err := json.Unmarshal(got, &gotVal); err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(gotVal, want) {
			t.Errorf("ExtractObject(%q) = %s, want %s", v, got, clean)
		}
	}
}

func TestDecodeInto(t *testing.T) {
	var resp struct {
		SelectedNumbers []int `json:"selectedNumbers"`
	}
	if err := DecodeInto("```json\n{\"selectedNumbers\":[1,3,5,]}\n```", &resp); err != nil {
		t.Fatalf("DecodeInto returned error: %v", err)
	}
	if want := []int{1, 3, 5}; !reflect.DeepEqual(resp.SelectedNumbers, want) {
		t.Errorf("SelectedNumbers = %v, want %v", resp.SelectedNumbers, want)
	}

	if err := DecodeInto("no json here", &resp); err == nil {
		t.Error("DecodeInto accepted prose with no object")
	}
}
