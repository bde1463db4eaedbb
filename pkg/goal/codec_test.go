package goal

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	f, ids := sample(t)
	f.ToggleCompleted(ids["a1x"])
	f.ToggleCompleted(ids["b"])
	f.ToggleExpanded(ids["a1"])
	if _, err := f.Rename(ids["a2"], "second"); err != nil {
		t.Fatal(err)
	}

	data := encode(t, f)
	back, err := Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if again := encode(t, back); !bytes.Equal(data, again) {
		t.Fatalf("round trip mismatch:\n%s\n%s", data, again)
	}
	if back.Len() != f.Len() || back.CountCompleted() != 2 {
		t.Fatalf("Len/CountCompleted = %d/%d", back.Len(), back.CountCompleted())
	}
	// Decoded forests stay usable.
	if _, err := back.InsertChild(ids["b"], "b1"); err != nil {
		t.Fatal(err)
	}
	if back.Len() != f.Len()+1 {
		t.Fatal("insert after decode failed")
	}
}

func TestEncodeShape(t *testing.T) {
	f := New(WithIDFunc(counterIDs()))
	root := mustRoot(t, f, "Read book")
	mustChild(t, f, root, "Chapter 1")

	want := `[{"id":"g1","title":"Read book","completed":false,"children":[{"id":"g2","title":"Chapter 1","completed":false,"children":[],"expanded":false}],"expanded":true}]`
	if got := string(encode(t, f)); got != want {
		t.Fatalf("encoded =\n%s\nwant\n%s", got, want)
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantLen int
		wantErr error
	}{
		{name: "empty", in: "", wantLen: 0},
		{name: "empty array", in: "[]", wantLen: 0},
		{name: "null", in: "null", wantLen: 0},
		{name: "missing children", in: `[{"id":"1","title":"x","completed":false,"expanded":false}]`, wantLen: 1},
		{name: "nested", in: `[{"id":"1","title":"x","children":[{"id":"2","title":"y","children":[]}]}]`, wantLen: 2},
		{name: "duplicate", in: `[{"id":"1","title":"x","children":[{"id":"1","title":"y"}]}]`, wantErr: ErrDuplicateID},
		{name: "object", in: `{"id":"1"}`, wantErr: errAny},
		{name: "garbage", in: `not json`, wantErr: errAny},
		{name: "no id", in: `[{"title":"x"}]`, wantErr: errAny},
		{name: "null record", in: `[null]`, wantErr: errAny},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Decode([]byte(tt.in))
			switch {
			case tt.wantErr == nil && err != nil:
				t.Fatalf("unexpected error: %v", err)
			case tt.wantErr == errAny && err == nil:
				t.Fatal("expected error")
			case tt.wantErr != nil && tt.wantErr != errAny && !errors.Is(err, tt.wantErr):
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if err == nil && f.Len() != tt.wantLen {
				t.Fatalf("Len() = %d, want %d", f.Len(), tt.wantLen)
			}
		})
	}
}

var errAny = errors.New("any error")

func TestUnmarshalIntoNilPointer(t *testing.T) {
	var f *Forest
	if err := json.Unmarshal([]byte(`[{"id":"1","title":"x"}]`), &f); err != nil {
		t.Fatal(err)
	}
	if f == nil || f.Len() != 1 {
		t.Fatalf("unexpected forest %+v", f)
	}
	if _, err := f.InsertRoot("y"); err != nil {
		t.Fatalf("decoded forest should have an id generator: %v", err)
	}
}

func TestMarshalNil(t *testing.T) {
	var f *Forest
	b, err := f.MarshalJSON()
	if err != nil || string(b) != "[]" {
		t.Fatalf("MarshalJSON() = %s, %v", b, err)
	}
}
