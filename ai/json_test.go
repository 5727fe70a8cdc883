package ai

import (
	"encoding/json"
	"fmt"
	"testing"
)

func TestMarshalUnmarshal(t *testing.T) {
	cases := []struct {
		in  Weights
		out string
	}{
		{Weights{}, "{}"},
		{Weights{Pieces: 10}, `{"Pieces":10}`},
		{Weights{Corners: 100, Center: -5}, `{"Center":-5,"Corners":100}`},
	}
	for i, tc := range cases {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			out, e := json.Marshal(&tc.in)
			if e != nil {
				t.Fatalf("Marshal(): %v", e)
			}
			if string(out) != tc.out {
				t.Fatalf("Marshal() = %q != %q", out, tc.out)
			}

			var back Weights
			e = json.Unmarshal(out, &back)
			if e != nil {
				t.Fatalf("Unmarshal(%q): %v", out, e)
			}
			if back != tc.in {
				t.Errorf("roundtrip = %+v != %+v", back, tc.in)
			}
		})
	}
}

func TestUnmarshalOverDefaults(t *testing.T) {
	w := DefaultWeights
	if e := json.Unmarshal([]byte(`{"Mobility": 25}`), &w); e != nil {
		t.Fatal(e)
	}
	want := DefaultWeights
	want.Mobility = 25
	if w != want {
		t.Errorf("got %+v want %+v", w, want)
	}
	if e := json.Unmarshal([]byte(`{"Flats": 1}`), &w); e == nil {
		t.Error("unknown feature accepted")
	}
}
