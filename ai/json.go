package ai

import (
	"encoding/json"
	"fmt"
)

var _ interface {
	json.Marshaler
	json.Unmarshaler
} = &Weights{}

var featureNames = []string{"Pieces", "Mobility", "Groups", "Corners", "Center"}

func (ws *Weights) field(name string) *int64 {
	switch name {
	case "Pieces":
		return &ws.Pieces
	case "Mobility":
		return &ws.Mobility
	case "Groups":
		return &ws.Groups
	case "Corners":
		return &ws.Corners
	case "Center":
		return &ws.Center
	}
	return nil
}

func (ws *Weights) MarshalJSON() ([]byte, error) {
	h := make(map[string]int64)
	for _, name := range featureNames {
		if v := *ws.field(name); v != 0 {
			h[name] = v
		}
	}
	return json.Marshal(h)
}

// UnmarshalJSON overwrites only the features present in bs, so a
// partial object can be decoded on top of DefaultWeights.
func (ws *Weights) UnmarshalJSON(bs []byte) error {
	h := make(map[string]int64)
	e := json.Unmarshal(bs, &h)
	if e != nil {
		return e
	}
	for k, v := range h {
		f := ws.field(k)
		if f == nil {
			return fmt.Errorf("unknown feature: %q", k)
		}
		*f = v
	}
	return nil
}
