package domain

import "encoding/json"

// ProductRecord is the normalized product description returned to the caller.
// It is produced once per request and never persisted.
type ProductRecord struct {
	URL        string     `json:"url"`
	Title      string     `json:"title"`
	Category   string     `json:"category"`
	Attributes Attributes `json:"attributes"`
	RawPrice   float64    `json:"rawPrice"`
}

// Attributes holds the enumerable product options plus any additional keys
// the completion model chooses to include (material, brand, etc.).
type Attributes struct {
	ColorOptions []string
	SizeOptions  []string
	Extra        map[string]any
}

// MarshalJSON flattens Extra into the attributes object so the output is
// {"colorOptions":[...],"sizeOptions":[...],"material":"cotton",...}.
func (a Attributes) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(a.Extra)+2)
	for k, v := range a.Extra {
		out[k] = v
	}
	out["colorOptions"] = emptyIfNil(a.ColorOptions)
	out["sizeOptions"] = emptyIfNil(a.SizeOptions)
	return json.Marshal(out)
}

// UnmarshalJSON is the inverse of MarshalJSON: known keys are lifted into the
// option slices, everything else lands in Extra.
func (a *Attributes) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	a.ColorOptions = []string{}
	a.SizeOptions = []string{}
	a.Extra = nil
	for k, v := range raw {
		switch k {
		case "colorOptions":
			var colors []string
			if err := json.Unmarshal(v, &colors); err == nil && colors != nil {
				a.ColorOptions = colors
			}
		case "sizeOptions":
			var sizes []string
			if err := json.Unmarshal(v, &sizes); err == nil && sizes != nil {
				a.SizeOptions = sizes
			}
		default:
			var val any
			if err := json.Unmarshal(v, &val); err != nil {
				return err
			}
			if a.Extra == nil {
				a.Extra = make(map[string]any)
			}
			a.Extra[k] = val
		}
	}
	return nil
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// ParseRequest is the inbound request body for POST /parse-product.
type ParseRequest struct {
	URL          string `json:"url"`
	OpenAIAPIKey string `json:"openaiApiKey"`
}

// ParseTier reports which rung of the completion parsing ladder produced a
// record, so callers and tests can tell a clean parse from a repaired or
// substituted one.
type ParseTier string

const (
	// TierStrict means the completion body parsed as JSON directly.
	TierStrict ParseTier = "strict"
	// TierRepaired means the record was recovered from a {...} span embedded
	// in surrounding prose.
	TierRepaired ParseTier = "repaired"
	// TierFallback means the completion was unusable and the static fallback
	// record was substituted.
	TierFallback ParseTier = "fallback"
)

// CompletionResult pairs a record with the parse tier that produced it.
type CompletionResult struct {
	Record ProductRecord
	Tier   ParseTier
}

const (
	fallbackTitle    = "Unknown Product"
	fallbackCategory = "Uncategorized"
)

// FallbackRecord is the single factory for the "unknown" representation.
// Every code path that cannot produce a confident record returns this shape.
func FallbackRecord(url string) ProductRecord {
	return ProductRecord{
		URL:      url,
		Title:    fallbackTitle,
		Category: fallbackCategory,
		Attributes: Attributes{
			ColorOptions: []string{},
			SizeOptions:  []string{},
		},
		RawPrice: 0,
	}
}
