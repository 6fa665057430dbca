package assistant

import (
	"encoding/json"
	"strings"
)

// FilterResult is either a parsed filter object or, when the model did not
// emit valid JSON, the raw reply text. Callers must handle both shapes.
type FilterResult struct {
	Parsed map[string]any
	Raw    string
}

func (f FilterResult) IsParsed() bool { return f.Parsed != nil }

func (f FilterResult) MarshalJSON() ([]byte, error) {
	if f.Parsed != nil {
		return json.Marshal(f.Parsed)
	}
	return json.Marshal(f.Raw)
}

// ParseSmartFilter never fails: non-object output falls back to the raw text.
// A single surrounding ``` fence (optionally tagged json) is tolerated.
func ParseSmartFilter(reply string) FilterResult {
	var obj map[string]any
	if err := json.Unmarshal([]byte(stripFence(reply)), &obj); err != nil || obj == nil {
		return FilterResult{Raw: reply}
	}
	return FilterResult{Parsed: obj}
}

func stripFence(s string) string {
	t := strings.TrimSpace(s)
	if !strings.HasPrefix(t, "```") || !strings.HasSuffix(t, "```") || len(t) < 6 {
		return t
	}
	t = strings.TrimSuffix(strings.TrimPrefix(t, "```"), "```")
	if nl := strings.IndexByte(t, '\n'); nl >= 0 && !strings.ContainsAny(t[:nl], "{[") {
		t = t[nl+1:]
	}
	return strings.TrimSpace(t)
}
