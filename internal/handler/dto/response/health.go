package response

import "time"

const ServiceName = "SmartStay AI Backend"

type HealthResponse struct {
	OK               bool      `json:"ok"`
	Service          string    `json:"service"`
	Time             time.Time `json:"time"`
	GeminiConfigured bool      `json:"geminiConfigured"`
	LiteAPIBase      string    `json:"liteapiBase"`
}

// PresentOrMissing reports whether a setting is present without echoing it.
func PresentOrMissing(v string) string {
	if v == "" {
		return "missing"
	}
	return "set"
}
