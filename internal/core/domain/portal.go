package domain

import "errors"

var ErrUnknownRole = errors.New("unknown role")

// Metric is a single labelled figure on a portal dashboard.
type Metric struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// PortalSummary is the dashboard view for one role: its navigation entries
// and headline metrics. Nav may be empty for a role with no configured
// navigation; Metrics is never empty for a known role.
type PortalSummary struct {
	Role    string   `json:"role"`
	Nav     []string `json:"nav"`
	Metrics []Metric `json:"metrics"`
}

// SectionContent is the item list behind a named portal section.
type SectionContent struct {
	Section string   `json:"section"`
	Items   []string `json:"items"`
}
