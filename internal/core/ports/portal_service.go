package ports

import "github.com/hrive/portal-backend/internal/core/domain"

// PortalService serves the static portal content. Lookups are pure functions
// of the key over tables fixed at startup.
type PortalService interface {
	// Summary returns the dashboard for a role, or domain.ErrUnknownRole
	// when the role has no metrics configured.
	Summary(role string) (*domain.PortalSummary, error)
	// Section returns the items behind a section key. It always succeeds:
	// an unrecognised key yields empty items.
	Section(key string) *domain.SectionContent
}
