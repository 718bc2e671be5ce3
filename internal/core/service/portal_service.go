package service

import (
	"github.com/hrive/portal-backend/internal/core/domain"
)

// PortalService serves the static portal reference data. All three tables
// are built once in the constructor and never mutated afterwards, so the
// service is safe for concurrent use without locking.
type PortalService struct {
	navByPortal map[string][]string
	metrics     map[string][]domain.Metric
	lists       map[string][]string
}

func NewPortalService() *PortalService {
	return &PortalService{
		navByPortal: map[string][]string{
			domain.RoleHR:       {"HR Dashboard", "Holidays", "Events", "Activities", "HR Social", "Employees", "Accounts", "Payroll"},
			domain.RoleAdmin:    {"Admin Dashboard", "Systems", "Policies", "Audit", "Billing", "Security"},
			domain.RoleManager:  {"Manager Dashboard", "Projects", "Squads", "Risks", "Approvals"},
			domain.RoleEmployee: {"My Dashboard", "Tasks", "Approvals", "Payslips", "Time Off", "Growth"},
		},
		metrics: map[string][]domain.Metric{
			domain.RoleAdmin: {
				{Label: "Systems Online", Value: "16"},
				{Label: "Teams", Value: "42"},
				{Label: "Policies", Value: "18"},
				{Label: "Avg. Response", Value: "2.4h"},
			},
			domain.RoleHR: {
				{Label: "New Employee", Value: "22"},
				{Label: "Total Employee", Value: "425"},
				{Label: "Total Salary", Value: "$2.8M"},
				{Label: "Avg. Salary", Value: "$1,250"},
			},
			domain.RoleManager: {
				{Label: "Projects Active", Value: "12"},
				{Label: "Squads", Value: "8"},
				{Label: "Risks", Value: "3"},
				{Label: "Hiring Needs", Value: "4"},
			},
			domain.RoleEmployee: {
				{Label: "Open Tasks", Value: "9"},
				{Label: "Approvals Pending", Value: "3"},
				{Label: "Trainings", Value: "2"},
				{Label: "Leave Balance", Value: "14d"},
			},
		},
		lists: map[string][]string{
			"holidays":   {"New Year", "Spring Break", "Independence Day"},
			"events":     {"Town Hall", "Tech Talk", "Wellness Friday"},
			"activities": {"Hackathon", "Volunteer Day", "Workshop"},
			"social":     {"Coffee Chat", "Team Lunch", "Offsite"},
			"employees":  {"Jessica Doe", "Alex Kim", "Samir Khan"},
			"accounts":   {"Payroll", "Benefits", "Reimbursements"},
			"payroll":    {"Cycle Jan", "Cycle Feb", "Cycle Mar"},
			"systems":    {"HRIS", "OKR", "Payroll"},
			"policies":   {"Leave Policy", "Expense Policy", "Security Policy"},
			"audit":      {"Q1 Audit", "Q2 Audit"},
			"billing":    {"Invoice #1021", "Invoice #1022"},
			"security":   {"MFA Rollout", "SSO Integration"},
			"projects":   {"Apollo", "Zephyr", "Horizon"},
			"squads":     {"Falcon Squad", "Nova Squad"},
			"risks":      {"Resource Gap", "Scope Creep"},
			"approvals":  {"Purchase Request", "Leave Request"},
			"tasks":      {"Submit status", "Update Jira", "Review PRs"},
			"payslips":   {"Jan Payslip", "Feb Payslip"},
			"timeoff":    {"Remaining: 14 days"},
			"growth":     {"Learning Budget", "Career Path"},
		},
	}
}

// Summary returns the dashboard data for a role. The metrics table decides
// whether a role exists; a known role with no navigation configured gets an
// empty nav, which is valid and not an error.
func (s *PortalService) Summary(role string) (*domain.PortalSummary, error) {
	metrics, ok := s.metrics[role]
	if !ok {
		return nil, domain.ErrUnknownRole
	}
	nav := s.navByPortal[role]
	if nav == nil {
		nav = []string{}
	}
	return &domain.PortalSummary{Role: role, Nav: nav, Metrics: metrics}, nil
}

// Section returns the items behind a section key. Unknown keys deliberately
// yield an empty list instead of an error; clients render an empty section
// rather than handling a 404. This is looser than Summary's strict unknown
// role handling and is kept that way on purpose.
func (s *PortalService) Section(key string) *domain.SectionContent {
	items := s.lists[key]
	if items == nil {
		items = []string{}
	}
	return &domain.SectionContent{Section: key, Items: items}
}
