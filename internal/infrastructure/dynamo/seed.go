package dynamo

import (
	"context"
	"log/slog"
	"time"

	"github.com/fixithub/universe/internal/domain"
)

// Seed populates empty issue/docket tables with the starter records so a
// fresh environment has something to browse. Tables that already hold data
// are left alone.
func Seed(ctx context.Context, issues *IssueRepo, dockets *DocketRepo) {
	seedIssues(ctx, issues)
	seedDockets(ctx, dockets)
}

func seedIssues(ctx context.Context, repo *IssueRepo) {
	existing, err := repo.Scan(ctx)
	if err != nil {
		slog.Warn("could not check issues table for seeding", "err", err)
		return
	}
	if len(existing) > 0 {
		return
	}
	for _, i := range starterIssues() {
		issue := i
		if err := repo.Put(ctx, &issue); err != nil {
			slog.Warn("could not seed issue", "issue_id", issue.IssueID, "err", err)
		}
	}
	slog.Info("seeded issues table", "count", len(starterIssues()))
}

func seedDockets(ctx context.Context, repo *DocketRepo) {
	existing, err := repo.Scan(ctx)
	if err != nil {
		slog.Warn("could not check dockets table for seeding", "err", err)
		return
	}
	if len(existing) > 0 {
		return
	}
	for _, d := range starterDockets() {
		docket := d
		if err := repo.Put(ctx, &docket); err != nil {
			slog.Warn("could not seed docket", "docket_id", docket.DocketID, "err", err)
		}
	}
	slog.Info("seeded dockets table", "count", len(starterDockets()))
}

func starterIssues() []domain.Issue {
	now := time.Now().UTC()
	return []domain.Issue{
		{
			IssueID:     "01J0SEEDISSUE0000000000001",
			Title:       "Broken streetlight on Main Street",
			Description: "The streetlight has been out for 3 days, making it dangerous for pedestrians at night.",
			Category:    "roads-kura",
			Authority:   "Kenya Urban Roads Authority",
			Priority:    "high",
			Location:    "Main Street, Downtown",
			Status:      domain.IssueInProgress,
			ReportedBy:  "John Doe",
			Likes:       15,
			Comments:    3,
			CreatedAt:   now.Add(-2 * time.Hour),
			UpdatedAt:   now.Add(-2 * time.Hour),
		},
		{
			IssueID:     "01J0SEEDISSUE0000000000002",
			Title:       "Pothole causing traffic issues",
			Description: "Large pothole on Highway 101 is causing vehicles to swerve dangerously.",
			Category:    "roads-kenhaa",
			Authority:   "Kenya National Highways Authority",
			Priority:    "critical",
			Location:    "Highway 101, Mile Marker 15",
			Status:      domain.IssueReported,
			ReportedBy:  "Jane Smith",
			Likes:       28,
			Comments:    7,
			CreatedAt:   now.Add(-5 * time.Hour),
			UpdatedAt:   now.Add(-5 * time.Hour),
		},
		{
			IssueID:     "01J0SEEDISSUE0000000000003",
			Title:       "Illegal dumping in park",
			Description: "Someone has dumped construction waste in Central Park near the playground.",
			Category:    "environment",
			Authority:   "NEMA",
			Priority:    "medium",
			Location:    "Central Park, Playground Area",
			Status:      domain.IssueUnderReview,
			ReportedBy:  "Mike Johnson",
			Likes:       12,
			Comments:    5,
			CreatedAt:   now.Add(-24 * time.Hour),
			UpdatedAt:   now.Add(-24 * time.Hour),
		},
		{
			IssueID:     "01J0SEEDISSUE0000000000004",
			Title:       "Water leak flooding sidewalk",
			Description: "Burst water pipe is flooding the sidewalk and creating a safety hazard.",
			Category:    "water-sanitation",
			Authority:   "Water Service Provider",
			Priority:    "high",
			Location:    "Oak Avenue, Block 200",
			Status:      domain.IssueResolved,
			ReportedBy:  "Sarah Wilson",
			Likes:       22,
			Comments:    8,
			CreatedAt:   now.Add(-72 * time.Hour),
			UpdatedAt:   now.Add(-72 * time.Hour),
		},
	}
}

func starterDockets() []domain.Docket {
	return []domain.Docket{
		{
			DocketID:      "01J0SEEDDOCKET000000000001",
			Category:      "Government Tenders",
			Title:         "Construction of Nairobi-Nakuru Highway Phase 2",
			Organization:  "Kenya National Highways Authority (KENHAA)",
			Description:   "Tender for the construction of 120km dual carriageway from Nairobi to Nakuru with modern infrastructure including bridges, interchanges, and service roads.",
			Budget:        "KSh 45.2 Billion",
			Deadline:      "2024-02-15",
			Location:      "Nairobi - Nakuru",
			Status:        "Open",
			Applicants:    23,
			PublishedDate: "2024-01-10",
			ContactEmail:  "tenders@kenha.co.ke",
			Requirements:  []string{"Valid contractor license", "Minimum 10 years experience", "Financial capacity proof"},
			Documents:     []string{"Tender Document.pdf", "Technical Specifications.pdf", "Terms & Conditions.pdf"},
			Priority:      "High",
			Transparency:  95,
		},
		{
			DocketID:      "01J0SEEDDOCKET000000000002",
			Category:      "Anti-Corruption",
			Title:         "Report Corruption in Public Procurement",
			Organization:  "Ethics and Anti-Corruption Commission (EACC)",
			Description:   "Anonymous reporting platform for corruption cases in government procurement processes. Help us build a transparent Kenya by reporting suspicious activities.",
			Budget:        "Confidential",
			Deadline:      "Ongoing",
			Location:      "Nationwide",
			Status:        "Active",
			Applicants:    156,
			PublishedDate: "2024-01-01",
			ContactEmail:  "report@eacc.go.ke",
			Requirements:  []string{"Anonymous reporting available", "Evidence documentation", "Witness protection assured"},
			Documents:     []string{"Reporting Guidelines.pdf", "Whistleblower Protection.pdf"},
			Priority:      "Critical",
			Transparency:  100,
		},
		{
			DocketID:      "01J0SEEDDOCKET000000000003",
			Category:      "Development Projects",
			Title:         "Affordable Housing Initiative - Kibera Upgrade",
			Organization:  "Ministry of Housing and Urban Development",
			Description:   "Comprehensive slum upgrading project in Kibera including construction of 5,000 affordable housing units, infrastructure development, and community facilities.",
			Budget:        "KSh 12.8 Billion",
			Deadline:      "2024-03-01",
			Location:      "Kibera, Nairobi",
			Status:        "Open",
			Applicants:    45,
			PublishedDate: "2024-01-08",
			ContactEmail:  "housing@government.go.ke",
			Requirements:  []string{"Social impact assessment", "Community engagement plan", "Environmental compliance"},
			Documents:     []string{"Project Proposal.pdf", "Community Guidelines.pdf", "Environmental Impact.pdf"},
			Priority:      "High",
			Transparency:  88,
		},
		{
			DocketID:      "01J0SEEDDOCKET000000000004",
			Category:      "NGO Opportunities",
			Title:         "Youth Empowerment and Skills Development Program",
			Organization:  "Kenya Youth Development Agency",
			Description:   "Partnership opportunities for NGOs to implement youth skills training programs in technology, agriculture, and entrepreneurship across 47 counties.",
			Budget:        "KSh 2.3 Billion",
			Deadline:      "2024-02-20",
			Location:      "All 47 Counties",
			Status:        "Open",
			Applicants:    78,
			PublishedDate: "2024-01-12",
			ContactEmail:  "partnerships@youth.go.ke",
			Requirements:  []string{"Registered NGO status", "Youth program experience", "County-level presence"},
			Documents:     []string{"Partnership Framework.pdf", "Application Form.pdf", "Evaluation Criteria.pdf"},
			Priority:      "Medium",
			Transparency:  92,
		},
		{
			DocketID:      "01J0SEEDDOCKET000000000005",
			Category:      "Public Consultations",
			Title:         "National Digital Identity System Public Participation",
			Organization:  "Ministry of ICT and Digital Economy",
			Description:   "Public consultation on the implementation of a comprehensive digital identity system. Your input will shape Kenya's digital future and ensure privacy protection.",
			Budget:        "KSh 8.5 Billion",
			Deadline:      "2024-01-30",
			Location:      "Virtual & Regional Centers",
			Status:        "Open",
			Applicants:    234,
			PublishedDate: "2024-01-05",
			ContactEmail:  "digitalid@ict.go.ke",
			Requirements:  []string{"Kenyan citizenship", "Valid ID", "Online registration"},
			Documents:     []string{"Consultation Framework.pdf", "Privacy Policy.pdf", "Implementation Plan.pdf"},
			Priority:      "High",
			Transparency:  96,
		},
		{
			DocketID:      "01J0SEEDDOCKET000000000006",
			Category:      "Transparency Reports",
			Title:         "County Government Budget Allocation Transparency Report 2024",
			Organization:  "Controller of Budget",
			Description:   "Comprehensive report on budget allocation and utilization across all 47 county governments. Track how public funds are being used for development projects.",
			Budget:        "KSh 370 Billion (Total County Allocation)",
			Deadline:      "Quarterly Updates",
			Location:      "All Counties",
			Status:        "Published",
			Applicants:    0,
			PublishedDate: "2024-01-15",
			ContactEmail:  "transparency@cob.go.ke",
			Requirements:  []string{"Public access", "No registration required"},
			Documents:     []string{"Q4 2023 Report.pdf", "Budget Analysis.pdf", "Performance Indicators.pdf"},
			Priority:      "Medium",
			Transparency:  100,
		},
	}
}
