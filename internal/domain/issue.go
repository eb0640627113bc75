package domain

import "time"

// Issue statuses, in rough lifecycle order.
const (
	IssueReported    = "Reported"
	IssueUnderReview = "Under Review"
	IssueInProgress  = "In Progress"
	IssueResolved    = "Resolved"
)

// IssueCategory maps a report category to the government authority that
// handles it.
type IssueCategory struct {
	Value     string `json:"value"`
	Label     string `json:"label"`
	Authority string `json:"authority"`
}

// IssueCategories lists every category a citizen can file a report under.
var IssueCategories = []IssueCategory{
	{Value: "roads-kenhaa", Label: "Roads - KENHAA", Authority: "Kenya National Highways Authority"},
	{Value: "roads-kura", Label: "Roads - KURA", Authority: "Kenya Urban Roads Authority"},
	{Value: "waste-management", Label: "Waste Management", Authority: "County Government"},
	{Value: "water-sanitation", Label: "Water & Sanitation", Authority: "Water Service Provider"},
	{Value: "mp-office", Label: "MP Office", Authority: "Member of Parliament"},
	{Value: "health-services", Label: "Health Services", Authority: "Ministry of Health"},
	{Value: "education", Label: "Education", Authority: "Ministry of Education"},
	{Value: "security", Label: "Security", Authority: "National Police Service"},
	{Value: "environment", Label: "Environment", Authority: "NEMA"},
	{Value: "corruption", Label: "Corruption", Authority: "Ethics & Anti-Corruption Commission"},
}

type Issue struct {
	IssueID     string    `json:"id" dynamodbav:"issue_id"`
	Title       string    `json:"title" dynamodbav:"title"`
	Description string    `json:"description" dynamodbav:"description"`
	Category    string    `json:"category" dynamodbav:"category"`
	Authority   string    `json:"authority,omitempty" dynamodbav:"authority"`
	Priority    string    `json:"priority" dynamodbav:"priority"`
	Location    string    `json:"location" dynamodbav:"location"`
	Status      string    `json:"status" dynamodbav:"status"`
	PhotoURL    string    `json:"photoUrl,omitempty" dynamodbav:"photo_url"`
	ReportedBy  string    `json:"reportedBy" dynamodbav:"reported_by"`
	ReporterID  string    `json:"-" dynamodbav:"reporter_id"`
	Likes       int       `json:"likes" dynamodbav:"likes"`
	Comments    int       `json:"comments" dynamodbav:"comments"`
	CreatedAt   time.Time `json:"createdAt" dynamodbav:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" dynamodbav:"updated_at"`
}

type CreateIssueRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Priority    string `json:"priority" validate:"omitempty,oneof=low medium high critical"`
	Location    string `json:"location" validate:"required"`
}

type UpdateIssueStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// AdminStats is the dashboard summary for admin views.
type AdminStats struct {
	TotalUsers     int     `json:"totalUsers"`
	ActiveIssues   int     `json:"activeIssues"`
	ResolvedIssues int     `json:"resolvedIssues"`
	PendingReviews int     `json:"pendingReviews"`
	RecentIssues   []Issue `json:"recentIssues"`
}
