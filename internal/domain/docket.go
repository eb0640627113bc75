package domain

// Docket is a published government opportunity or report: tenders, public
// consultations, NGO partnership calls, transparency publications.
type Docket struct {
	DocketID      string   `json:"id" dynamodbav:"docket_id"`
	Category      string   `json:"category" dynamodbav:"category"`
	Title         string   `json:"title" dynamodbav:"title"`
	Organization  string   `json:"organization" dynamodbav:"organization"`
	Description   string   `json:"description" dynamodbav:"description"`
	Budget        string   `json:"budget" dynamodbav:"budget"`
	Deadline      string   `json:"deadline" dynamodbav:"deadline"`
	Location      string   `json:"location" dynamodbav:"location"`
	Status        string   `json:"status" dynamodbav:"status"`
	Applicants    int      `json:"applicants" dynamodbav:"applicants"`
	PublishedDate string   `json:"publishedDate" dynamodbav:"published_date"`
	ContactEmail  string   `json:"contactEmail" dynamodbav:"contact_email"`
	Requirements  []string `json:"requirements" dynamodbav:"requirements"`
	Documents     []string `json:"documents" dynamodbav:"documents"`
	Priority      string   `json:"priority" dynamodbav:"priority"`
	Transparency  int      `json:"transparency" dynamodbav:"transparency"`
}

// DocketCategories lists the browsable docket groupings.
var DocketCategories = []string{
	"Government Tenders",
	"Anti-Corruption",
	"Public Procurement",
	"Development Projects",
	"NGO Opportunities",
	"Public Consultations",
	"Policy Updates",
	"Transparency Reports",
}
