package admin

import "github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/sentiment"

// Stat is a headline counter on the overview.
type Stat struct {
	Title  string `json:"title"`
	Value  string `json:"value"`
	Change string `json:"change"`
}

// CrisisAlert is an active alert needing attention.
type CrisisAlert struct {
	Severity string `json:"severity"`
	Title    string `json:"title"`
	Detail   string `json:"detail"`
	Action   string `json:"action"`
}

// Activity is one entry in the recent activity log.
type Activity struct {
	Action string `json:"action"`
	User   string `json:"user"`
	When   string `json:"when"`
}

// DataSource describes an ingestion feed.
type DataSource struct {
	Name       string `json:"name"`
	Status     string `json:"status"`
	LastUpdate string `json:"last_update"`
}

// Active reports whether the source is currently ingesting.
func (d DataSource) Active() bool { return d.Status == "Active" }

// Upload is a recently uploaded dataset.
type Upload struct {
	Name string `json:"name"`
	When string `json:"when"`
}

// Report is a published report.
type Report struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

// Overview is everything the portal dashboard shows.
type Overview struct {
	Stats       []Stat        `json:"stats"`
	Alerts      []CrisisAlert `json:"alerts"`
	Activity    []Activity    `json:"activity"`
	DataSources []DataSource  `json:"data_sources"`
	Uploads     []Upload      `json:"uploads"`
	Reports     []Report      `json:"reports"`
}

// Feed returns the portal overview.
func Feed() Overview {
	return Overview{
		Stats: []Stat{
			{"Total Reports", "124", "+12% from last month"},
			{"Active Crisis Alerts", "3", "+2 from last week"},
			{"User Check-ins", "528", "+48 from yesterday"},
		},
		Alerts: []CrisisAlert{
			{
				Severity: "critical",
				Title:    "Suicide-related terms spike in Southern Province",
				Detail:   "Detected 34 mentions in the past 24 hours, 180% increase from baseline.",
				Action:   "Take Action",
			},
			{
				Severity: "warning",
				Title:    "Anxiety surge in Lusaka among 18-24 age group",
				Detail:   "28% increase in anxiety-related terms over the past week, concentrated in urban areas.",
				Action:   "Monitor",
			},
			{
				Severity: "elevated",
				Title:    "Depression mentions increasing in Eastern Province",
				Detail:   "52% increase in depression-related terms over the past month, primarily in rural communities.",
				Action:   "Monitor",
			},
		},
		Activity: []Activity{
			{"Report Generated", "Dr. Mwanza", "10 minutes ago"},
			{"New Data Uploaded", "Analyst Team", "2 hours ago"},
			{"Crisis Alert Triggered", "System", "5 hours ago"},
			{"User Data Exported", "Admin", "Yesterday"},
			{"System Settings Updated", "System Admin", "2 days ago"},
		},
		DataSources: []DataSource{
			{"Social Media API", "Active", "5 minutes ago"},
			{"Survey Data", "Active", "1 hour ago"},
			{"Helpline Reports", "Active", "3 hours ago"},
			{"Community Forums", "Inactive", "2 days ago"},
			{"Healthcare Data", "Active", "Yesterday"},
		},
		Uploads: []Upload{
			{"Survey Responses May 2025", "Yesterday"},
			{"Twitter Data Analysis", "3 days ago"},
			{"Eastern Province Reports", "1 week ago"},
			{"Youth Mental Health Survey", "2 weeks ago"},
		},
		Reports: []Report{
			{"Weekly Sentiment Report", "Summary of sentiment trends from the past week", "May 15, 2025"},
			{"Monthly Insights", "Detailed analysis of April 2025 mental health data", "May 1, 2025"},
			{"Crisis Response Report", "Review of crisis interventions and outcomes", "April 28, 2025"},
			{"Youth Mental Health", "Focus study on mental health trends among 15-24 age group", "April 15, 2025"},
		},
	}
}

var analyst = sentiment.NewTagger(sentiment.Admin)

// Analyze tags free text with the portal's lexicon.
func Analyze(text string) sentiment.Analysis {
	return analyst.Analyze(text)
}
