// Package resources holds the static directory of mental health service
// providers and the search used to browse it.
package resources

// Provider types that get their own tab.
const (
	TypeHospital = "Hospital"
	TypeNGO      = "NGO"
)

// Resource is one provider in the directory.
type Resource struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Location    string   `json:"location"`
	Contact     string   `json:"contact"`
	Description string   `json:"description"`
	Services    []string `json:"services"`
	Website     string   `json:"website,omitempty"`
}

// Catalog returns a fresh copy of the built-in provider list.
func Catalog() []Resource {
	out := make([]Resource, len(catalog))
	for i, r := range catalog {
		r.Services = append([]string(nil), r.Services...)
		out[i] = r
	}
	return out
}

var catalog = []Resource{
	{
		ID:          "1",
		Name:        "Chainama Hills Hospital",
		Type:        TypeHospital,
		Location:    "Lusaka",
		Contact:     "+260 211 123456",
		Description: "Main psychiatric hospital offering comprehensive mental health services.",
		Services:    []string{"Psychiatric care", "Inpatient services", "Outpatient clinic", "Child & adolescent services"},
		Website:     "https://www.chainamahills.zm",
	},
	{
		ID:          "2",
		Name:        "Mental Health Zambia",
		Type:        TypeNGO,
		Location:    "Lusaka",
		Contact:     "+260 977 789012",
		Description: "Non-profit organization providing community mental health support.",
		Services:    []string{"Counseling", "Support groups", "Mental health awareness", "Training programs"},
		Website:     "https://www.mentalhealthzambia.org",
	},
	{
		ID:          "3",
		Name:        "University Teaching Hospital - Mental Health Department",
		Type:        TypeHospital,
		Location:    "Lusaka",
		Contact:     "+260 211 234567",
		Description: "Mental health department within Zambia's largest hospital.",
		Services:    []string{"Psychiatric assessment", "Crisis intervention", "Medication management"},
	},
	{
		ID:          "4",
		Name:        "Copperbelt Mental Wellness Center",
		Type:        "Clinic",
		Location:    "Kitwe",
		Contact:     "+260 212 345678",
		Description: "Specialized clinic serving the Copperbelt region.",
		Services:    []string{"Individual therapy", "Group therapy", "Addiction services", "Family counseling"},
	},
	{
		ID:          "5",
		Name:        "Youth Alive Zambia",
		Type:        TypeNGO,
		Location:    "Multiple locations",
		Contact:     "+260 966 456789",
		Description: "Youth-focused organization with mental health programming.",
		Services:    []string{"Youth counseling", "Peer support", "Life skills", "Mental health education"},
		Website:     "https://www.youthalive.org.zm",
	},
	{
		ID:          "6",
		Name:        "Mindful Zambia",
		Type:        "Private Practice",
		Location:    "Lusaka",
		Contact:     "+260 955 567890",
		Description: "Private mental health practice offering evidence-based treatments.",
		Services:    []string{"Cognitive Behavioral Therapy", "Mindfulness training", "Trauma therapy", "Online counseling"},
		Website:     "https://www.mindfulzambia.com",
	},
	{
		ID:          "7",
		Name:        "Rural Mental Health Initiative",
		Type:        TypeNGO,
		Location:    "Eastern Province",
		Contact:     "+260 977 678901",
		Description: "Organization focused on bringing mental health services to rural communities.",
		Services:    []string{"Mobile clinics", "Community health workers", "Basic mental health training", "Teletherapy"},
	},
}
