package form

const (
	EventRegistration = "event-registration"
	JobApplication    = "job-application"
	Survey            = "survey"
)

var (
	yesNo          = []string{"No", "Yes"}
	positions      = []string{"Developer", "Designer", "Manager"}
	skills         = []string{"JavaScript", "CSS", "Python", "React", "Node.js"}
	surveyTopics   = []string{"Technology", "Health", "Education"}
	languages      = []string{"JavaScript", "Python", "Java", "C#"}
	frequencies    = []string{"Daily", "Weekly", "Monthly", "Rarely"}
	diets          = []string{"Vegetarian", "Vegan", "Non-Vegetarian"}
	qualifications = []string{"High School", "Bachelor's", "Master's", "PhD"}
)

func defaultText(s string) *Value {
	v := Text(s)
	return &v
}

var eventRegistration = register(&Schema{
	Name:  EventRegistration,
	Title: "Event Registration Form",
	Fields: []Field{
		{Name: "name", Label: "Name", Kind: KindText, Rules: []Rule{
			Required("Name is required"),
		}},
		{Name: "email", Label: "Email", Kind: KindEmail, Rules: []Rule{
			Required("Email is required"),
			Email("Email is invalid"),
		}},
		{Name: "age", Label: "Age", Kind: KindNumber, Rules: []Rule{
			Required("Age is required"),
			PositiveNumber("Age must be a number greater than 0"),
		}},
		{Name: "attendingWithGuest", Label: "Are you attending with a guest?", Kind: KindSelect, Options: yesNo, Default: defaultText("No"), Rules: []Rule{
			OneOf(yesNo, "Attending with Guest must be Yes or No"),
		}},
		{Name: "guestName", Label: "Guest Name", Kind: KindText, Rules: []Rule{
			Required("Guest Name is required"),
		}},
	},
	Discriminant: "attendingWithGuest",
	Variants: map[string][]string{
		"Yes": {"guestName"},
	},
})

var jobApplication = register(&Schema{
	Name:  JobApplication,
	Title: "Job Application Form",
	Fields: []Field{
		{Name: "fullName", Label: "Full Name", Kind: KindText, Rules: []Rule{
			Required("Full Name is required"),
		}},
		{Name: "email", Label: "Email", Kind: KindEmail, Rules: []Rule{
			Required("Email is required"),
			Email("Email is invalid"),
		}},
		{Name: "phoneNumber", Label: "Phone Number", Kind: KindText, Rules: []Rule{
			Required("Phone Number is required"),
		}},
		{Name: "position", Label: "Applying for Position", Kind: KindSelect, Options: positions, Rules: []Rule{
			OneOf(positions, "Position is invalid"),
		}},
		{Name: "relevantExperience", Label: "Relevant Experience (years)", Kind: KindNumber, Rules: []Rule{
			PositiveNumber("Relevant Experience is required and must be greater than 0"),
		}},
		{Name: "portfolioURL", Label: "Portfolio URL", Kind: KindText, Rules: []Rule{
			URL("A valid Portfolio URL is required"),
		}},
		{Name: "managementExperience", Label: "Management Experience", Kind: KindTextArea, Rules: []Rule{
			Required("Management Experience is required"),
		}},
		{Name: "additionalSkills", Label: "Additional Skills", Kind: KindMultiSelect, Options: skills, Rules: []Rule{
			NonEmptyList("At least one skill must be selected"),
			OneOf(skills, "Additional Skills contains an unknown skill"),
		}},
		{Name: "preferredInterviewTime", Label: "Preferred Interview Time", Kind: KindDateTime, Rules: []Rule{
			Required("Preferred Interview Time is required"),
			DateTime("Preferred Interview Time is invalid"),
		}},
	},
	Discriminant: "position",
	Variants: map[string][]string{
		"Developer": {"relevantExperience"},
		"Designer":  {"relevantExperience", "portfolioURL"},
		"Manager":   {"managementExperience"},
	},
	ResetErrorsOnChange: true,
})

var survey = register(&Schema{
	Name:  Survey,
	Title: "Survey Form",
	Fields: []Field{
		{Name: "fullName", Label: "Full Name", Kind: KindText, Rules: []Rule{
			Required("Full Name is required"),
		}},
		{Name: "email", Label: "Email", Kind: KindEmail, Rules: []Rule{
			Required("Email is required"),
			Email("Email is invalid"),
		}},
		{Name: "surveyTopic", Label: "Survey Topic", Kind: KindSelect, Options: surveyTopics, Rules: []Rule{
			Required("Survey Topic is required"),
			OneOf(surveyTopics, "Survey Topic is invalid"),
		}},
		{Name: "favoriteLanguage", Label: "Favorite Programming Language", Kind: KindSelect, Options: languages, Rules: []Rule{
			Required("Favorite Programming Language is required"),
		}},
		{Name: "yearsOfExperience", Label: "Years of Experience", Kind: KindNumber, Rules: []Rule{
			PositiveNumber("Years of Experience is required and must be greater than 0"),
		}},
		{Name: "exerciseFrequency", Label: "Exercise Frequency", Kind: KindSelect, Options: frequencies, Rules: []Rule{
			Required("Exercise Frequency is required"),
		}},
		{Name: "dietPreference", Label: "Diet Preference", Kind: KindSelect, Options: diets, Rules: []Rule{
			Required("Diet Preference is required"),
		}},
		{Name: "highestQualification", Label: "Highest Qualification", Kind: KindSelect, Options: qualifications, Rules: []Rule{
			Required("Highest Qualification is required"),
		}},
		{Name: "fieldOfStudy", Label: "Field of Study", Kind: KindText, Rules: []Rule{
			Required("Field of Study is required"),
		}},
		{Name: "feedback", Label: "Feedback", Kind: KindTextArea, Rules: []Rule{
			MinLength(50, "Feedback is required and must be at least 50 characters"),
		}},
	},
	Discriminant: "surveyTopic",
	Variants: map[string][]string{
		"Technology": {"favoriteLanguage", "yearsOfExperience"},
		"Health":     {"exerciseFrequency", "dietPreference"},
		"Education":  {"highestQualification", "fieldOfStudy"},
	},
	ResetErrorsOnChange: true,
})
