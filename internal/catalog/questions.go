package catalog

// Question groups for the single-choice sections.
const (
	GroupPersonality = "personality"
	GroupWorkStyle   = "workstyle"
	GroupGoals       = "goals"
)

// Choice is one radio option of a Question.
type Choice struct {
	Value string
	Label string
}

// Question is a fixed single-choice prompt. Key is the field name the
// answer is stored under.
type Question struct {
	Key     string
	Prompt  string
	Choices []Choice
}

var questionGroups = map[string][]Question{
	GroupPersonality: {
		{Key: "decisionMaking", Prompt: "How do you typically make decisions?", Choices: []Choice{
			{"analytical", "Analytical - I gather data and analyze thoroughly"},
			{"intuitive", "Intuitive - I trust my gut feeling"},
			{"collaborative", "Collaborative - I seek input from others"},
			{"quick", "Quick - I decide fast and adapt as needed"},
		}},
		{Key: "stressHandling", Prompt: "How do you handle stressful situations?", Choices: []Choice{
			{"calm", "Stay calm and methodical"},
			{"energized", "Get energized and focused"},
			{"support", "Seek support from colleagues"},
			{"break", "Take a break to clear my mind"},
		}},
		{Key: "learningStyle", Prompt: "What's your preferred learning style?", Choices: []Choice{
			{"visual", "Visual - I learn best through diagrams and videos"},
			{"reading", "Reading - I prefer documentation and articles"},
			{"handson", "Hands-on - I learn by doing and experimenting"},
			{"discussion", "Discussion - I learn through conversations"},
		}},
		{Key: "riskTolerance", Prompt: "How comfortable are you with taking risks?", Choices: []Choice{
			{"high", "Very comfortable - I embrace calculated risks"},
			{"moderate", "Moderate - I take risks when benefits are clear"},
			{"low", "Prefer stability - I favor proven approaches"},
		}},
		{Key: "leadership", Prompt: "Do you see yourself as a leader?", Choices: []Choice{
			{"natural", "Yes, I naturally take charge"},
			{"situational", "When needed, I can lead effectively"},
			{"contributor", "I prefer being a strong team contributor"},
			{"independent", "I work best independently"},
		}},
		{Key: "detailOrientation", Prompt: "How detail-oriented are you?", Choices: []Choice{
			{"very", "Very detail-oriented - I catch every small issue"},
			{"balanced", "Balanced - I focus on important details"},
			{"bigpicture", "Big-picture focused - I delegate details"},
		}},
	},
	GroupWorkStyle: {
		{Key: "taskPreference", Prompt: "You enjoy tasks that are:", Choices: []Choice{
			{"structured", "Structured and planned"},
			{"exploratory", "Exploratory and experimental"},
			{"mixed", "A mix of both"},
		}},
		{Key: "teamPreference", Prompt: "You prefer working:", Choices: []Choice{
			{"alone", "Independently"},
			{"small-team", "In a small team"},
			{"large-team", "In a large collaborative team"},
			{"flexible", "Flexible - depends on the project"},
		}},
		{Key: "workEnvironment", Prompt: "Preferred work environment:", Choices: []Choice{
			{"office", "Office - I like the structure and social aspects"},
			{"remote", "Remote - I value flexibility and focus"},
			{"hybrid", "Hybrid - Best of both worlds"},
			{"field", "Field work - I like being on the move"},
		}},
		{Key: "workHours", Prompt: "Preferred work hours:", Choices: []Choice{
			{"traditional", "Traditional office hours"},
			{"flexible", "Flexible hours"},
			{"shift", "Shift-based / Night shifts okay"},
			{"project", "Project-based (intense periods, then breaks)"},
		}},
		{Key: "problemApproach", Prompt: "When facing a new problem, you:", Choices: []Choice{
			{"logic", "Focus on logic and data first"},
			{"creative", "Explore creative solutions"},
			{"collaborative", "Brainstorm with others"},
			{"research", "Research existing solutions first"},
		}},
		{Key: "communicationStyle", Prompt: "Your communication style is:", Choices: []Choice{
			{"direct", "Direct and to the point"},
			{"diplomatic", "Diplomatic and considerate"},
			{"detailed", "Detailed and thorough"},
			{"casual", "Casual and friendly"},
		}},
	},
	GroupGoals: {
		{Key: "shortTermGoal", Prompt: "What's your short-term career goal (1-2 years)?", Choices: []Choice{
			{"firstjob", "Land my first job in my field"},
			{"switch", "Switch to a new career path"},
			{"grow", "Grow skills in my current role"},
			{"promotion", "Get a promotion or raise"},
			{"explore", "Explore different options"},
		}},
		{Key: "longTermGoal", Prompt: "What's your long-term career aspiration (5-10 years)?", Choices: []Choice{
			{"expert", "Become a subject matter expert"},
			{"leader", "Lead teams or departments"},
			{"entrepreneur", "Start my own business"},
			{"executive", "Reach executive level"},
			{"balance", "Achieve good work-life balance"},
			{"impact", "Make meaningful social impact"},
		}},
		{Key: "priorityFactor", Prompt: "What's most important to you in a career?", Choices: []Choice{
			{"compensation", "Competitive compensation"},
			{"growth", "Growth and learning opportunities"},
			{"stability", "Job stability and security"},
			{"flexibility", "Flexibility and autonomy"},
			{"purpose", "Meaningful and purposeful work"},
		}},
		{Key: "industryPreference", Prompt: "Which industry/sector interests you most?", Choices: []Choice{
			{"tech", "Technology / Software"},
			{"finance", "Finance / Banking"},
			{"healthcare", "Healthcare / Medical"},
			{"consulting", "Consulting / Professional Services"},
			{"government", "Government / Public Sector"},
			{"startup", "Startups / Entrepreneurship"},
			{"nonprofit", "Non-profit / NGO"},
			{"open", "Open to any industry"},
		}},
		{Key: "growthPreference", Prompt: "How do you prefer to grow professionally?", Choices: []Choice{
			{"vertical", "Vertical growth - climb the ladder in one area"},
			{"horizontal", "Horizontal growth - explore different roles/areas"},
			{"diagonal", "Diagonal growth - mix of both"},
			{"depth", "Deep expertise - become the best at one thing"},
		}},
	},
}

// Questions returns the fixed questions for a single-choice group, in
// display order. Unknown groups return nil.
func Questions(group string) []Question {
	qs, ok := questionGroups[group]
	if !ok {
		return nil
	}
	out := make([]Question, len(qs))
	copy(out, qs)
	return out
}

// QuestionKeys returns the answer keys of a single-choice group.
func QuestionKeys(group string) []string {
	qs := questionGroups[group]
	keys := make([]string, len(qs))
	for i, q := range qs {
		keys[i] = q.Key
	}
	return keys
}

// HasChoice reports whether value is one of the choices for key in group.
func HasChoice(group, key, value string) bool {
	for _, q := range questionGroups[group] {
		if q.Key != key {
			continue
		}
		for _, c := range q.Choices {
			if c.Value == value {
				return true
			}
		}
	}
	return false
}
