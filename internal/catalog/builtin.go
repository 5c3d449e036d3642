package catalog

var builtinInterests = map[string][]Option{
	"Computer Science": {
		{ID: "building", Label: "Building Applications", Icon: "🏗️"},
		{ID: "algorithms", Label: "Solving Algorithms", Icon: "🧮"},
		{ID: "data", Label: "Working with Data", Icon: "📊"},
		{ID: "systems", Label: "Designing Systems", Icon: "⚙️"},
		{ID: "research", Label: "Research & Innovation", Icon: "🔬"},
		{ID: "security", Label: "Security & Privacy", Icon: "🔐"},
	},
	"Software Engineering": {
		{ID: "frontend", Label: "Frontend Engineering", Icon: "🎨"},
		{ID: "backend", Label: "Backend Systems", Icon: "🧠"},
		{ID: "testing", Label: "Testing & QA", Icon: "🧪"},
		{ID: "devops", Label: "DevOps Automation", Icon: "⚙️"},
		{ID: "architecture", Label: "System Architecture", Icon: "🏗️"},
		{ID: "security", Label: "Secure Development", Icon: "🔐"},
	},
	"Information Technology": {
		{ID: "support", Label: "IT Support", Icon: "🛠️"},
		{ID: "network", Label: "Networking", Icon: "🌐"},
		{ID: "infra", Label: "Infrastructure", Icon: "🏢"},
		{ID: "security", Label: "Security", Icon: "🔐"},
		{ID: "cloud", Label: "Cloud Systems", Icon: "☁️"},
		{ID: "automation", Label: "Automation", Icon: "🤖"},
	},
	"Data Science": {
		{ID: "analysis", Label: "Data Analysis", Icon: "📈"},
		{ID: "ml", Label: "Machine Learning", Icon: "🤖"},
		{ID: "viz", Label: "Data Visualization", Icon: "📊"},
		{ID: "research", Label: "Research", Icon: "🔬"},
		{ID: "engineering", Label: "Data Engineering", Icon: "🏗️"},
		{ID: "ai", Label: "AI Systems", Icon: "🧠"},
	},
	"Accounting": {
		{ID: "reporting", Label: "Financial Reporting", Icon: "🧾"},
		{ID: "tax", Label: "Taxation", Icon: "📑"},
		{ID: "audit", Label: "Auditing", Icon: "🔎"},
		{ID: "forensic", Label: "Forensic Accounting", Icon: "🕵️"},
		{ID: "compliance", Label: "Compliance", Icon: "✅"},
		{ID: "analysis", Label: "Financial Analysis", Icon: "📊"},
	},
	"Finance": {
		{ID: "invest", Label: "Investment Analysis", Icon: "📈"},
		{ID: "risk", Label: "Risk Management", Icon: "⚠️"},
		{ID: "banking", Label: "Banking", Icon: "🏦"},
		{ID: "markets", Label: "Capital Markets", Icon: "💹"},
		{ID: "planning", Label: "Financial Planning", Icon: "🧭"},
		{ID: "fintech", Label: "FinTech", Icon: "💳"},
	},
	"Business Administration": {
		{ID: "strategy", Label: "Strategy", Icon: "♟️"},
		{ID: "ops", Label: "Operations", Icon: "⚙️"},
		{ID: "marketing", Label: "Marketing", Icon: "📣"},
		{ID: "people", Label: "People Management", Icon: "👥"},
		{ID: "product", Label: "Product", Icon: "📦"},
		{ID: "analytics", Label: "Business Analytics", Icon: "📊"},
	},
	"Marketing": {
		{ID: "brand", Label: "Brand Strategy", Icon: "🎯"},
		{ID: "digital", Label: "Digital Marketing", Icon: "💻"},
		{ID: "content", Label: "Content", Icon: "✍️"},
		{ID: "growth", Label: "Growth", Icon: "🚀"},
		{ID: "research", Label: "Market Research", Icon: "🔎"},
		{ID: "social", Label: "Social Media", Icon: "📱"},
	},
}

var defaultInterests = []Option{
	{ID: "problem", Label: "Problem Solving", Icon: "🧩"},
	{ID: "research", Label: "Research & Innovation", Icon: "🔬"},
	{ID: "analysis", Label: "Data Analysis", Icon: "📊"},
	{ID: "leadership", Label: "Leadership", Icon: "🧭"},
	{ID: "collaboration", Label: "Collaboration", Icon: "🤝"},
	{ID: "communication", Label: "Communication", Icon: "🗣️"},
}

var builtinDomains = map[string][]Option{
	"Computer Science": {
		{ID: "web", Label: "Web Development", Color: "primary"},
		{ID: "mobile", Label: "Mobile Apps", Color: "accent"},
		{ID: "ai", Label: "Artificial Intelligence", Color: "warning"},
		{ID: "security", Label: "Cyber Security", Color: "destructive"},
		{ID: "games", Label: "Game Development", Color: "success"},
		{ID: "cloud", Label: "Cloud & DevOps", Color: "chart-5"},
	},
	"Software Engineering": {
		{ID: "frontend", Label: "Frontend", Color: "primary"},
		{ID: "backend", Label: "Backend", Color: "accent"},
		{ID: "devops", Label: "DevOps", Color: "chart-5"},
		{ID: "mobile", Label: "Mobile", Color: "warning"},
		{ID: "qa", Label: "QA & Testing", Color: "success"},
		{ID: "security", Label: "Secure Systems", Color: "destructive"},
	},
	"Information Technology": {
		{ID: "infra", Label: "Infrastructure", Color: "primary"},
		{ID: "network", Label: "Networking", Color: "accent"},
		{ID: "cloud", Label: "Cloud", Color: "chart-5"},
		{ID: "security", Label: "Security", Color: "destructive"},
		{ID: "support", Label: "IT Support", Color: "success"},
		{ID: "automation", Label: "Automation", Color: "warning"},
	},
	"Data Science": {
		{ID: "analysis", Label: "Analytics", Color: "primary"},
		{ID: "ml", Label: "Machine Learning", Color: "accent"},
		{ID: "engineering", Label: "Data Engineering", Color: "warning"},
		{ID: "ai", Label: "AI Products", Color: "chart-5"},
		{ID: "research", Label: "Research", Color: "success"},
		{ID: "viz", Label: "Visualization", Color: "destructive"},
	},
	"Accounting": {
		{ID: "audit", Label: "Audit & Assurance", Color: "primary"},
		{ID: "tax", Label: "Tax", Color: "accent"},
		{ID: "reporting", Label: "Reporting", Color: "warning"},
		{ID: "forensic", Label: "Forensic", Color: "destructive"},
		{ID: "compliance", Label: "Compliance", Color: "success"},
		{ID: "analysis", Label: "Financial Analysis", Color: "chart-5"},
	},
	"Finance": {
		{ID: "banking", Label: "Banking", Color: "primary"},
		{ID: "invest", Label: "Investments", Color: "accent"},
		{ID: "risk", Label: "Risk", Color: "destructive"},
		{ID: "planning", Label: "Financial Planning", Color: "success"},
		{ID: "markets", Label: "Capital Markets", Color: "warning"},
		{ID: "fintech", Label: "FinTech", Color: "chart-5"},
	},
	"Business Administration": {
		{ID: "strategy", Label: "Strategy", Color: "primary"},
		{ID: "ops", Label: "Operations", Color: "accent"},
		{ID: "marketing", Label: "Marketing", Color: "warning"},
		{ID: "product", Label: "Product", Color: "success"},
		{ID: "people", Label: "People Ops", Color: "destructive"},
		{ID: "analytics", Label: "Business Analytics", Color: "chart-5"},
	},
	"Marketing": {
		{ID: "brand", Label: "Brand", Color: "primary"},
		{ID: "digital", Label: "Digital", Color: "accent"},
		{ID: "content", Label: "Content", Color: "warning"},
		{ID: "growth", Label: "Growth", Color: "success"},
		{ID: "research", Label: "Research", Color: "destructive"},
		{ID: "social", Label: "Social", Color: "chart-5"},
	},
}

var defaultDomains = []Option{
	{ID: "strategy", Label: "Strategy", Color: "primary"},
	{ID: "analysis", Label: "Analysis", Color: "accent"},
	{ID: "operations", Label: "Operations", Color: "warning"},
	{ID: "research", Label: "Research", Color: "success"},
	{ID: "communication", Label: "Communication", Color: "chart-5"},
	{ID: "leadership", Label: "Leadership", Color: "destructive"},
}

var builtinSkills = map[string][]string{
	"Computer Science": {
		"Programming", "Data Structures", "Algorithms", "Problem Solving",
		"Database Management", "Software Design", "Critical Thinking", "Communication",
	},
	"Software Engineering": {
		"Software Development", "Version Control", "Testing", "System Design",
		"Code Review", "Debugging", "Documentation", "Agile/Scrum",
	},
	"Information Technology": {
		"Network Administration", "System Administration", "Troubleshooting",
		"Security Practices", "Cloud Services", "Technical Support", "Documentation", "Communication",
	},
	"Data Science": {
		"Statistical Analysis", "Data Visualization", "Machine Learning Basics",
		"Data Cleaning", "Python/R", "SQL", "Critical Thinking", "Communication",
	},
	"Accounting": {
		"Financial Reporting", "Tax Preparation", "Bookkeeping", "Compliance",
		"Excel/Spreadsheets", "Attention to Detail", "Organization", "Communication",
	},
	"Finance": {
		"Financial Analysis", "Risk Assessment", "Investment Analysis", "Financial Modeling",
		"Excel/Spreadsheets", "Market Research", "Presentation", "Critical Thinking",
	},
	"Business Administration": {
		"Project Management", "Strategic Planning", "Leadership", "Problem Solving",
		"Communication", "Presentation", "Analytical Thinking", "Teamwork",
	},
	"Marketing": {
		"Market Research", "Content Creation", "Social Media", "Analytics",
		"Communication", "Creativity", "Strategic Thinking", "Presentation",
	},
	"Electrical Engineering": {
		"Circuit Analysis", "Electronics", "Power Systems", "Control Systems",
		"Problem Solving", "Technical Drawing", "Mathematics", "Communication",
	},
	"Mechanical Engineering": {
		"CAD/CAM", "Thermodynamics", "Material Science", "Manufacturing Processes",
		"Problem Solving", "Technical Drawing", "Mathematics", "Project Management",
	},
	"Civil Engineering": {
		"Structural Analysis", "Construction Management", "Surveying", "AutoCAD",
		"Project Management", "Technical Writing", "Mathematics", "Communication",
	},
	"Psychology": {
		"Research Methods", "Statistical Analysis", "Counseling Skills", "Assessment",
		"Communication", "Empathy", "Critical Thinking", "Documentation",
	},
	"Economics": {
		"Economic Analysis", "Statistical Methods", "Data Analysis", "Research",
		"Excel/Spreadsheets", "Writing", "Critical Thinking", "Presentation",
	},
	"Human Resources": {
		"Recruitment", "Employee Relations", "Compliance", "Training & Development",
		"Communication", "Organization", "Conflict Resolution", "HRIS Systems",
	},
}

var defaultSkills = []string{
	"Research", "Analysis", "Communication", "Problem Solving",
	"Organization", "Teamwork", "Critical Thinking", "Time Management",
}
