// Package synth builds a complete resume from form input without calling any
// external service. Every function in this package is pure: the same input
// and catalog always produce the same resume.
package synth

// Candidate is a skill that may be suggested for a role, with its a-priori
// relevance in (0,1].
type Candidate struct {
	Name      string
	Relevance float64
}

// RoleSkills binds a lowercase job-title fragment to its candidate skills.
type RoleSkills struct {
	Key    string
	Skills []Candidate
}

// Catalog holds the static lookup data used by the synthesizer. It is never
// mutated after construction, so one Catalog can back any number of
// concurrent syntheses.
type Catalog struct {
	roles          []RoleSkills
	generic        []Candidate
	softKeywords   []string
	toolKeywords   []string
	actionVerbs    []string
	technicalTrack []string
	leaderTrack    []string
	genericTrack   []string
	filler         []string
	defaultSoft    []string
}

// DefaultCatalog returns the built-in reference tables.
func DefaultCatalog() *Catalog {
	return &Catalog{
		// Order matters: a title matching several keys accumulates candidates
		// in this order before the stable relevance sort.
		roles: []RoleSkills{
			{Key: "software engineer", Skills: []Candidate{
				{"System Design", 0.9},
				{"GraphQL", 0.85},
				{"Microservices", 0.88},
				{"CI/CD", 0.82},
				{"Cloud Architecture", 0.87},
				{"Docker & Kubernetes", 0.86},
				{"API Development", 0.89},
			}},
			{Key: "developer", Skills: []Candidate{
				{"Git Workflow", 0.85},
				{"REST APIs", 0.88},
				{"Testing (Jest/Cypress)", 0.83},
				{"Agile Methodologies", 0.8},
				{"Code Review", 0.82},
			}},
			{Key: "data scientist", Skills: []Candidate{
				{"Machine Learning", 0.92},
				{"Statistical Analysis", 0.9},
				{"Data Visualization", 0.85},
				{"Python/R", 0.93},
				{"TensorFlow/PyTorch", 0.88},
				{"SQL & NoSQL", 0.87},
			}},
			{Key: "product manager", Skills: []Candidate{
				{"Roadmap Planning", 0.88},
				{"Stakeholder Management", 0.85},
				{"Data-Driven Decisions", 0.83},
				{"User Research", 0.86},
				{"A/B Testing", 0.84},
			}},
			{Key: "designer", Skills: []Candidate{
				{"Figma/Sketch", 0.9},
				{"User Research", 0.87},
				{"Prototyping", 0.85},
				{"Design Systems", 0.84},
				{"Responsive Design", 0.86},
			}},
			{Key: "marketing manager", Skills: []Candidate{
				{"Digital Marketing", 0.9},
				{"SEO/SEM", 0.87},
				{"Content Strategy", 0.85},
				{"Analytics", 0.88},
				{"Social Media Marketing", 0.84},
			}},
			{Key: "analyst", Skills: []Candidate{
				{"Excel/Spreadsheets", 0.9},
				{"SQL", 0.88},
				{"Data Modeling", 0.85},
				{"Business Intelligence", 0.87},
				{"Tableau/Power BI", 0.86},
			}},
		},
		generic: []Candidate{
			{"Communication", 0.85},
			{"Problem Solving", 0.88},
			{"Project Management", 0.82},
			{"Leadership", 0.8},
			{"Collaboration", 0.83},
		},
		softKeywords: []string{
			"communication", "leadership", "management", "collaboration", "problem",
			"teamwork", "critical thinking", "adaptability", "time management",
		},
		toolKeywords: []string{
			"office", "excel", "powerpoint", "jira", "slack", "figma", "photoshop",
			"salesforce", "hubspot", "tableau",
		},
		actionVerbs: []string{
			"Led", "Managed", "Developed", "Implemented", "Designed", "Created", "Built", "Achieved",
		},
		technicalTrack: []string{
			"Architected and deployed scalable solutions that improved system performance by 40%",
			"Collaborated with cross-functional teams to deliver critical features ahead of schedule",
			"Mentored junior team members and established best practices for code quality",
		},
		leaderTrack: []string{
			"Led team of professionals to exceed quarterly targets by 25%",
			"Implemented process improvements that reduced operational costs by 30%",
			"Built and maintained strategic partnerships with key stakeholders",
		},
		genericTrack: []string{
			"Consistently exceeded performance metrics and contributed to team success",
			"Implemented innovative solutions that improved efficiency and productivity",
			"Recognized for exceptional problem-solving and collaborative approach",
		},
		filler: []string{
			"Delivered high-quality results while managing multiple priorities in fast-paced environment",
			"Collaborated with stakeholders to identify opportunities and implement effective solutions",
			"Contributed to continuous process improvements that strengthened overall team performance",
		},
		defaultSoft: []string{"Communication", "Problem Solving", "Team Collaboration"},
	}
}

// Roles returns a copy of the role table.
func (c *Catalog) Roles() []RoleSkills {
	out := make([]RoleSkills, len(c.roles))
	for i, r := range c.roles {
		out[i] = RoleSkills{Key: r.Key, Skills: append([]Candidate(nil), r.Skills...)}
	}
	return out
}

// TechnicalTrack returns the generic achievements used for engineering roles.
func (c *Catalog) TechnicalTrack() []string { return append([]string(nil), c.technicalTrack...) }

// LeadershipTrack returns the generic achievements used for manager roles.
func (c *Catalog) LeadershipTrack() []string { return append([]string(nil), c.leaderTrack...) }

// GenericTrack returns the generic achievements used for any other role.
func (c *Catalog) GenericTrack() []string { return append([]string(nil), c.genericTrack...) }

// DefaultSoftSkills returns the soft skills injected when none are supplied.
func (c *Catalog) DefaultSoftSkills() []string { return append([]string(nil), c.defaultSoft...) }
