package catalog

import (
	"github.com/germanamz/agentdesk/pkg/agentform"
	"github.com/germanamz/agentdesk/pkg/weights"
)

// Models lists the model identifiers an agent can be configured with.
func Models() []string {
	return []string{"gpt-4o", "gpt-4o-mini", "claude-3-5-sonnet", "gemini-1.5-pro"}
}

// DefaultParameters is the starting parameter set for a new screening agent.
func DefaultParameters() []weights.Parameter {
	return []weights.Parameter{
		{Name: "Experience", Value: "3+ years", Weight: 40},
		{Name: "Skills", Value: "Relevant technical skills", Weight: 30},
		{Name: "Education", Value: "Bachelor's degree", Weight: 30},
	}
}

// DefaultAgents is the built-in agent table.
func DefaultAgents() []Agent {
	return []Agent{
		{
			Agent: agentform.Agent{
				ID:          "resume-screener",
				Name:        "Resume Screener",
				Role:        "Screening",
				Description: "Scores incoming resumes against the open role and flags the strongest candidates.",
				Avatar:      "📄",
				Model:       "gpt-4o",
				Parameters: []weights.Parameter{
					{ID: "rs-experience", Name: "Experience", Value: "5+ years", Weight: 40},
					{ID: "rs-skills", Name: "Skills", Value: "Go, Kubernetes", Weight: 35},
					{ID: "rs-education", Name: "Education", Value: "BSc Computer Science", Weight: 25},
				},
			},
			Status:         AgentActive,
			TasksCompleted: 1284,
		},
		{
			Agent: agentform.Agent{
				ID:          "job-matcher",
				Name:        "Job Matcher",
				Role:        "Matching",
				Description: "Matches candidate profiles to open positions across projects.",
				Avatar:      "🎯",
				Model:       "claude-3-5-sonnet",
				Parameters: []weights.Parameter{
					{ID: "jm-skills", Name: "Skill overlap", Value: "70%", Weight: 50},
					{ID: "jm-location", Name: "Location", Value: "Remote or on-site", Weight: 20},
					{ID: "jm-salary", Name: "Salary range", Value: "Within band", Weight: 30},
				},
			},
			Status:         AgentActive,
			TasksCompleted: 862,
		},
		{
			Agent: agentform.Agent{
				ID:          "interview-scheduler",
				Name:        "Interview Scheduler",
				Role:        "Coordination",
				Description: "Proposes interview slots based on interviewer availability.",
				Avatar:      "📅",
				Model:       "gpt-4o-mini",
				Parameters: []weights.Parameter{
					{ID: "is-availability", Name: "Availability", Value: "Next 5 business days", Weight: 60},
					{ID: "is-timezone", Name: "Timezone fit", Value: "±3h", Weight: 40},
				},
			},
			Status:         AgentInactive,
			TasksCompleted: 215,
		},
		{
			Agent: agentform.Agent{
				ID:          "candidate-sourcer",
				Name:        "Candidate Sourcer",
				Role:        "Sourcing",
				Description: "Searches public profiles for passive candidates.",
				Avatar:      "🔎",
				Model:       "gemini-1.5-pro",
				Parameters: []weights.Parameter{
					{ID: "cs-keywords", Name: "Keywords", Value: "golang backend", Weight: 50},
					{ID: "cs-seniority", Name: "Seniority", Value: "Senior", Weight: 30},
				},
			},
			Status: AgentDraft,
		},
	}
}

// DefaultProjects is the built-in project table.
func DefaultProjects() []Project {
	return []Project{
		{
			ID:          "backend-hiring",
			Name:        "Backend Hiring Q3",
			Description: "Fill four senior backend positions.",
			Status:      ProjectActive,
			AgentIDs:    []string{"resume-screener", "job-matcher"},
			Files: []File{
				{Name: "job-description.pdf", Kind: "pdf", SizeKB: 240, Uploaded: "2024-06-03"},
				{Name: "resumes-batch-1.zip", Kind: "zip", SizeKB: 18432, Uploaded: "2024-06-10"},
				{Name: "scorecard.xlsx", Kind: "xlsx", SizeKB: 56, Uploaded: "2024-06-12"},
			},
		},
		{
			ID:          "design-internships",
			Name:        "Design Internships",
			Description: "Summer internship program for product designers.",
			Status:      ProjectOnHold,
			AgentIDs:    []string{"candidate-sourcer"},
			Files: []File{
				{Name: "portfolio-guidelines.pdf", Kind: "pdf", SizeKB: 512, Uploaded: "2024-04-22"},
			},
		},
		{
			ID:          "sales-expansion",
			Name:        "Sales Expansion EMEA",
			Description: "Regional sales team build-out.",
			Status:      ProjectCompleted,
			AgentIDs:    []string{"job-matcher", "interview-scheduler"},
			Files: []File{
				{Name: "territory-plan.docx", Kind: "docx", SizeKB: 88, Uploaded: "2024-01-15"},
				{Name: "offer-template.docx", Kind: "docx", SizeKB: 34, Uploaded: "2024-02-02"},
			},
		},
	}
}

// Default returns a catalog over the built-in tables.
func Default() *Catalog {
	return New(DefaultAgents(), DefaultProjects())
}
