package types

// Roadmap phase names. Phases are mutually exclusive.
const (
	PhaseShortTerm  = "short-term"
	PhaseMediumTerm = "medium-term"
	PhaseLongTerm   = "long-term"
)

// Resource is a single curated learning resource.
type Resource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"`
}

// RoadmapItem is one gap skill with its learning plan and assigned phase.
type RoadmapItem struct {
	Skill      string     `json:"skill"`
	Priority   string     `json:"priority"`
	Weight     int        `json:"weight"`
	Hours      int        `json:"hours"`
	Resources  []Resource `json:"resources"`
	Projects   []string   `json:"projects"`
	Phase      string     `json:"phase"`
	PhaseLabel string     `json:"phase_label"`
}

// NiceToHaveItem is a lighter-weight roadmap entry with no phase assignment.
type NiceToHaveItem struct {
	Skill     string     `json:"skill"`
	Resources []Resource `json:"resources"`
	Hours     int        `json:"hours"`
}

// RoadmapPhases groups items by phase.
type RoadmapPhases struct {
	ShortTerm  []RoadmapItem `json:"short-term"`
	MediumTerm []RoadmapItem `json:"medium-term"`
	LongTerm   []RoadmapItem `json:"long-term"`
}

// RoadmapPlan is the phased, resourced learning plan built from a gap list.
type RoadmapPlan struct {
	Role       string           `json:"role"`
	Phases     RoadmapPhases    `json:"phases"`
	TotalItems int              `json:"total_items"`
	TotalHours int              `json:"total_hours"`
	NiceToHave []NiceToHaveItem `json:"nice_to_have"`
	Summary    string           `json:"summary"`
}
