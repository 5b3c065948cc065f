package jira

// Issue is the subset of a Jira issue the notifier needs.
type Issue struct {
	ID     string      `json:"id"`
	Key    string      `json:"key"`
	Self   string      `json:"self"`
	Fields IssueFields `json:"fields"`
}

type IssueFields struct {
	Summary    string      `json:"summary"`
	IssueType  IssueType   `json:"issuetype"`
	Project    Project     `json:"project"`
	Components []Component `json:"components"`
}

type IssueType struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Subtask bool   `json:"subtask"`
}

type Project struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
}

type Component struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Transitions is the response of the issue transitions endpoint.
type Transitions struct {
	Transitions []Transition `json:"transitions"`
}

type Transition struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// devStatusResponse is the dev-status detail payload that links issues to
// version-control repositories.
type devStatusResponse struct {
	Detail []devStatusDetail `json:"detail"`
}

type devStatusDetail struct {
	Repositories []devStatusRepository `json:"repositories"`
}

type devStatusRepository struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
