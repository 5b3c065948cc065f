package webhook

// SecurityConfig holds webhook security settings
type SecurityConfig struct {
	Secret          string   // Shared secret for signature verification
	AllowedIPs      []string // IP whitelist (optional)
	RateLimitPerMin int      // Max requests per minute
}

// jiraPayload is the slice of a Jira webhook body the notifier reads.
// Everything else in the payload is cosmetic and ignored.
type jiraPayload struct {
	Timestamp          int64  `json:"timestamp"`
	WebhookEvent       string `json:"webhookEvent"`
	IssueEventTypeName string `json:"issue_event_type_name"`

	Issue struct {
		ID     string `json:"id"`
		Key    string `json:"key"`
		Self   string `json:"self"`
		Fields struct {
			Summary   string `json:"summary"`
			IssueType struct {
				Name string `json:"name"`
			} `json:"issuetype"`
			Project struct {
				ID string `json:"id"`
			} `json:"project"`
			Components []struct {
				ID string `json:"id"`
			} `json:"components"`
		} `json:"fields"`
	} `json:"issue"`

	Changelog *struct {
		ID string `json:"id"`
	} `json:"changelog"`

	Comment *struct {
		ID string `json:"id"`
	} `json:"comment"`
}
