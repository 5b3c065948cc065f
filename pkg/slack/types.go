package slack

// postMessageRequest is the body for chat.postMessage.
type postMessageRequest struct {
	Channel string `json:"channel"`
	Text    string `json:"text"`
}

// updateMessageRequest is the body for chat.update.
type updateMessageRequest struct {
	Channel string `json:"channel"`
	TS      string `json:"ts"`
	Text    string `json:"text"`
}

// apiResponse is the common Slack Web API response envelope.
type apiResponse struct {
	OK      bool   `json:"ok"`
	Error   string `json:"error,omitempty"`
	Channel string `json:"channel,omitempty"`
	TS      string `json:"ts,omitempty"`
}
