package types

// ExecuteRequest asks the registry to run one tool.
type ExecuteRequest struct {
	ToolID string                 `json:"tool_id" binding:"required"`
	Params map[string]interface{} `json:"params"`
}

// DiscoverRequest asks which services fit a free-text question.
type DiscoverRequest struct {
	Query string `json:"query" binding:"required"`
}

// WSMessage is the envelope for WebSocket playback messages.
type WSMessage struct {
	Type     string                 `json:"type"`
	ToolID   string                 `json:"tool_id,omitempty"`
	Params   map[string]interface{} `json:"params,omitempty"`
	PresetID string                 `json:"preset_id,omitempty"`
	DelayMS  int                    `json:"delay_ms,omitempty"`
}
