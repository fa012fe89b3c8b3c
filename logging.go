package mcp

// SetLevelParams is the params of logging/setLevel.
type SetLevelParams struct {
	Level LoggingLevel `json:"level"`
}

// SetLevelResult is the empty result of logging/setLevel.
type SetLevelResult struct{}
