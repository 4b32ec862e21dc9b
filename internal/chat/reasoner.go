package chat

import "context"

// ToolSpec describes the single capability offered to the reasoning model
// on the first pass of each turn.
type ToolSpec struct {
	Name        string
	Description string
	// ParamName is the one required string parameter.
	ParamName        string
	ParamDescription string
}

// ToolCall is a structured request from the reasoning model to invoke a
// capability.
type ToolCall struct {
	Name     string
	Argument string
}

// Reply is the reasoning model's response to a pass: either final text or a
// tool call (a non-nil ToolCall takes precedence over Text).
type Reply struct {
	Text     string
	ToolCall *ToolCall
}

// Reasoner is the opaque reasoning function. The session sends the full
// retained history plus a fixed system preamble; the model answers directly
// or elects to call the one offered capability.
type Reasoner interface {
	// Complete runs the first pass of a turn.
	Complete(ctx context.Context, system string, history []Message, tool ToolSpec) (*Reply, error)

	// ResolveTool runs the second pass: the prior tool call plus its textual
	// result are appended to the conversation and the model produces the
	// final answer. No further tool calls are offered.
	ResolveTool(ctx context.Context, system string, history []Message, call *ToolCall, result string) (string, error)
}
