package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"fingraph/internal/chat"
)

// systemPreamble is the fixed context sent with every turn.
const systemPreamble = `You are a financial assistant with access to a knowledge graph containing financial data and relationships.
The graph contains concepts like Transaction Categories, Types (Income/Expense), and their relationships.
When querying the graph, use Cypher to extract relevant information.
Always explain your reasoning and the insights from the data in a clear, conversational manner.`

// graphQueryTool is the single capability offered to the reasoner per turn.
var graphQueryTool = chat.ToolSpec{
	Name:             "query_knowledge_graph",
	Description:      "Query the financial knowledge graph using Cypher",
	ParamName:        "query",
	ParamDescription: "The Cypher query to execute",
}

// chatService runs the single-turn orchestration loop over the bounded
// conversation memory.
type chatService struct {
	mu       sync.Mutex
	memory   *chat.Memory
	reasoner chat.Reasoner
	graph    GraphStore
	logger   *zap.SugaredLogger
}

// NewChatService creates a new ChatServicer.
func NewChatService(reasoner chat.Reasoner, graph GraphStore, logger *zap.SugaredLogger) ChatServicer {
	return &chatService{
		memory:   chat.NewMemory(),
		reasoner: reasoner,
		graph:    graph,
		logger:   logger,
	}
}

// Ask runs one conversation turn. The reasoner sees the retained history and
// may call the graph-query capability at most once; its result (or its
// failure, rendered as text) is fed back for a second pass whose text becomes
// the final answer. Query and capability-protocol failures never escape the
// session as errors.
func (s *chatService) Ask(ctx context.Context, question string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.memory.Add(chat.RoleUser, question)

	reply, err := s.reasoner.Complete(ctx, systemPreamble, s.memory.Messages(), graphQueryTool)
	if err != nil {
		return "", err
	}

	answer := reply.Text
	if reply.ToolCall != nil {
		result := s.executeCapability(ctx, reply.ToolCall)
		answer, err = s.reasoner.ResolveTool(ctx, systemPreamble, s.memory.Messages(), reply.ToolCall, result)
		if err != nil {
			return "", err
		}
	}

	s.memory.Add(chat.RoleAssistant, answer)
	return answer, nil
}

// executeCapability runs the requested capability and always returns text:
// result rows as JSON on success, an error description otherwise. The
// reasoner is expected to adapt or report failures conversationally.
func (s *chatService) executeCapability(ctx context.Context, call *chat.ToolCall) string {
	if call.Name != graphQueryTool.Name {
		s.logger.Warnw("reasoner requested unknown capability", "capability", call.Name)
		return fmt.Sprintf("Error: unknown capability %q; only %q is available", call.Name, graphQueryTool.Name)
	}
	if call.Argument == "" {
		s.logger.Warnw("reasoner omitted the query argument")
		return "Error: the required 'query' argument is missing"
	}

	rows, err := s.graph.Query(ctx, call.Argument)
	if err != nil {
		s.logger.Warnw("graph query failed", "error", err)
		return fmt.Sprintf("Error executing query: %v", err)
	}

	encoded, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Sprintf("Error encoding query result: %v", err)
	}
	return string(encoded)
}

// Messages returns the retained conversation history.
func (s *chatService) Messages() []chat.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.memory.Messages()
}

// ClearConversation empties the session history.
func (s *chatService) ClearConversation() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.memory.Clear()
}
