package chat

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	apperrors "fingraph/internal/errors"
)

// GeminiReasoner implements Reasoner on top of the Gemini API. The client
// reads its API key from the environment (GEMINI_API_KEY).
type GeminiReasoner struct {
	client *genai.Client
	model  string
}

// NewGeminiReasoner creates a Gemini-backed reasoner for the given model.
func NewGeminiReasoner(ctx context.Context, model string) (*GeminiReasoner, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &GeminiReasoner{client: client, model: model}, nil
}

// Complete runs the first pass of a turn, offering the single capability as
// a function declaration. A function call in the response wins over text.
func (g *GeminiReasoner) Complete(ctx context.Context, system string, history []Message, tool ToolSpec) (*Reply, error) {
	contents := historyToContents(history)

	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: system}}},
		Tools: []*genai.Tool{{
			FunctionDeclarations: []*genai.FunctionDeclaration{{
				Name:        tool.Name,
				Description: tool.Description,
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						tool.ParamName: {Type: genai.TypeString, Description: tool.ParamDescription},
					},
					Required: []string{tool.ParamName},
				},
			}},
		}},
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrReasoner, err)
	}

	if calls := resp.FunctionCalls(); len(calls) > 0 {
		call := calls[0]
		arg, _ := call.Args[tool.ParamName].(string)
		return &Reply{ToolCall: &ToolCall{Name: call.Name, Argument: arg}}, nil
	}

	return &Reply{Text: resp.Text()}, nil
}

// ResolveTool feeds the capability result back for the final answer.
func (g *GeminiReasoner) ResolveTool(ctx context.Context, system string, history []Message, call *ToolCall, result string) (string, error) {
	contents := historyToContents(history)

	contents = append(contents, &genai.Content{
		Role: genai.RoleModel,
		Parts: []*genai.Part{{
			FunctionCall: &genai.FunctionCall{
				Name: call.Name,
				Args: map[string]any{"query": call.Argument},
			},
		}},
	})
	contents = append(contents, &genai.Content{
		Role: genai.RoleUser,
		Parts: []*genai.Part{{
			FunctionResponse: &genai.FunctionResponse{
				Name:     call.Name,
				Response: map[string]any{"result": result},
			},
		}},
	})

	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: system}}},
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrReasoner, err)
	}
	return resp.Text(), nil
}

func historyToContents(history []Message) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history))
	for _, msg := range history {
		role := genai.RoleUser
		if msg.Role == RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: msg.Content}},
		})
	}
	return contents
}
