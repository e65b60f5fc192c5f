package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/anyulbade/card-rewards-gateway/internal/apperr"
	"github.com/anyulbade/card-rewards-gateway/internal/dto"
	"github.com/anyulbade/card-rewards-gateway/internal/requestid"
)

// Tool describes an MCP tool definition.
type Tool struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Tags        []string        `json:"tags,omitempty"`
	InputSchema json.RawMessage `json:"inputSchema"`
}

// ToolResult is returned from tool invocations.
type ToolResult struct {
	Content []ToolContent `json:"content"`
	IsError bool          `json:"isError"`
}

type ToolContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

func textResult(text string) ToolResult {
	return ToolResult{
		Content: []ToolContent{{Type: "text", Text: text}},
	}
}

// errorResult reports a failed call inside the tool result so the caller
// sees the message, kind and upstream status.
func errorResult(err error) ToolResult {
	data, mErr := json.Marshal(apperr.Response(err))
	if mErr != nil {
		data = []byte(fmt.Sprintf(`{"error":%q,"kind":"internal"}`, err.Error()))
	}
	res := textResult(string(data))
	res.IsError = true
	return res
}

// Handler runs one tool. args is the raw "arguments" object of tools/call.
type Handler func(ctx context.Context, args json.RawMessage) (json.RawMessage, error)

type toolEntry struct {
	Tool    Tool
	Handler Handler
}

// Registry holds tool definitions in registration order.
type Registry struct {
	tools   []toolEntry
	index   map[string]int
	metrics *Metrics
}

func NewRegistry(metrics *Metrics) *Registry {
	return &Registry{index: map[string]int{}, metrics: metrics}
}

func (r *Registry) Register(tool Tool, h Handler) error {
	if tool.Name == "" {
		return fmt.Errorf("tool name is required")
	}
	if _, dup := r.index[tool.Name]; dup {
		return fmt.Errorf("tool %q already registered", tool.Name)
	}
	if len(tool.InputSchema) == 0 {
		tool.InputSchema = json.RawMessage(`{"type":"object","properties":{}}`)
	}
	r.index[tool.Name] = len(r.tools)
	r.tools = append(r.tools, toolEntry{Tool: tool, Handler: h})
	return nil
}

// MustRegister panics on a duplicate or unnamed tool; used for the
// built-in catalog where either is a programming error.
func (r *Registry) MustRegister(tool Tool, h Handler) {
	if err := r.Register(tool, h); err != nil {
		panic(err)
	}
}

func (r *Registry) Tools() []Tool {
	out := make([]Tool, len(r.tools))
	for i, t := range r.tools {
		out[i] = t.Tool
	}
	return out
}

func (r *Registry) Lookup(name string) (Tool, bool) {
	i, ok := r.index[name]
	if !ok {
		return Tool{}, false
	}
	return r.tools[i].Tool, true
}

// ErrUnknownTool is returned for a name that was never registered.
var ErrUnknownTool = errors.New("unknown tool")

// Invoke runs the named tool and returns its raw output or error.
func (r *Registry) Invoke(ctx context.Context, name string, args json.RawMessage) (json.RawMessage, error) {
	i, ok := r.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}

	start := time.Now()
	out, err := r.tools[i].Handler(ctx, args)
	elapsed := time.Since(start)

	kind := apperr.Kind(err)
	r.metrics.RecordCall(name, kind, elapsed)

	evt := log.Info()
	if err != nil {
		evt = log.Warn().Err(err)
	}
	evt.Str("tool", name).
		Str("kind", kind).
		Dur("latency", elapsed).
		Str("request_id", requestid.FromContext(ctx)).
		Msg("tool call")

	return out, err
}

// Call runs the named tool. Tool failures come back as an error result; the
// returned error is only set when the tool does not exist.
func (r *Registry) Call(ctx context.Context, name string, args json.RawMessage) (ToolResult, error) {
	if _, ok := r.index[name]; !ok {
		return ToolResult{}, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	out, err := r.Invoke(ctx, name, args)
	if err != nil {
		return errorResult(err), nil
	}
	return textResult(string(out)), nil
}

// addTool registers a tool whose arguments decode into A. The input schema
// is derived from A, and arguments are validated before call runs.
func addTool[A any](r *Registry, name, description string, tags []string, call func(context.Context, A) (json.RawMessage, error)) {
	schema, err := json.Marshal(SchemaOf(reflect.TypeFor[A]()))
	if err != nil {
		panic(fmt.Sprintf("schema for %s: %v", name, err))
	}
	r.MustRegister(Tool{
		Name:        name,
		Description: description,
		Tags:        tags,
		InputSchema: schema,
	}, func(ctx context.Context, raw json.RawMessage) (json.RawMessage, error) {
		var args A
		if err := dto.Decode(raw, &args); err != nil {
			return nil, err
		}
		return call(ctx, args)
	})
}

type noArgs struct{}
