package mcp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/anyulbade/card-rewards-gateway/internal/requestid"
)

const (
	ServerName      = "ChasePaymentsRewardsOffersMCPServer"
	ProtocolVersion = "2024-11-05"

	instructions = "Credit Card Payment System API including Payments, Offers, Rewards, Disputes and Live Check with Merchants"

	maxFrameBytes = 4 * 1024 * 1024
)

// Server dispatches JSON-RPC 2.0 messages to the tool registry.
type Server struct {
	registry *Registry
	version  string
}

func NewServer(registry *Registry, version string) *Server {
	return &Server{registry: registry, version: version}
}

// Serve reads newline-delimited JSON-RPC messages from r and writes one
// response line per request to w. It returns when r is exhausted or ctx is
// done.
func (s *Server) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxFrameBytes)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil
		}

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		callCtx := requestid.WithID(ctx, uuid.NewString())
		resp, ok := s.Handle(callCtx, line)
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s\n", resp); err != nil {
			return fmt.Errorf("writing response: %w", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}

// Handle processes one encoded message. The bool is false when the message
// was a notification and nothing should be sent back.
func (s *Server) Handle(ctx context.Context, msg []byte) ([]byte, bool) {
	var req Request
	if err := json.Unmarshal(msg, &req); err != nil {
		return encode(newErrorResponse(nil, ErrCodeParse, "parse error: "+err.Error())), true
	}
	if req.JSONRPC != "2.0" || req.Method == "" {
		if req.IsNotification() {
			return nil, false
		}
		return encode(newErrorResponse(req.ID, ErrCodeInvalidReq, "invalid request")), true
	}

	resp, reply := s.dispatch(ctx, &req)
	if !reply {
		return nil, false
	}
	return encode(resp), true
}

func (s *Server) dispatch(ctx context.Context, req *Request) (Response, bool) {
	switch req.Method {
	case "initialize":
		return s.handleInitialize(req), true

	case "notifications/initialized", "notifications/cancelled":
		return Response{}, false

	case "ping":
		return newResponse(req.ID, struct{}{}), true

	case "tools/list":
		return newResponse(req.ID, map[string]any{"tools": s.registry.Tools()}), true

	case "tools/call":
		return s.handleToolsCall(ctx, req), true

	default:
		if req.IsNotification() {
			return Response{}, false
		}
		return newErrorResponse(req.ID, ErrCodeNoMethod, "method not found: "+req.Method), true
	}
}

func (s *Server) handleInitialize(req *Request) Response {
	return newResponse(req.ID, map[string]any{
		"protocolVersion": ProtocolVersion,
		"capabilities": map[string]any{
			"tools": map[string]any{},
		},
		"serverInfo": map[string]any{
			"name":    ServerName,
			"version": s.version,
		},
		"instructions": instructions,
	})
}

type toolsCallParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

func (s *Server) handleToolsCall(ctx context.Context, req *Request) Response {
	var params toolsCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return newErrorResponse(req.ID, ErrCodeInvalidParams, "invalid params: "+err.Error())
	}

	result, err := s.registry.Call(ctx, params.Name, params.Arguments)
	if err != nil {
		return newErrorResponse(req.ID, ErrCodeInvalidParams, err.Error())
	}
	return newResponse(req.ID, result)
}

func encode(resp Response) []byte {
	data, err := json.Marshal(resp)
	if err != nil {
		log.Error().Err(err).Msg("marshal json-rpc response")
		return []byte(`{"jsonrpc":"2.0","id":null,"error":{"code":-32603,"message":"internal marshal error"}}`)
	}
	return data
}
