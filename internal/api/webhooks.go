package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/attar-travel/voicedesk/internal/processor"
)

// webhook receives every voice-platform event. Tool calls are answered
// inline with inventory results; call.started resets the card caches;
// call.ended and end-of-call-report run the summary pipeline.
func (s *Server) webhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "unreadable body")
		return
	}

	if tc, ok := decodeToolCall(body); ok {
		s.handleToolCall(w, tc)
		return
	}

	evt, err := processor.DecodeEvent(body)
	if err != nil {
		s.logger.Warn("webhook decode failed", "error", err)
		writeError(w, http.StatusBadRequest, "invalid webhook payload")
		return
	}
	s.logger.Info("webhook received", "event", evt.Type, "call_id", evt.CallID)

	switch evt.Type {
	case "call.started":
		// A new call means stale cards from the previous one must not
		// reach the widget.
		s.flightCards.clear()
		s.hotelCards.clear()
		s.logger.Info("call started, card caches cleared", "call_id", evt.CallID)

	case "call.ended", "end-of-call-report":
		result, err := s.processor.HandleCallEnded(r.Context(), evt)
		if err != nil {
			s.logger.Error("call processing failed", "error", err, "call_id", evt.CallID)
			writeError(w, http.StatusInternalServerError, "processing failed")
			return
		}
		resp := map[string]any{
			"received": true,
			"event":    evt.Type,
			"status":   "processed",
			"summary":  result.Summary,
			"call_id":  result.CallID,
		}
		if result.Booking != nil {
			resp["booking_details"] = result.Booking
		}
		writeJSON(w, http.StatusOK, resp)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"received": true,
		"event":    evt.Type,
		"status":   "processed",
	})
}

// toolCall is one platform function invocation, extracted from the
// various envelope shapes the platform sends it in.
type toolCall struct {
	ID         string
	Name       string
	Parameters map[string]any
	CallID     string
}

type toolCallEnvelope struct {
	Type         string          `json:"type"`
	Event        string          `json:"event"`
	CallIDCamel  string          `json:"callId"`
	ID           string          `json:"id"`
	ToolCallID   string          `json:"toolCallId"`
	Function     string          `json:"function"`
	Tool         string          `json:"tool"`
	Parameters   json.RawMessage `json:"parameters"`
	FunctionCall json.RawMessage `json:"functionCall"`
	ToolCall     json.RawMessage `json:"toolCall"`
	Call         struct {
		ID string `json:"id"`
	} `json:"call"`
	Message struct {
		ToolCall  json.RawMessage   `json:"toolCall"`
		ToolCalls []json.RawMessage `json:"toolCalls"`
		Call      struct {
			ID string `json:"id"`
		} `json:"call"`
	} `json:"message"`
}

type rawFunctionCall struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Parameters json.RawMessage `json:"parameters"`
	Arguments  json.RawMessage `json:"arguments"`
	Function   struct {
		Name      string          `json:"name"`
		Arguments json.RawMessage `json:"arguments"`
	} `json:"function"`
}

// decodeToolCall reports whether the payload is a function invocation
// rather than a lifecycle event, and normalizes it when it is.
func decodeToolCall(body []byte) (toolCall, bool) {
	var env toolCallEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return toolCall{}, false
	}

	eventType := env.Type
	if eventType == "" {
		eventType = env.Event
	}
	isFunction := eventType == "function-call" || eventType == "tool-call" || eventType == "tool-calls" ||
		len(env.FunctionCall) > 0 || len(env.ToolCall) > 0 || len(env.Parameters) > 0 ||
		len(env.Message.ToolCall) > 0 || len(env.Message.ToolCalls) > 0
	if !isFunction {
		return toolCall{}, false
	}

	var raw json.RawMessage
	switch {
	case len(env.FunctionCall) > 0:
		raw = env.FunctionCall
	case len(env.ToolCall) > 0:
		raw = env.ToolCall
	case len(env.Message.ToolCall) > 0:
		raw = env.Message.ToolCall
	case len(env.Message.ToolCalls) > 0:
		raw = env.Message.ToolCalls[0]
	}

	var fc rawFunctionCall
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &fc)
	}

	tc := toolCall{
		ID:     firstNonEmpty(fc.ID, env.ToolCallID, env.ID, "unknown"),
		Name:   firstNonEmpty(fc.Name, fc.Function.Name, env.Function, env.Tool),
		CallID: firstNonEmpty(env.Call.ID, env.Message.Call.ID, env.CallIDCamel, "latest"),
	}

	params := fc.Parameters
	if len(params) == 0 {
		params = fc.Arguments
	}
	if len(params) == 0 {
		params = fc.Function.Arguments
	}
	if len(params) == 0 {
		params = env.Parameters
	}
	tc.Parameters = decodeParameters(params)

	return tc, true
}

// decodeParameters accepts both an object and a JSON-encoded string of
// an object; some platform versions double-encode arguments.
func decodeParameters(raw json.RawMessage) map[string]any {
	if len(raw) == 0 {
		return map[string]any{}
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err == nil {
		return m
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if err := json.Unmarshal([]byte(s), &m); err == nil {
			return m
		}
	}
	return map[string]any{}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
