package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/copyleftdev/FINNR/internal/logging"
)

// JSON-RPC 2.0 error codes.
const (
	rpcParseError     = -32700
	rpcInvalidRequest = -32600
	rpcMethodNotFound = -32601
	rpcInvalidParams  = -32602
)

type rpcRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Result  interface{}     `json:"result,omitempty"`
	Error   *rpcError       `json:"error,omitempty"`
}

type rpcError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// handleJSONRPC serves the rootfind.solve and rootfind.brackets methods.
// Transport errors are still HTTP 200; failures travel in the error member.
func (s *Server) handleJSONRPC(w http.ResponseWriter, r *http.Request) {
	var req rpcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeRPC(w, rpcResponse{
			JSONRPC: "2.0",
			Error:   &rpcError{Code: rpcParseError, Message: "parse error"},
		})
		return
	}
	if req.JSONRPC != "2.0" {
		s.writeRPC(w, rpcResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error:   &rpcError{Code: rpcInvalidRequest, Message: "jsonrpc must be \"2.0\""},
		})
		return
	}

	logging.FromContext(r.Context()).Debug("rpc call", zap.String("rpc_method", req.Method))

	resp := rpcResponse{JSONRPC: "2.0", ID: req.ID}
	switch req.Method {
	case "rootfind.solve":
		var params solveRequest
		if err := json.Unmarshal(req.Params, &params); err != nil {
			resp.Error = &rpcError{Code: rpcInvalidParams, Message: err.Error()}
			break
		}
		result, err := s.solve(&params)
		if err != nil {
			resp.Error = &rpcError{
				Code:    rpcInvalidParams,
				Message: err.Error(),
				Data:    map[string]string{"kind": kindLabel(err)},
			}
			break
		}
		resp.Result = result
	case "rootfind.brackets":
		var params bracketsRequest
		if err := json.Unmarshal(req.Params, &params); err != nil {
			resp.Error = &rpcError{Code: rpcInvalidParams, Message: err.Error()}
			break
		}
		result, err := s.scan(&params)
		if err != nil {
			resp.Error = &rpcError{
				Code:    rpcInvalidParams,
				Message: err.Error(),
				Data:    map[string]string{"kind": kindLabel(err)},
			}
			break
		}
		resp.Result = result
	default:
		resp.Error = &rpcError{Code: rpcMethodNotFound, Message: "method not found: " + req.Method}
	}

	s.writeRPC(w, resp)
}

func (s *Server) writeRPC(w http.ResponseWriter, resp rpcResponse) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
