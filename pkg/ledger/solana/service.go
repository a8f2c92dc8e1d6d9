package solana

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"
	"go.uber.org/ratelimit"

	"github.com/cryptilo/cryptilo-daemon/pkg/circuitbreaker"
	"github.com/cryptilo/cryptilo-daemon/pkg/httputil"
	"github.com/cryptilo/cryptilo-daemon/pkg/ledger"
)

const (
	defaultCommitment        = "confirmed"
	defaultRequestsPerSecond = 10
)

var (
	// ErrNullRPCAddr ...
	ErrNullRPCAddr = errors.New("missing rpc address")
	// ErrInvalidRPCAddr ...
	ErrInvalidRPCAddr = errors.New("rpc address must be a valid http(s) url")
)

type service struct {
	rpcAddr    string
	commitment string
	cb         *gobreaker.CircuitBreaker
	limiter    ratelimit.Limiter
}

// NewServiceOpts is the struct given to the NewService method
type NewServiceOpts struct {
	RPCAddr           string
	Commitment        string
	RequestsPerSecond int
}

func (o NewServiceOpts) validate() error {
	if len(o.RPCAddr) <= 0 {
		return ErrNullRPCAddr
	}
	u, err := url.Parse(o.RPCAddr)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return ErrInvalidRPCAddr
	}
	return nil
}

// NewService returns a new JSON-RPC client for a node of the target ledger as
// a ledger.Service interface. Requests are paced by a rate limiter and routed
// through a circuit breaker so a flaky node is detected instead of hammered.
func NewService(opts NewServiceOpts) (ledger.Service, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	commitment := opts.Commitment
	if len(commitment) <= 0 {
		commitment = defaultCommitment
	}
	requestsPerSecond := opts.RequestsPerSecond
	if requestsPerSecond <= 0 {
		requestsPerSecond = defaultRequestsPerSecond
	}

	return &service{
		rpcAddr:    opts.RPCAddr,
		commitment: commitment,
		cb:         circuitbreaker.NewCircuitBreaker("solana rpc"),
		limiter:    ratelimit.New(requestsPerSecond),
	}, nil
}

func (s *service) GetBalance(ctx context.Context, address string) (uint64, error) {
	result := struct {
		Value uint64 `json:"value"`
	}{}
	params := []interface{}{address, s.commitmentParam()}
	if err := s.call(ctx, "getBalance", params, &result); err != nil {
		return 0, err
	}
	return result.Value, nil
}

func (s *service) GetLatestBlockhash(ctx context.Context) (string, error) {
	result := struct {
		Value struct {
			Blockhash string `json:"blockhash"`
		} `json:"value"`
	}{}
	params := []interface{}{s.commitmentParam()}
	if err := s.call(ctx, "getLatestBlockhash", params, &result); err != nil {
		return "", err
	}
	return result.Value.Blockhash, nil
}

func (s *service) GetFeeForMessage(ctx context.Context, base64Message string) (uint64, error) {
	result := struct {
		Value *uint64 `json:"value"`
	}{}
	params := []interface{}{base64Message, s.commitmentParam()}
	if err := s.call(ctx, "getFeeForMessage", params, &result); err != nil {
		return 0, err
	}
	if result.Value == nil {
		return 0, ledger.ErrFeeUnavailable
	}
	return *result.Value, nil
}

func (s *service) BroadcastTransaction(ctx context.Context, base64Tx string) (string, error) {
	var signature string
	params := []interface{}{base64Tx, map[string]interface{}{
		"encoding":            "base64",
		"preflightCommitment": s.commitment,
	}}
	if err := s.call(ctx, "sendTransaction", params, &signature); err != nil {
		return "", err
	}
	return signature, nil
}

func (s *service) commitmentParam() map[string]interface{} {
	return map[string]interface{}{"commitment": s.commitment}
}

type rpcRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      string        `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

type rpcResponse struct {
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Result json.RawMessage `json:"result"`
}

// call performs one JSON-RPC round trip and decodes the result field into the
// given target. Node-side errors are returned as *ledger.RPCError.
func (s *service) call(ctx context.Context, method string, params []interface{}, result interface{}) error {
	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      uuid.NewString(),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return err
	}
	headers := map[string]string{
		"Content-Type": "application/json",
	}

	s.limiter.Take()
	iresp, err := s.cb.Execute(func() (interface{}, error) {
		status, resp, err := httputil.NewHTTPRequestWithContext(
			ctx, "POST", s.rpcAddr, string(body), headers,
		)
		if err != nil {
			return nil, err
		}
		if status != http.StatusOK {
			return nil, fmt.Errorf("node responded with status %d: %s", status, resp)
		}
		return resp, nil
	})
	if err != nil {
		return err
	}

	envelope := rpcResponse{}
	if err := json.Unmarshal([]byte(iresp.(string)), &envelope); err != nil {
		return fmt.Errorf("invalid node response: %w", err)
	}
	if envelope.Error != nil {
		return &ledger.RPCError{
			Code:    envelope.Error.Code,
			Message: envelope.Error.Message,
		}
	}
	return json.Unmarshal(envelope.Result, result)
}
