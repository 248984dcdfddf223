// Package ledger is a typed client for the remote ledger service HTTP surface.
package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"github.com/valyala/fasthttp"

	"github.com/goodnatureofminers/ledgerview/internal/model"
)

const (
	opFetchChain          = "fetch_chain"
	opFetchNodes          = "fetch_nodes"
	opCreateWallet        = "create_wallet"
	opMine                = "mine"
	opRegisterNode        = "register_node"
	opResolveNodes        = "resolve_nodes"
	opGenerateTransaction = "generate_transaction"
	opSubmitTransaction   = "submit_transaction"
	opGenerateInvestment  = "generate_investment"
	opSubmitInvestment    = "submit_investment"
	opRemoteBalance       = "remote_balance"
	opFetchJSON           = "fetch_json"

	maxErrorBody   = 256
	defaultTimeout = 30 * time.Second
)

type generateRequest struct {
	Sender     model.Address `json:"sender_address"`
	PrivateKey string        `json:"sender_private_key"`
	Recipient  model.Address `json:"recipient_address"`
	Amount     json.Number   `json:"amount"`
	URL        string        `json:"url,omitempty"`
}

type submitRequest struct {
	Sender    model.Address `json:"sender_address"`
	Signature string        `json:"signature"`
	Recipient model.Address `json:"recipient_address"`
	Amount    json.Number   `json:"amount"`
	URL       string        `json:"url,omitempty"`
}

type registerRequest struct {
	Nodes []string `json:"nodes"`
}

type balanceRequest struct {
	Address model.Address `json:"address"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Client wraps the ledger service endpoints with metrics instrumentation.
type Client struct {
	root    string
	timeout time.Duration
	http    Doer
	metrics Metrics
}

// NewClient constructs a Client for the service rooted at rawURL.
func NewClient(rawURL string, timeout time.Duration, doer Doer, metrics Metrics) (*Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse ledger url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("ledger url scheme %q not supported", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("ledger url missing host")
	}
	if metrics == nil {
		return nil, errors.New("ledger client metrics is required")
	}
	if doer == nil {
		doer = &fasthttp.Client{Name: "ledgerview"}
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		root:    strings.TrimRight(rawURL, "/"),
		timeout: timeout,
		http:    doer,
		metrics: metrics,
	}, nil
}

// FetchChain returns the full chain snapshot.
func (c *Client) FetchChain(ctx context.Context) (model.Chain, error) {
	var chain model.Chain
	err := c.call(ctx, opFetchChain, fasthttp.MethodGet, c.path("/chain"), nil, &chain)
	return chain, err
}

// FetchNodes lists nodes registered with the service.
func (c *Client) FetchNodes(ctx context.Context) (model.Nodes, error) {
	var nodes model.Nodes
	err := c.call(ctx, opFetchNodes, fasthttp.MethodGet, c.path("/nodes/get"), nil, &nodes)
	return nodes, err
}

// CreateWallet asks the service for a new key pair.
func (c *Client) CreateWallet(ctx context.Context) (model.Wallet, error) {
	var w model.Wallet
	err := c.call(ctx, opCreateWallet, fasthttp.MethodGet, c.path("/wallet/new"), nil, &w)
	return w, err
}

// Mine triggers mining of a new block.
func (c *Client) Mine(ctx context.Context) (json.RawMessage, error) {
	var res json.RawMessage
	err := c.call(ctx, opMine, fasthttp.MethodGet, c.path("/mine"), nil, &res)
	return res, err
}

// RegisterNode registers a peer address with the service.
func (c *Client) RegisterNode(ctx context.Context, address string) (json.RawMessage, error) {
	var res json.RawMessage
	err := c.call(ctx, opRegisterNode, fasthttp.MethodPost, c.path("/nodes/register"),
		registerRequest{Nodes: []string{address}}, &res)
	return res, err
}

// ResolveNodes triggers conflict resolution between peers.
func (c *Client) ResolveNodes(ctx context.Context) (json.RawMessage, error) {
	var res json.RawMessage
	err := c.call(ctx, opResolveNodes, fasthttp.MethodGet, c.path("/nodes/resolve"), nil, &res)
	return res, err
}

// GenerateTransaction has the service sign a plain transaction.
func (c *Client) GenerateTransaction(
	ctx context.Context, sender, recipient model.Address, amount model.Amount, privateKey string,
) (model.Signed, error) {
	var signed model.Signed
	err := c.call(ctx, opGenerateTransaction, fasthttp.MethodPost, c.path("/generate/transaction"), generateRequest{
		Sender:     sender,
		PrivateKey: privateKey,
		Recipient:  recipient,
		Amount:     number(amount),
	}, &signed)
	return signed, err
}

// SubmitTransaction submits a signed plain transaction.
func (c *Client) SubmitTransaction(
	ctx context.Context, sender, recipient model.Address, amount model.Amount, signature string,
) (model.Status, error) {
	return c.submit(ctx, opSubmitTransaction, "/transactions/new", submitRequest{
		Sender:    sender,
		Signature: signature,
		Recipient: recipient,
		Amount:    number(amount),
	})
}

// GenerateInvestment has the service sign an investment.
func (c *Client) GenerateInvestment(
	ctx context.Context, sender, recipient model.Address, amount model.Amount, privateKey, link string,
) (model.Signed, error) {
	var signed model.Signed
	err := c.call(ctx, opGenerateInvestment, fasthttp.MethodPost, c.path("/generate/investment"), generateRequest{
		Sender:     sender,
		PrivateKey: privateKey,
		Recipient:  recipient,
		Amount:     number(amount),
		URL:        link,
	}, &signed)
	return signed, err
}

// SubmitInvestment submits a signed investment.
func (c *Client) SubmitInvestment(
	ctx context.Context, sender, recipient model.Address, amount model.Amount, signature, link string,
) (model.Status, error) {
	return c.submit(ctx, opSubmitInvestment, "/investments/new", submitRequest{
		Sender:    sender,
		Signature: signature,
		Recipient: recipient,
		Amount:    number(amount),
		URL:       link,
	})
}

// RemoteBalance asks the service for its own view of an address balance.
func (c *Client) RemoteBalance(ctx context.Context, address model.Address) (model.RemoteBalance, error) {
	var res model.RemoteBalance
	err := c.call(ctx, opRemoteBalance, fasthttp.MethodPost, c.path("/balance"), balanceRequest{Address: address}, &res)
	return res, err
}

// FetchJSON loads an arbitrary JSON document from an absolute URL.
func (c *Client) FetchJSON(ctx context.Context, rawURL string) ([]byte, error) {
	code, body, err := c.do(ctx, opFetchJSON, fasthttp.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(body) {
		err = &RemoteError{Operation: opFetchJSON, StatusCode: code, Cause: ErrInvalidJSON}
		return nil, err
	}
	return body, nil
}

func (c *Client) submit(ctx context.Context, operation, path string, req submitRequest) (model.Status, error) {
	code, body, err := c.do(ctx, operation, fasthttp.MethodPost, c.path(path), req)
	if err != nil {
		return model.Status{Code: code}, err
	}
	status := model.Status{Code: code}
	var msg messageResponse
	if json.Unmarshal(body, &msg) == nil {
		status.Message = msg.Message
	}
	if code != fasthttp.StatusCreated {
		return status, &RemoteError{
			Operation:  operation,
			StatusCode: code,
			Cause:      fmt.Errorf("%w: expected %d", ErrUnexpectedStatus, fasthttp.StatusCreated),
		}
	}
	return status, nil
}

func (c *Client) call(ctx context.Context, operation, method, uri string, in, out any) error {
	code, body, err := c.do(ctx, operation, method, uri, in)
	if err != nil {
		return err
	}
	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &RemoteError{Operation: operation, StatusCode: code, Cause: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func (c *Client) do(ctx context.Context, operation, method, uri string, in any) (code int, body []byte, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe(operation, err, started)
	}()

	if ctxErr := ctx.Err(); ctxErr != nil {
		err = &RemoteError{Operation: operation, Cause: ctxErr}
		return 0, nil, err
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(uri)
	req.Header.SetMethod(method)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")
	if in != nil {
		raw, marshalErr := json.Marshal(in)
		if marshalErr != nil {
			err = &RemoteError{Operation: operation, Cause: fmt.Errorf("encode request: %w", marshalErr)}
			return 0, nil, err
		}
		req.Header.SetContentType("application/json")
		req.SetBody(raw)
	}

	if doErr := c.http.DoDeadline(req, resp, c.deadline(ctx)); doErr != nil {
		err = &RemoteError{Operation: operation, Cause: doErr}
		return 0, nil, err
	}

	code = resp.StatusCode()
	if code < fasthttp.StatusOK || code >= fasthttp.StatusMultipleChoices {
		err = &RemoteError{
			Operation:  operation,
			StatusCode: code,
			Cause:      fmt.Errorf("%w: %s", ErrUnexpectedStatus, truncate(resp.Body())),
		}
		return code, nil, err
	}

	// resp is released on return, so the body must be copied out.
	body = append([]byte(nil), resp.Body()...)
	return code, body, nil
}

func (c *Client) deadline(ctx context.Context) time.Time {
	deadline := time.Now().Add(c.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		return d
	}
	return deadline
}

func (c *Client) path(p string) string {
	return c.root + p
}

// number renders amounts as JSON numbers: the service signs the value it
// decoded, so "10" and 10 would produce different signatures.
func number(a model.Amount) json.Number {
	return json.Number(a.String())
}

func truncate(b []byte) string {
	s := strings.TrimSpace(string(b))
	if len(s) > maxErrorBody {
		return s[:maxErrorBody] + "..."
	}
	return s
}
