package model

import "encoding/json"

// Wallet is a freshly created key pair.
type Wallet struct {
	PrivateKey    string `json:"private_key"`
	PublicKey     string `json:"public_key"`
	PublicAddress string `json:"public_address,omitempty"`
}

// Nodes lists the peers known to the remote service.
type Nodes struct {
	Nodes []string `json:"nodes"`
}

// Signed is the result of a generate call: a server-issued signature and the
// canonical echo of the signed fields.
type Signed struct {
	Signature   string      `json:"signature"`
	Transaction Transaction `json:"transaction"`
}

// Status is the outcome of a submission.
type Status struct {
	Code    int    `json:"code"`
	Message string `json:"message,omitempty"`
}

// RemoteBalance is the balance computed by the remote service itself.
type RemoteBalance struct {
	Message string          `json:"message"`
	Balance json.RawMessage `json:"balance"`
}
