package solana

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Transaction detail levels accepted by getBlock.
const (
	DetailsFull       = "full"
	DetailsSignatures = "signatures"
	DetailsNone       = "none"
)

// BlockRequest is the configuration object passed to getBlock.
type BlockRequest struct {
	Encoding                       string `json:"encoding,omitempty"`
	TransactionDetails             string `json:"transactionDetails"`
	Rewards                        bool   `json:"rewards"`
	MaxSupportedTransactionVersion *int   `json:"maxSupportedTransactionVersion,omitempty"`
	Commitment                     string `json:"commitment,omitempty"`
}

// BlockResult is the getBlock response. Signatures or Transactions is populated depending on the detail level.
type BlockResult struct {
	BlockHeight       *uint64             `json:"blockHeight"`
	BlockTime         *int64              `json:"blockTime"`
	Blockhash         string              `json:"blockhash"`
	PreviousBlockhash string              `json:"previousBlockhash"`
	ParentSlot        uint64              `json:"parentSlot"`
	Signatures        []string            `json:"signatures"`
	Rewards           []RewardResult      `json:"rewards"`
	Transactions      []TransactionResult `json:"transactions"`
}

type RewardResult struct {
	Pubkey      string  `json:"pubkey"`
	Lamports    int64   `json:"lamports"`
	PostBalance uint64  `json:"postBalance"`
	RewardType  *string `json:"rewardType"`
	Commission  *uint8  `json:"commission"`
}

type TransactionResult struct {
	Transaction TransactionEnvelope `json:"transaction"`
	Meta        *TransactionMeta    `json:"meta"`
}

type TransactionEnvelope struct {
	Signatures []string `json:"signatures"`
	Message    Message  `json:"message"`
}

type Message struct {
	AccountKeys  []AccountKey  `json:"accountKeys"`
	Instructions []Instruction `json:"instructions"`
}

// AccountKey is either a bare base58 string (json encoding) or an object with a pubkey field (jsonParsed).
type AccountKey struct {
	Pubkey string `json:"pubkey"`
}

func (k *AccountKey) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &k.Pubkey)
	}
	var obj struct {
		Pubkey string `json:"pubkey"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("decode account key: %w", err)
	}
	k.Pubkey = obj.Pubkey
	return nil
}

// Instruction carries programId in jsonParsed responses and programIdIndex in json responses.
type Instruction struct {
	ProgramID      string `json:"programId"`
	ProgramIDIndex *int   `json:"programIdIndex"`
}

type TransactionMeta struct {
	Err               json.RawMessage       `json:"err"`
	InnerInstructions []InnerInstructionSet `json:"innerInstructions"`
	LoadedAddresses   *LoadedAddresses      `json:"loadedAddresses"`
}

type InnerInstructionSet struct {
	Index        int           `json:"index"`
	Instructions []Instruction `json:"instructions"`
}

type LoadedAddresses struct {
	Writable []string `json:"writable"`
	Readonly []string `json:"readonly"`
}
