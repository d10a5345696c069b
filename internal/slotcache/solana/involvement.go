package solana

// ReferenceKind tells where in a transaction a program or account id was found.
type ReferenceKind uint8

const (
	// AccountKeyReference is an entry in the message account keys, loaded addresses included.
	AccountKeyReference ReferenceKind = iota + 1
	// TopLevelInstructionReference is the program invoked by a message instruction.
	TopLevelInstructionReference
	// InnerInstructionReference is the program invoked by an instruction executed via CPI.
	InnerInstructionReference
)

func (k ReferenceKind) String() string {
	switch k {
	case AccountKeyReference:
		return "account_key"
	case TopLevelInstructionReference:
		return "instruction"
	case InnerInstructionReference:
		return "inner_instruction"
	default:
		return "unknown"
	}
}

// ProgramReference is one place where a transaction names a program or account.
type ProgramReference struct {
	Kind      ReferenceKind
	ProgramID string
}

// Transaction is the typed view of a transaction used for program matching.
type Transaction struct {
	References []ProgramReference
}

// Involves reports whether any reference of the transaction names programID.
func (t Transaction) Involves(programID string) bool {
	if programID == "" {
		return false
	}
	for _, ref := range t.References {
		if ref.ProgramID == programID {
			return true
		}
	}
	return false
}

// DecodeTransaction flattens a getBlock transaction into program references.
// Instructions that only carry programIdIndex are resolved against the account keys.
func DecodeTransaction(tx TransactionResult) Transaction {
	keys := make([]string, 0, len(tx.Transaction.Message.AccountKeys))
	for _, key := range tx.Transaction.Message.AccountKeys {
		keys = append(keys, key.Pubkey)
	}
	if tx.Meta != nil && tx.Meta.LoadedAddresses != nil {
		keys = append(keys, tx.Meta.LoadedAddresses.Writable...)
		keys = append(keys, tx.Meta.LoadedAddresses.Readonly...)
	}

	refs := make([]ProgramReference, 0, len(keys)+len(tx.Transaction.Message.Instructions))
	for _, key := range keys {
		if key != "" {
			refs = append(refs, ProgramReference{Kind: AccountKeyReference, ProgramID: key})
		}
	}
	for _, ix := range tx.Transaction.Message.Instructions {
		if id := instructionProgram(ix, keys); id != "" {
			refs = append(refs, ProgramReference{Kind: TopLevelInstructionReference, ProgramID: id})
		}
	}
	if tx.Meta != nil {
		for _, set := range tx.Meta.InnerInstructions {
			for _, ix := range set.Instructions {
				if id := instructionProgram(ix, keys); id != "" {
					refs = append(refs, ProgramReference{Kind: InnerInstructionReference, ProgramID: id})
				}
			}
		}
	}

	return Transaction{References: refs}
}

// CountInvolving returns how many transactions involve programID. Each transaction counts once.
func CountInvolving(txs []Transaction, programID string) uint64 {
	var n uint64
	for _, tx := range txs {
		if tx.Involves(programID) {
			n++
		}
	}
	return n
}

func instructionProgram(ix Instruction, keys []string) string {
	if ix.ProgramID != "" {
		return ix.ProgramID
	}
	if ix.ProgramIDIndex != nil && *ix.ProgramIDIndex >= 0 && *ix.ProgramIDIndex < len(keys) {
		return keys[*ix.ProgramIDIndex]
	}
	return ""
}
