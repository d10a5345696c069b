package model

import "time"

// ProgramCount is the number of transactions in a block that involve a program.
type ProgramCount struct {
	Slot      uint64
	ProgramID string
	Count     uint64
	CreatedAt time.Time
}

// WriteOutcome reports whether an insert-once write stored new data.
type WriteOutcome int

const (
	// Inserted means the record did not exist and was stored.
	Inserted WriteOutcome = iota + 1
	// AlreadyPresent means an earlier write won; the stored value was left unchanged.
	AlreadyPresent
)

func (o WriteOutcome) String() string {
	switch o {
	case Inserted:
		return "inserted"
	case AlreadyPresent:
		return "already_present"
	default:
		return "unknown"
	}
}
