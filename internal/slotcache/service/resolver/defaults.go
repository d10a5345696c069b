package resolver

const (
	maxBatchSize = 10

	kindBlock   = "block"
	kindProgram = "program"
	kindHeight  = "height"

	defaultMethod = "INTERNAL"
)

// Config bounds concurrent upstream fetches of ranged resolutions.
type Config struct {
	BatchSize        int `default:"10"`
	ProgramBatchSize int `default:"5"`
}

func clampBatchSize(n int) int {
	switch {
	case n < 1:
		return 1
	case n > maxBatchSize:
		return maxBatchSize
	default:
		return n
	}
}
