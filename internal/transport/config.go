package transport

// Config holds request defaults of the HTTP surface.
type Config struct {
	// EventStart and EventEnd bound the default event window [EventStart, EventEnd) of outage analyses.
	EventStart        uint64 `default:"374563500"`
	EventEnd          uint64 `default:"374591000"`
	SampleSize        int    `default:"100"`
	ProgramSampleSize int    `default:"50"`
	MaxSampleSize     int    `default:"1000"`
	ProgramID         string `default:"JUP6LkbZbjS1jKKwapdHNy74zcZ3tLUZoi5QNyVTaV4"`
	StatsWindowSecs   int    `default:"3600"`
}
