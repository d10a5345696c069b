package requestlog

import "time"

// Config controls buffering of request log writes.
type Config struct {
	FlushSize     int           `default:"500"`
	FlushInterval time.Duration `default:"2s"`
	FlushRPS      int           `default:"10"`
}
