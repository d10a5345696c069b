// Package sampler aggregates transaction activity over slot ranges from a deterministic sample.
package sampler

import (
	"fmt"

	"github.com/goodnatureofminers/slotinsight-backend/internal/slotcache/model"
)

// StrideSample returns up to sampleSize evenly spaced slots of [start, end), always starting at start.
// Ranges no larger than sampleSize are returned whole.
func StrideSample(start, end uint64, sampleSize int) ([]uint64, error) {
	if end <= start {
		return nil, fmt.Errorf("sample range [%d, %d): end must be greater than start: %w", start, end, model.ErrInvalidInput)
	}
	if sampleSize < 1 {
		return nil, fmt.Errorf("sample size %d: must be positive: %w", sampleSize, model.ErrInvalidInput)
	}

	total := end - start
	size := uint64(sampleSize)
	if total <= size {
		slots := make([]uint64, 0, total)
		for s := start; s < end; s++ {
			slots = append(slots, s)
		}
		return slots, nil
	}

	stride := total / size
	slots := make([]uint64, 0, size)
	for i := uint64(0); i < size; i++ {
		slots = append(slots, start+i*stride)
	}
	return slots, nil
}
