package transport

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/goodnatureofminers/slotinsight-backend/internal/slotcache/model"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("query"); name != "" && name != "-" {
			return name
		}
		return f.Name
	})
	return v
}

type rangeQuery struct {
	Start         uint64 `query:"start"`
	End           uint64 `query:"end" validate:"gtfield=Start"`
	SampleSize    int    `query:"sampleSize" validate:"min=1,ltefield=MaxSampleSize"`
	MaxSampleSize int    `query:"-"`
}

type programRangeQuery struct {
	rangeQuery
	ProgramID string `query:"programId" validate:"required,alphanum,min=32,max=44"`
}

type listQuery struct {
	Limit int `query:"limit" validate:"min=1"`
}

type statsQuery struct {
	WindowSeconds int `query:"windowSeconds" validate:"min=1,max=2592000"`
}

func validateQuery(q any) error {
	err := validate.Struct(q)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("invalid %s: failed %q check: %w", fe.Field(), fe.Tag(), model.ErrInvalidInput)
	}
	return fmt.Errorf("validate query: %w: %w", model.ErrInvalidInput, err)
}

func parseUint(name, raw string) (uint64, error) {
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: must be a non-negative integer: %w", name, raw, model.ErrInvalidInput)
	}
	return v, nil
}

func queryUint(q url.Values, name string, def uint64) (uint64, error) {
	raw := q.Get(name)
	if raw == "" {
		return def, nil
	}
	return parseUint(name, raw)
}

func queryInt(q url.Values, name string, def int) (int, error) {
	raw := q.Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: must be an integer: %w", name, raw, model.ErrInvalidInput)
	}
	return v, nil
}

func queryBool(q url.Values, name string) (bool, error) {
	raw := q.Get(name)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: must be a boolean: %w", name, raw, model.ErrInvalidInput)
	}
	return v, nil
}

func (h *HTTPHandler) parseRange(q url.Values, defStart, defEnd uint64, defSample int) (rangeQuery, error) {
	var (
		rq  = rangeQuery{MaxSampleSize: h.cfg.MaxSampleSize}
		err error
	)
	if rq.Start, err = queryUint(q, "start", defStart); err != nil {
		return rangeQuery{}, err
	}
	if rq.End, err = queryUint(q, "end", defEnd); err != nil {
		return rangeQuery{}, err
	}
	if rq.SampleSize, err = queryInt(q, "sampleSize", defSample); err != nil {
		return rangeQuery{}, err
	}
	return rq, validateQuery(rq)
}

func (h *HTTPHandler) parseProgramRange(q url.Values, defStart, defEnd uint64) (programRangeQuery, error) {
	rq, err := h.parseRange(q, defStart, defEnd, h.cfg.ProgramSampleSize)
	if err != nil {
		return programRangeQuery{}, err
	}
	pq := programRangeQuery{rangeQuery: rq, ProgramID: q.Get("programId")}
	if pq.ProgramID == "" {
		pq.ProgramID = h.cfg.ProgramID
	}
	return pq, validateQuery(pq)
}
