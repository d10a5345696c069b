// Package transport exposes the slot cache over HTTP and gRPC health checks.
package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/creasty/defaults"
	"github.com/goodnatureofminers/slotinsight-backend/internal/slotcache/model"
	"github.com/goodnatureofminers/slotinsight-backend/internal/slotcache/service/resolver"
	"github.com/goodnatureofminers/slotinsight-backend/internal/slotcache/service/sampler"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"
)

const maxRecentBlocks = 100

// HTTPHandler serves the JSON API.
type HTTPHandler struct {
	resolver Resolver
	analyzer Analyzer
	reporter Reporter
	logs     RequestLogSink
	logger   *zap.Logger
	cfg      Config
	now      func() time.Time
}

// NewHTTPHandler builds an HTTPHandler. Zero fields of cfg take their defaults.
func NewHTTPHandler(
	blockResolver Resolver,
	analyzer Analyzer,
	reporter Reporter,
	logs RequestLogSink,
	logger *zap.Logger,
	cfg Config,
) (*HTTPHandler, error) {
	if err := defaults.Set(&cfg); err != nil {
		return nil, fmt.Errorf("set http defaults: %w", err)
	}
	if cfg.EventEnd <= cfg.EventStart {
		return nil, fmt.Errorf("event window [%d, %d) is empty", cfg.EventStart, cfg.EventEnd)
	}
	return &HTTPHandler{
		resolver: blockResolver,
		analyzer: analyzer,
		reporter: reporter,
		logs:     logs,
		logger:   logger,
		cfg:      cfg,
		now:      time.Now,
	}, nil
}

// Register binds the API routes to mux.
func (h *HTTPHandler) Register(mux *gwruntime.ServeMux) error {
	routes := []struct {
		path    string
		handler gwruntime.HandlerFunc
	}{
		{path: "/api/blocks/{slot}", handler: h.getBlock},
		{path: "/api/blocks", handler: h.listBlocks},
		{path: "/api/heights/{height}", handler: h.getBlockByHeight},
		{path: "/api/current-slot", handler: h.getCurrentSlot},
		{path: "/api/stats", handler: h.getStats},
		{path: "/api/range", handler: h.getRange},
		{path: "/api/program-range", handler: h.getProgramRange},
		{path: "/api/outage-analysis", handler: h.getOutageAnalysis},
		{path: "/api/program-outage-analysis", handler: h.getProgramOutageAnalysis},
	}
	for _, route := range routes {
		if err := mux.HandlePath(http.MethodGet, route.path, route.handler); err != nil {
			return fmt.Errorf("register %s: %w", route.path, err)
		}
	}
	return nil
}

func (h *HTTPHandler) getBlock(w http.ResponseWriter, r *http.Request, params map[string]string) {
	started := time.Now()
	slot, err := parseUint("slot", params["slot"])
	if err != nil {
		h.logRejected(r, started, err)
		h.writeError(w, "Invalid slot parameter. Must be a non-negative integer.", err)
		return
	}

	block, hit, err := h.resolver.ResolveBlock(withRequestInfo(r), slot)
	if err != nil {
		h.writeError(w, "Failed to fetch block data", err)
		return
	}
	h.writeJSON(w, http.StatusOK, newBlockResponse(block, hit))
}

func (h *HTTPHandler) getBlockByHeight(w http.ResponseWriter, r *http.Request, params map[string]string) {
	started := time.Now()
	height, err := parseUint("height", params["height"])
	if err != nil {
		h.logRejected(r, started, err)
		h.writeError(w, "Invalid height parameter. Must be a non-negative integer.", err)
		return
	}

	block, hit, err := h.resolver.ResolveBlockByHeight(withRequestInfo(r), height)
	if err != nil {
		h.writeError(w, "Failed to fetch block data", err)
		return
	}
	h.writeJSON(w, http.StatusOK, newBlockResponse(block, hit))
}

func (h *HTTPHandler) getCurrentSlot(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	fetchBlock, err := queryBool(r.URL.Query(), "fetchBlock")
	if err != nil {
		h.writeError(w, "Invalid fetchBlock parameter", err)
		return
	}

	if !fetchBlock {
		slot, err := h.resolver.CurrentSlot(r.Context())
		if err != nil {
			h.writeError(w, "Failed to fetch current slot", err)
			return
		}
		h.writeJSON(w, http.StatusOK, currentSlotResponse{CurrentSlot: slot, Timestamp: h.now().UnixMilli()})
		return
	}

	slot, block, hit, err := h.resolver.ResolveCurrent(withRequestInfo(r))
	if err != nil {
		h.writeError(w, "Failed to fetch current slot", err)
		return
	}
	body := newBlockResponse(block, hit)
	h.writeJSON(w, http.StatusOK, currentSlotResponse{CurrentSlot: slot, Timestamp: h.now().UnixMilli(), Block: &body})
}

func (h *HTTPHandler) listBlocks(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	limit, err := queryInt(r.URL.Query(), "limit", 10)
	if err == nil {
		err = validateQuery(listQuery{Limit: limit})
	}
	if err != nil {
		h.writeError(w, "Invalid limit parameter", err)
		return
	}
	if limit > maxRecentBlocks {
		limit = maxRecentBlocks
	}

	ctx := r.Context()
	blocks, err := h.reporter.RecentBlocks(ctx, limit)
	if err != nil {
		h.writeError(w, "Failed to fetch blocks", err)
		return
	}
	s, err := h.reporter.CacheStatistics(ctx, time.Duration(h.cfg.StatsWindowSecs)*time.Second)
	if err != nil {
		h.writeError(w, "Failed to fetch blocks", err)
		return
	}

	resp := recentBlocksResponse{
		Stats:        newStatsBody(s),
		RecentBlocks: make([]recentBlockResponse, 0, len(blocks)),
		Count:        len(blocks),
	}
	for _, b := range blocks {
		resp.RecentBlocks = append(resp.RecentBlocks, recentBlockResponse{
			Slot:             b.Slot,
			BlockHeight:      b.Height,
			BlockTime:        b.Time,
			TransactionCount: b.TransactionCount,
			Blockhash:        b.Hash,
			CachedAt:         b.CreatedAt,
		})
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *HTTPHandler) getStats(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	secs, err := queryInt(r.URL.Query(), "windowSeconds", h.cfg.StatsWindowSecs)
	if err == nil {
		err = validateQuery(statsQuery{WindowSeconds: secs})
	}
	if err != nil {
		h.writeError(w, "Invalid windowSeconds parameter", err)
		return
	}

	s, err := h.reporter.CacheStatistics(r.Context(), time.Duration(secs)*time.Second)
	if err != nil {
		h.writeError(w, "Failed to fetch statistics", err)
		return
	}
	h.writeJSON(w, http.StatusOK, statsResponse{Stats: newStatsBody(s), Timestamp: h.now().UnixMilli()})
}

func (h *HTTPHandler) getRange(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	q, err := h.parseRange(r.URL.Query(), 0, 0, h.cfg.SampleSize)
	if err != nil {
		h.writeError(w, "Invalid range parameters", err)
		return
	}

	a, err := h.analyzer.AnalyzeRange(withRequestInfo(r), q.Start, q.End, q.SampleSize)
	if err != nil {
		h.writeError(w, "Failed to analyze range", err)
		return
	}
	h.writeJSON(w, http.StatusOK, rangeResponse{
		SlotRange:  slotRange{Start: a.Start, End: a.End},
		SampleSize: q.SampleSize,
		Metrics:    newRangeMetrics(a),
		Note:       estimateNote,
	})
}

func (h *HTTPHandler) getProgramRange(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	q, err := h.parseProgramRange(r.URL.Query(), 0, 0)
	if err != nil {
		h.writeError(w, "Invalid range parameters", err)
		return
	}

	a, err := h.analyzer.AnalyzeProgramRange(withRequestInfo(r), q.Start, q.End, q.ProgramID, q.SampleSize)
	if err != nil {
		h.writeError(w, "Failed to analyze program range", err)
		return
	}
	h.writeJSON(w, http.StatusOK, programRangeResponse{
		ProgramID:  a.ProgramID,
		SlotRange:  slotRange{Start: a.Start, End: a.End},
		SampleSize: q.SampleSize,
		Metrics:    newProgramMetrics(a),
		Note:       estimateNote,
	})
}

func (h *HTTPHandler) getOutageAnalysis(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	started := time.Now()
	q, err := h.parseRange(r.URL.Query(), h.cfg.EventStart, h.cfg.EventEnd, h.cfg.SampleSize)
	if err != nil {
		h.writeError(w, "Invalid event window", err)
		return
	}

	c, err := h.analyzer.CompareEvent(withRequestInfo(r), sampler.EventWindow{Start: q.Start, End: q.End}, q.SampleSize)
	if err != nil {
		h.writeError(w, "Failed to analyze outage", err)
		return
	}
	h.writeJSON(w, http.StatusOK, newComparisonResponse(c, time.Since(started)))
}

func (h *HTTPHandler) getProgramOutageAnalysis(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	started := time.Now()
	q, err := h.parseProgramRange(r.URL.Query(), h.cfg.EventStart, h.cfg.EventEnd)
	if err != nil {
		h.writeError(w, "Invalid event window", err)
		return
	}

	c, err := h.analyzer.CompareProgramEvent(withRequestInfo(r), sampler.EventWindow{Start: q.Start, End: q.End}, q.ProgramID, q.SampleSize)
	if err != nil {
		h.writeError(w, "Failed to analyze program outage", err)
		return
	}
	h.writeJSON(w, http.StatusOK, newProgramComparisonResponse(c, time.Since(started)))
}

func withRequestInfo(r *http.Request) context.Context {
	return resolver.WithRequestInfo(r.Context(), r.URL.Path, r.Method)
}

// logRejected records a request that failed validation before resolution.
func (h *HTTPHandler) logRejected(r *http.Request, started time.Time, err error) {
	if h.logs == nil {
		return
	}
	entry := model.RequestLog{
		Endpoint:       r.URL.Path,
		Method:         r.Method,
		ResponseTimeMs: uint32(time.Since(started).Milliseconds()),
		StatusCode:     uint16(model.StatusCode(err)),
		ErrorMessage:   err.Error(),
		CreatedAt:      h.now().UTC(),
	}
	if logErr := h.logs.AppendRequestLog(context.WithoutCancel(r.Context()), entry); logErr != nil {
		h.logger.Warn("request log not written", zap.String("endpoint", entry.Endpoint), zap.Error(logErr))
	}
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, title string, err error) {
	status := model.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error(title, zap.Error(err))
	}
	h.writeJSON(w, status, errorResponse{Error: title, Message: err.Error()})
}

func (h *HTTPHandler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Warn("response not written", zap.Error(err))
	}
}
