package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/san-kum/sortscope/internal/algorithms"
	"github.com/san-kum/sortscope/internal/config"
	"github.com/san-kum/sortscope/internal/export"
	"github.com/san-kum/sortscope/internal/trace"
)

const (
	maxBodyBytes   = 1 << 20
	maxExecuteSize = 200
)

type algorithmResponse struct {
	algorithms.Info
	Overview              algorithms.Overview `json:"overview"`
	ComplexityExplanation string              `json:"complexity_explanation"`
}

type presetResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type executeRequest struct {
	Algorithm string `json:"algorithm"`
	Array     []int  `json:"array"`
	// Preset and Size generate the input when Array is empty.
	Preset    string `json:"preset,omitempty"`
	Size      int    `json:"size,omitempty"`
}

type executeResponse struct {
	RunID string `json:"run_id"`
	*export.Document
}

type generateRequest struct {
	Size *int `json:"size"`
}

type generateResponse struct {
	Array []int `json:"array"`
}

type stateResponse struct {
	Position int                `json:"position"`
	State    trace.ArrayState   `json:"state"`
	Step     *export.StepRecord `json:"step"`
	Progress float64            `json:"progress"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(value); err != nil {
		slog.Default().ErrorContext(ctx, "failed to encode JSON response", "error", err)
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, status int, msg string) {
	writeJSON(ctx, w, status, errorResponse{Error: msg})
}

func decode(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(dst)
}

func (s *Server) handleAlgorithms(w http.ResponseWriter, r *http.Request) {
	out := make(map[string]algorithmResponse)
	for _, info := range s.registry.Infos() {
		overview, _ := s.explainer.Overview(info.Key)
		out[info.Key] = algorithmResponse{
			Info:                  info,
			Overview:              overview,
			ComplexityExplanation: s.explainer.ComplexityText(info.Complexity),
		}
	}
	writeJSON(r.Context(), w, http.StatusOK, out)
}

func (s *Server) handlePresets(w http.ResponseWriter, r *http.Request) {
	names := config.ListPresets()
	out := make([]presetResponse, 0, len(names))
	for _, name := range names {
		p, _ := config.GetPreset(name)
		out = append(out, presetResponse{Name: p.Name, Description: p.Description})
	}
	writeJSON(r.Context(), w, http.StatusOK, out)
}

func (s *Server) handleExecute(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req executeRequest
	if err := decode(w, r, &req); err != nil {
		writeError(ctx, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	alg, err := s.registry.Get(req.Algorithm)
	if err != nil {
		writeError(ctx, w, http.StatusBadRequest, "Algorithm not found")
		return
	}

	input := req.Array
	if len(input) == 0 {
		input, err = s.generateInput(req.Preset, req.Size)
		if err != nil {
			writeError(ctx, w, http.StatusBadRequest, err.Error())
			return
		}
	}
	if len(input) > maxExecuteSize {
		writeError(ctx, w, http.StatusBadRequest, fmt.Sprintf("array too large: %d elements (max %d)", len(input), maxExecuteSize))
		return
	}

	key := alg.Info().Key
	tl := alg.Execute(input)
	doc := export.Build(tl, key, s.explainer)

	id := uuid.NewString()
	evicted := s.runs.put(&run{id: id, timeline: tl, document: doc})

	s.metrics.runs.WithLabelValues(key).Inc()
	s.metrics.steps.Observe(float64(tl.Len()))
	s.metrics.cachedRuns.Set(float64(s.runs.len()))
	s.logger.DebugContext(ctx, "run recorded", "run_id", id, "algorithm", key, "size", len(input), "steps", tl.Len(), "evicted", evicted)

	writeJSON(ctx, w, http.StatusOK, executeResponse{RunID: id, Document: doc})
}

func (s *Server) generateInput(preset string, size int) ([]int, error) {
	if size <= 0 {
		size = defaultRandomSize
	}
	if size > maxExecuteSize {
		return nil, fmt.Errorf("array too large: %d elements (max %d)", size, maxExecuteSize)
	}
	if preset == "" {
		return s.randomArray(size), nil
	}
	arr, err := s.presetArray(preset, size)
	if errors.Is(err, config.ErrUnknownPreset) {
		return nil, fmt.Errorf("unknown preset %q", preset)
	}
	return arr, err
}

func (s *Server) handleGenerateArray(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decode(w, r, &req); err != nil {
		writeError(r.Context(), w, http.StatusBadRequest, "Invalid request body")
		return
	}

	size := defaultRandomSize
	if req.Size != nil {
		size = max(minGenerateSize, min(maxGenerateSize, *req.Size))
	}
	writeJSON(r.Context(), w, http.StatusOK, generateResponse{Array: s.randomArray(size)})
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	entry, ok := s.runs.get(r.PathValue("id"))
	if !ok {
		writeError(r.Context(), w, http.StatusNotFound, "Run not found")
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, executeResponse{RunID: entry.id, Document: entry.document})
}

func (s *Server) handleRunState(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	entry, ok := s.runs.get(r.PathValue("id"))
	if !ok {
		writeError(ctx, w, http.StatusNotFound, "Run not found")
		return
	}

	pos, err := strconv.Atoi(r.PathValue("pos"))
	if err != nil {
		writeError(ctx, w, http.StatusBadRequest, "position must be an integer")
		return
	}

	view := entry.timeline.NewView()
	if !view.SetPosition(pos) {
		writeError(ctx, w, http.StatusBadRequest, fmt.Sprintf("position %d out of range [-1, %d]", pos, entry.timeline.Len()-1))
		return
	}

	state, _ := view.CurrentState()
	resp := stateResponse{
		Position: view.Cursor(),
		State:    state,
		Progress: view.Progress(),
	}
	if pos >= 0 {
		rec := entry.document.Steps[pos]
		resp.Step = &rec
	}
	writeJSON(ctx, w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]any{
		"status": "ok",
		"runs":   s.runs.len(),
	})
}
