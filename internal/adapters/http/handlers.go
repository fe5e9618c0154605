package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"svw.info/takuzu/internal/domain"
	"svw.info/takuzu/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
	// DefaultSize is used when a generate request does not name one.
	DefaultSize int
}

func New(uc *usecase.Service, defaultSize int) *Handler {
	return &Handler{UC: uc, DefaultSize: defaultSize}
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/generate", h.handleGenerate)
	mux.HandleFunc("/api/solve", h.handleSolve)
	mux.HandleFunc("/api/validate", h.handleValidate)
	mux.HandleFunc("/api/hint", h.handleHint)
	mux.HandleFunc("/api/move", h.handleMove)
	mux.HandleFunc("/api/save", h.handleSave)
	mux.HandleFunc("/api/load", h.handleLoad)
	mux.HandleFunc("/api/list", h.handleList)
}

// ---- Generate ----

type generateReq struct {
	Difficulty string `json:"difficulty,omitempty"`
	Size       int    `json:"size,omitempty"`
	Seed       int64  `json:"seed,omitempty"`
}

type generateResp struct {
	Grid       domain.Grid `json:"grid,omitempty"`
	Fixed      [][]bool    `json:"fixed,omitempty"`
	Seed       int64       `json:"seed,omitempty"`
	Difficulty string      `json:"difficulty,omitempty"`
	DurationMs int64       `json:"durationMs,omitempty"`
	Probes     int         `json:"probes,omitempty"`
	Error      string      `json:"error,omitempty"`
}

func parseDifficulty(s string) domain.Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return domain.Easy
	case "hard":
		return domain.Hard
	default:
		return domain.Medium
	}
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req generateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err.Error() != "EOF" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(generateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	size := req.Size
	if size == 0 {
		size = h.DefaultSize
	}
	diff := parseDifficulty(req.Difficulty)
	p, st, err := h.UC.Generate(r.Context(), seed, size, diff)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(generateResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(generateResp{
		Grid:       p.Grid,
		Fixed:      p.Fixed,
		Seed:       seed,
		Difficulty: req.Difficulty,
		DurationMs: st.Duration.Milliseconds(),
		Probes:     st.Probes,
	})
}

// ---- Validate ----

type validateReq struct {
	Grid domain.Grid `json:"grid"`
}
type validateResp struct {
	OK        bool              `json:"ok"`
	Violation *domain.Violation `json:"violation,omitempty"`
	Message   string            `json:"message,omitempty"`
	Error     string            `json:"error,omitempty"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req validateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(validateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if req.Grid.Rows() == 0 || !req.Grid.Rectangular() {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(validateResp{Error: "grid is not rectangular"})
		return
	}
	v, err := h.UC.Validate(r.Context(), req.Grid)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(validateResp{Error: err.Error()})
		return
	}
	resp := validateResp{OK: v == nil, Violation: v}
	if v != nil {
		resp.Message = v.String()
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// ---- Solve ----

type solveReq struct {
	Grid domain.Grid `json:"grid"`
}
type solveResp struct {
	Grid       domain.Grid         `json:"grid,omitempty"`
	Moves      []domain.ForcedMove `json:"moves,omitempty"`
	Solved     bool                `json:"solved"`
	Violation  *domain.Violation   `json:"violation,omitempty"`
	DurationMs int64               `json:"durationMs,omitempty"`
	Probes     int                 `json:"probes,omitempty"`
	Error      string              `json:"error,omitempty"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(solveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if req.Grid.Rows() == 0 || !req.Grid.Rectangular() {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(solveResp{Error: "grid is not rectangular"})
		return
	}
	sol, st, err := h.UC.Solve(r.Context(), req.Grid)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(solveResp{Error: err.Error(), DurationMs: st.Duration.Milliseconds(), Probes: st.Probes})
		return
	}
	_ = json.NewEncoder(w).Encode(solveResp{
		Grid:       sol.Grid,
		Moves:      sol.Moves,
		Solved:     sol.Violation == nil && sol.Grid.Full(),
		Violation:  sol.Violation,
		DurationMs: st.Duration.Milliseconds(),
		Probes:     st.Probes,
	})
}

// ---- Hint ----

type hintReq struct {
	Grid domain.Grid `json:"grid"`
}
type hintResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
	Error string      `json:"error,omitempty"`
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req hintReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(hintResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if req.Grid.Rows() == 0 || !req.Grid.Rectangular() {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(hintResp{Error: "grid is not rectangular"})
		return
	}
	hh, ok, err := h.UC.Hint(r.Context(), req.Grid)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(hintResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(hintResp{Found: ok, Hint: hh})
}

// ---- Move ----

type moveReq struct {
	Grid  domain.Grid   `json:"grid"`
	Moves []domain.Move `json:"moves"`
}
type moveResp struct {
	Grid      domain.Grid       `json:"grid,omitempty"`
	Applied   int               `json:"applied"`
	Violation *domain.Violation `json:"violation,omitempty"`
	Message   string            `json:"message,omitempty"`
	Error     string            `json:"error,omitempty"`
}

func (h *Handler) handleMove(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req moveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(moveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if req.Grid.Rows() == 0 || !req.Grid.Rectangular() {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(moveResp{Error: "grid is not rectangular"})
		return
	}
	for _, m := range req.Moves {
		if m.Row < 0 || m.Row >= req.Grid.Rows() || m.Col < 0 || m.Col >= req.Grid.Cols() {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(moveResp{Error: "move out of bounds: " + m.String()})
			return
		}
	}
	g, n, v := h.UC.Apply(r.Context(), req.Grid, req.Moves)
	resp := moveResp{Grid: g, Applied: n, Violation: v}
	if v != nil {
		resp.Message = v.String()
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// ---- Save / Load / List ----

type saveResp struct {
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var p domain.Puzzle
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(saveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if p.ID == "" {
		p.ID = strconv.FormatInt(time.Now().UnixNano(), 10)
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().UnixNano()
	}
	if err := h.UC.Save(r.Context(), &p); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(saveResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(saveResp{ID: p.ID})
}

type loadReq struct {
	ID string `json:"id"`
}
type loadResp struct {
	Puzzle *domain.Puzzle `json:"puzzle,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req loadReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(loadResp{Error: "invalid JSON or missing id"})
		return
	}
	p, err := h.UC.Load(r.Context(), req.ID)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(loadResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(loadResp{Puzzle: p})
}

type listResp struct {
	Puzzles []domain.PuzzleMeta `json:"puzzles"`
	Error   string              `json:"error,omitempty"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	ps, err := h.UC.List(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(listResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(listResp{Puzzles: ps})
}
