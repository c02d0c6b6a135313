package main

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/graphdl/taskparse"
	"github.com/graphdl/taskparse/titles"
)

// ---- JSON response types ------------------------------------------------

type statementJSON struct {
	Original       string          `json:"original"`
	Predicate      string          `json:"predicate,omitempty"`
	Object         string          `json:"object,omitempty"`
	Preposition    string          `json:"preposition,omitempty"`
	Complement     string          `json:"complement,omitempty"`
	Modifiers      []string        `json:"modifiers,omitempty"`
	Confidence     float64         `json:"confidence"`
	UnknownWords   []string        `json:"unknown_words,omitempty"`
	HasConjunction bool            `json:"has_conjunction"`
	Expansions     []statementJSON `json:"expansions,omitempty"`
}

type parseResponse struct {
	Statement statementJSON `json:"statement"`
	GraphDL   string        `json:"graphdl"`
}

type batchRequest struct {
	Statements []string `json:"statements"`
}

type batchResponse struct {
	Results []parseResponse `json:"results"`
}

type graphdlResponse struct {
	Statement string `json:"statement"`
	GraphDL   string `json:"graphdl"`
}

type expandResponse struct {
	Phrase       string   `json:"phrase"`
	Alternatives []string `json:"alternatives"`
}

type titlesResponse struct {
	Title  string   `json:"title"`
	Titles []string `json:"titles"`
}

type unknownWordsResponse struct {
	Distinct int    `json:"distinct"`
	Report   string `json:"report"`
}

type healthResponse struct {
	Status       string         `json:"status"`
	Uptime       string         `json:"uptime"`
	Lexicon      map[string]int `json:"lexicon"`
	UnknownWords int            `json:"unknown_words"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func toStatementJSON(st *taskparse.ParsedStatement) statementJSON {
	out := statementJSON{
		Original:       st.Original,
		Predicate:      st.Predicate,
		Object:         st.Object,
		Preposition:    st.Preposition,
		Complement:     st.Complement,
		Modifiers:      st.Modifiers,
		Confidence:     st.Confidence,
		UnknownWords:   st.UnknownWords,
		HasConjunction: st.HasConjunction,
	}
	for _, child := range st.Expansions {
		out.Expansions = append(out.Expansions, toStatementJSON(child))
	}
	return out
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// ---- service ------------------------------------------------------------

// service holds the parser behind a lock so the lexicon watcher can swap in
// a freshly loaded one without disturbing in-flight requests.
type service struct {
	mu      sync.RWMutex
	parser  *taskparse.Parser
	unknown *taskparse.UnknownWords
	cfg     *Config
	started time.Time
}

func newService(p *taskparse.Parser, cfg *Config) *service {
	return &service{
		parser:  p,
		unknown: taskparse.NewUnknownWords(),
		cfg:     cfg,
		started: time.Now(),
	}
}

func (s *service) current() *taskparse.Parser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.parser
}

func (s *service) swap(p *taskparse.Parser) {
	s.mu.Lock()
	s.parser = p
	s.mu.Unlock()
}

// withRequestID tags every request with an id, echoes it back, and logs the
// request once served.
func (s *service) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debug("request",
			zap.String("request_id", id),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("elapsed", time.Since(start)))
	})
}

// ---- handlers -----------------------------------------------------------

func (s *service) handleParse() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		text := r.URL.Query().Get("statement")
		if text == "" {
			writeError(w, http.StatusBadRequest, "missing 'statement' query parameter")
			return
		}
		p := s.current()
		st := p.Parse(text)
		s.unknown.Record(st)
		writeJSON(w, http.StatusOK, parseResponse{
			Statement: toStatementJSON(st),
			GraphDL:   p.ToGraphDL(st),
		})
	}
}

func (s *service) handleParseBatch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var body batchRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || len(body.Statements) == 0 {
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'statements' array")
			return
		}
		if len(body.Statements) > s.cfg.BatchLimit {
			writeError(w, http.StatusRequestEntityTooLarge, "too many statements in one batch")
			return
		}

		p := s.current()
		results := make([]parseResponse, len(body.Statements))
		g, _ := errgroup.WithContext(r.Context())
		g.SetLimit(s.cfg.BatchConcurrency)
		for i, text := range body.Statements {
			g.Go(func() error {
				st := p.Parse(text)
				s.unknown.Record(st)
				results[i] = parseResponse{
					Statement: toStatementJSON(st),
					GraphDL:   p.ToGraphDL(st),
				}
				return nil
			})
		}
		// Parsing never fails; the group only bounds concurrency.
		_ = g.Wait()
		writeJSON(w, http.StatusOK, batchResponse{Results: results})
	}
}

func (s *service) handleGraphDL() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		text := r.URL.Query().Get("statement")
		if text == "" {
			writeError(w, http.StatusBadRequest, "missing 'statement' query parameter")
			return
		}
		p := s.current()
		st := p.Parse(text)
		s.unknown.Record(st)
		writeJSON(w, http.StatusOK, graphdlResponse{
			Statement: st.Original,
			GraphDL:   p.ToGraphDL(st),
		})
	}
}

func (s *service) handleExpand() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		phrase := r.URL.Query().Get("phrase")
		if phrase == "" {
			writeError(w, http.StatusBadRequest, "missing 'phrase' query parameter")
			return
		}
		writeJSON(w, http.StatusOK, expandResponse{
			Phrase:       phrase,
			Alternatives: s.current().Expand(phrase),
		})
	}
}

func (s *service) handleTitles() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		title := r.URL.Query().Get("title")
		if title == "" {
			writeError(w, http.StatusBadRequest, "missing 'title' query parameter")
			return
		}
		writeJSON(w, http.StatusOK, titlesResponse{
			Title:  title,
			Titles: titles.Expand(title),
		})
	}
}

func (s *service) handleUnknownWords() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		writeJSON(w, http.StatusOK, unknownWordsResponse{
			Distinct: s.unknown.Len(),
			Report:   s.unknown.Report(),
		})
	}
}

func (s *service) handleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, healthResponse{
			Status:       "ok",
			Uptime:       time.Since(s.started).Round(time.Second).String(),
			Lexicon:      s.current().Lexicon().Size(),
			UnknownWords: s.unknown.Len(),
		})
	}
}
