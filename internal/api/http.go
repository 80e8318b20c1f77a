package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/pkg/errors"

	"vec3/internal/geometry/vector"
	"vec3/internal/mathutil"
	"vec3/internal/transform"
)

type Server struct {
	log *log.Logger
	mux *http.ServeMux
}

func NewServer(logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{log: logger, mux: http.NewServeMux()}
	s.routes()
	return s
}

func (s *Server) Handler() http.Handler { return s.mux }

func (s *Server) routes() {
	s.mux.HandleFunc("/health", s.health)
	s.mux.HandleFunc("/ops", s.ops)
	s.mux.HandleFunc("/eval", s.eval)
	s.mux.HandleFunc("/transform", s.transform)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Server) ops(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{"ops": OpNames()})
}

func (s *Server) eval(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	res, err := Evaluate(req)
	if err != nil {
		s.log.Printf("eval %s: %v", req.Op, err)
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	writeJSON(w, map[string]any{"op": req.Op, "result": FormatResult(res)})
}

func (s *Server) transform(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}

	var body struct {
		Point string `json:"point"`
		Steps []struct {
			Name string `json:"name"`
			Arg  string `json:"arg,omitempty"`
		} `json:"steps"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	if len(body.Steps) == 0 {
		http.Error(w, "steps required", http.StatusBadRequest)
		return
	}

	p, err := vector.Parse(body.Point)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	chain := &transform.Chain{}
	for i, st := range body.Steps {
		step, err := transform.ParseStep(st.Name, st.Arg)
		if err != nil {
			err = errors.Wrapf(err, "step %d", i+1)
			s.log.Printf("transform: %v", err)
			http.Error(w, err.Error(), statusFor(err))
			return
		}
		chain.Steps = append(chain.Steps, step)
	}

	out, warning := chain.Apply(p)
	resp := map[string]any{"result": out.String(), "steps": len(chain.Steps)}
	if warning != "" {
		resp["warning"] = warning
	}
	writeJSON(w, resp)
}

// statusFor maps operand errors to 422 and everything else to 400
func statusFor(err error) int {
	var pe *vector.ParseError
	if errors.As(err, &pe) || errors.Is(err, mathutil.ErrZeroModulus) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusBadRequest
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
