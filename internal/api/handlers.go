package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"

	"github.com/alexiusacademia/gorcc/internal/diagram"
	"github.com/alexiusacademia/gorcc/internal/interaction"
	"github.com/alexiusacademia/gorcc/internal/marker"
	"github.com/alexiusacademia/gorcc/internal/section"
)

// Largest request body accepted (bytes)
const maxBody = 1 << 20

// ColumnRequest is the body of the /api/column endpoints
type ColumnRequest struct {
	Section     section.Section    `json:"section"`
	DesignPoint *interaction.Point `json:"design_point,omitempty"`
}

// Check is the verdict for one design point. MRd and Utilisation are null
// when NEd lies beyond the axial capacity of the section.
type Check struct {
	DesignPoint interaction.Point `json:"design_point"`
	Inside      bool              `json:"inside"`
	MRd         *float64          `json:"m_rd"`
	Utilisation *float64          `json:"utilisation"`
}

// EnvelopeResponse is returned by /api/column/envelope
type EnvelopeResponse struct {
	Section  section.Section       `json:"section"`
	Envelope *interaction.Envelope `json:"envelope"`
	Area     float64               `json:"area"`
	Check    *Check                `json:"check,omitempty"`
}

// MarkerResult is one evaluated marker of /api/marker
type MarkerResult struct {
	Raw       string                 `json:"raw"`
	Offset    int                    `json:"offset"`
	Section   section.Section        `json:"section"`
	KeyPoints []interaction.KeyPoint `json:"key_points"`
	Check     *Check                 `json:"check,omitempty"`
}

// MarkerResponse is returned by /api/marker
type MarkerResponse struct {
	Markers []MarkerResult `json:"markers"`
	Errors  []string       `json:"errors"`
}

type errorResponse struct {
	Error     string `json:"error"`
	Field     string `json:"field,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg, field string) {
	writeJSON(w, status, errorResponse{
		Error:     msg,
		Field:     field,
		RequestID: w.Header().Get(RequestIDHeader),
	})
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// decodeColumn reads and validates a ColumnRequest, writing the error
// response itself when it fails
func (s *Server) decodeColumn(w http.ResponseWriter, r *http.Request) (*ColumnRequest, bool) {
	req := ColumnRequest{Section: section.New()}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.metrics.rejected.WithLabelValues(reasonMalformed).Inc()
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request payload: %v", err), "")
		return nil, false
	}

	if err := req.Section.Validate(); err != nil {
		s.metrics.rejected.WithLabelValues(reasonInvalid).Inc()
		var verr *section.ValidationError
		field := ""
		if errors.As(err, &verr) {
			field = verr.Field
		}
		writeError(w, http.StatusUnprocessableEntity, err.Error(), field)
		return nil, false
	}

	if p := req.DesignPoint; p != nil {
		if !finite(p.N) || !finite(p.M) {
			s.metrics.rejected.WithLabelValues(reasonInvalid).Inc()
			writeError(w, http.StatusUnprocessableEntity, "design point must be finite", "design_point")
			return nil, false
		}
		p.M = math.Abs(p.M)
	}
	return &req, true
}

func (s *Server) generate(sec section.Section) *interaction.Envelope {
	env := interaction.GenerateSteps(sec, s.cfg.Steps)
	s.metrics.envelopePoints.Observe(float64(len(env.Points)))
	return env
}

func (s *Server) evaluate(env *interaction.Envelope, p *interaction.Point) *Check {
	if p == nil {
		s.metrics.evaluated(false, false)
		return nil
	}

	c := &Check{DesignPoint: *p, Inside: interaction.IsInside(*p, env)}
	if mRd, ok := interaction.MomentCapacity(env, p.N); ok {
		c.MRd = &mRd
	}
	if u, ok := interaction.Utilisation(env, *p); ok && finite(u) {
		c.Utilisation = &u
	}
	s.metrics.evaluated(true, c.Inside)
	return c
}

func (s *Server) envelope(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeColumn(w, r)
	if !ok {
		return
	}

	env := s.generate(req.Section)
	writeJSON(w, http.StatusOK, EnvelopeResponse{
		Section:  req.Section,
		Envelope: env,
		Area:     interaction.Area(env),
		Check:    s.evaluate(env, req.DesignPoint),
	})
}

func (s *Server) check(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeColumn(w, r)
	if !ok {
		return
	}
	if req.DesignPoint == nil {
		s.metrics.rejected.WithLabelValues(reasonInvalid).Inc()
		writeError(w, http.StatusUnprocessableEntity, "design_point is required", "design_point")
		return
	}

	env := s.generate(req.Section)
	writeJSON(w, http.StatusOK, s.evaluate(env, req.DesignPoint))
}

func (s *Server) svg(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeColumn(w, r)
	if !ok {
		return
	}

	env := s.generate(req.Section)
	s.evaluate(env, req.DesignPoint)

	data := diagram.InteractionDiagramData{
		Title:    fmt.Sprintf("%.0fx%.0f fck=%.0f fyk=%.0f", req.Section.B, req.Section.H, req.Section.Fck, req.Section.Fyk),
		Envelope: env,
		Design:   req.DesignPoint,
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	if err := diagram.WriteSVG(w, data, diagram.DefaultSVGOptions()); err != nil {
		s.logger.Error("rendering svg", "error", err, "request_id", RequestID(r.Context()))
	}
}

func (s *Server) markers(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBody))
	if err != nil {
		s.metrics.rejected.WithLabelValues(reasonMalformed).Inc()
		writeError(w, http.StatusBadRequest, fmt.Sprintf("reading body: %v", err), "")
		return
	}

	found, errs := marker.ParseAll(string(body))
	if len(found) == 0 && len(errs) == 0 {
		s.metrics.rejected.WithLabelValues(reasonInvalid).Inc()
		writeError(w, http.StatusUnprocessableEntity, marker.ErrNoMarker.Error(), "")
		return
	}

	resp := MarkerResponse{Markers: []MarkerResult{}, Errors: []string{}}
	for _, m := range found {
		env := s.generate(m.Section)
		resp.Markers = append(resp.Markers, MarkerResult{
			Raw:       m.Raw,
			Offset:    m.Offset,
			Section:   m.Section,
			KeyPoints: env.KeyPoints(),
			Check:     s.evaluate(env, m.Design),
		})
	}
	for _, err := range errs {
		s.metrics.rejected.WithLabelValues(reasonInvalid).Inc()
		resp.Errors = append(resp.Errors, err.Error())
	}
	writeJSON(w, http.StatusOK, resp)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
