package server

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/algotrace/pkg/buildinfo"
	"github.com/matzehuels/algotrace/pkg/catalog"
	"github.com/matzehuels/algotrace/pkg/errors"
	"github.com/matzehuels/algotrace/pkg/render/nodelink"
	"github.com/matzehuels/algotrace/pkg/trace"
)

// maxBodyBytes bounds POST bodies.
const maxBodyBytes = 1 << 20

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type healthBody struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

// summary is the catalog entry returned by the list route.
type summary struct {
	Name        string           `json:"name"`
	Title       string           `json:"title"`
	Category    catalog.Category `json:"category"`
	Kind        trace.Kind       `json:"kind"`
	Description string           `json:"description"`
	Params      []catalog.Param  `json:"params"`
}

type traceRequest struct {
	Params map[string]string `json:"params"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthBody{Status: "ok", Build: buildinfo.Get()})
}

func (s *Server) listAlgorithms(w http.ResponseWriter, r *http.Request) {
	algs := catalog.All()
	out := make([]summary, len(algs))
	for i, a := range algs {
		out[i] = summary{
			Name:        a.Name,
			Title:       a.Title,
			Category:    a.Category,
			Kind:        a.Kind,
			Description: a.Description,
			Params:      a.Params,
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) getAlgorithm(w http.ResponseWriter, r *http.Request) {
	alg, err := catalog.Lookup(chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, alg)
}

// postTrace generates a trace. ?format=yaml returns YAML instead of JSON.
func (s *Server) postTrace(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = trace.FormatJSON
	}
	if format != trace.FormatJSON && format != trace.FormatYAML {
		writeError(w, errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (want json or yaml)", format))
		return
	}

	var req traceRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil && !stderrors.Is(err, io.EOF) {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidFormat, err, "malformed request body"))
		return
	}

	alg, t, err := s.generate(r, chi.URLParam(r, "name"), req.Params)
	if err != nil {
		writeError(w, err)
		return
	}
	data, err := trace.Marshal(alg.Export(t, req.Params), format)
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "encode trace"))
		return
	}

	contentType := "application/json"
	if format == trace.FormatYAML {
		contentType = "application/yaml"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) stepSVG(w http.ResponseWriter, r *http.Request) {
	step, opts, err := s.step(r)
	if err != nil {
		writeError(w, err)
		return
	}
	svg, err := nodelink.StepSVG(r.Context(), step, opts)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(svg)
}

func (s *Server) stepDOT(w http.ResponseWriter, r *http.Request) {
	step, opts, err := s.step(r)
	if err != nil {
		writeError(w, err)
		return
	}
	dot, err := nodelink.ToDOT(step, opts)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/vnd.graphviz")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(dot))
}

// step generates the trace named in the route and returns the requested
// step. The "detailed" query value is a render option; every other query
// value is an algorithm parameter.
func (s *Server) step(r *http.Request) (trace.Step, nodelink.Options, error) {
	var opts nodelink.Options
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		return trace.Step{}, opts, errors.New(errors.ErrCodeInvalidNumber, "step index %q is not an integer", chi.URLParam(r, "index"))
	}

	params := make(map[string]string)
	for k, vs := range r.URL.Query() {
		if len(vs) == 0 {
			continue
		}
		if k == "detailed" {
			opts.Detailed, _ = strconv.ParseBool(vs[0])
			continue
		}
		params[k] = vs[len(vs)-1]
	}

	_, t, err := s.generate(r, chi.URLParam(r, "name"), params)
	if err != nil {
		return trace.Step{}, opts, err
	}
	if index < 0 || index >= t.Len() {
		return trace.Step{}, opts, errors.New(errors.ErrCodeStepNotFound, "step %d does not exist; the trace has %d steps", index, t.Len())
	}
	return t.Steps[index], opts, nil
}

func (s *Server) generate(r *http.Request, name string, params map[string]string) (*catalog.Algorithm, trace.Trace, error) {
	alg, err := catalog.Lookup(name)
	if err != nil {
		return nil, trace.Trace{}, err
	}
	t, err := alg.Run(r.Context(), params)
	if err != nil {
		return nil, trace.Trace{}, err
	}
	if err := catalog.CheckSteps(t, s.opts.MaxSteps); err != nil {
		return nil, trace.Trace{}, err
	}
	return alg, t, nil
}

// =============================================================================
// Responses
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	writeJSON(w, statusFor(code), errorBody{Code: string(code), Message: errors.UserMessage(err)})
}

func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeUnknownAlgorithm, errors.ErrCodeStepNotFound:
		return http.StatusNotFound
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidNumber, errors.ErrCodeInvalidGraph,
		errors.ErrCodeOutOfRange, errors.ErrCodeUnknownNode, errors.ErrCodeUnknownParam,
		errors.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case errors.ErrCodeUnsupported:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
