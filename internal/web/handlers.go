package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/hanbyul-kim/laborsim/internal/experiment"
	"github.com/hanbyul-kim/laborsim/internal/export"
	"github.com/hanbyul-kim/laborsim/internal/sim"
)

type SimulateRequest struct {
	Process         string             `json:"process"`
	Competitiveness float64            `json:"competitiveness"`
	InitialWage     float64            `json:"initial_wage"`
	Runs            int                `json:"runs"`
	Seed            int64              `json:"seed"`
	Tunables        map[string]float64 `json:"tunables,omitempty"`
}

// cacheKey is stable across map iteration order, so identical requests
// always hit the same entry.
func (req SimulateRequest) cacheKey() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s|%g|%g|%d|%d", req.Process, req.Competitiveness, req.InitialWage, req.Runs, req.Seed)
	if len(req.Tunables) > 0 {
		keys := make([]string, 0, len(req.Tunables))
		for k := range req.Tunables {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&sb, "|%s=%g", k, req.Tunables[k])
		}
	}
	return sb.String()
}

type SimulateHandler struct {
	registry *experiment.Registry
	cache    Cache
}

func NewSimulateHandler(registry *experiment.Registry, cache Cache) *SimulateHandler {
	return &SimulateHandler{registry: registry, cache: cache}
}

func (h *SimulateHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req SimulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Process == "" {
		req.Process = "pull"
	}

	key := req.cacheKey()
	if body, ok := h.cache.Get(key); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Cache", "hit")
		io.WriteString(w, body)
		return
	}

	cfg := experiment.Config{
		Process: req.Process,
		Params: sim.Params{
			Competitiveness: req.Competitiveness,
			InitialWage:     req.InitialWage,
			Runs:            req.Runs,
			Seed:            req.Seed,
		},
		Sim:      sim.DefaultConfig(),
		Tunables: req.Tunables,
	}

	rep, err := experiment.New(cfg, h.registry).Run(r.Context())
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, sim.ErrInvalidParameter) || errors.Is(err, sim.ErrUnknownProcess) {
			status = http.StatusBadRequest
		}
		slog.Warn("simulation failed", "process", req.Process, "status", status, "error", err)
		http.Error(w, err.Error(), status)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteJSON(&buf, export.NewEnvelope(req.Process, cfg.Params, rep)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := h.cache.Set(key, buf.String()); err != nil {
		slog.Warn("cache set failed", "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Cache", "miss")
	w.Write(buf.Bytes())
}

func Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	io.WriteString(w, `{"status":"ok"}`)
}

func Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	io.WriteString(w, indexHTML)
}

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>laborsim</title>
<style>
body { background: #0a0a0a; color: #ddd; font-family: monospace; max-width: 640px; margin: 2rem auto; padding: 0 1rem; }
h1 { color: #00ff00; font-size: 1.4rem; }
label { display: block; margin: 0.6rem 0; }
input, select { background: #161616; color: #ddd; border: 1px solid #333; padding: 0.3rem; font-family: inherit; }
button { background: #00ff00; color: #0a0a0a; border: none; padding: 0.4rem 1.2rem; margin-top: 0.8rem; cursor: pointer; font-family: inherit; }
pre { background: #161616; border: 1px solid #333; padding: 1rem; overflow-x: auto; }
</style>
</head>
<body>
<h1>laborsim</h1>
<p>Wage negotiation simulator. Pick market conditions, run an ensemble, read the report.</p>
<form id="params">
<label>process
<select name="process">
<option value="pull">pull</option>
<option value="negotiation">negotiation</option>
</select>
</label>
<label>competitiveness <input name="competitiveness" type="number" step="0.05" min="0" max="1" value="0.5"></label>
<label>initial wage <input name="initial_wage" type="number" step="100000" min="1" value="3000000"></label>
<label>runs <input name="runs" type="number" min="1" max="10" value="3"></label>
<label>seed <input name="seed" type="number" value="42"></label>
<button type="submit">simulate</button>
</form>
<pre id="out"></pre>
<script>
document.getElementById('params').addEventListener('submit', async (e) => {
  e.preventDefault();
  const f = new FormData(e.target);
  const body = {
    process: f.get('process'),
    competitiveness: parseFloat(f.get('competitiveness')),
    initial_wage: parseFloat(f.get('initial_wage')),
    runs: parseInt(f.get('runs'), 10),
    seed: parseInt(f.get('seed'), 10)
  };
  const resp = await fetch('/api/simulate', {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify(body)
  });
  document.getElementById('out').textContent = await resp.text();
});
</script>
</body>
</html>
`
