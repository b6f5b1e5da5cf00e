package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/cbodonnell/oblique/pkg/kinematic"
	"github.com/cbodonnell/oblique/pkg/log"
	"github.com/cbodonnell/oblique/pkg/query"
)

// MaxSteps bounds the number of samples a single request can ask for.
const MaxSteps = 10000

type SummaryResponse struct {
	Gravity float64       `json:"gravity"`
	Launch  *query.Launch `json:"launch"`
}

type StateResponse struct {
	T       float64          `json:"t"`
	Outcome string           `json:"outcome"`
	Landed  bool             `json:"landed"`
	State   *kinematic.State `json:"state,omitempty"`
}

type TrajectoryResponse struct {
	Gravity float64            `json:"gravity"`
	Launch  *query.Launch      `json:"launch"`
	Samples []kinematic.Sample `json:"samples"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// writeJSON encodes v before writing the status so that an encoding failure
// is reported as a 500 instead of an empty success.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		log.Error("failed to encode response: %v", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprintln(w, `{"error":"failed to encode response"}`)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Debug("failed to write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

func parseFloat(r *http.Request, name string) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, fmt.Errorf("missing query parameter: %s", name)
	}
	v, err := query.ParseNumber(raw)
	if err != nil {
		return 0, fmt.Errorf("query parameter %s: %w", name, err)
	}
	return v, nil
}

// engineFor returns the engine to use for a request. The gravity and body
// query parameters override the server default.
func engineFor(r *http.Request, fallback kinematic.Engine) (kinematic.Engine, error) {
	q := r.URL.Query()
	if body := q.Get("body"); body != "" {
		g, ok := kinematic.GravityFor(body)
		if !ok {
			return kinematic.Engine{}, fmt.Errorf("unknown body: %s", body)
		}
		return kinematic.NewEngine(g)
	}
	if q.Get("gravity") != "" {
		g, err := parseFloat(r, "gravity")
		if err != nil {
			return kinematic.Engine{}, err
		}
		return kinematic.NewEngine(g)
	}
	return fallback, nil
}

// parseLaunch reads the angle and speed parameters and validates the launch.
func parseLaunch(r *http.Request, fallback kinematic.Engine) (*query.Launch, error) {
	engine, err := engineFor(r, fallback)
	if err != nil {
		return nil, err
	}
	angle, err := parseFloat(r, "angle")
	if err != nil {
		return nil, err
	}
	speed, err := parseFloat(r, "speed")
	if err != nil {
		return nil, err
	}
	return query.NewLaunch(engine, kinematic.LaunchParameters{AngleDegrees: angle, InitialSpeed: speed})
}

func parseSteps(r *http.Request, fallback int) (int, error) {
	raw := r.URL.Query().Get("steps")
	if raw == "" {
		return fallback, nil
	}
	steps, err := strconv.Atoi(raw)
	if err != nil || steps <= 0 || steps > MaxSteps {
		return 0, fmt.Errorf("steps must be an integer between 1 and %d", MaxSteps)
	}
	return steps, nil
}

func HandleSummary(engine kinematic.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		launch, err := parseLaunch(r, engine)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		writeJSON(w, http.StatusOK, SummaryResponse{Gravity: launch.Gravity(), Launch: launch})
	}
}

// HandleState reports the state at time t. A landed projectile is a normal
// outcome and is answered with 200 and no state.
func HandleState(engine kinematic.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		launch, err := parseLaunch(r, engine)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		t, err := parseFloat(r, "t")
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		outcome, state, err := launch.At(t)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		writeJSON(w, http.StatusOK, StateResponse{
			T:       t,
			Outcome: outcome.String(),
			Landed:  outcome == query.OutcomeLanded,
			State:   state,
		})
	}
}

func HandleTrajectory(engine kinematic.Engine, defaultSteps int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		launch, err := parseLaunch(r, engine)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		steps, err := parseSteps(r, defaultSteps)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		writeJSON(w, http.StatusOK, TrajectoryResponse{
			Gravity: launch.Gravity(),
			Launch:  launch,
			Samples: launch.Trajectory(steps),
		})
	}
}

// parseInterval reads the optional pacing interval of the stream, e.g. "20ms".
func parseInterval(r *http.Request) (time.Duration, error) {
	raw := r.URL.Query().Get("interval")
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid interval: %v", err)
	}
	if d < 0 || d > time.Second {
		return 0, errors.New("interval must be between 0 and 1s")
	}
	return d, nil
}
