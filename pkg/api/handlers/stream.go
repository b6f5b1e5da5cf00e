package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/cbodonnell/oblique/pkg/kinematic"
	"github.com/cbodonnell/oblique/pkg/log"
	"github.com/cbodonnell/oblique/pkg/query"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

// HandleTrajectoryStream upgrades to a websocket and sends one state per
// trajectory sample, optionally paced by the interval parameter, then closes
// the connection normally. Parameter errors are reported before upgrading.
func HandleTrajectoryStream(engine kinematic.Engine, defaultSteps int) http.HandlerFunc {
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
		interval, err := parseInterval(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"},
		})
		if err != nil {
			log.Error("failed to accept websocket: %v", err)
			return
		}
		defer conn.CloseNow()

		ctx := conn.CloseRead(r.Context())
		if err := streamStates(ctx, conn, launch, launch.Trajectory(steps), interval); err != nil {
			if !errors.Is(err, context.Canceled) {
				log.Warn("trajectory stream ended early: %v", err)
			}
			return
		}
		conn.Close(websocket.StatusNormalClosure, "trajectory complete")
	}
}

func streamStates(ctx context.Context, conn *websocket.Conn, launch *query.Launch, samples []kinematic.Sample, interval time.Duration) error {
	var ticker *time.Ticker
	if interval > 0 {
		ticker = time.NewTicker(interval)
		defer ticker.Stop()
	}
	for i, sample := range samples {
		if ticker != nil && i > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
			}
		}
		_, state, err := launch.At(sample.T)
		if err != nil {
			return err
		}
		if state == nil {
			break
		}
		if err := wsjson.Write(ctx, conn, state); err != nil {
			return err
		}
	}
	return nil
}
