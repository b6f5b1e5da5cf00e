package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/cbodonnell/oblique/pkg/kinematic"
)

const (
	Banner        = "=== Oblique Projectile Motion Calculator ==="
	LandedMessage = "! The object has already hit the ground."
)

// fixed formats v with two decimals. Values that round to zero are printed
// without a sign so a landing height of -1e-15 reads as 0.00.
func fixed(v float64) string {
	if math.Abs(v) < 0.005 {
		v = 0
	}
	return fmt.Sprintf("%.2f", v)
}

// FormatSummary returns the human readable launch summary.
func FormatSummary(s kinematic.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Maximum height: %s m\n", fixed(s.MaxHeight))
	fmt.Fprintf(&b, "Horizontal range: %s m\n", fixed(s.Range))
	fmt.Fprintf(&b, "Total flight time: %s s\n", fixed(s.FlightTime))
	return b.String()
}

// FormatState returns the human readable state of the projectile at a given time.
func FormatState(st kinematic.State) string {
	var b strings.Builder
	fmt.Fprintf(&b, "At t = %s s:\n", fixed(st.T))
	fmt.Fprintf(&b, "  ➤ Horizontal velocity: %s m/s\n", fixed(st.Velocity.VX))
	fmt.Fprintf(&b, "  ➤ Vertical velocity: %s m/s\n", fixed(st.Velocity.VY))
	fmt.Fprintf(&b, "  ➤ Total speed: %s m/s\n", fixed(st.Velocity.Speed))
	fmt.Fprintf(&b, "  ➤ Position: (%s, %s) m\n", fixed(st.Position.X), fixed(st.Position.Y))
	return b.String()
}

// FormatMarkerLabel returns the legend label of the queried instant.
func FormatMarkerLabel(t float64) string {
	return fmt.Sprintf("t = %ss", fixed(t))
}

func WriteSummary(w io.Writer, s kinematic.Summary) error {
	_, err := fmt.Fprintf(w, "\n%s", FormatSummary(s))
	return err
}

func WriteState(w io.Writer, st kinematic.State) error {
	_, err := fmt.Fprintf(w, "\n%s", FormatState(st))
	return err
}

func WriteLanded(w io.Writer) error {
	_, err := fmt.Fprintln(w, LandedMessage)
	return err
}
