package continuous

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"math"
	"strconv"
	"strings"
)

// jsonFloat round-trips non-finite values through JSON by encoding them as
// the strings "NaN", "+Inf" and "-Inf"; encoding/json rejects them as bare
// numbers.
type jsonFloat float64

// MarshalJSON encodes finite values as numbers and non-finite ones as
// strings.
func (f jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return []byte(`"NaN"`), nil
	case math.IsInf(v, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Inf"`), nil
	default:
		return json.Marshal(v)
	}
}

// UnmarshalJSON accepts either a JSON number or one of the non-finite
// string encodings.
func (f *jsonFloat) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err == nil {
		*f = jsonFloat(v)

		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "NaN":
		*f = jsonFloat(math.NaN())
	case "+Inf", "Inf":
		*f = jsonFloat(math.Inf(1))
	case "-Inf":
		*f = jsonFloat(math.Inf(-1))
	default:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("continuous: cannot decode %q as float", s)
		}
		*f = jsonFloat(v)
	}

	return nil
}

func toJSONFloats(values []float64) []jsonFloat {
	out := make([]jsonFloat, len(values))
	for i, v := range values {
		out[i] = jsonFloat(v)
	}

	return out
}

func fromJSONFloats(values []jsonFloat) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}

	return out
}

// signalJSON is the wire form of a Signal.
type signalJSON struct {
	Domain       []jsonFloat      `json:"domain"`
	Range        []jsonFloat      `json:"range"`
	Interpolator interpolatorJSON `json:"interpolator"`
	Extrapolator extrapolatorJSON `json:"extrapolator"`
}

type interpolatorJSON struct {
	Method string  `json:"method"`
	Window int     `json:"window"`
	Scale  float64 `json:"scale"`
}

type extrapolatorJSON struct {
	Method string    `json:"method"`
	Left   jsonFloat `json:"left"`
	Right  jsonFloat `json:"right"`
}

// MarshalJSON encodes the signal's samples and configuration.
func (s *Signal) MarshalJSON() ([]byte, error) {
	i := s.interp.normalised()
	e := s.extrap.normalised()

	return json.Marshal(signalJSON{
		Domain: toJSONFloats(s.domain),
		Range:  toJSONFloats(s.values),
		Interpolator: interpolatorJSON{
			Method: i.Method,
			Window: i.Window,
			Scale:  i.Scale,
		},
		Extrapolator: extrapolatorJSON{
			Method: e.Method,
			Left:   jsonFloat(e.Left),
			Right:  jsonFloat(e.Right),
		},
	})
}

// UnmarshalJSON decodes samples and configuration, validating the domain
// and the interpolator method name.
func (s *Signal) UnmarshalJSON(data []byte) error {
	var w signalJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	decoded, err := NewSignal(fromJSONFloats(w.Range), fromJSONFloats(w.Domain),
		WithInterpolatorConfig(InterpolatorConfig{
			Method: w.Interpolator.Method,
			Window: w.Interpolator.Window,
			Scale:  w.Interpolator.Scale,
		}),
		WithExtrapolatorConfig(ExtrapolatorConfig{
			Method: w.Extrapolator.Method,
			Left:   float64(w.Extrapolator.Left),
			Right:  float64(w.Extrapolator.Right),
		}),
	)
	if err != nil {
		return err
	}
	if _, err := lookupInterpolator(decoded.interp.Method); err != nil {
		return err
	}
	*s = *decoded

	return nil
}

// multiSignalsJSON is the wire form of a MultiSignals.
type multiSignalsJSON struct {
	Labels  []string  `json:"labels"`
	Signals []*Signal `json:"signals"`
}

// MarshalJSON encodes labels and channels. Channels are encoded through
// their own Signal wire form; custom Channel implementations are rendered
// onto Signals first.
func (ms *MultiSignals) MarshalJSON() ([]byte, error) {
	w := multiSignalsJSON{Labels: ms.Labels()}
	for _, ch := range ms.channels {
		if sig, ok := ch.(*Signal); ok {
			w.Signals = append(w.Signals, sig)

			continue
		}
		sig, err := NewSignal(ch.Range(), ch.Domain(),
			WithInterpolatorConfig(ch.InterpolatorConfig()),
			WithExtrapolatorConfig(ch.ExtrapolatorConfig()),
		)
		if err != nil {
			return nil, err
		}
		w.Signals = append(w.Signals, sig)
	}

	return json.Marshal(w)
}

// UnmarshalJSON decodes labels and channels into the receiver.
func (ms *MultiSignals) UnmarshalJSON(data []byte) error {
	var w multiSignalsJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if len(w.Labels) != len(w.Signals) {
		return fmt.Errorf("%w: %d labels for %d signals", ErrLabelCardinality, len(w.Labels), len(w.Signals))
	}
	decoded := &MultiSignals{options: gatherOptions()}
	for _, sig := range w.Signals {
		decoded.channels = append(decoded.channels, sig)
	}
	if err := decoded.alignDomains(); err != nil {
		return err
	}
	// SetLabels re-applies duplicate disambiguation, so hand-written
	// payloads with colliding labels cannot reach the tabular builder.
	if err := decoded.SetLabels(w.Labels); err != nil {
		return err
	}
	*ms = *decoded

	return nil
}

// formatFloat renders a value the way the tabular views print it.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// String renders the signal as aligned "domain  value" rows.
func (s *Signal) String() string {
	var b strings.Builder
	for i, x := range s.domain {
		fmt.Fprintf(&b, "[ %s  %s ]\n", formatFloat(x), formatFloat(s.values[i]))
	}

	return b.String()
}

// GoString renders a constructor-shaped representation.
func (s *Signal) GoString() string {
	return fmt.Sprintf("continuous.NewSignal(%#v, %#v)", s.values, s.domain)
}

// String renders the container as aligned rows: the domain sample followed
// by one value per channel, preceded by a label header.
func (ms *MultiSignals) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[ domain  %s ]\n", strings.Join(ms.labels, "  "))
	domain := ms.Domain()
	rows := ms.Range()
	for i, x := range domain {
		cells := make([]string, 0, 1+len(rows[i]))
		cells = append(cells, formatFloat(x))
		for _, v := range rows[i] {
			cells = append(cells, formatFloat(v))
		}
		fmt.Fprintf(&b, "[ %s ]\n", strings.Join(cells, "  "))
	}

	return b.String()
}

// GoString renders a constructor-shaped representation.
func (ms *MultiSignals) GoString() string {
	cols := make([][]float64, len(ms.channels))
	for i, ch := range ms.channels {
		cols[i] = ch.Range()
	}

	return fmt.Sprintf(
		"continuous.NewMultiSignals(continuous.FromColumns(%#v), continuous.WithDomain(%#v), continuous.WithLabels(%#v...))",
		cols, ms.Domain(), ms.labels,
	)
}

// Fingerprint returns a 64-bit FNV-1a digest over the canonical byte form
// of labels, samples and configurations. Equal containers share a
// fingerprint; NaN is canonicalised so undefined cells hash identically.
func (ms *MultiSignals) Fingerprint() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	writeFloat := func(v float64) {
		bits := math.Float64bits(v)
		if math.IsNaN(v) {
			bits = math.Float64bits(math.NaN())
		}
		binary.BigEndian.PutUint64(buf[:], bits)
		h.Write(buf[:])
	}
	for i, ch := range ms.channels {
		h.Write([]byte(ms.labels[i]))
		h.Write([]byte{0})
		ic := ch.InterpolatorConfig().normalised()
		ec := ch.ExtrapolatorConfig().normalised()
		h.Write([]byte(ic.Method))
		binary.BigEndian.PutUint64(buf[:], uint64(ic.Window))
		h.Write(buf[:])
		writeFloat(ic.Scale)
		h.Write([]byte(ec.Method))
		writeFloat(ec.Left)
		writeFloat(ec.Right)
		for _, x := range ch.Domain() {
			writeFloat(x)
		}
		for _, y := range ch.Range() {
			writeFloat(y)
		}
	}

	return h.Sum64()
}
