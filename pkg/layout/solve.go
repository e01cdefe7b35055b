package layout

import (
	"fmt"

	"github.com/matzehuels/quotefit/pkg/quote"
)

// EngineVersion identifies the solver revision. Bump it whenever a change
// alters the output for some content, so cached layouts are not reused.
const EngineVersion = "1"

// Solver tuning constants.
const (
	// ExpandSlackThreshold is the unused height above which service rows grow.
	ExpandSlackThreshold = 20.0
	// ExpandShare is the fraction of the per-item slack spent on growth.
	ExpandShare = 0.3
	// ExpandMaxPerItem caps the growth of a single service row.
	ExpandMaxPerItem = 1.0
	// ExpandedItemCap is the tallest a service row may become.
	ExpandedItemCap = 6.5

	// Overshoot scales the proportional ratio past the exact overflow.
	Overshoot = 1.2

	// SqueezeFactor scales the per-item overflow removed in the item squeeze.
	SqueezeFactor = 1.5
	// ItemHardFloor is the lowest service row height, below its nominal minimum.
	ItemHardFloor = 2.5
)

// EmergencyFloor is a value below an element's minimum used as a last resort.
type EmergencyFloor struct {
	ID    ElementID
	Floor float64
}

// EmergencyFloors lists the elements the emergency phase pushes below their
// minimum, and how far.
var EmergencyFloors = []EmergencyFloor{
	{MarginTop, 2},
	{MarginBottom, 2},
	{HeaderLineMargin, 1},
	{CustomerMarginBottom, 0.5},
}

// Phase identifies how far the solver had to go.
type Phase int

const (
	PhaseFit Phase = iota
	PhaseProportional
	PhaseItemSqueeze
	PhaseEmergency
)

var phaseNames = [...]string{
	PhaseFit:          "fit",
	PhaseProportional: "proportional",
	PhaseItemSqueeze:  "item-squeeze",
	PhaseEmergency:    "emergency",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// ParsePhase returns the phase with the given name.
func ParsePhase(name string) (Phase, error) {
	for i, n := range phaseNames {
		if n == name {
			return Phase(i), nil
		}
	}
	return 0, fmt.Errorf("unknown phase %q", name)
}

// MarshalText encodes the phase by name.
func (p Phase) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText decodes a phase name.
func (p *Phase) UnmarshalText(text []byte) error {
	v, err := ParsePhase(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Step records the total height after a solver phase ran.
type Step struct {
	Phase       Phase   `json:"phase"`
	TotalHeight float64 `json:"total_height"`
}

// Result is the outcome of a single solve.
type Result struct {
	Content quote.Content `json:"content"`
	Budget  Budget        `json:"budget"`

	// Phase is the last phase that ran.
	Phase Phase `json:"phase"`
	// Expanded is set when service rows grew into unused space.
	Expanded bool `json:"expanded"`
	// CompressionRatio is the proportional ratio applied, 1 when every
	// element snapped to its minimum and 0 when nothing was compressed.
	CompressionRatio float64 `json:"compression_ratio"`

	// DefaultHeight is the total height at default values.
	DefaultHeight float64 `json:"default_height"`
	// TotalHeight is the total height at the final values.
	TotalHeight float64 `json:"total_height"`
	// Overflow is how far TotalHeight exceeds AvailableHeight, or 0.
	Overflow float64 `json:"overflow"`
	Fits     bool    `json:"fits"`

	Steps  []Step `json:"steps"`
	Config Config `json:"config"`
}

// Compute returns the derived layout configuration for the content.
func Compute(c quote.Content) Config {
	return Solve(c).Config
}

// Solve fits the content onto the page and derives the layout configuration.
// It never fails: when even the emergency floors overflow, the floor values
// are returned with Fits set to false.
func Solve(c quote.Content) Result {
	b := NewBudget(c)
	res := Result{Content: c}

	total := b.TotalHeight()
	res.DefaultHeight = total
	res.Steps = append(res.Steps, Step{PhaseFit, total})

	if total <= AvailableHeight {
		res.Expanded = expandItems(&b, AvailableHeight-total)
		if res.Expanded {
			total = b.TotalHeight()
			res.Steps[0].TotalHeight = total
		}
		return res.finish(b, PhaseFit, total)
	}

	res.CompressionRatio = compressProportionally(&b, total-AvailableHeight)
	total = b.TotalHeight()
	res.Steps = append(res.Steps, Step{PhaseProportional, total})
	if total <= AvailableHeight {
		return res.finish(b, PhaseProportional, total)
	}

	if b.ItemCount > 0 {
		squeezeItems(&b, total-AvailableHeight)
		total = b.TotalHeight()
		res.Steps = append(res.Steps, Step{PhaseItemSqueeze, total})
		if total <= AvailableHeight {
			return res.finish(b, PhaseItemSqueeze, total)
		}
	}

	applyEmergencyFloors(&b)
	total = b.TotalHeight()
	res.Steps = append(res.Steps, Step{PhaseEmergency, total})
	return res.finish(b, PhaseEmergency, total)
}

func (r Result) finish(b Budget, p Phase, total float64) Result {
	r.Budget = b
	r.Phase = p
	r.TotalHeight = total
	r.Fits = total <= AvailableHeight
	if !r.Fits {
		r.Overflow = total - AvailableHeight
	}
	r.Config = Derive(b)
	return r
}

// expandItems spends part of the unused height on taller service rows.
// This is a named override: ServiceItemHeight may end above its default.
func expandItems(b *Budget, slack float64) bool {
	if slack <= ExpandSlackThreshold || b.ItemCount == 0 {
		return false
	}
	grow := min(slack/float64(b.ItemCount)*ExpandShare, ExpandMaxPerItem)
	e := &b.Elements[ServiceItemHeight]
	e.Current = min(e.Default+grow, ExpandedItemCap)
	return true
}

// compressProportionally shrinks every element by the same ratio of its
// compressibility and returns that ratio.
func compressProportionally(b *Budget, overflow float64) float64 {
	c := b.Compressibility()
	if overflow > c || c <= 0 {
		b.snapToMin()
		return 1
	}
	ratio := min(1, overflow*Overshoot/c)
	b.compressAll(ratio)
	return ratio
}

// squeezeItems shrinks service rows by a multiple of the per-item overflow.
// This is a named override: ServiceItemHeight may end below its minimum,
// never below ItemHardFloor.
func squeezeItems(b *Budget, overflow float64) {
	e := &b.Elements[ServiceItemHeight]
	cut := overflow / float64(b.ItemCount) * SqueezeFactor
	e.Current = max(ItemHardFloor, e.Current-cut)
}

// applyEmergencyFloors snaps every element to its minimum, then lowers the
// EmergencyFloors elements. Service rows are the exception to the snap: a row
// already squeezed below its minimum keeps that height instead of being raised
// back to Min, so row height never grows from one phase to the next.
// This is a named override; the result is not checked for fit.
func applyEmergencyFloors(b *Budget) {
	item := b.Elements[ServiceItemHeight]
	b.snapToMin()
	b.Elements[ServiceItemHeight].Current = min(item.Current, item.Min)
	for _, f := range EmergencyFloors {
		b.Elements[f.ID].Current = f.Floor
	}
}
