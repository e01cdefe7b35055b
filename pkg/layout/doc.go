// Package layout fits the content of a quote onto one A4 page.
//
// # Overview
//
// A quote's page size is fixed but its content is not: the number of service
// items and the presence of optional terms sections vary from quote to quote.
// This package computes, for a given [quote.Content], a complete set of
// spacing and font-size values so that the content fits the available page
// height whenever that is possible.
//
// The computation runs in four stages, all inside a single call to [Solve]:
//
//  1. The content is reduced to an item count and a terms count.
//  2. [NewBudget] declares every compressible vertical dimension as an
//     [Element] with a default and a minimum, initialized to the default.
//  3. The solver compares the total height against [AvailableHeight] and
//     shrinks elements through up to three escalating phases.
//  4. [Derive] maps the solved heights to font sizes, line heights and
//     paddings through ordered [Thresholds], producing a [Config].
//
// # Phases
//
//   - [PhaseFit]: the content fits at default sizes. If more than 20 mm are
//     left over, service rows grow (capped at [ExpandedItemCap]).
//   - [PhaseProportional]: every element shrinks toward its minimum by the
//     same ratio, overshooting the overflow by 20%. If the overflow exceeds
//     the total compressibility, everything snaps to its minimum.
//   - [PhaseItemSqueeze]: service rows shrink further, down to
//     [ItemHardFloor], below their nominal minimum.
//   - [PhaseEmergency]: every element goes to its minimum and four named
//     spacings drop below it (see [EmergencyFloors]). The result is not
//     checked again; [Result.Fits] reports whether it fits.
//
// Outside the two named overrides (row expansion and the floors below
// minimum), every element satisfies Min <= Current <= Default.
//
// # Usage
//
//	res := layout.Solve(quote.Content{ItemCount: 40, HasDiscount: true})
//	fmt.Println(res.Phase, res.Config.ServiceFontSize)
//
// [Compute] returns only the [Config] for callers that do not need the trace.
//
// Solve performs no I/O, keeps no state between calls and never fails; it is
// safe for concurrent use.
package layout
