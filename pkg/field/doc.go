// Package field renders a single form field: a wrapper (Self) holding a
// label, an input control and, when validation feedback should be visible,
// an error list. Each of the four slots can be replaced per render through
// Props.Slots, and the input slot can also be supplied as a single child
// element whose own props are kept.
//
// Input change notifications arrive in one of two shapes. An event shape
// exposes Target().Value() (or, for decoded payloads, a map with a nested
// "target" → "value" path) and an optional StopPropagation; anything else is
// taken as the new value itself. The check is structural: any type with the
// right method set qualifies, no registration or type tag involved. Both
// shapes end in exactly one FormValue.Update call.
//
// Error visibility is a two-state machine owned by the Instance. It starts
// hidden and moves to shown on the first blur from the wrapper, never going
// back. Params.ForceShowErrors reveals the list for the render it is set on
// without touching that state.
//
// An Instance is not safe for concurrent use; hosts serialize renders and
// event dispatch for a given instance.
package field
