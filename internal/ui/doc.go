// Package ui contains the Bubble Tea program that powers the tuilet editor.
// The Model type focuses on message orchestration while dedicated helpers own
// key handling, preview execution, and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function. Unhandled messages (cursor blinks) go to the text fields.
//   - Key presses (internal/ui/input.go) mutate the session: typed text and
//     flags are copied into it, and the font field cycles or searches the
//     catalog.
//   - Every state change queues a preview round (internal/ui/preview.go).
//     The command line and its outputs are committed together when the round
//     completes, so the screen keeps the previous pair until then. Rounds are
//     numbered; a newer round cancels the pending one and a result whose
//     number is not the latest is dropped.
//
// State ownership:
//   - The session.Session owns the editable fields and derived outputs.
//   - Focus cycling lives in internal/ui/state.
//
// On quit the Model records an ExitAction; callers read it with ExitText
// after the program returns.
package ui
