// Package ui contains the Bubble Tea program that acts as the control
// console for the overlay player. It shows the application menu, a window's
// context menu when one is requested, and a live table of the open windows.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - While the colour form is open it claims key presses; every other
//     message goes through a typed handler registry. Messages that are
//     router intents (menu selections, picker results) are handed to
//     router.Dispatch.
//   - After every update the model drains each window's mailbox into its
//     panel through the dispatcher. Requests a panel makes in response
//     (open the file picker, open the colour picker) re-enter the loop as
//     intents.
//
// State ownership:
//   - Settings, the window registry and the broadcaster belong to the router.
//     The model only reads them and reacts to menu rebuilds.
//   - Menu level state lives in internal/ui/state.Level, which tracks items,
//     filtering and viewport calculations.
//   - Menu selections run through the internal/ui/command bus, which turns
//     them into intents.
//
// Background sources:
//   - The library watcher's events become LibraryChanged intents.
//   - The terminal regaining focus becomes an Activate intent.
//   - Colour prompts from picker.PromptColorPicker open the colour form, which
//     resolves the request on enter or esc.
package ui
