// Package messages defines message handling conventions for licensedesk:
// how errors, successes and informational notices travel between layers.
//
// # Message Handling Patterns by Layer
//
// ## Storage Layer (internal/license, internal/prefs, internal/config)
//
// Return standard Go errors. These packages do file and clipboard I/O and
// must not depend on UI concerns.
//
// Pattern:
//
//	data, err := os.ReadFile(path)
//	if err != nil {
//	    return Defaults(), fmt.Errorf("read prefs %s: %w", path, err)
//	}
//
// Wrap with %w so callers can still use errors.Is. Name the operation and
// the thing it acted on. messages.WrapError is a shorthand for the same.
//
// ## Dispatcher Layer (internal/commands)
//
// Never return errors. Every outcome, including unknown verbs and invalid
// arguments, is a normal result: a history entry plus Effect.Status and
// Effect.StatusType. The caller decides how to show it.
//
// ## UI Layer (internal/app, internal/components)
//
// Turn effects and async results into types.StatusMsg through the helpers
// in this package, and show them in the status line:
//
//	case types.ExportDoneMsg:
//	    if msg.Err != nil {
//	        return m, messages.ErrorCmd("Export failed: %v", msg.Err)
//	    }
//	    return m, messages.SuccessCmd("Exported licenses to %s", msg.Path)
//
// The status line clears itself after components.StatusBarDisplayDuration.
// A newer message cancels the pending clear of an older one through its
// message ID.
//
// ## Infrastructure (logging, sound)
//
// Log and continue. A missing audio device or an unwritable log directory
// degrades to a no-op and never reaches the user as an error.
//
// # Message Guidelines
//
// Start with what happened, keep it short, include the subject:
//
//   - "Export failed: open /tmp/out: permission denied"
//   - "Switched to Rose theme - spring vibes"
//   - "Unknown theme: neon. Available: gold, rose, sky, forest"
package messages
