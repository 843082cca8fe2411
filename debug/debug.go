// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: debug.go — Cold-path diagnostics helper
//
// Purpose:
//   - Reports bootstrap progress and infrequent failures on stderr.
//   - Keeps stdout clean: protocol responses are the only stdout traffic.
//
// Notes:
//   - Avoids fmt to keep the print path to a single concatenation and write.
//   - Tags group related messages (ENV, ROSTER, SIGNAL, ...) for grep-ability.
//
// ⚠️ Never invoke per command — use only for bootstrap and failure diagnostics.
// ─────────────────────────────────────────────────────────────────────────────

package debug

import "parksim/utils"

// DropError reports err on stderr under the given tag. A nil err drops the
// bare tag, which is still useful as a milestone marker.
//
//go:inline
func DropError(tag string, err error) {
	if err != nil {
		utils.PrintWarning(tag + ": " + err.Error() + "\n")
	} else {
		utils.PrintWarning(tag + "\n")
	}
}

// DropMessage reports a tagged progress message on stderr. Used for
// bootstrap phases, roster provisioning counts, and shutdown notices.
//
//go:inline
func DropMessage(tag, message string) {
	utils.PrintWarning(tag + ": " + message + "\n")
}
