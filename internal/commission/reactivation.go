package commission

// ReactivationAction is what a caller should do with a deal's payments
// when the deal leaves the lost stage.
type ReactivationAction int

const (
	// Restore flips the archived rows back with every prior value,
	// including manual overrides, intact.
	Restore ReactivationAction = iota
	// Regenerate discards the old schedule and builds a fresh one from
	// the deal's current commission terms.
	Regenerate
)

func (a ReactivationAction) String() string {
	if a == Regenerate {
		return "regenerate"
	}
	return "restore"
}

// PlanReactivation picks the default action for a lost deal coming
// back: restore when every archived payment was generated under the
// deal's current commission terms, regenerate when the terms moved
// underneath them (or there is nothing left to restore). Callers may
// still force either action explicitly.
func PlanReactivation(currentVersion int, archivedVersions []int) ReactivationAction {
	if len(archivedVersions) == 0 {
		return Regenerate
	}
	for _, v := range archivedVersions {
		if v != currentVersion {
			return Regenerate
		}
	}
	return Restore
}
