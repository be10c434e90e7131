package phase

// Action is the side effect performed when a phase is entered.
type Action int

const (
	ActionNone Action = iota
	ActionShowEntry
	ActionSwapRenderer
	ActionHideCaption
	ActionMountEffect
	ActionMountOverlay
)

var actionNames = [...]string{
	ActionNone:         "none",
	ActionShowEntry:    "show-entry",
	ActionSwapRenderer: "swap-renderer",
	ActionHideCaption:  "hide-caption",
	ActionMountEffect:  "mount-effect",
	ActionMountOverlay: "mount-overlay",
}

// String returns the action name.
func (a Action) String() string {
	if a < ActionNone || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

// EntryAction returns the action run on entry to p. Forced entries run the
// same action as natural ones.
func EntryAction(p Phase) Action {
	switch p {
	case Idle:
		return ActionShowEntry
	case Transforming:
		return ActionSwapRenderer
	case LookingWatch:
		return ActionHideCaption
	case HoleAppearing:
		return ActionMountEffect
	case Transitioning:
		return ActionMountOverlay
	default:
		return ActionNone
	}
}
