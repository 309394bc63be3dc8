package service

type Verdict int

const (
	VerdictLoading Verdict = iota
	VerdictRedirect
	VerdictRender
)

func (v Verdict) String() string {
	switch v {
	case VerdictLoading:
		return "loading"
	case VerdictRedirect:
		return "redirect"
	default:
		return "render"
	}
}

// Guard decides what a protected view does with the current auth state.
// It only reads state.
func Guard(state AuthState) Verdict {
	if state.IsLoading || !state.IsInitialized {
		return VerdictLoading
	}
	if !state.IsAuthenticated {
		return VerdictRedirect
	}
	return VerdictRender
}

// GuardRedirect prefers the target the state machine already chose.
func GuardRedirect(recorded, path string) string {
	if recorded != "" {
		return recorded
	}
	return SignInRedirect(path)
}
