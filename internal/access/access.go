// Package access decides which screen a request may reach based on the
// authenticated user's flags. The state is computed per request, never
// stored, so a submission is reflected in routing immediately.
package access

// Destination paths shared by the router, the guards and the login handler.
const (
	PathLogin          = "/login"
	PathSubmissionForm = "/employee_kyc_detail"
	PathUserDashboard  = "/user-dashboard"
	PathAdminDashboard = "/admin-dashboard"
	PathThankYou       = "/thank-you"
)

type State int

const (
	// Anonymous is an unauthenticated request.
	Anonymous State = iota
	// PendingSubmission is an authenticated non-admin who has not submitted yet.
	PendingSubmission
	// Submitted is any authenticated user whose KYC form is in. Terminal.
	Submitted
	// Admin is an authenticated administrator with no submission of their own. Terminal.
	Admin
)

func (s State) String() string {
	switch s {
	case PendingSubmission:
		return "pending_submission"
	case Submitted:
		return "submitted"
	case Admin:
		return "admin"
	default:
		return "anonymous"
	}
}

// Flags is the session-derived input to the state machine.
type Flags struct {
	Authenticated bool
	IsAdmin       bool
	KYCSubmitted  bool
}

// StateOf derives the workflow state. The submitted check deliberately takes
// precedence over the admin check: an admin who has filed their own KYC form
// lands on the user dashboard like everyone else.
func StateOf(f Flags) State {
	switch {
	case !f.Authenticated:
		return Anonymous
	case f.KYCSubmitted:
		return Submitted
	case f.IsAdmin:
		return Admin
	default:
		return PendingSubmission
	}
}

// Destination is the root and post-login redirect target for a state.
func (s State) Destination() string {
	switch s {
	case Submitted:
		return PathUserDashboard
	case Admin:
		return PathAdminDashboard
	case PendingSubmission:
		return PathSubmissionForm
	default:
		return PathLogin
	}
}

// CanViewAdminDashboard is the RequireAdmin guard predicate.
func CanViewAdminDashboard(f Flags) bool {
	return f.Authenticated && f.IsAdmin
}

// CanViewUserDashboard is the RequireSubmitted guard predicate.
func CanViewUserDashboard(f Flags) bool {
	return f.Authenticated && f.KYCSubmitted
}

// CanSubmit gates the submission form and the write path: only an
// authenticated user who has not submitted yet may proceed.
func CanSubmit(f Flags) bool {
	return f.Authenticated && !f.KYCSubmitted
}
