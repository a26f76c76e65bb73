package domain

type OtpState int

const (
	OtpClosed OtpState = iota
	OtpOpen
)

func (s OtpState) String() string {
	switch s {
	case OtpOpen:
		return "open"
	default:
		return "closed"
	}
}

// OtpChallenge is the step-up prompt shown while the backend waits for a one-time passcode.
// It only lives while the challenge is open.
type OtpChallenge struct {
	Prompt string
	Status string
}
