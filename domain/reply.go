package domain

// ChatReply is the uniform result of one chat exchange.
// Failed is set when the transport gave up; Message then holds the apology to display.
type ChatReply struct {
	Message     string
	SessionID   string
	RequireAuth bool
	Failed      bool
}

// OtpResult is the uniform result of one OTP verification.
type OtpResult struct {
	Success bool
	Message string
}

// Fixed texts shown by the client. They mirror what the HR assistant page displays.
const (
	ApologyMessage     = "Sorry, there was an error connecting to the server. Please try again later."
	OtpFormatMessage   = "❌ Please enter a valid 6-digit OTP"
	OtpErrorMessage    = "❌ An error occurred. Please try again."
	OtpRejectedMessage = "❌ Verification failed. Please try again."
	ResetSentinel      = "reset_all"
	ResetConfirmPrompt = "Are you sure you want to reset the conversation? (y/N)"
	GreetingMessage    = "👋 Hello! I'm your HR assistant. I can help you with leave balances, company policies, or submitting leave requests. How can I assist you today?"
)

// DefaultExamples are the prompts offered for quick selection.
var DefaultExamples = []string{
	"What is my leave balance?",
	"I want to apply for leave from next Monday to Wednesday",
	"What is the company's maternity leave policy?",
	"Show me my pending leave requests",
}
