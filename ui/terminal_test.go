package ui

import (
	"bytes"
	"hr-chat/domain"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTerminal_RenderMessage(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	terminal := NewTerminal(&out, false)

	terminal.RenderMessage(domain.NewMessage("What is my leave balance?", domain.SenderUser))
	terminal.RenderMessage(domain.NewMessage("You have 12 days", domain.SenderBot))

	req.Equal("you › What is my leave balance?\nhr  › You have 12 days\n", out.String())
}

func TestTerminal_TypingIsErasedBeforeTheReply(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	terminal := NewTerminal(&out, false)

	terminal.ShowTyping()
	terminal.RenderMessage(domain.NewMessage("Hi", domain.SenderBot))
	terminal.HideTyping()

	req.Equal(typingText+clearLine+"hr  › Hi\n", out.String())
}

func TestTerminal_Otp(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	terminal := NewTerminal(&out, false)

	terminal.ShowOtp("🔐 Please enter the OTP")
	terminal.SetOtpStatus("")
	terminal.FocusOtpInput()
	terminal.SetOtpStatus(domain.OtpFormatMessage)
	terminal.HideOtp()
	terminal.FocusInput()

	lines := out.String()
	req.Contains(lines, "🔐 Please enter the OTP\n")
	req.Contains(lines, "otp › ")
	req.Contains(lines, domain.OtpFormatMessage+"\n")
	req.True(strings.HasSuffix(lines, "› "))
	req.False(strings.HasSuffix(lines, "otp › "))
}

func TestTerminal_ShowExamples(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	terminal := NewTerminal(&out, false)

	terminal.ShowExamples(domain.DefaultExamples)

	for _, example := range domain.DefaultExamples {
		req.Contains(out.String(), example)
	}
	req.Contains(out.String(), "/example N")
}

func TestTerminal_ColorsOn(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	terminal := NewTerminal(&out, true)

	terminal.ShowNotice("hello")

	req.Contains(out.String(), "hello")
}
