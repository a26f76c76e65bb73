// Package ui renders the conversation. Terminal draws it on a console;
// Headless keeps it in memory.
package ui

import (
	"fmt"
	"hr-chat/contract"
	"hr-chat/domain"
	"io"
	"strconv"
	"sync"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

const (
	clearLine   = "\r\033[K"
	clearScreen = "\033[H\033[2J"
	typingText  = "HR assistant is typing..."
)

var (
	userStyle   = color.New(color.FgCyan, color.OpBold)
	botStyle    = color.New(color.FgGreen)
	typingStyle = color.New(color.FgGray, color.OpItalic)
	otpStyle    = color.New(color.FgMagenta, color.OpBold)
	errorStyle  = color.New(color.FgRed)
	noticeStyle = color.New(color.FgYellow)
)

// Terminal writes the conversation to a console. The typing indicator lives on the
// last line and is erased before anything else is printed.
type Terminal struct {
	mu     sync.Mutex
	out    io.Writer
	colors bool
	typing bool
	otp    bool
}

var _ contract.UI = (*Terminal)(nil)

func NewTerminal(out io.Writer, colors bool) *Terminal {
	return &Terminal{out: out, colors: colors}
}

func (t *Terminal) RenderMessage(msg domain.Message) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.eraseTyping()

	if msg.FromUser() {
		t.println(userStyle, "you › "+msg.Text)
		return
	}
	t.println(botStyle, "hr  › "+msg.Text)
}

func (t *Terminal) ClearMessages() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.typing = false
	_, _ = fmt.Fprint(t.out, clearScreen)
}

func (t *Terminal) ShowTyping() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.typing = true
	_, _ = fmt.Fprint(t.out, t.paint(typingStyle, typingText))
}

func (t *Terminal) HideTyping() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.eraseTyping()
}

// ScrollToBottom is a no-op: a console always shows its last line.
func (t *Terminal) ScrollToBottom() {}

func (t *Terminal) ShowOtp(prompt string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.eraseTyping()
	t.otp = true
	t.println(otpStyle, prompt)
	t.println(otpStyle, "Enter the 6-digit code, or /cancel.")
}

func (t *Terminal) HideOtp() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.otp = false
}

func (t *Terminal) FocusOtpInput() {
	t.prompt()
}

func (t *Terminal) ClearOtpInput() {}

func (t *Terminal) SetOtpStatus(status string) {
	if status == "" {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.eraseTyping()
	t.println(errorStyle, status)
}

// SetInput prints the prefilled text; a blank line sends it.
func (t *Terminal) SetInput(text string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.eraseTyping()
	t.println(noticeStyle, fmt.Sprintf("draft › %s (press Enter to send)", text))
}

func (t *Terminal) ClearInput() {}

func (t *Terminal) FocusInput() {
	t.prompt()
}

func (t *Terminal) ShowNotice(text string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.eraseTyping()
	t.println(noticeStyle, text)
}

func (t *Terminal) ShowExamples(examples []string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.eraseTyping()

	table := tablewriter.NewWriter(t.out)
	table.SetHeader([]string{"#", "Example"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetColumnSeparator("")
	table.SetCenterSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetTablePadding("\t")
	table.AppendBulk(lo.Map(examples, func(example string, i int) []string {
		return []string{strconv.Itoa(i + 1), example}
	}))
	table.Render()
	_, _ = fmt.Fprintln(t.out, "Use /example N to pick one.")
}

func (t *Terminal) prompt() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.typing {
		return
	}
	_, _ = fmt.Fprint(t.out, lo.Ternary(t.otp, "otp › ", "› "))
}

// eraseTyping must be called with mu held.
func (t *Terminal) eraseTyping() {
	if !t.typing {
		return
	}
	t.typing = false
	_, _ = fmt.Fprint(t.out, clearLine)
}

func (t *Terminal) println(style color.Style, text string) {
	_, _ = fmt.Fprintln(t.out, t.paint(style, text))
}

func (t *Terminal) paint(style color.Style, text string) string {
	if !t.colors {
		return text
	}
	return style.Render(text)
}
