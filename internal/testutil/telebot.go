package testutil

import (
	"fmt"

	tele "gopkg.in/telebot.v3"
)

// FakeContext records what a handler sends. Methods it does not override
// panic through the nil embedded interface.
type FakeContext struct {
	tele.Context

	FromUser  *tele.User
	InputText string
	Press     *tele.Callback
	EditErr   error
	Sent      []string
	Edited    []string
	Answered  []*tele.CallbackResponse
}

// NewFakeContext creates a text message context from userID
func NewFakeContext(userID int64, text string) *FakeContext {
	return &FakeContext{
		FromUser:  &tele.User{ID: userID},
		InputText: text,
	}
}

// NewFakeCallback creates a button press context from userID
func NewFakeCallback(userID int64, unique, data string) *FakeContext {
	return &FakeContext{
		FromUser: &tele.User{ID: userID},
		Press:    &tele.Callback{ID: "cb-1", Unique: unique, Data: data},
	}
}

func (f *FakeContext) Sender() *tele.User {
	return f.FromUser
}

func (f *FakeContext) Text() string {
	return f.InputText
}

func (f *FakeContext) Callback() *tele.Callback {
	return f.Press
}

func (f *FakeContext) Send(what interface{}, opts ...interface{}) error {
	f.Sent = append(f.Sent, fmt.Sprint(what))
	return nil
}

func (f *FakeContext) Edit(what interface{}, opts ...interface{}) error {
	if f.EditErr != nil {
		return f.EditErr
	}
	f.Edited = append(f.Edited, fmt.Sprint(what))
	return nil
}

func (f *FakeContext) Respond(resp ...*tele.CallbackResponse) error {
	if len(resp) == 0 {
		f.Answered = append(f.Answered, &tele.CallbackResponse{})
		return nil
	}
	f.Answered = append(f.Answered, resp...)
	return nil
}

// LastSent returns the most recent sent text, or ""
func (f *FakeContext) LastSent() string {
	if len(f.Sent) == 0 {
		return ""
	}
	return f.Sent[len(f.Sent)-1]
}
