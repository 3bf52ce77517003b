// Package tui provides the full-screen terminal interface for duke.
package tui

import "github.com/runoshun/duke/internal/session"

// Msg is the sealed interface for all TUI messages.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgReply is sent when the session has handled an input line.
type MsgReply struct {
	Input string
	Reply session.Reply
}

func (MsgReply) sealed() {}

// MsgSaved is sent after the list was saved on quit.
type MsgSaved struct {
	Err error
}

func (MsgSaved) sealed() {}
