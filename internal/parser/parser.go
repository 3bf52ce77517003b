// Package parser turns one line of user input into a command.
package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/runoshun/duke/internal/codec"
	"github.com/runoshun/duke/internal/command"
	"github.com/runoshun/duke/internal/domain"
)

// Command words.
const (
	WordTodo     = "todo"
	WordDeadline = "deadline"
	WordEvent    = "event"
	WordDone     = "done"
	WordDelete   = "delete"
	WordList     = "list"
	WordFind     = "find"
	WordHelp     = "help"
	WordBye      = "bye"
)

// Date keywords following the "/" in deadline and event input.
const (
	keywordBy = "by"
	keywordAt = "at"
)

var (
	singleDigit = regexp.MustCompile(`^[0-9]$`)
	number      = regexp.MustCompile(`^[0-9]+$`)
)

// Options controls parser strictness.
type Options struct {
	// Lenient ignores extra words after list, help and bye instead of rejecting them.
	Lenient bool
	// LegacyIndex accepts only single-digit task numbers.
	LegacyIndex bool
}

// Parser converts input lines into commands.
type Parser struct {
	formats domain.DateFormats
	opts    Options
}

// New creates a Parser.
func New(formats domain.DateFormats, opts Options) *Parser {
	return &Parser{formats: formats, opts: opts}
}

// Parse converts line into a command. tasks is only read, to validate indexes.
// All returned errors are *domain.UserError.
func (p *Parser) Parse(line string, tasks *domain.TaskList) (command.Command, error) {
	word, rest, _ := strings.Cut(strings.TrimSpace(line), " ")

	switch word {
	case WordTodo:
		return p.parseTodo(rest)
	case WordDeadline:
		desc, at, err := p.parseTimed(word, rest, keywordBy)
		if err != nil {
			return nil, err
		}
		return command.AddDeadline{Description: desc, By: at}, nil
	case WordEvent:
		desc, at, err := p.parseTimed(word, rest, keywordAt)
		if err != nil {
			return nil, err
		}
		return command.AddEvent{Description: desc, At: at}, nil
	case WordDone:
		pos, err := p.parsePosition(word, rest, tasks, "You have already done all tasks!")
		if err != nil {
			return nil, err
		}
		return command.MarkDone{Position: pos}, nil
	case WordDelete:
		pos, err := p.parsePosition(word, rest, tasks, "There are no tasks to delete!")
		if err != nil {
			return nil, err
		}
		return command.Delete{Position: pos}, nil
	case WordFind:
		return p.parseFind(rest, tasks)
	case WordList:
		return p.noArgs(word, rest, command.List{})
	case WordHelp:
		return p.noArgs(word, rest, command.Help{})
	case WordBye:
		return p.noArgs(word, rest, command.Exit{})
	default:
		return nil, domain.NewUserError(domain.ErrInvalidCommand,
			"That is not a valid command format! Send 'help' if you need assistance!")
	}
}

func (p *Parser) parseTodo(rest string) (command.Command, error) {
	desc := strings.TrimSpace(rest)
	if desc == "" {
		return nil, emptyDescription()
	}
	if err := codec.CheckDescription(desc); err != nil {
		return nil, err
	}
	return command.AddTodo{Description: desc}, nil
}

// parseTimed splits "<description> /<keyword> <date>".
func (p *Parser) parseTimed(word, rest, keyword string) (string, time.Time, error) {
	if strings.TrimSpace(rest) == "" {
		return "", time.Time{}, emptyDescription()
	}

	desc, datepart, found := strings.Cut(rest, "/")
	desc = strings.TrimSpace(desc)
	datepart = strings.TrimSpace(datepart)
	if desc == "" {
		return "", time.Time{}, emptyDescription()
	}
	if err := codec.CheckDescription(desc); err != nil {
		return "", time.Time{}, err
	}
	if !found || !strings.HasPrefix(datepart, keyword) {
		return "", time.Time{}, domain.NewUserError(domain.ErrInvalidDateTime,
			fmt.Sprintf("Please add a date to your %s with /%s <date>!", word, keyword))
	}

	at, err := p.formats.Parse(strings.TrimSpace(datepart[len(keyword):]))
	if err != nil {
		return "", time.Time{}, err
	}
	return desc, at, nil
}

// parsePosition converts a 1-based index token into a validated 0-based position.
func (p *Parser) parsePosition(word, rest string, tasks *domain.TaskList, emptyMsg string) (int, error) {
	token := strings.TrimSpace(rest)
	if token == "" {
		return 0, domain.NewUserError(domain.ErrEmptyArgument,
			fmt.Sprintf("Please pass an index after the '%s' command!", word))
	}

	pattern := number
	if p.opts.LegacyIndex {
		pattern = singleDigit
	}
	n, err := strconv.Atoi(token)
	if !pattern.MatchString(token) || err != nil {
		return 0, domain.NewUserError(domain.ErrInvalidIndexInput,
			fmt.Sprintf("'%s' is a command word; please pass a numerical index or start your task with another word!", word))
	}

	if tasks.IsEmpty() {
		return 0, domain.NewUserError(domain.ErrInvalidIndexInput, emptyMsg)
	}
	pos := n - 1
	if pos < 0 || pos >= tasks.Len() {
		return 0, domain.NewUserError(domain.ErrInvalidIndexInput,
			fmt.Sprintf("Please input an index from 1 to %d!", tasks.Len()))
	}
	return pos, nil
}

func (p *Parser) parseFind(rest string, tasks *domain.TaskList) (command.Command, error) {
	keyword := strings.TrimSpace(rest)
	if keyword == "" {
		return nil, domain.NewUserError(domain.ErrEmptyArgument, "Please tell me what to search for!")
	}
	if tasks.IsEmpty() {
		return nil, domain.NewUserError(domain.ErrEmptyList, "There are no tasks to search!")
	}
	return command.Find{Keyword: keyword}, nil
}

func (p *Parser) noArgs(word, rest string, cmd command.Command) (command.Command, error) {
	if strings.TrimSpace(rest) != "" && !p.opts.Lenient {
		return nil, domain.NewUserError(domain.ErrInvalidCommand,
			fmt.Sprintf("'%s' does not take any arguments! Send 'help' if you need assistance!", word))
	}
	return cmd, nil
}

func emptyDescription() error {
	return domain.NewUserError(domain.ErrEmptyArgument, "Please input a valid task description!")
}
