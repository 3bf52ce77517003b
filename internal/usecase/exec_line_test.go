package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/duke/internal/domain"
	"github.com/runoshun/duke/internal/parser"
	"github.com/runoshun/duke/internal/testutil"
	"github.com/runoshun/duke/internal/usecase"
)

func newParser() *parser.Parser {
	return parser.New(domain.DefaultDateFormats(), parser.Options{})
}

func TestExecLine_Execute_MutationSaves(t *testing.T) {
	store := testutil.NewMockTaskStore(domain.NewTodo("a"))
	uc := usecase.NewExecLine(store, newParser(), nil)

	out, err := uc.Execute(context.Background(), usecase.ExecLineInput{Line: "done 1"})

	require.NoError(t, err)
	assert.Equal(t, "Nice! I've marked this task as done:\n  [T][X] a", out.Text)
	assert.True(t, out.Saved)
	assert.Equal(t, 1, store.SaveCalls)
	assert.True(t, store.Tasks[0].Done)
}

func TestExecLine_Execute_QueryDoesNotSave(t *testing.T) {
	store := testutil.NewMockTaskStore(domain.NewTodo("read book"))
	uc := usecase.NewExecLine(store, newParser(), nil)

	out, err := uc.Execute(context.Background(), usecase.ExecLineInput{Line: "find book"})

	require.NoError(t, err)
	assert.Equal(t, "These are the search results:\n1. [T][ ] read book", out.Text)
	assert.False(t, out.Saved)
	assert.Zero(t, store.SaveCalls)
}

func TestExecLine_Execute_ParseError(t *testing.T) {
	store := testutil.NewMockTaskStore()
	uc := usecase.NewExecLine(store, newParser(), nil)

	_, err := uc.Execute(context.Background(), usecase.ExecLineInput{Line: "delete 1"})

	var ue *domain.UserError
	require.ErrorAs(t, err, &ue)
	assert.ErrorIs(t, err, domain.ErrInvalidIndexInput)
	assert.Equal(t, "There are no tasks to delete!", ue.Message)
	assert.Zero(t, store.SaveCalls)
}

func TestExecLine_Execute_LoadError(t *testing.T) {
	store := testutil.NewMockTaskStore()
	store.LoadErr = assert.AnError

	_, err := usecase.NewExecLine(store, newParser(), nil).Execute(context.Background(), usecase.ExecLineInput{Line: "list"})

	assert.ErrorIs(t, err, assert.AnError)
}

func TestExecLine_Execute_SaveError(t *testing.T) {
	store := testutil.NewMockTaskStore()
	store.SaveErr = assert.AnError

	_, err := usecase.NewExecLine(store, newParser(), nil).Execute(context.Background(), usecase.ExecLineInput{Line: "todo a"})

	assert.ErrorIs(t, err, assert.AnError)
}
