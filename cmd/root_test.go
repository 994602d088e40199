package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/quire/internal/domain"
	m "github.com/mouse-blink/quire/internal/model"
)

// fakeWorkflow records the workflow calls the commands make.
type fakeWorkflow struct {
	listPaths []m.Path
	viewPath  m.Path
	applyArgs domain.ApplyArgs
	editPath  m.Path
	err       error
}

func (f *fakeWorkflow) List(paths ...m.Path) error {
	f.listPaths = paths

	return f.err
}

func (f *fakeWorkflow) View(path m.Path) error {
	f.viewPath = path

	return f.err
}

func (f *fakeWorkflow) Apply(_ context.Context, args domain.ApplyArgs) error {
	f.applyArgs = args

	return f.err
}

func (f *fakeWorkflow) Edit(path m.Path) error {
	f.editPath = path

	return f.err
}

// swapWorkflow installs a fake workflow for the duration of a test.
func swapWorkflow(t *testing.T) *fakeWorkflow {
	t.Helper()

	fake := &fakeWorkflow{}

	original := workflow
	workflow = fake

	t.Cleanup(func() { workflow = original })

	return fake
}

func TestRootCmd_ListsNotebooks(t *testing.T) {
	fake := swapWorkflow(t)

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"a.ipynb", "b.qrn"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, []m.Path{"a.ipynb", "b.qrn"}, fake.listPaths)
}

func TestRootCmd_RequiresArguments(t *testing.T) {
	swapWorkflow(t)

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{})
	require.Error(t, cmd.Execute())
}

func TestParsePaths(t *testing.T) {
	paths := parsePaths([]string{"one.ipynb", "two.qrn"})

	assert.Equal(t, []m.Path{"one.ipynb", "two.qrn"}, paths)
}
