package domain

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/quire/internal/adapter"
	"github.com/mouse-blink/quire/internal/controller"
	"github.com/mouse-blink/quire/internal/domain/cellops"
	m "github.com/mouse-blink/quire/internal/model"
)

// Workflow defines the notebook editing operations exposed to the CLI.
type Workflow interface {
	List(paths ...m.Path) error
	View(path m.Path) error
	Apply(ctx context.Context, args ApplyArgs) error
	Edit(path m.Path) error
}

// ApplyArgs configures a batch apply across one or more notebooks.
type ApplyArgs struct {
	// Paths are the notebooks to edit.
	Paths []m.Path

	// Script is an optional YAML edit script; when set it is loaded and
	// prepended to Ops.
	Script m.Path

	// Ops are the operations to apply, in order, as one batch per notebook.
	Ops []adapter.ScriptOp

	// Out redirects the result to a different file instead of saving in
	// place. Only valid with a single input notebook.
	Out m.Path

	// Parallel caps how many notebooks are edited concurrently.
	Parallel int

	// Atomic makes the whole batch commit or nothing per notebook.
	Atomic bool
}

type workflow struct {
	store   adapter.NotebookStore
	scripts adapter.ScriptStore
	ui      controller.UI
}

// NewWorkflow creates a Workflow wired to the given stores and UI.
func NewWorkflow(store adapter.NotebookStore, scripts adapter.ScriptStore, ui controller.UI) Workflow {
	return &workflow{
		store:   store,
		scripts: scripts,
		ui:      ui,
	}
}

// List loads every notebook and displays per-notebook statistics.
func (w *workflow) List(paths ...m.Path) error {
	stats := make([]m.NotebookStat, 0, len(paths))

	for _, path := range paths {
		nb, err := w.store.Load(path)
		if err != nil {
			return err
		}

		stats = append(stats, m.StatFor(nb))
	}

	return w.ui.DisplayStats(stats)
}

// View loads one notebook and displays its cells.
func (w *workflow) View(path m.Path) error {
	nb, err := w.store.Load(path)
	if err != nil {
		return err
	}

	return w.ui.DisplayNotebook(nb)
}

// Apply runs the operation batch against every notebook, fanning out across
// files. Each notebook has a single mutator; parallelism is per file only.
func (w *workflow) Apply(ctx context.Context, args ApplyArgs) error {
	ops := args.Ops

	if args.Script != "" {
		script, err := w.scripts.Load(args.Script)
		if err != nil {
			return err
		}

		ops = append(script.Ops, ops...)
	}

	if len(ops) == 0 {
		return fmt.Errorf("no operations to apply")
	}

	if args.Out != "" && len(args.Paths) != 1 {
		return fmt.Errorf("--out requires exactly one input notebook, got %d", len(args.Paths))
	}

	parallel := args.Parallel
	if parallel <= 0 {
		parallel = 1
	}

	outcomes := make([]m.ApplyOutcome, len(args.Paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)

	for i, path := range args.Paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				outcomes[i] = m.ApplyOutcome{Origin: path, Err: err}

				return nil
			}

			outcomes[i] = w.applyToNotebook(path, ops, args)

			return nil
		})
	}

	// Workers never return errors; failures land in their outcome slot.
	_ = g.Wait()

	if err := w.ui.DisplayApplyOutcomes(outcomes); err != nil {
		return err
	}

	failed := 0

	for _, o := range outcomes {
		if o.Err != nil {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d notebooks failed", failed, len(outcomes))
	}

	return nil
}

// applyToNotebook loads, edits and saves a single notebook.
func (w *workflow) applyToNotebook(path m.Path, ops []adapter.ScriptOp, args ApplyArgs) m.ApplyOutcome {
	outcome := m.ApplyOutcome{Origin: path}

	nb, err := w.store.Load(path)
	if err != nil {
		outcome.Err = err

		return outcome
	}

	outcome.CellsBefore = nb.Len()

	session := NewSession(nb)
	if err := runScriptOps(session, ops, args.Atomic); err != nil {
		outcome.Err = err
		outcome.CellsAfter = nb.Len()

		return outcome
	}

	outcome.CellsAfter = nb.Len()

	target := path
	if args.Out != "" {
		target = args.Out
	}

	if err := w.store.Save(target, nb); err != nil {
		outcome.Err = err

		return outcome
	}

	outcome.Saved = target

	return outcome
}

// runScriptOps resolves and applies script operations in order. Each op is
// resolved against the notebook as the previous ops left it, so indices in a
// script address the evolving document, not the original.
//
// Atomic batches restore the initial state when any op is rejected.
func runScriptOps(session *Session, ops []adapter.ScriptOp, atomic bool) error {
	restore := session.Notebook().Clone()

	for i, op := range ops {
		if err := applyScriptOp(session, op); err != nil {
			if atomic {
				nb := session.Notebook()
				nb.Cells = restore.Cells
				nb.Version++
			}

			return fmt.Errorf("op %d (%s): %w", i, op.Op, err)
		}
	}

	return nil
}

func applyScriptOp(session *Session, op adapter.ScriptOp) error {
	nb := session.Notebook()

	count := op.Count
	if count <= 0 {
		count = 1
	}

	r := m.CellRange{Start: op.Index, End: op.Index + count}

	switch op.Op {
	case "join":
		dir := cellops.JoinAbove
		if strings.EqualFold(op.Direction, "below") {
			dir = cellops.JoinBelow
		}

		session.SetSelection(m.SelectionState{Focus: m.CellRange{Start: op.Index, End: op.Index + 1}})

		return session.Join(dir)

	case "split":
		points := make([]cellops.SplitPoint, len(op.Points))
		for i, p := range op.Points {
			points[i] = cellops.SplitPoint{Line: p.Line, Col: p.Col}
		}

		session.SetSelection(m.SelectionState{Focus: m.CellRange{Start: op.Index, End: op.Index + 1}})

		return session.Split(points)

	case "move":
		edits, err := cellops.Move(nb, r, op.To)
		if err != nil {
			return err
		}

		return session.Apply(edits, nil, ApplyOptions{Atomic: true, Label: "move cells"})

	case "copy":
		edits, err := cellops.Copy(nb, r)
		if err != nil {
			return err
		}

		return session.Apply(edits, nil, ApplyOptions{Atomic: true, Label: "copy cells"})

	case "insert":
		cell := &m.Cell{Kind: m.CellKind(op.Kind), Language: op.Language}
		if cell.Kind == "" {
			cell.Kind = m.KindCode
		}

		cell.SetText(op.Source)

		return session.InsertAt(op.Index, cell)

	case "delete":
		edits, err := cellops.Delete(nb, r)
		if err != nil {
			return err
		}

		return session.Apply(edits, nil, ApplyOptions{Atomic: true, Label: "delete cells"})

	case "set-kind":
		edits, err := cellops.ChangeKind(nb, op.Index, m.CellKind(op.Kind))
		if err != nil {
			return err
		}

		return session.Apply(edits, nil, ApplyOptions{Atomic: true, Label: "change cell kind"})

	default:
		return fmt.Errorf("unknown operation %q", op.Op)
	}
}

// Edit opens an interactive editing session on the notebook.
func (w *workflow) Edit(path m.Path) error {
	nb, err := w.store.Load(path)
	if err != nil {
		return err
	}

	session := NewSession(nb, WithSaver(func(n *m.Notebook) error {
		return w.store.Save(n.Origin, n)
	}))

	return w.ui.RunEditor(session)
}
