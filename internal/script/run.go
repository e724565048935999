package script

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/thenoetrevino/paso-board/internal/board"
	"github.com/thenoetrevino/paso-board/internal/cli/styles"
	"github.com/thenoetrevino/paso-board/internal/events"
	"github.com/thenoetrevino/paso-board/internal/gesture"
	"github.com/thenoetrevino/paso-board/internal/models"
	"github.com/thenoetrevino/paso-board/internal/session"
	"github.com/thenoetrevino/paso-board/internal/types"
)

// Result is the board left behind by a replay
type Result struct {
	Name     string              `json:"name,omitempty"`
	Columns  []models.Column     `json:"columns"`
	Tasks    []models.Task       `json:"tasks"`
	Revision board.Revision      `json:"revision"`
	Aliases  map[string]types.ID `json:"aliases"`
	Events   int64               `json:"events"`

	state board.State
}

// State returns the final snapshot
func (r *Result) State() board.State {
	return r.state
}

// Pretty renders the board for the human output mode
func (r *Result) Pretty() string {
	return styles.RenderBoard(r.state)
}

// Quiet prints the final revision as "columns/tasks"
func (r *Result) Quiet() string {
	return strconv.FormatUint(r.Revision.Columns, 10) + "/" + strconv.FormatUint(r.Revision.Tasks, 10)
}

type binding struct {
	id   types.ID
	kind models.ElementKind
}

// GeneratorFunc builds the generator for one run
type GeneratorFunc func() board.Generator

// Runner replays scripts against a fresh session per run. Each run gets its
// own generator, so replaying a script twice yields the same identifiers.
type Runner struct {
	newGen GeneratorFunc
	logger *slog.Logger
	debug  bool
}

// NewRunner creates a Runner. A nil newGen uses a SequenceGenerator so
// replays are reproducible.
func NewRunner(newGen GeneratorFunc, logger *slog.Logger, debug bool) *Runner {
	if newGen == nil {
		newGen = func() board.Generator { return board.NewSequenceGenerator("", "") }
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{newGen: newGen, logger: logger, debug: debug}
}

// Run executes every step in order and returns the final board.
// A step referencing an unbound alias stops the run.
func (r *Runner) Run(s *Script) (*Result, error) {
	bus := events.NewBus()
	sess := session.New(
		session.WithGenerator(r.newGen()),
		session.WithPublisher(bus),
		session.WithLogger(r.logger),
		session.WithDebug(r.debug),
	)

	run := &run{sess: sess, aliases: make(map[string]binding)}
	for i, step := range s.Steps {
		if err := run.apply(step); err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i+1, step.Op, err)
		}
	}

	state := sess.State()
	aliases := make(map[string]types.ID, len(run.aliases))
	for name, b := range run.aliases {
		aliases[name] = b.id
	}

	r.logger.Info("replay finished",
		"name", s.Name,
		"steps", len(s.Steps),
		"columns", len(state.Columns()),
		"tasks", len(state.Tasks()))

	return &Result{
		Name:     s.Name,
		Columns:  state.Columns(),
		Tasks:    state.Tasks(),
		Revision: state.Revision(),
		Aliases:  aliases,
		Events:   bus.Sequence(),
		state:    state,
	}, nil
}

type run struct {
	sess    *session.Session
	aliases map[string]binding
}

func (r *run) apply(step Step) error {
	switch step.Op {
	case OpAddColumn:
		if err := r.checkFree(step.As); err != nil {
			return err
		}
		column := r.sess.AddColumn()
		r.bind(step.As, column.ID, models.KindColumn)

	case OpRenameColumn:
		ref, err := r.lookup(step.Ref)
		if err != nil {
			return err
		}
		r.sess.RenameColumn(ref.id, step.Title)

	case OpRemoveColumn:
		ref, err := r.lookup(step.Ref)
		if err != nil {
			return err
		}
		r.sess.RemoveColumn(ref.id)

	case OpAddTask:
		if err := r.checkFree(step.As); err != nil {
			return err
		}
		column, err := r.lookup(step.Column)
		if err != nil {
			return err
		}
		task := r.sess.AddTask(column.id)
		r.bind(step.As, task.ID, models.KindTask)

	case OpEditTask:
		ref, err := r.lookup(step.Ref)
		if err != nil {
			return err
		}
		r.sess.EditTask(ref.id, step.Content)

	case OpRemoveTask:
		ref, err := r.lookup(step.Ref)
		if err != nil {
			return err
		}
		r.sess.RemoveTask(ref.id)

	case OpDrag:
		active, over, err := r.gestureTargets(step)
		if err != nil {
			return err
		}
		r.sess.Dispatch(gesture.Start(active))
		if over != nil {
			r.sess.Dispatch(gesture.Over(active, over))
		}
		if step.Cancel {
			r.sess.Dispatch(gesture.Cancel())
		} else {
			r.sess.Dispatch(gesture.Drop(active, over))
		}

	case OpStart, OpOver, OpDrop:
		active, over, err := r.gestureTargets(step)
		if err != nil {
			return err
		}
		switch step.Op {
		case OpStart:
			r.sess.Dispatch(gesture.Start(active))
		case OpOver:
			r.sess.Dispatch(gesture.Over(active, over))
		case OpDrop:
			r.sess.Dispatch(gesture.Drop(active, over))
		}

	case OpCancel:
		r.sess.Dispatch(gesture.Cancel())

	default:
		return ErrUnknownOp
	}
	return nil
}

func (r *run) gestureTargets(step Step) (gesture.Element, *gesture.Element, error) {
	active, err := r.lookup(step.Active)
	if err != nil {
		return gesture.Element{}, nil, err
	}
	el := gesture.Element{ID: active.id, Kind: active.kind}

	if step.Over == "" {
		return el, nil, nil
	}
	over, err := r.lookup(step.Over)
	if err != nil {
		return gesture.Element{}, nil, err
	}
	target := &gesture.Element{ID: over.id, Kind: over.kind}
	if step.OverKind != "" {
		target.Kind = models.ParseElementKind(step.OverKind)
	}
	return el, target, nil
}

func (r *run) lookup(alias string) (binding, error) {
	b, ok := r.aliases[alias]
	if !ok {
		return binding{}, fmt.Errorf("%w: %q", ErrUnknownAlias, alias)
	}
	return b, nil
}

func (r *run) checkFree(alias string) error {
	if alias == "" {
		return nil
	}
	if _, taken := r.aliases[alias]; taken {
		return fmt.Errorf("%w: %q", ErrDuplicateAlias, alias)
	}
	return nil
}

func (r *run) bind(alias string, id types.ID, kind models.ElementKind) {
	if alias != "" {
		r.aliases[alias] = binding{id: id, kind: kind}
	}
}
