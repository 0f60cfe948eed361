package sim

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/calanor/fieldrig/internal/config"
	"github.com/calanor/fieldrig/internal/grid"
)

type namedModule struct {
	name   string
	module Module
}

type namedDiagnostic struct {
	name string
	diag Diagnostic
}

// Simulation owns the grid, clock, and every configured component, and
// drives them through the run lifecycle. Components are instantiated in
// declaration order: tools first (modules locate them by name during
// construction), then modules, then diagnostics.
type Simulation struct {
	cfg *config.File
	reg *Registry
	log zerolog.Logger

	grid  *grid.Grid
	clock *Clock

	tools       map[string]Tool
	toolOrder   []string
	modules     []namedModule
	diagnostics []namedDiagnostic

	resources Resources
	prepared  bool
}

// New instantiates a simulation from cfg, resolving component types through
// reg. The returned simulation has not run any lifecycle hook yet; call
// Prepare (or Run, which prepares first).
func New(cfg *config.File, reg *Registry, log zerolog.Logger) (*Simulation, error) {
	g, err := grid.New(cfg.Grid.Min, cfg.Grid.Max, cfg.Grid.N)
	if err != nil {
		return nil, fmt.Errorf("grid: %w", err)
	}
	clock, err := NewClock(cfg.Clock.Start, cfg.Clock.End, cfg.Clock.NumSteps, cfg.Clock.Dt)
	if err != nil {
		return nil, fmt.Errorf("clock: %w", err)
	}

	s := &Simulation{
		cfg:       cfg,
		reg:       reg,
		log:       log,
		grid:      g,
		clock:     clock,
		tools:     make(map[string]Tool),
		resources: make(Resources),
	}

	for _, c := range cfg.Tools {
		name := c.InstanceName()
		if _, ok := s.tools[name]; ok {
			return nil, fmt.Errorf("%w: tool %q", ErrDuplicateName, name)
		}
		tool, err := reg.NewTool(c.Type, s, Params(c.Params))
		if err != nil {
			return nil, fmt.Errorf("tool %q: %w", name, err)
		}
		s.tools[name] = tool
		s.toolOrder = append(s.toolOrder, name)
	}
	for _, c := range cfg.Modules {
		name := c.InstanceName()
		if s.findModule(name) != nil {
			return nil, fmt.Errorf("%w: module %q", ErrDuplicateName, name)
		}
		mod, err := reg.NewModule(c.Type, s, Params(c.Params))
		if err != nil {
			return nil, fmt.Errorf("module %q: %w", name, err)
		}
		s.modules = append(s.modules, namedModule{name: name, module: mod})
	}
	for _, c := range cfg.Diagnostics {
		diag, err := reg.NewDiagnostic(c.Type, s, Params(c.Params))
		if err != nil {
			return nil, fmt.Errorf("diagnostic %q: %w", c.InstanceName(), err)
		}
		s.diagnostics = append(s.diagnostics, namedDiagnostic{name: c.InstanceName(), diag: diag})
	}
	return s, nil
}

func (s *Simulation) findModule(name string) Module {
	for _, m := range s.modules {
		if m.name == name {
			return m.module
		}
	}
	return nil
}

// Grid returns the spatial grid shared by all components.
func (s *Simulation) Grid() *grid.Grid { return s.grid }

// Clock returns the run clock.
func (s *Simulation) Clock() *Clock { return s.clock }

// Logger returns the simulation's logger.
func (s *Simulation) Logger() zerolog.Logger { return s.log }

// FindTool returns the tool registered under the given instance name.
func (s *Simulation) FindTool(name string) (Tool, error) {
	tool, ok := s.tools[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrToolNotFound, name)
	}
	return tool, nil
}

// Resource returns the shared buffer published under name. Valid only
// after Prepare.
func (s *Simulation) Resource(name string) ([]float64, error) {
	return s.resources.Get(name)
}

// Prepare runs the setup phase: tools initialize, publishers contribute
// their buffers, subscribers are wired to the buffers they need, then
// modules and diagnostics initialize, all in declaration order. Preparing
// twice is a no-op.
func (s *Simulation) Prepare() error {
	if s.prepared {
		return nil
	}
	for _, name := range s.toolOrder {
		if err := s.tools[name].Initialize(); err != nil {
			return fmt.Errorf("tool %q: %w", name, err)
		}
	}
	for _, m := range s.modules {
		pub, ok := m.module.(Publisher)
		if !ok {
			continue
		}
		if err := s.resources.merge(pub.Publish()); err != nil {
			return fmt.Errorf("module %q: %w", m.name, err)
		}
	}
	for _, m := range s.modules {
		sub, ok := m.module.(Subscriber)
		if !ok {
			continue
		}
		if err := sub.Subscribe(s.resources); err != nil {
			return fmt.Errorf("module %q: %w", m.name, err)
		}
	}
	for _, d := range s.diagnostics {
		sub, ok := d.diag.(Subscriber)
		if !ok {
			continue
		}
		if err := sub.Subscribe(s.resources); err != nil {
			return fmt.Errorf("diagnostic %q: %w", d.name, err)
		}
	}
	for _, m := range s.modules {
		if err := m.module.Initialize(); err != nil {
			return fmt.Errorf("module %q: %w", m.name, err)
		}
	}
	for _, d := range s.diagnostics {
		if err := d.diag.Initialize(); err != nil {
			return fmt.Errorf("diagnostic %q: %w", d.name, err)
		}
	}
	s.prepared = true
	s.log.Info().
		Int("tools", len(s.tools)).
		Int("modules", len(s.modules)).
		Int("diagnostics", len(s.diagnostics)).
		Int("resources", len(s.resources)).
		Msg("simulation prepared")
	return nil
}

// Step advances the clock one tick, updates every module in declaration
// order, then runs every diagnostic. Callers driving the loop themselves
// must have called Prepare first.
func (s *Simulation) Step() error {
	s.clock.Advance()
	for _, m := range s.modules {
		if err := m.module.Update(); err != nil {
			return fmt.Errorf("module %q: %w", m.name, err)
		}
	}
	for _, d := range s.diagnostics {
		if err := d.diag.Diagnose(); err != nil {
			return fmt.Errorf("diagnostic %q: %w", d.name, err)
		}
	}
	return nil
}

// Run executes the whole lifecycle: prepare, step until the clock stops or
// ctx is cancelled, finalize. Finalize runs only after a completed loop;
// an aborted run leaves diagnostics unflushed.
func (s *Simulation) Run(ctx context.Context) error {
	if err := s.Prepare(); err != nil {
		return err
	}
	s.log.Info().
		Int("num_steps", s.clock.NumSteps()).
		Float64("dt", s.clock.Dt()).
		Msg("run started")
	for s.clock.Running() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := s.Step(); err != nil {
			return err
		}
	}
	if err := s.Finalize(); err != nil {
		return err
	}
	s.log.Info().Float64("time", s.clock.Time()).Msg("run finished")
	return nil
}

// Finalize runs every diagnostic's Finalize in declaration order.
func (s *Simulation) Finalize() error {
	for _, d := range s.diagnostics {
		if err := d.diag.Finalize(); err != nil {
			return fmt.Errorf("diagnostic %q: %w", d.name, err)
		}
	}
	return nil
}
