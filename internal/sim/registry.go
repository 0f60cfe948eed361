package sim

import (
	"fmt"
	"sort"
)

// Factory signatures for the three component kinds. Factories receive the
// owning simulation, which already carries the grid, clock, and tool table
// when module and diagnostic factories run.
type (
	ModuleFactory     func(s *Simulation, p Params) (Module, error)
	ToolFactory       func(s *Simulation, p Params) (Tool, error)
	DiagnosticFactory func(s *Simulation, p Params) (Diagnostic, error)
)

// Registry maps component type names to factories. It is explicit and
// injectable: each physics package contributes its types through a Register
// function, and the caller passes the populated registry to New.
type Registry struct {
	modules     map[string]ModuleFactory
	tools       map[string]ToolFactory
	diagnostics map[string]DiagnosticFactory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		modules:     make(map[string]ModuleFactory),
		tools:       make(map[string]ToolFactory),
		diagnostics: make(map[string]DiagnosticFactory),
	}
}

// RegisterModule adds a module factory under typ.
func (r *Registry) RegisterModule(typ string, f ModuleFactory) error {
	if _, ok := r.modules[typ]; ok {
		return fmt.Errorf("%w: module %q", ErrDuplicateType, typ)
	}
	r.modules[typ] = f
	return nil
}

// RegisterTool adds a tool factory under typ.
func (r *Registry) RegisterTool(typ string, f ToolFactory) error {
	if _, ok := r.tools[typ]; ok {
		return fmt.Errorf("%w: tool %q", ErrDuplicateType, typ)
	}
	r.tools[typ] = f
	return nil
}

// RegisterDiagnostic adds a diagnostic factory under typ.
func (r *Registry) RegisterDiagnostic(typ string, f DiagnosticFactory) error {
	if _, ok := r.diagnostics[typ]; ok {
		return fmt.Errorf("%w: diagnostic %q", ErrDuplicateType, typ)
	}
	r.diagnostics[typ] = f
	return nil
}

// NewModule instantiates a module of the named type.
func (r *Registry) NewModule(typ string, s *Simulation, p Params) (Module, error) {
	f, ok := r.modules[typ]
	if !ok {
		return nil, fmt.Errorf("%w: module %q", ErrUnknownType, typ)
	}
	return f(s, p)
}

// NewTool instantiates a tool of the named type.
func (r *Registry) NewTool(typ string, s *Simulation, p Params) (Tool, error) {
	f, ok := r.tools[typ]
	if !ok {
		return nil, fmt.Errorf("%w: tool %q", ErrUnknownType, typ)
	}
	return f(s, p)
}

// NewDiagnostic instantiates a diagnostic of the named type.
func (r *Registry) NewDiagnostic(typ string, s *Simulation, p Params) (Diagnostic, error) {
	f, ok := r.diagnostics[typ]
	if !ok {
		return nil, fmt.Errorf("%w: diagnostic %q", ErrUnknownType, typ)
	}
	return f(s, p)
}

// ModuleTypes lists registered module types, sorted.
func (r *Registry) ModuleTypes() []string {
	names := make([]string, 0, len(r.modules))
	for name := range r.modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ToolTypes lists registered tool types, sorted.
func (r *Registry) ToolTypes() []string {
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DiagnosticTypes lists registered diagnostic types, sorted.
func (r *Registry) DiagnosticTypes() []string {
	names := make([]string, 0, len(r.diagnostics))
	for name := range r.diagnostics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
