package sim

// Module is a unit of simulated physics. It owns state, sets it to its
// t=0 value in Initialize, and advances it once per clock step in Update.
type Module interface {
	Initialize() error
	Update() error
}

// Tool is a reusable numerical procedure shared across modules. Tools are
// initialized after the clock exists and before any module initializes, so
// they may capture fixed run parameters such as the timestep.
type Tool interface {
	Initialize() error
}

// Pusher advances a particle's position and momentum through one timestep.
// Push mutates position and momentum in place; e and b are the electric and
// magnetic field samples at the particle, as 3-vectors.
type Pusher interface {
	Tool
	Push(position, momentum []float64, charge, mass float64, e, b []float64)
}

// Diagnostic observes published resources and records them. Diagnose runs
// once per step after all modules have updated; Finalize runs once at the
// end of the run and is where buffered output reaches disk.
type Diagnostic interface {
	Initialize() error
	Diagnose() error
	Finalize() error
}

// Publisher is implemented by modules that share buffers with the rest of
// the simulation. Publish is called once, during Prepare.
type Publisher interface {
	Publish() Resources
}

// Subscriber is implemented by modules and diagnostics that read buffers
// owned by other components. Subscribe is called once, during Prepare,
// after every publisher has contributed; implementations keep references
// to the buffers they need.
type Subscriber interface {
	Subscribe(Resources) error
}
