// Package sim provides the orchestration core for time-stepped
// field/particle simulations.
//
// A simulation is assembled from configuration and a [Registry] of component
// factories, then driven through a fixed number of clock steps:
//
//   - [Module]: a unit of physics that owns state and updates it once per step
//   - [Tool]: a reusable numerical procedure shared across modules (e.g. a
//     particle pusher implementing [Pusher])
//   - [Diagnostic]: an observer that records published state each step
//   - [Clock]: the shared simulation time source with a fixed dt
//
// # Resource exchange
//
// Modules share numeric state through named buffers collected into a
// [Resources] table during Prepare. A producer implementing [Publisher]
// contributes its buffers once; consumers implementing [Subscriber] receive
// the whole table and keep references to the buffers they need. Producers
// mutate buffer contents in place and never replace the backing slice, so a
// reference obtained at wiring time always observes the latest values.
//
// # Step ordering
//
// Each step runs strictly in sequence: the clock advances, modules update in
// declaration order, diagnostics diagnose in declaration order. There is one
// writer per buffer and every read happens after that step's write, so no
// locking is involved anywhere.
//
// # Example
//
//	cfg, _ := config.Load("wave.yaml")
//	s, _ := sim.New(cfg, reg, logger)
//	if err := s.Run(ctx); err != nil {
//		log.Fatal(err)
//	}
package sim
