// Package physics holds the field and particle modules of the rig.
//
// Both types implement the [sim.Module] lifecycle and share state through
// published resources:
//
//   - [EMWave]: traveling plane-wave electric field over the grid,
//     published as "EMField:E"
//   - [ChargedParticle]: a single electron driven through the field,
//     published as "ChargedParticle:position" and "ChargedParticle:momentum"
//
// The wave obeys the vacuum dispersion relation k = ω/c. The particle
// samples the field at its fixed initial location and hands the sample to
// its configured pusher; only the y component is driven, and the magnetic
// field is always zero.
//
// # Electron Constants
//
// Charge and mass carry the conventional positive values:
//
//	p, _ := physics.NewChargedParticle(s, params)
//	kick := physics.ElectronCharge * e / physics.ElectronMass
package physics
