// Package motionplan is the kinematic motion-validation and path-shortening
// core of a sampling-based motion planner. It decides whether a straight-line
// motion between two configurations is collision-free at a resolution
// dictated by the configuration space (Space), samples configurations
// (Sampler), repairs invalid start/goal configurations (Repairer), and
// densifies or shortens a piecewise-linear path (Interpolate, Simplifier)
// while preserving validity.
//
// The package is single-threaded and synchronous: no operation suspends or
// blocks on I/O, and every exported type that carries mutable state (Sampler,
// Simplifier) is meant for exclusive use by one caller at a time. Concurrent
// callers should construct independent instances, each with its own random
// source and scratch Path.
//
// Planner algorithms, goal representations, inverse kinematics, and any
// specific collision-detection backend are out of scope: this package
// consumes a validity predicate (ValidityFunc) as an injected capability and
// says nothing about how it is implemented.
package motionplan
