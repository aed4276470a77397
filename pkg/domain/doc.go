/*
Package domain defines the core value types of motordoc: the Design
snapshot with its embedded Propellant, Grain stack and Nozzle, the
change notification event, and the sentinel errors shared by all
adapters.

Types here carry no behavior beyond value semantics (Clone, Equal);
ownership and mutation rules live in the workspace and library packages.
*/
package domain
