// Package mem defines the core address and size types shared by the
// earlymem allocator packages.
//
// Addresses are raw and non-owning: an Addr returned by an allocator is a
// plain number into a managed region, with no lifetime tracking attached.
// Callers are responsible for not touching memory after they have logically
// released it.
package mem
