// Package fake provides an in-memory Bluetooth Low Energy management stack for tests.
//
// The package models the logical state a Bluetooth management API exposes:
//   - Adapters owning discovered or bonded Devices
//   - Devices owning GATT Services
//   - Services owning Characteristics (and referencing included Services)
//   - Characteristics owning Descriptors
//
// Every attribute is guarded by its own lock, so unrelated attributes of the same
// entity can be read and written concurrently. Reading two attributes in sequence
// gives no snapshot guarantee. Child lists are guarded as a whole and returned as
// copies. Parent links are plain navigation pointers fixed at construction.
//
// There is no radio I/O, no event loop and no notification delivery: every call
// completes synchronously against in-memory state.
package fake
