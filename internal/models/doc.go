// Package models defines the core domain models for homebills.
//
// # Models
//
//   - Provider: a utility company and the category of bills it issues
//   - Bill: a typed bill (electricity, water or gas) owed by a user
//   - Payment: an amount a user recorded as paid on a given date
//   - User: a household member with their bills and payments
//
// # Design Principles
//
// 1. **Identity lives in the registry**: ids are assigned by the storage layer,
// entities do not carry them.
// 2. **No shared pointers**: a Bill references its Provider by id, so removing a
// provider never invalidates memory, only the lookup.
// 3. **Snapshots**: values returned by storage are copies; mutate through the
// storage operations.
package models
