// Package ports defines the contracts between the application core and its
// adapters: the identity, order and outbox stores, the unit of work, the
// token service, the credential hasher, the event publisher and the clock.
package ports
