// Package secret contains the Secret aggregate: a randomly generated key
// string with its creation timestamp. Secrets are immutable after creation
// and are only ever deleted in bulk.
package secret
