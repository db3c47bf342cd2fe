// Package datastorepbs converts entities, keys, values and query fragments
// between the three datastore wire schemas: the legacy v3 schema
// (entityv3), the intermediate v4 schema (entityv4) and the modern v1
// schema (google.golang.org/genproto/googleapis/datastore/v1).
//
// The legacy schema encodes type information out of band in property
// meanings, so the conversions are not purely structural: meanings are
// validated against the value they annotate, recovered when a modern value
// maps onto a legacy string slot, and dropped when the destination schema
// expresses the same information natively. Conversions fail fast with
// InvalidConversionError; on error the returned message may be partially
// populated and must be discarded.
package datastorepbs
