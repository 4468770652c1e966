// Package topology holds the schema descriptors the reconciler works on: the Schema
// value, its type and compatibility enums, the subject to file naming convention and
// the YAML manifest that lists the desired schemas.
package topology
