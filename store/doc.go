// Package store persists a vector.Table into SQLite. Words are kept in rank
// order with their embeddings encoded as little-endian float32 BLOBs, so the
// vec_cosine and vec_l2 functions registered by package engine can be used
// directly against the exported table.
package store
