// Package engine provides helpers for working with the modernc.org/sqlite
// driver: opening connections and registering the vec_cosine and vec_l2 SQL
// scalar functions over embeddings stored as little-endian float32 BLOBs.
package engine
