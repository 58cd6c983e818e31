// Package vector holds the float32 primitives shared by this module:
//   - Table, the ordered word-to-vector mapping loaded from a word2vec source
//   - elementwise arithmetic used to pool word vectors into phrase vectors
//   - cosine similarity, L2 distance and magnitude
//   - the little-endian float32 BLOB encoding used by word2vec binary records
//     and the SQLite word store
package vector
