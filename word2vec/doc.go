// Package word2vec reads and writes the two interchange layouts produced by
// the word2vec C tool and by gensim's save_word2vec_format:
//
//   - binary: a "<vocab> <dim>\n" header followed by records made of a
//     space-terminated word and dim little-endian float32 values
//   - text: the same header followed by one "<word> <c0> ... <cN>" line per word
//
// Both readers honor a vocabulary limit and stop after that many records,
// which keeps the most frequent words of a frequency-ordered file.
package word2vec
