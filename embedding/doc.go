// Package embedding turns phrases into vectors using a pretrained word
// vector table and compares them with cosine similarity.
//
// A Processor owns one vector table. The table is read from its Source on the
// first call that needs it (or by an explicit Load) and is immutable from
// then on, so a Processor can be shared between goroutines.
//
// Phrases are split on whitespace. Each token is looked up case-sensitively,
// and the token vectors are pooled (mean by default) into the phrase vector.
// EmbedPhrases and Similarity use the same pooling, so the two operations
// always agree on what a phrase's vector is.
package embedding
