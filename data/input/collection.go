package input

import "io"

// Collection is a finite set of raw samples with a defined length and random
// access. Loaded data for an Input must implement it.
type Collection interface {
	Len() int
	At(i int) Sample
}

// Iterator yields raw samples sequentially. Next returns io.EOF once the
// source is exhausted.
type Iterator interface {
	Next() (Sample, error)
}

// Stream is a source of raw samples without a defined length. Samples returns
// a fresh iterator, one per pass. Loaded data for an IterableInput must
// implement Stream and must not implement Collection.
type Stream interface {
	Samples() Iterator
}

// Samples is the canonical finite collection.
type Samples []Sample

func (s Samples) Len() int        { return len(s) }
func (s Samples) At(i int) Sample { return s[i] }

// StreamFunc adapts a function returning a fresh iterator into a Stream.
type StreamFunc func() Iterator

// Samples implements Stream.
func (f StreamFunc) Samples() Iterator { return f() }

// StreamOf returns a re-iterable Stream over the given samples. It is mainly
// useful for tests and for sources that are naturally sequential.
func StreamOf(samples ...Sample) Stream {
	return StreamFunc(func() Iterator {
		return &sliceIterator{samples: samples}
	})
}

type sliceIterator struct {
	samples []Sample
	next    int
}

func (it *sliceIterator) Next() (Sample, error) {
	if it.next >= len(it.samples) {
		return nil, io.EOF
	}
	s := it.samples[it.next]
	it.next++
	return s, nil
}
