// Package taskdata turns heterogeneous raw data sources into training-ready
// sample collections for machine learning task libraries.
//
// The library has two cooperating cores:
//
//   - The input abstraction (data/input): a uniform contract for "a
//     collection of raw samples plus per-sample loading hooks", bound to a
//     single running stage (train, validate, test, predict, serve). Finite
//     sources with a known length use Input; streaming sources use
//     IterableInput. Picking the wrong shape for a source fails at
//     construction time.
//
//   - The target normalization engine (data/classification): given the raw,
//     unnormalized labels of a dataset, infer the canonical TargetMode,
//     derive the label vocabulary and class count, and build a
//     TargetFormatter that maps every later raw label - train or inference
//     time - into the numeric representation a loss function expects.
//     Statistics are computed once, on training data, and reapplied
//     verbatim on every other split via a shared state store (data/state).
//
// # Quick start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/taskml/taskdata/core/stage"
//	    "github.com/taskml/taskdata/data/classification"
//	    "github.com/taskml/taskdata/data/state"
//	)
//
//	func main() {
//	    store := state.NewStore()
//
//	    train, err := classification.NewListInput(stage.Training, store,
//	        []any{"a.png", "b.png", "c.png"},
//	        []any{"ants,bees", "ants", "bees"},
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    sample, _ := train.Get(0)
//	    fmt.Println(sample) // target formatted to the multi-hot vector [1 1]
//	}
//
// Error construction throughout the library uses cockroachdb/errors so that
// failures carry stack traces, and the typed errors in pkg/errors marshal
// themselves as structured zerolog objects.
package taskdata
