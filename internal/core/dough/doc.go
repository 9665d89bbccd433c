// Package dough is the calculation engine: the yeast model, the
// ingredient mass balance and the fermentation timeline.
//
// Every function is a pure computation over immutable inputs. The
// heuristic constants are bundled in a Model value that is passed
// explicitly, so there is no package-level mutable state and all
// functions are safe to call from any goroutine.
//
// Invalid inputs are rejected with *domain.InvalidParameterError; the
// engine never clamps or substitutes defaults and never returns Inf/NaN.
package dough
