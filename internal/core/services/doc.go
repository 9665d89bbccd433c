// Package services implements the driving port interfaces.
// Services contain the application logic and orchestrate
// calls to the calculation engine and to driven ports (adapters).
//
// Services are pure Go with no CGO or external dependencies beyond
// identifiers and logging.
package services
