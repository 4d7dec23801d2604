// Package fitdata provides fitting datasets: measurements of an independent
// variable x and a dependent variable y, each with an uncertainty column.
//
// Datasets are either built from existing columns with Build or generated
// synthetically with Random, which samples a model function and adds noise.
// Random is primarily meant for examples, demos and tests of the plotting
// helpers.
//
// Reading datasets from files is out of scope for this package.
package fitdata
