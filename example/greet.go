// Package example is the sample library shipped with the libkit template.
// It exists to give the tests, examples, benchmarks and documentation tooling
// something real to work on.
package example

// Greet returns a greeting for name.
func Greet(name string) string {
	return "Hello, " + name + "!"
}
