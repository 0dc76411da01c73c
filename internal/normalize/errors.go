// Package normalize shapes arbitrary document-like input into a fully-formed
// canonical Document.
package normalize

import "fmt"

// InvalidInputError reports input that is not an object at all (null, array,
// or primitive). This is the only hard failure the normalizer produces.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Message)
}
