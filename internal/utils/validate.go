package utils

// Validatable is an object that can check its own internal consistency
type Validatable interface {
	Validate() error
}
