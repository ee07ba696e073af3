package models

// PageState is everything the CV page renders.
type PageState struct {
	Connected bool
	CVs       []CVDB
	Error     string // Error from the last backend call, empty when it succeeded
	Notice    string
	Email     string // Form values echoed back after a failed submission
	Data      string
}
