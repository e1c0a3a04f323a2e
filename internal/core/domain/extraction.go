package domain

// ExtractionOutcome classifies the result of looking for a specification
// in model output.
type ExtractionOutcome string

const (
	OutcomeNoSpec    ExtractionOutcome = "NO_SPEC"
	OutcomeRejected  ExtractionOutcome = "REJECTED"
	OutcomeValidated ExtractionOutcome = "VALIDATED"
)

// Extraction is the caller-facing result of extract-and-validate. Spec is
// set only for OutcomeValidated and Rejection only for OutcomeRejected.
type Extraction struct {
	Outcome   ExtractionOutcome
	Spec      ValidatedSpec
	Rejection *ValidationError
}
