package pipeline

// State is how far a submission got. States only move forward; a failure leaves
// the submission at the last state reached, with earlier writes in place.
type State int

const (
	StateReceived State = iota
	StateValidated
	StateSchemaEnsured
	StateRecorded
	StateTranslated
	StateTranslatedRowWritten
	StateKarteCreated
	StateNotified
	StateAcknowledged
)

var stateNames = [...]string{
	"received",
	"validated",
	"schema-ensured",
	"recorded",
	"translated",
	"translated-row-written",
	"karte-created",
	"notified",
	"acknowledged",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}
