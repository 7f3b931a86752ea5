package metadata

import "fmt"

type State string

const (
	StateWorking State = "working"
	StateBroken  State = "broken"
	StateRepair  State = "repair"
	StateRetired State = "retired"
)

func newState(value string) (State, error) {
	state := State(value)
	if !state.isValid() {
		return "", fmt.Errorf("invalid state: %s", value)
	}
	return state, nil
}

func (s State) isValid() bool {
	switch s {
	case StateWorking, StateBroken, StateRepair, StateRetired:
		return true
	default:
		return false
	}
}
