package booking

// Actor is the panel a status change comes from.
type Actor string

const (
	ActorClient Actor = "client"
	ActorMaster Actor = "master"
	ActorAdmin  Actor = "admin"
)

// AvailableActions lists the target statuses a panel offers for a booking in status s.
// Only staff panels may complete a visit.
func AvailableActions(s Status, actor Actor) []Status {
	actions := make([]Status, 0, 2)
	for _, next := range transitions[s] {
		if next == StatusCompleted && actor == ActorClient {
			continue
		}
		actions = append(actions, next)
	}
	return actions
}

// ChangeStatus validates a transition requested by actor.
func ChangeStatus(current, next Status, actor Actor) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if current.IsTerminal() {
		return ErrTerminalStatus
	}
	for _, allowed := range AvailableActions(current, actor) {
		if allowed == next {
			return nil
		}
	}
	return ErrIllegalTransition
}
