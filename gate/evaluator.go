package gate

// Evaluator checks a user against every channel of the registry.
type Evaluator struct {
	registry *Registry
	oracle   *Oracle
}

func NewEvaluator(registry *Registry, oracle *Oracle) *Evaluator {
	return &Evaluator{
		registry: registry,
		oracle:   oracle,
	}
}

// UnjoinedChannels returns the channels userID has not joined, in registry
// order. An empty result means the user may pass.
func (e *Evaluator) UnjoinedChannels(userID int64) []Channel {
	var unjoined []Channel
	for _, ch := range e.registry.Channels() {
		if !e.oracle.Query(ch, userID).Joined() {
			unjoined = append(unjoined, ch)
		}
	}
	return unjoined
}
