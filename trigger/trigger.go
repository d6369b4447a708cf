package trigger

// Triggerrer is an interface that describes an event which can be
// triggered by some noteworthy occurrence elsewhere in the host
// application. Implementations decide what the event does; callers only
// ask for it to happen and learn whether it could not.
type Triggerrer interface {
	Trigger() error
}
