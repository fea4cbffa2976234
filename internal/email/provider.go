package email

// Provider sends transactional mail. Sending is best effort: callers
// log failures but never fail the triggering request because of them.
type Provider interface {
	SendWelcome(to, name string) error
}
