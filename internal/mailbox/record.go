// Package mailbox holds the email record type and the pure collection
// operations the mail views are built on. The package owns no records:
// every function takes the caller's slice and returns a new one, so a
// view can keep its canonical list and stay the only mutator.
package mailbox

// Record is one message-like item in a mailbox.
type Record struct {
	ID        string   `yaml:"id"`
	From      string   `yaml:"from"`
	FromEmail string   `yaml:"from_email"`
	Subject   string   `yaml:"subject"`
	Preview   string   `yaml:"preview"`
	Body      string   `yaml:"body"`
	Date      string   `yaml:"date"` // display label only, never used for ordering
	Read      bool     `yaml:"read"`
	Starred   bool     `yaml:"starred"`
	Labels    []string `yaml:"labels"`
}
