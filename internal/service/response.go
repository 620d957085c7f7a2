package service

// InboundMessageResult is the webhook outcome: either a canned reply for
// help-keyword messages or a plain acknowledgement.
type InboundMessageResult struct {
	Reply   string
	Success bool
}
