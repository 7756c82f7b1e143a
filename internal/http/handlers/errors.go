package handlers

import "github.com/ArchitSaxena349/credit-approval-system/internal/creditapi"

// errorMessage maps a failed call to the text rendered in the view: remote
// errors surface the structured body or status text as-is, anything that
// never reached the service gets a generic message.
func errorMessage(err error) string {
	if re, ok := creditapi.AsRemote(err); ok {
		return re.Detail()
	}
	return "Could not reach the credit service. Please try again."
}
