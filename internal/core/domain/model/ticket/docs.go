// Package ticket contains the support Ticket aggregate: a customer request
// with a conversation thread. System-authored messages double as the status
// history, and the business number is sequenced, assigned two-phase by the
// repository at first insert.
package ticket
