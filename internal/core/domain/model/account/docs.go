// Package account contains the Account aggregate for registered users:
// credentials, profile, the generated client code, and the staff and email
// verification flags.
package account
