// Package content contains the Article aggregate for marketing content:
// news, service descriptions and FAQ entries with a publish flag.
package content
