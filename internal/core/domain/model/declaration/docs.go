// Package declaration contains the customs Declaration aggregate. A
// declaration starts as a customer draft, is submitted into a staff review
// workflow, and ends completed. Review timestamps and the reviewer identity
// are stamped once and never overwritten.
package declaration
