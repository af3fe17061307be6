// Package order contains the Order aggregate: a forwarded parcel with two
// independent state machines (processing status and delivery status), a
// generated business number, and an append-only history of status updates.
//
// All mutations go through aggregate methods that take the acting party as a
// kernel.Actor, so capability checks and history recording cannot be skipped.
package order
