// Package notification contains the outbox Notification aggregate. Status
// transitions that trigger customer messages enqueue pending rows here, and
// a background job dispatches them through a transport port.
package notification
