// Package notification contains the workflow notification entity and the
// role-based channel policy.
//
// Notifications are created pending, handed to the dispatcher exactly once
// per attempt cycle, and end up sent or failed. Failed notifications are
// picked up again by the redelivery job until the attempt limit is reached.
package notification
