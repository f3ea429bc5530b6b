// Package domain holds the task tracker's entities (User, Task, TaskStatus,
// Label), their validation rules, and the Patch type used for partial
// updates. Nothing here knows about HTTP or SQL.
package domain
