package repository

// ListTasksOptions holds the parameters for listing the tasks of one list.
type ListTasksOptions struct {
	ListID          string
	IncludeClosed   bool // include tasks in closed/done statuses
	IncludeSubtasks bool
}
