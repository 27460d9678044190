package model

// Workspace is a ClickUp team.
type Workspace struct {
	ID   string
	Name string
}

// Space groups folders inside a workspace.
type Space struct {
	ID   string
	Name string
}

// Folder is one project container. Its name encodes the job numbers and job name.
type Folder struct {
	ID   string
	Name string
}

// List is a grouping of tasks inside a folder.
type List struct {
	ID   string
	Name string
}

// Task is a read-only snapshot of a task record.
type Task struct {
	ID           string
	Name         string
	DueDate      *int64 // epoch milliseconds, nil when unset
	Open         bool   // false once the status is closed or done
	CustomFields []CustomField
}

// CustomField is a named, loosely-typed value attached to a task.
type CustomField struct {
	Name  string
	Value FieldValue
}
