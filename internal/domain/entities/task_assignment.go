package entities

const AssignmentStatusPending = "pending"

// TaskAssignment is the owning link between a user and a task. Nothing
// enforces uniqueness of the (user, task) pair; duplicates can exist.
type TaskAssignment struct {
	Id     uint
	UserId uint
	TaskId uint
	Status string
}

func NewTaskAssignment(userID, taskID uint) *TaskAssignment {
	return &TaskAssignment{
		UserId: userID,
		TaskId: taskID,
		Status: AssignmentStatusPending,
	}
}
