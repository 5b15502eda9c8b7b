package presenter

import (
	taskDTO "github.com/johnquangdev/one-on-one-manager/internal/adapter/dto/task"
	"github.com/johnquangdev/one-on-one-manager/internal/domain/entities"
	"github.com/johnquangdev/one-on-one-manager/internal/domain/repositories"
	"github.com/johnquangdev/one-on-one-manager/internal/usecase/attribution"
)

// ToTaskResponse converts a Task entity to TaskResponse DTO
func ToTaskResponse(t *entities.Task) *taskDTO.TaskResponse {
	if t == nil {
		return nil
	}
	return &taskDTO.TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		TaskType:    string(t.TaskType),
		Priority:    string(t.Priority),
		Status:      string(t.Status),
		DueDate:     t.DueDate,
		PersonID:    t.PersonID,
		MeetingID:   t.MeetingID,
		PersonName:  t.PersonName(),
		CompletedAt: t.CompletedAt,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// ToTaskResponses converts a list of tasks
func ToTaskResponses(tasks []*entities.Task) []*taskDTO.TaskResponse {
	out := make([]*taskDTO.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, ToTaskResponse(t))
	}
	return out
}

// ToTasksListResponse converts a page of tasks and its counts
func ToTasksListResponse(tasks []*entities.Task, counts repositories.TaskCounts) *taskDTO.TasksListResponse {
	return &taskDTO.TasksListResponse{
		Tasks:      ToTaskResponses(tasks),
		Total:      counts.Total,
		Pending:    counts.Pending,
		InProgress: counts.InProgress,
		Completed:  counts.Completed,
	}
}

// ToAssignedTaskResponses converts attributed tasks, carrying who assigned them
func ToAssignedTaskResponses(rows []attribution.AssignedTask) []*taskDTO.TaskResponse {
	out := make([]*taskDTO.TaskResponse, 0, len(rows))
	for _, row := range rows {
		resp := ToTaskResponse(row.Task)
		if resp == nil {
			continue
		}
		assignedBy, assignedByID := row.AssignedBy, row.AssignedByID
		resp.AssignedBy = &assignedBy
		resp.AssignedByID = &assignedByID
		out = append(out, resp)
	}
	return out
}
