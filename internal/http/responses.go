package http

import (
	"time"

	"schoolify/internal/domain"
)

type UserResponse struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Email         string `json:"email"`
	Name          string `json:"name"`
	Classe        string `json:"classe"`
	Etablissement string `json:"etablissement"`
	DateNaissance string `json:"dateNaissance"`
	ProfileImage  string `json:"profileImage"`
	CreatedAt     string `json:"createdAt"`
}

type TaskResponse struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Date      string            `json:"date"`
	Time      string            `json:"time"`
	Status    domain.TaskStatus `json:"status"`
	Notes     string            `json:"notes"`
	CreatedAt string            `json:"createdAt"`
}

func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:            user.ID,
		Username:      user.Username,
		Email:         user.Email,
		Name:          user.Name,
		Classe:        user.Classe,
		Etablissement: user.Etablissement,
		DateNaissance: user.DateNaissance,
		ProfileImage:  user.ProfileImage,
		CreatedAt:     user.CreatedAt.Format(time.RFC3339),
	}
}

func taskToResponse(task domain.Task) TaskResponse {
	return TaskResponse{
		ID:        task.ID,
		Name:      task.Name,
		Date:      task.Date,
		Time:      task.Time,
		Status:    task.Status,
		Notes:     task.Notes,
		CreatedAt: task.CreatedAt.Format(time.RFC3339),
	}
}

func tasksToResponse(tasks []domain.Task) []TaskResponse {
	resp := make([]TaskResponse, len(tasks))
	for i := range tasks {
		resp[i] = taskToResponse(tasks[i])
	}
	return resp
}
