package api

import (
	"context"
	"fmt"
	"net/http"

	"fitcoach/client/internal/domain"
)

// CreateExerciseRequest creates a reference exercise. VideoPath optionally
// points at a local demonstration video; the file is sent in the same
// multipart request. Admin only.
type CreateExerciseRequest struct {
	Name            string
	MuscleGroupName string
	VideoPath       string
}

// GetAllExercises fetches the shared exercise catalog. Admin only.
func (c *Client) GetAllExercises(ctx context.Context) ([]domain.Exercise, error) {
	var exercises []domain.Exercise
	if err := c.do(ctx, http.MethodGet, "/exercises/admin", nil, true, &exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}

// CreateExercise creates an exercise, uploading the demonstration video when
// one is given, and returns the backend's canonical exercise object.
func (c *Client) CreateExercise(ctx context.Context, req CreateExerciseRequest) (*domain.Exercise, error) {
	fields := map[string]string{
		"name":            req.Name,
		"muscleGroupName": req.MuscleGroupName,
	}
	var exercise domain.Exercise
	if err := c.doMultipart(ctx, "/exercises/admin", fields, "videoFile", req.VideoPath, &exercise); err != nil {
		return nil, err
	}
	return &exercise, nil
}

// DeleteExercise removes an exercise and returns the backend's confirmation message.
func (c *Client) DeleteExercise(ctx context.Context, exerciseID int64) (string, error) {
	var msg string
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/exercises/admin/%d", exerciseID), nil, true, &msg); err != nil {
		return "", err
	}
	return msg, nil
}

// GetAllMuscleGroups fetches the muscle group reference list. Admin only.
func (c *Client) GetAllMuscleGroups(ctx context.Context) ([]domain.MuscleGroup, error) {
	var groups []domain.MuscleGroup
	if err := c.do(ctx, http.MethodGet, "/muscleGroups/admin", nil, true, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}
