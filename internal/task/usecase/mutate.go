package usecase

import (
	"context"

	"task-list-manager/internal/model"
	"task-list-manager/internal/task"
)

// Add validates the form values, appends a new pending task and persists.
func (uc *implUseCase) Add(ctx context.Context, input task.AddInput) (model.Task, error) {
	title, description, due, err := uc.validateForm(input.Title, input.Description, input.DueDate)
	if err != nil {
		return model.Task{}, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	t := model.Task{
		ID:          uc.ids.next(),
		Title:       title,
		Description: description,
		DueDate:     due,
		Completed:   false,
		CreatedAt:   uc.now(),
	}
	uc.tasks = append(uc.tasks, t)

	if err := uc.persist(ctx, "Add"); err != nil {
		return t, err
	}
	return t, nil
}

// Update replaces title, description and due date of the matching task.
func (uc *implUseCase) Update(ctx context.Context, input task.UpdateInput) (task.MutationOutput, error) {
	title, description, due, err := uc.validateForm(input.Title, input.Description, input.DueDate)
	if err != nil {
		return task.MutationOutput{}, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	var out task.MutationOutput
	if i := uc.indexOf(input.ID); i >= 0 {
		uc.tasks[i].Title = title
		uc.tasks[i].Description = description
		uc.tasks[i].DueDate = due
		out = task.MutationOutput{Task: uc.tasks[i], Found: true}
	}

	return out, uc.persist(ctx, "Update")
}

// ToggleCompletion flips the completed flag of the matching task.
func (uc *implUseCase) ToggleCompletion(ctx context.Context, id int64) (task.MutationOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	var out task.MutationOutput
	if i := uc.indexOf(id); i >= 0 {
		uc.tasks[i].Completed = !uc.tasks[i].Completed
		out = task.MutationOutput{Task: uc.tasks[i], Found: true}
	}

	return out, uc.persist(ctx, "ToggleCompletion")
}

// Remove deletes the matching task permanently.
func (uc *implUseCase) Remove(ctx context.Context, id int64) (task.MutationOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	var out task.MutationOutput
	if i := uc.indexOf(id); i >= 0 {
		out = task.MutationOutput{Task: uc.tasks[i], Found: true}
		uc.tasks = append(uc.tasks[:i], uc.tasks[i+1:]...)
	}

	return out, uc.persist(ctx, "Remove")
}
