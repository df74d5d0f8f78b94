package applescript

import (
	"context"
	"strings"

	"github.com/kiki830621/che-things-mcp/internal/model"
	"github.com/kiki830621/che-things-mcp/internal/things"
)

func (r *implRepository) AddProject(ctx context.Context, input things.AddProjectInput) (model.Project, error) {
	statements := []string{
		"set newProject to make new project with properties " + projectProperties(input),
	}
	if input.AreaName != nil {
		statements = append(statements, "set area of newProject to area "+quote(*input.AreaName))
	}
	if input.When != nil {
		statements = append(statements, r.whenStatement("newProject", *input.When))
	}
	statements = append(statements, "return id of newProject")

	id, err := r.run(ctx, tell(statements...))
	if err != nil {
		return model.Project{}, err
	}
	return r.projectByID(ctx, id, input)
}

func (r *implRepository) projectByID(ctx context.Context, id string, input things.AddProjectInput) (model.Project, error) {
	out, err := r.run(ctx, projectFetchScript(`(projects whose id is `+quote(id)+`)`))
	if err == nil {
		if projects := parseProjects(out); len(projects) > 0 {
			return projects[0], nil
		}
	}
	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}
	return model.Project{
		ID:       id,
		Name:     input.Name,
		Notes:    input.Notes,
		Status:   model.StatusOpen,
		TagNames: tags,
		AreaName: input.AreaName,
	}, nil
}

func (r *implRepository) UpdateProject(ctx context.Context, input things.UpdateProjectInput) error {
	statements := []string{
		"set targetProject to project id " + quote(input.ID),
	}
	provided := 0
	if input.Name != nil {
		statements = append(statements, "set name of targetProject to "+quote(*input.Name))
		provided++
	}
	if input.Notes != nil {
		statements = append(statements, "set notes of targetProject to "+quote(*input.Notes))
		provided++
	}
	if input.Tags != nil {
		statements = append(statements, "set tag names of targetProject to "+quote(strings.Join(input.Tags, listSeparator)))
		provided++
	}
	if provided == 0 {
		return things.NewInvalidParameter("no fields to update")
	}

	if _, err := r.run(ctx, tell(statements...)); err != nil {
		return asNotFound(err, "project", input.ID)
	}
	return nil
}

func (r *implRepository) DeleteProject(ctx context.Context, id string) error {
	script := tell("delete project id " + quote(id))
	if _, err := r.run(ctx, script); err != nil {
		return asNotFound(err, "project", id)
	}
	return nil
}

func (r *implRepository) MoveProject(ctx context.Context, id, toArea string) error {
	script := tell("set area of project id " + quote(id) + " to area " + quote(toArea))
	if _, err := r.run(ctx, script); err != nil {
		return asNotFound(err, "project", id)
	}
	return nil
}
