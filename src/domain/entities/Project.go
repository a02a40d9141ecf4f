package entities

import (
	"slices"
	"time"

	"organizer/src/domain"
	"organizer/src/domain/registry"
	"organizer/src/domain/transfer"
)

// Project owns its tasks and features and is linked to its owner.
type Project struct {
	Base
	name        string
	description string
	owner       LinkedEntity
	tasks       []*ProjectTask
	features    []*Feature
}

func NewProject(id int64, name string, owner LinkedEntity) (*Project, error) {
	base, err := newBase("Project", id)
	if err != nil {
		return nil, err
	}

	n, err := requireText("Project", "name", name)
	if err != nil {
		return nil, err
	}

	return &Project{Base: base, name: n, owner: owner}, nil
}

func (p *Project) Name() string          { return p.name }
func (p *Project) Description() string   { return p.description }
func (p *Project) Owner() LinkedEntity   { return p.owner }
func (p *Project) Tasks() []*ProjectTask { return slices.Clone(p.tasks) }
func (p *Project) Features() []*Feature  { return slices.Clone(p.features) }

func (p *Project) SetName(name string) error {
	n, err := requireText("Project", "name", name)
	if err != nil {
		return err
	}
	p.name = n
	p.touch()
	return nil
}

func (p *Project) SetDescription(description string) {
	p.description = description
	p.touch()
}

func (p *Project) SetOwner(owner LinkedEntity) {
	p.owner = owner
	p.touch()
}

func (p *Project) AddTask(t *ProjectTask) {
	p.tasks = append(p.tasks, t)
	p.touch()
}

func (p *Project) AddFeature(f *Feature) {
	p.features = append(p.features, f)
	p.touch()
}

func (p *Project) TypeName() string { return "Project" }

func (p *Project) SupportedShapes() []domain.Shape {
	return []domain.Shape{domain.ShapeTransfer}
}

func (p *Project) ConvertTo(reg *registry.Registry, target domain.Shape) (any, error) {
	if err := checkShape(p, target); err != nil {
		return nil, err
	}

	tasks, err := convertOwned("Project", "tasks", p.tasks, func(t *ProjectTask) (*transfer.ProjectTaskTransfer, error) {
		return t.toTransfer(), nil
	})
	if err != nil {
		return nil, err
	}

	features, err := convertOwned("Project", "features", p.features, func(f *Feature) (*transfer.FeatureTransfer, error) {
		return f.toTransfer(), nil
	})
	if err != nil {
		return nil, err
	}

	owner, err := linkedToTransfer(reg, p.owner)
	if err != nil {
		return nil, err
	}

	return &transfer.ProjectTransfer{
		Record:          p.record(),
		LinkedEntityRef: owner,
		Name:            p.name,
		Description:     p.description,
		Tasks:           tasks,
		Features:        features,
	}, nil
}

type ProjectTask struct {
	Base
	title       string
	completed   bool
	completedAt *time.Time
}

func NewProjectTask(id int64, title string) (*ProjectTask, error) {
	base, err := newBase("ProjectTask", id)
	if err != nil {
		return nil, err
	}

	t, err := requireText("ProjectTask", "title", title)
	if err != nil {
		return nil, err
	}

	return &ProjectTask{Base: base, title: t}, nil
}

func (t *ProjectTask) Title() string   { return t.title }
func (t *ProjectTask) Completed() bool { return t.completed }

func (t *ProjectTask) CompletedAt() *time.Time {
	if t.completedAt == nil {
		return nil
	}
	c := *t.completedAt
	return &c
}

func (t *ProjectTask) SetTitle(title string) error {
	v, err := requireText("ProjectTask", "title", title)
	if err != nil {
		return err
	}
	t.title = v
	t.touch()
	return nil
}

// SetCompleted stamps completedAt only when the task becomes completed and
// clears it when the task is reopened. Writing the same state is a no-op.
func (t *ProjectTask) SetCompleted(completed bool) {
	if t.completed == completed {
		return
	}

	t.completed = completed
	if completed {
		c := now()
		t.completedAt = &c
	} else {
		t.completedAt = nil
	}
	t.touch()
}

func (t *ProjectTask) TypeName() string { return "ProjectTask" }

func (t *ProjectTask) SupportedShapes() []domain.Shape {
	return []domain.Shape{domain.ShapeTransfer}
}

func (t *ProjectTask) ConvertTo(_ *registry.Registry, target domain.Shape) (any, error) {
	if err := checkShape(t, target); err != nil {
		return nil, err
	}
	return t.toTransfer(), nil
}

func (t *ProjectTask) toTransfer() *transfer.ProjectTaskTransfer {
	return &transfer.ProjectTaskTransfer{
		Record:      t.record(),
		Title:       t.title,
		Completed:   t.completed,
		CompletedAt: t.CompletedAt(),
	}
}
