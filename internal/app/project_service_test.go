package app

import (
	"context"
	"errors"
	"testing"

	"github.com/example/core2/internal/ctxutil"
	core2err "github.com/example/core2/internal/errors"
	"github.com/example/core2/internal/ports/primary"
	"github.com/example/core2/internal/ports/secondary"
)

const testOwner = "owner-1"

func ownerCtx() context.Context {
	return ctxutil.WithOwnerID(context.Background(), testOwner)
}

type projectFixture struct {
	*tables
	state   *mockStateStore
	service *ProjectServiceImpl
}

func newProjectFixture() *projectFixture {
	f := &projectFixture{tables: newTables(nil), state: newMockStateStore()}
	f.service = NewProjectService(f.projects, f.analysis, f.epics, f.stories, f.state, f.scope, nil)
	return f
}

func TestCreateProject_CreatesAnalysisDocument(t *testing.T) {
	f := newProjectFixture()

	resp, err := f.service.CreateProject(ownerCtx(), primary.CreateProjectRequest{Name: "Billing", Type: "NEW"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.Project.Status != "INTEL" {
		t.Errorf("expected default status INTEL, got %q", resp.Project.Status)
	}
	if !resp.Project.Active {
		t.Error("expected new project to be active")
	}
	if resp.Project.OwnerID != testOwner {
		t.Errorf("expected owner %q, got %q", testOwner, resp.Project.OwnerID)
	}
	if resp.Analysis == nil || resp.Analysis.ProjectID != resp.ProjectID {
		t.Errorf("expected analysis document for project, got %+v", resp.Analysis)
	}
}

func TestCreateProject_AnalysisFailureIsNotFatal(t *testing.T) {
	f := newProjectFixture()
	f.analysis.failWith("Create", storeFailure("create analysis document"))

	resp, err := f.service.CreateProject(ownerCtx(), primary.CreateProjectRequest{Name: "Billing", Type: "EXISTING"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.Analysis != nil {
		t.Error("expected no analysis document")
	}
}

func TestCreateProject_Validation(t *testing.T) {
	f := newProjectFixture()

	if _, err := f.service.CreateProject(context.Background(), primary.CreateProjectRequest{Name: "x", Type: "NEW"}); !errors.Is(err, core2err.ErrAuth) {
		t.Errorf("expected auth error without owner, got %v", err)
	}
	if _, err := f.service.CreateProject(ownerCtx(), primary.CreateProjectRequest{Name: "x", Type: "OLD"}); !errors.Is(err, core2err.ErrValidation) {
		t.Errorf("expected validation error for type, got %v", err)
	}
	if _, err := f.service.CreateProject(ownerCtx(), primary.CreateProjectRequest{Type: "NEW"}); !errors.Is(err, core2err.ErrValidation) {
		t.Errorf("expected validation error for name, got %v", err)
	}
	if f.projects.count() != 0 {
		t.Error("repository must not be called")
	}
}

func TestListProjects_DomainFilter(t *testing.T) {
	f := newProjectFixture()
	f.projects.seed(
		&secondary.ProjectRecord{ID: "P1", OwnerID: testOwner, Name: "Billing", DomainID: "D1"},
		&secondary.ProjectRecord{ID: "P2", OwnerID: testOwner, Name: "Hiring"},
		&secondary.ProjectRecord{ID: "P3", OwnerID: testOwner, Name: "Payroll", DomainID: "D2"},
		&secondary.ProjectRecord{ID: "P4", OwnerID: "someone-else", Name: "Secret"},
	)
	ctx := ownerCtx()

	owned, _ := f.service.ListProjects(ctx, primary.ProjectFilters{})
	if len(owned) != 3 {
		t.Errorf("expected 3 owned projects, got %d", len(owned))
	}
	none, _ := f.service.ListProjects(ctx, primary.ProjectFilters{DomainID: "none"})
	if len(none) != 1 || none[0].ID != "P2" {
		t.Errorf("expected only P2 without domain, got %+v", none)
	}
	d1, _ := f.service.ListProjects(ctx, primary.ProjectFilters{DomainID: "D1"})
	if len(d1) != 1 || d1[0].ID != "P1" {
		t.Errorf("expected only P1, got %+v", d1)
	}
	searched, _ := f.service.ListProjects(ctx, primary.ProjectFilters{Query: "PAY"})
	if len(searched) != 1 || searched[0].ID != "P3" {
		t.Errorf("expected only P3, got %+v", searched)
	}
}

func TestOpenProject_LoadsViewAndRemembersProject(t *testing.T) {
	f := newProjectFixture()
	f.projects.seed(&secondary.ProjectRecord{ID: "P1", OwnerID: testOwner, Name: "Billing"})
	f.epics.seed(&secondary.EpicRecord{ID: "E1", ProjectID: "P1"})
	f.stories.seed(
		&secondary.StoryRecord{ID: "S1", ProjectID: "P1", EpicID: "E1"},
		&secondary.StoryRecord{ID: "S2", ProjectID: "P1"},
		&secondary.StoryRecord{ID: "S3", ProjectID: "P1", EpicID: "E-gone"},
	)

	view, err := f.service.OpenProject(ownerCtx(), "P1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if view.Analysis == nil {
		t.Fatal("expected analysis document to be healed")
	}
	if f.analysis.count() != 1 {
		t.Errorf("expected one analysis document, got %d", f.analysis.count())
	}
	if len(view.Epics) != 1 || len(view.Stories) != 3 {
		t.Errorf("unexpected view sizes: %d epics, %d stories", len(view.Epics), len(view.Stories))
	}
	if len(view.StoriesByEpic["E1"]) != 1 || len(view.StoriesByEpic["none"]) != 2 {
		t.Errorf("unexpected grouping: %+v", view.StoriesByEpic)
	}
	if got := f.state.snapshot().LastProjectID; got != "P1" {
		t.Errorf("expected last project P1, got %q", got)
	}

	// A second open reuses the document.
	if _, err := f.service.OpenProject(ownerCtx(), "P1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if f.analysis.count() != 1 {
		t.Errorf("expected document reuse, got %d documents", f.analysis.count())
	}
}

func TestOpenProject_MissingProjectBlocks(t *testing.T) {
	f := newProjectFixture()

	view, err := f.service.OpenProject(ownerCtx(), "nope")
	if !core2err.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	if view != nil {
		t.Error("expected no view")
	}
	if f.state.saves != 0 {
		t.Error("missing project must not be remembered")
	}
}

func TestOpenProject_PartialFailureKeepsOtherLegs(t *testing.T) {
	f := newProjectFixture()
	f.projects.seed(&secondary.ProjectRecord{ID: "P1", OwnerID: testOwner})
	f.epics.seed(&secondary.EpicRecord{ID: "E1", ProjectID: "P1"})
	f.stories.failWith("ListByProject", storeFailure("list stories"))

	view, err := f.service.OpenProject(ownerCtx(), "P1")
	if !errors.Is(err, core2err.ErrStore) {
		t.Fatalf("expected store error, got %v", err)
	}
	if view == nil || len(view.Epics) != 1 || view.Analysis == nil {
		t.Errorf("expected epics and analysis despite story failure, got %+v", view)
	}
}

func TestUpdateProject(t *testing.T) {
	f := newProjectFixture()
	f.projects.seed(&secondary.ProjectRecord{ID: "P1", OwnerID: testOwner, Name: "Billing", Status: "INTEL", Active: true})

	status, active, pause := "PAUSED", false, "  waiting on legal "
	got, err := f.service.UpdateProject(ownerCtx(), primary.UpdateProjectRequest{ProjectID: "P1", Status: &status, Active: &active, PauseCondition: &pause})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.Status != "PAUSED" || got.Active || got.PauseCondition != "waiting on legal" {
		t.Errorf("unexpected project: %+v", got)
	}

	bad := "DONE"
	if _, err := f.service.UpdateProject(ownerCtx(), primary.UpdateProjectRequest{ProjectID: "P1", Status: &bad}); !errors.Is(err, core2err.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestDeleteProject_SurfacesStoreRejection(t *testing.T) {
	f := newProjectFixture()
	f.projects.seed(&secondary.ProjectRecord{ID: "P1", OwnerID: testOwner})
	f.projects.failWith("Delete:P1", storeFailure("delete project"))

	if err := f.service.DeleteProject(ownerCtx(), "P1"); !errors.Is(err, core2err.ErrStore) {
		t.Errorf("expected store error, got %v", err)
	}
	if f.projects.count() != 1 {
		t.Error("project should remain")
	}
}
