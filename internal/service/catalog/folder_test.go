package catalog

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"docvault/internal/domain"
	models "docvault/internal/domain/models/catalog"
	catalogRepo "docvault/internal/domain/repositories/catalog"
	catalogSvc "docvault/internal/domain/services/catalog"
	"docvault/internal/httputil"
	"docvault/internal/repository/memory"
)

type testEnv struct {
	folderRepo catalogRepo.FolderRepository
	docRepo    catalogRepo.DocumentRepository
	folders    catalogSvc.FolderService
	docs       catalogSvc.DocumentService
	tags       catalogSvc.TagService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	config := &memory.RepositoryConfig{
		Store:  memory.NewStore(),
		Logger: logger,
	}
	folderRepo := memory.NewFolderRepository(config)
	docRepo := memory.NewDocumentRepository(config)

	return &testEnv{
		folderRepo: folderRepo,
		docRepo:    docRepo,
		folders:    NewFolderService(folderRepo, docRepo, logger),
		docs:       NewDocumentService(docRepo, folderRepo, logger),
		tags:       NewTagService(docRepo, logger),
	}
}

func (e *testEnv) mustCreateFolder(t *testing.T, name string, parentID *string) *models.Folder {
	t.Helper()
	folder, err := e.folders.CreateFolder(context.Background(), &catalogSvc.CreateFolderRequest{
		Name:     name,
		ParentID: parentID,
	})
	if err != nil {
		t.Fatalf("CreateFolder(%q) failed: %v", name, err)
	}
	return folder
}

func (e *testEnv) mustCreateDocument(t *testing.T, title string, folderID *string) *models.Document {
	t.Helper()
	doc, err := e.docs.CreateDocument(context.Background(), &catalogSvc.CreateDocumentRequest{
		File:     models.FileRef{Name: "report.pdf", ContentType: "application/pdf", Size: 1024},
		Title:    title,
		FolderID: folderID,
	})
	if err != nil {
		t.Fatalf("CreateDocument(%q) failed: %v", title, err)
	}
	return doc
}

func present(id *string) httputil.OptionalString {
	return httputil.OptionalString{Present: true, Value: id}
}

func strPtr(s string) *string { return &s }

func TestCreateFolder(t *testing.T) {
	tests := []struct {
		name       string
		folderName string
		wantErr    error
	}{
		{name: "valid name", folderName: "Reports"},
		{name: "name is trimmed", folderName: "  Reports  "},
		{name: "empty name", folderName: "", wantErr: domain.ErrValidation},
		{name: "whitespace only name", folderName: "   ", wantErr: domain.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			folder, err := env.folders.CreateFolder(context.Background(), &catalogSvc.CreateFolderRequest{
				Name: tt.folderName,
			})

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("CreateFolder() error = %v, want %v", err, tt.wantErr)
				}
				all, _ := env.folders.ListFolders(context.Background())
				if len(all) != 0 {
					t.Fatalf("failed create left %d folders behind", len(all))
				}
				return
			}

			if err != nil {
				t.Fatalf("CreateFolder() failed: %v", err)
			}
			if folder.Name != "Reports" {
				t.Errorf("Name = %q, want %q", folder.Name, "Reports")
			}
			if folder.ID == "" {
				t.Error("folder has no id")
			}
			if folder.ParentID != nil {
				t.Errorf("ParentID = %v, want nil", *folder.ParentID)
			}
		})
	}
}

func TestCreateFolderUnknownParent(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.folders.CreateFolder(context.Background(), &catalogSvc.CreateFolderRequest{
		Name:     "Child",
		ParentID: strPtr("no-such-folder"),
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("CreateFolder() error = %v, want ErrNotFound", err)
	}
}

func TestUpdateFolderRename(t *testing.T) {
	env := newTestEnv(t)
	folder := env.mustCreateFolder(t, "Old", nil)

	updated, err := env.folders.UpdateFolder(context.Background(), folder.ID, &catalogSvc.UpdateFolderRequest{
		Name: strPtr("New"),
	})
	if err != nil {
		t.Fatalf("UpdateFolder() failed: %v", err)
	}
	if updated.Name != "New" {
		t.Errorf("Name = %q, want %q", updated.Name, "New")
	}
}

func TestUpdateFolderBlankName(t *testing.T) {
	env := newTestEnv(t)
	folder := env.mustCreateFolder(t, "Keep", nil)

	_, err := env.folders.UpdateFolder(context.Background(), folder.ID, &catalogSvc.UpdateFolderRequest{
		Name: strPtr("   "),
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("UpdateFolder() error = %v, want ErrValidation", err)
	}

	got, err := env.folders.GetFolder(context.Background(), folder.ID)
	if err != nil {
		t.Fatalf("GetFolder() failed: %v", err)
	}
	if got.Name != "Keep" {
		t.Errorf("rejected update changed name to %q", got.Name)
	}
}

func TestUpdateFolderNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.folders.UpdateFolder(context.Background(), "missing", &catalogSvc.UpdateFolderRequest{
		Name: strPtr("Anything"),
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("UpdateFolder() error = %v, want ErrNotFound", err)
	}
}

func TestUpdateFolderRejectsCycles(t *testing.T) {
	// A ← B ← C; moving A under B or C must fail, as must self-parenting
	env := newTestEnv(t)
	a := env.mustCreateFolder(t, "A", nil)
	b := env.mustCreateFolder(t, "B", &a.ID)
	c := env.mustCreateFolder(t, "C", &b.ID)

	tests := []struct {
		name      string
		folder    string
		newParent string
	}{
		{name: "self parent", folder: a.ID, newParent: a.ID},
		{name: "direct child", folder: a.ID, newParent: b.ID},
		{name: "deep descendant", folder: a.ID, newParent: c.ID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.folders.UpdateFolder(context.Background(), tt.folder, &catalogSvc.UpdateFolderRequest{
				Name:     strPtr("A"),
				ParentID: present(&tt.newParent),
			})
			if !errors.Is(err, domain.ErrCycle) {
				t.Fatalf("UpdateFolder() error = %v, want ErrCycle", err)
			}

			// Tree must be untouched
			got, gerr := env.folders.GetFolder(context.Background(), a.ID)
			if gerr != nil {
				t.Fatalf("GetFolder() failed: %v", gerr)
			}
			if got.ParentID != nil {
				t.Errorf("rejected move changed parent to %v", *got.ParentID)
			}
		})
	}
}

func TestUpdateFolderMoveToRoot(t *testing.T) {
	env := newTestEnv(t)
	a := env.mustCreateFolder(t, "A", nil)
	b := env.mustCreateFolder(t, "B", &a.ID)

	updated, err := env.folders.UpdateFolder(context.Background(), b.ID, &catalogSvc.UpdateFolderRequest{
		ParentID: present(nil), // JSON null
	})
	if err != nil {
		t.Fatalf("UpdateFolder() failed: %v", err)
	}
	if updated.ParentID != nil {
		t.Errorf("ParentID = %v, want nil", *updated.ParentID)
	}
}

func TestDeleteFolderCascades(t *testing.T) {
	// root ← sub ← subsub, plus a sibling that must survive
	env := newTestEnv(t)
	root := env.mustCreateFolder(t, "root", nil)
	sub := env.mustCreateFolder(t, "sub", &root.ID)
	env.mustCreateFolder(t, "subsub", &sub.ID)
	sibling := env.mustCreateFolder(t, "sibling", nil)

	if err := env.folders.DeleteFolder(context.Background(), root.ID); err != nil {
		t.Fatalf("DeleteFolder() failed: %v", err)
	}

	remaining, err := env.folders.ListFolders(context.Background())
	if err != nil {
		t.Fatalf("ListFolders() failed: %v", err)
	}
	if len(remaining) != 1 || remaining[0].ID != sibling.ID {
		t.Fatalf("remaining folders = %v, want only sibling", remaining)
	}
}

func TestDeleteFolderDetachesDocuments(t *testing.T) {
	env := newTestEnv(t)
	a := env.mustCreateFolder(t, "A", nil)
	sub := env.mustCreateFolder(t, "sub", &a.ID)
	other := env.mustCreateFolder(t, "other", nil)

	inA := env.mustCreateDocument(t, "Quarterly Report", &a.ID)
	inSub := env.mustCreateDocument(t, "Notes", &sub.ID)
	elsewhere := env.mustCreateDocument(t, "Elsewhere", &other.ID)

	if err := env.folders.DeleteFolder(context.Background(), a.ID); err != nil {
		t.Fatalf("DeleteFolder() failed: %v", err)
	}

	for _, id := range []string{inA.ID, inSub.ID} {
		doc, err := env.docs.GetDocument(context.Background(), id)
		if err != nil {
			t.Fatalf("GetDocument(%s) failed: %v", id, err)
		}
		if doc.Metadata.FolderID != nil {
			t.Errorf("document %s still references folder %v", id, *doc.Metadata.FolderID)
		}
	}

	doc, err := env.docs.GetDocument(context.Background(), elsewhere.ID)
	if err != nil {
		t.Fatalf("GetDocument() failed: %v", err)
	}
	if doc.Metadata.FolderID == nil || *doc.Metadata.FolderID != other.ID {
		t.Error("document in untouched folder was detached")
	}
}

func TestDeleteFolderNotFound(t *testing.T) {
	env := newTestEnv(t)
	if err := env.folders.DeleteFolder(context.Background(), "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("DeleteFolder() error = %v, want ErrNotFound", err)
	}
}

func TestResolvePath(t *testing.T) {
	env := newTestEnv(t)
	a := env.mustCreateFolder(t, "A", nil)
	b := env.mustCreateFolder(t, "B", &a.ID)
	c := env.mustCreateFolder(t, "C", &b.ID)

	names, err := env.folders.ResolvePath(context.Background(), c.ID)
	if err != nil {
		t.Fatalf("ResolvePath() failed: %v", err)
	}
	want := []string{"A", "B", "C"}
	if len(names) != len(want) {
		t.Fatalf("path = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("path = %v, want %v", names, want)
		}
	}
}

func TestResolvePathUnknownID(t *testing.T) {
	env := newTestEnv(t)
	env.mustCreateFolder(t, "A", nil)

	names, err := env.folders.ResolvePath(context.Background(), "missing")
	if err != nil {
		t.Fatalf("ResolvePath() must not fail on unknown ids: %v", err)
	}
	if len(names) != 0 {
		t.Fatalf("path = %v, want empty", names)
	}
}

func TestAvailableParents(t *testing.T) {
	env := newTestEnv(t)
	a := env.mustCreateFolder(t, "A", nil)
	b := env.mustCreateFolder(t, "B", &a.ID)
	env.mustCreateFolder(t, "C", &b.ID)
	d := env.mustCreateFolder(t, "D", nil)

	got, err := env.folders.AvailableParents(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("AvailableParents() failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != d.ID {
		t.Fatalf("AvailableParents(A) = %v, want only D", got)
	}

	// The create case excludes nothing
	all, err := env.folders.AvailableParents(context.Background(), "")
	if err != nil {
		t.Fatalf("AvailableParents() failed: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("AvailableParents(\"\") returned %d folders, want 4", len(all))
	}
}

func TestListFoldersInsertionOrder(t *testing.T) {
	env := newTestEnv(t)
	names := []string{"zeta", "alpha", "mid"}
	for _, n := range names {
		env.mustCreateFolder(t, n, nil)
	}

	folders, err := env.folders.ListFolders(context.Background())
	if err != nil {
		t.Fatalf("ListFolders() failed: %v", err)
	}
	for i, n := range names {
		if folders[i].Name != n {
			t.Fatalf("folder[%d] = %q, want %q (insertion order, no sort)", i, folders[i].Name, n)
		}
	}
}
