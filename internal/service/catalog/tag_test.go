package catalog

import (
	"context"
	"reflect"
	"testing"

	models "docvault/internal/domain/models/catalog"
	catalogSvc "docvault/internal/domain/services/catalog"
)

func taggedRequest(rawTags string) *catalogSvc.CreateDocumentRequest {
	return &catalogSvc.CreateDocumentRequest{
		File:    models.FileRef{Name: "memo.pdf", ContentType: "application/pdf", Size: 64},
		Title:   "Tagged",
		RawTags: rawTags,
	}
}

func TestAddTag(t *testing.T) {
	tests := []struct {
		name     string
		existing string // raw comma-separated tags at creation
		rawTag   string
		want     []string
	}{
		{name: "append new tag", existing: "a", rawTag: "b", want: []string{"a", "b"}},
		{name: "trims input", existing: "a", rawTag: "  b  ", want: []string{"a", "b"}},
		{name: "duplicate is a no-op", existing: "a,b", rawTag: "b", want: []string{"a", "b"}},
		{name: "empty is a no-op", existing: "a", rawTag: "   ", want: []string{"a"}},
		{name: "case sensitive match", existing: "Tax", rawTag: "tax", want: []string{"Tax", "tax"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			doc, err := env.docs.CreateDocument(context.Background(), taggedRequest(tt.existing))
			if err != nil {
				t.Fatalf("CreateDocument() failed: %v", err)
			}

			got, err := env.tags.AddTag(context.Background(), doc.ID, tt.rawTag)
			if err != nil {
				t.Fatalf("AddTag() failed: %v", err)
			}
			if !reflect.DeepEqual(got.Metadata.Tags, tt.want) {
				t.Fatalf("Tags = %v, want %v", got.Metadata.Tags, tt.want)
			}
		})
	}
}

func TestAddTagIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	doc := env.mustCreateDocument(t, "Doc", nil)

	for i := 0; i < 2; i++ {
		if _, err := env.tags.AddTag(context.Background(), doc.ID, "finance"); err != nil {
			t.Fatalf("AddTag() call %d failed: %v", i+1, err)
		}
	}

	got, err := env.docs.GetDocument(context.Background(), doc.ID)
	if err != nil {
		t.Fatalf("GetDocument() failed: %v", err)
	}
	if len(got.Metadata.Tags) != 1 {
		t.Fatalf("Tags = %v, want exactly one entry", got.Metadata.Tags)
	}
}

func TestRemoveTag(t *testing.T) {
	env := newTestEnv(t)
	doc, err := env.docs.CreateDocument(context.Background(), taggedRequest("a,b,c"))
	if err != nil {
		t.Fatalf("CreateDocument() failed: %v", err)
	}

	got, err := env.tags.RemoveTag(context.Background(), doc.ID, "b")
	if err != nil {
		t.Fatalf("RemoveTag() failed: %v", err)
	}
	if !reflect.DeepEqual(got.Metadata.Tags, []string{"a", "c"}) {
		t.Fatalf("Tags = %v, want [a c]", got.Metadata.Tags)
	}
}

func TestRemoveAbsentTagIsNoOp(t *testing.T) {
	env := newTestEnv(t)
	doc, err := env.docs.CreateDocument(context.Background(), taggedRequest("a,b"))
	if err != nil {
		t.Fatalf("CreateDocument() failed: %v", err)
	}
	before, err := env.docs.GetDocument(context.Background(), doc.ID)
	if err != nil {
		t.Fatalf("GetDocument() failed: %v", err)
	}

	if _, err := env.tags.RemoveTag(context.Background(), doc.ID, "zzz"); err != nil {
		t.Fatalf("RemoveTag() of absent tag must not fail: %v", err)
	}

	after, err := env.docs.GetDocument(context.Background(), doc.ID)
	if err != nil {
		t.Fatalf("GetDocument() failed: %v", err)
	}
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("document changed by absent-tag removal:\nbefore %+v\nafter  %+v", before, after)
	}
}

func TestSplitTags(t *testing.T) {
	got := SplitTags(" x, y ,x,, ")
	if !reflect.DeepEqual(got, []string{"x", "y"}) {
		t.Fatalf("SplitTags() = %v, want [x y]", got)
	}
}
