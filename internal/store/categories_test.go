// Copyright (c) 2026 Kronika contributors.
// All rights reserved. See LICENSE for details.

package store

import (
	"fmt"
	"testing"
	"time"
)

// uniqueName returns a name that cannot collide with seeded or leftover
// rows in a shared test database.
func uniqueName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

func TestCategoryCRUD(t *testing.T) {
	db := testDB(t)
	s := NewCategoryStore(db)

	name := uniqueName("test-cat")
	c := makeCategory(t, db, name)
	if c.ID == 0 {
		t.Fatal("Create should assign an ID")
	}

	found, err := s.FindByID(c.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found == nil || found.Name != name {
		t.Fatalf("FindByID = %+v, want name %q", found, name)
	}

	byName, err := s.FindByName(name)
	if err != nil {
		t.Fatalf("FindByName: %v", err)
	}
	if byName == nil || byName.ID != c.ID {
		t.Fatalf("FindByName = %+v, want id %d", byName, c.ID)
	}

	c.Name = name + "-renamed"
	c.Slug = c.Slug + "-renamed"
	if err := s.Update(c); err != nil {
		t.Fatalf("Update: %v", err)
	}
	found, err = s.FindByID(c.ID)
	if err != nil {
		t.Fatalf("FindByID after update: %v", err)
	}
	if found.Name != name+"-renamed" {
		t.Errorf("Name = %q after update", found.Name)
	}

	if err := s.Delete(c.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	found, err = s.FindByID(c.ID)
	if err != nil {
		t.Fatalf("FindByID after delete: %v", err)
	}
	if found != nil {
		t.Errorf("category still present after delete: %+v", found)
	}
}

func TestCategoryFindMissing(t *testing.T) {
	db := testDB(t)
	s := NewCategoryStore(db)

	found, err := s.FindByID(99999999)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found != nil {
		t.Errorf("got %+v, want nil for missing id", found)
	}

	found, err = s.FindByName(uniqueName("no-such-category"))
	if err != nil {
		t.Fatalf("FindByName: %v", err)
	}
	if found != nil {
		t.Errorf("got %+v, want nil for missing name", found)
	}
}

func TestCategoryListPageCountsArticles(t *testing.T) {
	db := testDB(t)
	s := NewCategoryStore(db)

	c := makeCategory(t, db, uniqueName("test-counted"))
	makeArticle(t, db, uniqueName("test-article-a"), c.ID, time.Now())
	makeArticle(t, db, uniqueName("test-article-b"), c.ID, time.Now())

	// Page through until our category shows up; a shared database may
	// hold other rows.
	var got int
	found := false
	for page := 0; page < 100 && !found; page++ {
		items, total, err := s.ListPage(page*50, 50)
		if err != nil {
			t.Fatalf("ListPage: %v", err)
		}
		for _, item := range items {
			if item.ID == c.ID {
				got = item.ArticleCount
				found = true
			}
		}
		if (page+1)*50 >= total {
			break
		}
	}

	if !found {
		t.Fatal("created category not returned by ListPage")
	}
	if got != 2 {
		t.Errorf("ArticleCount = %d, want 2", got)
	}
}

func TestCategoryListAllOrdersByName(t *testing.T) {
	db := testDB(t)
	s := NewCategoryStore(db)

	makeCategory(t, db, uniqueName("test-order"))

	items, err := s.ListAll()
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(items) == 0 {
		t.Fatal("ListAll returned nothing")
	}
	for i := 1; i < len(items); i++ {
		if items[i-1].Name > items[i].Name {
			t.Fatalf("not ordered by name: %q before %q", items[i-1].Name, items[i].Name)
		}
	}
}
