package service

import (
	"testing"
)

func TestCategories_OrderedByName(t *testing.T) {
	gdb := setupServiceTestDB(t, "interest-categories")
	svc := NewInterestService(gdb)

	for _, name := range []string{"Viagens", "Ciência", "Tecnologia"} {
		createTestCategory(t, gdb, name)
	}

	categories, err := svc.Categories()
	if err != nil {
		t.Fatalf("list categories: %v", err)
	}
	if len(categories) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(categories))
	}
	if categories[0].Name != "Ciência" || categories[2].Name != "Viagens" {
		t.Fatalf("expected alphabetical order, got %q first and %q last",
			categories[0].Name, categories[2].Name)
	}
}

func TestReplaceInterests_SwapsWholeSet(t *testing.T) {
	gdb := setupServiceTestDB(t, "interest-replace")
	svc := NewInterestService(gdb)

	user := createTestUser(t, gdb, "leitora")
	tech := createTestCategory(t, gdb, "Tecnologia")
	science := createTestCategory(t, gdb, "Ciência")
	travel := createTestCategory(t, gdb, "Viagens")

	if err := svc.ReplaceInterests(user.ID, []uint{tech.ID, science.ID}); err != nil {
		t.Fatalf("first replace: %v", err)
	}
	if err := svc.ReplaceInterests(user.ID, []uint{travel.ID}); err != nil {
		t.Fatalf("second replace: %v", err)
	}

	ids, err := svc.InterestIDs(user.ID)
	if err != nil {
		t.Fatalf("list interests: %v", err)
	}
	if len(ids) != 1 || ids[0] != travel.ID {
		t.Fatalf("expected only the travel interest, got %v", ids)
	}
}

func TestReplaceInterests_DedupsAndIgnoresZero(t *testing.T) {
	gdb := setupServiceTestDB(t, "interest-dedup")
	svc := NewInterestService(gdb)

	user := createTestUser(t, gdb, "leitora")
	tech := createTestCategory(t, gdb, "Tecnologia")

	if err := svc.ReplaceInterests(user.ID, []uint{tech.ID, tech.ID, 0}); err != nil {
		t.Fatalf("replace: %v", err)
	}

	ids, err := svc.InterestIDs(user.ID)
	if err != nil {
		t.Fatalf("list interests: %v", err)
	}
	if len(ids) != 1 {
		t.Fatalf("expected a single deduplicated interest, got %v", ids)
	}
}

func TestReplaceInterests_EmptySetClears(t *testing.T) {
	gdb := setupServiceTestDB(t, "interest-clear")
	svc := NewInterestService(gdb)

	user := createTestUser(t, gdb, "leitora")
	tech := createTestCategory(t, gdb, "Tecnologia")

	if err := svc.ReplaceInterests(user.ID, []uint{tech.ID}); err != nil {
		t.Fatalf("seed replace: %v", err)
	}
	if err := svc.ReplaceInterests(user.ID, nil); err != nil {
		t.Fatalf("clearing replace: %v", err)
	}

	ids, err := svc.InterestIDs(user.ID)
	if err != nil {
		t.Fatalf("list interests: %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("expected no interests, got %v", ids)
	}
}

func TestReplaceInterests_OtherUsersUntouched(t *testing.T) {
	gdb := setupServiceTestDB(t, "interest-isolation")
	svc := NewInterestService(gdb)

	first := createTestUser(t, gdb, "primeira")
	second := createTestUser(t, gdb, "segunda")
	tech := createTestCategory(t, gdb, "Tecnologia")
	science := createTestCategory(t, gdb, "Ciência")

	if err := svc.ReplaceInterests(first.ID, []uint{tech.ID}); err != nil {
		t.Fatalf("first user replace: %v", err)
	}
	if err := svc.ReplaceInterests(second.ID, []uint{science.ID}); err != nil {
		t.Fatalf("second user replace: %v", err)
	}
	if err := svc.ReplaceInterests(second.ID, nil); err != nil {
		t.Fatalf("second user clear: %v", err)
	}

	ids, err := svc.InterestIDs(first.ID)
	if err != nil {
		t.Fatalf("list interests: %v", err)
	}
	if len(ids) != 1 || ids[0] != tech.ID {
		t.Fatalf("first user's interests must survive, got %v", ids)
	}
}
