package handler_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/thoughtsblog/internal/db"
)

func TestGetFeed_DefaultsToFeatured(t *testing.T) {
	r, gdb := setupHandlerTest(t, "feed-default")

	cookies := signUpUser(t, r, "Maria", "maria@example.com")
	category := seedCategory(t, gdb, "Tecnologia")
	seedArticle(t, gdb, db.Article{Title: "Popular", AuthorID: 1, CategoryID: category.ID, LikesCount: 5})
	seedArticle(t, gdb, db.Article{Title: "Rascunho", AuthorID: 1, CategoryID: category.ID, Status: db.StatusDraft})

	w := doRequest(r, http.MethodGet, "/api/feed", nil, cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Posts []struct {
			Title      string `json:"title"`
			LikesCount int    `json:"likes_count"`
		} `json:"posts"`
	}
	decodeJSON(t, w, &resp)
	if len(resp.Posts) != 1 {
		t.Fatalf("expected only the published article, got %d posts", len(resp.Posts))
	}
	if resp.Posts[0].Title != "Popular" {
		t.Fatalf("unexpected post %q", resp.Posts[0].Title)
	}
}

func TestGetFeed_ForYouWithoutInterestsIsEmpty(t *testing.T) {
	r, gdb := setupHandlerTest(t, "feed-foryou-empty")

	cookies := signUpUser(t, r, "Maria", "maria@example.com")
	category := seedCategory(t, gdb, "Tecnologia")
	seedArticle(t, gdb, db.Article{AuthorID: 1, CategoryID: category.ID})

	w := doRequest(r, http.MethodGet, "/api/feed?tab=for_you", nil, cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Posts []struct{} `json:"posts"`
	}
	decodeJSON(t, w, &resp)
	if len(resp.Posts) != 0 {
		t.Fatalf("expected an empty for_you feed, got %d posts", len(resp.Posts))
	}
}

func TestGetFeed_ForYouAfterOnboarding(t *testing.T) {
	r, gdb := setupHandlerTest(t, "feed-foryou")

	cookies := signUpUser(t, r, "Maria", "maria@example.com")
	tech := seedCategory(t, gdb, "Tecnologia")
	sports := seedCategory(t, gdb, "Desporto")
	seedArticle(t, gdb, db.Article{Title: "Sobre Go", AuthorID: 1, CategoryID: tech.ID})
	seedArticle(t, gdb, db.Article{Title: "Campeonato", AuthorID: 1, CategoryID: sports.ID})

	body := fmt.Sprintf(`{"category_ids": [%d]}`, tech.ID)
	w := doRequest(r, http.MethodPost, "/api/onboarding", []byte(body), cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("onboarding: expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	w = doRequest(r, http.MethodGet, "/api/feed?tab=for_you", nil, cookies)
	var resp struct {
		Posts []struct {
			Title        string `json:"title"`
			CategoryName string `json:"category_name"`
		} `json:"posts"`
	}
	decodeJSON(t, w, &resp)
	if len(resp.Posts) != 1 || resp.Posts[0].Title != "Sobre Go" {
		t.Fatalf("expected only the tech article, got %+v", resp.Posts)
	}
}

func TestGetFeed_FeaturedCategoryFilter(t *testing.T) {
	r, gdb := setupHandlerTest(t, "feed-filter")

	cookies := signUpUser(t, r, "Maria", "maria@example.com")
	tech := seedCategory(t, gdb, "Tecnologia")
	sports := seedCategory(t, gdb, "Desporto")
	seedArticle(t, gdb, db.Article{Title: "Sobre Go", AuthorID: 1, CategoryID: tech.ID})
	seedArticle(t, gdb, db.Article{Title: "Campeonato", AuthorID: 1, CategoryID: sports.ID})

	path := fmt.Sprintf("/api/feed?category=%d", sports.ID)
	w := doRequest(r, http.MethodGet, path, nil, cookies)

	var resp struct {
		Posts []struct {
			Title string `json:"title"`
		} `json:"posts"`
	}
	decodeJSON(t, w, &resp)
	if len(resp.Posts) != 1 || resp.Posts[0].Title != "Campeonato" {
		t.Fatalf("expected only the sports article, got %+v", resp.Posts)
	}
}

func TestGetFeed_UnknownTabFallsBackToFeatured(t *testing.T) {
	r, gdb := setupHandlerTest(t, "feed-unknown-tab")

	cookies := signUpUser(t, r, "Maria", "maria@example.com")
	category := seedCategory(t, gdb, "Tecnologia")
	seedArticle(t, gdb, db.Article{Title: "Publicado", AuthorID: 1, CategoryID: category.ID})

	w := doRequest(r, http.MethodGet, "/api/feed?tab=trending", nil, cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Posts []struct{} `json:"posts"`
	}
	decodeJSON(t, w, &resp)
	if len(resp.Posts) != 1 {
		t.Fatalf("expected the featured feed, got %d posts", len(resp.Posts))
	}
}

func TestShowFeed_RendersPosts(t *testing.T) {
	r, gdb := setupHandlerTest(t, "feed-page")

	cookies := signUpUser(t, r, "Maria", "maria@example.com")
	category := seedCategory(t, gdb, "Tecnologia")
	seedArticle(t, gdb, db.Article{Title: "Texto em destaque", AuthorID: 1, CategoryID: category.ID})

	w := doRequest(r, http.MethodGet, "/feed", nil, cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Texto em destaque") {
		t.Fatal("expected the article title in the rendered page")
	}
}

func TestGetCategories(t *testing.T) {
	r, gdb := setupHandlerTest(t, "feed-categories")

	cookies := signUpUser(t, r, "Maria", "maria@example.com")
	seedCategory(t, gdb, "Viagens")
	seedCategory(t, gdb, "Ciência")

	w := doRequest(r, http.MethodGet, "/api/categories", nil, cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Categories []struct {
			Name string `json:"Name"`
		} `json:"categories"`
	}
	decodeJSON(t, w, &resp)
	if len(resp.Categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(resp.Categories))
	}
	if resp.Categories[0].Name != "Ciência" {
		t.Fatalf("expected alphabetical order, got %q first", resp.Categories[0].Name)
	}
}
