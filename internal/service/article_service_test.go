package service

import (
	"strings"
	"testing"

	"github.com/thoughtsblog/internal/db"
)

func TestArticleCreate_DraftByDefault(t *testing.T) {
	gdb := setupServiceTestDB(t, "article-draft")
	svc := NewArticleService(gdb)

	author := createTestUser(t, gdb, "autora")
	category := createTestCategory(t, gdb, "Tecnologia")

	article, err := svc.Create(ArticleInput{
		Title:      "Primeiro rascunho",
		Content:    "Um texto ainda em progresso.",
		CategoryID: category.ID,
		AuthorID:   author.ID,
	})
	if err != nil {
		t.Fatalf("create article: %v", err)
	}
	if article.Status != db.StatusDraft {
		t.Fatalf("expected draft status, got %q", article.Status)
	}
	if article.IsPublished() {
		t.Fatal("draft must not report as published")
	}
}

func TestArticleCreate_Validation(t *testing.T) {
	gdb := setupServiceTestDB(t, "article-validation")
	svc := NewArticleService(gdb)

	author := createTestUser(t, gdb, "autora")
	category := createTestCategory(t, gdb, "Tecnologia")

	cases := []struct {
		name  string
		input ArticleInput
		want  error
	}{
		{"missing title", ArticleInput{Content: "texto", CategoryID: category.ID, AuthorID: author.ID}, ErrTitleRequired},
		{"blank title", ArticleInput{Title: "   ", Content: "texto", CategoryID: category.ID, AuthorID: author.ID}, ErrTitleRequired},
		{"missing category", ArticleInput{Title: "Título", Content: "texto", AuthorID: author.ID}, ErrCategoryRequired},
		{"missing content", ArticleInput{Title: "Título", CategoryID: category.ID, AuthorID: author.ID}, ErrContentRequired},
	}
	for _, tc := range cases {
		if _, err := svc.Create(tc.input); err != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}

	var count int64
	gdb.Model(&db.Article{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no articles persisted, got %d", count)
	}
}

func TestArticleCreate_SummaryFallback(t *testing.T) {
	gdb := setupServiceTestDB(t, "article-summary")
	svc := NewArticleService(gdb)

	author := createTestUser(t, gdb, "autora")
	category := createTestCategory(t, gdb, "Tecnologia")

	content := strings.Repeat("é", 300)
	article, err := svc.Create(ArticleInput{
		Title:      "Sem resumo",
		Content:    content,
		CategoryID: category.ID,
		AuthorID:   author.ID,
	})
	if err != nil {
		t.Fatalf("create article: %v", err)
	}
	if got := len([]rune(article.Summary)); got != 200 {
		t.Fatalf("expected 200-rune fallback summary, got %d runes", got)
	}

	short, err := svc.Create(ArticleInput{
		Title:      "Resumo explícito",
		Summary:    "resumo dado",
		Content:    content,
		CategoryID: category.ID,
		AuthorID:   author.ID,
	})
	if err != nil {
		t.Fatalf("create article: %v", err)
	}
	if short.Summary != "resumo dado" {
		t.Fatalf("explicit summary must win, got %q", short.Summary)
	}
}

func TestArticlePublish_OneWayAndOwnerOnly(t *testing.T) {
	gdb := setupServiceTestDB(t, "article-publish")
	svc := NewArticleService(gdb)

	author := createTestUser(t, gdb, "autora")
	other := createTestUser(t, gdb, "outra")
	category := createTestCategory(t, gdb, "Tecnologia")

	draft, err := svc.Create(ArticleInput{
		Title: "Rascunho", Content: "texto", CategoryID: category.ID, AuthorID: author.ID,
	})
	if err != nil {
		t.Fatalf("create draft: %v", err)
	}

	if _, err := svc.Publish(draft.ID, other.ID); err != ErrNotArticleOwner {
		t.Fatalf("expected ErrNotArticleOwner, got %v", err)
	}

	published, err := svc.Publish(draft.ID, author.ID)
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if !published.IsPublished() {
		t.Fatal("expected article to be published")
	}

	// Publishing again is a no-op, not an error.
	again, err := svc.Publish(draft.ID, author.ID)
	if err != nil {
		t.Fatalf("republish: %v", err)
	}
	if !again.IsPublished() {
		t.Fatal("expected article to stay published")
	}
}

func TestIncrementViews_TwoLoadsAddTwo(t *testing.T) {
	gdb := setupServiceTestDB(t, "article-views")
	svc := NewArticleService(gdb)

	author := createTestUser(t, gdb, "autora")
	category := createTestCategory(t, gdb, "Tecnologia")
	article := createTestArticle(t, gdb, db.Article{AuthorID: author.ID, CategoryID: category.ID})

	if err := svc.IncrementViews(article.ID); err != nil {
		t.Fatalf("first increment: %v", err)
	}
	if err := svc.IncrementViews(article.ID); err != nil {
		t.Fatalf("second increment: %v", err)
	}

	reloaded, err := svc.Get(article.ID)
	if err != nil {
		t.Fatalf("reload article: %v", err)
	}
	if reloaded.ViewsCount != 2 {
		t.Fatalf("expected views_count 2 after two loads, got %d", reloaded.ViewsCount)
	}
}

func TestIncrementViews_MissingArticle(t *testing.T) {
	gdb := setupServiceTestDB(t, "article-views-missing")
	svc := NewArticleService(gdb)

	if err := svc.IncrementViews(42); err != ErrArticleNotFound {
		t.Fatalf("expected ErrArticleNotFound, got %v", err)
	}
}

func TestSuggested_ExcludesCurrentAndDrafts(t *testing.T) {
	gdb := setupServiceTestDB(t, "article-suggested")
	svc := NewArticleService(gdb)

	author := createTestUser(t, gdb, "autora")
	category := createTestCategory(t, gdb, "Tecnologia")

	current := createTestArticle(t, gdb, db.Article{Title: "Atual", AuthorID: author.ID, CategoryID: category.ID})
	createTestArticle(t, gdb, db.Article{Title: "Rascunho", AuthorID: author.ID, CategoryID: category.ID, Status: db.StatusDraft})
	for _, title := range []string{"Um", "Dois", "Três", "Quatro"} {
		createTestArticle(t, gdb, db.Article{Title: title, AuthorID: author.ID, CategoryID: category.ID})
	}

	suggested, err := svc.Suggested(current.ID, 3)
	if err != nil {
		t.Fatalf("suggested: %v", err)
	}
	if len(suggested) != 3 {
		t.Fatalf("expected 3 suggestions, got %d", len(suggested))
	}
	for _, article := range suggested {
		if article.ID == current.ID {
			t.Fatal("suggestions must not include the current article")
		}
		if !article.IsPublished() {
			t.Fatalf("suggestions must be published, got %q", article.Status)
		}
	}
}

func TestByAuthor_IncludesDrafts(t *testing.T) {
	gdb := setupServiceTestDB(t, "article-by-author")
	svc := NewArticleService(gdb)

	author := createTestUser(t, gdb, "autora")
	other := createTestUser(t, gdb, "outra")
	category := createTestCategory(t, gdb, "Tecnologia")

	createTestArticle(t, gdb, db.Article{Title: "Publicado", AuthorID: author.ID, CategoryID: category.ID})
	createTestArticle(t, gdb, db.Article{Title: "Rascunho", AuthorID: author.ID, CategoryID: category.ID, Status: db.StatusDraft})
	createTestArticle(t, gdb, db.Article{Title: "De outra", AuthorID: other.ID, CategoryID: category.ID})

	articles, err := svc.ByAuthor(author.ID)
	if err != nil {
		t.Fatalf("by author: %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(articles))
	}
}

func TestArticleGet_Placeholders(t *testing.T) {
	gdb := setupServiceTestDB(t, "article-placeholders")
	svc := NewArticleService(gdb)

	orphan := db.Article{Title: "Órfão", Status: db.StatusPublished, AuthorID: 77, CategoryID: 77}
	if err := gdb.Create(&orphan).Error; err != nil {
		t.Fatalf("create orphan: %v", err)
	}

	article, err := svc.Get(orphan.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if article.AuthorDisplayName() != db.UnknownAuthorName {
		t.Fatalf("expected %q, got %q", db.UnknownAuthorName, article.AuthorDisplayName())
	}
	if article.CategoryDisplayName() != db.UncategorizedName {
		t.Fatalf("expected %q, got %q", db.UncategorizedName, article.CategoryDisplayName())
	}
}
