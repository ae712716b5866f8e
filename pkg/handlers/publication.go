package handlers

import (
	"context"
	"time"

	"github.com/wolfpub/wolfpub/pkg/catalog"
	"github.com/wolfpub/wolfpub/pkg/engine"
	"github.com/wolfpub/wolfpub/pkg/query"
)

// Publication carries the fields shared by books and periodicals.
type Publication struct {
	Title           string
	Topic           string
	Price           float64
	PublicationDate time.Time
}

func (p Publication) row() map[string]any {
	return map[string]any{
		"title":            p.Title,
		"topic":            p.Topic,
		"price":            p.Price,
		"publication_date": p.PublicationDate,
	}
}

// BookInfo is the book specialization of a publication.
type BookInfo struct {
	ISBN         string
	CreationDate time.Time
	Edition      int
	BookID       int
}

// PeriodicalInfo is the periodical specialization of a publication.
type PeriodicalInfo struct {
	ISSN         string
	Issue        string
	Type         string
	PeriodicalID int
}

// Chapter is a chapter of a book publication.
type Chapter struct {
	ChapterID int
	Title     string
	Text      string
}

// Article is an article of a periodical publication.
type Article struct {
	ArticleID      int
	CreationDate   time.Time
	Topic          string
	Title          string
	Text           string
	JournalistName string
}

// PublicationHandler manages publications and their book/periodical
// specializations, chapters and articles. Catalog item resolution for
// order placement also lives here.
type PublicationHandler struct {
	db engine.Store
}

func NewPublicationHandler(db engine.Store) *PublicationHandler {
	return &PublicationHandler{db: db}
}

// CreateBook inserts the publication row and its book row as one
// transaction, returning the generated publication id.
func (h *PublicationHandler) CreateBook(ctx context.Context, pub Publication, book BookInfo) (int64, error) {
	var pubID int64
	err := h.db.InTx(ctx, func(tx engine.Tx) error {
		insert, err := query.InsertReturning(catalog.Publications.Name, []map[string]any{pub.row()}, catalog.Publications.SerialKey)
		if err != nil {
			return err
		}
		_, id, err := tx.Exec(ctx, insert)
		if err != nil {
			return err
		}
		pubID = id

		bookInsert, err := query.Insert(catalog.Books.Name, []map[string]any{{
			"publication_id": pubID,
			"isbn":           book.ISBN,
			"creation_date":  book.CreationDate,
			"edition":        book.Edition,
			"book_id":        book.BookID,
			"is_available":   true,
		}})
		if err != nil {
			return err
		}
		_, _, err = tx.Exec(ctx, bookInsert)
		return err
	})
	if err != nil {
		return 0, err
	}
	return pubID, nil
}

// CreatePeriodical inserts the publication row and its periodical row
// as one transaction, returning the generated publication id.
func (h *PublicationHandler) CreatePeriodical(ctx context.Context, pub Publication, periodical PeriodicalInfo) (int64, error) {
	var pubID int64
	err := h.db.InTx(ctx, func(tx engine.Tx) error {
		insert, err := query.InsertReturning(catalog.Publications.Name, []map[string]any{pub.row()}, catalog.Publications.SerialKey)
		if err != nil {
			return err
		}
		_, id, err := tx.Exec(ctx, insert)
		if err != nil {
			return err
		}
		pubID = id

		periodicalInsert, err := query.Insert(catalog.Periodicals.Name, []map[string]any{{
			"publication_id":  pubID,
			"issn":            periodical.ISSN,
			"issue":           periodical.Issue,
			"periodical_type": periodical.Type,
			"periodical_id":   periodical.PeriodicalID,
			"is_available":    true,
		}})
		if err != nil {
			return err
		}
		_, _, err = tx.Exec(ctx, periodicalInsert)
		return err
	})
	if err != nil {
		return 0, err
	}
	return pubID, nil
}

// Get fetches one publication.
func (h *PublicationHandler) Get(ctx context.Context, publicationID int64) (engine.Row, error) {
	stmt, err := query.Select(catalog.Publications.Name, []string{"*"}, query.Condition{"publication_id": publicationID})
	if err != nil {
		return nil, err
	}
	rows, err := h.db.GetResult(ctx, stmt)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, &NotFoundError{Entity: "publication", ID: publicationID}
	}
	return rows[0], nil
}

// AddChapter attaches a chapter to a book publication.
func (h *PublicationHandler) AddChapter(ctx context.Context, publicationID int64, chapter Chapter) error {
	if _, err := h.Get(ctx, publicationID); err != nil {
		return err
	}
	insert, err := query.Insert(catalog.Chapters.Name, []map[string]any{{
		"chapter_id":     chapter.ChapterID,
		"publication_id": publicationID,
		"chapter_title":  chapter.Title,
		"chapter_text":   chapter.Text,
	}})
	if err != nil {
		return err
	}
	_, _, err = h.db.Execute(ctx, insert)
	return err
}

// AddArticle attaches an article to a periodical publication.
func (h *PublicationHandler) AddArticle(ctx context.Context, publicationID int64, article Article) error {
	if _, err := h.Get(ctx, publicationID); err != nil {
		return err
	}
	insert, err := query.Insert(catalog.Articles.Name, []map[string]any{{
		"article_id":      article.ArticleID,
		"publication_id":  publicationID,
		"creation_date":   article.CreationDate,
		"topic":           article.Topic,
		"title":           article.Title,
		"text":            article.Text,
		"journalist_name": article.JournalistName,
	}})
	if err != nil {
		return err
	}
	_, _, err = h.db.Execute(ctx, insert)
	return err
}

// ResolveBookItems matches the requested title/edition pairs against
// the available book catalog and returns the priced rows.
func (h *PublicationHandler) ResolveBookItems(ctx context.Context, items []OrderItem) ([]engine.Row, error) {
	if len(items) == 0 {
		return nil, nil
	}
	alternatives := make([]query.Condition, len(items))
	for i, item := range items {
		alternatives[i] = query.Condition{"title": item.Title, "edition": item.Edition}
	}
	stmt, err := query.Select(
		catalog.Books.Name+" NATURAL JOIN "+catalog.Publications.Name,
		[]string{"publication_id", "title", "edition", "price"},
		query.Condition{"is_available": true, "items": alternatives},
	)
	if err != nil {
		return nil, err
	}
	return h.db.GetResult(ctx, stmt)
}

// ResolvePeriodicalItems matches the requested title/issue pairs
// against the available periodical catalog and returns the priced rows.
func (h *PublicationHandler) ResolvePeriodicalItems(ctx context.Context, items []OrderItem) ([]engine.Row, error) {
	if len(items) == 0 {
		return nil, nil
	}
	alternatives := make([]query.Condition, len(items))
	for i, item := range items {
		alternatives[i] = query.Condition{"title": item.Title, "issue": item.Issue}
	}
	stmt, err := query.Select(
		catalog.Periodicals.Name+" NATURAL JOIN "+catalog.Publications.Name,
		[]string{"publication_id", "title", "issue", "price"},
		query.Condition{"is_available": true, "items": alternatives},
	)
	if err != nil {
		return nil, err
	}
	return h.db.GetResult(ctx, stmt)
}
