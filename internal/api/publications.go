package api

import (
	"net/http"

	"github.com/wolfpub/wolfpub/pkg/handlers"
)

type bookRequest struct {
	Title           string  `json:"title"`
	Topic           string  `json:"topic"`
	Price           float64 `json:"price"`
	PublicationDate string  `json:"publication_date"`
	ISBN            string  `json:"isbn"`
	CreationDate    string  `json:"creation_date"`
	Edition         int     `json:"edition"`
}

func (s *Server) createBook(w http.ResponseWriter, r *http.Request) {
	var req bookRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	publicationDate, err := parseDate(req.PublicationDate)
	if err != nil {
		writeError(w, &handlers.DomainError{Reason: "invalid publication_date, want YYYY-MM-DD"})
		return
	}
	creationDate, err := parseDate(req.CreationDate)
	if err != nil {
		writeError(w, &handlers.DomainError{Reason: "invalid creation_date, want YYYY-MM-DD"})
		return
	}
	id, err := s.publications.CreateBook(r.Context(),
		handlers.Publication{
			Title:           req.Title,
			Topic:           req.Topic,
			Price:           req.Price,
			PublicationDate: publicationDate,
		},
		handlers.BookInfo{
			ISBN:         req.ISBN,
			CreationDate: creationDate,
			Edition:      req.Edition,
		})
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, map[string]int64{"publication_id": id})
}

type periodicalRequest struct {
	Title           string  `json:"title"`
	Topic           string  `json:"topic"`
	Price           float64 `json:"price"`
	PublicationDate string  `json:"publication_date"`
	ISSN            string  `json:"issn"`
	Issue           string  `json:"issue"`
	Type            string  `json:"periodical_type"`
}

func (s *Server) createPeriodical(w http.ResponseWriter, r *http.Request) {
	var req periodicalRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	publicationDate, err := parseDate(req.PublicationDate)
	if err != nil {
		writeError(w, &handlers.DomainError{Reason: "invalid publication_date, want YYYY-MM-DD"})
		return
	}
	id, err := s.publications.CreatePeriodical(r.Context(),
		handlers.Publication{
			Title:           req.Title,
			Topic:           req.Topic,
			Price:           req.Price,
			PublicationDate: publicationDate,
		},
		handlers.PeriodicalInfo{
			ISSN:  req.ISSN,
			Issue: req.Issue,
			Type:  req.Type,
		})
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, map[string]int64{"publication_id": id})
}

func (s *Server) getPublication(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	row, err := s.publications.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, row)
}

type chapterRequest struct {
	ChapterID int    `json:"chapter_id"`
	Title     string `json:"title"`
	Text      string `json:"text"`
}

func (s *Server) addChapter(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req chapterRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := s.publications.AddChapter(r.Context(), id, handlers.Chapter{
		ChapterID: req.ChapterID,
		Title:     req.Title,
		Text:      req.Text,
	}); err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, req)
}

type articleRequest struct {
	ArticleID      int    `json:"article_id"`
	CreationDate   string `json:"creation_date"`
	Topic          string `json:"topic"`
	Title          string `json:"title"`
	Text           string `json:"text"`
	JournalistName string `json:"journalist_name"`
}

func (s *Server) addArticle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req articleRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	creationDate, err := parseDate(req.CreationDate)
	if err != nil {
		writeError(w, &handlers.DomainError{Reason: "invalid creation_date, want YYYY-MM-DD"})
		return
	}
	if err := s.publications.AddArticle(r.Context(), id, handlers.Article{
		ArticleID:      req.ArticleID,
		CreationDate:   creationDate,
		Topic:          req.Topic,
		Title:          req.Title,
		Text:           req.Text,
		JournalistName: req.JournalistName,
	}); err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, req)
}
