package web

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/desertthunder/tracklist/internal/formatter"
	"github.com/desertthunder/tracklist/internal/metrics"
	"github.com/desertthunder/tracklist/internal/session"
	"github.com/desertthunder/tracklist/internal/shared"
)

// page is the data rendered by index.html.
type page struct {
	Notice       string
	Filename     string
	Numbered     bool
	Count        int
	Headers      []string
	Rows         [][]string
	Output       string
	Instructions []string
	MaxUploadMB  int
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	s.render(w, http.StatusOK, sess, "")
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	limit := s.cfg.MaxUploadBytes()

	r.Body = http.MaxBytesReader(w, r.Body, limit+multipartOverhead)
	if err := r.ParseMultipartForm(limit); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) || r.ContentLength > limit+multipartOverhead {
			s.reject(w, sess, metrics.ResultTooLarge, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("File is larger than %d MB", s.cfg.Server.MaxUploadMB))
			return
		}
		s.reject(w, sess, metrics.ResultError, http.StatusBadRequest, "Upload a .txt file exported from Rekordbox")
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		s.reject(w, sess, metrics.ResultError, http.StatusBadRequest, "Upload a .txt file exported from Rekordbox")
		return
	}
	defer file.Close()

	name := filepath.Base(header.Filename)
	if !shared.HasTextExtension(name) {
		s.logger.Warn("upload does not have a .txt extension", "file", name)
	}

	text, err := shared.ReadText(file, limit)
	switch {
	case errors.Is(err, shared.ErrFileTooLarge):
		s.reject(w, sess, metrics.ResultTooLarge, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("File is larger than %d MB", s.cfg.Server.MaxUploadMB))
		return
	case errors.Is(err, shared.ErrUnsupportedFileType):
		s.reject(w, sess, metrics.ResultUnsupported, http.StatusUnsupportedMediaType,
			fmt.Sprintf("%s is not a text file. Please upload a .txt export", name))
		return
	case err != nil:
		s.logger.Error("failed to read upload", "file", name, "error", err)
		s.reject(w, sess, metrics.ResultError, http.StatusBadRequest, "Could not read the uploaded file")
		return
	}

	updated, err := s.store.Update(sess.ID, func(st *session.Session) { st.Load(name, text) })
	if err != nil {
		s.logger.Error("failed to store upload", "session", sess.ID, "error", err)
		s.reject(w, sess, metrics.ResultError, http.StatusInternalServerError, "Session expired, please try again")
		return
	}

	count := len(updated.Table.Tracks)
	result := metrics.ResultOK
	if count == 0 {
		result = metrics.ResultEmpty
	}
	metrics.ObserveUpload(result, count)

	s.logger.Info("loaded export", "file", name, "tracks", count, "columns", len(updated.Headers()))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleNumbers(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	if _, err := s.store.Update(sess.ID, func(st *session.Session) { st.Toggle() }); err != nil {
		s.logger.Warn("failed to toggle numbering", "session", sess.ID, "error", err)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	if _, err := s.store.Update(sess.ID, func(st *session.Session) { st.Reset() }); err != nil {
		s.logger.Warn("failed to reset session", "session", sess.ID, "error", err)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie(cookieName)
	if err != nil || !shared.IsID(c.Value) {
		http.Error(w, "No tracklist loaded", http.StatusNotFound)
		return
	}

	sess, err := s.store.Get(c.Value)
	if err != nil || sess.Empty() {
		http.Error(w, "No tracklist loaded", http.StatusNotFound)
		return
	}
	s.session(w, r)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", formatter.DefaultTextFile))
	w.Write(formatter.ExportToText(sess.Table, formatter.Options{Numbered: sess.Numbered}))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok\n"))
}

// session returns the caller's session and refreshes the cookie so it expires with the session.
//
// Malformed cookie values are ignored and a new session is issued.
func (s *Server) session(w http.ResponseWriter, r *http.Request) *session.Session {
	var id string
	if c, err := r.Cookie(cookieName); err == nil && shared.IsID(c.Value) {
		id = c.Value
	}

	sess := s.store.Ensure(id)
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    sess.ID,
		Path:     "/",
		MaxAge:   int(s.cfg.SessionTTL().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sess
}

func (s *Server) reject(w http.ResponseWriter, sess *session.Session, result string, status int, notice string) {
	metrics.ObserveUpload(result, 0)
	s.render(w, status, sess, notice)
}

func (s *Server) render(w http.ResponseWriter, status int, sess *session.Session, notice string) {
	p := page{
		Notice:       notice,
		Filename:     sess.Filename,
		Numbered:     sess.Numbered,
		Count:        len(sess.Table.Tracks),
		Headers:      sess.Headers(),
		Rows:         sess.Rows(),
		Output:       sess.Output(),
		Instructions: session.Instructions,
		MaxUploadMB:  s.cfg.Server.MaxUploadMB,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)

	if err := s.pages.ExecuteTemplate(w, "index.html", p); err != nil {
		s.logger.Error("failed to render page", "error", err)
	}
}
