package web

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/abdulachik/postline/internal/platform"
)

// pageData is everything the index template renders.
type pageData struct {
	ActivePlatform string
	Platforms      []string
	Platform       string
	Operation      string
	Kinds          []string
	Recent         []platform.PostRef
	Result         *result
	Post           *platform.Post
}

// result is the outcome banner shown after a form submission. Failure
// messages are generic: the facade does not expose failure causes.
type result struct {
	OK      bool
	Message string
	Link    string
}

func (s *Server) newPageData(r *http.Request, operation string) pageData {
	selected := r.FormValue("platform")
	if selected == "" {
		selected = s.manager.Platform()
	}

	data := pageData{
		ActivePlatform: s.manager.Platform(),
		Platforms:      append([]string{s.manager.Platform()}, placeholderPlatforms...),
		Platform:       selected,
		Operation:      operation,
		Kinds:          []string{"text", "link", "image"},
	}

	// The read/update/delete forms pick the post from a dropdown of
	// the account's recent posts.
	needsRecent := operation == "read" || operation == "update" || operation == "delete"
	if needsRecent && selected == data.ActivePlatform {
		data.Recent = s.manager.RecentPosts(r.Context(), recentLimit)
	}
	return data
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	operation := r.URL.Query().Get("op")
	switch operation {
	case "create", "read", "update", "delete":
	default:
		operation = "create"
	}

	s.render(w, s.newPageData(r, operation))
}

// activePage gates form submissions on the selected platform: a
// request carrying a placeholder platform renders its "coming soon"
// page without touching the facade.
func (s *Server) activePage(w http.ResponseWriter, r *http.Request, operation string) (pageData, bool) {
	data := s.newPageData(r, operation)
	if data.Platform != data.ActivePlatform {
		s.render(w, data)
		return data, false
	}
	return data, true
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	data, ok := s.activePage(w, r, "create")
	if !ok {
		return
	}

	subreddit := r.FormValue("subreddit")
	title := r.FormValue("title")
	content := r.FormValue("content")
	kind := r.FormValue("kind")

	id, ok := s.manager.CreatePost(r.Context(), subreddit, title, content, kind)
	if !ok {
		data.Result = &result{Message: "Failed to create the post."}
		s.render(w, data)
		return
	}

	data.Result = &result{
		OK:      true,
		Message: fmt.Sprintf("Post created successfully! Post ID: %s", id),
		Link:    permalink(subreddit, id),
	}
	s.render(w, data)
}

func (s *Server) handleRead(w http.ResponseWriter, r *http.Request) {
	data, ok := s.activePage(w, r, "read")
	if !ok {
		return
	}
	postID := r.FormValue("post_id")

	post := s.manager.ReadPost(r.Context(), postID)
	if post == nil {
		data.Result = &result{Message: "Failed to fetch the post."}
		s.render(w, data)
		return
	}

	data.Post = post
	data.Result = &result{OK: true, Message: "Post details:"}
	s.render(w, data)
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	data, ok := s.activePage(w, r, "update")
	if !ok {
		return
	}
	postID := r.FormValue("post_id")
	content := r.FormValue("content")

	if !s.manager.UpdatePost(r.Context(), postID, content) {
		data.Result = &result{Message: "Failed to update the post."}
		s.render(w, data)
		return
	}

	data.Result = &result{OK: true, Message: "Post updated successfully!"}

	// Rebuild the permalink from the post's own subreddit rather than
	// trusting anything the form sent.
	if post := s.manager.ReadPost(r.Context(), postID); post != nil && post.Subreddit != "" {
		data.Result.Link = permalink(post.Subreddit, postID)
	}
	s.render(w, data)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	data, ok := s.activePage(w, r, "delete")
	if !ok {
		return
	}
	postID := r.FormValue("post_id")

	if !s.manager.DeletePost(r.Context(), postID) {
		data.Result = &result{Message: "Failed to delete the post."}
		s.render(w, data)
		return
	}

	data.Result = &result{
		OK:      true,
		Message: "Post deleted successfully! It is no longer available on the platform.",
	}
	s.render(w, data)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":   "ok",
		"platform": s.manager.Platform(),
	})
}

func (s *Server) render(w http.ResponseWriter, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, "index.html", data); err != nil {
		s.logger.Error("error rendering template", "error", err)
	}
}

func permalink(subreddit, postID string) string {
	return fmt.Sprintf("https://www.reddit.com/r/%s/comments/%s/", subreddit, postID)
}
